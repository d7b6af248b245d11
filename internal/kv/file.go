package kv

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/dchest/safefile"
	"github.com/goccy/go-json"
)

const filePerm = 0o644

// FileStore keeps one <key>.json file per key under a directory.
// Writes go through a temporary file that is renamed into place.
type FileStore struct {
	mu  sync.Mutex
	dir string
}

// OpenDir creates dir if needed and returns a store rooted there.
func OpenDir(dir string) (*FileStore, error) {
	if dir = filepath.Clean(dir); dir == "." || dir == "" {
		return nil, fmt.Errorf("open store: empty directory")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	fi, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	if !fi.IsDir() {
		return nil, fmt.Errorf("open store: %s is not a directory", dir)
	}
	return &FileStore{dir: dir}, nil
}

// Path returns the file a key is stored in.
func (s *FileStore) Path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

func (s *FileStore) Load(key string, v any) (bool, error) {
	if err := checkKey(key); err != nil {
		return false, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.Path(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("read %s: %w", key, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

func (s *FileStore) Save(key string, v any) error {
	if err := checkKey(key); err != nil {
		return err
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := safefile.Create(s.Path(key), filePerm)
	if err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	// Close after Commit is a no-op; before it, Close removes the temp file.
	defer f.Close()

	if _, err := f.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	if err := f.Commit(); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}

func (s *FileStore) Close() error { return nil }
