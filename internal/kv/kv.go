// Package kv provides the small synchronous key-value persistence layer the
// palette is stored in. Values are JSON-encoded; backends are a directory of
// files, a SQLite table, or process memory.
package kv

import (
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
)

// Backend names accepted by Open.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

var (
	ErrInvalidKey     = errors.New("invalid key")
	ErrUnknownBackend = errors.New("unknown store backend")
)

var keyPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*$`)

// Store loads and saves JSON-encodable values by key.
//
// Load reports false with a nil error when the key has never been saved.
// Save replaces the previous value in full; when it returns an error the
// previous value is still the one a later Load sees.
type Store interface {
	Load(key string, v any) (bool, error)
	Save(key string, v any) error
	Close() error
}

// Open returns the backend named kind rooted at home.
func Open(kind, home string) (Store, error) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "", BackendFile:
		return OpenDir(home)
	case BackendSQLite:
		return OpenSQLite(filepath.Join(home, "palette.db"))
	case BackendMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, kind)
	}
}

func checkKey(key string) error {
	if !keyPattern.MatchString(key) {
		return fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return nil
}
