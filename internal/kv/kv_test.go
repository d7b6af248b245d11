package kv

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func backends(t *testing.T) map[string]Store {
	t.Helper()
	dir := t.TempDir()

	file, err := OpenDir(filepath.Join(dir, "files"))
	if err != nil {
		t.Fatalf("OpenDir: %v", err)
	}
	db, err := OpenSQLite(filepath.Join(dir, "palette.db"))
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return map[string]Store{
		BackendFile:   file,
		BackendSQLite: db,
		BackendMemory: NewMemory(),
	}
}

func TestRoundTrip(t *testing.T) {
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			var got []string
			ok, err := s.Load("colours", &got)
			if err != nil || ok {
				t.Fatalf("Load on empty store = %v, %v; want false, nil", ok, err)
			}

			want := []string{"#ff0000", "#00ff00"}
			if err := s.Save("colours", want); err != nil {
				t.Fatalf("Save: %v", err)
			}
			if err := s.Save("colours", append(want, "#0000ff")); err != nil {
				t.Fatalf("Save: %v", err)
			}

			ok, err = s.Load("colours", &got)
			if err != nil || !ok {
				t.Fatalf("Load = %v, %v", ok, err)
			}
			want = append(want, "#0000ff")
			if !reflect.DeepEqual(got, want) {
				t.Errorf("Load = %v, want %v", got, want)
			}
		})
	}
}

func TestInvalidKey(t *testing.T) {
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			for _, key := range []string{"", "../etc", "Colours", "a/b"} {
				if err := s.Save(key, 1); !errors.Is(err, ErrInvalidKey) {
					t.Errorf("Save(%q) = %v, want ErrInvalidKey", key, err)
				}
				var v int
				if _, err := s.Load(key, &v); !errors.Is(err, ErrInvalidKey) {
					t.Errorf("Load(%q) = %v, want ErrInvalidKey", key, err)
				}
			}
		})
	}
}

func TestFileStoreCorruptValue(t *testing.T) {
	s, err := OpenDir(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(s.Path("colours"), []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	var got []string
	if ok, err := s.Load("colours", &got); err == nil || ok {
		t.Errorf("Load of corrupt file = %v, %v; want error", ok, err)
	}
}

func TestFileStoreLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	s, err := OpenDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 3; i++ {
		if err := s.Save("colours", []string{"#123456"}); err != nil {
			t.Fatal(err)
		}
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != "colours.json" {
		names := make([]string, len(entries))
		for i, e := range entries {
			names[i] = e.Name()
		}
		t.Errorf("directory contents = %v, want [colours.json]", names)
	}
}

func TestFileStoreSaveFailureKeepsPrevious(t *testing.T) {
	dir := t.TempDir()
	s, err := OpenDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Save("colours", []string{"#111111"}); err != nil {
		t.Fatal(err)
	}

	// channels cannot be encoded
	if err := s.Save("colours", make(chan int)); err == nil {
		t.Fatal("Save of unencodable value succeeded")
	}

	var got []string
	if ok, err := s.Load("colours", &got); err != nil || !ok {
		t.Fatalf("Load = %v, %v", ok, err)
	}
	if !reflect.DeepEqual(got, []string{"#111111"}) {
		t.Errorf("Load = %v after failed save", got)
	}
}

func TestOpen(t *testing.T) {
	home := t.TempDir()
	for _, kind := range []string{"", "file", "SQLite", "memory"} {
		s, err := Open(kind, home)
		if err != nil {
			t.Errorf("Open(%q): %v", kind, err)
			continue
		}
		s.Close()
	}
	if _, err := Open("bolt", home); !errors.Is(err, ErrUnknownBackend) {
		t.Errorf("Open(bolt) = %v, want ErrUnknownBackend", err)
	}
}
