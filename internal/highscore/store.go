package highscore

import (
	"fmt"
	"io"
)

// Store persists a Table. Callers treat every error as "no table" on
// load and as "not saved" on save.
type Store interface {
	Load() (*Table, error)
	Save(t *Table) error
}

// Open picks a backend by name: "file" or "sqlite".
func Open(backend, path string) (Store, error) {
	switch backend {
	case "", "file":
		return NewFileStore(path), nil
	case "sqlite":
		return OpenSQLite(path)
	}
	return nil, fmt.Errorf("highscore: unknown backend %q", backend)
}

// Close releases whatever the backend holds open. Stores without
// resources are left alone.
func Close(s Store) error {
	if c, ok := s.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
