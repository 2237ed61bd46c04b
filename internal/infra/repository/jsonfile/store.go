package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Store persists a list as a single JSON object with one key, e.g.
// {"liked": [...]}. Every call reads or rewrites the whole file.
type Store[T any] struct {
	path string
	key  string
}

func New[T any](path string, key string) *Store[T] {
	return &Store[T]{
		path: path,
		key:  key,
	}
}

func (s *Store[T]) Path() string {
	return s.path
}

// Load returns an empty list when the file does not exist or has no entry
// for the key.
func (s *Store[T]) Load(_ context.Context) ([]T, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []T{}, nil
		}

		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}

	var doc map[string][]T
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode %s: %w", s.path, err)
	}

	items := doc[s.key]
	if items == nil {
		items = []T{}
	}

	return items, nil
}

// Save writes to a temporary file in the same directory and renames it over
// the target.
func (s *Store[T]) Save(_ context.Context, items []T) error {
	if items == nil {
		items = []T{}
	}

	data, err := json.MarshalIndent(map[string][]T{s.key: items}, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", s.path, err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file in %s: %w", dir, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", tmp.Name(), err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replace %s: %w", s.path, err)
	}

	return nil
}
