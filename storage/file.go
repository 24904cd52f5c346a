package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// FileStorage persists items as one JSON document on disk. Every write
// replaces the file through a temp file and rename, so a reader sees either the
// previous or the next document, never a partial one.
type FileStorage struct {
	path   string
	sealer *sealer
	mu     sync.Mutex
}

// NewFileStorage opens (or lazily creates) the document at path. When
// passphrase is non-empty the document is encrypted at rest.
func NewFileStorage(path, passphrase string) (*FileStorage, error) {
	if path == "" {
		return nil, errors.New("storage path is required")
	}
	fs := &FileStorage{path: path}
	if passphrase != "" {
		s, err := newSealer(passphrase)
		if err != nil {
			return nil, err
		}
		fs.sealer = s
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}
	return fs, nil
}

func (f *FileStorage) load() (map[string]string, error) {
	raw, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read session file: %w", err)
	}
	if len(raw) == 0 {
		return map[string]string{}, nil
	}
	if f.sealer != nil {
		if raw, err = f.sealer.open(raw); err != nil {
			return nil, err
		}
	}
	items := map[string]string{}
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("failed to decode session file: %w", err)
	}
	return items, nil
}

func (f *FileStorage) save(items map[string]string) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to encode session file: %w", err)
	}
	if f.sealer != nil {
		if raw, err = f.sealer.seal(raw); err != nil {
			return err
		}
	}

	tmp, err := os.CreateTemp(filepath.Dir(f.path), ".session-*")
	if err != nil {
		return fmt.Errorf("failed to create temp session file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write session file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0o600); err != nil {
		return fmt.Errorf("failed to protect session file: %w", err)
	}
	return os.Rename(tmp.Name(), f.path)
}

func (f *FileStorage) GetItem(key string) (string, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	items, err := f.load()
	if err != nil {
		return "", false, err
	}
	v, ok := items[key]
	return v, ok, nil
}

func (f *FileStorage) SetItem(key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	items, err := f.load()
	if err != nil {
		return err
	}
	items[key] = value
	return f.save(items)
}

func (f *FileStorage) RemoveItem(key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	items, err := f.load()
	if err != nil {
		return err
	}
	if _, ok := items[key]; !ok {
		return nil
	}
	delete(items, key)
	return f.save(items)
}
