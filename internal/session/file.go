package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// FileStore хранит сессию в JSON-файле.
// По умолчанию файл лежит в каталоге конфигурации пользователя.
type FileStore struct {
	path string
}

func NewFileStore(path string) (*FileStore, error) {
	const op = "session.NewFileStore"

	if path == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("%s: failed to resolve config dir: %w", op, err)
		}
		path = filepath.Join(dir, "foodcart", "session.json")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("%s: failed to create session dir: %w", op, err)
	}
	return &FileStore{path: path}, nil
}

func (f *FileStore) Load() (*Session, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNoSession
		}
		return nil, err
	}

	s := &Session{}
	if err := json.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("corrupted session file: %w", err)
	}
	if s.Token == "" || s.User == nil {
		return nil, ErrNoSession
	}
	return s, nil
}

func (f *FileStore) Save(s *Session) error {
	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	// Файл содержит токен, права только для владельца
	return os.WriteFile(f.path, data, 0o600)
}

func (f *FileStore) Clear() error {
	if err := os.Remove(f.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
