package storage

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/AlexZinkM/leochain-explorer/internal/crypto"
	"github.com/AlexZinkM/leochain-explorer/internal/model"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// FileStorage persists all items as a single JSON object in one file.
// Every SetItem/RemoveItem rewrites the whole file.
type FileStorage struct {
	path     string
	password []byte
	scryptN  int

	mu sync.Mutex
}

var _ LocalStorage = (*FileStorage)(nil)

// Option configures a FileStorage
type Option func(*FileStorage)

// WithPassword encrypts the file at rest with a key derived from password.
// The storage keeps its own copy; the caller may zero password afterwards.
func WithPassword(password []byte) Option {
	return func(s *FileStorage) {
		s.password = append([]byte(nil), password...)
	}
}

// WithScryptN overrides the scrypt cost used when sealing the file
func WithScryptN(n int) Option {
	return func(s *FileStorage) {
		s.scryptN = n
	}
}

// NewFileStorage returns a FileStorage backed by path. The file is created on first write.
func NewFileStorage(path string, opts ...Option) (*FileStorage, error) {
	if path == "" {
		return nil, errors.New("storage path must not be empty")
	}
	s := &FileStorage{path: path, scryptN: crypto.DefaultScryptN}
	for _, opt := range opts {
		opt(s)
	}

	// Fail early on unreadable or undecryptable files
	if _, err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

// Path returns the backing file path
func (s *FileStorage) Path() string {
	return s.path
}

// Encrypted reports whether the file is sealed at rest
func (s *FileStorage) Encrypted() bool {
	return len(s.password) > 0
}

func (s *FileStorage) GetItem(key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.load()
	if err != nil {
		return "", false, err
	}
	value, ok := items[key]
	return value, ok, nil
}

func (s *FileStorage) SetItem(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.load()
	if err != nil {
		return err
	}
	items[key] = value
	return s.save(items)
}

func (s *FileStorage) RemoveItem(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.load()
	if err != nil {
		return err
	}
	if _, ok := items[key]; !ok {
		return nil
	}
	delete(items, key)
	return s.save(items)
}

// Close wipes the in-memory password
func (s *FileStorage) Close() {
	clear(s.password)
	s.password = nil
}

func (s *FileStorage) load() (map[string]string, error) {
	items := make(map[string]string)

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return items, nil
		}
		return nil, fmt.Errorf("failed to read storage file: %w", err)
	}

	// Skip UTF-8 BOM if present
	data = bytes.TrimPrefix(data, utf8BOM)
	if len(bytes.TrimSpace(data)) == 0 {
		return items, nil
	}

	if s.Encrypted() {
		var sealed model.SealedStorage
		if err := json.Unmarshal(data, &sealed); err != nil {
			return nil, fmt.Errorf("failed to unmarshal sealed storage: %w", err)
		}
		plaintext, err := crypto.Open(&sealed, s.password)
		if err != nil {
			return nil, fmt.Errorf("failed to open storage: %w", err)
		}
		defer clear(plaintext)
		data = plaintext
	}

	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("failed to unmarshal storage: %w", err)
	}
	return items, nil
}

func (s *FileStorage) save(items map[string]string) error {
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal storage: %w", err)
	}

	if s.Encrypted() {
		sealed, err := crypto.Seal(data, s.password, s.scryptN)
		clear(data)
		if err != nil {
			return fmt.Errorf("failed to seal storage: %w", err)
		}
		data, err = json.MarshalIndent(sealed, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal sealed storage: %w", err)
		}
	}

	// Write to a sibling temp file and rename so readers never see a partial file
	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if err := tmp.Chmod(0600); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to chmod temp file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("failed to replace storage file: %w", err)
	}
	return nil
}
