// Package storage provides object storage implementations for profile image files.
package storage

import (
	"context"
	"errors"
	"sync"

	directoryapp "github.com/tabledash/backend/internal/application/directory"
)

// StubObjectStorage is an in-memory implementation of ObjectStorage.
// Use this for development and tests when no S3 backend is configured.
type StubObjectStorage struct {
	// BaseURL is the base URL for generated object URLs.
	// Defaults to "https://storage.example.com" if not set.
	BaseURL string

	mu      sync.RWMutex
	objects map[string][]byte
}

// NewStubObjectStorage creates a new StubObjectStorage
func NewStubObjectStorage() *StubObjectStorage {
	return &StubObjectStorage{
		BaseURL: "https://storage.example.com",
		objects: make(map[string][]byte),
	}
}

// Ensure StubObjectStorage implements ObjectStorage
var _ directoryapp.ObjectStorage = (*StubObjectStorage)(nil)

// Upload stores the object in memory
func (s *StubObjectStorage) Upload(ctx context.Context, key string, data []byte, contentType string) error {
	if key == "" {
		return errors.New("storage key is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	buf := make([]byte, len(data))
	copy(buf, data)
	s.objects[key] = buf
	return nil
}

// DeleteObject removes the object; deleting a missing key succeeds
func (s *StubObjectStorage) DeleteObject(ctx context.Context, key string) error {
	if key == "" {
		return errors.New("storage key is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.objects, key)
	return nil
}

// ObjectExists reports whether the object was uploaded
func (s *StubObjectStorage) ObjectExists(ctx context.Context, key string) (bool, error) {
	if key == "" {
		return false, errors.New("storage key is required")
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.objects[key]
	return ok, nil
}

// ObjectURL returns a deterministic URL under BaseURL
func (s *StubObjectStorage) ObjectURL(key string) string {
	return s.BaseURL + "/" + key
}
