package session

import (
	"context"
	"sync"
)

// MemStore is an in-memory Store for tests and throwaway sessions. The
// zero value is ready to use.
type MemStore struct {
	mu    sync.Mutex
	token string
	set   bool
}

// NewMemStore describes the newmemstore operation and its observable behavior.
func NewMemStore() *MemStore {
	return &MemStore{}
}

// Load describes the load operation and its observable behavior.
func (s *MemStore) Load(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.set {
		return "", ErrNoSession
	}
	return s.token, nil
}

// Save describes the save operation and its observable behavior.
func (s *MemStore) Save(ctx context.Context, token string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.set = true
	return nil
}

// Clear describes the clear operation and its observable behavior.
func (s *MemStore) Clear(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.set = false
	return nil
}
