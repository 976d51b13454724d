package memory

import (
	"context"
	"sync"

	"pet-companion/internal/ports/kvstore"
)

// KVStore guarda todo en un map. Sirve para tests y para STORE_ENGINE=memory.
type KVStore struct {
	mu     sync.RWMutex
	byKey  map[string]string
	closed bool
}

func NewKVStore() *KVStore {
	return &KVStore{
		byKey: make(map[string]string),
	}
}

func (s *KVStore) Get(ctx context.Context, key string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return "", false, kvstore.ErrClosed
	}
	v, ok := s.byKey[key]
	return v, ok, nil
}

func (s *KVStore) Set(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return kvstore.ErrClosed
	}
	s.byKey[key] = value
	return nil
}

func (s *KVStore) Remove(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return kvstore.ErrClosed
	}
	delete(s.byKey, key)
	return nil
}

func (s *KVStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}
