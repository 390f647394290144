// Package store contains entities and a durable key-value storage for them.
package store

import (
	"context"
	"errors"
	"sync"
)

// ErrNotFound is an error that is returned when the requested entity is not found.
var ErrNotFound = errors.New("not found")

// KV defines methods for a durable key-value storage.
type KV interface {
	Load(ctx context.Context, key string) (string, error)
	Save(ctx context.Context, key, value string) error
}

// Memory is an in-process KV, its contents live as long as the process.
type Memory struct {
	mu   sync.RWMutex
	data map[string]string
}

// NewMemory makes new empty in-memory storage.
func NewMemory() *Memory { return &Memory{data: map[string]string{}} }

// Load returns the value stored under the key.
func (m *Memory) Load(_ context.Context, key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.data[key]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

// Save puts the value under the key, overwriting the previous one.
func (m *Memory) Save(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}
