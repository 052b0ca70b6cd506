// internal/storage/store.go

// Package storage holds the persistent client state: the form fields and the
// highlighted button, as plain string values under fixed keys.
package storage

import (
	"fmt"
	"sync"

	apperr "shawl/internal/error"
)

const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// Store is a durable key/value store of strings. Absent keys read as "".
type Store interface {
	Get(key string) (string, error)
	Set(key, value string) error
	Close() error
}

// Options configures Open.
type Options struct {
	Backend string
	Path    string
}

// Open returns the store for the configured backend.
func Open(opts Options) (Store, error) {
	switch opts.Backend {
	case "", BackendJSON:
		return OpenJSON(opts.Path)
	case BackendSQLite:
		return OpenSQLite(opts.Path)
	case BackendMemory:
		return NewMemory(), nil
	}
	return nil, apperr.New(apperr.ConfigError, fmt.Sprintf("unknown storage backend %q", opts.Backend), nil)
}

// Memory is an in-process Store.
type Memory struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewMemory() *Memory {
	return &Memory{values: make(map[string]string)}
}

func (m *Memory) Get(key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.values[key], nil
}

func (m *Memory) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

func (m *Memory) Close() error { return nil }
