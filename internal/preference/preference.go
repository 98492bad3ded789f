// Package preference holds user display preferences behind an explicitly
// initialized service. Nothing reads the backing store implicitly.
package preference

import (
	"context"
	"fmt"
	"sync"
)

// DarkModeKey is the storage key for the dark mode flag.
const DarkModeKey = "darkModeEnabled"

// Store is the typed key/value backend.
type Store interface {
	GetBool(ctx context.Context, key string, def bool) (bool, error)
	SetBool(ctx context.Context, key string, v bool) error
}

// Service caches preferences after Init and writes changes through. It is
// safe for concurrent use; callers apply the palette themselves.
type Service struct {
	mu       sync.RWMutex
	store    Store
	darkMode bool
}

// NewService creates a service over store. Call Init before reading.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// Init reads the stored preferences. A missing key means light mode.
func (s *Service) Init(ctx context.Context) error {
	dark, err := s.store.GetBool(ctx, DarkModeKey, false)
	if err != nil {
		return fmt.Errorf("read %s: %w", DarkModeKey, err)
	}
	s.mu.Lock()
	s.darkMode = dark
	s.mu.Unlock()
	return nil
}

// DarkMode returns the cached dark mode flag.
func (s *Service) DarkMode() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.darkMode
}

// SetDarkMode persists v and updates the cache.
func (s *Service) SetDarkMode(ctx context.Context, v bool) error {
	if err := s.store.SetBool(ctx, DarkModeKey, v); err != nil {
		return fmt.Errorf("write %s: %w", DarkModeKey, err)
	}
	s.mu.Lock()
	s.darkMode = v
	s.mu.Unlock()
	return nil
}

// Toggle flips dark mode and returns the new value.
func (s *Service) Toggle(ctx context.Context) (bool, error) {
	next := !s.DarkMode()
	if err := s.SetDarkMode(ctx, next); err != nil {
		return !next, err
	}
	return next, nil
}

// MemoryStore is an in-process Store.
type MemoryStore struct {
	mu   sync.Mutex
	vals map[string]bool
	Err  error
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{vals: map[string]bool{}}
}

func (m *MemoryStore) GetBool(_ context.Context, key string, def bool) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return def, m.Err
	}
	if v, ok := m.vals[key]; ok {
		return v, nil
	}
	return def, nil
}

func (m *MemoryStore) SetBool(_ context.Context, key string, v bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	m.vals[key] = v
	return nil
}
