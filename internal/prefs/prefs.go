// Package prefs persists client preferences such as the UI theme.
package prefs

import (
	"context"
	"errors"
	"sync"
)

// ThemeKey is the fixed key the theme preference is stored under.
const ThemeKey = "theme"

var ErrNotSet = errors.New("preference not set")

// Store is a get/set pair over string preferences.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}

// Memory is an in-process Store.
type Memory struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewMemory() *Memory {
	return &Memory{values: make(map[string]string)}
}

func (m *Memory) Get(_ context.Context, key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	if !ok {
		return "", ErrNotSet
	}
	return v, nil
}

func (m *Memory) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

type scoped struct {
	inner Store
	scope string
}

// Scoped namespaces every key of inner under scope, so each signed-in
// principal gets its own "theme" entry.
func Scoped(inner Store, scope string) Store {
	if scope == "" {
		return inner
	}
	return &scoped{inner: inner, scope: scope}
}

func (s *scoped) Get(ctx context.Context, key string) (string, error) {
	return s.inner.Get(ctx, s.scope+":"+key)
}

func (s *scoped) Set(ctx context.Context, key, value string) error {
	return s.inner.Set(ctx, s.scope+":"+key, value)
}
