package prefs

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory_GetSet(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	_, err := m.Get(ctx, ThemeKey)
	assert.ErrorIs(t, err, ErrNotSet)

	require.NoError(t, m.Set(ctx, ThemeKey, "dark"))
	v, err := m.Get(ctx, ThemeKey)
	require.NoError(t, err)
	assert.Equal(t, "dark", v)
}

func TestScoped_IsolatesOwners(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	alice, bob := Scoped(m, "alice"), Scoped(m, "bob")

	require.NoError(t, alice.Set(ctx, ThemeKey, "dark"))
	_, err := bob.Get(ctx, ThemeKey)
	assert.ErrorIs(t, err, ErrNotSet)

	v, err := m.Get(ctx, "alice:theme")
	require.NoError(t, err)
	assert.Equal(t, "dark", v)

	assert.Same(t, m, Scoped(m, ""))
}

func TestRedis_GetSet(t *testing.T) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("Skipping test - no Redis connection configured")
	}

	ctx := context.Background()
	r, err := NewRedis(ctx, addr, os.Getenv("REDIS_PASSWORD"))
	require.NoError(t, err)
	defer r.Close()

	s := Scoped(r, "test-owner")
	require.NoError(t, s.Set(ctx, ThemeKey, "light"))
	v, err := s.Get(ctx, ThemeKey)
	require.NoError(t, err)
	assert.Equal(t, "light", v)

	_, err = s.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotSet)
}
