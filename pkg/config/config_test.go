package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())
	for _, key := range keys {
		t.Setenv(strings.ToUpper(key), "")
	}

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "memory", cfg.ProfileBackend)
	assert.Equal(t, "memory", cfg.PrefsBackend)
	assert.True(t, cfg.Seed)
	assert.False(t, cfg.PrefersDark)
	assert.True(t, cfg.IsDevelopment())
}

func TestLoad_Environment(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("PORT", "9000")
	t.Setenv("PREFERS_DARK", "true")
	t.Setenv("PROFILE_BACKEND", "sqlite")
	t.Setenv("SQLITE_PATH", "/tmp/x.db")
	t.Setenv("PREFS_BACKEND", "memory")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9000", cfg.Port)
	assert.True(t, cfg.PrefersDark)
	assert.Equal(t, "sqlite", cfg.ProfileBackend)
	assert.Equal(t, "/tmp/x.db", cfg.SQLitePath)
}

func TestLoad_RejectsIncompleteBackend(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("PREFS_BACKEND", "memory")
	t.Setenv("PROFILE_BACKEND", "postgres")
	t.Setenv("POSTGRES_CONN_STR", "")

	_, err := Load()
	assert.ErrorContains(t, err, "POSTGRES_CONN_STR")

	t.Setenv("PROFILE_BACKEND", "cassandra")
	_, err = Load()
	assert.ErrorContains(t, err, "PROFILE_BACKEND")
}
