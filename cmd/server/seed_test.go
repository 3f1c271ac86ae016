package main

import (
	"bytes"
	"testing"

	"github.com/Pranav210905/fin/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestWriteSeed(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeSeed(&buf))

	var snap store.Snapshot
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &snap))
	assert.Len(t, snap.Users, 4)
	assert.Len(t, snap.Posts, 6)
	assert.Len(t, snap.Comments, 3)
	assert.Contains(t, buf.String(), "savvysaver")
}
