package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_LoadAbsent(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	data, err := s.Load(context.Background(), "users")
	require.NoError(t, err)
	assert.Nil(t, data)
}

func TestFileStore_SaveLoadRoundtrip(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	payload := []byte(`{"1":{"balance":3}}`)
	require.NoError(t, s.Save(ctx, "users", payload))

	data, err := s.Load(ctx, "users")
	require.NoError(t, err)
	assert.Equal(t, payload, data)
}

func TestFileStore_SaveOverwrites(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, "tasks", []byte(`{"1":{}}`)))
	require.NoError(t, s.Save(ctx, "tasks", []byte(`{}`)))

	data, err := s.Load(ctx, "tasks")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{}`), data)
}

func TestFileStore_QuarantineMovesFileAside(t *testing.T) {
	dir := t.TempDir()
	s, err := NewFileStore(dir)
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, "users", []byte(`not json at all`)))
	require.NoError(t, s.Quarantine(ctx, "users"))

	// Original file is gone, quarantined copy keeps the payload.
	data, err := s.Load(ctx, "users")
	require.NoError(t, err)
	assert.Nil(t, data)

	matches, err := filepath.Glob(filepath.Join(dir, "users.json.corrupt.*"))
	require.NoError(t, err)
	require.Len(t, matches, 1)

	quarantined, err := os.ReadFile(matches[0])
	require.NoError(t, err)
	assert.Equal(t, []byte(`not json at all`), quarantined)
}

func TestFileStore_CreatesDataDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	_, err := NewFileStore(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
