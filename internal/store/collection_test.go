package store

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	Balance int `json:"balance"`
}

func newTestCollection(t *testing.T) (*Collection[record], string) {
	t.Helper()
	dir := t.TempDir()
	s, err := NewFileStore(dir)
	require.NoError(t, err)
	return NewCollection[record](s, "users"), dir
}

func TestCollection_InitializesEmptyMapping(t *testing.T) {
	c, dir := newTestCollection(t)

	err := c.View(context.Background(), func(m map[string]record) error {
		assert.Empty(t, m)
		return nil
	})
	require.NoError(t, err)

	// First load persists the empty mapping.
	data, err := os.ReadFile(filepath.Join(dir, "users.json"))
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(data))
}

func TestCollection_UpdatePersists(t *testing.T) {
	c, _ := newTestCollection(t)
	ctx := context.Background()

	err := c.Update(ctx, func(m map[string]record) error {
		m["1"] = record{Balance: 2}
		return nil
	})
	require.NoError(t, err)

	err = c.View(ctx, func(m map[string]record) error {
		assert.Equal(t, record{Balance: 2}, m["1"])
		return nil
	})
	require.NoError(t, err)
}

func TestCollection_UpdateErrorSkipsSave(t *testing.T) {
	c, _ := newTestCollection(t)
	ctx := context.Background()

	sentinel := assert.AnError
	err := c.Update(ctx, func(m map[string]record) error {
		m["1"] = record{Balance: 99}
		return sentinel
	})
	require.ErrorIs(t, err, sentinel)

	err = c.View(ctx, func(m map[string]record) error {
		assert.NotContains(t, m, "1")
		return nil
	})
	require.NoError(t, err)
}

func TestCollection_CorruptPayloadQuarantinedAndReset(t *testing.T) {
	dir := t.TempDir()
	s, err := NewFileStore(dir)
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "users.json"), []byte(`{{{`), 0o644))

	c := NewCollection[record](s, "users")
	err = c.View(ctx, func(m map[string]record) error {
		assert.Empty(t, m)
		return nil
	})
	require.NoError(t, err)

	matches, err := filepath.Glob(filepath.Join(dir, "users.json.corrupt.*"))
	require.NoError(t, err)
	assert.Len(t, matches, 1)

	// The collection works again after self-healing.
	err = c.Update(ctx, func(m map[string]record) error {
		m["1"] = record{Balance: 1}
		return nil
	})
	require.NoError(t, err)
}

func TestCollection_WrongShapeQuarantined(t *testing.T) {
	dir := t.TempDir()
	s, err := NewFileStore(dir)
	require.NoError(t, err)

	// Valid JSON, but not a mapping of records.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "users.json"), []byte(`[1,2,3]`), 0o644))

	c := NewCollection[record](s, "users")
	err = c.View(context.Background(), func(m map[string]record) error {
		assert.Empty(t, m)
		return nil
	})
	require.NoError(t, err)

	matches, err := filepath.Glob(filepath.Join(dir, "users.json.corrupt.*"))
	require.NoError(t, err)
	assert.Len(t, matches, 1)
}

func TestCollection_ConcurrentUpdatesLoseNothing(t *testing.T) {
	c, _ := newTestCollection(t)
	ctx := context.Background()

	const goroutines = 16
	const perGoroutine = 10

	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perGoroutine; i++ {
				err := c.Update(ctx, func(m map[string]record) error {
					r := m["counter"]
					r.Balance++
					m["counter"] = r
					return nil
				})
				assert.NoError(t, err)
			}
		}()
	}
	wg.Wait()

	err := c.View(ctx, func(m map[string]record) error {
		assert.Equal(t, goroutines*perGoroutine, m["counter"].Balance)
		return nil
	})
	require.NoError(t, err)
}
