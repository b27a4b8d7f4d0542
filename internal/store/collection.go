package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
)

// Collection is a typed view over one named mapping in a Store. All
// access goes through a single mutex per collection: handlers process
// updates concurrently, and a load-mutate-overwrite cycle without the
// lock would silently drop writes.
type Collection[T any] struct {
	mu    sync.Mutex
	store Store
	name  string
}

func NewCollection[T any](s Store, name string) *Collection[T] {
	return &Collection[T]{store: s, name: name}
}

// Update loads the mapping, applies fn, and persists the result. The
// save is skipped when fn returns an error. Runs under the collection
// lock; fn must not call back into the same collection.
func (c *Collection[T]) Update(ctx context.Context, fn func(map[string]T) error) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	m, err := c.load(ctx)
	if err != nil {
		return err
	}
	if err := fn(m); err != nil {
		return err
	}
	return c.save(ctx, m)
}

// View loads the mapping and passes it to fn without persisting.
func (c *Collection[T]) View(ctx context.Context, fn func(map[string]T) error) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	m, err := c.load(ctx)
	if err != nil {
		return err
	}
	return fn(m)
}

// load initializes absent backing data to an empty mapping and
// quarantines payloads that do not parse as map[string]T. Corruption
// is self-healing but lossy, so it is logged loudly.
func (c *Collection[T]) load(ctx context.Context) (map[string]T, error) {
	raw, err := c.store.Load(ctx, c.name)
	if err != nil {
		return nil, fmt.Errorf("load collection %s: %w", c.name, err)
	}
	if raw == nil {
		m := map[string]T{}
		if err := c.save(ctx, m); err != nil {
			return nil, err
		}
		return m, nil
	}

	var m map[string]T
	if err := json.Unmarshal(raw, &m); err != nil {
		slog.Error("collection corrupt, quarantining and resetting",
			"collection", c.name,
			"error", err,
		)
		if qerr := c.store.Quarantine(ctx, c.name); qerr != nil {
			return nil, fmt.Errorf("quarantine collection %s: %w", c.name, qerr)
		}
		m = map[string]T{}
		if err := c.save(ctx, m); err != nil {
			return nil, err
		}
		return m, nil
	}
	if m == nil {
		m = map[string]T{}
	}
	return m, nil
}

func (c *Collection[T]) save(ctx context.Context, m map[string]T) error {
	data, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshal collection %s: %w", c.name, err)
	}
	if err := c.store.Save(ctx, c.name, data); err != nil {
		return fmt.Errorf("save collection %s: %w", c.name, err)
	}
	return nil
}
