// Package store persists the bot's three collections — users, tasks,
// submissions — as whole keyed mappings. Backends move raw payloads;
// Collection adds typing, corruption quarantine, and per-collection
// locking.
package store

import "context"

// Store is a byte-level backend for named collections. Load returns
// (nil, nil) when the collection has no backing data yet. Save
// overwrites the full payload. Quarantine moves a corrupt payload
// aside under a unique name so the collection can be reinitialized
// without losing the evidence.
type Store interface {
	Load(ctx context.Context, collection string) ([]byte, error)
	Save(ctx context.Context, collection string, data []byte) error
	Quarantine(ctx context.Context, collection string) error
	Close() error
}
