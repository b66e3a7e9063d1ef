package state

import (
	"context"
	"log/slog"
	"time"

	"github.com/mmynk/agencydesk/internal/storage"
)

// Persister is an Observer that writes each changed collection to a store.
// Failures are logged and dropped; the in-memory state stays authoritative.
type Persister struct {
	store   storage.Store
	timeout time.Duration
}

// NewPersister returns a Persister writing to store.
func NewPersister(store storage.Store) *Persister {
	return &Persister{store: store, timeout: 5 * time.Second}
}

func (p *Persister) Changed(ctx context.Context, key storage.Key, value any) {
	rec, err := encode(key, value)
	if err != nil {
		slog.Error("Failed to encode collection", "key", key, "error", err)
		return
	}

	// The write outlives a cancelled request.
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), p.timeout)
	defer cancel()

	if err := p.store.Put(ctx, rec); err != nil {
		slog.Error("Failed to persist collection", "key", key, "error", err)
		return
	}
	slog.Debug("Collection persisted", "key", key, "bytes", len(rec.Data))
}
