package state

import (
	"context"
	"errors"
	"log/slog"

	"github.com/mmynk/agencydesk/internal/storage"
)

// Load reads every collection from store into a new State. A missing
// collection gets its default. A collection that cannot be read or decoded
// is logged and also replaced by its default; Load itself never fails.
func Load(ctx context.Context, store storage.Store, opts Options) *State {
	s := New(Snapshot{}, opts)
	def := DefaultSnapshot()

	snap := Snapshot{
		Settings:      load(ctx, store, storage.KeySettings, def.Settings, def.Settings),
		Costs:         load(ctx, store, storage.KeyCosts, nil, def.Costs),
		Services:      load(ctx, store, storage.KeyServices, nil, def.Services),
		Clients:       load(ctx, store, storage.KeyClients, nil, def.Clients),
		Quotes:        load(ctx, store, storage.KeyQuotes, nil, def.Quotes),
		Assets:        load(ctx, store, storage.KeyAssets, nil, def.Assets),
		MonthlySales:  load(ctx, store, storage.KeyMonthlySales, nil, def.MonthlySales),
		TermTemplates: load(ctx, store, storage.KeyTermTemplates, nil, def.TermTemplates),
	}

	s.snap = s.sanitize(snap)
	slog.Info("State loaded",
		"costs", len(s.snap.Costs),
		"services", len(s.snap.Services),
		"clients", len(s.snap.Clients),
		"quotes", len(s.snap.Quotes),
		"assets", len(s.snap.Assets),
		"depreciation_source", s.source,
	)
	return s
}

// load decodes the record under key on top of base, falling back to def.
func load[T any](ctx context.Context, store storage.Store, key storage.Key, base, def T) T {
	rec, err := store.Get(ctx, key)
	if errors.Is(err, storage.ErrNotFound) {
		return def
	}
	if err != nil {
		slog.Error("Failed to read collection, using default", "key", key, "error", err)
		return def
	}

	v := base
	if err := decode(rec, &v); err != nil {
		slog.Warn("Discarding unreadable collection, using default", "key", key, "version", rec.Version, "error", err)
		return def
	}
	return v
}

// sanitize validates every collection of snap, logging what it repaired.
func (s *State) sanitize(snap Snapshot) Snapshot {
	report := func(key storage.Key, fixed int) {
		if fixed > 0 {
			slog.Warn("Repaired invalid records", "key", key, "count", fixed)
		}
	}

	var n int
	snap.Settings, n = sanitizeSettings(snap.Settings)
	report(storage.KeySettings, n)
	snap.Costs, n = s.sanitizeCosts(snap.Costs)
	report(storage.KeyCosts, n)
	snap.Services, n = s.sanitizeServices(snap.Services)
	report(storage.KeyServices, n)
	snap.Clients, n = s.sanitizeClients(snap.Clients)
	report(storage.KeyClients, n)
	snap.Quotes, n = s.sanitizeQuotes(snap.Quotes)
	report(storage.KeyQuotes, n)
	snap.Assets, n = s.sanitizeAssets(snap.Assets)
	report(storage.KeyAssets, n)
	snap.MonthlySales, n = sanitizeMonthlySales(snap.MonthlySales)
	report(storage.KeyMonthlySales, n)
	snap.TermTemplates, n = s.sanitizeTermTemplates(snap.TermTemplates)
	report(storage.KeyTermTemplates, n)
	return snap
}
