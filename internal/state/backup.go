package state

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mmynk/agencydesk/internal/storage"
)

// legacyKeys maps browser local-storage keys of the web app to collections.
var legacyKeys = map[string]storage.Key{
	"settings":       storage.KeySettings,
	"costs":          storage.KeyCosts,
	"services":       storage.KeyServices,
	"clients":        storage.KeyClients,
	"quotes":         storage.KeyQuotes,
	"assets":         storage.KeyAssets,
	"monthly_sales":  storage.KeyMonthlySales,
	"monthlysales":   storage.KeyMonthlySales,
	"term_templates": storage.KeyTermTemplates,
	"termtemplates":  storage.KeyTermTemplates,
}

// ResolveKey maps a collection name to its key. It accepts the key itself
// ("agency:costs") and the web app's names ("liu_costs", "agency_costs").
func ResolveKey(name string) (storage.Key, bool) {
	for _, k := range storage.Keys {
		if string(k) == name {
			return k, true
		}
	}
	n := strings.ToLower(name)
	for _, prefix := range []string{"liu_", "agency_"} {
		n = strings.TrimPrefix(n, prefix)
	}
	k, ok := legacyKeys[n]
	return k, ok
}

// Export returns every collection as versioned JSON, keyed by collection.
func (s *State) Export() (map[storage.Key][]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[storage.Key][]byte, len(storage.Keys))
	for _, key := range storage.Keys {
		data, err := json.Marshal(s.collection(key))
		if err != nil {
			return nil, fmt.Errorf("failed to encode %s: %w", key, err)
		}
		out[key] = data
	}
	return out, nil
}

// Restore replaces collections with the given documents. Documents written
// by the web app carry no version and are upgraded like legacy records.
// Every document is decoded and validated before any collection is replaced,
// so a bad document leaves the state untouched.
func (s *State) Restore(ctx context.Context, docs map[string][]byte, version int) ([]storage.Key, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := cloneSnapshot(s.snap)
	var restored []storage.Key
	for name, data := range docs {
		key, ok := ResolveKey(name)
		if !ok {
			return nil, invalidf("unknown collection %q", name)
		}
		rec := &storage.Record{Key: key, Version: version, Data: data}
		if err := s.decodeInto(&next, rec); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		restored = append(restored, key)
	}

	s.snap = s.sanitize(next)
	s.commit(ctx, restored...)
	return restored, nil
}

func (s *State) decodeInto(snap *Snapshot, rec *storage.Record) error {
	switch rec.Key {
	case storage.KeySettings:
		v := DefaultSettings()
		if err := decode(rec, &v); err != nil {
			return err
		}
		snap.Settings = v
	case storage.KeyCosts:
		return decodeSlice(rec, &snap.Costs)
	case storage.KeyServices:
		return decodeSlice(rec, &snap.Services)
	case storage.KeyClients:
		return decodeSlice(rec, &snap.Clients)
	case storage.KeyQuotes:
		return decodeSlice(rec, &snap.Quotes)
	case storage.KeyAssets:
		return decodeSlice(rec, &snap.Assets)
	case storage.KeyMonthlySales:
		return decodeSlice(rec, &snap.MonthlySales)
	case storage.KeyTermTemplates:
		return decodeSlice(rec, &snap.TermTemplates)
	}
	return nil
}

func decodeSlice[T any](rec *storage.Record, dst *[]T) error {
	var v []T
	if err := decode(rec, &v); err != nil {
		return err
	}
	*dst = clone(v)
	return nil
}
