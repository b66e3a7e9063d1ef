// Package memory provides an in-process implementation of storage.Store.
// Nothing survives a restart.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/mmynk/agencydesk/internal/storage"
)

var _ storage.Store = (*Store)(nil)

// Store keeps records in a map.
type Store struct {
	mu      sync.RWMutex
	records map[storage.Key]storage.Record
}

// New returns an empty Store.
func New() *Store {
	return &Store{records: make(map[storage.Key]storage.Record)}
}

func (s *Store) Get(_ context.Context, key storage.Key) (*storage.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.records[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", storage.ErrNotFound, key)
	}
	rec.Data = append([]byte(nil), rec.Data...)
	return &rec, nil
}

func (s *Store) Put(_ context.Context, rec *storage.Record) error {
	if rec.Key == "" {
		return fmt.Errorf("record key is required")
	}
	stored := *rec
	stored.Data = append([]byte(nil), rec.Data...)
	if stored.UpdatedAt.IsZero() {
		stored.UpdatedAt = time.Now().UTC()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[rec.Key] = stored
	return nil
}

func (s *Store) Delete(_ context.Context, key storage.Key) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.records, key)
	return nil
}

func (s *Store) List(_ context.Context) ([]storage.Key, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]storage.Key, 0, len(s.records))
	for k := range s.records {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys, nil
}

func (s *Store) Close() error {
	return nil
}
