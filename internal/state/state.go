// Package state holds the application state: every collection the agency
// works with, the operations that change them and the observers told about
// each change.
//
// A State is safe for concurrent use. Observers run while the state lock is
// held, in mutation order, and must not call back into the State.
package state

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/agencydesk/internal/calculator"
	"github.com/mmynk/agencydesk/internal/models"
	"github.com/mmynk/agencydesk/internal/storage"
)

var (
	// ErrNotFound is returned when an operation names a record that does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput is returned when a record fails validation.
	ErrInvalidInput = errors.New("invalid input")
)

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

func notFoundf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrNotFound, fmt.Sprintf(format, args...))
}

// Snapshot is a full copy of every collection.
type Snapshot struct {
	Settings      models.Settings
	Costs         []models.Cost
	Services      []models.Service
	Clients       []models.Client
	Quotes        []models.Quote
	Assets        []models.Asset
	MonthlySales  []models.MonthlySale
	TermTemplates []models.TermTemplate
}

// Observer is told about every committed change. Value is a private copy
// of the collection stored under key.
type Observer interface {
	Changed(ctx context.Context, key storage.Key, value any)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(ctx context.Context, key storage.Key, value any)

func (f ObserverFunc) Changed(ctx context.Context, key storage.Key, value any) {
	f(ctx, key, value)
}

// Options configures a State.
type Options struct {
	// DepreciationSource picks how assets enter the BEP fixed cost base.
	// Defaults to calculator.DepreciationFromLedger.
	DepreciationSource calculator.DepreciationSource

	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time

	// NewID generates record identifiers. Defaults to random UUIDs.
	NewID func() string
}

// State is the single in-memory copy of the agency's data.
type State struct {
	mu        sync.RWMutex
	snap      Snapshot
	observers []Observer

	source calculator.DepreciationSource
	now    func() time.Time
	newID  func() string
}

// New returns a State seeded with snap.
func New(snap Snapshot, opts Options) *State {
	s := &State{
		snap:   cloneSnapshot(snap),
		source: opts.DepreciationSource,
		now:    opts.Now,
		newID:  opts.NewID,
	}
	if s.source == "" {
		s.source = calculator.DepreciationFromLedger
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.newID == nil {
		s.newID = func() string { return uuid.New().String() }
	}
	return s
}

// Observe registers o for every later change.
func (s *State) Observe(o Observer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = append(s.observers, o)
}

// DepreciationSource reports the configured depreciation source.
func (s *State) DepreciationSource() calculator.DepreciationSource {
	return s.source
}

// Snapshot returns a copy of every collection.
func (s *State) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneSnapshot(s.snap)
}

func (s *State) today() models.Date {
	return models.DateOf(s.now())
}

// commit tells observers about the collections under keys. Callers hold
// the write lock.
func (s *State) commit(ctx context.Context, keys ...storage.Key) {
	for _, key := range keys {
		for _, o := range s.observers {
			o.Changed(ctx, key, s.collection(key))
		}
	}
}

// collection returns a copy of the collection stored under key.
func (s *State) collection(key storage.Key) any {
	switch key {
	case storage.KeySettings:
		return s.snap.Settings
	case storage.KeyCosts:
		return clone(s.snap.Costs)
	case storage.KeyServices:
		return clone(s.snap.Services)
	case storage.KeyClients:
		return clone(s.snap.Clients)
	case storage.KeyQuotes:
		return cloneQuotes(s.snap.Quotes)
	case storage.KeyAssets:
		return clone(s.snap.Assets)
	case storage.KeyMonthlySales:
		return clone(s.snap.MonthlySales)
	case storage.KeyTermTemplates:
		return clone(s.snap.TermTemplates)
	}
	return nil
}

// clone copies a slice, never returning nil so empty collections encode as [].
func clone[T any](in []T) []T {
	return append(make([]T, 0, len(in)), in...)
}

func cloneQuote(q models.Quote) models.Quote {
	q.Items = clone(q.Items)
	return q
}

func cloneQuotes(in []models.Quote) []models.Quote {
	out := make([]models.Quote, len(in))
	for i, q := range in {
		out[i] = cloneQuote(q)
	}
	return out
}

func cloneSnapshot(snap Snapshot) Snapshot {
	return Snapshot{
		Settings:      snap.Settings,
		Costs:         clone(snap.Costs),
		Services:      clone(snap.Services),
		Clients:       clone(snap.Clients),
		Quotes:        cloneQuotes(snap.Quotes),
		Assets:        clone(snap.Assets),
		MonthlySales:  clone(snap.MonthlySales),
		TermTemplates: clone(snap.TermTemplates),
	}
}

// indexOf returns the position of the first element matching, or -1.
func indexOf[T any](items []T, match func(T) bool) int {
	for i, item := range items {
		if match(item) {
			return i
		}
	}
	return -1
}
