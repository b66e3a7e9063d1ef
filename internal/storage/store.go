// Package storage provides abstractions for persistent data storage.
package storage

//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mock_storage

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned by Get when no record exists under the key.
var ErrNotFound = errors.New("record not found")

// Key names one persisted collection.
type Key string

const (
	KeySettings      Key = "agency:settings"
	KeyCosts         Key = "agency:costs"
	KeyServices      Key = "agency:services"
	KeyClients       Key = "agency:clients"
	KeyQuotes        Key = "agency:quotes"
	KeyAssets        Key = "agency:assets"
	KeyMonthlySales  Key = "agency:monthly_sales"
	KeyTermTemplates Key = "agency:term_templates"
)

// Keys lists every collection key in load order.
var Keys = []Key{
	KeySettings,
	KeyCosts,
	KeyServices,
	KeyClients,
	KeyQuotes,
	KeyAssets,
	KeyMonthlySales,
	KeyTermTemplates,
}

// Record is one stored collection: a JSON document plus the schema version
// it was written with. Version 0 marks a bare payload written before
// versioning existed.
type Record struct {
	Key       Key
	Version   int
	Data      []byte
	UpdatedAt time.Time
}

// Store defines the interface for document storage.
// This abstraction allows swapping storage backends (SQLite, DynamoDB,
// memory) without changing the state layer.
type Store interface {
	// Get retrieves the record stored under key.
	// Returns ErrNotFound (possibly wrapped) if nothing is stored.
	Get(ctx context.Context, key Key) (*Record, error)

	// Put creates or replaces the record under rec.Key.
	// UpdatedAt is set by the store when zero.
	Put(ctx context.Context, rec *Record) error

	// Delete removes the record. Deleting a missing key is not an error.
	Delete(ctx context.Context, key Key) error

	// List returns the keys currently stored, sorted.
	List(ctx context.Context) ([]Key, error)

	// Close releases any resources held by the store.
	Close() error
}

// Historian is implemented by stores that keep previous versions of each
// document.
type Historian interface {
	// History returns up to limit previous versions of key, newest first.
	History(ctx context.Context, key Key, limit int) ([]Record, error)
}
