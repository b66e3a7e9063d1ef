package sqlite

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mmynk/agencydesk/internal/storage"
)

func TestSQLiteStore(t *testing.T) {
	// Create temp directory for test database
	tempDir, err := os.MkdirTemp("", "agencydesk-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tempDir)

	dbPath := filepath.Join(tempDir, "nested", "test.db")
	store, err := New(dbPath)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	defer store.Close()

	ctx := context.Background()

	t.Run("Get missing key returns ErrNotFound", func(t *testing.T) {
		_, err := store.Get(ctx, storage.KeyQuotes)
		if !errors.Is(err, storage.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("Put then Get returns the document", func(t *testing.T) {
		rec := &storage.Record{Key: storage.KeyCosts, Version: 1, Data: []byte(`[{"id":"c1","amount":1000}]`)}
		if err := store.Put(ctx, rec); err != nil {
			t.Fatalf("Put failed: %v", err)
		}
		if rec.UpdatedAt.IsZero() {
			t.Error("Expected UpdatedAt to be set")
		}

		got, err := store.Get(ctx, storage.KeyCosts)
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if got.Version != 1 {
			t.Errorf("Version = %d, want 1", got.Version)
		}
		if string(got.Data) != string(rec.Data) {
			t.Errorf("Data = %s, want %s", got.Data, rec.Data)
		}
		if got.UpdatedAt.UnixMilli() != rec.UpdatedAt.UnixMilli() {
			t.Errorf("UpdatedAt = %v, want %v", got.UpdatedAt, rec.UpdatedAt)
		}
	})

	t.Run("Put replaces and archives the previous version", func(t *testing.T) {
		key := storage.KeyClients
		for i := 0; i < 3; i++ {
			rec := &storage.Record{
				Key:       key,
				Version:   1,
				Data:      []byte(fmt.Sprintf(`[{"id":"cl%d"}]`, i)),
				UpdatedAt: time.Date(2024, time.May, 1, 12, i, 0, 0, time.UTC),
			}
			if err := store.Put(ctx, rec); err != nil {
				t.Fatalf("Put %d failed: %v", i, err)
			}
		}

		got, err := store.Get(ctx, key)
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if string(got.Data) != `[{"id":"cl2"}]` {
			t.Errorf("Data = %s", got.Data)
		}

		history, err := store.History(ctx, key, 10)
		if err != nil {
			t.Fatalf("History failed: %v", err)
		}
		if len(history) != 2 {
			t.Fatalf("expected 2 archived versions, got %d", len(history))
		}
		if string(history[0].Data) != `[{"id":"cl1"}]` {
			t.Errorf("newest archived = %s", history[0].Data)
		}
	})

	t.Run("History is trimmed", func(t *testing.T) {
		key := storage.KeyMonthlySales
		for i := 0; i < historyDepth+5; i++ {
			if err := store.Put(ctx, &storage.Record{Key: key, Version: 1, Data: []byte("[]")}); err != nil {
				t.Fatalf("Put failed: %v", err)
			}
		}
		history, err := store.History(ctx, key, 100)
		if err != nil {
			t.Fatalf("History failed: %v", err)
		}
		if len(history) != historyDepth {
			t.Errorf("history length = %d, want %d", len(history), historyDepth)
		}
	})

	t.Run("List and Delete", func(t *testing.T) {
		keys, err := store.List(ctx)
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if len(keys) != 3 {
			t.Errorf("expected 3 keys, got %v", keys)
		}

		if err := store.Delete(ctx, storage.KeyCosts); err != nil {
			t.Fatalf("Delete failed: %v", err)
		}
		if _, err := store.Get(ctx, storage.KeyCosts); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("expected ErrNotFound after delete, got %v", err)
		}
		if err := store.Delete(ctx, storage.KeyCosts); err != nil {
			t.Errorf("deleting a missing key should not fail: %v", err)
		}
	})
}

func TestNew_Reopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "reopen.db")
	ctx := context.Background()

	store, err := New(dbPath)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	if err := store.Put(ctx, &storage.Record{Key: storage.KeySettings, Version: 1, Data: []byte(`{}`)}); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	store.Close()

	// Migrations must be a no-op on an existing database.
	store, err = New(dbPath)
	if err != nil {
		t.Fatalf("Failed to reopen store: %v", err)
	}
	defer store.Close()

	if _, err := store.Get(ctx, storage.KeySettings); err != nil {
		t.Errorf("Get after reopen failed: %v", err)
	}
}
