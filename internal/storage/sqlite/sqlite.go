// Package sqlite provides a SQLite-backed implementation of the storage.Store interface.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	"github.com/mmynk/agencydesk/internal/storage"
)

// Ensure SQLiteStore implements storage.Store
var (
	_ storage.Store     = (*SQLiteStore)(nil)
	_ storage.Historian = (*SQLiteStore)(nil)
)

// historyDepth is how many previous versions of a collection are retained.
const historyDepth = 20

// SQLiteStore implements storage.Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// New creates a new SQLiteStore with the given database path.
// It creates the parent directories and runs migrations automatically.
func New(dbPath string) (*SQLiteStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	// Pragmas go in the DSN so every pooled connection gets them.
	dsn := "file:" + dbPath + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Get retrieves the document stored under key.
func (s *SQLiteStore) Get(ctx context.Context, key storage.Key) (*storage.Record, error) {
	var (
		rec       = &storage.Record{Key: key}
		data      string
		updatedAt int64
	)
	err := s.db.QueryRowContext(ctx,
		"SELECT version, data, updated_at FROM documents WHERE key = ?",
		string(key),
	).Scan(&rec.Version, &data, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", storage.ErrNotFound, key)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get document: %w", err)
	}

	rec.Data = []byte(data)
	rec.UpdatedAt = time.UnixMilli(updatedAt).UTC()
	return rec, nil
}

// Put replaces the document under rec.Key, moving the previous version into
// the history table.
func (s *SQLiteStore) Put(ctx context.Context, rec *storage.Record) error {
	if rec.Key == "" {
		return fmt.Errorf("record key is required")
	}
	if rec.UpdatedAt.IsZero() {
		rec.UpdatedAt = time.Now().UTC()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO document_history (key, version, data, updated_at)
		 SELECT key, version, data, updated_at FROM documents WHERE key = ?`,
		string(rec.Key),
	)
	if err != nil {
		return fmt.Errorf("failed to archive document: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`DELETE FROM document_history WHERE key = ? AND id NOT IN (
		     SELECT id FROM document_history WHERE key = ? ORDER BY id DESC LIMIT ?
		 )`,
		string(rec.Key), string(rec.Key), historyDepth,
	)
	if err != nil {
		return fmt.Errorf("failed to trim document history: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO documents (key, version, data, updated_at) VALUES (?, ?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET
		     version = excluded.version,
		     data = excluded.data,
		     updated_at = excluded.updated_at`,
		string(rec.Key), rec.Version, string(rec.Data), rec.UpdatedAt.UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("failed to upsert document: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// Delete removes a document and its history.
func (s *SQLiteStore) Delete(ctx context.Context, key storage.Key) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM documents WHERE key = ?", string(key)); err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM document_history WHERE key = ?", string(key)); err != nil {
		return fmt.Errorf("failed to delete document history: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// List returns the stored keys in order.
func (s *SQLiteStore) List(ctx context.Context) ([]storage.Key, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT key FROM documents ORDER BY key")
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	defer rows.Close()

	var keys []storage.Key
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, fmt.Errorf("failed to scan key: %w", err)
		}
		keys = append(keys, storage.Key(key))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate documents: %w", err)
	}
	return keys, nil
}

// History returns up to limit previous versions of a document, newest first.
func (s *SQLiteStore) History(ctx context.Context, key storage.Key, limit int) ([]storage.Record, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT version, data, updated_at FROM document_history WHERE key = ? ORDER BY id DESC LIMIT ?",
		string(key), limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get document history: %w", err)
	}
	defer rows.Close()

	var history []storage.Record
	for rows.Next() {
		var (
			rec       = storage.Record{Key: key}
			data      string
			updatedAt int64
		)
		if err := rows.Scan(&rec.Version, &data, &updatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan history: %w", err)
		}
		rec.Data = []byte(data)
		rec.UpdatedAt = time.UnixMilli(updatedAt).UTC()
		history = append(history, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate history: %w", err)
	}
	return history, nil
}
