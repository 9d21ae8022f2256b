// Package storage provides the SQLite-backed key-value persistence layer.
//
// Every persisted structure (profile registry, current-profile pointer,
// per-profile transaction/category/settings collections, UI preferences)
// is serialized to JSON and written under its own key. Reads that hit a
// missing or corrupt value fall back to the caller's default and log a
// warning; they never fail the caller.
package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// Store implements the key-value storage adapter on SQLite.
type Store struct {
	db     *sql.DB
	dbPath string
}

// NewStore creates a new SQLite-backed store.
func NewStore(dbPath string) (*Store, error) {
	if err := validateString(dbPath, "dbPath"); err != nil {
		return nil, err
	}

	// Ensure directory exists
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite doesn't benefit from multiple connections
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Store{
		db:     db,
		dbPath: dbPath,
	}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Get decodes the value stored under key into dest. A missing key or a
// value that fails to decode leaves dest at the caller-supplied default
// and returns false; corruption is logged, never surfaced.
func (s *Store) Get(ctx context.Context, key string, dest any) bool {
	if err := validateContext(ctx); err != nil {
		slog.Warn("storage read with invalid context", "key", key, "error", err)
		return false
	}

	var raw string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&raw)
	if err == sql.ErrNoRows {
		return false
	}
	if err != nil {
		slog.Warn("failed to read stored value, using default", "key", key, "error", err)
		return false
	}

	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		slog.Warn("corrupt stored value, using default", "key", key, "error", err)
		return false
	}

	return true
}

// Set serializes value and overwrites whatever is stored under key.
// Last write wins; there is no merge.
func (s *Store) Set(ctx context.Context, key string, value any) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(key, "key"); err != nil {
		return err
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to serialize value for key %q: %w", key, err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO kv (key, value, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			updated_at = CURRENT_TIMESTAMP`,
		key, string(raw))
	if err != nil {
		return fmt.Errorf("failed to write key %q: %w", key, err)
	}

	slog.Debug("persisted value", "key", key, "bytes", len(raw))
	return nil
}
