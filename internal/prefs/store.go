// Package prefs persists per-panel preferences (e.g. the Documents
// panel's extraction mode) in a small sqlite database. Panel state is
// discarded whenever a panel closes; these preferences are the only
// thing that survives a close/reopen cycle, loaded fresh on open.
package prefs

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// ErrNotFound is returned when no value is stored for a key.
var ErrNotFound = errors.New("not found")

// Store is a sqlite-backed key/value store scoped by panel.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the preference database at path.
func Open(ctx context.Context, path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("create prefs dir: %w", err)
	}
	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	const schema = `CREATE TABLE IF NOT EXISTS panel_prefs (
		panel TEXT NOT NULL,
		key   TEXT NOT NULL,
		value TEXT NOT NULL,
		PRIMARY KEY (panel, key)
	)`
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Get returns the stored value for a panel/key pair.
func (s *Store) Get(ctx context.Context, panel, key string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM panel_prefs WHERE panel = ? AND key = ?`,
		panel, key,
	).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("get pref %s/%s: %w", panel, key, err)
	}
	return value, nil
}

// GetDefault returns the stored value, or fallback when none is set.
func (s *Store) GetDefault(ctx context.Context, panel, key, fallback string) string {
	value, err := s.Get(ctx, panel, key)
	if err != nil {
		return fallback
	}
	return value
}

// Set stores (or replaces) the value for a panel/key pair.
func (s *Store) Set(ctx context.Context, panel, key, value string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO panel_prefs (panel, key, value) VALUES (?, ?, ?)
		 ON CONFLICT (panel, key) DO UPDATE SET value = excluded.value`,
		panel, key, value,
	)
	if err != nil {
		return fmt.Errorf("set pref %s/%s: %w", panel, key, err)
	}
	return nil
}
