// Package testutil provides shared helpers for tests that need a real
// database. Every helper opens a fresh SQLite file under t.TempDir(), so tests
// never share state and need no external services.
package testutil

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite" // registers "sqlite" driver for database/sql

	"github.com/pkordes/mhike/internal/store"
)

// Logger returns a logger that discards everything, for code under test that
// requires a *slog.Logger.
func Logger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// NewStore opens a store in a temporary directory and applies all migrations.
// The store is closed automatically when the test (and all its subtests) finish.
func NewStore(t *testing.T) *store.Store {
	t.Helper()

	path := filepath.Join(t.TempDir(), "mhike.db")
	s, err := store.Open(context.Background(), path, Logger())
	if err != nil {
		t.Fatalf("testutil.NewStore: open: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	if err := s.Initialize(context.Background()); err != nil {
		t.Fatalf("testutil.NewStore: initialize: %v", err)
	}
	return s
}

// NewSQLDB opens a bare *sql.DB on an empty SQLite file with foreign keys on.
// Use this when a test needs to drive goose directly.
// The connection is closed automatically when the test finishes.
func NewSQLDB(t *testing.T) *sql.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "raw.db")
	db, err := sql.Open("sqlite", path+"?_pragma=foreign_keys(1)")
	if err != nil {
		t.Fatalf("testutil.NewSQLDB: open: %v", err)
	}

	if err := db.PingContext(context.Background()); err != nil {
		db.Close()
		t.Fatalf("testutil.NewSQLDB: ping: %v", err)
	}

	t.Cleanup(func() { db.Close() })
	return db
}
