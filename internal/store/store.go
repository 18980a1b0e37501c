// Package store owns the embedded SQLite database that backs the hike logbook.
// A Store is opened once by the composition root, handed to the repositories,
// and closed explicitly on shutdown. There is no package-level handle.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite" // registers the "sqlite" driver for database/sql

	"github.com/pkordes/mhike/migrations"
)

// MemoryPath opens a private in-memory database. Each pooled connection of an
// in-memory database sees its own empty schema, so callers using it must not
// rely on more than one connection.
const MemoryPath = ":memory:"

// dsnPragmas are applied by the driver to every new connection.
// foreign_keys is a per-connection setting in SQLite, so setting it once with
// Exec would leave later pooled connections without cascade enforcement.
const dsnPragmas = "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"

// Store is the single logical handle to the local database.
type Store struct {
	db   *sql.DB
	path string
	log  *slog.Logger
}

// Open creates the parent directory of path if needed, opens the SQLite
// database there and verifies it is reachable. The schema is not touched;
// call Initialize before using the repositories.
func Open(ctx context.Context, path string, log *slog.Logger) (*Store, error) {
	if log == nil {
		log = slog.Default()
	}

	if path != MemoryPath {
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("store.Open: create data dir: %w", err)
			}
		}
	}

	db, err := sql.Open("sqlite", path+"?"+dsnPragmas)
	if err != nil {
		return nil, fmt.Errorf("store.Open: %w", err)
	}
	if path == MemoryPath {
		db.SetMaxOpenConns(1)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("store.Open: ping: %w", err)
	}

	log.Debug("database opened", "path", path)
	return &Store{db: db, path: path, log: log}, nil
}

// Initialize creates the hikes and observations tables if they are absent and
// checks that foreign-key enforcement is active. It is safe to call on every
// start: already-applied migrations are skipped.
func (s *Store) Initialize(ctx context.Context) error {
	provider, err := goose.NewProvider(goose.DialectSQLite3, s.db, migrations.FS)
	if err != nil {
		return fmt.Errorf("store.Store.Initialize: create goose provider: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("store.Store.Initialize: run migrations: %w", err)
	}
	for _, r := range results {
		s.log.Info("migration applied",
			"version", r.Source.Version,
			"file", filepath.Base(r.Source.Path),
			"duration_ms", r.Duration.Milliseconds(),
		)
	}

	enabled, err := s.ForeignKeysEnabled(ctx)
	if err != nil {
		return fmt.Errorf("store.Store.Initialize: %w", err)
	}
	if !enabled {
		return fmt.Errorf("store.Store.Initialize: foreign key enforcement is off")
	}
	return nil
}

// ForeignKeysEnabled reports whether the connection serving the query
// enforces foreign keys.
func (s *Store) ForeignKeysEnabled(ctx context.Context) (bool, error) {
	var on int
	if err := s.db.QueryRowContext(ctx, `PRAGMA foreign_keys`).Scan(&on); err != nil {
		return false, fmt.Errorf("read foreign_keys pragma: %w", err)
	}
	return on == 1, nil
}

// DB returns the underlying handle for the repositories.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Path returns the database location the store was opened with.
func (s *Store) Path() string {
	return s.path
}

// Close releases the database handle. After Close the repositories built on
// this store return errors.
func (s *Store) Close() error {
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("store.Store.Close: %w", err)
	}
	return nil
}
