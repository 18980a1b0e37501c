// Package repo contains all database access logic for the hike logbook.
// Each resource has its own file with an interface and a SQLite implementation.
// No business logic lives here — only SQL and type mapping.
package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/pkordes/mhike/internal/domain"
)

// db is the minimal interface satisfied by both *sql.DB and *sql.Tx.
// Accepting it instead of *sql.DB lets a caller run several repo calls inside
// one transaction when it needs to.
type db interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// scanner is satisfied by both *sql.Row and *sql.Rows, allowing the scan
// helpers to be reused for QueryRow and Query calls.
type scanner interface {
	Scan(dest ...any) error
}

// mapErr translates driver errors into domain sentinels.
// Constraint failures (NOT NULL, FOREIGN KEY, CHECK) become domain.ErrConstraint
// with the driver message kept for context; sql.ErrNoRows becomes
// domain.ErrNotFound. Anything else is returned unchanged.
func mapErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNotFound
	}
	var se *sqlite.Error
	if errors.As(err, &se) && se.Code()&0xff == sqlite3.SQLITE_CONSTRAINT {
		return fmt.Errorf("%w: %s", domain.ErrConstraint, se.Error())
	}
	return err
}

// nullable maps an optional text field to NULL when it is empty.
func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// affected reports whether a statement touched at least one row.
func affected(res sql.Result) (bool, error) {
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return n > 0, nil
}
