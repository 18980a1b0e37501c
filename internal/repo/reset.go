package repo

import (
	"context"
	"database/sql"
	"fmt"
)

// ResetRepo wipes the whole logbook.
type ResetRepo interface {
	// ResetAll deletes every observation and every hike, then reclaims the
	// freed space. It cannot be undone.
	ResetAll(ctx context.Context) error
}

// sqliteResetRepo needs the *sql.DB itself rather than the db interface
// because it opens its own transaction.
type sqliteResetRepo struct {
	db *sql.DB
}

// NewResetRepo constructs a ResetRepo backed by the provided database.
func NewResetRepo(db *sql.DB) ResetRepo {
	return &sqliteResetRepo{db: db}
}

// ResetAll runs both deletes in one transaction so no reader ever sees hikes
// without their observations or the reverse. SQLite refuses VACUUM inside a
// transaction, so it runs after the commit; if it fails the data is already
// gone and only the space reclaim is lost.
func (r *sqliteResetRepo) ResetAll(ctx context.Context) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("repo.ResetRepo.ResetAll: begin: %w", err)
	}
	defer tx.Rollback() // no-op after Commit

	if _, err := tx.ExecContext(ctx, `DELETE FROM observations`); err != nil {
		return fmt.Errorf("repo.ResetRepo.ResetAll: delete observations: %w", mapErr(err))
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM hikes`); err != nil {
		return fmt.Errorf("repo.ResetRepo.ResetAll: delete hikes: %w", mapErr(err))
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("repo.ResetRepo.ResetAll: commit: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, `VACUUM`); err != nil {
		return fmt.Errorf("repo.ResetRepo.ResetAll: vacuum: %w", err)
	}
	return nil
}
