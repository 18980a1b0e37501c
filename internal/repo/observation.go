package repo

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pkordes/mhike/internal/domain"
)

// ObservationRepo defines the persistence operations for Observations.
// Every observation belongs to one hike; SQLite rejects an observation whose
// hike does not exist and removes observations together with their hike.
type ObservationRepo interface {
	// Create inserts a new observation and returns the store-generated id.
	// Returns domain.ErrConstraint if obs.HikeID does not reference a hike.
	Create(ctx context.Context, obs domain.Observation) (int64, error)

	// GetByID retrieves a single observation by primary key.
	// Returns domain.ErrNotFound if no observation with that ID exists.
	GetByID(ctx context.Context, id int64) (domain.Observation, error)

	// ListByHikeID returns the observations of one hike ordered by the stored
	// time text, descending.
	ListByHikeID(ctx context.Context, hikeID int64) ([]domain.Observation, error)

	// Update replaces title, time and comment of the observation with the
	// given ID. The owning hike is not changed. The bool result is false when
	// no such observation exists; that is not an error.
	Update(ctx context.Context, obs domain.Observation) (bool, error)

	// Delete removes an observation by ID. The bool result is false when no
	// such observation exists.
	Delete(ctx context.Context, id int64) (bool, error)
}

// sqliteObservationRepo is the SQLite implementation of ObservationRepo.
type sqliteObservationRepo struct {
	db db
}

// NewObservationRepo constructs an ObservationRepo backed by the provided db handle.
func NewObservationRepo(db db) ObservationRepo {
	return &sqliteObservationRepo{db: db}
}

func (r *sqliteObservationRepo) Create(ctx context.Context, obs domain.Observation) (int64, error) {
	const q = `
		INSERT INTO observations (hikeId, title, time, comment)
		VALUES (?, ?, ?, ?)`

	res, err := r.db.ExecContext(ctx, q, obs.HikeID, obs.Title, obs.Time, nullable(obs.Comment))
	if err != nil {
		return 0, fmt.Errorf("repo.ObservationRepo.Create: %w", mapErr(err))
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("repo.ObservationRepo.Create: last insert id: %w", err)
	}
	return id, nil
}

func (r *sqliteObservationRepo) GetByID(ctx context.Context, id int64) (domain.Observation, error) {
	const q = `SELECT id, hikeId, title, time, comment FROM observations WHERE id = ?`

	result, err := scanObservation(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		return domain.Observation{}, fmt.Errorf("repo.ObservationRepo.GetByID: %w", mapErr(err))
	}
	return result, nil
}

// ListByHikeID sorts on the time text. That is chronological only while
// every value follows domain.TimeLayout; changing the layout means revisiting
// this ORDER BY.
func (r *sqliteObservationRepo) ListByHikeID(ctx context.Context, hikeID int64) ([]domain.Observation, error) {
	const q = `
		SELECT id, hikeId, title, time, comment
		FROM observations
		WHERE hikeId = ?
		ORDER BY time DESC, id ASC`

	rows, err := r.db.QueryContext(ctx, q, hikeID)
	if err != nil {
		return nil, fmt.Errorf("repo.ObservationRepo.ListByHikeID: %w", err)
	}
	defer rows.Close()

	var list []domain.Observation
	for rows.Next() {
		o, err := scanObservation(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.ObservationRepo.ListByHikeID: scan: %w", err)
		}
		list = append(list, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.ObservationRepo.ListByHikeID: rows: %w", err)
	}

	return list, nil
}

func (r *sqliteObservationRepo) Update(ctx context.Context, obs domain.Observation) (bool, error) {
	const q = `
		UPDATE observations
		SET title   = ?,
		    time    = ?,
		    comment = ?
		WHERE id = ?`

	res, err := r.db.ExecContext(ctx, q, obs.Title, obs.Time, nullable(obs.Comment), obs.ID)
	if err != nil {
		return false, fmt.Errorf("repo.ObservationRepo.Update: %w", mapErr(err))
	}

	ok, err := affected(res)
	if err != nil {
		return false, fmt.Errorf("repo.ObservationRepo.Update: %w", err)
	}
	return ok, nil
}

func (r *sqliteObservationRepo) Delete(ctx context.Context, id int64) (bool, error) {
	const q = `DELETE FROM observations WHERE id = ?`

	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return false, fmt.Errorf("repo.ObservationRepo.Delete: %w", mapErr(err))
	}

	ok, err := affected(res)
	if err != nil {
		return false, fmt.Errorf("repo.ObservationRepo.Delete: %w", err)
	}
	return ok, nil
}

func scanObservation(s scanner) (domain.Observation, error) {
	var (
		o       domain.Observation
		comment sql.NullString
	)
	if err := s.Scan(&o.ID, &o.HikeID, &o.Title, &o.Time, &comment); err != nil {
		return domain.Observation{}, err
	}
	o.Comment = comment.String
	return o, nil
}
