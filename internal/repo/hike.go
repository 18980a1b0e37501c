package repo

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pkordes/mhike/internal/domain"
)

// HikeRepo defines the persistence operations for Hikes.
// The service layer depends on this interface, not the concrete SQLite
// implementation, which allows the service to be unit-tested with a mock.
type HikeRepo interface {
	// Create inserts a new hike and returns the store-generated id.
	// hike.ID is ignored.
	Create(ctx context.Context, hike domain.Hike) (int64, error)

	// GetByID retrieves a single hike by primary key.
	// Returns domain.ErrNotFound if no hike with that ID exists.
	GetByID(ctx context.Context, id int64) (domain.Hike, error)

	// List returns all hikes ordered by the stored date text, descending.
	List(ctx context.Context) ([]domain.Hike, error)

	// Update replaces every mutable field of the hike with the given ID.
	// The bool result is false when no such hike exists; that is not an error.
	Update(ctx context.Context, hike domain.Hike) (bool, error)

	// Delete removes a hike by ID. SQLite cascades the delete to the hike's
	// observations. The bool result is false when no such hike exists.
	Delete(ctx context.Context, id int64) (bool, error)
}

// sqliteHikeRepo is the SQLite implementation of HikeRepo.
type sqliteHikeRepo struct {
	db db
}

// NewHikeRepo constructs a HikeRepo backed by the provided db handle.
// In production pass store.Store.DB(); a *sql.Tx works as well.
func NewHikeRepo(db db) HikeRepo {
	return &sqliteHikeRepo{db: db}
}

const hikeColumns = `id, name, location, date, hasParking, distance, duration,
		       elevation, difficulty, groupSize, terrain, description`

// Create inserts a new hike row and returns its id.
func (r *sqliteHikeRepo) Create(ctx context.Context, hike domain.Hike) (int64, error) {
	const q = `
		INSERT INTO hikes (name, location, date, hasParking, distance, duration,
		                   elevation, difficulty, groupSize, terrain, description)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	res, err := r.db.ExecContext(ctx, q,
		hike.Name,
		hike.Location,
		hike.Date,
		hike.HasParking,
		hike.Distance,
		hike.Duration,
		hike.Elevation,
		string(hike.Difficulty),
		hike.GroupSize,
		nullable(hike.Terrain), // "" becomes NULL
		nullable(hike.Description),
	)
	if err != nil {
		return 0, fmt.Errorf("repo.HikeRepo.Create: %w", mapErr(err))
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("repo.HikeRepo.Create: last insert id: %w", err)
	}
	return id, nil
}

// GetByID retrieves a hike by primary key.
func (r *sqliteHikeRepo) GetByID(ctx context.Context, id int64) (domain.Hike, error) {
	q := `SELECT ` + hikeColumns + ` FROM hikes WHERE id = ?`

	result, err := scanHike(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		return domain.Hike{}, fmt.Errorf("repo.HikeRepo.GetByID: %w", mapErr(err))
	}
	return result, nil
}

// List returns all hikes ordered by date descending.
// date is MM/DD/YYYY text, so "12/01/2023" sorts ahead of "01/05/2024".
// Rows sharing a date keep insertion order.
func (r *sqliteHikeRepo) List(ctx context.Context) ([]domain.Hike, error) {
	q := `SELECT ` + hikeColumns + ` FROM hikes ORDER BY date DESC, id ASC`

	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.HikeRepo.List: %w", err)
	}
	defer rows.Close()

	var hikes []domain.Hike
	for rows.Next() {
		h, err := scanHike(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.HikeRepo.List: scan: %w", err)
		}
		hikes = append(hikes, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.HikeRepo.List: rows: %w", err)
	}

	return hikes, nil
}

// Update overwrites all mutable columns of a hike.
func (r *sqliteHikeRepo) Update(ctx context.Context, hike domain.Hike) (bool, error) {
	const q = `
		UPDATE hikes
		SET name        = ?,
		    location    = ?,
		    date        = ?,
		    hasParking  = ?,
		    distance    = ?,
		    duration    = ?,
		    elevation   = ?,
		    difficulty  = ?,
		    groupSize   = ?,
		    terrain     = ?,
		    description = ?
		WHERE id = ?`

	res, err := r.db.ExecContext(ctx, q,
		hike.Name,
		hike.Location,
		hike.Date,
		hike.HasParking,
		hike.Distance,
		hike.Duration,
		hike.Elevation,
		string(hike.Difficulty),
		hike.GroupSize,
		nullable(hike.Terrain),
		nullable(hike.Description),
		hike.ID,
	)
	if err != nil {
		return false, fmt.Errorf("repo.HikeRepo.Update: %w", mapErr(err))
	}

	ok, err := affected(res)
	if err != nil {
		return false, fmt.Errorf("repo.HikeRepo.Update: %w", err)
	}
	return ok, nil
}

// Delete removes a hike by primary key.
func (r *sqliteHikeRepo) Delete(ctx context.Context, id int64) (bool, error) {
	const q = `DELETE FROM hikes WHERE id = ?`

	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return false, fmt.Errorf("repo.HikeRepo.Delete: %w", mapErr(err))
	}

	ok, err := affected(res)
	if err != nil {
		return false, fmt.Errorf("repo.HikeRepo.Delete: %w", err)
	}
	return ok, nil
}

// scanHike maps a single database row into a domain.Hike.
// It handles the nullable terrain and description columns.
func scanHike(s scanner) (domain.Hike, error) {
	var (
		h           domain.Hike
		difficulty  string
		terrain     sql.NullString
		description sql.NullString
	)

	err := s.Scan(
		&h.ID, &h.Name, &h.Location, &h.Date, &h.HasParking, &h.Distance, &h.Duration,
		&h.Elevation, &difficulty, &h.GroupSize, &terrain, &description,
	)
	if err != nil {
		return domain.Hike{}, err
	}

	h.Difficulty = domain.Difficulty(difficulty)
	h.Terrain = terrain.String
	h.Description = description.String
	return h, nil
}
