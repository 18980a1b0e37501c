// Package service contains the business logic for the hike logbook.
// Services validate inputs, enforce business rules, and orchestrate repo calls.
// No SQL lives here — services depend on repo interfaces, not implementations.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/pkordes/mhike/internal/domain"
	"github.com/pkordes/mhike/internal/repo"
)

// HikeService implements business logic for Hike operations and the
// logbook-wide reset.
type HikeService struct {
	hikes repo.HikeRepo
	reset repo.ResetRepo
	log   *slog.Logger
}

// NewHikeService constructs a HikeService backed by the provided repos.
func NewHikeService(hikes repo.HikeRepo, reset repo.ResetRepo, log *slog.Logger) *HikeService {
	return &HikeService{hikes: hikes, reset: reset, log: log}
}

// Create validates and persists a new hike. The returned hike carries the
// store-generated ID and the trimmed field values that were saved.
// Returns domain.ErrValidation if input violates business rules.
func (s *HikeService) Create(ctx context.Context, hike domain.Hike) (domain.Hike, error) {
	hike, err := normalizeHike(hike)
	if err != nil {
		return domain.Hike{}, err
	}
	id, err := s.hikes.Create(ctx, hike)
	if err != nil {
		return domain.Hike{}, fmt.Errorf("service.HikeService.Create: %w", err)
	}
	hike.ID = id
	s.log.DebugContext(ctx, "hike created", "hike_id", id)
	return hike, nil
}

// GetByID returns a single hike by ID.
// Returns domain.ErrNotFound if no hike with that ID exists.
func (s *HikeService) GetByID(ctx context.Context, id int64) (domain.Hike, error) {
	result, err := s.hikes.GetByID(ctx, id)
	if err != nil {
		return domain.Hike{}, fmt.Errorf("service.HikeService.GetByID: %w", err)
	}
	return result, nil
}

// List returns all hikes in repository order (date text, descending).
// Always returns a non-nil slice so callers can safely range over it.
func (s *HikeService) List(ctx context.Context) ([]domain.Hike, error) {
	hikes, err := s.hikes.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.HikeService.List: %w", err)
	}
	if hikes == nil {
		return []domain.Hike{}, nil
	}
	return hikes, nil
}

// Search lists all hikes and keeps those matching filter. The store is read
// once; filtering happens in memory and preserves the listing order.
func (s *HikeService) Search(ctx context.Context, filter domain.HikeFilter) ([]domain.Hike, error) {
	hikes, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	return filter.Apply(hikes), nil
}

// Update validates and replaces every field of an existing hike.
// Updating an ID that does not exist changes nothing and is not an error.
func (s *HikeService) Update(ctx context.Context, hike domain.Hike) error {
	hike, err := normalizeHike(hike)
	if err != nil {
		return err
	}
	ok, err := s.hikes.Update(ctx, hike)
	if err != nil {
		return fmt.Errorf("service.HikeService.Update: %w", err)
	}
	if !ok {
		s.log.DebugContext(ctx, "update matched no hike", "hike_id", hike.ID)
	}
	return nil
}

// Delete removes a hike and, through the store's cascade, its observations.
// Deleting an ID that does not exist is not an error.
func (s *HikeService) Delete(ctx context.Context, id int64) error {
	ok, err := s.hikes.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("service.HikeService.Delete: %w", err)
	}
	if !ok {
		s.log.DebugContext(ctx, "delete matched no hike", "hike_id", id)
	}
	return nil
}

// ResetAll wipes every hike and observation. It cannot be undone.
func (s *HikeService) ResetAll(ctx context.Context) error {
	if err := s.reset.ResetAll(ctx); err != nil {
		return fmt.Errorf("service.HikeService.ResetAll: %w", err)
	}
	s.log.InfoContext(ctx, "logbook reset")
	return nil
}

// normalizeHike trims text fields and enforces the rules shared by Create
// and Update:
//   - name, location and date must be non-blank;
//   - difficulty must be Easy, Moderate or Hard;
//   - distance and duration must not be negative.
//
// The date format is not checked; MM/DD/YYYY is a convention only.
func normalizeHike(h domain.Hike) (domain.Hike, error) {
	h.Name = strings.TrimSpace(h.Name)
	h.Location = strings.TrimSpace(h.Location)
	h.Date = strings.TrimSpace(h.Date)
	h.Terrain = strings.TrimSpace(h.Terrain)
	h.Description = strings.TrimSpace(h.Description)

	var missing []string
	if h.Name == "" {
		missing = append(missing, "name")
	}
	if h.Location == "" {
		missing = append(missing, "location")
	}
	if h.Date == "" {
		missing = append(missing, "date")
	}
	if len(missing) > 0 {
		return domain.Hike{}, fmt.Errorf("%w: required fields missing: %s", domain.ErrValidation, strings.Join(missing, ", "))
	}
	if !h.Difficulty.Valid() {
		return domain.Hike{}, fmt.Errorf("%w: difficulty must be one of Easy, Moderate, Hard", domain.ErrValidation)
	}
	if h.Distance < 0 {
		return domain.Hike{}, fmt.Errorf("%w: distance must not be negative", domain.ErrValidation)
	}
	if h.Duration < 0 {
		return domain.Hike{}, fmt.Errorf("%w: duration must not be negative", domain.ErrValidation)
	}
	return h, nil
}
