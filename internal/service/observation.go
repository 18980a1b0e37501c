package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/pkordes/mhike/internal/domain"
	"github.com/pkordes/mhike/internal/repo"
)

// ObservationService implements business logic for Observation operations.
// It holds the hikes repo because creating an observation requires verifying
// the parent hike exists.
type ObservationService struct {
	hikes        repo.HikeRepo
	observations repo.ObservationRepo
	log          *slog.Logger
}

// NewObservationService constructs an ObservationService backed by the provided repos.
func NewObservationService(hikes repo.HikeRepo, observations repo.ObservationRepo, log *slog.Logger) *ObservationService {
	return &ObservationService{hikes: hikes, observations: observations, log: log}
}

// Create validates the observation, verifies the parent hike exists, then
// persists. A blank Time defaults to the current local time in
// domain.TimeLayout.
// Returns domain.ErrValidation if input violates business rules.
// Returns domain.ErrNotFound if the parent hike does not exist.
func (s *ObservationService) Create(ctx context.Context, obs domain.Observation) (domain.Observation, error) {
	obs, err := normalizeObservation(obs)
	if err != nil {
		return domain.Observation{}, err
	}
	if obs.HikeID <= 0 {
		return domain.Observation{}, fmt.Errorf("%w: hike id is required", domain.ErrValidation)
	}
	if _, err := s.hikes.GetByID(ctx, obs.HikeID); err != nil {
		return domain.Observation{}, fmt.Errorf("service.ObservationService.Create: hike %d: %w", obs.HikeID, err)
	}

	id, err := s.observations.Create(ctx, obs)
	if err != nil {
		return domain.Observation{}, fmt.Errorf("service.ObservationService.Create: %w", err)
	}
	obs.ID = id
	s.log.DebugContext(ctx, "observation created", "observation_id", id, "hike_id", obs.HikeID)
	return obs, nil
}

// GetByID returns a single observation by ID.
// Returns domain.ErrNotFound if no observation with that ID exists.
func (s *ObservationService) GetByID(ctx context.Context, id int64) (domain.Observation, error) {
	result, err := s.observations.GetByID(ctx, id)
	if err != nil {
		return domain.Observation{}, fmt.Errorf("service.ObservationService.GetByID: %w", err)
	}
	return result, nil
}

// ListByHikeID returns the observations of a hike, newest first.
// An unknown hike simply has no observations.
// Always returns a non-nil slice so callers can safely range over it.
func (s *ObservationService) ListByHikeID(ctx context.Context, hikeID int64) ([]domain.Observation, error) {
	list, err := s.observations.ListByHikeID(ctx, hikeID)
	if err != nil {
		return nil, fmt.Errorf("service.ObservationService.ListByHikeID: %w", err)
	}
	if list == nil {
		return []domain.Observation{}, nil
	}
	return list, nil
}

// Update validates and replaces title, time and comment of an observation.
// Updating an ID that does not exist changes nothing and is not an error.
func (s *ObservationService) Update(ctx context.Context, obs domain.Observation) error {
	obs, err := normalizeObservation(obs)
	if err != nil {
		return err
	}
	ok, err := s.observations.Update(ctx, obs)
	if err != nil {
		return fmt.Errorf("service.ObservationService.Update: %w", err)
	}
	if !ok {
		s.log.DebugContext(ctx, "update matched no observation", "observation_id", obs.ID)
	}
	return nil
}

// Delete removes an observation by ID. Deleting an ID that does not exist is
// not an error.
func (s *ObservationService) Delete(ctx context.Context, id int64) error {
	ok, err := s.observations.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("service.ObservationService.Delete: %w", err)
	}
	if !ok {
		s.log.DebugContext(ctx, "delete matched no observation", "observation_id", id)
	}
	return nil
}

// normalizeObservation trims text, requires a title and fills a blank time
// with the current time.
func normalizeObservation(o domain.Observation) (domain.Observation, error) {
	o.Title = strings.TrimSpace(o.Title)
	o.Time = strings.TrimSpace(o.Time)
	o.Comment = strings.TrimSpace(o.Comment)

	if o.Title == "" {
		return domain.Observation{}, fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if o.Time == "" {
		o.Time = now().Format(domain.TimeLayout)
	}
	return o, nil
}
