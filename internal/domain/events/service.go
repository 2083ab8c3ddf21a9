// Package events provides event CRUD with organizer-only mutation rules.
package events

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/eventure/server/internal/domain/ids"
)

const (
	// DefaultListLimit applies when the caller does not request a page size.
	DefaultListLimit = 100

	// MaxListLimit caps a single page.
	MaxListLimit = 200
)

// CreateInput is the event creation payload.
type CreateInput struct {
	Title       string    `json:"title" validate:"required,min=1,max=200"`
	Description string    `json:"description"`
	Location    string    `json:"location" validate:"omitempty,max=300"`
	StartTime   time.Time `json:"start_time" validate:"required"`
	EndTime     time.Time `json:"end_time" validate:"required"`
	Status      Status    `json:"status"`
}

// UpdateInput is the event patch payload. Absent fields stay untouched;
// an explicit null is treated the same as absent.
type UpdateInput struct {
	Title       *string    `json:"title" validate:"omitempty,min=1,max=200"`
	Description *string    `json:"description"`
	Location    *string    `json:"location" validate:"omitempty,max=300"`
	StartTime   *time.Time `json:"start_time"`
	EndTime     *time.Time `json:"end_time"`
	Status      *Status    `json:"status"`
}

// Service orchestrates validation, authorization, and persistence for
// events.
type Service struct {
	repo      Repository
	logger    zerolog.Logger
	validator *validator.Validate
}

func NewService(repo Repository, logger zerolog.Logger) *Service {
	return &Service{
		repo:      repo,
		logger:    logger.With().Str("component", "events").Logger(),
		validator: validator.New(),
	}
}

// Create persists a new event owned by organizerID. The status defaults
// to planning and end_time must be strictly after start_time.
func (s *Service) Create(ctx context.Context, input CreateInput, organizerID string) (*Event, error) {
	if err := s.validator.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}
	if input.Status == "" {
		input.Status = StatusPlanning
	}
	if !input.Status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, input.Status)
	}
	if !input.EndTime.After(input.StartTime) {
		return nil, ErrInvalidDates
	}

	id, err := ids.NewULID()
	if err != nil {
		return nil, fmt.Errorf("mint event id: %w", err)
	}

	event, err := s.repo.Create(ctx, CreateParams{
		ID:          id,
		Title:       input.Title,
		Description: input.Description,
		Location:    input.Location,
		StartTime:   input.StartTime,
		EndTime:     input.EndTime,
		Status:      input.Status,
		OrganizerID: organizerID,
	})
	if err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	s.logger.Info().Str("event_id", event.ID).Str("organizer_id", organizerID).Msg("event created")
	return event, nil
}

// Get fetches a single event.
func (s *Service) Get(ctx context.Context, id string) (*Event, error) {
	return s.repo.GetByID(ctx, id)
}

// List returns a page of events in primary-key order. A zero limit is
// honored as an empty page; only a negative limit falls back to the
// default.
func (s *Service) List(ctx context.Context, limit, offset int) ([]Event, error) {
	if limit < 0 {
		limit = DefaultListLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}
	if offset < 0 {
		offset = 0
	}
	return s.repo.List(ctx, limit, offset)
}

// Update applies a partial update after the organizer check. The
// effective start/end pair is re-validated so the date invariant holds
// even when only one bound changes.
func (s *Service) Update(ctx context.Context, id string, input UpdateInput, actorID string) (*Event, error) {
	if err := s.validator.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}
	if input.Status != nil && !input.Status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, *input.Status)
	}

	event, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !CanModify(actorID, event) {
		return nil, ErrForbidden
	}

	start := event.StartTime
	if input.StartTime != nil {
		start = *input.StartTime
	}
	end := event.EndTime
	if input.EndTime != nil {
		end = *input.EndTime
	}
	if !end.After(start) {
		return nil, ErrInvalidDates
	}

	updated, err := s.repo.Update(ctx, id, UpdateParams{
		Title:       input.Title,
		Description: input.Description,
		Location:    input.Location,
		StartTime:   input.StartTime,
		EndTime:     input.EndTime,
		Status:      input.Status,
	})
	if err != nil {
		return nil, fmt.Errorf("update event: %w", err)
	}

	s.logger.Info().Str("event_id", id).Msg("event updated")
	return updated, nil
}

// Delete removes an event and all of its tasks after the organizer check.
func (s *Service) Delete(ctx context.Context, id string, actorID string) error {
	event, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !CanModify(actorID, event) {
		return ErrForbidden
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("delete event: %w", err)
	}

	s.logger.Info().Str("event_id", id).Msg("event deleted")
	return nil
}
