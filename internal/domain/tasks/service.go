// Package tasks provides task CRUD under events, with organizer/assignee
// authorization rules.
package tasks

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/eventure/server/internal/domain/events"
	"github.com/eventure/server/internal/domain/ids"
)

// EventGetter resolves a task's parent event. events.Repository
// satisfies it.
type EventGetter interface {
	GetByID(ctx context.Context, id string) (*events.Event, error)
}

// CreateInput is the task creation payload.
type CreateInput struct {
	Title        string     `json:"title" validate:"required,min=1,max=200"`
	Description  string     `json:"description"`
	Status       Status     `json:"status"`
	Priority     Priority   `json:"priority"`
	DueDate      *time.Time `json:"due_date"`
	EventID      string     `json:"event_id" validate:"required"`
	AssignedToID *string    `json:"assigned_to_id"`
}

// UpdateInput is the task patch payload. Absent fields stay untouched;
// an explicit null is treated the same as absent.
type UpdateInput struct {
	Title        *string    `json:"title" validate:"omitempty,min=1,max=200"`
	Description  *string    `json:"description"`
	Status       *Status    `json:"status"`
	Priority     *Priority  `json:"priority"`
	DueDate      *time.Time `json:"due_date"`
	AssignedToID *string    `json:"assigned_to_id"`
}

// Service orchestrates validation, authorization, and persistence for
// tasks. Every mutation resolves the parent event first because the
// authorization rules depend on its organizer.
type Service struct {
	repo      Repository
	eventRepo EventGetter
	logger    zerolog.Logger
	validator *validator.Validate
}

func NewService(repo Repository, eventRepo EventGetter, logger zerolog.Logger) *Service {
	return &Service{
		repo:      repo,
		eventRepo: eventRepo,
		logger:    logger.With().Str("component", "tasks").Logger(),
		validator: validator.New(),
	}
}

// Create persists a new task under an existing event. Only the event
// organizer may create tasks; a missing event yields events.ErrNotFound.
func (s *Service) Create(ctx context.Context, input CreateInput, actorID string) (*Task, error) {
	if err := s.validator.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}
	if input.Status == "" {
		input.Status = StatusTodo
	}
	if input.Priority == "" {
		input.Priority = PriorityMedium
	}
	if !input.Status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, input.Status)
	}
	if !input.Priority.Valid() {
		return nil, fmt.Errorf("%w: unknown priority %q", ErrInvalidInput, input.Priority)
	}

	event, err := s.eventRepo.GetByID(ctx, input.EventID)
	if err != nil {
		return nil, err
	}
	if !CanCreate(actorID, event) {
		return nil, ErrForbidden
	}

	id, err := ids.NewULID()
	if err != nil {
		return nil, fmt.Errorf("mint task id: %w", err)
	}

	task, err := s.repo.Create(ctx, CreateParams{
		ID:           id,
		Title:        input.Title,
		Description:  input.Description,
		Status:       input.Status,
		Priority:     input.Priority,
		DueDate:      input.DueDate,
		EventID:      input.EventID,
		AssignedToID: input.AssignedToID,
	})
	if err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}

	s.logger.Info().Str("task_id", task.ID).Str("event_id", task.EventID).Msg("task created")
	return task, nil
}

// Get fetches a single task.
func (s *Service) Get(ctx context.Context, id string) (*Task, error) {
	return s.repo.GetByID(ctx, id)
}

// ListForEvent returns every task of an event. Reads are public.
func (s *Service) ListForEvent(ctx context.Context, eventID string) ([]Task, error) {
	return s.repo.ListByEvent(ctx, eventID)
}

// ListForUser returns every task assigned to a user.
func (s *Service) ListForUser(ctx context.Context, userID string) ([]Task, error) {
	return s.repo.ListByAssignee(ctx, userID)
}

// Update applies a partial update. The organizer of the parent event and
// the task's assignee may update; everyone else is forbidden.
func (s *Service) Update(ctx context.Context, id string, input UpdateInput, actorID string) (*Task, error) {
	if err := s.validator.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}
	if input.Status != nil && !input.Status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, *input.Status)
	}
	if input.Priority != nil && !input.Priority.Valid() {
		return nil, fmt.Errorf("%w: unknown priority %q", ErrInvalidInput, *input.Priority)
	}

	task, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	event, err := s.eventRepo.GetByID(ctx, task.EventID)
	if err != nil {
		return nil, err
	}
	if !CanUpdate(actorID, event, task) {
		return nil, ErrForbidden
	}

	updated, err := s.repo.Update(ctx, id, UpdateParams{
		Title:        input.Title,
		Description:  input.Description,
		Status:       input.Status,
		Priority:     input.Priority,
		DueDate:      input.DueDate,
		AssignedToID: input.AssignedToID,
	})
	if err != nil {
		return nil, fmt.Errorf("update task: %w", err)
	}

	s.logger.Info().Str("task_id", id).Msg("task updated")
	return updated, nil
}

// Delete removes a task. Only the organizer of the parent event may
// delete; the assignee may not.
func (s *Service) Delete(ctx context.Context, id string, actorID string) error {
	task, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	event, err := s.eventRepo.GetByID(ctx, task.EventID)
	if err != nil {
		return err
	}
	if !CanDelete(actorID, event) {
		return ErrForbidden
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete task: %w", err)
	}

	s.logger.Info().Str("task_id", id).Msg("task deleted")
	return nil
}
