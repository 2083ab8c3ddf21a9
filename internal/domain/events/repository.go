package events

import (
	"context"
	"errors"
	"time"
)

var (
	ErrNotFound = errors.New("event not found")

	// ErrForbidden is returned when the actor is not the organizer of
	// the event being mutated.
	ErrForbidden = errors.New("only the organizer can modify this event")

	// ErrInvalidDates is returned when end_time is not strictly after
	// start_time.
	ErrInvalidDates = errors.New("end_time must be after start_time")

	// ErrInvalidInput wraps payload validation failures.
	ErrInvalidInput = errors.New("invalid input")
)

// Status is the event lifecycle state.
type Status string

const (
	StatusPlanning  Status = "planning"
	StatusScheduled Status = "scheduled"
	StatusOngoing   Status = "ongoing"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPlanning, StatusScheduled, StatusOngoing, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

// Event is an organized gathering with a task list. OrganizerID is
// immutable after creation.
type Event struct {
	ID          string
	Title       string
	Description string
	Location    string
	StartTime   time.Time
	EndTime     time.Time
	Status      Status
	OrganizerID string
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

type CreateParams struct {
	ID          string
	Title       string
	Description string
	Location    string
	StartTime   time.Time
	EndTime     time.Time
	Status      Status
	OrganizerID string
}

// UpdateParams carries a partial update. Nil fields are left untouched.
type UpdateParams struct {
	Title       *string
	Description *string
	Location    *string
	StartTime   *time.Time
	EndTime     *time.Time
	Status      *Status
}

// Repository abstracts event persistence.
type Repository interface {
	Create(ctx context.Context, params CreateParams) (*Event, error)
	GetByID(ctx context.Context, id string) (*Event, error)
	List(ctx context.Context, limit, offset int) ([]Event, error)
	Update(ctx context.Context, id string, params UpdateParams) (*Event, error)
	// Delete removes the event and, through the database cascade, all
	// of its tasks in the same atomic operation.
	Delete(ctx context.Context, id string) error
}
