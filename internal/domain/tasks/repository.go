package tasks

import (
	"context"
	"errors"
	"time"
)

var (
	ErrNotFound = errors.New("task not found")

	// ErrForbidden is returned when the actor may not perform the
	// requested mutation on the task.
	ErrForbidden = errors.New("not allowed to modify this task")

	// ErrInvalidInput wraps payload validation failures.
	ErrInvalidInput = errors.New("invalid input")
)

// Status is the task progress state.
type Status string

const (
	StatusTodo       Status = "todo"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

func (s Status) Valid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

// Priority orders tasks by urgency.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	default:
		return false
	}
}

// Task belongs to exactly one event and may be assigned to a user.
// EventID is immutable after creation.
type Task struct {
	ID           string
	Title        string
	Description  string
	Status       Status
	Priority     Priority
	DueDate      *time.Time
	EventID      string
	AssignedToID *string
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}

type CreateParams struct {
	ID           string
	Title        string
	Description  string
	Status       Status
	Priority     Priority
	DueDate      *time.Time
	EventID      string
	AssignedToID *string
}

// UpdateParams carries a partial update. Nil fields are left untouched.
type UpdateParams struct {
	Title        *string
	Description  *string
	Status       *Status
	Priority     *Priority
	DueDate      *time.Time
	AssignedToID *string
}

// Repository abstracts task persistence.
type Repository interface {
	Create(ctx context.Context, params CreateParams) (*Task, error)
	GetByID(ctx context.Context, id string) (*Task, error)
	ListByEvent(ctx context.Context, eventID string) ([]Task, error)
	ListByAssignee(ctx context.Context, userID string) ([]Task, error)
	Update(ctx context.Context, id string, params UpdateParams) (*Task, error)
	Delete(ctx context.Context, id string) error
}
