package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/eventure/server/internal/api/middleware"
	"github.com/eventure/server/internal/auth"
	"github.com/eventure/server/internal/domain/events"
	"github.com/eventure/server/internal/domain/tasks"
	"github.com/eventure/server/internal/domain/users"
	"github.com/rs/zerolog"
)

// Shared fixtures for handler tests. Each mock repository uses function
// fields so individual tests override just the calls they care about.

const (
	testOrganizerID = "8b5c9f2e-1a44-4f1e-9a7d-3f6f1a2b3c4d"
	testAssigneeID  = "0f9e8d7c-6b5a-4321-fedc-ba9876543210"
	testEventID     = "01J8ZJ3W7V5N9XQ2K4M6P8R0TB"
	testTaskID      = "01J8ZJ4X8W6P0YR3K5N7Q9S1TC"
)

func testLogger() zerolog.Logger {
	return zerolog.Nop()
}

func testTokens() *auth.TokenManager {
	return auth.NewTokenManager("test-secret", 30*time.Minute, 7*24*time.Hour, "eventure-test")
}

type mockUserRepository struct {
	create     func(ctx context.Context, params users.CreateParams) (*users.User, error)
	getByID    func(ctx context.Context, id string) (*users.User, error)
	getByEmail func(ctx context.Context, email string) (*users.User, error)
}

func (m *mockUserRepository) Create(ctx context.Context, params users.CreateParams) (*users.User, error) {
	return m.create(ctx, params)
}

func (m *mockUserRepository) GetByID(ctx context.Context, id string) (*users.User, error) {
	if m.getByID == nil {
		return nil, users.ErrNotFound
	}
	return m.getByID(ctx, id)
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*users.User, error) {
	if m.getByEmail == nil {
		return nil, users.ErrNotFound
	}
	return m.getByEmail(ctx, email)
}

type mockEventRepository struct {
	create  func(ctx context.Context, params events.CreateParams) (*events.Event, error)
	getByID func(ctx context.Context, id string) (*events.Event, error)
	list    func(ctx context.Context, limit, offset int) ([]events.Event, error)
	update  func(ctx context.Context, id string, params events.UpdateParams) (*events.Event, error)
	delete  func(ctx context.Context, id string) error
}

func (m *mockEventRepository) Create(ctx context.Context, params events.CreateParams) (*events.Event, error) {
	return m.create(ctx, params)
}

func (m *mockEventRepository) GetByID(ctx context.Context, id string) (*events.Event, error) {
	if m.getByID == nil {
		return nil, events.ErrNotFound
	}
	return m.getByID(ctx, id)
}

func (m *mockEventRepository) List(ctx context.Context, limit, offset int) ([]events.Event, error) {
	if m.list == nil {
		return nil, nil
	}
	return m.list(ctx, limit, offset)
}

func (m *mockEventRepository) Update(ctx context.Context, id string, params events.UpdateParams) (*events.Event, error) {
	return m.update(ctx, id, params)
}

func (m *mockEventRepository) Delete(ctx context.Context, id string) error {
	return m.delete(ctx, id)
}

type mockTaskRepository struct {
	create         func(ctx context.Context, params tasks.CreateParams) (*tasks.Task, error)
	getByID        func(ctx context.Context, id string) (*tasks.Task, error)
	listByEvent    func(ctx context.Context, eventID string) ([]tasks.Task, error)
	listByAssignee func(ctx context.Context, userID string) ([]tasks.Task, error)
	update         func(ctx context.Context, id string, params tasks.UpdateParams) (*tasks.Task, error)
	delete         func(ctx context.Context, id string) error
}

func (m *mockTaskRepository) Create(ctx context.Context, params tasks.CreateParams) (*tasks.Task, error) {
	return m.create(ctx, params)
}

func (m *mockTaskRepository) GetByID(ctx context.Context, id string) (*tasks.Task, error) {
	if m.getByID == nil {
		return nil, tasks.ErrNotFound
	}
	return m.getByID(ctx, id)
}

func (m *mockTaskRepository) ListByEvent(ctx context.Context, eventID string) ([]tasks.Task, error) {
	return m.listByEvent(ctx, eventID)
}

func (m *mockTaskRepository) ListByAssignee(ctx context.Context, userID string) ([]tasks.Task, error) {
	return m.listByAssignee(ctx, userID)
}

func (m *mockTaskRepository) Update(ctx context.Context, id string, params tasks.UpdateParams) (*tasks.Task, error) {
	return m.update(ctx, id, params)
}

func (m *mockTaskRepository) Delete(ctx context.Context, id string) error {
	return m.delete(ctx, id)
}

func storedEvent() *events.Event {
	start := time.Date(2026, 9, 10, 18, 0, 0, 0, time.UTC)
	return &events.Event{
		ID:          testEventID,
		Title:       "Launch party",
		Location:    "Rooftop",
		StartTime:   start,
		EndTime:     start.Add(3 * time.Hour),
		Status:      events.StatusPlanning,
		OrganizerID: testOrganizerID,
		CreatedAt:   time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC),
	}
}

func storedTask() *tasks.Task {
	assignee := testAssigneeID
	return &tasks.Task{
		ID:           testTaskID,
		Title:        "Book catering",
		Status:       tasks.StatusTodo,
		Priority:     tasks.PriorityMedium,
		EventID:      testEventID,
		AssignedToID: &assignee,
		CreatedAt:    time.Date(2026, 8, 2, 9, 0, 0, 0, time.UTC),
	}
}

// withActor simulates the bearer auth middleware for handler tests.
func withActor(r *http.Request, userID string) *http.Request {
	if userID == "" {
		return r
	}
	return r.WithContext(middleware.WithActorID(r.Context(), userID))
}
