package handlers

import (
	"net/http"
	"time"

	"github.com/eventure/server/internal/api/middleware"
	"github.com/eventure/server/internal/api/problem"
	"github.com/eventure/server/internal/domain/ids"
	"github.com/eventure/server/internal/domain/tasks"
)

// TasksHandler serves task CRUD plus the per-event and per-user listings.
type TasksHandler struct {
	Service *tasks.Service
	Env     string
}

func NewTasksHandler(service *tasks.Service, env string) *TasksHandler {
	return &TasksHandler{Service: service, Env: env}
}

type taskResponse struct {
	ID           string         `json:"id"`
	Title        string         `json:"title"`
	Description  string         `json:"description"`
	Status       tasks.Status   `json:"status"`
	Priority     tasks.Priority `json:"priority"`
	DueDate      *time.Time     `json:"due_date,omitempty"`
	EventID      string         `json:"event_id"`
	AssignedToID *string        `json:"assigned_to_id,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    *time.Time     `json:"updated_at,omitempty"`
}

func newTaskResponse(task *tasks.Task) taskResponse {
	return taskResponse{
		ID:           task.ID,
		Title:        task.Title,
		Description:  task.Description,
		Status:       task.Status,
		Priority:     task.Priority,
		DueDate:      task.DueDate,
		EventID:      task.EventID,
		AssignedToID: task.AssignedToID,
		CreatedAt:    task.CreatedAt,
		UpdatedAt:    task.UpdatedAt,
	}
}

func taskListPayload(items []tasks.Task) []taskResponse {
	payload := make([]taskResponse, 0, len(items))
	for i := range items {
		payload = append(payload, newTaskResponse(&items[i]))
	}
	return payload
}

func (h *TasksHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input tasks.CreateInput
	if err := decodeJSON(r, &input); err != nil {
		writeBadRequest(w, r, err, h.Env)
		return
	}

	task, err := h.Service.Create(r.Context(), input, middleware.ActorID(r.Context()))
	if err != nil {
		writeDomainError(w, r, err, h.Env)
		return
	}

	writeJSON(w, http.StatusCreated, newTaskResponse(task))
}

func (h *TasksHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := pathParam(r, "id")
	if err := ids.ValidateULID(id); err != nil {
		problem.Write(w, r, http.StatusNotFound, "https://eventure.dev/problems/not-found", "Not found", err, h.Env)
		return
	}

	task, err := h.Service.Get(r.Context(), id)
	if err != nil {
		writeDomainError(w, r, err, h.Env)
		return
	}

	writeJSON(w, http.StatusOK, newTaskResponse(task))
}

// ListForEvent returns every task attached to an event.
func (h *TasksHandler) ListForEvent(w http.ResponseWriter, r *http.Request) {
	eventID := pathParam(r, "event_id")
	if err := ids.ValidateULID(eventID); err != nil {
		problem.Write(w, r, http.StatusNotFound, "https://eventure.dev/problems/not-found", "Not found", err, h.Env)
		return
	}

	items, err := h.Service.ListForEvent(r.Context(), eventID)
	if err != nil {
		writeDomainError(w, r, err, h.Env)
		return
	}

	writeJSON(w, http.StatusOK, taskListPayload(items))
}

// MyTasks returns the tasks assigned to the authenticated user.
func (h *TasksHandler) MyTasks(w http.ResponseWriter, r *http.Request) {
	actorID := middleware.ActorID(r.Context())
	if actorID == "" {
		problem.Write(w, r, http.StatusUnauthorized, "https://eventure.dev/problems/unauthorized", "Unauthorized", nil, h.Env)
		return
	}

	items, err := h.Service.ListForUser(r.Context(), actorID)
	if err != nil {
		writeDomainError(w, r, err, h.Env)
		return
	}

	writeJSON(w, http.StatusOK, taskListPayload(items))
}

func (h *TasksHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := pathParam(r, "id")
	if err := ids.ValidateULID(id); err != nil {
		problem.Write(w, r, http.StatusNotFound, "https://eventure.dev/problems/not-found", "Not found", err, h.Env)
		return
	}

	var input tasks.UpdateInput
	if err := decodeJSON(r, &input); err != nil {
		writeBadRequest(w, r, err, h.Env)
		return
	}

	task, err := h.Service.Update(r.Context(), id, input, middleware.ActorID(r.Context()))
	if err != nil {
		writeDomainError(w, r, err, h.Env)
		return
	}

	writeJSON(w, http.StatusOK, newTaskResponse(task))
}

func (h *TasksHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := pathParam(r, "id")
	if err := ids.ValidateULID(id); err != nil {
		problem.Write(w, r, http.StatusNotFound, "https://eventure.dev/problems/not-found", "Not found", err, h.Env)
		return
	}

	if err := h.Service.Delete(r.Context(), id, middleware.ActorID(r.Context())); err != nil {
		writeDomainError(w, r, err, h.Env)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
