package handlers

import (
	"net/http"
	"time"

	"github.com/eventure/server/internal/api/middleware"
	"github.com/eventure/server/internal/api/problem"
	"github.com/eventure/server/internal/domain/events"
	"github.com/eventure/server/internal/domain/ids"
)

// EventsHandler serves event CRUD. Reads are public; mutations are
// restricted to the organizer inside the service.
type EventsHandler struct {
	Service *events.Service
	Env     string
}

func NewEventsHandler(service *events.Service, env string) *EventsHandler {
	return &EventsHandler{Service: service, Env: env}
}

type eventResponse struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Location    string        `json:"location"`
	StartTime   time.Time     `json:"start_time"`
	EndTime     time.Time     `json:"end_time"`
	Status      events.Status `json:"status"`
	OrganizerID string        `json:"organizer_id"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   *time.Time    `json:"updated_at,omitempty"`
}

func newEventResponse(event *events.Event) eventResponse {
	return eventResponse{
		ID:          event.ID,
		Title:       event.Title,
		Description: event.Description,
		Location:    event.Location,
		StartTime:   event.StartTime,
		EndTime:     event.EndTime,
		Status:      event.Status,
		OrganizerID: event.OrganizerID,
		CreatedAt:   event.CreatedAt,
		UpdatedAt:   event.UpdatedAt,
	}
}

func (h *EventsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input events.CreateInput
	if err := decodeJSON(r, &input); err != nil {
		writeBadRequest(w, r, err, h.Env)
		return
	}

	event, err := h.Service.Create(r.Context(), input, middleware.ActorID(r.Context()))
	if err != nil {
		writeDomainError(w, r, err, h.Env)
		return
	}

	writeJSON(w, http.StatusCreated, newEventResponse(event))
}

func (h *EventsHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, offset := paginationParams(r, events.DefaultListLimit)

	items, err := h.Service.List(r.Context(), limit, offset)
	if err != nil {
		writeDomainError(w, r, err, h.Env)
		return
	}

	payload := make([]eventResponse, 0, len(items))
	for i := range items {
		payload = append(payload, newEventResponse(&items[i]))
	}
	writeJSON(w, http.StatusOK, payload)
}

func (h *EventsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := pathParam(r, "id")
	if err := ids.ValidateULID(id); err != nil {
		problem.Write(w, r, http.StatusNotFound, "https://eventure.dev/problems/not-found", "Not found", err, h.Env)
		return
	}

	event, err := h.Service.Get(r.Context(), id)
	if err != nil {
		writeDomainError(w, r, err, h.Env)
		return
	}

	writeJSON(w, http.StatusOK, newEventResponse(event))
}

func (h *EventsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := pathParam(r, "id")
	if err := ids.ValidateULID(id); err != nil {
		problem.Write(w, r, http.StatusNotFound, "https://eventure.dev/problems/not-found", "Not found", err, h.Env)
		return
	}

	var input events.UpdateInput
	if err := decodeJSON(r, &input); err != nil {
		writeBadRequest(w, r, err, h.Env)
		return
	}

	event, err := h.Service.Update(r.Context(), id, input, middleware.ActorID(r.Context()))
	if err != nil {
		writeDomainError(w, r, err, h.Env)
		return
	}

	writeJSON(w, http.StatusOK, newEventResponse(event))
}

func (h *EventsHandler) Delete(w http.ResponseWriter, r *http.Request) {
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
