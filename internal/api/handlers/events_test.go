package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/eventure/server/internal/domain/events"
	"github.com/eventure/server/internal/domain/ids"
	"github.com/stretchr/testify/require"
)

func newEventsHandler(repo events.Repository) *EventsHandler {
	return NewEventsHandler(events.NewService(repo, testLogger()), "test")
}

func TestEventsHandler_Create(t *testing.T) {
	repo := &mockEventRepository{
		create: func(_ context.Context, params events.CreateParams) (*events.Event, error) {
			require.NoError(t, ids.ValidateULID(params.ID))
			require.Equal(t, testOrganizerID, params.OrganizerID)
			require.Equal(t, events.StatusPlanning, params.Status)
			event := storedEvent()
			event.ID = params.ID
			event.Title = params.Title
			return event, nil
		},
	}

	body := `{"title":"Launch party","start_time":"2026-09-10T18:00:00Z","end_time":"2026-09-10T21:00:00Z"}`
	req := withActor(httptest.NewRequest(http.MethodPost, "/api/v1/events", strings.NewReader(body)), testOrganizerID)
	res := httptest.NewRecorder()

	newEventsHandler(repo).Create(res, req)

	require.Equal(t, http.StatusCreated, res.Code)

	var got eventResponse
	require.NoError(t, json.NewDecoder(res.Body).Decode(&got))
	require.Equal(t, "Launch party", got.Title)
	require.Equal(t, testOrganizerID, got.OrganizerID)
}

func TestEventsHandler_Create_BadDates(t *testing.T) {
	body := `{"title":"Launch party","start_time":"2026-09-10T21:00:00Z","end_time":"2026-09-10T18:00:00Z"}`
	req := withActor(httptest.NewRequest(http.MethodPost, "/api/v1/events", strings.NewReader(body)), testOrganizerID)
	res := httptest.NewRecorder()

	newEventsHandler(&mockEventRepository{}).Create(res, req)

	require.Equal(t, http.StatusBadRequest, res.Code)
	require.Equal(t, "application/problem+json", res.Header().Get("Content-Type"))
}

func TestEventsHandler_List(t *testing.T) {
	repo := &mockEventRepository{
		list: func(_ context.Context, limit, offset int) ([]events.Event, error) {
			require.Equal(t, 10, limit)
			require.Equal(t, 20, offset)
			return []events.Event{*storedEvent()}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/events?limit=10&skip=20", nil)
	res := httptest.NewRecorder()

	newEventsHandler(repo).List(res, req)

	require.Equal(t, http.StatusOK, res.Code)

	var got []eventResponse
	require.NoError(t, json.NewDecoder(res.Body).Decode(&got))
	require.Len(t, got, 1)
	require.Equal(t, testEventID, got[0].ID)
}

func TestEventsHandler_List_Empty(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/events", nil)
	res := httptest.NewRecorder()

	newEventsHandler(&mockEventRepository{}).List(res, req)

	require.Equal(t, http.StatusOK, res.Code)
	// An empty listing is a JSON array, not null.
	require.Equal(t, "[]", strings.TrimSpace(res.Body.String()))
}

func TestEventsHandler_List_ZeroLimit(t *testing.T) {
	repo := &mockEventRepository{
		list: func(_ context.Context, limit, offset int) ([]events.Event, error) {
			// An explicit limit of 0 is a request for an empty page,
			// not a fallback to the default page size.
			require.Equal(t, 0, limit)
			require.Equal(t, 0, offset)
			return []events.Event{}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/events?limit=0", nil)
	res := httptest.NewRecorder()

	newEventsHandler(repo).List(res, req)

	require.Equal(t, http.StatusOK, res.Code)
	require.Equal(t, "[]", strings.TrimSpace(res.Body.String()))
}

func getRequest(t *testing.T, handler http.HandlerFunc, target, id string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	req.SetPathValue("id", id)
	res := httptest.NewRecorder()
	handler(res, req)
	return res
}

func TestEventsHandler_Get(t *testing.T) {
	repo := &mockEventRepository{
		getByID: func(_ context.Context, id string) (*events.Event, error) {
			require.Equal(t, testEventID, id)
			return storedEvent(), nil
		},
	}

	res := getRequest(t, newEventsHandler(repo).Get, "/api/v1/events/"+testEventID, testEventID)

	require.Equal(t, http.StatusOK, res.Code)

	var got eventResponse
	require.NoError(t, json.NewDecoder(res.Body).Decode(&got))
	require.Equal(t, testEventID, got.ID)
}

func TestEventsHandler_Get_NotFound(t *testing.T) {
	res := getRequest(t, newEventsHandler(&mockEventRepository{}).Get, "/api/v1/events/"+testEventID, testEventID)
	require.Equal(t, http.StatusNotFound, res.Code)
}

func TestEventsHandler_Get_MalformedID(t *testing.T) {
	res := getRequest(t, newEventsHandler(&mockEventRepository{}).Get, "/api/v1/events/not-a-ulid", "not-a-ulid")
	require.Equal(t, http.StatusNotFound, res.Code)
}

func TestEventsHandler_Update(t *testing.T) {
	repo := &mockEventRepository{
		getByID: func(_ context.Context, _ string) (*events.Event, error) {
			return storedEvent(), nil
		},
		update: func(_ context.Context, id string, params events.UpdateParams) (*events.Event, error) {
			require.NotNil(t, params.Title)
			require.Equal(t, "Renamed", *params.Title)
			require.Nil(t, params.StartTime)
			event := storedEvent()
			event.Title = *params.Title
			return event, nil
		},
	}

	req := withActor(httptest.NewRequest(http.MethodPut, "/api/v1/events/"+testEventID, strings.NewReader(`{"title":"Renamed"}`)), testOrganizerID)
	req.SetPathValue("id", testEventID)
	res := httptest.NewRecorder()

	newEventsHandler(repo).Update(res, req)

	require.Equal(t, http.StatusOK, res.Code)

	var got eventResponse
	require.NoError(t, json.NewDecoder(res.Body).Decode(&got))
	require.Equal(t, "Renamed", got.Title)
}

func TestEventsHandler_Update_Forbidden(t *testing.T) {
	repo := &mockEventRepository{
		getByID: func(_ context.Context, _ string) (*events.Event, error) {
			return storedEvent(), nil
		},
	}

	req := withActor(httptest.NewRequest(http.MethodPut, "/api/v1/events/"+testEventID, strings.NewReader(`{"title":"Renamed"}`)), testAssigneeID)
	req.SetPathValue("id", testEventID)
	res := httptest.NewRecorder()

	newEventsHandler(repo).Update(res, req)

	require.Equal(t, http.StatusForbidden, res.Code)
}

func TestEventsHandler_Delete(t *testing.T) {
	deleted := false
	repo := &mockEventRepository{
		getByID: func(_ context.Context, _ string) (*events.Event, error) {
			return storedEvent(), nil
		},
		delete: func(_ context.Context, id string) error {
			require.Equal(t, testEventID, id)
			deleted = true
			return nil
		},
	}

	req := withActor(httptest.NewRequest(http.MethodDelete, "/api/v1/events/"+testEventID, nil), testOrganizerID)
	req.SetPathValue("id", testEventID)
	res := httptest.NewRecorder()

	newEventsHandler(repo).Delete(res, req)

	require.Equal(t, http.StatusNoContent, res.Code)
	require.True(t, deleted)
	require.Empty(t, res.Body.String())
}

func TestEventsHandler_Delete_Forbidden(t *testing.T) {
	repo := &mockEventRepository{
		getByID: func(_ context.Context, _ string) (*events.Event, error) {
			return storedEvent(), nil
		},
	}

	req := withActor(httptest.NewRequest(http.MethodDelete, "/api/v1/events/"+testEventID, nil), testAssigneeID)
	req.SetPathValue("id", testEventID)
	res := httptest.NewRecorder()

	newEventsHandler(repo).Delete(res, req)

	require.Equal(t, http.StatusForbidden, res.Code)
}
