package handlers

import (
	"errors"
	"net/http"

	"github.com/eventure/server/internal/api/problem"
	"github.com/eventure/server/internal/auth"
	"github.com/eventure/server/internal/domain/events"
	"github.com/eventure/server/internal/domain/tasks"
	"github.com/eventure/server/internal/domain/users"
)

// writeDomainError maps domain sentinel errors onto problem+json responses.
// Anything unrecognized becomes a 500.
func writeDomainError(w http.ResponseWriter, r *http.Request, err error, env string) {
	switch {
	case errors.Is(err, users.ErrEmailTaken):
		problem.Write(w, r, http.StatusConflict, "https://eventure.dev/problems/conflict", "Email already registered", err, env)
	case errors.Is(err, users.ErrInvalidCredentials),
		errors.Is(err, auth.ErrMissingToken),
		errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken):
		w.Header().Set("WWW-Authenticate", `Bearer realm="api"`)
		problem.Write(w, r, http.StatusUnauthorized, "https://eventure.dev/problems/unauthorized", "Unauthorized", err, env)
	case errors.Is(err, users.ErrUserInactive),
		errors.Is(err, events.ErrForbidden),
		errors.Is(err, tasks.ErrForbidden):
		problem.Write(w, r, http.StatusForbidden, "https://eventure.dev/problems/forbidden", "Forbidden", err, env)
	case errors.Is(err, users.ErrNotFound),
		errors.Is(err, events.ErrNotFound),
		errors.Is(err, tasks.ErrNotFound):
		problem.Write(w, r, http.StatusNotFound, "https://eventure.dev/problems/not-found", "Not found", err, env)
	case errors.Is(err, users.ErrInvalidInput),
		errors.Is(err, events.ErrInvalidInput),
		errors.Is(err, events.ErrInvalidDates),
		errors.Is(err, tasks.ErrInvalidInput):
		problem.Write(w, r, http.StatusBadRequest, "https://eventure.dev/problems/validation-error", "Invalid request", err, env)
	default:
		problem.Write(w, r, http.StatusInternalServerError, "https://eventure.dev/problems/server-error", "Server error", err, env)
	}
}

func writeBadRequest(w http.ResponseWriter, r *http.Request, err error, env string) {
	status := http.StatusBadRequest
	title := "Invalid request"
	if errors.Is(err, errBodyTooLarge) {
		status = http.StatusRequestEntityTooLarge
		title = "Request body too large"
	}
	problem.Write(w, r, status, "https://eventure.dev/problems/validation-error", title, err, env)
}
