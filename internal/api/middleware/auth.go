package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/eventure/server/internal/api/problem"
	"github.com/eventure/server/internal/auth"
)

type contextKey string

const actorIDKey contextKey = "actor_id"

// BearerAuth authenticates requests with an access token from the
// Authorization header and stashes the actor's user ID in the request
// context. Requests without a valid access token get 401 problem+json.
func BearerAuth(tokens *auth.TokenManager, env string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, err := auth.TokenFromHeader(r.Header.Get("Authorization"))
			if err != nil {
				unauthorized(w, r, err, env)
				return
			}

			userID, err := tokens.DecodeAccess(raw)
			if err != nil {
				unauthorized(w, r, err, env)
				return
			}

			ctx := context.WithValue(r.Context(), actorIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func unauthorized(w http.ResponseWriter, r *http.Request, err error, env string) {
	title := "Unauthorized"
	if errors.Is(err, auth.ErrExpiredToken) {
		title = "Token expired"
	}
	w.Header().Set("WWW-Authenticate", `Bearer realm="api"`)
	problem.Write(w, r, http.StatusUnauthorized, "https://eventure.dev/problems/unauthorized", title, err, env)
}

// ActorID extracts the authenticated user's ID from the request context.
// It returns the empty string for unauthenticated requests.
func ActorID(ctx context.Context) string {
	if id, ok := ctx.Value(actorIDKey).(string); ok {
		return id
	}
	return ""
}

// WithActorID is used by tests to simulate an authenticated request.
func WithActorID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, actorIDKey, userID)
}
