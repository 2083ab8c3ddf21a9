package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/eventure/server/internal/auth"
)

func newTestTokenManager(accessTTL time.Duration) *auth.TokenManager {
	return auth.NewTokenManager("test-secret", accessTTL, 24*time.Hour, "eventure-test")
}

func TestBearerAuth_ValidToken(t *testing.T) {
	tokens := newTestTokenManager(time.Minute)
	token, err := tokens.IssueAccessToken("user-123")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	var gotActor string
	handler := BearerAuth(tokens, "test")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotActor = ActorID(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	res := httptest.NewRecorder()

	handler.ServeHTTP(res, req)

	if res.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", res.Code)
	}
	if gotActor != "user-123" {
		t.Fatalf("expected actor user-123, got %q", gotActor)
	}
}

func TestBearerAuth_MissingHeader(t *testing.T) {
	tokens := newTestTokenManager(time.Minute)

	handler := BearerAuth(tokens, "test")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be reached")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
	res := httptest.NewRecorder()

	handler.ServeHTTP(res, req)

	if res.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", res.Code)
	}
	if got := res.Header().Get("WWW-Authenticate"); got == "" {
		t.Fatal("expected WWW-Authenticate header")
	}
	if got := res.Header().Get("Content-Type"); got != "application/problem+json" {
		t.Fatalf("expected problem+json content type, got %s", got)
	}
}

func TestBearerAuth_ExpiredToken(t *testing.T) {
	tokens := newTestTokenManager(-time.Minute)
	token, err := tokens.IssueAccessToken("user-123")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	handler := BearerAuth(newTestTokenManager(time.Minute), "test")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be reached")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	res := httptest.NewRecorder()

	handler.ServeHTTP(res, req)

	if res.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", res.Code)
	}
}

func TestBearerAuth_RefreshTokenRejected(t *testing.T) {
	tokens := newTestTokenManager(time.Minute)
	token, err := tokens.IssueRefreshToken("user-123")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	handler := BearerAuth(tokens, "test")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be reached")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	res := httptest.NewRecorder()

	handler.ServeHTTP(res, req)

	if res.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", res.Code)
	}
}

func TestActorID_Unauthenticated(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if got := ActorID(req.Context()); got != "" {
		t.Fatalf("expected empty actor ID, got %q", got)
	}
}
