package handlers

import (
	"net/http"
	"time"

	"github.com/eventure/server/internal/api/middleware"
	"github.com/eventure/server/internal/api/problem"
	"github.com/eventure/server/internal/domain/users"
	"github.com/eventure/server/internal/metrics"
)

// AuthHandler serves registration, login, token refresh, and the
// current-user endpoint.
type AuthHandler struct {
	Users *users.Service
	Env   string
}

func NewAuthHandler(service *users.Service, env string) *AuthHandler {
	return &AuthHandler{Users: service, Env: env}
}

type userResponse struct {
	ID        string     `json:"id"`
	Email     string     `json:"email"`
	FullName  string     `json:"full_name"`
	IsActive  bool       `json:"is_active"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

func newUserResponse(user *users.User) userResponse {
	return userResponse{
		ID:        user.ID,
		Email:     user.Email,
		FullName:  user.FullName,
		IsActive:  user.IsActive,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var params users.RegisterParams
	if err := decodeJSON(r, &params); err != nil {
		writeBadRequest(w, r, err, h.Env)
		return
	}

	user, err := h.Users.Register(r.Context(), params)
	if err != nil {
		writeDomainError(w, r, err, h.Env)
		return
	}

	writeJSON(w, http.StatusCreated, newUserResponse(user))
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, r, err, h.Env)
		return
	}

	pair, err := h.Users.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		metrics.LoginAttempts.WithLabelValues("failure").Inc()
		writeDomainError(w, r, err, h.Env)
		return
	}

	metrics.LoginAttempts.WithLabelValues("success").Inc()
	writeJSON(w, http.StatusOK, pair)
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	var req refreshRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, r, err, h.Env)
		return
	}

	pair, err := h.Users.Refresh(r.Context(), req.RefreshToken)
	if err != nil {
		writeDomainError(w, r, err, h.Env)
		return
	}

	writeJSON(w, http.StatusOK, pair)
}

// Me returns the authenticated user's profile.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	actorID := middleware.ActorID(r.Context())
	if actorID == "" {
		problem.Write(w, r, http.StatusUnauthorized, "https://eventure.dev/problems/unauthorized", "Unauthorized", nil, h.Env)
		return
	}

	user, err := h.Users.GetByID(r.Context(), actorID)
	if err != nil {
		writeDomainError(w, r, err, h.Env)
		return
	}

	writeJSON(w, http.StatusOK, newUserResponse(user))
}
