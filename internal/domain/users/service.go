// Package users provides account registration, authentication, and the
// access/refresh token lifecycle built on top of the credential store.
package users

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/eventure/server/internal/auth"
)

var (
	// ErrInvalidCredentials is returned when email/password authentication
	// fails. It deliberately does not reveal whether the email exists.
	ErrInvalidCredentials = errors.New("incorrect email or password")

	// ErrUserInactive is returned when a deactivated account attempts to
	// authenticate.
	ErrUserInactive = errors.New("user account is inactive")

	// ErrInvalidInput wraps payload validation failures.
	ErrInvalidInput = errors.New("invalid input")
)

// RegisterParams is the registration payload.
type RegisterParams struct {
	Email    string `json:"email" validate:"required,email"`
	FullName string `json:"full_name" validate:"required,max=200"`
	Password string `json:"password" validate:"required,min=8,max=128"`
}

// TokenPair is the result of a successful login.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
}

// Service handles registration and authentication.
type Service struct {
	repo      Repository
	tokens    *auth.TokenManager
	logger    zerolog.Logger
	validator *validator.Validate
}

func NewService(repo Repository, tokens *auth.TokenManager, logger zerolog.Logger) *Service {
	return &Service{
		repo:      repo,
		tokens:    tokens,
		logger:    logger.With().Str("component", "users").Logger(),
		validator: validator.New(),
	}
}

// Register creates a new active account with a hashed password.
// Duplicate emails yield ErrEmailTaken.
func (s *Service) Register(ctx context.Context, params RegisterParams) (*User, error) {
	if err := s.validator.Struct(params); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}

	if _, err := s.repo.GetByEmail(ctx, params.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, ErrNotFound) {
		return nil, fmt.Errorf("check email: %w", err)
	}

	hash, err := auth.HashPassword(params.Password)
	if err != nil {
		return nil, err
	}

	user, err := s.repo.Create(ctx, CreateParams{
		Email:        params.Email,
		FullName:     params.FullName,
		PasswordHash: hash,
		IsActive:     true,
	})
	if err != nil {
		// The unique constraint can still fire under a concurrent register.
		if errors.Is(err, ErrEmailTaken) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.logger.Info().Str("user_id", user.ID).Msg("user registered")
	return user, nil
}

// Login verifies credentials and issues an access/refresh token pair.
func (s *Service) Login(ctx context.Context, email, password string) (*TokenPair, error) {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("lookup user: %w", err)
	}

	if !auth.VerifyPassword(password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, ErrUserInactive
	}

	accessToken, err := s.tokens.IssueAccessToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("issue access token: %w", err)
	}
	refreshToken, err := s.tokens.IssueRefreshToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("issue refresh token: %w", err)
	}

	s.logger.Info().Str("user_id", user.ID).Msg("user logged in")
	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "bearer",
	}, nil
}

// Refresh exchanges a valid refresh token for a new access token. The
// account must still exist and be active.
func (s *Service) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	userID, err := s.tokens.DecodeRefresh(refreshToken)
	if err != nil {
		return nil, err
	}

	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("lookup user: %w", err)
	}
	if !user.IsActive {
		return nil, ErrUserInactive
	}

	accessToken, err := s.tokens.IssueAccessToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("issue access token: %w", err)
	}
	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "bearer",
	}, nil
}

// GetByID fetches a single user.
func (s *Service) GetByID(ctx context.Context, id string) (*User, error) {
	return s.repo.GetByID(ctx, id)
}
