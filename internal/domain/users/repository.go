package users

import (
	"context"
	"errors"
	"time"
)

var (
	ErrNotFound = errors.New("user not found")

	// ErrEmailTaken is returned when registering with an email that is
	// already present.
	ErrEmailTaken = errors.New("email is already registered")
)

// User is a registered account. PasswordHash never leaves the service
// layer; response shapes are built from the other fields.
type User struct {
	ID           string
	Email        string
	FullName     string
	PasswordHash string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}

type CreateParams struct {
	Email        string
	FullName     string
	PasswordHash string
	IsActive     bool
}

// Repository abstracts user persistence so the service stays independent
// of storage implementation details.
type Repository interface {
	Create(ctx context.Context, params CreateParams) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
}
