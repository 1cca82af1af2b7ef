// Package domain defines the user entity. Users own media service accounts and sign in
// with an email and password.
package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/allisson/mediavault/internal/errors"
)

// User is a registered user. Password holds the Argon2id hash, never the plaintext.
type User struct {
	ID        uuid.UUID
	Name      string
	Email     string
	Password  string //nolint:gosec // PHC-encoded hash
	CreatedAt time.Time
	UpdatedAt time.Time
}

// RegisterUserInput carries the sign-up fields of a new user.
type RegisterUserInput struct {
	Name     string
	Email    string
	Password string //nolint:gosec // plaintext only until hashed
}

// Domain-specific errors for user operations.
var (
	// ErrUserNotFound indicates the requested user does not exist.
	ErrUserNotFound = errors.Wrap(errors.ErrNotFound, "user not found")

	// ErrUserAlreadyExists indicates a user with the same email already exists.
	ErrUserAlreadyExists = errors.Wrap(errors.ErrConflict, "user already exists")
)
