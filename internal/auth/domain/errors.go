package domain

import (
	"github.com/allisson/mediavault/internal/errors"
)

// Authentication errors.
var (
	// ErrTokenNotFound indicates no token matches the given hash.
	ErrTokenNotFound = errors.Wrap(errors.ErrNotFound, "token not found")

	// ErrInvalidCredentials covers unknown emails, wrong passwords and unusable tokens alike.
	ErrInvalidCredentials = errors.Wrap(errors.ErrUnauthorized, "invalid credentials")
)
