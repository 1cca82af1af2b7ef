package domain

import (
	"github.com/allisson/mediavault/internal/errors"
)

// Account-specific error definitions.
var (
	// ErrAccountNotFound indicates no account exists with the given id.
	ErrAccountNotFound = errors.Wrap(errors.ErrNotFound, "account not found")

	// ErrAccountForbidden indicates the account exists but belongs to another user.
	ErrAccountForbidden = errors.Wrap(errors.ErrForbidden, "account belongs to another user")

	// ErrNoFieldsToUpdate indicates an update request that changes nothing.
	ErrNoFieldsToUpdate = errors.Wrap(errors.ErrInvalidInput, "no fields to update")

	// ErrCredentialsRevealDisabled indicates reading back decrypted credentials is turned off.
	ErrCredentialsRevealDisabled = errors.Wrap(errors.ErrForbidden, "credential reveal is disabled")
)
