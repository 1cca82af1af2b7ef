// Package domain defines bearer tokens issued to users after a password sign-in.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Token is an issued bearer token. Only the SHA-256 hash of the plain token is stored.
type Token struct {
	ID        uuid.UUID
	TokenHash string
	UserID    uuid.UUID
	ExpiresAt time.Time
	RevokedAt *time.Time
	CreatedAt time.Time
}

// IsValid reports whether the token can still authenticate at now.
func (t *Token) IsValid(now time.Time) bool {
	return t.RevokedAt == nil && now.Before(t.ExpiresAt)
}

// IssueTokenInput carries the sign-in credentials of a user.
type IssueTokenInput struct {
	Email    string
	Password string //nolint:gosec // plaintext only for the duration of the sign-in
}

// IssueTokenOutput is the result of a successful sign-in. PlainToken is shown only once.
type IssueTokenOutput struct {
	PlainToken string
	ExpiresAt  time.Time
}
