// Package usecase implements bearer token issuance, authentication and cleanup.
package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	authDomain "github.com/allisson/mediavault/internal/auth/domain"
	userDomain "github.com/allisson/mediavault/internal/user/domain"
)

// TokenRepository defines persistence operations for bearer tokens.
type TokenRepository interface {
	Create(ctx context.Context, token *authDomain.Token) error

	// GetByTokenHash returns ErrTokenNotFound when no token has the hash.
	GetByTokenHash(ctx context.Context, tokenHash string) (*authDomain.Token, error)

	DeleteExpired(ctx context.Context, olderThan time.Time) (int64, error)
	CountExpired(ctx context.Context, olderThan time.Time) (int64, error)
}

// UserRepository is the subset of user persistence needed to sign users in.
type UserRepository interface {
	// GetByEmail returns userDomain.ErrUserNotFound when no user has the email.
	GetByEmail(ctx context.Context, email string) (*userDomain.User, error)
}

// TokenUseCase defines bearer token business logic.
type TokenUseCase interface {
	// Issue verifies the user's email and password and returns a new token. Unknown
	// emails and wrong passwords both yield ErrInvalidCredentials.
	Issue(ctx context.Context, input *authDomain.IssueTokenInput) (*authDomain.IssueTokenOutput, error)

	// Authenticate resolves a token hash to the id of the user it was issued to.
	// Unknown, expired and revoked tokens yield ErrInvalidCredentials.
	Authenticate(ctx context.Context, tokenHash string) (uuid.UUID, error)

	// CleanupExpired deletes tokens that expired more than days ago. With dryRun it only
	// counts them.
	CleanupExpired(ctx context.Context, days int, dryRun bool) (int64, error)
}
