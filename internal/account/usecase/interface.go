// Package usecase implements account management: ownership checks, credential
// encryption on write and per-operation materialization of media client configuration.
package usecase

import (
	"context"

	"github.com/google/uuid"

	accountDomain "github.com/allisson/mediavault/internal/account/domain"
	mediaDomain "github.com/allisson/mediavault/internal/media/domain"
)

// AccountRepository defines the interface for Account persistence operations.
type AccountRepository interface {
	Create(ctx context.Context, account *accountDomain.Account) error
	// Get returns accountDomain.ErrAccountNotFound when no account has the id.
	Get(ctx context.Context, accountID uuid.UUID) (*accountDomain.Account, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID, offset, limit int) ([]*accountDomain.Account, error)
	// Update writes name, cloud name, envelopes and updated_at. The owner is never written.
	Update(ctx context.Context, account *accountDomain.Account) error
	Delete(ctx context.Context, accountID uuid.UUID) error
}

// OwnershipGate resolves an account for a caller, enforcing that the caller owns it.
type OwnershipGate interface {
	Check(ctx context.Context, accountID, callerID uuid.UUID) (*accountDomain.Account, error)
}

// SessionMaterializer turns a stored account into a client configuration for one operation.
type SessionMaterializer interface {
	Materialize(account *accountDomain.Account) (*mediaDomain.ClientConfig, error)
}

// AccountUseCase defines account management business logic. Every operation on an
// existing account passes through the OwnershipGate.
type AccountUseCase interface {
	Create(
		ctx context.Context,
		callerID uuid.UUID,
		input accountDomain.CreateAccountInput,
	) (*accountDomain.Account, error)
	List(ctx context.Context, callerID uuid.UUID, offset, limit int) ([]*accountDomain.Account, error)
	Get(ctx context.Context, accountID, callerID uuid.UUID) (*accountDomain.Account, error)
	Update(
		ctx context.Context,
		accountID, callerID uuid.UUID,
		input accountDomain.UpdateAccountInput,
	) (*accountDomain.Account, error)
	Delete(ctx context.Context, accountID, callerID uuid.UUID) error
	// RevealCredentials decrypts and returns the stored key pair.
	RevealCredentials(ctx context.Context, accountID, callerID uuid.UUID) (*accountDomain.Credentials, error)
}
