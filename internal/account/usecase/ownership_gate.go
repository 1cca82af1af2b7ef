package usecase

import (
	"context"

	"github.com/google/uuid"

	accountDomain "github.com/allisson/mediavault/internal/account/domain"
	apperrors "github.com/allisson/mediavault/internal/errors"
)

type ownershipGate struct {
	accountRepo AccountRepository
}

// Check loads the account and returns it only when callerID owns it. A missing caller
// identity is an authentication failure; a missing account is ErrAccountNotFound; an
// account owned by someone else is ErrAccountForbidden and is not returned.
func (g *ownershipGate) Check(
	ctx context.Context,
	accountID, callerID uuid.UUID,
) (*accountDomain.Account, error) {
	if callerID == uuid.Nil {
		return nil, apperrors.ErrUnauthorized
	}

	account, err := g.accountRepo.Get(ctx, accountID)
	if err != nil {
		return nil, err
	}

	if account.OwnerID != callerID {
		return nil, accountDomain.ErrAccountForbidden
	}

	return account, nil
}

// NewOwnershipGate creates an OwnershipGate backed by the account repository.
func NewOwnershipGate(accountRepo AccountRepository) OwnershipGate {
	return &ownershipGate{accountRepo: accountRepo}
}
