package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	accountDomain "github.com/allisson/mediavault/internal/account/domain"
	"github.com/allisson/mediavault/internal/database"
	apperrors "github.com/allisson/mediavault/internal/errors"
	vaultService "github.com/allisson/mediavault/internal/vault/service"
)

type accountUseCase struct {
	txManager     database.TxManager
	accountRepo   AccountRepository
	gate          OwnershipGate
	cipher        vaultService.EnvelopeCipher
	materializer  SessionMaterializer
	revealEnabled bool
}

// Create encrypts the credentials and stores a new account owned by callerID.
func (a *accountUseCase) Create(
	ctx context.Context,
	callerID uuid.UUID,
	input accountDomain.CreateAccountInput,
) (*accountDomain.Account, error) {
	if callerID == uuid.Nil {
		return nil, apperrors.ErrUnauthorized
	}
	input = input.Normalize()

	apiKeyEnvelope, err := a.cipher.Encrypt(input.APIKey)
	if err != nil {
		return nil, err
	}
	apiSecretEnvelope, err := a.cipher.Encrypt(input.APISecret)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	account := &accountDomain.Account{
		ID:                uuid.Must(uuid.NewV7()),
		OwnerID:           callerID,
		Name:              input.Name,
		CloudName:         input.CloudName,
		APIKeyEnvelope:    apiKeyEnvelope,
		APISecretEnvelope: apiSecretEnvelope,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if err := a.accountRepo.Create(ctx, account); err != nil {
		return nil, err
	}
	return account, nil
}

// List returns the caller's accounts, newest first.
func (a *accountUseCase) List(
	ctx context.Context,
	callerID uuid.UUID,
	offset, limit int,
) ([]*accountDomain.Account, error) {
	if callerID == uuid.Nil {
		return nil, apperrors.ErrUnauthorized
	}
	return a.accountRepo.ListByOwner(ctx, callerID, offset, limit)
}

// Get returns an account owned by the caller.
func (a *accountUseCase) Get(ctx context.Context, accountID, callerID uuid.UUID) (*accountDomain.Account, error) {
	return a.gate.Check(ctx, accountID, callerID)
}

// Update applies a partial update. Provided credentials get a new envelope; omitted ones
// keep their stored envelope unchanged. Concurrent updates of one account are
// last-write-wins.
func (a *accountUseCase) Update(
	ctx context.Context,
	accountID, callerID uuid.UUID,
	input accountDomain.UpdateAccountInput,
) (*accountDomain.Account, error) {
	input = input.Normalize()

	var updated *accountDomain.Account
	err := a.txManager.WithTx(ctx, func(txCtx context.Context) error {
		account, err := a.gate.Check(txCtx, accountID, callerID)
		if err != nil {
			return err
		}

		if input.IsEmpty() {
			return accountDomain.ErrNoFieldsToUpdate
		}

		if input.Name != nil {
			account.Name = *input.Name
		}
		if input.CloudName != nil {
			account.CloudName = *input.CloudName
		}
		if input.APIKey != nil {
			if account.APIKeyEnvelope, err = a.cipher.Encrypt(*input.APIKey); err != nil {
				return err
			}
		}
		if input.APISecret != nil {
			if account.APISecretEnvelope, err = a.cipher.Encrypt(*input.APISecret); err != nil {
				return err
			}
		}
		account.UpdatedAt = time.Now().UTC()

		if err := a.accountRepo.Update(txCtx, account); err != nil {
			return err
		}
		updated = account
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// Delete removes an account owned by the caller.
func (a *accountUseCase) Delete(ctx context.Context, accountID, callerID uuid.UUID) error {
	return a.txManager.WithTx(ctx, func(txCtx context.Context) error {
		account, err := a.gate.Check(txCtx, accountID, callerID)
		if err != nil {
			return err
		}
		return a.accountRepo.Delete(txCtx, account.ID)
	})
}

// RevealCredentials decrypts the key pair of an account owned by the caller.
func (a *accountUseCase) RevealCredentials(
	ctx context.Context,
	accountID, callerID uuid.UUID,
) (*accountDomain.Credentials, error) {
	if !a.revealEnabled {
		return nil, accountDomain.ErrCredentialsRevealDisabled
	}

	account, err := a.gate.Check(ctx, accountID, callerID)
	if err != nil {
		return nil, err
	}

	cfg, err := a.materializer.Materialize(account)
	if err != nil {
		return nil, err
	}
	defer cfg.Clear()

	return &accountDomain.Credentials{
		AccountID: account.ID,
		CloudName: cfg.CloudName,
		APIKey:    cfg.APIKey,
		APISecret: cfg.APISecret,
	}, nil
}

// NewAccountUseCase creates a new AccountUseCase. revealEnabled controls whether
// RevealCredentials is allowed at all.
func NewAccountUseCase(
	txManager database.TxManager,
	accountRepo AccountRepository,
	cipher vaultService.EnvelopeCipher,
	revealEnabled bool,
) AccountUseCase {
	return &accountUseCase{
		txManager:     txManager,
		accountRepo:   accountRepo,
		gate:          NewOwnershipGate(accountRepo),
		cipher:        cipher,
		materializer:  NewSessionMaterializer(cipher),
		revealEnabled: revealEnabled,
	}
}
