package usecase

import (
	"context"

	"github.com/google/uuid"

	accountDomain "github.com/allisson/mediavault/internal/account/domain"
	mediaDomain "github.com/allisson/mediavault/internal/media/domain"
	vaultService "github.com/allisson/mediavault/internal/vault/service"
)

type sessionMaterializer struct {
	cipher vaultService.EnvelopeCipher
}

// Materialize decrypts both envelopes of the account. If either fails the error of the
// cipher is returned and no configuration is produced. The caller owns the returned
// value and should Clear it when the operation ends.
func (m *sessionMaterializer) Materialize(account *accountDomain.Account) (*mediaDomain.ClientConfig, error) {
	apiKey, err := m.cipher.Decrypt(account.APIKeyEnvelope)
	if err != nil {
		return nil, err
	}

	apiSecret, err := m.cipher.Decrypt(account.APISecretEnvelope)
	if err != nil {
		return nil, err
	}

	return &mediaDomain.ClientConfig{
		CloudName: account.CloudName,
		APIKey:    apiKey,
		APISecret: apiSecret,
	}, nil
}

// NewSessionMaterializer creates a SessionMaterializer using the given envelope cipher.
func NewSessionMaterializer(cipher vaultService.EnvelopeCipher) SessionMaterializer {
	return &sessionMaterializer{cipher: cipher}
}

// SessionProvider combines the ownership gate and the materializer: it yields a client
// configuration for an account only to its owner.
type SessionProvider struct {
	gate         OwnershipGate
	materializer SessionMaterializer
}

// NewSessionProvider creates a SessionProvider.
func NewSessionProvider(gate OwnershipGate, materializer SessionMaterializer) *SessionProvider {
	return &SessionProvider{gate: gate, materializer: materializer}
}

// Open checks that callerID owns the account and materializes its client configuration.
func (p *SessionProvider) Open(
	ctx context.Context,
	accountID, callerID uuid.UUID,
) (*mediaDomain.ClientConfig, error) {
	account, err := p.gate.Check(ctx, accountID, callerID)
	if err != nil {
		return nil, err
	}
	return p.materializer.Materialize(account)
}
