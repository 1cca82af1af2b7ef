package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	accountDomain "github.com/allisson/mediavault/internal/account/domain"
	mediaDomain "github.com/allisson/mediavault/internal/media/domain"
	vaultService "github.com/allisson/mediavault/internal/vault/service"
)

const testMasterSecret = "0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef"

// passthroughTxManager runs the function with the caller's context and no transaction.
type passthroughTxManager struct{}

func (passthroughTxManager) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func newTestCipher(t *testing.T) vaultService.EnvelopeCipher {
	t.Helper()

	key, err := vaultService.DeriveKey(testMasterSecret)
	require.NoError(t, err)
	t.Cleanup(key.Close)

	cipher, err := vaultService.NewAESGCMEnvelopeCipher(key)
	require.NoError(t, err)
	return cipher
}

func newTestAccount(t *testing.T, cipher vaultService.EnvelopeCipher, ownerID uuid.UUID) *accountDomain.Account {
	t.Helper()

	apiKey, err := cipher.Encrypt("123456789012345")
	require.NoError(t, err)
	apiSecret, err := cipher.Encrypt("sk_live_abc")
	require.NoError(t, err)

	now := time.Now().UTC()
	return &accountDomain.Account{
		ID:                uuid.Must(uuid.NewV7()),
		OwnerID:           ownerID,
		Name:              "Main",
		CloudName:         "demo",
		APIKeyEnvelope:    apiKey,
		APISecretEnvelope: apiSecret,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}

type mockMaterializer struct {
	mock.Mock
}

func (m *mockMaterializer) Materialize(account *accountDomain.Account) (*mediaDomain.ClientConfig, error) {
	args := m.Called(account)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mediaDomain.ClientConfig), args.Error(1)
}
