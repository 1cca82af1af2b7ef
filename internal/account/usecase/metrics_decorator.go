package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	accountDomain "github.com/allisson/mediavault/internal/account/domain"
	"github.com/allisson/mediavault/internal/metrics"
)

const metricsDomain = "accounts"

// accountUseCaseWithMetrics decorates AccountUseCase with metrics instrumentation.
type accountUseCaseWithMetrics struct {
	next    AccountUseCase
	metrics metrics.BusinessMetrics
}

// NewAccountUseCaseWithMetrics wraps an AccountUseCase with metrics recording.
func NewAccountUseCaseWithMetrics(useCase AccountUseCase, m metrics.BusinessMetrics) AccountUseCase {
	return &accountUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (a *accountUseCaseWithMetrics) Create(
	ctx context.Context,
	callerID uuid.UUID,
	input accountDomain.CreateAccountInput,
) (*accountDomain.Account, error) {
	start := time.Now()
	account, err := a.next.Create(ctx, callerID, input)
	metrics.Observe(ctx, a.metrics, metricsDomain, "account_create", start, err)
	return account, err
}

func (a *accountUseCaseWithMetrics) List(
	ctx context.Context,
	callerID uuid.UUID,
	offset, limit int,
) ([]*accountDomain.Account, error) {
	start := time.Now()
	accounts, err := a.next.List(ctx, callerID, offset, limit)
	metrics.Observe(ctx, a.metrics, metricsDomain, "account_list", start, err)
	return accounts, err
}

func (a *accountUseCaseWithMetrics) Get(
	ctx context.Context,
	accountID, callerID uuid.UUID,
) (*accountDomain.Account, error) {
	start := time.Now()
	account, err := a.next.Get(ctx, accountID, callerID)
	metrics.Observe(ctx, a.metrics, metricsDomain, "account_get", start, err)
	return account, err
}

func (a *accountUseCaseWithMetrics) Update(
	ctx context.Context,
	accountID, callerID uuid.UUID,
	input accountDomain.UpdateAccountInput,
) (*accountDomain.Account, error) {
	start := time.Now()
	account, err := a.next.Update(ctx, accountID, callerID, input)
	metrics.Observe(ctx, a.metrics, metricsDomain, "account_update", start, err)
	return account, err
}

func (a *accountUseCaseWithMetrics) Delete(ctx context.Context, accountID, callerID uuid.UUID) error {
	start := time.Now()
	err := a.next.Delete(ctx, accountID, callerID)
	metrics.Observe(ctx, a.metrics, metricsDomain, "account_delete", start, err)
	return err
}

func (a *accountUseCaseWithMetrics) RevealCredentials(
	ctx context.Context,
	accountID, callerID uuid.UUID,
) (*accountDomain.Credentials, error) {
	start := time.Now()
	creds, err := a.next.RevealCredentials(ctx, accountID, callerID)
	metrics.Observe(ctx, a.metrics, metricsDomain, "account_reveal_credentials", start, err)
	return creds, err
}
