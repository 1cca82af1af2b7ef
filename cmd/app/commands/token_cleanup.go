package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	authUseCase "github.com/allisson/mediavault/internal/auth/usecase"
)

// tokenCleanupTimeout bounds a single scheduled cleanup run.
const tokenCleanupTimeout = time.Minute

// newTokenCleanupScheduler returns a stopped cron scheduler that purges expired tokens on
// the given schedule. Standard five-field expressions and descriptors such as @hourly are accepted.
func newTokenCleanupScheduler(
	ctx context.Context,
	schedule string,
	tokenUseCase authUseCase.TokenUseCase,
	logger *slog.Logger,
) (*cron.Cron, error) {
	scheduler := cron.New()
	_, err := scheduler.AddFunc(schedule, func() {
		runTokenCleanup(ctx, tokenUseCase, logger)
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token cleanup schedule %q: %w", schedule, err)
	}
	return scheduler, nil
}

// runTokenCleanup deletes every expired token. Failures are logged; the next run retries.
func runTokenCleanup(ctx context.Context, tokenUseCase authUseCase.TokenUseCase, logger *slog.Logger) {
	ctx, cancel := context.WithTimeout(ctx, tokenCleanupTimeout)
	defer cancel()

	count, err := tokenUseCase.CleanupExpired(ctx, 0, false)
	if err != nil {
		logger.Error("scheduled token cleanup failed", slog.Any("error", err))
		return
	}
	logger.Info("scheduled token cleanup completed", slog.Int64("count", count))
}
