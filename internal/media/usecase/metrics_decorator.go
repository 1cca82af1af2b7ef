package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	mediaDomain "github.com/allisson/mediavault/internal/media/domain"
	"github.com/allisson/mediavault/internal/metrics"
)

const metricsDomain = "assets"

// assetUseCaseWithMetrics decorates AssetUseCase with metrics instrumentation.
type assetUseCaseWithMetrics struct {
	next    AssetUseCase
	metrics metrics.BusinessMetrics
}

// NewAssetUseCaseWithMetrics wraps an AssetUseCase with metrics recording.
func NewAssetUseCaseWithMetrics(useCase AssetUseCase, m metrics.BusinessMetrics) AssetUseCase {
	return &assetUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (a *assetUseCaseWithMetrics) List(
	ctx context.Context,
	accountID, callerID uuid.UUID,
	input mediaDomain.ListAssetsInput,
) (*mediaDomain.AssetPage, error) {
	start := time.Now()
	page, err := a.next.List(ctx, accountID, callerID, input)
	metrics.Observe(ctx, a.metrics, metricsDomain, "asset_list", start, err)
	return page, err
}

func (a *assetUseCaseWithMetrics) Upload(
	ctx context.Context,
	accountID, callerID uuid.UUID,
	input mediaDomain.UploadAssetInput,
) (*mediaDomain.Asset, error) {
	start := time.Now()
	asset, err := a.next.Upload(ctx, accountID, callerID, input)
	metrics.Observe(ctx, a.metrics, metricsDomain, "asset_upload", start, err)
	return asset, err
}

func (a *assetUseCaseWithMetrics) Update(
	ctx context.Context,
	accountID, callerID uuid.UUID,
	publicID string,
	input mediaDomain.UpdateAssetInput,
	strict bool,
) (*mediaDomain.UpdateAssetResult, error) {
	start := time.Now()
	result, err := a.next.Update(ctx, accountID, callerID, publicID, input, strict)
	metrics.Observe(ctx, a.metrics, metricsDomain, "asset_update", start, err)
	return result, err
}

func (a *assetUseCaseWithMetrics) Delete(
	ctx context.Context,
	accountID, callerID uuid.UUID,
	publicID string,
	strict bool,
) (*mediaDomain.DeleteAssetResult, error) {
	start := time.Now()
	result, err := a.next.Delete(ctx, accountID, callerID, publicID, strict)
	metrics.Observe(ctx, a.metrics, metricsDomain, "asset_delete", start, err)
	return result, err
}
