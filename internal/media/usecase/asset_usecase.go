package usecase

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	apperrors "github.com/allisson/mediavault/internal/errors"
	mediaDomain "github.com/allisson/mediavault/internal/media/domain"
	mediaService "github.com/allisson/mediavault/internal/media/service"
)

type assetUseCase struct {
	sessions SessionOpener
	client   mediaService.Client
	resolver TypeResolver
	logger   *slog.Logger
}

func (a *assetUseCase) List(
	ctx context.Context,
	accountID, callerID uuid.UUID,
	input mediaDomain.ListAssetsInput,
) (*mediaDomain.AssetPage, error) {
	switch {
	case input.MaxResults == 0:
		input.MaxResults = mediaDomain.DefaultMaxResults
	case input.MaxResults < 1 || input.MaxResults > mediaDomain.MaxMaxResults:
		return nil, apperrors.Wrapf(
			apperrors.ErrInvalidInput,
			"max_results must be between 1 and %d",
			mediaDomain.MaxMaxResults,
		)
	}
	if input.Category == "" {
		input.Category = mediaDomain.CategoryImage
	}

	cfg, err := a.sessions.Open(ctx, accountID, callerID)
	if err != nil {
		return nil, err
	}
	defer cfg.Clear()

	page, err := a.client.ListResources(ctx, *cfg, input)
	if err != nil {
		return nil, err
	}
	if page.Resources == nil {
		page.Resources = []mediaDomain.Asset{}
	}
	return page, nil
}

func (a *assetUseCase) Upload(
	ctx context.Context,
	accountID, callerID uuid.UUID,
	input mediaDomain.UploadAssetInput,
) (*mediaDomain.Asset, error) {
	if input.File == nil {
		return nil, apperrors.Wrap(apperrors.ErrInvalidInput, "file is required")
	}

	cfg, err := a.sessions.Open(ctx, accountID, callerID)
	if err != nil {
		return nil, err
	}
	defer cfg.Clear()

	return a.client.Upload(ctx, *cfg, input)
}

func (a *assetUseCase) Update(
	ctx context.Context,
	accountID, callerID uuid.UUID,
	publicID string,
	input mediaDomain.UpdateAssetInput,
	strict bool,
) (*mediaDomain.UpdateAssetResult, error) {
	if input.IsEmpty() {
		return nil, mediaDomain.ErrNoAssetChanges
	}

	cfg, err := a.sessions.Open(ctx, accountID, callerID)
	if err != nil {
		return nil, err
	}
	defer cfg.Clear()

	resolution, err := a.resolve(ctx, *cfg, publicID, strict)
	if err != nil {
		return nil, err
	}

	result := &mediaDomain.UpdateAssetResult{
		PublicID: publicID,
		Category: resolution.Category,
		Resolved: resolution.Resolved,
	}

	if input.NewPublicID != nil && *input.NewPublicID != "" && *input.NewPublicID != publicID {
		if _, err := a.client.Rename(ctx, *cfg, resolution.Category, publicID, *input.NewPublicID); err != nil {
			return nil, err
		}
		result.PublicID = *input.NewPublicID
		result.Renamed = true
	}

	if len(input.Tags) > 0 {
		if err := a.client.AddTags(ctx, *cfg, resolution.Category, result.PublicID, input.Tags); err != nil {
			return nil, partialUpdate(result, err)
		}
		result.TagsAdded = input.Tags
	}

	if len(input.Context) > 0 {
		if err := a.client.AddContext(ctx, *cfg, resolution.Category, result.PublicID, input.Context); err != nil {
			return nil, partialUpdate(result, err)
		}
		result.ContextUpdated = true
	}

	return result, nil
}

func (a *assetUseCase) Delete(
	ctx context.Context,
	accountID, callerID uuid.UUID,
	publicID string,
	strict bool,
) (*mediaDomain.DeleteAssetResult, error) {
	cfg, err := a.sessions.Open(ctx, accountID, callerID)
	if err != nil {
		return nil, err
	}
	defer cfg.Clear()

	resolution, err := a.resolve(ctx, *cfg, publicID, strict)
	if err != nil {
		return nil, err
	}

	outcome, err := a.client.Destroy(ctx, *cfg, resolution.Category, publicID)
	if err != nil {
		return nil, err
	}
	if outcome == mediaService.DestroyResultNotFound {
		return nil, apperrors.Wrapf(mediaDomain.ErrAssetNotFound, "public id %q", publicID)
	}

	return &mediaDomain.DeleteAssetResult{
		PublicID: publicID,
		Category: resolution.Category,
		Resolved: resolution.Resolved,
		Result:   outcome,
	}, nil
}

// partialUpdate attaches the applied changes to err once the asset has been renamed.
func partialUpdate(result *mediaDomain.UpdateAssetResult, err error) error {
	if !result.Renamed {
		return err
	}
	return &mediaDomain.PartialUpdateError{Result: result, Err: err}
}

func (a *assetUseCase) resolve(
	ctx context.Context,
	cfg mediaDomain.ClientConfig,
	publicID string,
	strict bool,
) (mediaDomain.Resolution, error) {
	if strict {
		return a.resolver.ResolveStrict(ctx, cfg, publicID)
	}

	resolution, err := a.resolver.Resolve(ctx, cfg, publicID)
	if err != nil {
		return resolution, err
	}
	if !resolution.Resolved {
		a.logger.Warn("asset category not resolved, using fallback",
			slog.String("public_id", publicID),
			slog.String("category", resolution.Category.String()),
			slog.Int("probes", resolution.Probes),
		)
	}
	return resolution, nil
}

// NewAssetUseCase creates an AssetUseCase.
func NewAssetUseCase(
	sessions SessionOpener,
	client mediaService.Client,
	resolver TypeResolver,
	logger *slog.Logger,
) AssetUseCase {
	return &assetUseCase{
		sessions: sessions,
		client:   client,
		resolver: resolver,
		logger:   logger,
	}
}
