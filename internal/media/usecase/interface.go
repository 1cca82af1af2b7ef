// Package usecase implements the asset operations proxied to the media service on behalf
// of an account owner.
package usecase

import (
	"context"

	"github.com/google/uuid"

	mediaDomain "github.com/allisson/mediavault/internal/media/domain"
)

// SessionOpener yields the client configuration of an account to its owner only.
type SessionOpener interface {
	Open(ctx context.Context, accountID, callerID uuid.UUID) (*mediaDomain.ClientConfig, error)
}

// TypeResolver discovers the category of an asset before category-scoped operations.
type TypeResolver interface {
	Resolve(ctx context.Context, cfg mediaDomain.ClientConfig, publicID string) (mediaDomain.Resolution, error)
	ResolveStrict(ctx context.Context, cfg mediaDomain.ClientConfig, publicID string) (mediaDomain.Resolution, error)
}

// AssetUseCase defines the asset operations. Each call opens a session for the account
// through the ownership check and discards it when the call returns.
type AssetUseCase interface {
	List(
		ctx context.Context,
		accountID, callerID uuid.UUID,
		input mediaDomain.ListAssetsInput,
	) (*mediaDomain.AssetPage, error)
	Upload(
		ctx context.Context,
		accountID, callerID uuid.UUID,
		input mediaDomain.UploadAssetInput,
	) (*mediaDomain.Asset, error)
	// Update renames the asset and adds tags and context as requested. The asset category
	// is resolved first; with strict set an unresolved category is an error.
	Update(
		ctx context.Context,
		accountID, callerID uuid.UUID,
		publicID string,
		input mediaDomain.UpdateAssetInput,
		strict bool,
	) (*mediaDomain.UpdateAssetResult, error)
	// Delete resolves the asset category and destroys the asset. With strict set an
	// unresolved category is reported as mediaDomain.ErrAssetTypeUnresolved.
	Delete(
		ctx context.Context,
		accountID, callerID uuid.UUID,
		publicID string,
		strict bool,
	) (*mediaDomain.DeleteAssetResult, error)
}
