// Package service talks to the external media service and resolves the resource
// category of assets before category-scoped operations.
package service

import (
	"context"

	mediaDomain "github.com/allisson/mediavault/internal/media/domain"
)

// Prober checks whether an asset exists under a single category.
type Prober interface {
	// Probe returns ProbeMatched or ProbeNotInCategory. Any other failure (credentials,
	// network, rate limit) is returned as an error and must not be read as a miss.
	Probe(
		ctx context.Context,
		cfg mediaDomain.ClientConfig,
		publicID string,
		category mediaDomain.Category,
	) (mediaDomain.ProbeResult, error)
}

// Client is the subset of the media service API the application proxies. Every call
// takes the ClientConfig of the account it acts for.
type Client interface {
	Prober
	ListResources(
		ctx context.Context,
		cfg mediaDomain.ClientConfig,
		input mediaDomain.ListAssetsInput,
	) (*mediaDomain.AssetPage, error)
	Upload(
		ctx context.Context,
		cfg mediaDomain.ClientConfig,
		input mediaDomain.UploadAssetInput,
	) (*mediaDomain.Asset, error)
	Rename(
		ctx context.Context,
		cfg mediaDomain.ClientConfig,
		category mediaDomain.Category,
		fromPublicID, toPublicID string,
	) (*mediaDomain.Asset, error)
	AddTags(
		ctx context.Context,
		cfg mediaDomain.ClientConfig,
		category mediaDomain.Category,
		publicID string,
		tags []string,
	) error
	AddContext(
		ctx context.Context,
		cfg mediaDomain.ClientConfig,
		category mediaDomain.Category,
		publicID string,
		values map[string]string,
	) error
	// Destroy deletes an asset and returns the service's result string ("ok" or "not found").
	Destroy(
		ctx context.Context,
		cfg mediaDomain.ClientConfig,
		category mediaDomain.Category,
		publicID string,
	) (string, error)
}
