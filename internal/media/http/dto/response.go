package dto

import (
	"time"

	"github.com/allisson/mediavault/internal/httputil"
	mediaDomain "github.com/allisson/mediavault/internal/media/domain"
)

// AssetResponse describes an asset stored in the media service.
type AssetResponse struct {
	AssetID      string            `json:"asset_id"`
	PublicID     string            `json:"public_id"`
	ResourceType string            `json:"resource_type"`
	Type         string            `json:"type"`
	Format       string            `json:"format,omitempty"`
	Version      int64             `json:"version"`
	Bytes        int64             `json:"bytes"`
	Width        int               `json:"width,omitempty"`
	Height       int               `json:"height,omitempty"`
	URL          string            `json:"url"`
	SecureURL    string            `json:"secure_url"`
	Folder       string            `json:"folder,omitempty"`
	Tags         []string          `json:"tags"`
	Context      map[string]string `json:"context,omitempty"`
	CreatedAt    time.Time         `json:"created_at"`
}

// ListAssetsResponse is one page of assets.
type ListAssetsResponse struct {
	Resources  []AssetResponse `json:"resources"`
	NextCursor string          `json:"next_cursor"`
	TotalCount int             `json:"total_count"`
}

// UploadAssetResponse is returned after a successful upload.
type UploadAssetResponse struct {
	Message string        `json:"message"`
	Asset   AssetResponse `json:"asset"`
}

// AssetUpdates lists which changes an update applied.
type AssetUpdates struct {
	Renamed bool     `json:"renamed"`
	Tags    []string `json:"tags,omitempty"`
	Context bool     `json:"context"`
}

// UpdateAssetResponse is returned after an asset update.
type UpdateAssetResponse struct {
	Message      string       `json:"message"`
	PublicID     string       `json:"public_id"`
	ResourceType string       `json:"resource_type"`
	Resolved     bool         `json:"resolved"`
	Updates      AssetUpdates `json:"updates"`
}

// PartialUpdateErrorResponse is returned when an update failed after the asset was
// renamed. PublicID is the asset's current public id.
type PartialUpdateErrorResponse struct {
	httputil.ErrorResponse
	PublicID     string       `json:"public_id"`
	ResourceType string       `json:"resource_type"`
	Updates      AssetUpdates `json:"updates"`
}

// DeleteAssetResponse is returned after an asset deletion. Resolved is false when the
// resource type was defaulted rather than discovered.
type DeleteAssetResponse struct {
	Message      string `json:"message"`
	PublicID     string `json:"public_id"`
	ResourceType string `json:"resource_type"`
	Resolved     bool   `json:"resolved"`
	Result       string `json:"result"`
}

// MapAssetToResponse converts a domain asset.
func MapAssetToResponse(asset *mediaDomain.Asset) AssetResponse {
	tags := asset.Tags
	if tags == nil {
		tags = []string{}
	}
	return AssetResponse{
		AssetID:      asset.AssetID,
		PublicID:     asset.PublicID,
		ResourceType: asset.Category.String(),
		Type:         asset.Type,
		Format:       asset.Format,
		Version:      asset.Version,
		Bytes:        asset.Bytes,
		Width:        asset.Width,
		Height:       asset.Height,
		URL:          asset.URL,
		SecureURL:    asset.SecureURL,
		Folder:       asset.Folder,
		Tags:         tags,
		Context:      asset.Context,
		CreatedAt:    asset.CreatedAt,
	}
}

// MapAssetPageToResponse converts a page of assets. An empty page renders resources as [].
func MapAssetPageToResponse(page *mediaDomain.AssetPage) ListAssetsResponse {
	resources := make([]AssetResponse, 0, len(page.Resources))
	for i := range page.Resources {
		resources = append(resources, MapAssetToResponse(&page.Resources[i]))
	}
	return ListAssetsResponse{
		Resources:  resources,
		NextCursor: page.NextCursor,
		TotalCount: page.TotalCount,
	}
}

// MapUpdateResultToResponse converts an update result.
func MapUpdateResultToResponse(result *mediaDomain.UpdateAssetResult) UpdateAssetResponse {
	return UpdateAssetResponse{
		Message:      "Asset updated successfully",
		PublicID:     result.PublicID,
		ResourceType: result.Category.String(),
		Resolved:     result.Resolved,
		Updates: AssetUpdates{
			Renamed: result.Renamed,
			Tags:    result.TagsAdded,
			Context: result.ContextUpdated,
		},
	}
}

// MapDeleteResultToResponse converts a delete result.
func MapDeleteResultToResponse(result *mediaDomain.DeleteAssetResult) DeleteAssetResponse {
	return DeleteAssetResponse{
		Message:      "Asset deleted successfully",
		PublicID:     result.PublicID,
		ResourceType: result.Category.String(),
		Resolved:     result.Resolved,
		Result:       result.Result,
	}
}

// MapPartialUpdateToResponse combines the mapped error with the changes already applied.
func MapPartialUpdateToResponse(
	errorResponse httputil.ErrorResponse,
	result *mediaDomain.UpdateAssetResult,
) PartialUpdateErrorResponse {
	return PartialUpdateErrorResponse{
		ErrorResponse: errorResponse,
		PublicID:      result.PublicID,
		ResourceType:  result.Category.String(),
		Updates: AssetUpdates{
			Renamed: result.Renamed,
			Tags:    result.TagsAdded,
			Context: result.ContextUpdated,
		},
	}
}
