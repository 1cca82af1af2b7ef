package domain

import (
	"io"
	"time"
)

// Asset is a resource stored in the media service.
type Asset struct {
	AssetID   string
	PublicID  string
	Category  Category
	Type      string
	Format    string
	Version   int64
	Bytes     int64
	Width     int
	Height    int
	URL       string
	SecureURL string
	Folder    string
	Tags      []string
	Context   map[string]string
	CreatedAt time.Time
}

// AssetPage is one page of a resource listing.
type AssetPage struct {
	Resources  []Asset
	NextCursor string
	TotalCount int
}

// ListAssetsInput selects a page of assets.
type ListAssetsInput struct {
	Category   Category
	Prefix     string
	MaxResults int
	NextCursor string
}

// Listing limits.
const (
	DefaultMaxResults = 50
	MaxMaxResults     = 500
)

// UploadAssetInput describes a file to store in the media service.
type UploadAssetInput struct {
	File     io.Reader
	Filename string
	Folder   string
	PublicID string
	Tags     []string
}

// UpdateAssetInput lists the changes to apply to an asset. Nil fields are left untouched.
type UpdateAssetInput struct {
	NewPublicID *string
	Tags        []string
	Context     map[string]string
}

// IsEmpty reports whether the input requests no change at all.
func (u UpdateAssetInput) IsEmpty() bool {
	return u.NewPublicID == nil && u.Tags == nil && len(u.Context) == 0
}

// UpdateAssetResult reports which changes were applied.
type UpdateAssetResult struct {
	PublicID       string
	Category       Category
	Resolved       bool
	Renamed        bool
	TagsAdded      []string
	ContextUpdated bool
}

// DeleteAssetResult reports the outcome of an asset deletion.
type DeleteAssetResult struct {
	PublicID string
	Category Category
	Resolved bool
	Result   string
}
