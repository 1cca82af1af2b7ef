package domain

import (
	"fmt"

	"github.com/allisson/mediavault/internal/errors"
)

// Media-specific error definitions.
var (
	// ErrAssetNotFound indicates the media service has no asset with the given public id.
	ErrAssetNotFound = errors.Wrap(errors.ErrNotFound, "asset not found")

	// ErrAssetTypeUnresolved indicates no candidate category matched the public id and the
	// caller asked for strict resolution instead of the default category.
	ErrAssetTypeUnresolved = errors.Wrap(errors.ErrNotFound, "asset type could not be resolved")

	// ErrInvalidCategory indicates an unknown resource type was requested.
	ErrInvalidCategory = errors.Wrap(errors.ErrInvalidInput, "invalid resource type")

	// ErrNoAssetChanges indicates an asset update request carried nothing to change.
	ErrNoAssetChanges = errors.Wrap(errors.ErrInvalidInput, "no fields to update")

	// ErrMediaUnavailable indicates a network failure, timeout or rate limit while talking to
	// the media service. Callers may retry.
	ErrMediaUnavailable = errors.Wrap(errors.ErrTransientExternal, "media service unavailable")

	// ErrMediaRejected indicates the media service answered with a definitive error.
	ErrMediaRejected = errors.Wrap(errors.ErrExternalRejected, "media service rejected request")

	// ErrMediaCredentials indicates the media service refused the account's credentials.
	ErrMediaCredentials = errors.Wrap(errors.ErrExternalRejected, "media service rejected credentials")
)

// PartialUpdateError reports an asset update that failed after the asset had already been
// renamed. Result holds the changes that were applied, including the new public id, so a
// retry can target the asset under its current name.
type PartialUpdateError struct {
	Result *UpdateAssetResult
	Err    error
}

func (e *PartialUpdateError) Error() string {
	return fmt.Sprintf("asset renamed to %q before the update failed: %v", e.Result.PublicID, e.Err)
}

func (e *PartialUpdateError) Unwrap() error {
	return e.Err
}
