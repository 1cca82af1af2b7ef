// Package domain defines the types exchanged with the external media service: per-operation
// client configuration, resource categories, probe outcomes and assets.
package domain

import (
	"fmt"
)

// Category is the resource type the media service files an asset under. Lookup and
// delete by public id are scoped to a category.
type Category string

const (
	CategoryImage Category = "image"
	CategoryVideo Category = "video"
	CategoryRaw   Category = "raw"
	// CategoryAuto lets the media service pick the category on upload. It is not a
	// valid category for lookups.
	CategoryAuto Category = "auto"
)

// DefaultCandidates is the probe order used by the resolver. The first entry is the
// fallback when no probe matches.
var DefaultCandidates = []Category{CategoryImage, CategoryVideo, CategoryRaw}

func (c Category) String() string {
	return string(c)
}

// ParseCategory parses a lookup category. Empty input yields CategoryImage, which is also
// what the media service assumes when no resource type is given.
func ParseCategory(s string) (Category, error) {
	switch Category(s) {
	case "":
		return CategoryImage, nil
	case CategoryImage, CategoryVideo, CategoryRaw:
		return Category(s), nil
	default:
		return "", fmt.Errorf("%w: unknown resource type %q", ErrInvalidCategory, s)
	}
}
