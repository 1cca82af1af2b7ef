// Package dto provides data transfer objects for asset HTTP handlers.
package dto

import (
	"encoding/json"
	"strings"

	validation "github.com/jellydator/validation"

	mediaDomain "github.com/allisson/mediavault/internal/media/domain"
	customValidation "github.com/allisson/mediavault/internal/validation"
)

// TagList accepts either a JSON array of tags or a single comma-separated string.
type TagList []string

// UnmarshalJSON implements json.Unmarshaler.
func (t *TagList) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*t = list
		return nil
	}

	var joined string
	if err := json.Unmarshal(data, &joined); err != nil {
		return err
	}
	*t = SplitTags(joined)
	return nil
}

// SplitTags splits a comma-separated tag list, trimming each tag and dropping empty ones.
func SplitTags(s string) []string {
	tags := []string{}
	for _, tag := range strings.Split(s, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

// UpdateAssetRequest lists the changes to apply to an asset.
type UpdateAssetRequest struct {
	NewPublicID *string           `json:"new_public_id"`
	Tags        TagList           `json:"tags"`
	Context     map[string]string `json:"context"`
}

// Validate checks if the update request is valid.
func (r *UpdateAssetRequest) Validate() error {
	err := validation.ValidateStruct(r,
		validation.Field(&r.NewPublicID,
			validation.NilOrNotEmpty,
			customValidation.PublicID,
			validation.Length(1, 255),
		),
		validation.Field(&r.Tags,
			validation.Each(validation.Required, customValidation.Tag, validation.Length(1, 255)),
		),
		validation.Field(&r.Context,
			validation.Each(validation.Length(0, 1024)),
		),
	)
	return customValidation.WrapValidationError(err)
}

// ToInput converts the request to the domain input.
func (r *UpdateAssetRequest) ToInput() mediaDomain.UpdateAssetInput {
	var tags []string
	if r.Tags != nil {
		tags = []string(r.Tags)
	}
	return mediaDomain.UpdateAssetInput{
		NewPublicID: r.NewPublicID,
		Tags:        tags,
		Context:     r.Context,
	}
}

// UploadFields are the optional form fields of an upload.
type UploadFields struct {
	Folder   string
	PublicID string
	Tags     []string
}

// Validate checks the upload form fields.
func (f *UploadFields) Validate() error {
	err := validation.ValidateStruct(f,
		validation.Field(&f.Folder, customValidation.PublicID, validation.Length(0, 255)),
		validation.Field(&f.PublicID, customValidation.PublicID, validation.Length(0, 255)),
		validation.Field(&f.Tags, validation.Each(customValidation.Tag, validation.Length(1, 255))),
	)
	return customValidation.WrapValidationError(err)
}
