// Package dto provides data transfer objects for account HTTP handlers.
package dto

import (
	validation "github.com/jellydator/validation"

	"github.com/allisson/mediavault/internal/account/domain"
	customValidation "github.com/allisson/mediavault/internal/validation"
)

// CreateAccountRequest contains the fields of a new account. All four are required.
type CreateAccountRequest struct {
	Name      string `json:"name"`
	CloudName string `json:"cloud_name"`
	APIKey    string `json:"api_key"`
	APISecret string `json:"api_secret"` //nolint:gosec // request field
}

// Validate checks if the create request is valid.
func (r *CreateAccountRequest) Validate() error {
	err := validation.ValidateStruct(r,
		validation.Field(&r.Name,
			validation.Required,
			customValidation.NotBlank,
			validation.Length(1, 255),
		),
		validation.Field(&r.CloudName,
			validation.Required,
			customValidation.NotBlank,
			customValidation.CloudName,
			validation.Length(1, 255),
		),
		validation.Field(&r.APIKey,
			validation.Required,
			customValidation.NotBlank,
		),
		validation.Field(&r.APISecret,
			validation.Required,
			customValidation.NotBlank,
		),
	)
	return customValidation.WrapValidationError(err)
}

// ToInput converts the request to the domain input.
func (r *CreateAccountRequest) ToInput() domain.CreateAccountInput {
	return domain.CreateAccountInput{
		Name:      r.Name,
		CloudName: r.CloudName,
		APIKey:    r.APIKey,
		APISecret: r.APISecret,
	}
}

// UpdateAccountRequest is a partial update. Omitted fields keep their stored values.
type UpdateAccountRequest struct {
	Name      *string `json:"name"`
	CloudName *string `json:"cloud_name"`
	APIKey    *string `json:"api_key"`
	APISecret *string `json:"api_secret"` //nolint:gosec // request field
}

// Validate checks the fields that are present.
func (r *UpdateAccountRequest) Validate() error {
	err := validation.ValidateStruct(r,
		validation.Field(&r.Name,
			validation.NilOrNotEmpty,
			customValidation.NotBlank,
			validation.Length(1, 255),
		),
		validation.Field(&r.CloudName,
			validation.NilOrNotEmpty,
			customValidation.NotBlank,
			customValidation.CloudName,
			validation.Length(1, 255),
		),
		validation.Field(&r.APIKey,
			validation.NilOrNotEmpty,
			customValidation.NotBlank,
		),
		validation.Field(&r.APISecret,
			validation.NilOrNotEmpty,
			customValidation.NotBlank,
		),
	)
	return customValidation.WrapValidationError(err)
}

// ToInput converts the request to the domain input.
func (r *UpdateAccountRequest) ToInput() domain.UpdateAccountInput {
	return domain.UpdateAccountInput{
		Name:      r.Name,
		CloudName: r.CloudName,
		APIKey:    r.APIKey,
		APISecret: r.APISecret,
	}
}
