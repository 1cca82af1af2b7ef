// Package dto provides data transfer objects for the token endpoint.
package dto

import (
	validation "github.com/jellydator/validation"

	customValidation "github.com/allisson/mediavault/internal/validation"
)

// IssueTokenRequest contains the sign-in credentials.
type IssueTokenRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"` //nolint:gosec // request field
}

// Validate checks if the issue token request is valid.
func (r *IssueTokenRequest) Validate() error {
	err := validation.ValidateStruct(r,
		validation.Field(&r.Email,
			validation.Required,
			customValidation.NotBlank,
			customValidation.Email,
		),
		validation.Field(&r.Password,
			validation.Required,
		),
	)
	return customValidation.WrapValidationError(err)
}
