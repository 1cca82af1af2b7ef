// Package domain defines the media service account record. An account stores the
// credentials of one media service account as envelopes and belongs to exactly one user.
package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"

	vaultDomain "github.com/allisson/mediavault/internal/vault/domain"
)

// Account is a stored set of media service credentials. The API key and secret are only
// ever held as envelopes; OwnerID never changes after creation.
type Account struct {
	ID                uuid.UUID
	OwnerID           uuid.UUID
	Name              string
	CloudName         string
	APIKeyEnvelope    vaultDomain.Envelope
	APISecretEnvelope vaultDomain.Envelope
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// CreateAccountInput carries the plaintext fields of a new account.
type CreateAccountInput struct {
	Name      string
	CloudName string
	APIKey    string
	APISecret string
}

// Normalize trims the name and cloud name. Credentials are stored exactly as given.
func (in CreateAccountInput) Normalize() CreateAccountInput {
	return CreateAccountInput{
		Name:      strings.TrimSpace(in.Name),
		CloudName: strings.TrimSpace(in.CloudName),
		APIKey:    in.APIKey,
		APISecret: in.APISecret,
	}
}

// UpdateAccountInput is a partial update. A nil field keeps the stored value; in
// particular an omitted secret keeps its envelope byte-identical.
type UpdateAccountInput struct {
	Name      *string
	CloudName *string
	APIKey    *string
	APISecret *string
}

// IsEmpty reports whether the update changes nothing.
func (in UpdateAccountInput) IsEmpty() bool {
	return in.Name == nil && in.CloudName == nil && in.APIKey == nil && in.APISecret == nil
}

// Normalize trims the name and cloud name when provided.
func (in UpdateAccountInput) Normalize() UpdateAccountInput {
	return UpdateAccountInput{
		Name:      trimmed(in.Name),
		CloudName: trimmed(in.CloudName),
		APIKey:    in.APIKey,
		APISecret: in.APISecret,
	}
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	return &t
}

// Credentials is the decrypted key pair of an account, returned by the reveal operation.
type Credentials struct {
	AccountID uuid.UUID
	CloudName string
	APIKey    string
	APISecret string
}

// String hides the key pair.
func (c Credentials) String() string {
	return "Credentials{AccountID:" + c.AccountID.String() + " CloudName:" + c.CloudName + " redacted}"
}
