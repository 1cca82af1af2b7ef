package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/allisson/mediavault/internal/account/domain"
)

// AccountResponse is the metadata of an account. Credentials are never included.
type AccountResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CloudName string    `json:"cloud_name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ListAccountsResponse wraps a page of accounts.
type ListAccountsResponse struct {
	Data []AccountResponse `json:"data"`
}

// CredentialsResponse is the decrypted key pair of an account.
type CredentialsResponse struct {
	AccountID uuid.UUID `json:"account_id"`
	CloudName string    `json:"cloud_name"`
	APIKey    string    `json:"api_key"`
	APISecret string    `json:"api_secret"` //nolint:gosec // response field
}

// MapAccountToResponse converts a domain account to its API response.
func MapAccountToResponse(account *domain.Account) AccountResponse {
	return AccountResponse{
		ID:        account.ID,
		Name:      account.Name,
		CloudName: account.CloudName,
		CreatedAt: account.CreatedAt,
		UpdatedAt: account.UpdatedAt,
	}
}

// MapAccountsToListResponse converts a page of accounts. An empty page renders as [].
func MapAccountsToListResponse(accounts []*domain.Account) ListAccountsResponse {
	data := make([]AccountResponse, 0, len(accounts))
	for _, account := range accounts {
		data = append(data, MapAccountToResponse(account))
	}
	return ListAccountsResponse{Data: data}
}

// MapCredentialsToResponse converts revealed credentials to their API response.
func MapCredentialsToResponse(creds *domain.Credentials) CredentialsResponse {
	return CredentialsResponse{
		AccountID: creds.AccountID,
		CloudName: creds.CloudName,
		APIKey:    creds.APIKey,
		APISecret: creds.APISecret,
	}
}
