// Package repository provides persistence for media service accounts.
package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	accountDomain "github.com/allisson/mediavault/internal/account/domain"
	"github.com/allisson/mediavault/internal/database"
	apperrors "github.com/allisson/mediavault/internal/errors"
)

// PostgreSQLAccountRepository implements Account persistence for PostgreSQL.
type PostgreSQLAccountRepository struct {
	db *sql.DB
}

// Create inserts a new account.
func (p *PostgreSQLAccountRepository) Create(ctx context.Context, account *accountDomain.Account) error {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO accounts (id, owner_id, name, cloud_name, api_key_envelope, api_secret_envelope, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := querier.ExecContext(
		ctx,
		query,
		account.ID,
		account.OwnerID,
		account.Name,
		account.CloudName,
		account.APIKeyEnvelope.String(),
		account.APISecretEnvelope.String(),
		account.CreatedAt,
		account.UpdatedAt,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create account")
	}
	return nil
}

// Get retrieves an account by id. Returns ErrAccountNotFound if it doesn't exist.
func (p *PostgreSQLAccountRepository) Get(ctx context.Context, accountID uuid.UUID) (*accountDomain.Account, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, owner_id, name, cloud_name, api_key_envelope, api_secret_envelope, created_at, updated_at
			  FROM accounts WHERE id = $1`

	var account accountDomain.Account
	err := querier.QueryRowContext(ctx, query, accountID).Scan(
		&account.ID,
		&account.OwnerID,
		&account.Name,
		&account.CloudName,
		&account.APIKeyEnvelope,
		&account.APISecretEnvelope,
		&account.CreatedAt,
		&account.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, accountDomain.ErrAccountNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get account")
	}

	return &account, nil
}

// ListByOwner returns the accounts of one owner ordered newest first.
func (p *PostgreSQLAccountRepository) ListByOwner(
	ctx context.Context,
	ownerID uuid.UUID,
	offset, limit int,
) ([]*accountDomain.Account, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, owner_id, name, cloud_name, api_key_envelope, api_secret_envelope, created_at, updated_at
			  FROM accounts WHERE owner_id = $1
			  ORDER BY created_at DESC, id DESC
			  LIMIT $2 OFFSET $3`

	rows, err := querier.QueryContext(ctx, query, ownerID, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list accounts")
	}
	defer func() { _ = rows.Close() }()

	accounts := make([]*accountDomain.Account, 0)
	for rows.Next() {
		var account accountDomain.Account
		if err := rows.Scan(
			&account.ID,
			&account.OwnerID,
			&account.Name,
			&account.CloudName,
			&account.APIKeyEnvelope,
			&account.APISecretEnvelope,
			&account.CreatedAt,
			&account.UpdatedAt,
		); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan account")
		}
		accounts = append(accounts, &account)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate accounts")
	}

	return accounts, nil
}

// Update writes the mutable columns of an account. owner_id is never written.
func (p *PostgreSQLAccountRepository) Update(ctx context.Context, account *accountDomain.Account) error {
	querier := database.GetTx(ctx, p.db)

	query := `UPDATE accounts
			  SET name = $1,
				  cloud_name = $2,
				  api_key_envelope = $3,
				  api_secret_envelope = $4,
				  updated_at = $5
			  WHERE id = $6`

	result, err := querier.ExecContext(
		ctx,
		query,
		account.Name,
		account.CloudName,
		account.APIKeyEnvelope.String(),
		account.APISecretEnvelope.String(),
		account.UpdatedAt,
		account.ID,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to update account")
	}

	return checkRowsAffected(result)
}

// Delete removes an account. Returns ErrAccountNotFound if no row was deleted.
func (p *PostgreSQLAccountRepository) Delete(ctx context.Context, accountID uuid.UUID) error {
	querier := database.GetTx(ctx, p.db)

	result, err := querier.ExecContext(ctx, `DELETE FROM accounts WHERE id = $1`, accountID)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete account")
	}

	return checkRowsAffected(result)
}

func checkRowsAffected(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to get rows affected")
	}
	if affected == 0 {
		return accountDomain.ErrAccountNotFound
	}
	return nil
}

// NewPostgreSQLAccountRepository creates a new PostgreSQL Account repository.
func NewPostgreSQLAccountRepository(db *sql.DB) *PostgreSQLAccountRepository {
	return &PostgreSQLAccountRepository{db: db}
}
