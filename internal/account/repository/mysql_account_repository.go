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

// MySQLAccountRepository implements Account persistence for MySQL using BINARY(16) ids.
// SQLite databases use the same repository: the schema stores ids as 16-byte BLOBs and
// both dialects accept ? placeholders.
type MySQLAccountRepository struct {
	db *sql.DB
}

// Create inserts a new account.
func (m *MySQLAccountRepository) Create(ctx context.Context, account *accountDomain.Account) error {
	querier := database.GetTx(ctx, m.db)

	query := `INSERT INTO accounts (id, owner_id, name, cloud_name, api_key_envelope, api_secret_envelope, created_at, updated_at)
			  VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	id, err := account.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal account id")
	}

	ownerID, err := account.OwnerID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal owner id")
	}

	_, err = querier.ExecContext(
		ctx,
		query,
		id,
		ownerID,
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
func (m *MySQLAccountRepository) Get(ctx context.Context, accountID uuid.UUID) (*accountDomain.Account, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT id, owner_id, name, cloud_name, api_key_envelope, api_secret_envelope, created_at, updated_at
			  FROM accounts WHERE id = ?`

	id, err := accountID.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal account id")
	}

	account, err := scanMySQLAccount(querier.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, accountDomain.ErrAccountNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get account")
	}

	return account, nil
}

// ListByOwner returns the accounts of one owner ordered newest first.
func (m *MySQLAccountRepository) ListByOwner(
	ctx context.Context,
	ownerID uuid.UUID,
	offset, limit int,
) ([]*accountDomain.Account, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT id, owner_id, name, cloud_name, api_key_envelope, api_secret_envelope, created_at, updated_at
			  FROM accounts WHERE owner_id = ?
			  ORDER BY created_at DESC, id DESC
			  LIMIT ? OFFSET ?`

	owner, err := ownerID.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal owner id")
	}

	rows, err := querier.QueryContext(ctx, query, owner, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list accounts")
	}
	defer func() { _ = rows.Close() }()

	accounts := make([]*accountDomain.Account, 0)
	for rows.Next() {
		account, err := scanMySQLAccount(rows)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan account")
		}
		accounts = append(accounts, account)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate accounts")
	}

	return accounts, nil
}

// Update writes the mutable columns of an account. owner_id is never written.
func (m *MySQLAccountRepository) Update(ctx context.Context, account *accountDomain.Account) error {
	querier := database.GetTx(ctx, m.db)

	query := `UPDATE accounts
			  SET name = ?,
				  cloud_name = ?,
				  api_key_envelope = ?,
				  api_secret_envelope = ?,
				  updated_at = ?
			  WHERE id = ?`

	id, err := account.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal account id")
	}

	_, err = querier.ExecContext(
		ctx,
		query,
		account.Name,
		account.CloudName,
		account.APIKeyEnvelope.String(),
		account.APISecretEnvelope.String(),
		account.UpdatedAt,
		id,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to update account")
	}

	// MySQL reports zero affected rows when the values are unchanged, so the
	// row count cannot tell a missing account apart from a no-op update.
	return nil
}

// Delete removes an account. Returns ErrAccountNotFound if no row was deleted.
func (m *MySQLAccountRepository) Delete(ctx context.Context, accountID uuid.UUID) error {
	querier := database.GetTx(ctx, m.db)

	id, err := accountID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal account id")
	}

	result, err := querier.ExecContext(ctx, `DELETE FROM accounts WHERE id = ?`, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete account")
	}

	return checkRowsAffected(result)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMySQLAccount(row rowScanner) (*accountDomain.Account, error) {
	var account accountDomain.Account
	var idBytes, ownerIDBytes []byte

	if err := row.Scan(
		&idBytes,
		&ownerIDBytes,
		&account.Name,
		&account.CloudName,
		&account.APIKeyEnvelope,
		&account.APISecretEnvelope,
		&account.CreatedAt,
		&account.UpdatedAt,
	); err != nil {
		return nil, err
	}

	if err := account.ID.UnmarshalBinary(idBytes); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal account id")
	}
	if err := account.OwnerID.UnmarshalBinary(ownerIDBytes); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal owner id")
	}

	return &account, nil
}

// NewMySQLAccountRepository creates a new MySQL Account repository.
func NewMySQLAccountRepository(db *sql.DB) *MySQLAccountRepository {
	return &MySQLAccountRepository{db: db}
}
