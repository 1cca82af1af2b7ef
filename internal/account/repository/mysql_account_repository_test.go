package repository

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	accountDomain "github.com/allisson/mediavault/internal/account/domain"
)

func newMySQLMock(t *testing.T) (*MySQLAccountRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return NewMySQLAccountRepository(db), mock
}

func binaryID(t *testing.T, id uuid.UUID) []byte {
	t.Helper()

	b, err := id.MarshalBinary()
	require.NoError(t, err)
	return b
}

func TestMySQLAccountRepository_Create(t *testing.T) {
	ctx := context.Background()
	repo, mock := newMySQLMock(t)
	account := newTestAccount()

	mock.ExpectExec("INSERT INTO accounts").
		WithArgs(
			binaryID(t, account.ID),
			binaryID(t, account.OwnerID),
			account.Name,
			account.CloudName,
			account.APIKeyEnvelope.String(),
			account.APISecretEnvelope.String(),
			account.CreatedAt,
			account.UpdatedAt,
		).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Create(ctx, account)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMySQLAccountRepository_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		repo, mock := newMySQLMock(t)
		account := newTestAccount()

		rows := sqlmock.NewRows(accountColumns).AddRow(
			binaryID(t, account.ID),
			binaryID(t, account.OwnerID),
			account.Name,
			account.CloudName,
			account.APIKeyEnvelope.String(),
			account.APISecretEnvelope.String(),
			account.CreatedAt,
			account.UpdatedAt,
		)
		mock.ExpectQuery("SELECT (.+) FROM accounts WHERE id = \\?").
			WithArgs(binaryID(t, account.ID)).
			WillReturnRows(rows)

		got, err := repo.Get(ctx, account.ID)

		require.NoError(t, err)
		assert.Equal(t, account, got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Error_NotFound", func(t *testing.T) {
		repo, mock := newMySQLMock(t)

		mock.ExpectQuery("SELECT (.+) FROM accounts").WillReturnError(sql.ErrNoRows)

		got, err := repo.Get(ctx, uuid.Must(uuid.NewV7()))

		assert.Nil(t, got)
		assert.ErrorIs(t, err, accountDomain.ErrAccountNotFound)
	})

	t.Run("Error_CorruptID", func(t *testing.T) {
		repo, mock := newMySQLMock(t)
		account := newTestAccount()

		rows := sqlmock.NewRows(accountColumns).AddRow(
			[]byte{1, 2, 3},
			binaryID(t, account.OwnerID),
			account.Name,
			account.CloudName,
			account.APIKeyEnvelope.String(),
			account.APISecretEnvelope.String(),
			account.CreatedAt,
			account.UpdatedAt,
		)
		mock.ExpectQuery("SELECT (.+) FROM accounts").WillReturnRows(rows)

		got, err := repo.Get(ctx, account.ID)

		assert.Nil(t, got)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, accountDomain.ErrAccountNotFound)
	})
}

func TestMySQLAccountRepository_ListByOwner(t *testing.T) {
	ctx := context.Background()
	repo, mock := newMySQLMock(t)
	account := newTestAccount()

	rows := sqlmock.NewRows(accountColumns).AddRow(
		binaryID(t, account.ID),
		binaryID(t, account.OwnerID),
		account.Name,
		account.CloudName,
		account.APIKeyEnvelope.String(),
		account.APISecretEnvelope.String(),
		account.CreatedAt,
		account.UpdatedAt,
	)
	mock.ExpectQuery("SELECT (.+) FROM accounts WHERE owner_id = \\? ORDER BY created_at DESC").
		WithArgs(binaryID(t, account.OwnerID), 20, 40).
		WillReturnRows(rows)

	got, err := repo.ListByOwner(ctx, account.OwnerID, 40, 20)

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, account, got[0])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMySQLAccountRepository_Update(t *testing.T) {
	ctx := context.Background()
	repo, mock := newMySQLMock(t)
	account := newTestAccount()

	mock.ExpectExec("UPDATE accounts SET name = \\?").
		WithArgs(
			account.Name,
			account.CloudName,
			account.APIKeyEnvelope.String(),
			account.APISecretEnvelope.String(),
			account.UpdatedAt,
			binaryID(t, account.ID),
		).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(ctx, account)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMySQLAccountRepository_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		repo, mock := newMySQLMock(t)
		accountID := uuid.Must(uuid.NewV7())

		mock.ExpectExec("DELETE FROM accounts WHERE id = \\?").
			WithArgs(binaryID(t, accountID)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Delete(ctx, accountID)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Error_NotFound", func(t *testing.T) {
		repo, mock := newMySQLMock(t)

		mock.ExpectExec("DELETE FROM accounts").WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Delete(ctx, uuid.Must(uuid.NewV7()))

		assert.ErrorIs(t, err, accountDomain.ErrAccountNotFound)
	})
}
