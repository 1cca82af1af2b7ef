package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/mediavault/internal/user/domain"
)

var userColumns = []string{"id", "name", "email", "password", "created_at", "updated_at"}

func newTestUser() *domain.User {
	now := time.Date(2026, 2, 3, 4, 5, 6, 0, time.UTC)
	return &domain.User{
		ID:        uuid.Must(uuid.NewV7()),
		Name:      "John Doe",
		Email:     "john@example.com",
		Password:  "$argon2id$v=19$m=65536,t=2,p=1$c2FsdA$aGFzaA",
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func newSQLMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

func TestPostgreSQLUserRepository_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		db, mock := newSQLMock(t)
		user := newTestUser()

		mock.ExpectExec("INSERT INTO users").
			WithArgs(user.ID, user.Name, user.Email, user.Password, user.CreatedAt, user.UpdatedAt).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := NewPostgreSQLUserRepository(db).Create(ctx, user)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Error_DuplicateEmail", func(t *testing.T) {
		db, mock := newSQLMock(t)

		mock.ExpectExec("INSERT INTO users").
			WillReturnError(errors.New(`pq: duplicate key value violates unique constraint "users_email_key"`))

		err := NewPostgreSQLUserRepository(db).Create(ctx, newTestUser())

		assert.ErrorIs(t, err, domain.ErrUserAlreadyExists)
	})
}

func TestPostgreSQLUserRepository_GetByEmail(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		db, mock := newSQLMock(t)
		user := newTestUser()

		mock.ExpectQuery("SELECT (.+) FROM users WHERE email = \\$1").
			WithArgs(user.Email).
			WillReturnRows(sqlmock.NewRows(userColumns).AddRow(
				user.ID.String(), user.Name, user.Email, user.Password, user.CreatedAt, user.UpdatedAt,
			))

		got, err := NewPostgreSQLUserRepository(db).GetByEmail(ctx, user.Email)

		require.NoError(t, err)
		assert.Equal(t, user, got)
	})

	t.Run("Error_NotFound", func(t *testing.T) {
		db, mock := newSQLMock(t)

		mock.ExpectQuery("SELECT (.+) FROM users").WillReturnError(sql.ErrNoRows)

		got, err := NewPostgreSQLUserRepository(db).GetByEmail(ctx, "missing@example.com")

		assert.Nil(t, got)
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})
}

func TestPostgreSQLUserRepository_GetByID(t *testing.T) {
	db, mock := newSQLMock(t)
	user := newTestUser()

	mock.ExpectQuery("SELECT (.+) FROM users WHERE id = \\$1").
		WithArgs(user.ID).
		WillReturnRows(sqlmock.NewRows(userColumns).AddRow(
			user.ID.String(), user.Name, user.Email, user.Password, user.CreatedAt, user.UpdatedAt,
		))

	got, err := NewPostgreSQLUserRepository(db).GetByID(context.Background(), user.ID)

	require.NoError(t, err)
	assert.Equal(t, user, got)
}
