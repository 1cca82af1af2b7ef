package usecase

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "github.com/allisson/mediavault/internal/errors"
	"github.com/allisson/mediavault/internal/user/domain"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type stubPasswordService struct {
	err error
}

func (s stubPasswordService) Hash(password string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return "$argon2id$stub$" + password, nil
}

func (s stubPasswordService) Compare(password, hash string) bool {
	return hash == "$argon2id$stub$"+password
}

func validInput() domain.RegisterUserInput {
	return domain.RegisterUserInput{
		Name:     "  John Doe ",
		Email:    " John@Example.com ",
		Password: "SecurePass123!",
	}
}

func TestUserUseCase_RegisterUser(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		repo := &MockUserRepository{}
		repo.On("Create", ctx, mock.AnythingOfType("*domain.User")).Return(nil).Once()

		user, err := NewUserUseCase(repo, stubPasswordService{}).RegisterUser(ctx, validInput())

		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, user.ID)
		assert.Equal(t, "John Doe", user.Name)
		assert.Equal(t, "john@example.com", user.Email)
		assert.Equal(t, "$argon2id$stub$SecurePass123!", user.Password)
		assert.False(t, user.CreatedAt.IsZero())
		repo.AssertExpectations(t)
	})

	t.Run("Error_WeakPassword", func(t *testing.T) {
		repo := &MockUserRepository{}
		input := validInput()
		input.Password = "password"

		user, err := NewUserUseCase(repo, stubPasswordService{}).RegisterUser(ctx, input)

		assert.Nil(t, user)
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Error_InvalidEmail", func(t *testing.T) {
		repo := &MockUserRepository{}
		input := validInput()
		input.Email = "not-an-email"

		_, err := NewUserUseCase(repo, stubPasswordService{}).RegisterUser(ctx, input)

		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	})

	t.Run("Error_DuplicateEmail", func(t *testing.T) {
		repo := &MockUserRepository{}
		repo.On("Create", ctx, mock.Anything).Return(domain.ErrUserAlreadyExists).Once()

		_, err := NewUserUseCase(repo, stubPasswordService{}).RegisterUser(ctx, validInput())

		assert.ErrorIs(t, err, domain.ErrUserAlreadyExists)
		assert.ErrorIs(t, err, apperrors.ErrConflict)
	})

	t.Run("Error_HashFailure", func(t *testing.T) {
		repo := &MockUserRepository{}

		_, err := NewUserUseCase(repo, stubPasswordService{err: assert.AnError}).RegisterUser(ctx, validInput())

		assert.ErrorIs(t, err, assert.AnError)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestUserUseCase_GetUserByEmail(t *testing.T) {
	ctx := context.Background()
	user := &domain.User{ID: uuid.Must(uuid.NewV7()), Email: "john@example.com"}

	repo := &MockUserRepository{}
	repo.On("GetByEmail", ctx, "john@example.com").Return(user, nil).Once()

	got, err := NewUserUseCase(repo, stubPasswordService{}).GetUserByEmail(ctx, " JOHN@example.com")

	require.NoError(t, err)
	assert.Equal(t, user, got)
}

func TestUserUseCase_GetUserByID(t *testing.T) {
	ctx := context.Background()
	id := uuid.Must(uuid.NewV7())

	repo := &MockUserRepository{}
	repo.On("GetByID", ctx, id).Return(nil, domain.ErrUserNotFound).Once()

	got, err := NewUserUseCase(repo, stubPasswordService{}).GetUserByID(ctx, id)

	assert.Nil(t, got)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
