// Package mocks provides mock implementations of the account use case interfaces for testing.
package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	accountDomain "github.com/allisson/mediavault/internal/account/domain"
)

// MockAccountRepository is a mock implementation of AccountRepository.
type MockAccountRepository struct {
	mock.Mock
}

// Create mocks the Create method of AccountRepository.
func (m *MockAccountRepository) Create(ctx context.Context, account *accountDomain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

// Get mocks the Get method of AccountRepository.
func (m *MockAccountRepository) Get(ctx context.Context, accountID uuid.UUID) (*accountDomain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*accountDomain.Account), args.Error(1)
}

// ListByOwner mocks the ListByOwner method of AccountRepository.
func (m *MockAccountRepository) ListByOwner(
	ctx context.Context,
	ownerID uuid.UUID,
	offset, limit int,
) ([]*accountDomain.Account, error) {
	args := m.Called(ctx, ownerID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*accountDomain.Account), args.Error(1)
}

// Update mocks the Update method of AccountRepository.
func (m *MockAccountRepository) Update(ctx context.Context, account *accountDomain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

// Delete mocks the Delete method of AccountRepository.
func (m *MockAccountRepository) Delete(ctx context.Context, accountID uuid.UUID) error {
	args := m.Called(ctx, accountID)
	return args.Error(0)
}

// MockAccountUseCase is a mock implementation of AccountUseCase.
type MockAccountUseCase struct {
	mock.Mock
}

// Create mocks the Create method of AccountUseCase.
func (m *MockAccountUseCase) Create(
	ctx context.Context,
	callerID uuid.UUID,
	input accountDomain.CreateAccountInput,
) (*accountDomain.Account, error) {
	args := m.Called(ctx, callerID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*accountDomain.Account), args.Error(1)
}

// List mocks the List method of AccountUseCase.
func (m *MockAccountUseCase) List(
	ctx context.Context,
	callerID uuid.UUID,
	offset, limit int,
) ([]*accountDomain.Account, error) {
	args := m.Called(ctx, callerID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*accountDomain.Account), args.Error(1)
}

// Get mocks the Get method of AccountUseCase.
func (m *MockAccountUseCase) Get(
	ctx context.Context,
	accountID, callerID uuid.UUID,
) (*accountDomain.Account, error) {
	args := m.Called(ctx, accountID, callerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*accountDomain.Account), args.Error(1)
}

// Update mocks the Update method of AccountUseCase.
func (m *MockAccountUseCase) Update(
	ctx context.Context,
	accountID, callerID uuid.UUID,
	input accountDomain.UpdateAccountInput,
) (*accountDomain.Account, error) {
	args := m.Called(ctx, accountID, callerID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*accountDomain.Account), args.Error(1)
}

// Delete mocks the Delete method of AccountUseCase.
func (m *MockAccountUseCase) Delete(ctx context.Context, accountID, callerID uuid.UUID) error {
	args := m.Called(ctx, accountID, callerID)
	return args.Error(0)
}

// RevealCredentials mocks the RevealCredentials method of AccountUseCase.
func (m *MockAccountUseCase) RevealCredentials(
	ctx context.Context,
	accountID, callerID uuid.UUID,
) (*accountDomain.Credentials, error) {
	args := m.Called(ctx, accountID, callerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*accountDomain.Credentials), args.Error(1)
}
