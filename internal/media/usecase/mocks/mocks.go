// Package mocks provides mock implementations of the media use case interfaces for testing.
package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	mediaDomain "github.com/allisson/mediavault/internal/media/domain"
)

// MockSessionOpener is a mock implementation of SessionOpener.
type MockSessionOpener struct {
	mock.Mock
}

// Open mocks the Open method of SessionOpener.
func (m *MockSessionOpener) Open(
	ctx context.Context,
	accountID, callerID uuid.UUID,
) (*mediaDomain.ClientConfig, error) {
	args := m.Called(ctx, accountID, callerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mediaDomain.ClientConfig), args.Error(1)
}

// MockTypeResolver is a mock implementation of TypeResolver.
type MockTypeResolver struct {
	mock.Mock
}

// Resolve mocks the Resolve method of TypeResolver.
func (m *MockTypeResolver) Resolve(
	ctx context.Context,
	cfg mediaDomain.ClientConfig,
	publicID string,
) (mediaDomain.Resolution, error) {
	args := m.Called(ctx, cfg, publicID)
	return args.Get(0).(mediaDomain.Resolution), args.Error(1)
}

// ResolveStrict mocks the ResolveStrict method of TypeResolver.
func (m *MockTypeResolver) ResolveStrict(
	ctx context.Context,
	cfg mediaDomain.ClientConfig,
	publicID string,
) (mediaDomain.Resolution, error) {
	args := m.Called(ctx, cfg, publicID)
	return args.Get(0).(mediaDomain.Resolution), args.Error(1)
}

// MockClient is a mock implementation of the media service Client.
type MockClient struct {
	mock.Mock
}

// Probe mocks the Probe method of Client.
func (m *MockClient) Probe(
	ctx context.Context,
	cfg mediaDomain.ClientConfig,
	publicID string,
	category mediaDomain.Category,
) (mediaDomain.ProbeResult, error) {
	args := m.Called(ctx, cfg, publicID, category)
	return args.Get(0).(mediaDomain.ProbeResult), args.Error(1)
}

// ListResources mocks the ListResources method of Client.
func (m *MockClient) ListResources(
	ctx context.Context,
	cfg mediaDomain.ClientConfig,
	input mediaDomain.ListAssetsInput,
) (*mediaDomain.AssetPage, error) {
	args := m.Called(ctx, cfg, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mediaDomain.AssetPage), args.Error(1)
}

// Upload mocks the Upload method of Client.
func (m *MockClient) Upload(
	ctx context.Context,
	cfg mediaDomain.ClientConfig,
	input mediaDomain.UploadAssetInput,
) (*mediaDomain.Asset, error) {
	args := m.Called(ctx, cfg, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mediaDomain.Asset), args.Error(1)
}

// Rename mocks the Rename method of Client.
func (m *MockClient) Rename(
	ctx context.Context,
	cfg mediaDomain.ClientConfig,
	category mediaDomain.Category,
	fromPublicID, toPublicID string,
) (*mediaDomain.Asset, error) {
	args := m.Called(ctx, cfg, category, fromPublicID, toPublicID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mediaDomain.Asset), args.Error(1)
}

// AddTags mocks the AddTags method of Client.
func (m *MockClient) AddTags(
	ctx context.Context,
	cfg mediaDomain.ClientConfig,
	category mediaDomain.Category,
	publicID string,
	tags []string,
) error {
	args := m.Called(ctx, cfg, category, publicID, tags)
	return args.Error(0)
}

// AddContext mocks the AddContext method of Client.
func (m *MockClient) AddContext(
	ctx context.Context,
	cfg mediaDomain.ClientConfig,
	category mediaDomain.Category,
	publicID string,
	values map[string]string,
) error {
	args := m.Called(ctx, cfg, category, publicID, values)
	return args.Error(0)
}

// Destroy mocks the Destroy method of Client.
func (m *MockClient) Destroy(
	ctx context.Context,
	cfg mediaDomain.ClientConfig,
	category mediaDomain.Category,
	publicID string,
) (string, error) {
	args := m.Called(ctx, cfg, category, publicID)
	return args.String(0), args.Error(1)
}

// MockAssetUseCase is a mock implementation of AssetUseCase.
type MockAssetUseCase struct {
	mock.Mock
}

// List mocks the List method of AssetUseCase.
func (m *MockAssetUseCase) List(
	ctx context.Context,
	accountID, callerID uuid.UUID,
	input mediaDomain.ListAssetsInput,
) (*mediaDomain.AssetPage, error) {
	args := m.Called(ctx, accountID, callerID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mediaDomain.AssetPage), args.Error(1)
}

// Upload mocks the Upload method of AssetUseCase.
func (m *MockAssetUseCase) Upload(
	ctx context.Context,
	accountID, callerID uuid.UUID,
	input mediaDomain.UploadAssetInput,
) (*mediaDomain.Asset, error) {
	args := m.Called(ctx, accountID, callerID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mediaDomain.Asset), args.Error(1)
}

// Update mocks the Update method of AssetUseCase.
func (m *MockAssetUseCase) Update(
	ctx context.Context,
	accountID, callerID uuid.UUID,
	publicID string,
	input mediaDomain.UpdateAssetInput,
	strict bool,
) (*mediaDomain.UpdateAssetResult, error) {
	args := m.Called(ctx, accountID, callerID, publicID, input, strict)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mediaDomain.UpdateAssetResult), args.Error(1)
}

// Delete mocks the Delete method of AssetUseCase.
func (m *MockAssetUseCase) Delete(
	ctx context.Context,
	accountID, callerID uuid.UUID,
	publicID string,
	strict bool,
) (*mediaDomain.DeleteAssetResult, error) {
	args := m.Called(ctx, accountID, callerID, publicID, strict)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mediaDomain.DeleteAssetResult), args.Error(1)
}
