package usecase

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	accountDomain "github.com/allisson/mediavault/internal/account/domain"
	apperrors "github.com/allisson/mediavault/internal/errors"
	mediaDomain "github.com/allisson/mediavault/internal/media/domain"
	mediaService "github.com/allisson/mediavault/internal/media/service"
	"github.com/allisson/mediavault/internal/media/usecase/mocks"
)

var testConfig = mediaDomain.ClientConfig{CloudName: "demo", APIKey: "key", APISecret: "secret"}

type testDeps struct {
	sessions *mocks.MockSessionOpener
	client   *mocks.MockClient
	resolver *mocks.MockTypeResolver
	useCase  AssetUseCase
}

func newTestDeps(t *testing.T) *testDeps {
	t.Helper()
	deps := &testDeps{
		sessions: &mocks.MockSessionOpener{},
		client:   &mocks.MockClient{},
		resolver: &mocks.MockTypeResolver{},
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	deps.useCase = NewAssetUseCase(deps.sessions, deps.client, deps.resolver, logger)
	return deps
}

// expectSession makes Open return a fresh config and hands it back so the test can check
// it was cleared.
func (d *testDeps) expectSession(accountID, callerID uuid.UUID) *mediaDomain.ClientConfig {
	cfg := testConfig
	d.sessions.On("Open", mock.Anything, accountID, callerID).Return(&cfg, nil).Once()
	return &cfg
}

func TestAssetUseCase_List(t *testing.T) {
	ctx := context.Background()
	accountID := uuid.Must(uuid.NewV7())
	callerID := uuid.Must(uuid.NewV7())

	t.Run("Success_AppliesDefaults", func(t *testing.T) {
		deps := newTestDeps(t)
		cfg := deps.expectSession(accountID, callerID)

		deps.client.On("ListResources", mock.Anything, testConfig, mediaDomain.ListAssetsInput{
			Category:   mediaDomain.CategoryImage,
			Prefix:     "products/",
			MaxResults: mediaDomain.DefaultMaxResults,
		}).Return(&mediaDomain.AssetPage{TotalCount: 0}, nil).Once()

		page, err := deps.useCase.List(ctx, accountID, callerID, mediaDomain.ListAssetsInput{Prefix: "products/"})

		require.NoError(t, err)
		assert.NotNil(t, page.Resources)
		assert.Empty(t, page.Resources)
		assert.True(t, cfg.IsZero())
		deps.client.AssertExpectations(t)
	})

	t.Run("Error_MaxResultsOutOfRange", func(t *testing.T) {
		deps := newTestDeps(t)

		_, err := deps.useCase.List(ctx, accountID, callerID, mediaDomain.ListAssetsInput{MaxResults: 501})

		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
		deps.sessions.AssertNotCalled(t, "Open", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Error_NotOwner", func(t *testing.T) {
		deps := newTestDeps(t)
		deps.sessions.On("Open", mock.Anything, accountID, callerID).
			Return(nil, accountDomain.ErrAccountForbidden).
			Once()

		_, err := deps.useCase.List(ctx, accountID, callerID, mediaDomain.ListAssetsInput{})

		assert.ErrorIs(t, err, apperrors.ErrForbidden)
		deps.client.AssertNotCalled(t, "ListResources", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Error_MediaUnavailable", func(t *testing.T) {
		deps := newTestDeps(t)
		cfg := deps.expectSession(accountID, callerID)
		deps.client.On("ListResources", mock.Anything, testConfig, mock.Anything).
			Return(nil, mediaDomain.ErrMediaUnavailable).
			Once()

		_, err := deps.useCase.List(ctx, accountID, callerID, mediaDomain.ListAssetsInput{})

		assert.True(t, apperrors.IsRetryable(err))
		assert.True(t, cfg.IsZero())
	})
}

func TestAssetUseCase_Upload(t *testing.T) {
	ctx := context.Background()
	accountID := uuid.Must(uuid.NewV7())
	callerID := uuid.Must(uuid.NewV7())

	t.Run("Success", func(t *testing.T) {
		deps := newTestDeps(t)
		cfg := deps.expectSession(accountID, callerID)
		input := mediaDomain.UploadAssetInput{
			File:     bytes.NewReader([]byte("png")),
			Filename: "logo.png",
			Folder:   "brand",
			Tags:     []string{"logo"},
		}
		deps.client.On("Upload", mock.Anything, testConfig, input).
			Return(&mediaDomain.Asset{PublicID: "brand/logo", Category: mediaDomain.CategoryImage}, nil).
			Once()

		asset, err := deps.useCase.Upload(ctx, accountID, callerID, input)

		require.NoError(t, err)
		assert.Equal(t, "brand/logo", asset.PublicID)
		assert.True(t, cfg.IsZero())
	})

	t.Run("Error_MissingFile", func(t *testing.T) {
		deps := newTestDeps(t)

		_, err := deps.useCase.Upload(ctx, accountID, callerID, mediaDomain.UploadAssetInput{})

		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	})
}

func TestAssetUseCase_Update(t *testing.T) {
	ctx := context.Background()
	accountID := uuid.Must(uuid.NewV7())
	callerID := uuid.Must(uuid.NewV7())
	resolvedVideo := mediaDomain.Resolution{Category: mediaDomain.CategoryVideo, Resolved: true, Probes: 2}

	t.Run("Success_RenameThenTagNewID", func(t *testing.T) {
		deps := newTestDeps(t)
		cfg := deps.expectSession(accountID, callerID)
		newID := "clips/intro-v2"
		tags := []string{"intro", "promo"}
		values := map[string]string{"alt": "Intro"}

		deps.resolver.On("Resolve", mock.Anything, testConfig, "clips/intro").Return(resolvedVideo, nil).Once()
		deps.client.On("Rename", mock.Anything, testConfig, mediaDomain.CategoryVideo, "clips/intro", newID).
			Return(&mediaDomain.Asset{PublicID: newID}, nil).Once()
		deps.client.On("AddTags", mock.Anything, testConfig, mediaDomain.CategoryVideo, newID, tags).
			Return(nil).Once()
		deps.client.On("AddContext", mock.Anything, testConfig, mediaDomain.CategoryVideo, newID, values).
			Return(nil).Once()

		result, err := deps.useCase.Update(ctx, accountID, callerID, "clips/intro", mediaDomain.UpdateAssetInput{
			NewPublicID: &newID,
			Tags:        tags,
			Context:     values,
		}, false)

		require.NoError(t, err)
		assert.Equal(t, &mediaDomain.UpdateAssetResult{
			PublicID:       newID,
			Category:       mediaDomain.CategoryVideo,
			Resolved:       true,
			Renamed:        true,
			TagsAdded:      tags,
			ContextUpdated: true,
		}, result)
		assert.True(t, cfg.IsZero())
		deps.client.AssertExpectations(t)
	})

	t.Run("Success_SameIDSkipsRename", func(t *testing.T) {
		deps := newTestDeps(t)
		deps.expectSession(accountID, callerID)
		sameID := "clips/intro"

		deps.resolver.On("Resolve", mock.Anything, testConfig, sameID).Return(resolvedVideo, nil).Once()
		deps.client.On("AddTags", mock.Anything, testConfig, mediaDomain.CategoryVideo, sameID, []string{"x"}).
			Return(nil).Once()

		result, err := deps.useCase.Update(ctx, accountID, callerID, sameID, mediaDomain.UpdateAssetInput{
			NewPublicID: &sameID,
			Tags:        []string{"x"},
		}, false)

		require.NoError(t, err)
		assert.False(t, result.Renamed)
		deps.client.AssertNotCalled(t, "Rename", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Error_TagsFailAfterRename", func(t *testing.T) {
		deps := newTestDeps(t)
		cfg := deps.expectSession(accountID, callerID)
		newID := "clips/intro-v2"

		deps.resolver.On("Resolve", mock.Anything, testConfig, "clips/intro").Return(resolvedVideo, nil).Once()
		deps.client.On("Rename", mock.Anything, testConfig, mediaDomain.CategoryVideo, "clips/intro", newID).
			Return(&mediaDomain.Asset{PublicID: newID}, nil).Once()
		deps.client.On("AddTags", mock.Anything, testConfig, mediaDomain.CategoryVideo, newID, []string{"x"}).
			Return(mediaDomain.ErrMediaUnavailable).Once()

		result, err := deps.useCase.Update(ctx, accountID, callerID, "clips/intro", mediaDomain.UpdateAssetInput{
			NewPublicID: &newID,
			Tags:        []string{"x"},
			Context:     map[string]string{"alt": "Intro"},
		}, false)

		assert.Nil(t, result)
		assert.ErrorIs(t, err, mediaDomain.ErrMediaUnavailable)
		assert.True(t, apperrors.IsRetryable(err))
		assert.Contains(t, err.Error(), newID)

		var partial *mediaDomain.PartialUpdateError
		require.ErrorAs(t, err, &partial)
		assert.Equal(t, newID, partial.Result.PublicID)
		assert.True(t, partial.Result.Renamed)
		assert.Empty(t, partial.Result.TagsAdded)
		assert.False(t, partial.Result.ContextUpdated)
		assert.True(t, cfg.IsZero())
		deps.client.AssertNotCalled(t, "AddContext", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Error_ContextFailsAfterRenameAndTags", func(t *testing.T) {
		deps := newTestDeps(t)
		deps.expectSession(accountID, callerID)
		newID := "clips/intro-v2"
		values := map[string]string{"alt": "Intro"}

		deps.resolver.On("Resolve", mock.Anything, testConfig, "clips/intro").Return(resolvedVideo, nil).Once()
		deps.client.On("Rename", mock.Anything, testConfig, mediaDomain.CategoryVideo, "clips/intro", newID).
			Return(&mediaDomain.Asset{PublicID: newID}, nil).Once()
		deps.client.On("AddTags", mock.Anything, testConfig, mediaDomain.CategoryVideo, newID, []string{"x"}).
			Return(nil).Once()
		deps.client.On("AddContext", mock.Anything, testConfig, mediaDomain.CategoryVideo, newID, values).
			Return(mediaDomain.ErrMediaRejected).Once()

		_, err := deps.useCase.Update(ctx, accountID, callerID, "clips/intro", mediaDomain.UpdateAssetInput{
			NewPublicID: &newID,
			Tags:        []string{"x"},
			Context:     values,
		}, false)

		assert.ErrorIs(t, err, apperrors.ErrExternalRejected)
		var partial *mediaDomain.PartialUpdateError
		require.ErrorAs(t, err, &partial)
		assert.Equal(t, newID, partial.Result.PublicID)
		assert.Equal(t, []string{"x"}, partial.Result.TagsAdded)
	})

	t.Run("Error_TagsFailWithoutRename", func(t *testing.T) {
		deps := newTestDeps(t)
		deps.expectSession(accountID, callerID)

		deps.resolver.On("Resolve", mock.Anything, testConfig, "clips/intro").Return(resolvedVideo, nil).Once()
		deps.client.On("AddTags", mock.Anything, testConfig, mediaDomain.CategoryVideo, "clips/intro", []string{"x"}).
			Return(mediaDomain.ErrMediaUnavailable).Once()

		_, err := deps.useCase.Update(ctx, accountID, callerID, "clips/intro", mediaDomain.UpdateAssetInput{
			Tags: []string{"x"},
		}, false)

		assert.ErrorIs(t, err, mediaDomain.ErrMediaUnavailable)
		var partial *mediaDomain.PartialUpdateError
		assert.False(t, apperrors.As(err, &partial))
	})

	t.Run("Error_NoChanges", func(t *testing.T) {
		deps := newTestDeps(t)

		_, err := deps.useCase.Update(ctx, accountID, callerID, "x", mediaDomain.UpdateAssetInput{}, false)

		assert.ErrorIs(t, err, mediaDomain.ErrNoAssetChanges)
		deps.sessions.AssertNotCalled(t, "Open", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Error_StrictUnresolved", func(t *testing.T) {
		deps := newTestDeps(t)
		deps.expectSession(accountID, callerID)
		deps.resolver.On("ResolveStrict", mock.Anything, testConfig, "ghost").
			Return(mediaDomain.Resolution{Category: mediaDomain.CategoryImage, Probes: 3},
				mediaDomain.ErrAssetTypeUnresolved).
			Once()

		_, err := deps.useCase.Update(ctx, accountID, callerID, "ghost", mediaDomain.UpdateAssetInput{
			Tags: []string{"x"},
		}, true)

		assert.ErrorIs(t, err, mediaDomain.ErrAssetTypeUnresolved)
		deps.client.AssertNotCalled(t, "AddTags", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestAssetUseCase_Delete(t *testing.T) {
	ctx := context.Background()
	accountID := uuid.Must(uuid.NewV7())
	callerID := uuid.Must(uuid.NewV7())

	t.Run("Success_Resolved", func(t *testing.T) {
		deps := newTestDeps(t)
		cfg := deps.expectSession(accountID, callerID)
		deps.resolver.On("Resolve", mock.Anything, testConfig, "docs/report").
			Return(mediaDomain.Resolution{Category: mediaDomain.CategoryRaw, Resolved: true, Probes: 3}, nil).
			Once()
		deps.client.On("Destroy", mock.Anything, testConfig, mediaDomain.CategoryRaw, "docs/report").
			Return(mediaService.DestroyResultOK, nil).
			Once()

		result, err := deps.useCase.Delete(ctx, accountID, callerID, "docs/report", false)

		require.NoError(t, err)
		assert.Equal(t, &mediaDomain.DeleteAssetResult{
			PublicID: "docs/report",
			Category: mediaDomain.CategoryRaw,
			Resolved: true,
			Result:   "ok",
		}, result)
		assert.True(t, cfg.IsZero())
	})

	t.Run("Success_DefaultedCategory", func(t *testing.T) {
		deps := newTestDeps(t)
		deps.expectSession(accountID, callerID)
		deps.resolver.On("Resolve", mock.Anything, testConfig, "maybe").
			Return(mediaDomain.Resolution{Category: mediaDomain.CategoryImage, Resolved: false, Probes: 3}, nil).
			Once()
		deps.client.On("Destroy", mock.Anything, testConfig, mediaDomain.CategoryImage, "maybe").
			Return(mediaService.DestroyResultOK, nil).
			Once()

		result, err := deps.useCase.Delete(ctx, accountID, callerID, "maybe", false)

		require.NoError(t, err)
		assert.False(t, result.Resolved)
		assert.Equal(t, mediaDomain.CategoryImage, result.Category)
	})

	t.Run("Error_DestroyNotFound", func(t *testing.T) {
		deps := newTestDeps(t)
		deps.expectSession(accountID, callerID)
		deps.resolver.On("Resolve", mock.Anything, testConfig, "gone").
			Return(mediaDomain.Resolution{Category: mediaDomain.CategoryImage, Resolved: false, Probes: 3}, nil).
			Once()
		deps.client.On("Destroy", mock.Anything, testConfig, mediaDomain.CategoryImage, "gone").
			Return(mediaService.DestroyResultNotFound, nil).
			Once()

		_, err := deps.useCase.Delete(ctx, accountID, callerID, "gone", false)

		assert.ErrorIs(t, err, mediaDomain.ErrAssetNotFound)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})

	t.Run("Error_ProbeFailureAbortsBeforeDestroy", func(t *testing.T) {
		deps := newTestDeps(t)
		cfg := deps.expectSession(accountID, callerID)
		deps.resolver.On("Resolve", mock.Anything, testConfig, "x").
			Return(mediaDomain.Resolution{Category: mediaDomain.CategoryImage, Probes: 1}, mediaDomain.ErrMediaCredentials).
			Once()

		_, err := deps.useCase.Delete(ctx, accountID, callerID, "x", false)

		assert.ErrorIs(t, err, apperrors.ErrExternalRejected)
		assert.True(t, cfg.IsZero())
		deps.client.AssertNotCalled(t, "Destroy", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Error_NotOwnerNeverProbes", func(t *testing.T) {
		deps := newTestDeps(t)
		deps.sessions.On("Open", mock.Anything, accountID, callerID).
			Return(nil, accountDomain.ErrAccountNotFound).
			Once()

		_, err := deps.useCase.Delete(ctx, accountID, callerID, "x", true)

		assert.ErrorIs(t, err, apperrors.ErrNotFound)
		deps.resolver.AssertNotCalled(t, "ResolveStrict", mock.Anything, mock.Anything, mock.Anything)
	})
}
