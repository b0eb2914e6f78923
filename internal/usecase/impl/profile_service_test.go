package impl

import (
	"context"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type profileServiceFixtures struct {
	service  *profileService
	userRepo *mockRepo.MockUserRepository
	waits    []time.Duration
}

func createTestProfileService(t *testing.T) *profileServiceFixtures {
	fx := &profileServiceFixtures{userRepo: mockRepo.NewMockUserRepository(t)}

	cfg := newTestConfig(0)
	cfg.Auth.ProfileLoadDelay = 200 * time.Millisecond

	fx.service = NewProfileService(ProfileServiceParams{
		UserRepo: fx.userRepo,
		Config:   cfg,
		Logger:   newDiscardLogger(),
	}).(*profileService)
	fx.service.wait = func(_ context.Context, d time.Duration) error {
		fx.waits = append(fx.waits, d)

		return nil
	}

	return fx
}

func TestProfileService_LoadSessionProfile_FoundFirstAttempt(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Role: entity.RoleClient}

	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil).Once()

	result, err := fx.service.LoadSessionProfile(ctx, user.ID)

	require.NoError(t, err)
	assert.Equal(t, usecase.ProfileLoadFound, result.Status)
	assert.Equal(t, user, result.User)
	assert.Equal(t, 1, result.Attempts)
	assert.Empty(t, fx.waits)
}

func TestProfileService_LoadSessionProfile_FoundAfterRetry(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New()}

	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(nil, repository.ErrUserNotFound).Once()
	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil).Once()

	result, err := fx.service.LoadSessionProfile(ctx, user.ID)

	require.NoError(t, err)
	assert.Equal(t, usecase.ProfileLoadFound, result.Status)
	assert.Equal(t, 2, result.Attempts)
	assert.Equal(t, []time.Duration{200 * time.Millisecond}, fx.waits)
}

func TestProfileService_LoadSessionProfile_TerminalAfterThreeMisses(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound).Times(3)

	result, err := fx.service.LoadSessionProfile(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, usecase.ProfileLoadNotFoundTerminal, result.Status)
	assert.Equal(t, 3, result.Attempts)
	assert.Nil(t, result.User)
	assert.True(t, errors.Is(result.Err, domainerrors.ErrRecordNotFound))
	// No wait after the final attempt.
	assert.Len(t, fx.waits, 2)
}

func TestProfileService_LoadSessionProfile_UpstreamFailureIsRetried(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	userID := uuid.New()
	upstream := domainerrors.NewUpstreamError(errors.New("connection refused"), "failed to find user")

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, upstream).Times(3)

	result, err := fx.service.LoadSessionProfile(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, usecase.ProfileLoadNotFoundTerminal, result.Status)
	assert.True(t, domainerrors.IsUpstreamUnavailable(result.Err))
}

func TestProfileService_LoadSessionProfile_UnexpectedErrorIsTerminal(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, errors.New("scan error")).Once()

	result, err := fx.service.LoadSessionProfile(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, usecase.ProfileLoadNotFoundTerminal, result.Status)
	assert.Equal(t, 1, result.Attempts)
	assert.Empty(t, fx.waits)
}

func TestProfileService_LoadSessionProfile_CancelledWhileWaiting(t *testing.T) {
	fx := createTestProfileService(t)
	ctx, cancel := context.WithCancel(context.Background())
	userID := uuid.New()

	fx.service.wait = sleepContext
	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound).Once()
	cancel()

	result, err := fx.service.LoadSessionProfile(ctx, userID)

	assert.Nil(t, result)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestProfileService_GetProfile(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		fx := createTestProfileService(t)
		user := &entity.User{ID: uuid.New(), Email: "a@example.com"}
		fx.userRepo.EXPECT().FindByID(context.Background(), user.ID).Return(user, nil)

		got, err := fx.service.GetProfile(context.Background(), user.ID)

		require.NoError(t, err)
		assert.Equal(t, user, got)
	})

	t.Run("missing", func(t *testing.T) {
		fx := createTestProfileService(t)
		userID := uuid.New()
		fx.userRepo.EXPECT().FindByID(context.Background(), userID).Return(nil, repository.ErrUserNotFound)

		got, err := fx.service.GetProfile(context.Background(), userID)

		assert.Nil(t, got)
		assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
	})
}
