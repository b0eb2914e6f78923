// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultProfileLoadAttempts = 3
	defaultProfileLoadDelay    = 500 * time.Millisecond
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	userRepo repository.UserRepository
	attempts int
	delay    time.Duration
	wait     func(ctx context.Context, d time.Duration) error
	logger   *slog.Logger
}

// ProfileServiceParams holds dependencies for ProfileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Config   *config.Config
	Logger   *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	attempts := defaultProfileLoadAttempts
	delay := defaultProfileLoadDelay
	if params.Config != nil && params.Config.Auth != nil {
		if params.Config.Auth.ProfileLoadAttempts > 0 {
			attempts = params.Config.Auth.ProfileLoadAttempts
		}
		if params.Config.Auth.ProfileLoadDelay > 0 {
			delay = params.Config.Auth.ProfileLoadDelay
		}
	}

	return &profileService{
		userRepo: params.UserRepo,
		attempts: attempts,
		delay:    delay,
		wait:     sleepContext,
		logger:   params.Logger,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetProfile retrieves the user's profile.
func (srv *profileService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	srv.log(ctx).Debug("Getting user profile", slog.Any("userID", userID))

	// Single query operation - use direct repository instance
	user, err := findUser(ctx, srv.userRepo, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get user profile")
	}

	return user, nil
}

// LoadSessionProfile fetches the profile right after sign-in. The row may not be
// readable yet, so a missing row or a backing-store failure is retried a fixed number
// of times with a fixed delay before the result turns terminal.
func (srv *profileService) LoadSessionProfile(ctx context.Context, userID uuid.UUID) (*usecase.ProfileLoadResult, error) {
	var last *usecase.ProfileLoadResult

	for attempt := 1; attempt <= srv.attempts; attempt++ {
		last = srv.fetchProfile(ctx, userID)
		last.Attempts = attempt

		if last.Status != usecase.ProfileLoadNotFoundRetryable {
			return last, nil
		}
		if attempt == srv.attempts {
			break
		}

		srv.log(ctx).Warn("Profile not available yet, retrying",
			slog.Any("userID", userID),
			slog.Int("attempt", attempt),
			slog.Any("error", last.Err),
		)

		if err := srv.wait(ctx, srv.delay); err != nil {
			return nil, errors.Wrap(err, "profile load cancelled")
		}
	}

	srv.log(ctx).Error("Profile load exhausted retries",
		slog.Any("userID", userID),
		slog.Int("attempts", last.Attempts),
		slog.Any("error", last.Err),
	)

	last.Status = usecase.ProfileLoadNotFoundTerminal

	return last, nil
}

// fetchProfile is one idempotent read classified into a typed result.
func (srv *profileService) fetchProfile(ctx context.Context, userID uuid.UUID) *usecase.ProfileLoadResult {
	user, err := srv.userRepo.FindByID(ctx, userID)

	switch {
	case err == nil:
		return &usecase.ProfileLoadResult{Status: usecase.ProfileLoadFound, User: user}
	case errors.Is(err, repository.ErrUserNotFound):
		return &usecase.ProfileLoadResult{Status: usecase.ProfileLoadNotFoundRetryable, Err: domainerrors.ErrRecordNotFound}
	case domainerrors.IsUpstreamUnavailable(err):
		return &usecase.ProfileLoadResult{Status: usecase.ProfileLoadNotFoundRetryable, Err: err}
	default:
		return &usecase.ProfileLoadResult{Status: usecase.ProfileLoadNotFoundTerminal, Err: err}
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
