package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// ProfileLoadStatus classifies one attempt to load the profile after sign-in.
type ProfileLoadStatus string

const (
	ProfileLoadFound             ProfileLoadStatus = "found"
	ProfileLoadNotFoundRetryable ProfileLoadStatus = "not_found_retryable"
	ProfileLoadNotFoundTerminal  ProfileLoadStatus = "not_found_terminal"
)

// ProfileLoadResult is the outcome of LoadSessionProfile. Err is set when Status is terminal.
type ProfileLoadResult struct {
	Status   ProfileLoadStatus
	User     *entity.User
	Attempts int
	Err      error
}

// ProfileUsecase defines the interface for profile-related business operations.
type ProfileUsecase interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error)

	// LoadSessionProfile fetches the profile with bounded retries. It only returns
	// Found or NotFoundTerminal; an error is returned when ctx is cancelled.
	LoadSessionProfile(ctx context.Context, userID uuid.UUID) (*ProfileLoadResult, error)
}
