package repository

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	// ErrCategoryAccessNotFound is returned when a user has no access row for a category.
	ErrCategoryAccessNotFound = errors.New("category access not found")
	// ErrAccessRequestNotFound is returned when an access request does not exist.
	ErrAccessRequestNotFound = errors.New("access request not found")
)

// CategoryAccessRepository persists the per (user, category) gate.
type CategoryAccessRepository interface {
	// Upsert inserts or replaces the row keyed by (user_id, category).
	Upsert(ctx context.Context, access *entity.CategoryAccess) error
	FindByUserAndCategory(ctx context.Context, userID uuid.UUID, category string) (*entity.CategoryAccess, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.CategoryAccess, error)
}

// AccessRequestRepository persists category purchase requests.
type AccessRequestRepository interface {
	// Create stores a new current request, clearing the current flag on any previous
	// request for the same (user, category).
	Create(ctx context.Context, request *entity.AccessRequest) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.AccessRequest, error)
	// FindCurrent returns the authoritative request for (user, category).
	FindCurrent(ctx context.Context, userID uuid.UUID, category string) (*entity.AccessRequest, error)
	// ListCurrentByUser returns the authoritative request per category for a user.
	ListCurrentByUser(ctx context.Context, userID uuid.UUID) ([]*entity.AccessRequest, error)
	// ListByUser returns the full request history for a user, newest first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.AccessRequest, error)
	// ListByStatus returns requests with the given status, oldest first; empty status lists all.
	ListByStatus(ctx context.Context, status entity.ReviewStatus, page Page) ([]*entity.AccessRequest, error)
	// Review moves a pending request to its final status. It fails with
	// ErrAlreadyReviewed if the request is no longer pending.
	Review(ctx context.Context, request *entity.AccessRequest) error
}
