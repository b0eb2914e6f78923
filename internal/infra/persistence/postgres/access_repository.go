package postgres

import (
	"context"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type categoryAccessRepository struct {
	db *gorm.DB
}

// NewCategoryAccessRepository is the constructor for categoryAccessRepository.
func NewCategoryAccessRepository(db *gorm.DB) repository.CategoryAccessRepository {
	return &categoryAccessRepository{db: db}
}

// Upsert inserts or replaces the row keyed by (user_id, category).
func (repo *categoryAccessRepository) Upsert(ctx context.Context, access *entity.CategoryAccess) error {
	accessM := &model.CategoryAccessModel{
		UserID:       access.UserID,
		Category:     access.Category,
		Enabled:      access.Enabled,
		ProductLimit: access.ProductLimit,
		Price:        access.Price,
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "category"}},
			DoUpdates: clause.AssignmentColumns([]string{"enabled", "product_limit", "price", "updated_at"}),
		}).
		Create(accessM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewUpstreamError(err, "failed to upsert category access")
	}

	access.ID = accessM.ID
	access.CreatedAt = accessM.CreatedAt
	access.UpdatedAt = accessM.UpdatedAt

	return nil
}

func (repo *categoryAccessRepository) FindByUserAndCategory(ctx context.Context, userID uuid.UUID, category string) (*entity.CategoryAccess, error) {
	var accessM model.CategoryAccessModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND category = ?", userID, category).
		First(&accessM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCategoryAccessNotFound
		}

		return nil, domainerrors.NewUpstreamError(err, "failed to find category access")
	}

	return toCategoryAccessDomain(&accessM), nil
}

func (repo *categoryAccessRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.CategoryAccess, error) {
	var accessModels []*model.CategoryAccessModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("category ASC").
		Find(&accessModels).Error; err != nil {
		return nil, domainerrors.NewUpstreamError(err, "failed to list category access")
	}

	rows := make([]*entity.CategoryAccess, len(accessModels))
	for i, accessM := range accessModels {
		rows[i] = toCategoryAccessDomain(accessM)
	}

	return rows, nil
}

type accessRequestRepository struct {
	db *gorm.DB
}

// NewAccessRequestRepository is the constructor for accessRequestRepository.
func NewAccessRequestRepository(db *gorm.DB) repository.AccessRequestRepository {
	return &accessRequestRepository{db: db}
}

// Create supersedes the current request for (user, category) and inserts the new one.
// The partial unique index on is_current rejects a concurrent insert that slipped past
// the caller's pending check.
func (repo *accessRequestRepository) Create(ctx context.Context, request *entity.AccessRequest) error {
	db := repo.db.WithContext(ctx)

	if err := db.Model(&model.AccessRequestModel{}).
		Where("user_id = ? AND category = ? AND is_current", request.UserID, request.Category).
		Update("is_current", false).Error; err != nil {
		return domainerrors.NewUpstreamError(err, "failed to supersede access request")
	}

	if request.RequestedAt.IsZero() {
		request.RequestedAt = time.Now()
	}
	request.IsCurrent = true
	requestM := fromAccessRequestDomain(request)

	if err := db.Create(requestM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrDuplicatePendingRequest
		}

		return domainerrors.NewUpstreamError(err, "failed to create access request")
	}

	request.ID = requestM.ID

	return nil
}

func (repo *accessRequestRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.AccessRequest, error) {
	return repo.findOne(ctx, repo.db.WithContext(ctx).Where("id = ?", id))
}

func (repo *accessRequestRepository) FindCurrent(ctx context.Context, userID uuid.UUID, category string) (*entity.AccessRequest, error) {
	return repo.findOne(ctx, repo.db.WithContext(ctx).
		Where("user_id = ? AND category = ? AND is_current", userID, category))
}

func (repo *accessRequestRepository) findOne(_ context.Context, query *gorm.DB) (*entity.AccessRequest, error) {
	var requestM model.AccessRequestModel

	if err := query.First(&requestM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccessRequestNotFound
		}

		return nil, domainerrors.NewUpstreamError(err, "failed to find access request")
	}

	return toAccessRequestDomain(&requestM), nil
}

func (repo *accessRequestRepository) ListCurrentByUser(ctx context.Context, userID uuid.UUID) ([]*entity.AccessRequest, error) {
	return repo.list(repo.db.WithContext(ctx).
		Where("user_id = ? AND is_current", userID).
		Order("category ASC"))
}

func (repo *accessRequestRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.AccessRequest, error) {
	return repo.list(repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("requested_at DESC"))
}

func (repo *accessRequestRepository) ListByStatus(ctx context.Context, status entity.ReviewStatus, page repository.Page) ([]*entity.AccessRequest, error) {
	query := repo.db.WithContext(ctx)
	if status != "" {
		query = query.Where("status = ?", string(status))
	}

	return repo.list(paginate(query, page).Order("requested_at ASC"))
}

func (repo *accessRequestRepository) list(query *gorm.DB) ([]*entity.AccessRequest, error) {
	var requestModels []*model.AccessRequestModel

	if err := query.Find(&requestModels).Error; err != nil {
		return nil, domainerrors.NewUpstreamError(err, "failed to list access requests")
	}

	requests := make([]*entity.AccessRequest, len(requestModels))
	for i, requestM := range requestModels {
		requests[i] = toAccessRequestDomain(requestM)
	}

	return requests, nil
}

// Review writes the final status only while the request is still pending.
func (repo *accessRequestRepository) Review(ctx context.Context, request *entity.AccessRequest) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AccessRequestModel{}).
		Where("id = ? AND status = ?", request.ID, string(entity.ReviewStatusPending)).
		Updates(map[string]any{
			"status":      string(request.Status),
			"admin_note":  request.AdminNote,
			"reviewed_by": request.ReviewedBy,
			"reviewed_at": request.ReviewedAt,
		})
	if result.Error != nil {
		return domainerrors.NewUpstreamError(result.Error, "failed to review access request")
	}

	if result.RowsAffected == 0 {
		if _, err := repo.FindByID(ctx, request.ID); err != nil {
			return err
		}

		return domainerrors.ErrAlreadyReviewed
	}

	return nil
}

func toCategoryAccessDomain(m *model.CategoryAccessModel) *entity.CategoryAccess {
	return &entity.CategoryAccess{
		ID:           m.ID,
		UserID:       m.UserID,
		Category:     m.Category,
		Enabled:      m.Enabled,
		ProductLimit: m.ProductLimit,
		Price:        m.Price,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func toAccessRequestDomain(m *model.AccessRequestModel) *entity.AccessRequest {
	return &entity.AccessRequest{
		ID:          m.ID,
		UserID:      m.UserID,
		Category:    m.Category,
		PricePaid:   m.PricePaid,
		Status:      entity.ReviewStatus(m.Status),
		AdminNote:   m.AdminNote,
		IsCurrent:   m.IsCurrent,
		RequestedAt: m.RequestedAt,
		ReviewedBy:  m.ReviewedBy,
		ReviewedAt:  m.ReviewedAt,
	}
}

func fromAccessRequestDomain(r *entity.AccessRequest) *model.AccessRequestModel {
	status := r.Status
	if status == "" {
		status = entity.ReviewStatusPending
	}

	return &model.AccessRequestModel{
		ID:          r.ID,
		UserID:      r.UserID,
		Category:    r.Category,
		PricePaid:   r.PricePaid,
		Status:      string(status),
		AdminNote:   r.AdminNote,
		IsCurrent:   r.IsCurrent,
		RequestedAt: r.RequestedAt,
		ReviewedBy:  r.ReviewedBy,
		ReviewedAt:  r.ReviewedAt,
	}
}
