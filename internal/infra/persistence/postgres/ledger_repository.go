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

type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository is the constructor for transactionRepository.
func NewTransactionRepository(db *gorm.DB) repository.TransactionRepository {
	return &transactionRepository{db: db}
}

func (repo *transactionRepository) Create(ctx context.Context, tx *entity.Transaction) error {
	txM := fromTransactionDomain(tx)

	if err := repo.db.WithContext(ctx).Create(txM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewUpstreamError(err, "failed to create transaction")
	}

	tx.ID = txM.ID
	tx.CreatedAt = txM.CreatedAt
	tx.UpdatedAt = txM.UpdatedAt

	return nil
}

func (repo *transactionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	var txM model.TransactionModel

	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&txM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTransactionNotFound
		}

		return nil, domainerrors.NewUpstreamError(err, "failed to find transaction")
	}

	return toTransactionDomain(&txM), nil
}

func (repo *transactionRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Transaction, error) {
	return repo.list(repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC"))
}

func (repo *transactionRepository) ListByStatus(ctx context.Context, status entity.ReviewStatus, page repository.Page) ([]*entity.Transaction, error) {
	query := repo.db.WithContext(ctx)
	if status != "" {
		query = query.Where("status = ?", string(status))
	}

	return repo.list(paginate(query, page).Order("created_at ASC"))
}

func (repo *transactionRepository) list(query *gorm.DB) ([]*entity.Transaction, error) {
	var txModels []*model.TransactionModel

	if err := query.Find(&txModels).Error; err != nil {
		return nil, domainerrors.NewUpstreamError(err, "failed to list transactions")
	}

	txs := make([]*entity.Transaction, len(txModels))
	for i, txM := range txModels {
		txs[i] = toTransactionDomain(txM)
	}

	return txs, nil
}

// Review writes the final status only while the transaction is still pending.
func (repo *transactionRepository) Review(ctx context.Context, tx *entity.Transaction) error {
	result := repo.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Where("id = ? AND status = ?", tx.ID, string(entity.ReviewStatusPending)).
		Updates(map[string]any{
			"status":           string(tx.Status),
			"rejection_reason": tx.RejectionReason,
			"reviewed_by":      tx.ReviewedBy,
			"reviewed_at":      tx.ReviewedAt,
		})
	if result.Error != nil {
		return domainerrors.NewUpstreamError(result.Error, "failed to review transaction")
	}

	if result.RowsAffected == 0 {
		if _, err := repo.FindByID(ctx, tx.ID); err != nil {
			return err
		}

		return domainerrors.ErrAlreadyReviewed
	}

	return nil
}

type referralRepository struct {
	db *gorm.DB
}

// NewReferralRepository is the constructor for referralRepository.
func NewReferralRepository(db *gorm.DB) repository.ReferralRepository {
	return &referralRepository{db: db}
}

// CreateIfAbsent relies on the unique referred_id column; a second insert is a no-op.
func (repo *referralRepository) CreateIfAbsent(ctx context.Context, referral *entity.Referral) (bool, error) {
	referralM := fromReferralDomain(referral)

	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "referred_id"}},
			DoNothing: true,
		}).
		Create(referralM)
	if result.Error != nil {
		return false, domainerrors.NewUpstreamError(result.Error, "failed to create referral")
	}
	if result.RowsAffected == 0 {
		return false, nil
	}

	referral.ID = referralM.ID
	referral.CreatedAt = referralM.CreatedAt

	return true, nil
}

func (repo *referralRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Referral, error) {
	var referralM model.ReferralModel

	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&referralM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrReferralNotFound
		}

		return nil, domainerrors.NewUpstreamError(err, "failed to find referral")
	}

	return toReferralDomain(&referralM), nil
}

func (repo *referralRepository) ListByReferrer(ctx context.Context, referrerID uuid.UUID) ([]*entity.Referral, error) {
	return repo.list(repo.db.WithContext(ctx).
		Where("referrer_id = ?", referrerID).
		Order("created_at DESC"))
}

func (repo *referralRepository) ListByStatus(ctx context.Context, status entity.ReferralStatus, page repository.Page) ([]*entity.Referral, error) {
	query := repo.db.WithContext(ctx)
	if status != "" {
		query = query.Where("status = ?", string(status))
	}

	return repo.list(paginate(query, page).Order("created_at DESC"))
}

func (repo *referralRepository) list(query *gorm.DB) ([]*entity.Referral, error) {
	var referralModels []*model.ReferralModel

	if err := query.Find(&referralModels).Error; err != nil {
		return nil, domainerrors.NewUpstreamError(err, "failed to list referrals")
	}

	referrals := make([]*entity.Referral, len(referralModels))
	for i, referralM := range referralModels {
		referrals[i] = toReferralDomain(referralM)
	}

	return referrals, nil
}

// MarkPaid flips a pending referral to paid.
func (repo *referralRepository) MarkPaid(ctx context.Context, referral *entity.Referral) error {
	paidAt := time.Now()
	if referral.PaidAt != nil {
		paidAt = *referral.PaidAt
	}

	result := repo.db.WithContext(ctx).
		Model(&model.ReferralModel{}).
		Where("id = ? AND status = ?", referral.ID, string(entity.ReferralStatusPending)).
		Updates(map[string]any{
			"status":  string(entity.ReferralStatusPaid),
			"paid_at": paidAt,
		})
	if result.Error != nil {
		return domainerrors.NewUpstreamError(result.Error, "failed to mark referral paid")
	}

	if result.RowsAffected == 0 {
		if _, err := repo.FindByID(ctx, referral.ID); err != nil {
			return err
		}

		return domainerrors.ErrAlreadyReviewed
	}

	referral.Status = entity.ReferralStatusPaid
	referral.PaidAt = &paidAt

	return nil
}

func toTransactionDomain(m *model.TransactionModel) *entity.Transaction {
	return &entity.Transaction{
		ID:              m.ID,
		UserID:          m.UserID,
		Type:            entity.TransactionType(m.Type),
		Amount:          m.Amount,
		Status:          entity.ReviewStatus(m.Status),
		RejectionReason: m.RejectionReason,
		ReviewedBy:      m.ReviewedBy,
		ReviewedAt:      m.ReviewedAt,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

func fromTransactionDomain(t *entity.Transaction) *model.TransactionModel {
	status := t.Status
	if status == "" {
		status = entity.ReviewStatusPending
	}

	return &model.TransactionModel{
		ID:              t.ID,
		UserID:          t.UserID,
		Type:            string(t.Type),
		Amount:          t.Amount,
		Status:          string(status),
		RejectionReason: t.RejectionReason,
		ReviewedBy:      t.ReviewedBy,
		ReviewedAt:      t.ReviewedAt,
		CreatedAt:       t.CreatedAt,
		UpdatedAt:       t.UpdatedAt,
	}
}

func toReferralDomain(m *model.ReferralModel) *entity.Referral {
	return &entity.Referral{
		ID:          m.ID,
		ReferrerID:  m.ReferrerID,
		ReferredID:  m.ReferredID,
		BonusAmount: m.BonusAmount,
		Status:      entity.ReferralStatus(m.Status),
		PaidAt:      m.PaidAt,
		CreatedAt:   m.CreatedAt,
	}
}

func fromReferralDomain(r *entity.Referral) *model.ReferralModel {
	status := r.Status
	if status == "" {
		status = entity.ReferralStatusPending
	}

	return &model.ReferralModel{
		ID:          r.ID,
		ReferrerID:  r.ReferrerID,
		ReferredID:  r.ReferredID,
		BonusAmount: r.BonusAmount,
		Status:      string(status),
		PaidAt:      r.PaidAt,
		CreatedAt:   r.CreatedAt,
	}
}
