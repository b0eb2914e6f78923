package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ReferralSummary is a referrer's dashboard.
type ReferralSummary struct {
	Code         string
	Link         string
	Referrals    []*entity.Referral
	PendingTotal decimal.Decimal
	PaidTotal    decimal.Decimal
}

// ReferralUsecase exposes a user's referral code and earnings.
type ReferralUsecase interface {
	GetSummary(ctx context.Context, userID uuid.UUID) (*ReferralSummary, error)
	GenerateQRCode(ctx context.Context, userID uuid.UUID) ([]byte, error)
}
