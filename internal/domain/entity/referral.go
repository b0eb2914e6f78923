package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ReferralStatus tracks whether the referrer's bonus has been paid out.
type ReferralStatus string

const (
	ReferralStatusPending ReferralStatus = "pending"
	ReferralStatusPaid    ReferralStatus = "paid"
)

// Referral links a referrer to a user who signed up with their code.
// It is recorded on the referred user's first order.
type Referral struct {
	ID          uuid.UUID
	ReferrerID  uuid.UUID
	ReferredID  uuid.UUID
	BonusAmount decimal.Decimal
	Status      ReferralStatus
	PaidAt      *time.Time
	CreatedAt   time.Time
}
