package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionModel mirrors the 'transactions' table of deposit and withdrawal requests.
type TransactionModel struct {
	ID              uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID          uuid.UUID       `gorm:"type:uuid;not null;index"`
	Type            string          `gorm:"type:varchar(20);not null"`
	Amount          decimal.Decimal `gorm:"type:numeric(18,2);not null"`
	Status          string          `gorm:"type:varchar(20);not null;default:'pending';index"`
	RejectionReason string          `gorm:"type:text"`
	ReviewedBy      *uuid.UUID      `gorm:"type:uuid"`
	ReviewedAt      *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (TransactionModel) TableName() string {
	return "transactions"
}

// ReferralModel mirrors the 'referrals' table. A user can be referred only once.
type ReferralModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ReferrerID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	ReferredID  uuid.UUID       `gorm:"type:uuid;not null;unique"`
	BonusAmount decimal.Decimal `gorm:"type:numeric(18,2);not null"`
	Status      string          `gorm:"type:varchar(20);not null;default:'pending'"`
	PaidAt      *time.Time
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ReferralModel) TableName() string {
	return "referrals"
}
