package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CategoryAccessModel mirrors the 'category_access' table, one row per (user, category).
type CategoryAccessModel struct {
	ID           uuid.UUID        `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID       uuid.UUID        `gorm:"type:uuid;not null;uniqueIndex:idx_category_access_user_category"`
	Category     string           `gorm:"type:varchar(64);not null;uniqueIndex:idx_category_access_user_category"`
	Enabled      bool             `gorm:"not null;default:false"`
	ProductLimit int              `gorm:"not null;default:0"`
	Price        *decimal.Decimal `gorm:"type:numeric(18,2)"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (CategoryAccessModel) TableName() string {
	return "category_access"
}

// AccessRequestModel mirrors the 'access_requests' table. At most one row per
// (user_id, category) has is_current set, enforced by a partial unique index.
type AccessRequestModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	Category    string          `gorm:"type:varchar(64);not null"`
	PricePaid   decimal.Decimal `gorm:"type:numeric(18,2);not null"`
	Status      string          `gorm:"type:varchar(20);not null;default:'pending';index"`
	AdminNote   string          `gorm:"type:text"`
	IsCurrent   bool            `gorm:"not null"`
	RequestedAt time.Time       `gorm:"not null"`
	ReviewedBy  *uuid.UUID      `gorm:"type:uuid"`
	ReviewedAt  *time.Time
}

// TableName explicitly sets the table name for GORM.
func (AccessRequestModel) TableName() string {
	return "access_requests"
}
