package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v7().
type UserModel struct {
	ID           uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email        string          `gorm:"type:varchar(255);unique;not null"`
	Username     string          `gorm:"type:varchar(100);not null"`
	Role         string          `gorm:"type:varchar(20);not null;default:'client'"`
	Balance      decimal.Decimal `gorm:"type:numeric(18,2);not null;default:0"`
	ReferralCode string          `gorm:"type:varchar(32);unique;not null"`
	ReferredBy   *uuid.UUID      `gorm:"type:uuid;index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Authentications []AuthenticationModel `gorm:"foreignKey:UserID"`
	RefreshTokens   []RefreshTokenModel   `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
