package postgres

import (
	"context"

	"storefront/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Models lists every table the storefront owns, in dependency order.
func Models() []any {
	return []any{
		&model.UserModel{},
		&model.AuthenticationModel{},
		&model.RefreshTokenModel{},
		&model.CategoryModel{},
		&model.ProductModel{},
		&model.BannerModel{},
		&model.CategoryAccessModel{},
		&model.AccessRequestModel{},
		&model.TransactionModel{},
		&model.ReferralModel{},
		&model.OrderModel{},
		&model.OrderItemModel{},
	}
}

// At most one current access request per (user, category).
const createCurrentAccessRequestIndex = `CREATE UNIQUE INDEX IF NOT EXISTS idx_access_requests_current
	ON access_requests (user_id, category) WHERE is_current`

// Migrate creates or updates the schema.
func Migrate(ctx context.Context, db *gorm.DB) error {
	db = db.WithContext(ctx)

	if err := db.AutoMigrate(Models()...); err != nil {
		return errors.Wrap(err, "failed to auto-migrate models")
	}

	if err := db.Exec(createCurrentAccessRequestIndex).Error; err != nil {
		return errors.Wrap(err, "failed to create current access request index")
	}

	return nil
}
