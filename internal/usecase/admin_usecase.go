package usecase

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SetCategoryAccessInput is an administrator's override of one (user, category) gate.
type SetCategoryAccessInput struct {
	Category     string
	Enabled      bool
	ProductLimit int
	Price        *decimal.Decimal
}

// UserAccessOutput lists a user's gate rows next to their current requests.
type UserAccessOutput struct {
	User     *entity.User
	Access   []*entity.CategoryAccess
	Requests []*entity.AccessRequest
}

// AdminUsecase holds the back-office operations on users, access, money and orders.
// Every method expects the caller to be an administrator.
type AdminUsecase interface {
	ListUsers(ctx context.Context, page repository.Page) ([]*entity.User, error)
	GetUserAccess(ctx context.Context, userID uuid.UUID) (*UserAccessOutput, error)
	SetCategoryAccess(ctx context.Context, userID uuid.UUID, input *SetCategoryAccessInput) (*entity.CategoryAccess, error)

	ListAccessRequests(ctx context.Context, status entity.ReviewStatus, page repository.Page) ([]*entity.AccessRequest, error)
	ApproveAccessRequest(ctx context.Context, adminID, requestID uuid.UUID, note string) (*entity.AccessRequest, error)
	// RejectAccessRequest does not refund the price paid.
	RejectAccessRequest(ctx context.Context, adminID, requestID uuid.UUID, note string) (*entity.AccessRequest, error)

	ListTransactions(ctx context.Context, status entity.ReviewStatus, page repository.Page) ([]*entity.Transaction, error)
	ApproveTransaction(ctx context.Context, adminID, transactionID uuid.UUID) (*entity.Transaction, error)
	RejectTransaction(ctx context.Context, adminID, transactionID uuid.UUID, reason string) (*entity.Transaction, error)

	ListOrders(ctx context.Context, status entity.OrderStatus, page repository.Page) ([]*entity.Order, error)
	UpdateOrderStatus(ctx context.Context, orderID uuid.UUID, status entity.OrderStatus) (*entity.Order, error)

	ListReferrals(ctx context.Context, status entity.ReferralStatus, page repository.Page) ([]*entity.Referral, error)
	PayReferral(ctx context.Context, referralID uuid.UUID) (*entity.Referral, error)
}
