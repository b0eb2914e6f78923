package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

// Create inserts the order; GORM writes the items through the has-many association.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrProductNotFound
		}

		return domainerrors.NewUpstreamError(err, "failed to create order")
	}

	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt
	for i := range order.Items {
		order.Items[i].ID = orderM.Items[i].ID
		order.Items[i].OrderID = orderM.ID
	}

	return nil
}

func (repo *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := repo.db.WithContext(ctx).
		Preload("Items").
		Where("id = ?", id).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, domainerrors.NewUpstreamError(err, "failed to find order")
	}

	return toOrderDomain(&orderM), nil
}

func (repo *orderRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	return repo.list(repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC"))
}

func (repo *orderRepository) ListByStatus(ctx context.Context, status entity.OrderStatus, page repository.Page) ([]*entity.Order, error) {
	query := repo.db.WithContext(ctx)
	if status != "" {
		query = query.Where("status = ?", string(status))
	}

	return repo.list(paginate(query, page).Order("created_at DESC"))
}

func (repo *orderRepository) list(query *gorm.DB) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel

	if err := query.Preload("Items").Find(&orderModels).Error; err != nil {
		return nil, domainerrors.NewUpstreamError(err, "failed to list orders")
	}

	orders := make([]*entity.Order, len(orderModels))
	for i, orderM := range orderModels {
		orders[i] = toOrderDomain(orderM)
	}

	return orders, nil
}

func (repo *orderRepository) CountByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, domainerrors.NewUpstreamError(err, "failed to count orders")
	}

	return count, nil
}

// UpdateStatus is a compare-and-set on the status column.
func (repo *orderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to entity.OrderStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ? AND status = ?", id, string(from)).
		Update("status", string(to))
	if result.Error != nil {
		return domainerrors.NewUpstreamError(result.Error, "failed to update order status")
	}

	if result.RowsAffected == 0 {
		if _, err := repo.FindByID(ctx, id); err != nil {
			return err
		}

		return domainerrors.ErrInvalidStatusTransition
	}

	return nil
}

func toOrderDomain(m *model.OrderModel) *entity.Order {
	items := make([]*entity.OrderItem, len(m.Items))
	for i, itemM := range m.Items {
		items[i] = &entity.OrderItem{
			ID:          itemM.ID,
			OrderID:     itemM.OrderID,
			ProductID:   itemM.ProductID,
			ProductName: itemM.ProductName,
			Quantity:    itemM.Quantity,
			UnitPrice:   itemM.UnitPrice,
		}
	}

	return &entity.Order{
		ID:              m.ID,
		UserID:          m.UserID,
		TotalAmount:     m.TotalAmount,
		Status:          entity.OrderStatus(m.Status),
		PaymentMethod:   entity.PaymentMethod(m.PaymentMethod),
		ShippingAddress: m.ShippingAddress,
		Items:           items,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

func fromOrderDomain(o *entity.Order) *model.OrderModel {
	items := make([]model.OrderItemModel, len(o.Items))
	for i, item := range o.Items {
		items[i] = model.OrderItemModel{
			ID:          item.ID,
			OrderID:     item.OrderID,
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
		}
	}

	status := o.Status
	if status == "" {
		status = entity.OrderStatusPending
	}

	return &model.OrderModel{
		ID:              o.ID,
		UserID:          o.UserID,
		TotalAmount:     o.TotalAmount,
		Status:          string(status),
		PaymentMethod:   string(o.PaymentMethod),
		ShippingAddress: o.ShippingAddress,
		Items:           items,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
}
