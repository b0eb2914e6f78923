package handler

import (
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// JSON views of domain entities. Money is rendered as a decimal string.

type UserView struct {
	ID           uuid.UUID       `json:"id"`
	Email        string          `json:"email"`
	Username     string          `json:"username"`
	Role         entity.Role     `json:"role"`
	Balance      decimal.Decimal `json:"balance"`
	ReferralCode string          `json:"referral_code"`
	CreatedAt    time.Time       `json:"created_at"`
}

func toUserView(u *entity.User) *UserView {
	if u == nil {
		return nil
	}

	return &UserView{
		ID:           u.ID,
		Email:        u.Email,
		Username:     u.Username,
		Role:         u.Role,
		Balance:      u.Balance,
		ReferralCode: u.ReferralCode,
		CreatedAt:    u.CreatedAt,
	}
}

type SessionDeviceView struct {
	ID         uuid.UUID `json:"id"`
	DeviceInfo string    `json:"device_info"`
	IPAddress  string    `json:"ip_address"`
	ExpiresAt  time.Time `json:"expires_at"`
	CreatedAt  time.Time `json:"created_at"`
}

func toSessionDeviceView(t *entity.RefreshToken) *SessionDeviceView {
	return &SessionDeviceView{
		ID:         t.ID,
		DeviceInfo: t.DeviceInfo,
		IPAddress:  t.IPAddress,
		ExpiresAt:  t.ExpiresAt,
		CreatedAt:  t.CreatedAt,
	}
}

type TransactionView struct {
	ID              uuid.UUID              `json:"id"`
	UserID          uuid.UUID              `json:"user_id"`
	Type            entity.TransactionType `json:"type"`
	Amount          decimal.Decimal        `json:"amount"`
	Status          entity.ReviewStatus    `json:"status"`
	RejectionReason string                 `json:"rejection_reason,omitempty"`
	ReviewedAt      *time.Time             `json:"reviewed_at,omitempty"`
	CreatedAt       time.Time              `json:"created_at"`
}

func toTransactionView(t *entity.Transaction) *TransactionView {
	return &TransactionView{
		ID:              t.ID,
		UserID:          t.UserID,
		Type:            t.Type,
		Amount:          t.Amount,
		Status:          t.Status,
		RejectionReason: t.RejectionReason,
		ReviewedAt:      t.ReviewedAt,
		CreatedAt:       t.CreatedAt,
	}
}

type ProductView struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	Rating      float64         `json:"rating"`
	ReviewCount int             `json:"review_count"`
	VIPTier     *int            `json:"vip_tier,omitempty"`
	ImageURL    string          `json:"image_url,omitempty"`
}

func toProductView(p *entity.Product) *ProductView {
	return &ProductView{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Category:    p.Category,
		Rating:      p.Rating,
		ReviewCount: p.ReviewCount,
		VIPTier:     p.VIPTier,
		ImageURL:    p.ImageURL,
	}
}

type CategoryView struct {
	ID           uuid.UUID          `json:"id"`
	Slug         string             `json:"slug"`
	Name         string             `json:"name"`
	Description  string             `json:"description"`
	AccessPrice  *decimal.Decimal   `json:"access_price,omitempty"`
	VIPTier      *int               `json:"vip_tier,omitempty"`
	State        entity.AccessState `json:"state,omitempty"`
	ProductLimit *int               `json:"product_limit,omitempty"`
}

func toCategoryView(c *entity.Category) *CategoryView {
	return &CategoryView{
		ID:          c.ID,
		Slug:        c.Slug,
		Name:        c.Name,
		Description: c.Description,
		AccessPrice: c.AccessPrice,
		VIPTier:     c.VIPTier,
	}
}

// toShopperCategoryView shows the caller's effective price in place of the default.
func toShopperCategoryView(v *usecase.CategoryView) *CategoryView {
	view := toCategoryView(v.Category)
	view.AccessPrice = v.Price
	view.State = v.State
	limit := v.ProductLimit
	view.ProductLimit = &limit

	return view
}

type CategoryAccessView struct {
	Category     string           `json:"category"`
	Enabled      bool             `json:"enabled"`
	ProductLimit int              `json:"product_limit"`
	Price        *decimal.Decimal `json:"price,omitempty"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

func toCategoryAccessView(a *entity.CategoryAccess) *CategoryAccessView {
	return &CategoryAccessView{
		Category:     a.Category,
		Enabled:      a.Enabled,
		ProductLimit: a.ProductLimit,
		Price:        a.Price,
		UpdatedAt:    a.UpdatedAt,
	}
}

type AccessRequestView struct {
	ID          uuid.UUID           `json:"id"`
	UserID      uuid.UUID           `json:"user_id"`
	Category    string              `json:"category"`
	PricePaid   decimal.Decimal     `json:"price_paid"`
	Status      entity.ReviewStatus `json:"status"`
	AdminNote   string              `json:"admin_note,omitempty"`
	IsCurrent   bool                `json:"is_current"`
	RequestedAt time.Time           `json:"requested_at"`
	ReviewedAt  *time.Time          `json:"reviewed_at,omitempty"`
}

func toAccessRequestView(r *entity.AccessRequest) *AccessRequestView {
	return &AccessRequestView{
		ID:          r.ID,
		UserID:      r.UserID,
		Category:    r.Category,
		PricePaid:   r.PricePaid,
		Status:      r.Status,
		AdminNote:   r.AdminNote,
		IsCurrent:   r.IsCurrent,
		RequestedAt: r.RequestedAt,
		ReviewedAt:  r.ReviewedAt,
	}
}

type CartView struct {
	Items []entity.CartItem `json:"items"`
	Total decimal.Decimal   `json:"total"`
	Count int               `json:"count"`
}

func toCartView(c *entity.Cart) *CartView {
	count := 0
	for _, item := range c.Items {
		count += item.Quantity
	}
	items := c.Items
	if items == nil {
		items = []entity.CartItem{}
	}

	return &CartView{Items: items, Total: c.Total(), Count: count}
}

type OrderItemView struct {
	ProductID   uuid.UUID       `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

type OrderView struct {
	ID              uuid.UUID            `json:"id"`
	UserID          uuid.UUID            `json:"user_id"`
	TotalAmount     decimal.Decimal      `json:"total_amount"`
	Status          entity.OrderStatus   `json:"status"`
	PaymentMethod   entity.PaymentMethod `json:"payment_method"`
	ShippingAddress string               `json:"shipping_address"`
	Items           []*OrderItemView     `json:"items"`
	CreatedAt       time.Time            `json:"created_at"`
}

func toOrderView(o *entity.Order) *OrderView {
	items := make([]*OrderItemView, len(o.Items))
	for i, item := range o.Items {
		items[i] = &OrderItemView{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Subtotal:    item.Subtotal(),
		}
	}

	return &OrderView{
		ID:              o.ID,
		UserID:          o.UserID,
		TotalAmount:     o.TotalAmount,
		Status:          o.Status,
		PaymentMethod:   o.PaymentMethod,
		ShippingAddress: o.ShippingAddress,
		Items:           items,
		CreatedAt:       o.CreatedAt,
	}
}

type ReferralView struct {
	ID          uuid.UUID             `json:"id"`
	ReferrerID  uuid.UUID             `json:"referrer_id"`
	ReferredID  uuid.UUID             `json:"referred_id"`
	BonusAmount decimal.Decimal       `json:"bonus_amount"`
	Status      entity.ReferralStatus `json:"status"`
	PaidAt      *time.Time            `json:"paid_at,omitempty"`
	CreatedAt   time.Time             `json:"created_at"`
}

func toReferralView(r *entity.Referral) *ReferralView {
	return &ReferralView{
		ID:          r.ID,
		ReferrerID:  r.ReferrerID,
		ReferredID:  r.ReferredID,
		BonusAmount: r.BonusAmount,
		Status:      r.Status,
		PaidAt:      r.PaidAt,
		CreatedAt:   r.CreatedAt,
	}
}

type BannerView struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	ImageURL  string    `json:"image_url"`
	LinkURL   string    `json:"link_url,omitempty"`
	Active    bool      `json:"active"`
	SortOrder int       `json:"sort_order"`
}

func toBannerView(b *entity.Banner) *BannerView {
	return &BannerView{
		ID:        b.ID,
		Title:     b.Title,
		ImageURL:  b.ImageURL,
		LinkURL:   b.LinkURL,
		Active:    b.Active,
		SortOrder: b.SortOrder,
	}
}

func mapViews[T, V any](items []T, fn func(T) V) []V {
	out := make([]V, len(items))
	for i, item := range items {
		out[i] = fn(item)
	}

	return out
}
