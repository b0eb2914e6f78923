package handler

import (
	"net/http"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	mockUC "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupCartHandler(t *testing.T, session *entity.Session) (*echo.Echo, *mockUC.MockCartUsecase) {
	cartUC := mockUC.NewMockCartUsecase(t)
	h := NewCartHandler(CartHandlerParams{CartUC: cartUC})

	e := newTestEcho()
	g := e.Group("/api/v1", withSession(session))
	g.GET("/cart", h.GetCart)
	g.POST("/cart/items", h.AddItem)
	g.PUT("/cart/items/:productId", h.UpdateQuantity)
	g.POST("/checkout", h.Checkout)
	g.GET("/orders/:id", h.GetOrder)

	return e, cartUC
}

func TestCartHandler_Checkout(t *testing.T) {
	t.Run("places the order", func(t *testing.T) {
		session := clientSession()
		e, cartUC := setupCartHandler(t, session)
		order := &entity.Order{
			ID:              uuid.New(),
			UserID:          session.UserID,
			TotalAmount:     decimal.RequireFromString("25.00"),
			Status:          entity.OrderStatusPending,
			PaymentMethod:   entity.PaymentMethodBalance,
			ShippingAddress: "1 Main St",
			Items: []*entity.OrderItem{
				{ProductID: uuid.New(), ProductName: "Mug", Quantity: 5, UnitPrice: decimal.RequireFromString("5.00")},
			},
		}
		cartUC.EXPECT().
			Checkout(mock.Anything, session, &usecase.CheckoutInput{ShippingAddress: "1 Main St", PaymentMethod: entity.PaymentMethodBalance}).
			Return(order, nil)

		rec, env := doJSON(t, e, http.MethodPost, "/api/v1/checkout", map[string]string{
			"shipping_address": "1 Main St",
			"payment_method":   "balance",
		})

		requireStatus(t, rec, http.StatusCreated)
		var got OrderView
		decodeData(t, env, &got)
		assert.Equal(t, order.ID, got.ID)
		assert.True(t, got.TotalAmount.Equal(decimal.RequireFromString("25")))
		require.Len(t, got.Items, 1)
		assert.True(t, got.Items[0].Subtotal.Equal(decimal.RequireFromString("25")))
	})

	t.Run("insufficient balance", func(t *testing.T) {
		session := clientSession()
		e, cartUC := setupCartHandler(t, session)
		cartUC.EXPECT().Checkout(mock.Anything, session, mock.Anything).
			Return(nil, errors.Wrap(domainerrors.ErrInsufficientBalance, "failed to debit balance"))

		rec, env := doJSON(t, e, http.MethodPost, "/api/v1/checkout", map[string]string{
			"shipping_address": "1 Main St",
			"payment_method":   "balance",
		})

		requireStatus(t, rec, http.StatusUnprocessableEntity)
		assert.Equal(t, "INSUFFICIENT_BALANCE", env.Error.Code)
	})

	t.Run("unknown payment method never reaches the usecase", func(t *testing.T) {
		e, cartUC := setupCartHandler(t, clientSession())

		rec, env := doJSON(t, e, http.MethodPost, "/api/v1/checkout", map[string]string{
			"shipping_address": "1 Main St",
			"payment_method":   "bitcoin",
		})

		requireStatus(t, rec, http.StatusBadRequest)
		assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
		assert.NotNil(t, env.Error.Details)
		cartUC.AssertNotCalled(t, "Checkout", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("anonymous request", func(t *testing.T) {
		e, _ := setupCartHandler(t, nil)

		rec, env := doJSON(t, e, http.MethodPost, "/api/v1/checkout", map[string]string{
			"shipping_address": "1 Main St",
			"payment_method":   "card",
		})

		requireStatus(t, rec, http.StatusUnauthorized)
		assert.Equal(t, "UNAUTHORIZED", env.Error.Code)
	})
}

func TestCartHandler_CartLines(t *testing.T) {
	productID := uuid.New()

	t.Run("add item returns the cart view", func(t *testing.T) {
		session := clientSession()
		e, cartUC := setupCartHandler(t, session)
		cart := entity.NewCart(session.UserID)
		cart.AddToCart(&entity.Product{ID: productID, Name: "Mug", Price: decimal.RequireFromString("4.50")})
		cart.AddToCart(&entity.Product{ID: productID, Name: "Mug", Price: decimal.RequireFromString("4.50")})
		cartUC.EXPECT().AddItem(mock.Anything, session, productID).Return(cart, nil)

		rec, env := doJSON(t, e, http.MethodPost, "/api/v1/cart/items", map[string]string{"product_id": productID.String()})

		requireStatus(t, rec, http.StatusOK)
		var got CartView
		decodeData(t, env, &got)
		assert.Equal(t, 2, got.Count)
		assert.True(t, got.Total.Equal(decimal.RequireFromString("9")))
	})

	t.Run("product not accessible", func(t *testing.T) {
		session := clientSession()
		e, cartUC := setupCartHandler(t, session)
		cartUC.EXPECT().AddItem(mock.Anything, session, productID).Return(nil, domainerrors.ErrProductNotAccessible)

		rec, _ := doJSON(t, e, http.MethodPost, "/api/v1/cart/items", map[string]string{"product_id": productID.String()})

		assert.Equal(t, domainerrors.ErrProductNotAccessible.HTTPCode(), rec.Code)
	})

	t.Run("negative quantity", func(t *testing.T) {
		e, _ := setupCartHandler(t, clientSession())

		rec, _ := doJSON(t, e, http.MethodPut, "/api/v1/cart/items/"+productID.String(), map[string]int{"quantity": -1})

		requireStatus(t, rec, http.StatusBadRequest)
	})

	t.Run("malformed product id", func(t *testing.T) {
		e, _ := setupCartHandler(t, clientSession())

		rec, env := doJSON(t, e, http.MethodPut, "/api/v1/cart/items/not-a-uuid", map[string]int{"quantity": 1})

		requireStatus(t, rec, http.StatusBadRequest)
		assert.Equal(t, "invalid productId", env.Error.Details)
	})

	t.Run("empty cart renders an empty list", func(t *testing.T) {
		session := clientSession()
		e, cartUC := setupCartHandler(t, session)
		cartUC.EXPECT().GetCart(mock.Anything, session).Return(&entity.Cart{UserID: session.UserID}, nil)

		rec, env := doJSON(t, e, http.MethodGet, "/api/v1/cart", nil)

		requireStatus(t, rec, http.StatusOK)
		assert.JSONEq(t, `{"items":[],"total":"0","count":0}`, string(env.Data))
	})
}

func TestCartHandler_GetOrder_NotOwner(t *testing.T) {
	session := clientSession()
	e, cartUC := setupCartHandler(t, session)
	orderID := uuid.New()
	cartUC.EXPECT().GetOrder(mock.Anything, session.UserID, orderID).Return(nil, domainerrors.ErrOrderNotFound)

	rec, env := doJSON(t, e, http.MethodGet, "/api/v1/orders/"+orderID.String(), nil)

	requireStatus(t, rec, http.StatusNotFound)
	assert.Equal(t, "ORDER_NOT_FOUND", env.Error.Code)
}
