package handler

import (
	"net/http"

	"storefront/internal/delivery/api/response"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// CartHandlerParams holds dependencies for CartHandler, injected by Fx.
type CartHandlerParams struct {
	fx.In

	CartUC usecase.CartUsecase
}

// CartHandler serves the cart, checkout and order history.
type CartHandler struct {
	cartUC usecase.CartUsecase
}

// NewCartHandler is the constructor for CartHandler.
func NewCartHandler(params CartHandlerParams) *CartHandler {
	return &CartHandler{cartUC: params.CartUC}
}

type AddCartItemRequest struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" validate:"gte=0"`
}

type CheckoutRequest struct {
	ShippingAddress string               `json:"shipping_address" validate:"required,max=500"`
	PaymentMethod   entity.PaymentMethod `json:"payment_method" validate:"required,oneof=balance card cash"`
}

// GetCart returns the caller's cart.
func (h *CartHandler) GetCart(c echo.Context) error {
	session, err := sessionFrom(c)
	if err != nil {
		return err
	}

	cart, err := h.cartUC.GetCart(c.Request().Context(), session)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toCartView(cart))
}

// AddItem adds one unit of a product.
func (h *CartHandler) AddItem(c echo.Context) error {
	session, err := sessionFrom(c)
	if err != nil {
		return err
	}

	var req AddCartItemRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	cart, err := h.cartUC.AddItem(c.Request().Context(), session, req.ProductID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toCartView(cart))
}

// UpdateQuantity sets a line's quantity; zero removes the line.
func (h *CartHandler) UpdateQuantity(c echo.Context) error {
	session, err := sessionFrom(c)
	if err != nil {
		return err
	}
	productID, err := uuidParam(c, "productId")
	if err != nil {
		return err
	}

	var req UpdateCartItemRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	cart, err := h.cartUC.UpdateQuantity(c.Request().Context(), session, productID, req.Quantity)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toCartView(cart))
}

// RemoveItem drops a line from the cart.
func (h *CartHandler) RemoveItem(c echo.Context) error {
	session, err := sessionFrom(c)
	if err != nil {
		return err
	}
	productID, err := uuidParam(c, "productId")
	if err != nil {
		return err
	}

	cart, err := h.cartUC.RemoveItem(c.Request().Context(), session, productID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toCartView(cart))
}

// Clear empties the cart.
func (h *CartHandler) Clear(c echo.Context) error {
	session, err := sessionFrom(c)
	if err != nil {
		return err
	}

	if err := h.cartUC.Clear(c.Request().Context(), session); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// Checkout places an order from the cart.
func (h *CartHandler) Checkout(c echo.Context) error {
	session, err := sessionFrom(c)
	if err != nil {
		return err
	}

	var req CheckoutRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	order, err := h.cartUC.Checkout(c.Request().Context(), session, &usecase.CheckoutInput{
		ShippingAddress: req.ShippingAddress,
		PaymentMethod:   req.PaymentMethod,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toOrderView(order))
}

// ListOrders returns the caller's orders, newest first.
func (h *CartHandler) ListOrders(c echo.Context) error {
	session, err := sessionFrom(c)
	if err != nil {
		return err
	}

	orders, err := h.cartUC.ListOrders(c.Request().Context(), session.UserID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.List(c, mapViews(orders, toOrderView))
}

// GetOrder returns one of the caller's orders.
func (h *CartHandler) GetOrder(c echo.Context) error {
	session, err := sessionFrom(c)
	if err != nil {
		return err
	}
	orderID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	order, err := h.cartUC.GetOrder(c.Request().Context(), session.UserID, orderID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toOrderView(order))
}
