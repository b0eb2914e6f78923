package handler

import (
	"context"
	"net/http"

	"storefront/internal/delivery/api/response"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// AdminHandlerParams holds dependencies for AdminHandler, injected by Fx.
type AdminHandlerParams struct {
	fx.In

	AdminUC usecase.AdminUsecase
}

// AdminHandler serves the back-office review queues and user access overrides.
type AdminHandler struct {
	adminUC usecase.AdminUsecase
}

// NewAdminHandler is the constructor for AdminHandler.
func NewAdminHandler(params AdminHandlerParams) *AdminHandler {
	return &AdminHandler{adminUC: params.AdminUC}
}

type SetCategoryAccessRequest struct {
	Category     string           `json:"category" validate:"required,slug"`
	Enabled      bool             `json:"enabled"`
	ProductLimit int              `json:"product_limit" validate:"gte=0"`
	Price        *decimal.Decimal `json:"price" validate:"omitempty,dgte=0"`
}

type ReviewRequest struct {
	Note string `json:"note" validate:"max=500"`
}

type UpdateOrderStatusRequest struct {
	Status entity.OrderStatus `json:"status" validate:"required,oneof=pending processing completed cancelled"`
}

type UserAccessResponse struct {
	User     *UserView             `json:"user"`
	Access   []*CategoryAccessView `json:"access"`
	Requests []*AccessRequestView  `json:"requests"`
}

// ListUsers handles GET /admin/users.
func (h *AdminHandler) ListUsers(c echo.Context) error {
	page, err := pageQuery(c)
	if err != nil {
		return err
	}

	users, err := h.adminUC.ListUsers(c.Request().Context(), page)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.List(c, mapViews(users, toUserView))
}

// GetUserAccess returns a user's gate rows and access requests.
func (h *AdminHandler) GetUserAccess(c echo.Context) error {
	userID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	output, err := h.adminUC.GetUserAccess(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, &UserAccessResponse{
		User:     toUserView(output.User),
		Access:   mapViews(output.Access, toCategoryAccessView),
		Requests: mapViews(output.Requests, toAccessRequestView),
	})
}

// SetCategoryAccess overrides one (user, category) gate.
func (h *AdminHandler) SetCategoryAccess(c echo.Context) error {
	userID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	var req SetCategoryAccessRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	access, err := h.adminUC.SetCategoryAccess(c.Request().Context(), userID, &usecase.SetCategoryAccessInput{
		Category:     req.Category,
		Enabled:      req.Enabled,
		ProductLimit: req.ProductLimit,
		Price:        req.Price,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toCategoryAccessView(access))
}

// ListAccessRequests handles GET /admin/access-requests?status=.
func (h *AdminHandler) ListAccessRequests(c echo.Context) error {
	page, err := pageQuery(c)
	if err != nil {
		return err
	}

	requests, err := h.adminUC.ListAccessRequests(c.Request().Context(), entity.ReviewStatus(c.QueryParam("status")), page)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.List(c, mapViews(requests, toAccessRequestView))
}

// ApproveAccessRequest grants the category to the requester.
func (h *AdminHandler) ApproveAccessRequest(c echo.Context) error {
	return h.reviewAccessRequest(c, h.adminUC.ApproveAccessRequest)
}

// RejectAccessRequest closes the request. The price paid is kept.
func (h *AdminHandler) RejectAccessRequest(c echo.Context) error {
	return h.reviewAccessRequest(c, h.adminUC.RejectAccessRequest)
}

func (h *AdminHandler) reviewAccessRequest(c echo.Context, review func(ctx context.Context, adminID, requestID uuid.UUID, note string) (*entity.AccessRequest, error)) error {
	admin, err := sessionFrom(c)
	if err != nil {
		return err
	}
	requestID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	var req ReviewRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	request, err := review(c.Request().Context(), admin.UserID, requestID, req.Note)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toAccessRequestView(request))
}

// ListTransactions handles GET /admin/transactions?status=.
func (h *AdminHandler) ListTransactions(c echo.Context) error {
	page, err := pageQuery(c)
	if err != nil {
		return err
	}

	transactions, err := h.adminUC.ListTransactions(c.Request().Context(), entity.ReviewStatus(c.QueryParam("status")), page)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.List(c, mapViews(transactions, toTransactionView))
}

// ApproveTransaction applies a pending deposit or withdrawal to the balance.
func (h *AdminHandler) ApproveTransaction(c echo.Context) error {
	admin, err := sessionFrom(c)
	if err != nil {
		return err
	}
	transactionID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	tx, err := h.adminUC.ApproveTransaction(c.Request().Context(), admin.UserID, transactionID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toTransactionView(tx))
}

// RejectTransaction closes a pending transaction without touching the balance.
func (h *AdminHandler) RejectTransaction(c echo.Context) error {
	admin, err := sessionFrom(c)
	if err != nil {
		return err
	}
	transactionID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	var req ReviewRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	tx, err := h.adminUC.RejectTransaction(c.Request().Context(), admin.UserID, transactionID, req.Note)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toTransactionView(tx))
}

// ListOrders handles GET /admin/orders?status=.
func (h *AdminHandler) ListOrders(c echo.Context) error {
	page, err := pageQuery(c)
	if err != nil {
		return err
	}

	orders, err := h.adminUC.ListOrders(c.Request().Context(), entity.OrderStatus(c.QueryParam("status")), page)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.List(c, mapViews(orders, toOrderView))
}

// UpdateOrderStatus moves an order along its lifecycle.
func (h *AdminHandler) UpdateOrderStatus(c echo.Context) error {
	orderID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	var req UpdateOrderStatusRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	order, err := h.adminUC.UpdateOrderStatus(c.Request().Context(), orderID, req.Status)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toOrderView(order))
}

// ListReferrals handles GET /admin/referrals?status=.
func (h *AdminHandler) ListReferrals(c echo.Context) error {
	page, err := pageQuery(c)
	if err != nil {
		return err
	}

	referrals, err := h.adminUC.ListReferrals(c.Request().Context(), entity.ReferralStatus(c.QueryParam("status")), page)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.List(c, mapViews(referrals, toReferralView))
}

// PayReferral credits the referrer's bonus.
func (h *AdminHandler) PayReferral(c echo.Context) error {
	referralID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	referral, err := h.adminUC.PayReferral(c.Request().Context(), referralID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toReferralView(referral))
}
