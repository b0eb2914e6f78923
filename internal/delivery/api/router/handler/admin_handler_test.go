package handler

import (
	"net/http"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockUC "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupAdminHandler(t *testing.T, session *entity.Session) (*echo.Echo, *mockUC.MockAdminUsecase) {
	adminUC := mockUC.NewMockAdminUsecase(t)
	h := NewAdminHandler(AdminHandlerParams{AdminUC: adminUC})

	e := newTestEcho()
	g := e.Group("/api/v1/admin", withSession(session))
	g.PUT("/users/:id/access", h.SetCategoryAccess)
	g.GET("/access-requests", h.ListAccessRequests)
	g.POST("/access-requests/:id/approve", h.ApproveAccessRequest)
	g.POST("/access-requests/:id/reject", h.RejectAccessRequest)
	g.POST("/transactions/:id/approve", h.ApproveTransaction)
	g.PUT("/orders/:id/status", h.UpdateOrderStatus)

	return e, adminUC
}

func TestAdminHandler_ReviewAccessRequest(t *testing.T) {
	requestID := uuid.New()

	t.Run("approve with a note", func(t *testing.T) {
		admin := adminSession()
		e, adminUC := setupAdminHandler(t, admin)
		adminUC.EXPECT().ApproveAccessRequest(mock.Anything, admin.UserID, requestID, "welcome").Return(&entity.AccessRequest{
			ID:        requestID,
			Category:  "premium",
			PricePaid: decimal.RequireFromString("30"),
			Status:    entity.ReviewStatusApproved,
			AdminNote: "welcome",
			IsCurrent: true,
		}, nil)

		rec, env := doJSON(t, e, http.MethodPost, "/api/v1/admin/access-requests/"+requestID.String()+"/approve", map[string]string{"note": "welcome"})

		requireStatus(t, rec, http.StatusOK)
		var got AccessRequestView
		decodeData(t, env, &got)
		assert.Equal(t, entity.ReviewStatusApproved, got.Status)
		assert.True(t, got.IsCurrent)
	})

	t.Run("reject without a body", func(t *testing.T) {
		admin := adminSession()
		e, adminUC := setupAdminHandler(t, admin)
		adminUC.EXPECT().RejectAccessRequest(mock.Anything, admin.UserID, requestID, "").
			Return(&entity.AccessRequest{ID: requestID, Status: entity.ReviewStatusRejected, PricePaid: decimal.RequireFromString("30")}, nil)

		rec, env := doJSON(t, e, http.MethodPost, "/api/v1/admin/access-requests/"+requestID.String()+"/reject", nil)

		requireStatus(t, rec, http.StatusOK)
		var got AccessRequestView
		decodeData(t, env, &got)
		assert.Equal(t, "30", got.PricePaid.String())
	})

	t.Run("already reviewed", func(t *testing.T) {
		admin := adminSession()
		e, adminUC := setupAdminHandler(t, admin)
		adminUC.EXPECT().ApproveAccessRequest(mock.Anything, admin.UserID, requestID, "").Return(nil, domainerrors.ErrAlreadyReviewed)

		rec, env := doJSON(t, e, http.MethodPost, "/api/v1/admin/access-requests/"+requestID.String()+"/approve", nil)

		requireStatus(t, rec, http.StatusConflict)
		assert.Equal(t, "ALREADY_REVIEWED", env.Error.Code)
	})
}

func TestAdminHandler_ListAccessRequests_Paging(t *testing.T) {
	e, adminUC := setupAdminHandler(t, adminSession())
	adminUC.EXPECT().
		ListAccessRequests(mock.Anything, entity.ReviewStatusPending, repository.Page{Offset: 20, Limit: maxPageLimit}).
		Return([]*entity.AccessRequest{{ID: uuid.New()}, {ID: uuid.New()}}, nil)

	rec, env := doJSON(t, e, http.MethodGet, "/api/v1/admin/access-requests?status=pending&offset=20&limit=1000", nil)

	requireStatus(t, rec, http.StatusOK)
	require.NotNil(t, env.Meta.Count)
	assert.Equal(t, 2, *env.Meta.Count)
}

func TestAdminHandler_ListAccessRequests_BadPage(t *testing.T) {
	e, _ := setupAdminHandler(t, adminSession())

	rec, _ := doJSON(t, e, http.MethodGet, "/api/v1/admin/access-requests?limit=-1", nil)

	requireStatus(t, rec, http.StatusBadRequest)
}

func TestAdminHandler_SetCategoryAccess(t *testing.T) {
	userID := uuid.New()

	t.Run("per-user price", func(t *testing.T) {
		e, adminUC := setupAdminHandler(t, adminSession())
		adminUC.EXPECT().
			SetCategoryAccess(mock.Anything, userID, mock.MatchedBy(func(in *usecase.SetCategoryAccessInput) bool {
				return in.Category == "premium" && in.Enabled && in.ProductLimit == 3 && in.Price.Equal(decimal.RequireFromString("19.99"))
			})).
			Return(&entity.CategoryAccess{Category: "premium", Enabled: true, ProductLimit: 3}, nil)

		rec, _ := doJSON(t, e, http.MethodPut, "/api/v1/admin/users/"+userID.String()+"/access",
			`{"category":"premium","enabled":true,"product_limit":3,"price":"19.99"}`)

		requireStatus(t, rec, http.StatusOK)
	})

	t.Run("rejects a negative price and a bad slug", func(t *testing.T) {
		e, _ := setupAdminHandler(t, adminSession())

		rec, _ := doJSON(t, e, http.MethodPut, "/api/v1/admin/users/"+userID.String()+"/access",
			`{"category":"Premium Goods","enabled":true,"price":"-1"}`)

		requireStatus(t, rec, http.StatusBadRequest)
		assert.Contains(t, rec.Body.String(), `"field":"category"`)
		assert.Contains(t, rec.Body.String(), `"field":"price"`)
	})
}

func TestAdminHandler_ApproveTransaction_Uncovered(t *testing.T) {
	admin := adminSession()
	e, adminUC := setupAdminHandler(t, admin)
	txID := uuid.New()
	adminUC.EXPECT().ApproveTransaction(mock.Anything, admin.UserID, txID).Return(nil, domainerrors.ErrInsufficientBalance)

	rec, _ := doJSON(t, e, http.MethodPost, "/api/v1/admin/transactions/"+txID.String()+"/approve", nil)

	requireStatus(t, rec, http.StatusUnprocessableEntity)
}

func TestAdminHandler_UpdateOrderStatus(t *testing.T) {
	orderID := uuid.New()

	t.Run("invalid transition", func(t *testing.T) {
		e, adminUC := setupAdminHandler(t, adminSession())
		adminUC.EXPECT().UpdateOrderStatus(mock.Anything, orderID, entity.OrderStatusPending).
			Return(nil, domainerrors.ErrInvalidStatusTransition.WithDetails("completed -> pending"))

		rec, env := doJSON(t, e, http.MethodPut, "/api/v1/admin/orders/"+orderID.String()+"/status", map[string]string{"status": "pending"})

		assert.Equal(t, domainerrors.ErrInvalidStatusTransition.HTTPCode(), rec.Code)
		assert.Equal(t, "completed -> pending", env.Error.Details)
	})

	t.Run("unknown status", func(t *testing.T) {
		e, _ := setupAdminHandler(t, adminSession())

		rec, _ := doJSON(t, e, http.MethodPut, "/api/v1/admin/orders/"+orderID.String()+"/status", map[string]string{"status": "shipped"})

		requireStatus(t, rec, http.StatusBadRequest)
	})
}
