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
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupWalletHandler(t *testing.T, session *entity.Session) (*echo.Echo, *mockUC.MockLedgerUsecase) {
	ledgerUC := mockUC.NewMockLedgerUsecase(t)
	h := NewWalletHandler(WalletHandlerParams{LedgerUC: ledgerUC})

	e := newTestEcho()
	g := e.Group("/api/v1/wallet", withSession(session))
	g.GET("", h.GetWallet)
	g.POST("/deposits", h.RequestDeposit)
	g.POST("/withdrawals", h.RequestWithdrawal)

	return e, ledgerUC
}

func TestWalletHandler_RequestDeposit(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		amount string
	}{
		{name: "string amount", body: `{"amount":"12.50"}`, amount: "12.50"},
		{name: "numeric amount", body: `{"amount":0.01}`, amount: "0.01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session := clientSession()
			e, ledgerUC := setupWalletHandler(t, session)
			amount := decimal.RequireFromString(tt.amount)
			ledgerUC.EXPECT().
				RequestDeposit(mock.Anything, session.UserID, mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(amount) })).
				Return(&entity.Transaction{ID: uuid.New(), Type: entity.TransactionTypeDeposit, Amount: amount, Status: entity.ReviewStatusPending}, nil)

			rec, env := doJSON(t, e, http.MethodPost, "/api/v1/wallet/deposits", tt.body)

			requireStatus(t, rec, http.StatusCreated)
			var got TransactionView
			decodeData(t, env, &got)
			assert.Equal(t, entity.ReviewStatusPending, got.Status)
			assert.True(t, got.Amount.Equal(amount))
		})
	}
}

func TestWalletHandler_RejectsNonPositiveAmounts(t *testing.T) {
	for _, body := range []string{`{"amount":"0"}`, `{"amount":"-5"}`, `{}`} {
		t.Run(body, func(t *testing.T) {
			e, ledgerUC := setupWalletHandler(t, clientSession())

			rec, env := doJSON(t, e, http.MethodPost, "/api/v1/wallet/withdrawals", body)

			requireStatus(t, rec, http.StatusBadRequest)
			assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
			ledgerUC.AssertNotCalled(t, "RequestWithdrawal", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestWalletHandler_Withdrawal_InsufficientBalance(t *testing.T) {
	session := clientSession()
	e, ledgerUC := setupWalletHandler(t, session)
	ledgerUC.EXPECT().RequestWithdrawal(mock.Anything, session.UserID, mock.Anything).Return(nil, domainerrors.ErrInsufficientBalance)

	rec, env := doJSON(t, e, http.MethodPost, "/api/v1/wallet/withdrawals", `{"amount":"150"}`)

	requireStatus(t, rec, http.StatusUnprocessableEntity)
	assert.Equal(t, "INSUFFICIENT_BALANCE", env.Error.Code)
}

func TestWalletHandler_GetWallet(t *testing.T) {
	session := clientSession()
	e, ledgerUC := setupWalletHandler(t, session)
	ledgerUC.EXPECT().GetWallet(mock.Anything, session.UserID).Return(&usecase.WalletOutput{
		Balance:      decimal.RequireFromString("100"),
		Transactions: []*entity.Transaction{{ID: uuid.New(), Type: entity.TransactionTypeDeposit, Amount: decimal.RequireFromString("100")}},
	}, nil)

	rec, env := doJSON(t, e, http.MethodGet, "/api/v1/wallet", nil)

	requireStatus(t, rec, http.StatusOK)
	var got WalletResponse
	decodeData(t, env, &got)
	assert.Equal(t, "100", got.Balance.String())
	assert.Len(t, got.Transactions, 1)
}
