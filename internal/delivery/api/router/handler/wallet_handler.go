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

// WalletHandlerParams holds dependencies for WalletHandler, injected by Fx.
type WalletHandlerParams struct {
	fx.In

	LedgerUC usecase.LedgerUsecase
}

// WalletHandler serves the balance and deposit/withdrawal requests.
type WalletHandler struct {
	ledgerUC usecase.LedgerUsecase
}

// NewWalletHandler is the constructor for WalletHandler.
func NewWalletHandler(params WalletHandlerParams) *WalletHandler {
	return &WalletHandler{ledgerUC: params.LedgerUC}
}

type AmountRequest struct {
	Amount decimal.Decimal `json:"amount" validate:"dgt=0"`
}

type WalletResponse struct {
	Balance      decimal.Decimal    `json:"balance"`
	Transactions []*TransactionView `json:"transactions"`
}

// GetWallet returns the balance with the transaction history.
func (h *WalletHandler) GetWallet(c echo.Context) error {
	session, err := sessionFrom(c)
	if err != nil {
		return err
	}

	wallet, err := h.ledgerUC.GetWallet(c.Request().Context(), session.UserID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, &WalletResponse{
		Balance:      wallet.Balance,
		Transactions: mapViews(wallet.Transactions, toTransactionView),
	})
}

// ListTransactions returns the caller's deposit and withdrawal requests.
func (h *WalletHandler) ListTransactions(c echo.Context) error {
	session, err := sessionFrom(c)
	if err != nil {
		return err
	}

	transactions, err := h.ledgerUC.ListTransactions(c.Request().Context(), session.UserID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.List(c, mapViews(transactions, toTransactionView))
}

// RequestDeposit files a pending deposit.
func (h *WalletHandler) RequestDeposit(c echo.Context) error {
	return h.request(c, h.ledgerUC.RequestDeposit)
}

// RequestWithdrawal files a pending withdrawal.
func (h *WalletHandler) RequestWithdrawal(c echo.Context) error {
	return h.request(c, h.ledgerUC.RequestWithdrawal)
}

func (h *WalletHandler) request(c echo.Context, file func(ctx context.Context, userID uuid.UUID, amount decimal.Decimal) (*entity.Transaction, error)) error {
	session, err := sessionFrom(c)
	if err != nil {
		return err
	}

	var req AmountRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	tx, err := file(c.Request().Context(), session.UserID, req.Amount)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toTransactionView(tx))
}
