package handler

import (
	"net/http"

	"storefront/internal/delivery/api/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// ReferralHandlerParams holds dependencies for ReferralHandler, injected by Fx.
type ReferralHandlerParams struct {
	fx.In

	ReferralUC usecase.ReferralUsecase
}

// ReferralHandler serves the caller's referral dashboard.
type ReferralHandler struct {
	referralUC usecase.ReferralUsecase
}

// NewReferralHandler is the constructor for ReferralHandler.
func NewReferralHandler(params ReferralHandlerParams) *ReferralHandler {
	return &ReferralHandler{referralUC: params.ReferralUC}
}

type ReferralSummaryResponse struct {
	Code         string          `json:"code"`
	Link         string          `json:"link"`
	PendingTotal decimal.Decimal `json:"pending_total"`
	PaidTotal    decimal.Decimal `json:"paid_total"`
	Referrals    []*ReferralView `json:"referrals"`
}

// GetSummary returns the referral code, link and earnings.
func (h *ReferralHandler) GetSummary(c echo.Context) error {
	session, err := sessionFrom(c)
	if err != nil {
		return err
	}

	summary, err := h.referralUC.GetSummary(c.Request().Context(), session.UserID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, &ReferralSummaryResponse{
		Code:         summary.Code,
		Link:         summary.Link,
		PendingTotal: summary.PendingTotal,
		PaidTotal:    summary.PaidTotal,
		Referrals:    mapViews(summary.Referrals, toReferralView),
	})
}

// QRCode renders the sign-up link as a PNG.
func (h *ReferralHandler) QRCode(c echo.Context) error {
	session, err := sessionFrom(c)
	if err != nil {
		return err
	}

	png, err := h.referralUC.GenerateQRCode(c.Request().Context(), session.UserID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
