package impl

import (
	"context"
	"log/slog"
	"net/url"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

type referralService struct {
	userRepo     repository.UserRepository
	referralRepo repository.ReferralRepository
	qrcode       service.QRCodeService
	signUpURL    string
	logger       *slog.Logger
}

// ReferralServiceParams holds dependencies for ReferralService, injected by Fx.
type ReferralServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	ReferralRepo repository.ReferralRepository
	QRCode       service.QRCodeService
	Config       *config.Config
	Logger       *slog.Logger
}

// NewReferralService creates the referral dashboard service.
func NewReferralService(params ReferralServiceParams) usecase.ReferralUsecase {
	signUpURL := ""
	if params.Config != nil && params.Config.Referral != nil {
		signUpURL = params.Config.Referral.SignUpURL
	}

	return &referralService{
		userRepo:     params.UserRepo,
		referralRepo: params.ReferralRepo,
		qrcode:       params.QRCode,
		signUpURL:    signUpURL,
		logger:       params.Logger,
	}
}

func (srv *referralService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *referralService) GetSummary(ctx context.Context, userID uuid.UUID) (*usecase.ReferralSummary, error) {
	user, err := findUser(ctx, srv.userRepo, userID)
	if err != nil {
		return nil, err
	}

	referrals, err := srv.referralRepo.ListByReferrer(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list referrals")
	}

	link, err := srv.referralLink(user.ReferralCode)
	if err != nil {
		return nil, err
	}

	summary := &usecase.ReferralSummary{
		Code:         user.ReferralCode,
		Link:         link,
		Referrals:    referrals,
		PendingTotal: decimal.Zero,
		PaidTotal:    decimal.Zero,
	}
	for _, referral := range referrals {
		switch referral.Status {
		case entity.ReferralStatusPaid:
			summary.PaidTotal = summary.PaidTotal.Add(referral.BonusAmount)
		case entity.ReferralStatusPending:
			summary.PendingTotal = summary.PendingTotal.Add(referral.BonusAmount)
		}
	}

	return summary, nil
}

// GenerateQRCode renders the user's sign-up link as a PNG.
func (srv *referralService) GenerateQRCode(ctx context.Context, userID uuid.UUID) ([]byte, error) {
	user, err := findUser(ctx, srv.userRepo, userID)
	if err != nil {
		return nil, err
	}

	link, err := srv.referralLink(user.ReferralCode)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrcode.GenerateReferralQR(link)
	if err != nil {
		srv.log(ctx).Error("Failed to render referral QR code", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate referral QR code")
	}

	return png, nil
}

func (srv *referralService) referralLink(code string) (string, error) {
	link, err := url.Parse(srv.signUpURL)
	if err != nil {
		return "", errors.Wrap(err, "invalid referral.signUpUrl")
	}

	query := link.Query()
	query.Set("ref", code)
	link.RawQuery = query.Encode()

	return link.String(), nil
}
