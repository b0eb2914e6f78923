package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	mockSvc "storefront/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestReferralService(t *testing.T) (*referralService, *mockRepo.MockUserRepository, *mockRepo.MockReferralRepository, *mockSvc.MockQRCodeService) {
	userRepo := mockRepo.NewMockUserRepository(t)
	referralRepo := mockRepo.NewMockReferralRepository(t)
	qr := mockSvc.NewMockQRCodeService(t)

	svc := NewReferralService(ReferralServiceParams{
		UserRepo:     userRepo,
		ReferralRepo: referralRepo,
		QRCode:       qr,
		Config:       newTestConfig(0),
		Logger:       newDiscardLogger(),
	}).(*referralService)

	return svc, userRepo, referralRepo, qr
}

func TestReferralService_GetSummary(t *testing.T) {
	svc, userRepo, referralRepo, _ := createTestReferralService(t)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), ReferralCode: "abc12345"}

	userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	referralRepo.EXPECT().ListByReferrer(ctx, user.ID).Return([]*entity.Referral{
		{BonusAmount: dec("10.00"), Status: entity.ReferralStatusPending},
		{BonusAmount: dec("10.00"), Status: entity.ReferralStatusPaid},
		{BonusAmount: dec("5.50"), Status: entity.ReferralStatusPending},
	}, nil)

	summary, err := svc.GetSummary(ctx, user.ID)

	require.NoError(t, err)
	assert.Equal(t, "abc12345", summary.Code)
	assert.Equal(t, "https://shop.example.com/register?ref=abc12345", summary.Link)
	assert.True(t, summary.PendingTotal.Equal(dec("15.50")))
	assert.True(t, summary.PaidTotal.Equal(dec("10.00")))
	assert.Len(t, summary.Referrals, 3)
}

func TestReferralService_GenerateQRCode(t *testing.T) {
	ctx := context.Background()

	t.Run("encodes the sign-up link", func(t *testing.T) {
		svc, userRepo, _, qr := createTestReferralService(t)
		user := &entity.User{ID: uuid.New(), ReferralCode: "abc12345"}
		userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
		qr.EXPECT().GenerateReferralQR("https://shop.example.com/register?ref=abc12345").Return([]byte("png"), nil)

		png, err := svc.GenerateQRCode(ctx, user.ID)

		require.NoError(t, err)
		assert.Equal(t, []byte("png"), png)
	})

	t.Run("unknown user", func(t *testing.T) {
		svc, userRepo, _, _ := createTestReferralService(t)
		userID := uuid.New()
		userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

		_, err := svc.GenerateQRCode(ctx, userID)

		assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
	})
}
