package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	mockSvc "storefront/internal/mocks/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(maxActiveSessions int) *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost:          12,
			MaxActiveSessions:   maxActiveSessions,
			ProfileLoadAttempts: 3,
		},
		Cart:     &config.CartConfig{MaxLineQuantity: 5},
		Referral: &config.ReferralConfig{BonusAmount: "10.00", SignUpURL: "https://shop.example.com/register"},
		Storage:  &config.StorageConfig{MaxImageSize: 1024},
	}
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)

	return &d
}

// txRepos is a mocked repository factory whose accessors may or may not be used by a test.
type txRepos struct {
	factory        *mockRepo.MockRepositoryFactory
	users          *mockRepo.MockUserRepository
	auth           *mockRepo.MockAuthRepository
	refreshTokens  *mockRepo.MockRefreshTokenRepository
	categories     *mockRepo.MockCategoryRepository
	access         *mockRepo.MockCategoryAccessRepository
	accessRequests *mockRepo.MockAccessRequestRepository
	products       *mockRepo.MockProductRepository
	orders         *mockRepo.MockOrderRepository
	transactions   *mockRepo.MockTransactionRepository
	referrals      *mockRepo.MockReferralRepository
	banners        *mockRepo.MockBannerRepository
}

func newTxRepos(t *testing.T) *txRepos {
	r := &txRepos{
		factory:        mockRepo.NewMockRepositoryFactory(t),
		users:          mockRepo.NewMockUserRepository(t),
		auth:           mockRepo.NewMockAuthRepository(t),
		refreshTokens:  mockRepo.NewMockRefreshTokenRepository(t),
		categories:     mockRepo.NewMockCategoryRepository(t),
		access:         mockRepo.NewMockCategoryAccessRepository(t),
		accessRequests: mockRepo.NewMockAccessRequestRepository(t),
		products:       mockRepo.NewMockProductRepository(t),
		orders:         mockRepo.NewMockOrderRepository(t),
		transactions:   mockRepo.NewMockTransactionRepository(t),
		referrals:      mockRepo.NewMockReferralRepository(t),
		banners:        mockRepo.NewMockBannerRepository(t),
	}

	r.factory.EXPECT().UserRepo().Return(r.users).Maybe()
	r.factory.EXPECT().AuthRepo().Return(r.auth).Maybe()
	r.factory.EXPECT().RefreshTokenRepo().Return(r.refreshTokens).Maybe()
	r.factory.EXPECT().CategoryRepo().Return(r.categories).Maybe()
	r.factory.EXPECT().CategoryAccessRepo().Return(r.access).Maybe()
	r.factory.EXPECT().AccessRequestRepo().Return(r.accessRequests).Maybe()
	r.factory.EXPECT().ProductRepo().Return(r.products).Maybe()
	r.factory.EXPECT().OrderRepo().Return(r.orders).Maybe()
	r.factory.EXPECT().TransactionRepo().Return(r.transactions).Maybe()
	r.factory.EXPECT().ReferralRepo().Return(r.referrals).Maybe()
	r.factory.EXPECT().BannerRepo().Return(r.banners).Maybe()

	return r
}

// expectTx runs the transaction callback against the mocked factory and returns its error,
// the way the GORM transaction manager would commit or roll back.
func expectTx(txManager *mockRepo.MockTransactionManager, repos *txRepos) {
	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(repos.factory)
		})
}

// expectEvent asserts that exactly one event of the given type is published.
func expectEvent(publisher *mockSvc.MockEventPublisher, eventType entity.EventType) {
	publisher.EXPECT().
		Publish(mock.Anything, mock.MatchedBy(func(event *entity.DomainEvent) bool {
			return event.Type == eventType
		})).
		Return(nil).
		Once()
}
