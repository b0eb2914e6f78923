package impl

import (
	"context"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	mockRepo "storefront/internal/mocks/repository"
	mockSvc "storefront/internal/mocks/service"
	mockUC "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type userServiceFixtures struct {
	service          *userService
	txManager        *mockRepo.MockTransactionManager
	repos            *txRepos
	authRepo         *mockRepo.MockAuthRepository
	refreshTokenRepo *mockRepo.MockRefreshTokenRepository
	hasher           *mockSvc.MockPasswordHasher
	tokenService     *mockSvc.MockTokenService
	codeGenerator    *mockSvc.MockReferralCodeGenerator
	profile          *mockUC.MockProfileUsecase
	publisher        *mockSvc.MockEventPublisher
}

func createTestUserService(t *testing.T, maxActiveSessions int) *userServiceFixtures {
	fx := &userServiceFixtures{
		txManager:        mockRepo.NewMockTransactionManager(t),
		repos:            newTxRepos(t),
		authRepo:         mockRepo.NewMockAuthRepository(t),
		refreshTokenRepo: mockRepo.NewMockRefreshTokenRepository(t),
		hasher:           mockSvc.NewMockPasswordHasher(t),
		tokenService:     mockSvc.NewMockTokenService(t),
		codeGenerator:    mockSvc.NewMockReferralCodeGenerator(t),
		profile:          mockUC.NewMockProfileUsecase(t),
		publisher:        mockSvc.NewMockEventPublisher(t),
	}
	fx.service = NewUserService(UserServiceParams{
		TxManager:        fx.txManager,
		AuthRepo:         fx.authRepo,
		RefreshTokenRepo: fx.refreshTokenRepo,
		Hasher:           fx.hasher,
		TokenService:     fx.tokenService,
		CodeGenerator:    fx.codeGenerator,
		Profile:          fx.profile,
		Publisher:        fx.publisher,
		Config:           newTestConfig(maxActiveSessions),
		Logger:           newDiscardLogger(),
	}).(*userService)

	return fx
}

func TestUserService_RegisterUser_WithReferral(t *testing.T) {
	fx := createTestUserService(t, 0)
	ctx := context.Background()
	referrer := &entity.User{ID: uuid.New(), ReferralCode: "friend01"}

	fx.hasher.EXPECT().ValidatePasswordStrength("Secr3t!pass").Return(nil)
	fx.hasher.EXPECT().Hash("Secr3t!pass").Return("hashed", nil)
	expectTx(fx.txManager, fx.repos)
	fx.repos.auth.EXPECT().FindAuthentication(ctx, entity.ProviderTypeEmail, "new@example.com").Return(nil, repository.ErrAuthNotFound)
	fx.repos.users.EXPECT().FindByReferralCode(ctx, "friend01").Return(referrer, nil)
	fx.codeGenerator.EXPECT().Generate().Return("taken001", nil).Once()
	fx.repos.users.EXPECT().FindByReferralCode(ctx, "taken001").Return(&entity.User{ID: uuid.New()}, nil)
	fx.codeGenerator.EXPECT().Generate().Return("fresh001", nil).Once()
	fx.repos.users.EXPECT().FindByReferralCode(ctx, "fresh001").Return(nil, repository.ErrUserNotFound)

	var created *entity.User
	fx.repos.users.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, user *entity.User) {
			user.ID = uuid.New()
			created = user
		}).
		Return(nil)
	fx.repos.auth.EXPECT().
		CreateAuthentication(ctx, mock.MatchedBy(func(auth *entity.Authentication) bool {
			return auth.PasswordHash == "hashed" && auth.ProviderUserID == "new@example.com"
		})).
		Return(nil)
	expectEvent(fx.publisher, entity.EventUserRegistered)

	out, err := fx.service.RegisterUser(ctx, &usecase.RegisterUserInput{
		Email:        "  New@Example.com ",
		Username:     "newbie",
		Password:     "Secr3t!pass",
		ReferralCode: " FRIEND01 ",
	})

	require.NoError(t, err)
	assert.Equal(t, created, out.User)
	assert.Equal(t, entity.RoleClient, out.User.Role)
	assert.True(t, out.User.Balance.IsZero())
	assert.Equal(t, "fresh001", out.User.ReferralCode)
	require.NotNil(t, out.User.ReferredBy)
	assert.Equal(t, referrer.ID, *out.User.ReferredBy)
}

func TestUserService_RegisterUser_Failures(t *testing.T) {
	ctx := context.Background()

	t.Run("weak password", func(t *testing.T) {
		fx := createTestUserService(t, 0)
		fx.hasher.EXPECT().ValidatePasswordStrength("short").Return(domainerrors.ErrPasswordStrength)

		_, err := fx.service.RegisterUser(ctx, &usecase.RegisterUserInput{Email: "a@example.com", Password: "short"})

		assert.True(t, errors.Is(err, domainerrors.ErrPasswordStrength))
		fx.hasher.AssertNotCalled(t, "Hash", mock.Anything)
	})

	t.Run("email taken", func(t *testing.T) {
		fx := createTestUserService(t, 0)
		fx.hasher.EXPECT().ValidatePasswordStrength(mock.Anything).Return(nil)
		fx.hasher.EXPECT().Hash(mock.Anything).Return("hashed", nil)
		expectTx(fx.txManager, fx.repos)
		fx.repos.auth.EXPECT().FindAuthentication(ctx, entity.ProviderTypeEmail, "a@example.com").
			Return(&entity.Authentication{UserID: uuid.New()}, nil)

		_, err := fx.service.RegisterUser(ctx, &usecase.RegisterUserInput{Email: "a@example.com", Password: "Secr3t!pass"})

		assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
		fx.repos.users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("unknown referral code", func(t *testing.T) {
		fx := createTestUserService(t, 0)
		fx.hasher.EXPECT().ValidatePasswordStrength(mock.Anything).Return(nil)
		fx.hasher.EXPECT().Hash(mock.Anything).Return("hashed", nil)
		expectTx(fx.txManager, fx.repos)
		fx.repos.auth.EXPECT().FindAuthentication(ctx, entity.ProviderTypeEmail, "a@example.com").Return(nil, repository.ErrAuthNotFound)
		fx.repos.users.EXPECT().FindByReferralCode(ctx, "nobody").Return(nil, repository.ErrUserNotFound)

		_, err := fx.service.RegisterUser(ctx, &usecase.RegisterUserInput{
			Email:        "a@example.com",
			Password:     "Secr3t!pass",
			ReferralCode: "nobody",
		})

		assert.True(t, errors.Is(err, domainerrors.ErrInvalidReferralCode))
	})
}

func (fx *userServiceFixtures) expectCredentials(ctx context.Context, email string, userID uuid.UUID, passwordOK bool) {
	fx.authRepo.EXPECT().FindAuthentication(ctx, entity.ProviderTypeEmail, email).
		Return(&entity.Authentication{UserID: userID, PasswordHash: "hashed"}, nil)
	fx.hasher.EXPECT().Check("Secr3t!pass", "hashed").Return(passwordOK)
}

func TestUserService_Login_Success(t *testing.T) {
	fx := createTestUserService(t, 0)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "a@example.com", Role: entity.RoleAdmin}

	fx.expectCredentials(ctx, "a@example.com", user.ID, true)
	fx.profile.EXPECT().LoadSessionProfile(ctx, user.ID).
		Return(&usecase.ProfileLoadResult{Status: usecase.ProfileLoadFound, User: user, Attempts: 1}, nil)
	fx.tokenService.EXPECT().GenerateTokens(user.ID, []string{"admin"}).Return("access", "refresh", nil)
	fx.tokenService.EXPECT().HashToken("refresh").Return("refresh-hash")
	fx.tokenService.EXPECT().GetRefreshTokenDuration().Return(time.Hour)
	fx.refreshTokenRepo.EXPECT().
		CreateRefreshToken(ctx, mock.MatchedBy(func(token *entity.RefreshToken) bool {
			return token.UserID == user.ID && token.TokenHash == "refresh-hash" && token.DeviceInfo == "ios"
		})).
		Return(nil)
	expectEvent(fx.publisher, entity.EventSessionSignedIn)

	out, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "A@example.com", Password: "Secr3t!pass", DeviceInfo: "ios"})

	require.NoError(t, err)
	assert.Equal(t, "access", out.AccessToken)
	assert.Equal(t, "refresh", out.RefreshToken)
	assert.Equal(t, user, out.User)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	fx := createTestUserService(t, 0)
	ctx := context.Background()

	fx.expectCredentials(ctx, "a@example.com", uuid.New(), false)

	_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "a@example.com", Password: "Secr3t!pass"})

	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	fx := createTestUserService(t, 0)
	ctx := context.Background()

	fx.authRepo.EXPECT().FindAuthentication(ctx, entity.ProviderTypeEmail, "ghost@example.com").Return(nil, repository.ErrAuthNotFound)

	_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "ghost@example.com", Password: "x"})

	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestUserService_Login_ProfileNeverAppears(t *testing.T) {
	tests := []struct {
		name     string
		loadErr  error
		wantErr  error
		upstream bool
	}{
		{name: "profile row missing", loadErr: domainerrors.ErrRecordNotFound, wantErr: domainerrors.ErrUnauthorized},
		{name: "store unavailable", loadErr: domainerrors.NewUpstreamError(errors.New("timeout"), "find user"), upstream: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestUserService(t, 0)
			ctx := context.Background()
			userID := uuid.New()

			fx.expectCredentials(ctx, "a@example.com", userID, true)
			fx.profile.EXPECT().LoadSessionProfile(ctx, userID).Return(&usecase.ProfileLoadResult{
				Status:   usecase.ProfileLoadNotFoundTerminal,
				Attempts: 3,
				Err:      tt.loadErr,
			}, nil)

			out, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "a@example.com", Password: "Secr3t!pass"})

			assert.Nil(t, out)
			if tt.upstream {
				assert.True(t, domainerrors.IsUpstreamUnavailable(err))
			} else {
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
			}
			fx.tokenService.AssertNotCalled(t, "GenerateTokens", mock.Anything, mock.Anything)
		})
	}
}

func TestUserService_Login_SessionLimitRevokesOldest(t *testing.T) {
	fx := createTestUserService(t, 2)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Role: entity.RoleClient}
	oldest := &entity.RefreshToken{ID: uuid.New(), UserID: user.ID}
	newer := &entity.RefreshToken{ID: uuid.New(), UserID: user.ID}

	fx.expectCredentials(ctx, "a@example.com", user.ID, true)
	fx.profile.EXPECT().LoadSessionProfile(ctx, user.ID).
		Return(&usecase.ProfileLoadResult{Status: usecase.ProfileLoadFound, User: user, Attempts: 1}, nil)
	fx.tokenService.EXPECT().GenerateTokens(user.ID, []string{"client"}).Return("access", "refresh", nil)
	fx.tokenService.EXPECT().HashToken("refresh").Return("refresh-hash")
	fx.tokenService.EXPECT().GetRefreshTokenDuration().Return(time.Hour)
	expectTx(fx.txManager, fx.repos)
	fx.repos.users.EXPECT().AcquireSessionMutex(ctx, user.ID).Return(nil)
	fx.repos.refreshTokens.EXPECT().FindRefreshTokensByUserID(ctx, user.ID).Return([]*entity.RefreshToken{oldest, newer}, nil)
	fx.repos.refreshTokens.EXPECT().DeleteRefreshToken(ctx, oldest.ID).Return(nil).Once()
	fx.repos.refreshTokens.EXPECT().CreateRefreshToken(ctx, mock.AnythingOfType("*entity.RefreshToken")).Return(nil)
	expectEvent(fx.publisher, entity.EventSessionSignedIn)

	_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "a@example.com", Password: "Secr3t!pass"})

	require.NoError(t, err)
	fx.repos.refreshTokens.AssertNotCalled(t, "DeleteRefreshToken", ctx, newer.ID)
}

func TestUserService_RefreshToken(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("issues a new access token", func(t *testing.T) {
		fx := createTestUserService(t, 0)
		fx.tokenService.EXPECT().ValidateRefreshToken("refresh").Return(&service.Claims{UserID: userID}, nil)
		fx.tokenService.EXPECT().HashToken("refresh").Return("refresh-hash")
		expectTx(fx.txManager, fx.repos)
		fx.repos.refreshTokens.EXPECT().FindRefreshTokenByHash(ctx, "refresh-hash").Return(&entity.RefreshToken{UserID: userID}, nil)
		fx.repos.users.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID, Role: entity.RoleClient}, nil)
		fx.tokenService.EXPECT().GenerateTokens(userID, []string{"client"}).Return("access-2", "unused", nil)

		out, err := fx.service.RefreshToken(ctx, &usecase.RefreshTokenInput{RefreshToken: "refresh"})

		require.NoError(t, err)
		assert.Equal(t, "access-2", out.AccessToken)
	})

	t.Run("revoked session", func(t *testing.T) {
		fx := createTestUserService(t, 0)
		fx.tokenService.EXPECT().ValidateRefreshToken("refresh").Return(&service.Claims{UserID: userID}, nil)
		fx.tokenService.EXPECT().HashToken("refresh").Return("refresh-hash")
		expectTx(fx.txManager, fx.repos)
		fx.repos.refreshTokens.EXPECT().FindRefreshTokenByHash(ctx, "refresh-hash").Return(nil, repository.ErrRefreshTokenNotFound)

		_, err := fx.service.RefreshToken(ctx, &usecase.RefreshTokenInput{RefreshToken: "refresh"})

		assert.True(t, errors.Is(err, domainerrors.ErrRefreshTokenInvalid))
	})

	t.Run("token of another user", func(t *testing.T) {
		fx := createTestUserService(t, 0)
		fx.tokenService.EXPECT().ValidateRefreshToken("refresh").Return(&service.Claims{UserID: userID}, nil)
		fx.tokenService.EXPECT().HashToken("refresh").Return("refresh-hash")
		expectTx(fx.txManager, fx.repos)
		fx.repos.refreshTokens.EXPECT().FindRefreshTokenByHash(ctx, "refresh-hash").Return(&entity.RefreshToken{UserID: uuid.New()}, nil)

		_, err := fx.service.RefreshToken(ctx, &usecase.RefreshTokenInput{RefreshToken: "refresh"})

		assert.True(t, errors.Is(err, domainerrors.ErrRefreshTokenInvalid))
	})

	t.Run("bad signature", func(t *testing.T) {
		fx := createTestUserService(t, 0)
		fx.tokenService.EXPECT().ValidateRefreshToken("forged").Return(nil, errors.New("signature is invalid"))

		_, err := fx.service.RefreshToken(ctx, &usecase.RefreshTokenInput{RefreshToken: "forged"})

		assert.True(t, errors.Is(err, domainerrors.ErrRefreshTokenInvalid))
	})
}

func TestUserService_Logout(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown token is not an error", func(t *testing.T) {
		fx := createTestUserService(t, 0)
		fx.tokenService.EXPECT().ValidateRefreshToken("stale").Return(nil, errors.New("token is expired"))
		fx.tokenService.EXPECT().HashToken("stale").Return("stale-hash")
		fx.refreshTokenRepo.EXPECT().DeleteRefreshTokenByHash(ctx, "stale-hash").Return(repository.ErrRefreshTokenNotFound)

		require.NoError(t, fx.service.Logout(ctx, &usecase.LogoutInput{RefreshToken: "stale"}))
		fx.publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
	})

	t.Run("valid token emits sign-out", func(t *testing.T) {
		fx := createTestUserService(t, 0)
		fx.tokenService.EXPECT().ValidateRefreshToken("refresh").Return(&service.Claims{UserID: uuid.New()}, nil)
		fx.tokenService.EXPECT().HashToken("refresh").Return("refresh-hash")
		fx.refreshTokenRepo.EXPECT().DeleteRefreshTokenByHash(ctx, "refresh-hash").Return(nil)
		expectEvent(fx.publisher, entity.EventSessionSignedOut)

		require.NoError(t, fx.service.Logout(ctx, &usecase.LogoutInput{RefreshToken: "refresh"}))
	})
}

func TestUserService_LogoutAllDevices(t *testing.T) {
	fx := createTestUserService(t, 0)
	ctx := context.Background()
	userID := uuid.New()

	fx.refreshTokenRepo.EXPECT().DeleteRefreshTokensByUserID(ctx, userID).Return(nil)
	expectEvent(fx.publisher, entity.EventSessionSignedOut)

	require.NoError(t, fx.service.LogoutAllDevices(ctx, userID))
}
