package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

const maxReferralCodeAttempts = 5

// userService implements the UserUsecase interface.
type userService struct {
	txManager         repository.TransactionManager
	authRepo          repository.AuthRepository
	refreshTokenRepo  repository.RefreshTokenRepository
	hasher            service.PasswordHasher
	tokenService      service.TokenService
	codeGenerator     service.ReferralCodeGenerator
	profile           usecase.ProfileUsecase
	events            eventEmitter
	maxActiveSessions int
	logger            *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	AuthRepo         repository.AuthRepository
	RefreshTokenRepo repository.RefreshTokenRepository
	Hasher           service.PasswordHasher
	TokenService     service.TokenService
	CodeGenerator    service.ReferralCodeGenerator
	Profile          usecase.ProfileUsecase
	Publisher        service.EventPublisher
	Config           *config.Config
	Logger           *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	maxActiveSessions := 0
	if params.Config != nil && params.Config.Auth != nil {
		maxActiveSessions = params.Config.Auth.MaxActiveSessions
	}

	return &userService{
		txManager:         params.TxManager,
		authRepo:          params.AuthRepo,
		refreshTokenRepo:  params.RefreshTokenRepo,
		hasher:            params.Hasher,
		tokenService:      params.TokenService,
		codeGenerator:     params.CodeGenerator,
		profile:           params.Profile,
		events:            newEventEmitter(params.Publisher, params.Logger),
		maxActiveSessions: maxActiveSessions,
		logger:            params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterUser creates a client account with an email credential.
func (srv *userService) RegisterUser(ctx context.Context, input *usecase.RegisterUserInput) (*usecase.RegisterOutput, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	srv.log(ctx).Info("Starting registration", slog.String("email", email))

	// Hashing is CPU-bound, keep it outside the transaction.
	if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
		srv.log(ctx).Warn("Password validation failed during registration", slog.String("email", email), slog.Any("error", err))

		return nil, err
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	var registeredUser *entity.User
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		authRepo := repoFactory.AuthRepo()

		_, err := authRepo.FindAuthentication(ctx, entity.ProviderTypeEmail, email)
		if err == nil {
			return domainerrors.ErrUserAlreadyExists
		}
		if !errors.Is(err, repository.ErrAuthNotFound) {
			return errors.Wrap(err, "failed to find authentication")
		}

		referredBy, err := srv.resolveReferrer(ctx, userRepo, input.ReferralCode)
		if err != nil {
			return err
		}

		code, err := srv.newReferralCode(ctx, userRepo)
		if err != nil {
			return err
		}

		newUser := &entity.User{
			Email:        email,
			Username:     strings.TrimSpace(input.Username),
			Role:         entity.RoleClient,
			Balance:      decimal.Zero,
			ReferralCode: code,
			ReferredBy:   referredBy,
		}
		if err := userRepo.Create(ctx, newUser); err != nil {
			return errors.Wrap(err, "failed to create user during registration")
		}

		newAuth := &entity.Authentication{
			UserID:         newUser.ID,
			Provider:       entity.ProviderTypeEmail,
			ProviderUserID: email,
			PasswordHash:   hashedPassword,
		}
		if err := authRepo.CreateAuthentication(ctx, newAuth); err != nil {
			return errors.Wrap(err, "failed to create authentication during registration")
		}

		registeredUser = newUser

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute registration transaction", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute user registration transaction")
	}

	srv.events.emit(ctx, entity.EventUserRegistered, registeredUser.ID, registeredUser.ID.String(), nil)
	srv.log(ctx).Debug("Registration completed", slog.Any("userID", registeredUser.ID))

	return &usecase.RegisterOutput{User: registeredUser}, nil
}

func (srv *userService) resolveReferrer(ctx context.Context, userRepo repository.UserRepository, code string) (*uuid.UUID, error) {
	code = strings.ToLower(strings.TrimSpace(code))
	if code == "" {
		return nil, nil
	}

	referrer, err := userRepo.FindByReferralCode(ctx, code)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidReferralCode
		}

		return nil, errors.Wrap(err, "failed to resolve referral code")
	}

	return &referrer.ID, nil
}

// newReferralCode draws codes until one is unused.
func (srv *userService) newReferralCode(ctx context.Context, userRepo repository.UserRepository) (string, error) {
	for range maxReferralCodeAttempts {
		code, err := srv.codeGenerator.Generate()
		if err != nil {
			return "", errors.Wrap(err, "failed to generate referral code")
		}

		_, err = userRepo.FindByReferralCode(ctx, code)
		if errors.Is(err, repository.ErrUserNotFound) {
			return code, nil
		}
		if err != nil {
			return "", errors.Wrap(err, "failed to check referral code")
		}

		srv.log(ctx).Debug("Referral code collision, drawing again")
	}

	return "", domainerrors.ErrUserCreationFailed.WithDetails("could not allocate a unique referral code")
}

// Login verifies the credential, loads the profile and opens a session.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	srv.log(ctx).Debug("Starting user login", slog.String("email", email))

	// Single query operation - use direct repository instance
	authRecord, err := srv.authRepo.FindAuthentication(ctx, entity.ProviderTypeEmail, email)
	if err != nil {
		if errors.Is(err, repository.ErrAuthNotFound) {
			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, errors.Wrap(err, "failed to find authentication")
	}

	// Check password outside transaction (bcrypt is CPU-bound).
	if !srv.hasher.Check(input.Password, authRecord.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", email), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	result, err := srv.profile.LoadSessionProfile(ctx, authRecord.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load profile")
	}
	if result.Status != usecase.ProfileLoadFound {
		srv.log(ctx).Warn("Signing out: profile unavailable",
			slog.Any("userID", authRecord.UserID),
			slog.Int("attempts", result.Attempts),
			slog.Any("error", result.Err),
		)
		if domainerrors.IsUpstreamUnavailable(result.Err) {
			return nil, result.Err
		}

		return nil, domainerrors.ErrUnauthorized.WithDetails("profile not available")
	}
	loggedInUser := result.User

	accessToken, refreshTokenString, err := srv.tokenService.GenerateTokens(loggedInUser.ID, loggedInUser.Roles().ToStrings())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	session := &entity.RefreshToken{
		UserID:     loggedInUser.ID,
		TokenHash:  srv.tokenService.HashToken(refreshTokenString),
		DeviceInfo: input.DeviceInfo,
		IPAddress:  input.IPAddress,
		ExpiresAt:  time.Now().Add(srv.tokenService.GetRefreshTokenDuration()),
	}
	if err := srv.persistSession(ctx, session); err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create refresh token during login")
	}

	srv.events.emit(ctx, entity.EventSessionSignedIn, loggedInUser.ID, session.ID.String(), map[string]string{
		"device": input.DeviceInfo,
	})
	srv.log(ctx).Debug("User logged in successfully", slog.Any("userID", loggedInUser.ID))

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshTokenString,
		User:         loggedInUser,
	}, nil
}

func (srv *userService) persistSession(ctx context.Context, session *entity.RefreshToken) error {
	if srv.maxActiveSessions <= 0 {
		// No session limit: direct insert avoids unnecessary transaction overhead.
		return srv.refreshTokenRepo.CreateRefreshToken(ctx, session)
	}

	// Lock, trim and insert in one transaction so concurrent logins cannot overshoot.
	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		refreshRepo := repoFactory.RefreshTokenRepo()

		if err := repoFactory.UserRepo().AcquireSessionMutex(ctx, session.UserID); err != nil {
			return errors.Wrap(err, "failed to lock user row for session limit check")
		}

		active, err := refreshRepo.FindRefreshTokensByUserID(ctx, session.UserID)
		if err != nil {
			return errors.Wrap(err, "failed to list active sessions")
		}

		// Oldest first: revoke until the new session fits.
		for i := 0; len(active)-i >= srv.maxActiveSessions; i++ {
			if err := refreshRepo.DeleteRefreshToken(ctx, active[i].ID); err != nil && !errors.Is(err, repository.ErrRefreshTokenNotFound) {
				return errors.Wrap(err, "failed to revoke oldest session")
			}
			srv.log(ctx).Info("Revoked oldest session", slog.Any("userID", session.UserID), slog.Any("tokenID", active[i].ID))
		}

		return refreshRepo.CreateRefreshToken(ctx, session)
	})
}

// RefreshToken issues a new access token. The refresh token itself is not rotated.
func (srv *userService) RefreshToken(ctx context.Context, input *usecase.RefreshTokenInput) (*usecase.RefreshTokenOutput, error) {
	srv.log(ctx).Info("Attempting to refresh access token")

	claims, err := srv.tokenService.ValidateRefreshToken(input.RefreshToken)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, err.Error())
	}

	var newAccessToken string
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		stored, err := repoFactory.RefreshTokenRepo().FindRefreshTokenByHash(ctx, srv.tokenService.HashToken(input.RefreshToken))
		if err != nil {
			if errors.Is(err, repository.ErrRefreshTokenNotFound) {
				return domainerrors.ErrRefreshTokenInvalid
			}

			return errors.Wrap(err, "failed to find refresh token")
		}
		if stored.UserID != claims.UserID {
			return domainerrors.ErrRefreshTokenInvalid
		}

		// Roles are re-read so a promotion or demotion applies on the next refresh.
		user, err := findUser(ctx, repoFactory.UserRepo(), claims.UserID)
		if err != nil {
			return err
		}

		newAccessToken, _, err = srv.tokenService.GenerateTokens(user.ID, user.Roles().ToStrings())
		if err != nil {
			return errors.Wrap(err, "failed to generate new access token")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to refresh access token", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute refresh token transaction")
	}

	return &usecase.RefreshTokenOutput{AccessToken: newAccessToken}, nil
}

// Logout ends the session identified by the refresh token. Unknown tokens are ignored.
func (srv *userService) Logout(ctx context.Context, input *usecase.LogoutInput) error {
	srv.log(ctx).Info("Attempting to log out")

	claims, err := srv.tokenService.ValidateRefreshToken(input.RefreshToken)
	if err != nil {
		// Even if the token is invalid, we can proceed to delete it from the database.
		srv.log(ctx).Warn("Logout with invalid token", slog.Any("error", err))
	}

	// Single operation - use direct repository instance
	err = srv.refreshTokenRepo.DeleteRefreshTokenByHash(ctx, srv.tokenService.HashToken(input.RefreshToken))
	if err != nil && !errors.Is(err, repository.ErrRefreshTokenNotFound) {
		srv.log(ctx).Error("Failed to delete refresh token", slog.Any("error", err))

		return errors.Wrap(err, "failed to delete refresh token")
	}

	if claims != nil {
		srv.events.emit(ctx, entity.EventSessionSignedOut, claims.UserID, "", nil)
	}
	srv.log(ctx).Info("Successfully logged out")

	return nil
}

// LogoutAllDevices deletes every refresh token of the user.
func (srv *userService) LogoutAllDevices(ctx context.Context, userID uuid.UUID) error {
	srv.log(ctx).Info("Attempting to log out from all devices", slog.Any("userID", userID))

	if err := srv.refreshTokenRepo.DeleteRefreshTokensByUserID(ctx, userID); err != nil {
		srv.log(ctx).Error("Failed to delete all refresh tokens", slog.Any("error", err), slog.Any("userID", userID))

		return errors.Wrap(err, "failed to delete all refresh tokens")
	}

	srv.events.emit(ctx, entity.EventSessionSignedOut, userID, "", map[string]string{"scope": "all"})
	srv.log(ctx).Info("Successfully logged out from all devices", slog.Any("userID", userID))

	return nil
}

// GetActiveSessions retrieves all active sessions for a user.
func (srv *userService) GetActiveSessions(ctx context.Context, userID uuid.UUID) ([]*entity.RefreshToken, error) {
	srv.log(ctx).Debug("Getting active sessions", slog.Any("userID", userID))

	sessions, err := srv.refreshTokenRepo.FindRefreshTokensByUserID(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get active sessions")
	}

	return sessions, nil
}
