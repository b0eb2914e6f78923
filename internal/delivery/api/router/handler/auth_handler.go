// Package handler contains the HTTP handlers of the shopper and admin API.
package handler

import (
	"net/http"

	"storefront/internal/delivery/api/response"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	UserUC    usecase.UserUsecase
	ProfileUC usecase.ProfileUsecase
}

// AuthHandler serves sign-up, sign-in, sign-out and the session profile.
type AuthHandler struct {
	userUC    usecase.UserUsecase
	profileUC usecase.ProfileUsecase
}

// NewAuthHandler is the constructor for AuthHandler.
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		userUC:    params.UserUC,
		profileUC: params.ProfileUC,
	}
}

type RegisterRequest struct {
	Email        string `json:"email" validate:"required,email"`
	Username     string `json:"username" validate:"required,max=64"`
	Password     string `json:"password" validate:"required"`
	ReferralCode string `json:"referral_code" validate:"omitempty,alphanum,max=32"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type LoginResponse struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	User         *UserView `json:"user"`
}

type SessionResponse struct {
	Status   usecase.ProfileLoadStatus `json:"status"`
	Attempts int                       `json:"attempts"`
	User     *UserView                 `json:"user"`
}

// Register creates a client account.
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	output, err := h.userUC.RegisterUser(c.Request().Context(), &usecase.RegisterUserInput{
		Email:        req.Email,
		Username:     req.Username,
		Password:     req.Password,
		ReferralCode: req.ReferralCode,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toUserView(output.User))
}

// Login exchanges credentials for an access and refresh token pair.
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	output, err := h.userUC.Login(c.Request().Context(), &usecase.LoginInput{
		Email:      req.Email,
		Password:   req.Password,
		DeviceInfo: c.Request().UserAgent(),
		IPAddress:  c.RealIP(),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, &LoginResponse{
		AccessToken:  output.AccessToken,
		RefreshToken: output.RefreshToken,
		User:         toUserView(output.User),
	})
}

// RefreshToken issues a new access token.
func (h *AuthHandler) RefreshToken(c echo.Context) error {
	var req RefreshTokenRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	output, err := h.userUC.RefreshToken(c.Request().Context(), &usecase.RefreshTokenInput{RefreshToken: req.RefreshToken})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"access_token": output.AccessToken})
}

// Logout revokes one refresh token.
func (h *AuthHandler) Logout(c echo.Context) error {
	var req RefreshTokenRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.userUC.Logout(c.Request().Context(), &usecase.LogoutInput{RefreshToken: req.RefreshToken}); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// LogoutAll revokes every refresh token of the caller.
func (h *AuthHandler) LogoutAll(c echo.Context) error {
	session, err := sessionFrom(c)
	if err != nil {
		return err
	}

	if err := h.userUC.LogoutAllDevices(c.Request().Context(), session.UserID); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// ListSessions lists the caller's signed-in devices.
func (h *AuthHandler) ListSessions(c echo.Context) error {
	session, err := sessionFrom(c)
	if err != nil {
		return err
	}

	tokens, err := h.userUC.GetActiveSessions(c.Request().Context(), session.UserID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.List(c, mapViews(tokens, toSessionDeviceView))
}

// Session loads the profile behind the bearer token with bounded retries.
// A terminal result answers 401 so the client discards its tokens.
func (h *AuthHandler) Session(c echo.Context) error {
	session, err := sessionFrom(c)
	if err != nil {
		return err
	}

	result, err := h.profileUC.LoadSessionProfile(c.Request().Context(), session.UserID)
	if err != nil {
		return errors.WithStack(err)
	}
	if result.Status != usecase.ProfileLoadFound {
		if domainerrors.IsUpstreamUnavailable(result.Err) {
			return result.Err
		}

		return domainerrors.ErrUnauthorized.WithDetails("profile not available")
	}

	return response.Success(c, http.StatusOK, &SessionResponse{
		Status:   result.Status,
		Attempts: result.Attempts,
		User:     toUserView(result.User),
	})
}

// Profile returns the caller's account.
func (h *AuthHandler) Profile(c echo.Context) error {
	session, err := sessionFrom(c)
	if err != nil {
		return err
	}

	user, err := h.profileUC.GetProfile(c.Request().Context(), session.UserID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserView(user))
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}
