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
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupAuthHandler(t *testing.T, session *entity.Session) (*echo.Echo, *mockUC.MockUserUsecase, *mockUC.MockProfileUsecase) {
	userUC := mockUC.NewMockUserUsecase(t)
	profileUC := mockUC.NewMockProfileUsecase(t)
	h := NewAuthHandler(AuthHandlerParams{UserUC: userUC, ProfileUC: profileUC})

	e := newTestEcho()
	e.POST("/auth/register", h.Register)
	e.POST("/auth/login", h.Login)
	e.POST("/auth/logout", h.Logout)
	g := e.Group("/api/v1", withSession(session))
	g.GET("/session", h.Session)
	g.POST("/auth/logout-all", h.LogoutAll)

	return e, userUC, profileUC
}

func TestAuthHandler_Register(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		e, userUC, _ := setupAuthHandler(t, nil)
		user := &entity.User{ID: uuid.New(), Email: "ann@example.com", Username: "ann", Role: entity.RoleClient, ReferralCode: "ab12cd34"}
		userUC.EXPECT().RegisterUser(mock.Anything, &usecase.RegisterUserInput{
			Email:        "ann@example.com",
			Username:     "ann",
			Password:     "Secret123!",
			ReferralCode: "FRIEND01",
		}).Return(&usecase.RegisterOutput{User: user}, nil)

		rec, env := doJSON(t, e, http.MethodPost, "/auth/register", map[string]string{
			"email":         "ann@example.com",
			"username":      "ann",
			"password":      "Secret123!",
			"referral_code": "FRIEND01",
		})

		requireStatus(t, rec, http.StatusCreated)
		var got UserView
		decodeData(t, env, &got)
		assert.Equal(t, user.ID, got.ID)
		assert.Equal(t, "ab12cd34", got.ReferralCode)
		assert.NotContains(t, string(env.Data), "password")
	})

	t.Run("invalid email", func(t *testing.T) {
		e, _, _ := setupAuthHandler(t, nil)

		rec, env := doJSON(t, e, http.MethodPost, "/auth/register", map[string]string{
			"email":    "not-an-email",
			"username": "ann",
			"password": "Secret123!",
		})

		requireStatus(t, rec, http.StatusBadRequest)
		assert.Contains(t, rec.Body.String(), `"field":"email"`)
		assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		e, _, _ := setupAuthHandler(t, nil)

		rec, _ := doJSON(t, e, http.MethodPost, "/auth/register", `{"email":`)

		requireStatus(t, rec, http.StatusBadRequest)
	})
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("passes device and address", func(t *testing.T) {
		e, userUC, _ := setupAuthHandler(t, nil)
		userUC.EXPECT().
			Login(mock.Anything, mock.MatchedBy(func(in *usecase.LoginInput) bool {
				return in.Email == "ann@example.com" && in.IPAddress != ""
			})).
			Return(&usecase.LoginOutput{AccessToken: "at", RefreshToken: "rt", User: &entity.User{ID: uuid.New()}}, nil)

		rec, env := doJSON(t, e, http.MethodPost, "/auth/login", map[string]string{"email": "ann@example.com", "password": "x"})

		requireStatus(t, rec, http.StatusOK)
		var got LoginResponse
		decodeData(t, env, &got)
		assert.Equal(t, "at", got.AccessToken)
		assert.Equal(t, "rt", got.RefreshToken)
	})

	t.Run("wrong password", func(t *testing.T) {
		e, userUC, _ := setupAuthHandler(t, nil)
		userUC.EXPECT().Login(mock.Anything, mock.Anything).Return(nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed"))

		rec, env := doJSON(t, e, http.MethodPost, "/auth/login", map[string]string{"email": "ann@example.com", "password": "bad"})

		assert.Equal(t, domainerrors.ErrInvalidCredentials.HTTPCode(), rec.Code)
		assert.Equal(t, domainerrors.ErrInvalidCredentials.ErrorCode(), env.Error.Code)
		assert.Nil(t, env.Error.Details)
	})
}

func TestAuthHandler_Session(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		session := clientSession()
		e, _, profileUC := setupAuthHandler(t, session)
		profileUC.EXPECT().LoadSessionProfile(mock.Anything, session.UserID).Return(&usecase.ProfileLoadResult{
			Status:   usecase.ProfileLoadFound,
			User:     &entity.User{ID: session.UserID, Username: "ann"},
			Attempts: 2,
		}, nil)

		rec, env := doJSON(t, e, http.MethodGet, "/api/v1/session", nil)

		requireStatus(t, rec, http.StatusOK)
		var got SessionResponse
		decodeData(t, env, &got)
		assert.Equal(t, usecase.ProfileLoadFound, got.Status)
		assert.Equal(t, 2, got.Attempts)
		assert.Equal(t, "ann", got.User.Username)
	})

	t.Run("terminal signs the client out", func(t *testing.T) {
		session := clientSession()
		e, _, profileUC := setupAuthHandler(t, session)
		profileUC.EXPECT().LoadSessionProfile(mock.Anything, session.UserID).Return(&usecase.ProfileLoadResult{
			Status:   usecase.ProfileLoadNotFoundTerminal,
			Attempts: 3,
			Err:      domainerrors.ErrRecordNotFound,
		}, nil)

		rec, env := doJSON(t, e, http.MethodGet, "/api/v1/session", nil)

		requireStatus(t, rec, http.StatusUnauthorized)
		assert.Equal(t, "UNAUTHORIZED", env.Error.Code)
	})

	t.Run("backing store down", func(t *testing.T) {
		session := clientSession()
		e, _, profileUC := setupAuthHandler(t, session)
		profileUC.EXPECT().LoadSessionProfile(mock.Anything, session.UserID).Return(&usecase.ProfileLoadResult{
			Status: usecase.ProfileLoadNotFoundTerminal,
			Err:    domainerrors.NewUpstreamError(errors.New("dial tcp: refused"), "postgres"),
		}, nil)

		rec, _ := doJSON(t, e, http.MethodGet, "/api/v1/session", nil)

		requireStatus(t, rec, http.StatusServiceUnavailable)
		assert.NotContains(t, rec.Body.String(), "refused")
	})
}

func TestAuthHandler_Logout(t *testing.T) {
	t.Run("single token", func(t *testing.T) {
		e, userUC, _ := setupAuthHandler(t, nil)
		userUC.EXPECT().Logout(mock.Anything, &usecase.LogoutInput{RefreshToken: "rt"}).Return(nil)

		rec, _ := doJSON(t, e, http.MethodPost, "/auth/logout", map[string]string{"refresh_token": "rt"})

		requireStatus(t, rec, http.StatusNoContent)
	})

	t.Run("all devices", func(t *testing.T) {
		session := clientSession()
		e, userUC, _ := setupAuthHandler(t, session)
		userUC.EXPECT().LogoutAllDevices(mock.Anything, session.UserID).Return(nil)

		rec, _ := doJSON(t, e, http.MethodPost, "/api/v1/auth/logout-all", nil)

		requireStatus(t, rec, http.StatusNoContent)
	})
}
