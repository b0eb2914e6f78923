package middleware

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/api/response"
	"storefront/internal/delivery/api/validator"
	deliverycontext "storefront/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware turns handler errors into the JSON error envelope.
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError is installed as echo's HTTPErrorHandler.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	if handled, writeErr := response.AppError(c, err); handled {
		m.logWriteFailure(c, writeErr)

		return
	}

	var validationErr *validator.ValidationError
	if errors.As(err, &validationErr) {
		m.logWriteFailure(c, response.BadRequestWithDetails(c, "VALIDATION_FAILED", "輸入資料驗證失敗", validationErr.Fields))

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}
		m.logWriteFailure(c, response.Error(c, httpErr.Code, "HTTP_ERROR", message, nil))

		return
	}

	deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	m.logWriteFailure(c, response.InternalServerError(c, "INTERNAL_ERROR", "Internal server error, please try again later"))
}

func (m *ErrorMiddleware) logWriteFailure(c echo.Context, err error) {
	if err != nil {
		m.logger.Warn("Failed to write error response", slog.Any("error", err), slog.String("path", c.Request().URL.Path))
	}
}
