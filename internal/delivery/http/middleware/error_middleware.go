package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	domainerrors "vestira/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware maps errors escaping the handlers onto the wire format.
// Every error body is {"message": string}; internal detail never leaks.
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware.
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			m.logger.Error("Request failed",
				slog.String("path", c.Request().URL.Path),
				slog.String("method", c.Request().Method),
				slog.Any("error", err),
			)
		}

		_ = c.JSON(appErr.HTTPCode(), map[string]string{"message": appErr.Message()})

		return
	}

	// Echo raises these itself for oversized bodies, unknown routes, etc.
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		_ = c.JSON(httpErr.Code, map[string]string{"message": fmt.Sprintf("%v", httpErr.Message)})

		return
	}

	m.logger.Error("Unhandled error",
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
		slog.Any("error", err),
	)

	_ = c.JSON(http.StatusInternalServerError, map[string]string{"message": "Internal server error"})
}
