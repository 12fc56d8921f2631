// Package middleware contains the HTTP error handling for the delivery layer.
package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	domainerrors "adoptions/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware error handling middleware
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler. Every error
// becomes the wire shape {timestamp, path, message} with the status taken
// from the error's classification.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	path := c.Request().URL.Path

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			m.logger.Error("Request failed",
				slog.String("path", path),
				slog.String("method", c.Request().Method),
				slog.String("errorCode", appErr.ErrorCode()),
				slog.Any("error", err),
			)
		}

		_ = c.JSON(appErr.HTTPCode(), domainerrors.NewHTTPErrorInfo(path, appErr.Message()))

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		_ = c.JSON(httpErr.Code, domainerrors.NewHTTPErrorInfo(path, fmt.Sprintf("%v", httpErr.Message)))

		return
	}

	m.logger.Error("Unhandled error",
		slog.String("path", path),
		slog.String("method", c.Request().Method),
		slog.Any("error", err),
	)

	_ = c.JSON(http.StatusInternalServerError, domainerrors.NewHTTPErrorInfo(path, "Internal server error"))
}
