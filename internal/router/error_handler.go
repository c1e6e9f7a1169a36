package router

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/hanseol-dev/lumina-backend/internal/i18n"
	"github.com/hanseol-dev/lumina-backend/internal/middleware"
	"github.com/hanseol-dev/lumina-backend/pkg/apperrors"
	"github.com/labstack/echo/v4"
)

// NewHTTPErrorHandler maps errors to status codes and localized messages:
// *apperrors.AppError carries its own status and message key, echo.HTTPError
// passes through, everything else becomes an opaque 500.
func NewHTTPErrorHandler() echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		lang := middleware.Lang(c)

		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			if appErr.HTTPCode >= http.StatusInternalServerError {
				slog.Error("request failed", "code", appErr.Code, "error", appErr, "path", c.Path())
			}
			_ = c.JSON(appErr.HTTPCode, echo.Map{"message": i18n.Message(appErr.MessageKey, lang)})
			return
		}

		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			msg, ok := httpErr.Message.(string)
			if !ok {
				msg = i18n.Message("GLOBAL.INVALID_REQUEST", lang)
			}
			_ = c.JSON(httpErr.Code, echo.Map{"message": msg})
			return
		}

		slog.Error("unhandled error", "error", err, "path", c.Path())
		_ = c.JSON(http.StatusInternalServerError, echo.Map{"message": i18n.Message("GLOBAL.INTERNAL_ERROR", lang)})
	}
}
