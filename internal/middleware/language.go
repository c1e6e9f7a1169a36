package middleware

import (
	"github.com/hanseol-dev/lumina-backend/internal/i18n"
	"github.com/labstack/echo/v4"
)

// ContextLangKey holds the negotiated response language.
const ContextLangKey = "lang"

// Language negotiates the response language from the Accept-Language header.
// Korean is the default.
func Language() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(ContextLangKey, i18n.Parse(c.Request().Header.Get("Accept-Language")))
			return next(c)
		}
	}
}

// Lang returns the negotiated language for the request.
func Lang(c echo.Context) i18n.Language {
	if lang, ok := c.Get(ContextLangKey).(i18n.Language); ok {
		return lang
	}
	return i18n.Korean
}
