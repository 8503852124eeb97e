package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
)

// CSRF validates a per-visitor token on every state-changing request. Pages
// embed the token in a meta tag; HTMX actions and upload/move fetches send it
// back in the X-CSRF-Token header, plain form posts in the _csrf field.
// Presigned uploads go straight to the store and never pass through here.
func CSRF() echo.MiddlewareFunc {
	return echoMiddleware.CSRFWithConfig(echoMiddleware.CSRFConfig{
		TokenLookup:    "header:X-CSRF-Token,form:_csrf",
		CookieName:     "quay_csrf",
		CookiePath:     "/",
		CookieHTTPOnly: true,
		CookieSameSite: http.SameSiteStrictMode,
	})
}
