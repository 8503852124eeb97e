package middleware

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/quayfm/quay/internal/utils"
)

// BrowserSession assigns each visitor a random session ID cookie and exposes
// it on the echo context. The cookie identifies browsing state only; it
// carries no credentials.
func BrowserSession() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(utils.SessionCookieName)
			if err != nil || cookie.Value == "" {
				cookie = &http.Cookie{
					Name:     utils.SessionCookieName,
					Value:    uuid.NewString(),
					Path:     "/",
					HttpOnly: true,
					SameSite: http.SameSiteStrictMode,
				}
				c.SetCookie(cookie)
			}
			c.Set(utils.ContextKeySession, cookie.Value)
			return next(c)
		}
	}
}
