package handlers

import (
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"

	"github.com/quayfm/quay/internal/browser"
	"github.com/quayfm/quay/internal/errs"
	"github.com/quayfm/quay/internal/utils"
)

// SessionFor returns the browser session bound to the request's cookie.
func SessionFor(c echo.Context, m *browser.Manager) *browser.Session {
	id, _ := c.Get(utils.ContextKeySession).(string)
	return m.Get(id)
}

// csrfToken returns the token the CSRF middleware stored on the context, for
// embedding into rendered pages.
func csrfToken(c echo.Context) string {
	token, _ := c.Get("csrf").(string)
	return token
}

// HTMXRedirect sets the HX-Redirect header and returns a 200 OK response.
// This is used for HTMX requests that should trigger a client-side redirect.
func HTMXRedirect(c echo.Context, url string) error {
	c.Response().Header().Set("HX-Redirect", url)
	return c.NoContent(http.StatusOK)
}

// HTTPError maps a classified error to an echo HTTP error. NoOpTransfer is
// informational and handled by callers before reaching here.
func HTTPError(err error) error {
	switch {
	case errs.IsInvalidInput(err):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errs.IsNotFound(err):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errs.IsPartialTransfer(err):
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	case errs.IsStoreUnavailable(err):
		return echo.NewHTTPError(http.StatusBadGateway, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}

// BrowseURL builds the canonical URL for a location.
func BrowseURL(loc browser.Location) string {
	if loc.Bucket == "" {
		return "/buckets"
	}
	u := "/buckets/" + loc.Bucket
	if loc.Prefix != "" {
		u += "?prefix=" + url.QueryEscape(loc.Prefix)
	}
	return u
}
