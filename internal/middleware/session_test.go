package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quayfm/quay/internal/utils"
)

func TestBrowserSessionIssuesCookie(t *testing.T) {
	e := echo.New()
	e.Use(BrowserSession())
	e.GET("/", func(c echo.Context) error {
		id, _ := c.Get(utils.ContextKeySession).(string)
		return c.String(http.StatusOK, id)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Body.String())

	var issued *http.Cookie
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == utils.SessionCookieName {
			issued = cookie
			break
		}
	}
	require.NotNil(t, issued)
	assert.Equal(t, rec.Body.String(), issued.Value)
	assert.True(t, issued.HttpOnly)
}

func TestBrowserSessionReusesExistingCookie(t *testing.T) {
	e := echo.New()
	e.Use(BrowserSession())
	e.GET("/", func(c echo.Context) error {
		id, _ := c.Get(utils.ContextKeySession).(string)
		return c.String(http.StatusOK, id)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: utils.SessionCookieName, Value: "existing-id"})
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "existing-id", rec.Body.String())

	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == utils.SessionCookieName {
			t.Error("a fresh cookie was issued despite an existing one")
		}
	}
}
