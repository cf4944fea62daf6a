package middleware

import (
	"attorney_site_go/config"
	"attorney_site_go/services/i18n"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	if err := i18n.Load(); err != nil {
		log.Fatalf("failed to load locales: %v", err)
	}
	os.Exit(m.Run())
}

func runLocale(t *testing.T, req *http.Request) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Locale(&config.Config{Environment: "development"})(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	assert.NoError(t, handler(c))
	return c, rec
}

func TestLocale(t *testing.T) {
	t.Run("PriorityQueryParam", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/?lang=es", nil)
		req.AddCookie(&http.Cookie{Name: "lang", Value: "en"})
		c, rec := runLocale(t, req)

		assert.Equal(t, "es", c.Get("locale"))
		found := false
		for _, cookie := range rec.Result().Cookies() {
			if cookie.Name == "lang" {
				assert.Equal(t, "es", cookie.Value)
				found = true
			}
		}
		assert.True(t, found)
	})

	t.Run("UnsupportedQueryParam", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/?lang=fr", nil)
		c, _ := runLocale(t, req)
		assert.Equal(t, "en", c.Get("locale"))
	})

	t.Run("PriorityCookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: "lang", Value: "es"})
		req.Header.Set("Accept-Language", "en-US")
		c, _ := runLocale(t, req)
		assert.Equal(t, "es", c.Get("locale"))
	})

	t.Run("UnsupportedCookieFallsThrough", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: "lang", Value: "xx"})
		req.Header.Set("Accept-Language", "es-MX,es;q=0.9")
		c, _ := runLocale(t, req)
		assert.Equal(t, "es", c.Get("locale"))
	})

	t.Run("PriorityHeader", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Accept-Language", "es-ES,es;q=0.9")
		c, _ := runLocale(t, req)
		assert.Equal(t, "es", c.Get("locale"))
	})

	t.Run("HeaderQualityOrder", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Accept-Language", "de-DE,en;q=0.8,es;q=0.5")
		c, _ := runLocale(t, req)
		assert.Equal(t, "en", c.Get("locale"))
	})

	t.Run("DefaultLanguage", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		c, _ := runLocale(t, req)
		assert.Equal(t, "en", c.Get("locale"))
	})

	t.Run("RequestContext", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/?lang=es", nil)
		c, _ := runLocale(t, req)
		assert.Equal(t, "es", i18n.GetLocale(c.Request().Context()))
	})
}

func TestSetLanguageCookie(t *testing.T) {
	e := echo.New()
	findCookie := func(rec *httptest.ResponseRecorder) *http.Cookie {
		for _, cookie := range rec.Result().Cookies() {
			if cookie.Name == "lang" {
				return cookie
			}
		}
		return nil
	}

	t.Run("Development", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.Set("config", &config.Config{Environment: "development"})

		SetLanguageCookie(c, "es")

		langCookie := findCookie(rec)
		assert.NotNil(t, langCookie)
		assert.Equal(t, "es", langCookie.Value)
		assert.False(t, langCookie.Secure)
	})

	t.Run("Production", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.Set("config", &config.Config{Environment: "production"})

		SetLanguageCookie(c, "en")

		langCookie := findCookie(rec)
		assert.NotNil(t, langCookie)
		assert.True(t, langCookie.Secure)
	})
}

func TestGetLocale(t *testing.T) {
	e := echo.New()
	t.Run("WithLocale", func(t *testing.T) {
		c := e.NewContext(nil, nil)
		c.Set("locale", "es")
		assert.Equal(t, "es", GetLocale(c))
	})

	t.Run("WithoutLocale", func(t *testing.T) {
		c := e.NewContext(nil, nil)
		assert.Equal(t, "en", GetLocale(c))
	})
}
