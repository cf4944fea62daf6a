package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestNewRateLimiter(t *testing.T) {
	rl := NewRateLimiter(RateLimitConfig{
		Requests: 10,
		Window:   time.Minute,
	})
	defer rl.Close()

	assert.NotNil(t, rl)
	assert.Equal(t, 10, rl.config.Requests)
	assert.Equal(t, time.Minute, rl.config.Window)
	assert.NotNil(t, rl.config.KeyFunc)
	assert.NotNil(t, rl.config.OnLimit)
	assert.Equal(t, "Too many requests. Please try again later.", rl.config.Message)
}

func TestRateLimiterMiddleware(t *testing.T) {
	e := echo.New()
	ok := func(c echo.Context) error {
		return c.String(http.StatusOK, "success")
	}
	serve := func(handler echo.HandlerFunc, hx bool) (*httptest.ResponseRecorder, error) {
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		if hx {
			req.Header.Set("HX-Request", "true")
		}
		rec := httptest.NewRecorder()
		return rec, handler(e.NewContext(req, rec))
	}

	t.Run("WithinLimit", func(t *testing.T) {
		rl := NewRateLimiter(RateLimitConfig{Requests: 2, Window: time.Second})
		defer rl.Close()
		handler := rl.Middleware()(ok)

		for i := 0; i < 2; i++ {
			rec, err := serve(handler, false)
			assert.NoError(t, err)
			assert.Equal(t, http.StatusOK, rec.Code)
		}
	})

	t.Run("ExceededLimit", func(t *testing.T) {
		rl := NewRateLimiter(RateLimitConfig{Requests: 1, Window: time.Minute})
		defer rl.Close()
		handler := rl.Middleware()(ok)

		_, err := serve(handler, false)
		assert.NoError(t, err)

		rec, err := serve(handler, false)
		assert.Error(t, err)
		he, isHTTPErr := err.(*echo.HTTPError)
		assert.True(t, isHTTPErr)
		assert.Equal(t, http.StatusTooManyRequests, he.Code)
		assert.Equal(t, "60", rec.Header().Get("Retry-After"))
	})

	t.Run("CustomRejection", func(t *testing.T) {
		rl := NewRateLimiter(RateLimitConfig{
			Requests: 1,
			Window:   time.Second,
			OnLimit: func(c echo.Context, message string) error {
				return c.HTML(http.StatusTooManyRequests, "<div>"+message+"</div>")
			},
		})
		defer rl.Close()
		handler := rl.Middleware()(ok)

		_, _ = serve(handler, true)
		rec, err := serve(handler, true)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusTooManyRequests, rec.Code)
		assert.Contains(t, rec.Body.String(), "Too many requests")
	})

	t.Run("WindowResets", func(t *testing.T) {
		rl := NewRateLimiter(RateLimitConfig{Requests: 1, Window: time.Minute})
		defer rl.Close()
		now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
		rl.now = func() time.Time { return now }

		assert.True(t, rl.Allow("1.2.3.4"))
		assert.False(t, rl.Allow("1.2.3.4"))
		assert.True(t, rl.Allow("5.6.7.8"))

		now = now.Add(61 * time.Second)
		assert.True(t, rl.Allow("1.2.3.4"))

		rl.removeExpired()
		assert.Len(t, rl.store, 1)
	})
}
