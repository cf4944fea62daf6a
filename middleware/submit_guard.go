package middleware

import (
	"net/http"
	"strings"
	"sync"

	"github.com/labstack/echo/v4"
)

// FormIDField is the hidden input identifying one rendered form instance
const FormIDField = "formId"

// FormIDHeader carries the form instance id for JSON clients
const FormIDHeader = "X-Form-ID"

// SubmitGuardConfig defines the configuration for the in-flight guard
type SubmitGuardConfig struct {
	// KeyFunc returns the form instance id; "" disables the guard for the request
	KeyFunc func(c echo.Context) string
	// OnDuplicate renders the rejection. Defaults to a 409 echo.HTTPError.
	OnDuplicate func(c echo.Context) error
}

// SubmitGuard rejects a submission while another one from the same form
// instance is still being dispatched.
type SubmitGuard struct {
	config   SubmitGuardConfig
	inFlight map[string]struct{}
	mu       sync.Mutex
}

// NewSubmitGuard creates a guard keyed by the form instance id
func NewSubmitGuard(config SubmitGuardConfig) *SubmitGuard {
	if config.KeyFunc == nil {
		config.KeyFunc = FormInstanceID
	}
	if config.OnDuplicate == nil {
		config.OnDuplicate = func(c echo.Context) error {
			return echo.NewHTTPError(http.StatusConflict, "Submission already in progress")
		}
	}
	return &SubmitGuard{
		config:   config,
		inFlight: make(map[string]struct{}),
	}
}

// FormInstanceID reads the form instance id from the header or the form body
func FormInstanceID(c echo.Context) string {
	if id := strings.TrimSpace(c.Request().Header.Get(FormIDHeader)); id != "" {
		return id
	}
	ctype := c.Request().Header.Get(echo.HeaderContentType)
	if strings.HasPrefix(ctype, echo.MIMEApplicationForm) || strings.HasPrefix(ctype, echo.MIMEMultipartForm) {
		return strings.TrimSpace(c.FormValue(FormIDField))
	}
	return ""
}

// acquire marks key as in flight; false means it already was
func (g *SubmitGuard) acquire(key string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, busy := g.inFlight[key]; busy {
		return false
	}
	g.inFlight[key] = struct{}{}
	return true
}

func (g *SubmitGuard) release(key string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.inFlight, key)
}

// Middleware returns the in-flight guard middleware
func (g *SubmitGuard) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key := g.config.KeyFunc(c)
			if key == "" {
				return next(c)
			}
			if !g.acquire(key) {
				c.Logger().Warnf("Duplicate submission rejected for form %s", key)
				return g.config.OnDuplicate(c)
			}
			defer g.release(key)
			return next(c)
		}
	}
}
