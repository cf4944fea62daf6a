package middleware

import (
	"attorney_site_go/config"
	"attorney_site_go/services/i18n"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/text/language"
)

const defaultLocale = "en"

// Locale middleware handles language detection and persistence.
// Priority:
// 1. Query param "lang" (sets cookie)
// 2. Cookie "lang"
// 3. Accept-Language header
// 4. Default ("en")
func Locale(cfg *config.Config) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			lang := c.QueryParam("lang")
			if lang != "" {
				if !i18n.IsSupported(lang) {
					lang = defaultLocale
				}
				c.SetCookie(languageCookie(lang, cfg.IsProduction()))
			} else if cookie, err := c.Cookie("lang"); err == nil && i18n.IsSupported(cookie.Value) {
				lang = cookie.Value
			}

			if lang == "" {
				lang = matchAcceptLanguage(c.Request().Header.Get("Accept-Language"))
			}

			c.Set("locale", lang)
			c.SetRequest(c.Request().WithContext(i18n.WithLocale(c.Request().Context(), lang)))

			return next(c)
		}
	}
}

// matchAcceptLanguage picks the best loaded locale for an Accept-Language header
func matchAcceptLanguage(header string) string {
	if header == "" {
		return defaultLocale
	}

	supported := []language.Tag{language.Make(defaultLocale)}
	codes := []string{defaultLocale}
	for _, code := range i18n.Languages() {
		if code == defaultLocale {
			continue
		}
		supported = append(supported, language.Make(code))
		codes = append(codes, code)
	}

	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return defaultLocale
	}

	_, index, confidence := language.NewMatcher(supported).Match(tags...)
	if confidence == language.No {
		return defaultLocale
	}
	return codes[index]
}

func languageCookie(lang string, secure bool) *http.Cookie {
	return &http.Cookie{
		Name:     "lang",
		Value:    lang,
		Expires:  time.Now().Add(24 * 365 * time.Hour), // 1 year
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   secure,
	}
}

// SetLanguageCookie sets the language cookie
func SetLanguageCookie(c echo.Context, lang string) {
	cfg, ok := c.Get("config").(*config.Config)
	c.SetCookie(languageCookie(lang, ok && cfg.IsProduction()))
}

// GetLocale returns the current locale from context
func GetLocale(c echo.Context) string {
	val := c.Get("locale")
	if lang, ok := val.(string); ok {
		return lang
	}
	return defaultLocale
}
