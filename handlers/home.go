package handlers

import (
	"attorney_site_go/config"
	"attorney_site_go/middleware"
	"attorney_site_go/models"
	"attorney_site_go/templates/pages"
	"attorney_site_go/templates/partials"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// newLayout builds the shared page chrome for a public page
func newLayout(c echo.Context, cfg *config.Config, page string) pages.Layout {
	altLang := "es"
	if middleware.GetLocale(c) == "es" {
		altLang = "en"
	}
	return pages.Layout{
		SEO:              GetSEO(c.Request().Context(), page, cfg.AppURL),
		Nav:              models.DefaultSiteContent().NavItems,
		AltLang:          altLang,
		TurnstileSiteKey: cfg.TurnstileSiteKey,
		Year:             time.Now().In(cfg.Location()).Year(),
	}
}

// LandingHandler renders the single-page site: hero, about, practice areas, contact
func LandingHandler(c echo.Context) error {
	cfg := c.Get("config").(*config.Config)

	page := pages.LandingPage{
		Layout:   newLayout(c, cfg, "landing"),
		Site:     models.DefaultSiteContent(),
		Attorney: pages.DefaultAttorney(),
		ContactForm: partials.ContactForm{
			FormID:           uuid.New().String(),
			CSRF:             middleware.GetCSRFToken(c),
			Values:           &models.ContactMessage{},
			TurnstileSiteKey: cfg.TurnstileSiteKey,
		},
	}

	component := pages.Landing(page)
	return component.Render(c.Request().Context(), c.Response().Writer)
}
