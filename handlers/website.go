package handlers

import (
	"attorney_site_go/config"
	"attorney_site_go/templates/pages"

	"github.com/labstack/echo/v4"
)

func WebsitePrivacyHandler(c echo.Context) error {
	cfg := c.Get("config").(*config.Config)
	component := pages.Privacy(pages.PrivacyPage{
		Layout:   newLayout(c, cfg, "privacy"),
		Attorney: pages.DefaultAttorney(),
	})
	return component.Render(c.Request().Context(), c.Response().Writer)
}
