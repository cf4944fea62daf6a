package handlers

import (
	"attorney_site_go/services/i18n"
	"attorney_site_go/templates/components"
	"attorney_site_go/templates/partials"
	"bytes"
	"net/http"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
)

func isHTMX(c echo.Context) bool {
	return c.Request().Header.Get("HX-Request") == "true"
}

// renderHTML renders the components into one response. Rendering happens
// before the status is written so a template error still yields a 500.
func renderHTML(c echo.Context, status int, parts ...templ.Component) error {
	var buf bytes.Buffer
	for _, part := range parts {
		if err := part.Render(c.Request().Context(), &buf); err != nil {
			return err
		}
	}
	return c.HTMLBlob(status, buf.Bytes())
}

// triggerEvents sets HX-Trigger so htmx dispatches the events on the client
func triggerEvents(c echo.Context, events map[string]interface{}) {
	c.Response().Header().Set("HX-Trigger", components.JSON(events))
}

func errorToast(c echo.Context, title, description string) templ.Component {
	return partials.ToastOOB(partials.Toast{
		Variant:     partials.ToastError,
		Title:       title,
		Description: description,
	})
}

// RateLimitedResponse answers a throttled form submission
func RateLimitedResponse(c echo.Context, message string) error {
	ctx := c.Request().Context()
	switch {
	case isHTMX(c):
		c.Response().Header().Set("HX-Reswap", "none")
		return renderHTML(c, http.StatusTooManyRequests, errorToast(c, i18n.T(ctx, "toast.throttled"), ""))
	case isJSONRequest(c):
		return c.JSON(http.StatusTooManyRequests, map[string]string{"message": message})
	default:
		return echo.NewHTTPError(http.StatusTooManyRequests, message)
	}
}

// DuplicateSubmissionResponse answers a submission whose form is already in flight
func DuplicateSubmissionResponse(c echo.Context) error {
	ctx := c.Request().Context()
	switch {
	case isHTMX(c):
		c.Response().Header().Set("HX-Reswap", "none")
		return renderHTML(c, http.StatusConflict, errorToast(c, i18n.T(ctx, "toast.duplicate"), ""))
	case isJSONRequest(c):
		return c.JSON(http.StatusConflict, map[string]string{"message": "Submission already in progress"})
	default:
		return echo.NewHTTPError(http.StatusConflict, "Submission already in progress")
	}
}
