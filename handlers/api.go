package handlers

import (
	"attorney_site_go/middleware"
	"attorney_site_go/models"
	"attorney_site_go/services"
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

const missingFieldsMessage = "Missing required fields"

func isJSONRequest(c echo.Context) bool {
	return strings.HasPrefix(c.Request().Header.Get(echo.HeaderContentType), echo.MIMEApplicationJSON)
}

// contactAPIRequest accepts a single "name" as well as first/last name
type contactAPIRequest struct {
	models.ContactMessage
	Name string `json:"name"`
}

// splitName fills first and last name from "name" when they are absent.
// It reports whether name was a single word, which leaves the last name empty.
func (r *contactAPIRequest) splitName() bool {
	if r.FirstName != "" || r.LastName != "" {
		return false
	}
	parts := strings.Fields(r.Name)
	if len(parts) == 0 {
		return false
	}
	r.FirstName = parts[0]
	r.LastName = strings.Join(parts[1:], " ")
	return r.LastName == ""
}

func blank(values ...string) bool {
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			return true
		}
	}
	return false
}

// ConsultationAPIHandler accepts a consultation request as JSON
func (h *FormHandler) ConsultationAPIHandler(c echo.Context) error {
	var req models.ConsultationRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid request body"})
	}
	if blank(req.Name, req.Email, req.Phone, req.CaseType) {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": missingFieldsMessage})
	}
	if req.PreferredTime == "" {
		req.PreferredTime = models.DefaultPreferredTime
	}

	if errs := h.validator.ValidateConsultation(middleware.GetLocale(c), &req); errs != nil {
		return c.JSON(http.StatusUnprocessableEntity, map[string]interface{}{
			"message": "Validation failed",
			"errors":  errs,
		})
	}

	return h.dispatchJSON(c, &req, "Consultation request sent successfully", "Failed to send consultation request")
}

// ContactAPIHandler accepts a contact message as JSON
func (h *FormHandler) ContactAPIHandler(c echo.Context) error {
	var req contactAPIRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid request body"})
	}
	singleName := req.splitName()
	if blank(req.FirstName, req.Email, req.Subject, req.Message) {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": missingFieldsMessage})
	}

	msg := &req.ContactMessage
	errs := h.validator.ValidateContact(middleware.GetLocale(c), msg)
	if singleName {
		// a one-word "name" is accepted as is
		delete(errs, "lastName")
	}
	if len(errs) > 0 {
		return c.JSON(http.StatusUnprocessableEntity, map[string]interface{}{
			"message": "Validation failed",
			"errors":  errs,
		})
	}

	return h.dispatchJSON(c, msg, "Contact message sent successfully", "Failed to send contact message")
}

func (h *FormHandler) dispatchJSON(c echo.Context, sub models.Submission, successMessage, failureMessage string) error {
	result, err := h.dispatcher.Dispatch(c.Request().Context(), sub)
	if err != nil {
		c.Logger().Errorf("Failed to dispatch %s via %s: %v", sub.Kind(), h.dispatcher.Mode(), err)
		switch {
		case errors.Is(err, services.ErrEndpointNotConfigured):
			return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Server configuration error"})
		case errors.Is(err, services.ErrDispatchThrottled):
			return c.JSON(http.StatusTooManyRequests, map[string]string{"message": "Too many requests. Please try again later."})
		}
		detail := services.ServerMessage(err)
		if detail == "" {
			detail = err.Error()
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"message": failureMessage,
			"error":   detail,
		})
	}

	resp := map[string]interface{}{
		"message":   successMessage,
		"data":      result.Response,
		"reference": result.Reference,
	}
	if result.RedirectURL != "" {
		resp["url"] = result.RedirectURL
	}
	return c.JSON(http.StatusOK, resp)
}
