package handlers

import (
	"attorney_site_go/config"
	"attorney_site_go/middleware"
	"attorney_site_go/models"
	"attorney_site_go/services"
	"attorney_site_go/services/i18n"
	"attorney_site_go/templates/partials"
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/a-h/templ"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// CaptchaVerifier checks a Turnstile token
type CaptchaVerifier func(ctx context.Context, token, secret, ip string) (bool, error)

// FormHandler serves the consultation and contact forms. Both forms share one
// submission flow: captcha, validation, then the configured dispatcher.
type FormHandler struct {
	validator     *services.Validator
	dispatcher    services.Dispatcher
	verifyCaptcha CaptchaVerifier
}

// NewFormHandler wires the validator and the dispatcher selected at start-up
func NewFormHandler(validator *services.Validator, dispatcher services.Dispatcher) *FormHandler {
	return &FormHandler{
		validator:     validator,
		dispatcher:    dispatcher,
		verifyCaptcha: services.VerifyTurnstileToken,
	}
}

// formRenderer renders the submitted form again: with its values and errors,
// or fresh when reset is true.
type formRenderer func(reset bool, errs services.FieldErrors) templ.Component

func (h *FormHandler) consultationForm(c echo.Context, cfg *config.Config, values *models.ConsultationRequest, errs services.FieldErrors, formID string) partials.ConsultationForm {
	tomorrow := time.Now().In(cfg.Location()).AddDate(0, 0, 1)
	return partials.ConsultationForm{
		FormID:           formID,
		CSRF:             middleware.GetCSRFToken(c),
		Values:           values,
		Errors:           errs,
		CaseTypes:        models.CaseTypes,
		MinDate:          tomorrow.Format(services.DateLayout),
		TurnstileSiteKey: cfg.TurnstileSiteKey,
	}
}

func (h *FormHandler) contactForm(c echo.Context, cfg *config.Config, values *models.ContactMessage, errs services.FieldErrors, formID string) partials.ContactForm {
	return partials.ContactForm{
		FormID:           formID,
		CSRF:             middleware.GetCSRFToken(c),
		Values:           values,
		Errors:           errs,
		TurnstileSiteKey: cfg.TurnstileSiteKey,
	}
}

// postedFormID keeps the instance id of a re-rendered form
func postedFormID(c echo.Context) string {
	if id := strings.TrimSpace(c.FormValue(middleware.FormIDField)); id != "" {
		return id
	}
	return uuid.New().String()
}

// ConsultationModalHandler returns the consultation modal with an empty form
func (h *FormHandler) ConsultationModalHandler(c echo.Context) error {
	if !isHTMX(c) {
		return c.Redirect(http.StatusSeeOther, "/#home")
	}
	cfg := c.Get("config").(*config.Config)
	form := h.consultationForm(c, cfg, models.NewConsultationRequest(), nil, uuid.New().String())
	component := partials.ConsultationModal(form)
	return component.Render(c.Request().Context(), c.Response().Writer)
}

// ConsultationSubmitHandler handles the consultation modal form
func (h *FormHandler) ConsultationSubmitHandler(c echo.Context) error {
	cfg := c.Get("config").(*config.Config)

	var req models.ConsultationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid form data")
	}

	formID := postedFormID(c)
	render := func(reset bool, errs services.FieldErrors) templ.Component {
		if reset {
			return partials.ConsultationFormPartial(h.consultationForm(c, cfg, models.NewConsultationRequest(), nil, uuid.New().String()))
		}
		return partials.ConsultationFormPartial(h.consultationForm(c, cfg, &req, errs, formID))
	}

	lang := middleware.GetLocale(c)
	return h.submit(c, cfg, &req, func() services.FieldErrors {
		return h.validator.ValidateConsultation(lang, &req)
	}, render)
}

// ContactSubmitHandler handles the contact section form
func (h *FormHandler) ContactSubmitHandler(c echo.Context) error {
	cfg := c.Get("config").(*config.Config)

	var msg models.ContactMessage
	if err := c.Bind(&msg); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid form data")
	}

	formID := postedFormID(c)
	render := func(reset bool, errs services.FieldErrors) templ.Component {
		if reset {
			return partials.ContactFormPartial(h.contactForm(c, cfg, &models.ContactMessage{}, nil, uuid.New().String()))
		}
		return partials.ContactFormPartial(h.contactForm(c, cfg, &msg, errs, formID))
	}

	lang := middleware.GetLocale(c)
	return h.submit(c, cfg, &msg, func() services.FieldErrors {
		return h.validator.ValidateContact(lang, &msg)
	}, render)
}

// submit runs the shared flow and answers with the form partial plus a toast
func (h *FormHandler) submit(c echo.Context, cfg *config.Config, sub models.Submission, validate func() services.FieldErrors, render formRenderer) error {
	ctx := c.Request().Context()
	kind := string(sub.Kind())

	if cfg.TurnstileSecretKey != "" {
		if status, key := h.checkCaptcha(c, cfg); key != "" {
			if !isHTMX(c) {
				return echo.NewHTTPError(status, i18n.T(ctx, key))
			}
			return renderHTML(c, status, render(false, nil), errorToast(c, i18n.T(ctx, key), ""))
		}
	}

	// Invalid input never reaches the dispatcher
	if errs := validate(); errs != nil {
		if !isHTMX(c) {
			return echo.NewHTTPError(http.StatusUnprocessableEntity, i18n.T(ctx, "toast.validation"))
		}
		return renderHTML(c, http.StatusUnprocessableEntity, render(false, errs), errorToast(c, i18n.T(ctx, "toast.validation"), ""))
	}

	result, err := h.dispatcher.Dispatch(ctx, sub)
	if err != nil {
		status, title, description := h.dispatchFailure(ctx, kind, err)
		c.Logger().Errorf("Failed to dispatch %s via %s: %v", kind, h.dispatcher.Mode(), err)
		if !isHTMX(c) {
			return echo.NewHTTPError(status, title)
		}
		return renderHTML(c, status, render(false, nil), errorToast(c, title, description))
	}

	c.Logger().Infof("Dispatched %s via %s (reference %s)", kind, result.Mode, result.Reference)

	if !isHTMX(c) {
		if result.RedirectURL != "" {
			return c.Redirect(http.StatusSeeOther, result.RedirectURL)
		}
		return c.Redirect(http.StatusSeeOther, "/#"+anchorFor(sub.Kind()))
	}

	events := map[string]interface{}{}
	if sub.Kind() == models.KindConsultation {
		events["consultation-submitted"] = map[string]string{"reference": result.Reference}
	}

	toast := partials.Toast{
		Variant:     partials.ToastSuccess,
		Title:       i18n.T(ctx, "toast."+kind+".success_title"),
		Description: i18n.T(ctx, "toast."+kind+".success_description"),
	}
	if result.RedirectURL != "" {
		events["open-deeplink"] = map[string]string{"url": result.RedirectURL}
		toast = partials.Toast{
			Variant:     partials.ToastInfo,
			Title:       i18n.T(ctx, "toast.deeplink.title"),
			Description: i18n.T(ctx, "toast.deeplink.description"),
			LinkURL:     result.RedirectURL,
			LinkLabel:   i18n.T(ctx, "toast.deeplink.fallback"),
		}
	}
	triggerEvents(c, events)

	return renderHTML(c, http.StatusOK, render(true, nil), partials.ToastOOB(toast))
}

// checkCaptcha returns a status and a toast key when the Turnstile gate fails
func (h *FormHandler) checkCaptcha(c echo.Context, cfg *config.Config) (int, string) {
	token := c.FormValue("cf-turnstile-response")
	if token == "" {
		return http.StatusBadRequest, "toast.captcha_missing"
	}
	ok, err := h.verifyCaptcha(c.Request().Context(), token, cfg.TurnstileSecretKey, c.RealIP())
	if err != nil || !ok {
		c.Logger().Warnf("Turnstile verification failed: %v", err)
		return http.StatusBadRequest, "toast.captcha_failed"
	}
	return 0, ""
}

// dispatchFailure maps a dispatch error to a status and toast text
func (h *FormHandler) dispatchFailure(ctx context.Context, kind string, err error) (int, string, string) {
	switch {
	case errors.Is(err, services.ErrEndpointNotConfigured):
		return http.StatusInternalServerError, i18n.T(ctx, "toast.config_error"), ""
	case errors.Is(err, services.ErrDispatchThrottled):
		return http.StatusTooManyRequests, i18n.T(ctx, "toast.throttled"), ""
	default:
		return http.StatusBadGateway, i18n.T(ctx, "toast."+kind+".error"), services.ServerMessage(err)
	}
}

func anchorFor(kind models.SubmissionKind) string {
	if kind == models.KindContact {
		return "contact"
	}
	return "home"
}
