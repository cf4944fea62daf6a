package partials

import (
	"attorney_site_go/models"
	"attorney_site_go/services"
	"attorney_site_go/templates/components"
	"embed"

	"github.com/a-h/templ"
)

//go:embed *.html
var FS embed.FS

// Source lets page sets include the partial templates
var Source = components.Source{FS: FS, Patterns: []string{"*.html"}}

var set = components.MustParse(Source)

// ConsultationForm is the view model of the consultation modal form
type ConsultationForm struct {
	FormID           string
	CSRF             string
	Values           *models.ConsultationRequest
	Errors           services.FieldErrors
	CaseTypes        []string
	MinDate          string
	TurnstileSiteKey string
}

func (f ConsultationForm) InputClass(field string) string {
	return inputClass(f.Errors, field)
}

func (f ConsultationForm) DescribedBy(field string) string {
	return describedBy(f.Errors, field)
}

// ContactForm is the view model of the contact section form
type ContactForm struct {
	FormID           string
	CSRF             string
	Values           *models.ContactMessage
	Errors           services.FieldErrors
	TurnstileSiteKey string
}

func (f ContactForm) InputClass(field string) string {
	return inputClass(f.Errors, field)
}

func (f ContactForm) DescribedBy(field string) string {
	return describedBy(f.Errors, field)
}

// Toast variants
const (
	ToastSuccess = "success"
	ToastError   = "error"
	ToastInfo    = "info"
)

// Toast is a transient notification shown in the toast region
type Toast struct {
	Variant     string
	Title       string
	Description string
	LinkURL     string
	LinkLabel   string
}

// ConsultationModal renders the modal dialog wrapping the consultation form
func ConsultationModal(form ConsultationForm) templ.Component {
	return set.Component("consultation_modal", form)
}

// ConsultationFormPartial renders only the form, the HTMX swap target
func ConsultationFormPartial(form ConsultationForm) templ.Component {
	return set.Component("consultation_form", form)
}

// ContactFormPartial renders the contact form, the HTMX swap target
func ContactFormPartial(form ContactForm) templ.Component {
	return set.Component("contact_form", form)
}

// ToastOOB renders a toast that replaces the toast region out of band
func ToastOOB(toast Toast) templ.Component {
	return set.Component("toast_oob", toast)
}
