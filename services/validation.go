package services

import (
	"attorney_site_go/models"
	"attorney_site_go/services/i18n"
	"errors"
	"html"
	"reflect"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
)

// MinPhoneDigits is the number of digits a phone number needs to be accepted
const MinPhoneDigits = 10

// DateLayout is the format of the HTML date input
const DateLayout = "2006-01-02"

var (
	// digits, spaces, dashes and parentheses with an optional leading +
	phoneRegex = regexp.MustCompile(`^\+?[0-9\s\-()]+$`)

	// 24-hour HH:MM
	timeRegex = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)
)

// FieldErrors maps a form field (its JSON name) to the message of the first
// rule it violated.
type FieldErrors map[string]string

// Has reports whether field has an error
func (fe FieldErrors) Has(field string) bool {
	_, ok := fe[field]
	return ok
}

// Get returns the error message for field, or ""
func (fe FieldErrors) Get(field string) string {
	return fe[field]
}

// Fields returns the invalid field names in sorted order
func (fe FieldErrors) Fields() []string {
	fields := make([]string, 0, len(fe))
	for f := range fe {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fields
}

// Validator evaluates the declarative field rules of the form models.
// The rules live in the `validate` struct tags of models.ConsultationRequest
// and models.ContactMessage.
type Validator struct {
	validate *validator.Validate
	policy   *bluemonday.Policy
	location *time.Location
	now      func() time.Time
}

// NewValidator builds a Validator that computes "today" in loc
func NewValidator(loc *time.Location) *Validator {
	if loc == nil {
		loc = time.UTC
	}

	v := &Validator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
		policy:   bluemonday.StrictPolicy(),
		location: loc,
		now:      time.Now,
	}

	// Report fields by their JSON name so errors line up with form inputs
	v.validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	_ = v.validate.RegisterValidation("phone", validPhone)
	_ = v.validate.RegisterValidation("hhmm", validTime)
	_ = v.validate.RegisterValidation("case_type", validCaseType)
	_ = v.validate.RegisterValidation("future_date", v.futureDate)
	_ = v.validate.RegisterValidation("plain_text", v.plainText)

	return v
}

// WithClock replaces the time source used by the future date rule
func (v *Validator) WithClock(now func() time.Time) *Validator {
	v.now = now
	return v
}

// ValidateConsultation normalizes req in place and checks every field.
// It returns nil when the request is valid.
func (v *Validator) ValidateConsultation(lang string, req *models.ConsultationRequest) FieldErrors {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = normalizeEmail(req.Email)
	req.Phone = strings.TrimSpace(req.Phone)
	req.CaseType = strings.TrimSpace(req.CaseType)
	req.Description = strings.TrimSpace(req.Description)
	req.PreferredDate = strings.TrimSpace(req.PreferredDate)
	req.PreferredTime = strings.TrimSpace(req.PreferredTime)

	return v.check(lang, req)
}

// ValidateContact normalizes msg in place and checks every field.
// It returns nil when the message is valid.
func (v *Validator) ValidateContact(lang string, msg *models.ContactMessage) FieldErrors {
	msg.FirstName = strings.TrimSpace(msg.FirstName)
	msg.LastName = strings.TrimSpace(msg.LastName)
	msg.Email = normalizeEmail(msg.Email)
	msg.Phone = strings.TrimSpace(msg.Phone)
	msg.Subject = strings.TrimSpace(msg.Subject)
	msg.Message = strings.TrimSpace(msg.Message)

	return v.check(lang, msg)
}

func (v *Validator) check(lang string, record any) FieldErrors {
	err := v.validate.Struct(record)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return FieldErrors{"_": err.Error()}
	}

	// validator reports at most one error per field: the first failing tag
	fieldErrors := make(FieldErrors, len(validationErrors))
	for _, fe := range validationErrors {
		if _, seen := fieldErrors[fe.Field()]; seen {
			continue
		}
		fieldErrors[fe.Field()] = formatFieldError(lang, fe)
	}
	return fieldErrors
}

// formatFieldError turns a failed rule into a translated message
func formatFieldError(lang string, fe validator.FieldError) string {
	label := i18n.Translate(lang, "form.label."+fe.Field())
	args := map[string]interface{}{"field": label, "param": fe.Param()}

	switch fe.Tag() {
	case "required", "min", "max", "future_date", "hhmm", "plain_text":
		return i18n.Translate(lang, "validation."+fe.Tag(), args)
	case "email", "phone", "case_type":
		return i18n.Translate(lang, "validation."+fe.Tag())
	default:
		return i18n.Translate(lang, "validation.invalid", args)
	}
}

// newlines matches the line endings the HTML tokenizer folds into "\n"
var newlines = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// plainText rejects free text containing markup or character references.
// The value is never rewritten: it reaches the webhook and the chat message
// exactly as typed, and templates escape it on output.
func (v *Validator) plainText(fl validator.FieldLevel) bool {
	value := newlines.Replace(fl.Field().String())
	return v.policy.Sanitize(value) == html.EscapeString(value)
}

func normalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// today returns the current date truncated to midnight in the validator's timezone
func (v *Validator) today() time.Time {
	now := v.now().In(v.location)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, v.location)
}

// futureDate accepts dates strictly later than today
func (v *Validator) futureDate(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	date, err := time.ParseInLocation(DateLayout, value, v.location)
	if err != nil {
		return false
	}
	return date.After(v.today())
}

// validPhone accepts phone numbers with at least MinPhoneDigits digits
func validPhone(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	if !phoneRegex.MatchString(value) {
		return false
	}
	return len(PhoneDigits(value)) >= MinPhoneDigits
}

func validTime(fl validator.FieldLevel) bool {
	return timeRegex.MatchString(fl.Field().String())
}

func validCaseType(fl validator.FieldLevel) bool {
	return models.IsValidCaseType(fl.Field().String())
}

// PhoneDigits strips everything but digits from a phone number
func PhoneDigits(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
