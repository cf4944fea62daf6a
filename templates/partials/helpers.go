package partials

import "attorney_site_go/services"

const (
	inputBaseClass  = "form-input"
	inputErrorClass = "form-input form-input--error"
)

// inputClass returns the CSS class of an input, highlighting fields with errors
func inputClass(errs services.FieldErrors, field string) string {
	if errs.Has(field) {
		return inputErrorClass
	}
	return inputBaseClass
}

// describedBy links an invalid input to its error message for screen readers
func describedBy(errs services.FieldErrors, field string) string {
	if errs.Has(field) {
		return field + "-error"
	}
	return ""
}
