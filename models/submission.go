package models

// SubmissionKind identifies which form produced a submission
type SubmissionKind string

const (
	KindConsultation SubmissionKind = "consultation"
	KindContact      SubmissionKind = "contact"
)

// NotProvided is rendered in chat messages for empty optional fields
const NotProvided = "N/A"

// SummaryField is one labelled line of a human-readable submission summary
type SummaryField struct {
	Label string
	Value string
}

// Submission is a validated form record ready to be dispatched.
// Every dispatch variant works from this interface so the forms are not
// duplicated per variant.
type Submission interface {
	Kind() SubmissionKind
	// Title is the heading used in chat messages and email subjects
	Title() string
	// Summary returns the fields in display order; empty values are left empty
	Summary() []SummaryField
	// WebhookBody returns the JSON document posted to the spreadsheet webhook
	WebhookBody() any
	// ReplyTo is the submitter's email address
	ReplyTo() string
}
