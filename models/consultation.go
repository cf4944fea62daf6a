package models

// ConsultationRequest is the consultation modal form.
// PreferredDate uses the HTML date input format (YYYY-MM-DD).
type ConsultationRequest struct {
	Name          string `json:"name" form:"name" validate:"required,min=2,max=100"`
	Email         string `json:"email" form:"email" validate:"required,email"`
	Phone         string `json:"phone" form:"phone" validate:"required,phone"`
	CaseType      string `json:"caseType" form:"caseType" validate:"required,case_type"`
	Description   string `json:"description" form:"description" validate:"max=1000,plain_text"`
	PreferredDate string `json:"preferredDate" form:"preferredDate" validate:"omitempty,future_date"`
	PreferredTime string `json:"preferredTime" form:"preferredTime" validate:"required,hhmm"`
}

// DefaultPreferredTime pre-fills the time input of a fresh form
const DefaultPreferredTime = "10:30"

// NewConsultationRequest returns an empty form with the default time
func NewConsultationRequest() *ConsultationRequest {
	return &ConsultationRequest{PreferredTime: DefaultPreferredTime}
}

// ConsultationWebhookBody is the JSON document sent to the consultation webhook
type ConsultationWebhookBody struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	CaseType      string `json:"caseType"`
	Description   string `json:"description"`
	PreferredDate string `json:"preferredDate"`
	PreferredTime string `json:"preferredTime"`
}

func (r *ConsultationRequest) Kind() SubmissionKind { return KindConsultation }

func (r *ConsultationRequest) Title() string { return "New Consultation Request" }

func (r *ConsultationRequest) ReplyTo() string { return r.Email }

func (r *ConsultationRequest) Summary() []SummaryField {
	return []SummaryField{
		{Label: "Name", Value: r.Name},
		{Label: "Email", Value: r.Email},
		{Label: "Phone", Value: r.Phone},
		{Label: "Case Type", Value: CaseTypeLabel(r.CaseType)},
		{Label: "Description", Value: r.Description},
		{Label: "Preferred Date", Value: r.PreferredDate},
		{Label: "Preferred Time", Value: r.PreferredTime},
	}
}

func (r *ConsultationRequest) WebhookBody() any {
	return ConsultationWebhookBody{
		Name:          r.Name,
		Email:         r.Email,
		Phone:         r.Phone,
		CaseType:      CaseTypeLabel(r.CaseType),
		Description:   r.Description,
		PreferredDate: r.PreferredDate,
		PreferredTime: r.PreferredTime,
	}
}
