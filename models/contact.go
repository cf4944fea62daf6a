package models

import "strings"

// ContactMessage is the contact section form
type ContactMessage struct {
	FirstName string `json:"firstName" form:"firstName" validate:"required,min=2,max=50"`
	LastName  string `json:"lastName" form:"lastName" validate:"required,min=2,max=50"`
	Email     string `json:"email" form:"email" validate:"required,email"`
	Phone     string `json:"phone" form:"phone" validate:"omitempty,phone"`
	Subject   string `json:"subject" form:"subject" validate:"required,min=5,max=100,plain_text"`
	Message   string `json:"message" form:"message" validate:"required,min=10,max=2000,plain_text"`
}

// ContactWebhookType distinguishes contact rows from consultation rows in the sheet
const ContactWebhookType = "contact_form"

// PhoneNotProvided replaces an empty phone in the contact webhook body
const PhoneNotProvided = "Not provided"

// ContactWebhookBody is the JSON document sent to the contact webhook
type ContactWebhookBody struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message"`
	Type    string `json:"type"`
}

// FullName joins first and last name
func (m *ContactMessage) FullName() string {
	return strings.TrimSpace(m.FirstName + " " + m.LastName)
}

func (m *ContactMessage) Kind() SubmissionKind { return KindContact }

func (m *ContactMessage) Title() string { return "New Contact Message" }

func (m *ContactMessage) ReplyTo() string { return m.Email }

func (m *ContactMessage) Summary() []SummaryField {
	return []SummaryField{
		{Label: "Name", Value: m.FullName()},
		{Label: "Email", Value: m.Email},
		{Label: "Phone", Value: m.Phone},
		{Label: "Subject", Value: m.Subject},
		{Label: "Message", Value: m.Message},
	}
}

func (m *ContactMessage) WebhookBody() any {
	phone := m.Phone
	if phone == "" {
		phone = PhoneNotProvided
	}
	return ContactWebhookBody{
		Name:    m.FullName(),
		Email:   m.Email,
		Phone:   phone,
		Subject: m.Subject,
		Message: m.Message,
		Type:    ContactWebhookType,
	}
}
