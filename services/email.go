package services

import (
	"attorney_site_go/config"
	"attorney_site_go/models"
	"bytes"
	"context"
	"fmt"
	"html/template"
	"log"
	"os"
	"path/filepath"
	"strings"
	texttemplate "text/template"

	"github.com/google/uuid"
	"github.com/resend/resend-go/v2"
)

// emailTemplateDir holds <name>.html / <name>.txt and localized <name>_<lang>.* files
var emailTemplateDir = "templates/emails"

// Email represents an email message
type Email struct {
	To       []string
	ReplyTo  string
	Subject  string
	HTMLBody string
	TextBody string
}

// SubmissionEmailData is the data passed to the submission email templates
type SubmissionEmailData struct {
	Title     string
	Reference string
	Fields    []models.SummaryField
}

// BuildSubmissionEmail creates the notification email for a form submission.
// When the templates cannot be loaded the chat-style text is used as the body.
func BuildSubmissionEmail(to string, sub models.Submission, reference, lang string) *Email {
	fields := sub.Summary()
	for i := range fields {
		if strings.TrimSpace(fields[i].Value) == "" {
			fields[i].Value = models.NotProvided
		}
	}

	data := SubmissionEmailData{Title: sub.Title(), Reference: reference, Fields: fields}

	htmlBody, textBody, err := loadTemplate("submission", lang, data)
	if err != nil {
		log.Printf("Error loading submission email template for lang %s: %v", lang, err)
		textBody = RenderMessage(sub) + "\n\nReference: " + reference
		htmlBody = ""
	}

	subject := sub.Title()
	if len(fields) > 0 {
		subject = fmt.Sprintf("%s from %s", sub.Title(), fields[0].Value)
	}

	return &Email{
		To:       []string{to},
		ReplyTo:  sub.ReplyTo(),
		Subject:  subject,
		HTMLBody: htmlBody,
		TextBody: textBody,
	}
}

// loadTemplate loads templateName_lang.html/.txt, falling back to templateName.html/.txt
func loadTemplate(templateName string, lang string, data interface{}) (string, string, error) {
	readTemplate := func(ext string) (string, []byte, error) {
		path := filepath.Join(emailTemplateDir, fmt.Sprintf("%s_%s%s", templateName, lang, ext))
		content, err := os.ReadFile(path)
		if err == nil {
			return path, content, nil
		}
		path = filepath.Join(emailTemplateDir, templateName+ext)
		content, err = os.ReadFile(path)
		if err != nil {
			return path, nil, fmt.Errorf("failed to read template %s: %w", path, err)
		}
		return path, content, nil
	}

	path, content, err := readTemplate(".html")
	if err != nil {
		return "", "", err
	}
	htmlTmpl, err := template.New(filepath.Base(path)).Parse(string(content))
	if err != nil {
		return "", "", fmt.Errorf("failed to parse template %s: %w", path, err)
	}
	var htmlBuf bytes.Buffer
	if err := htmlTmpl.Execute(&htmlBuf, data); err != nil {
		return "", "", fmt.Errorf("failed to execute template %s: %w", path, err)
	}

	// Plain text bodies must not be HTML-escaped
	path, content, err = readTemplate(".txt")
	if err != nil {
		return "", "", err
	}
	textTmpl, err := texttemplate.New(filepath.Base(path)).Parse(string(content))
	if err != nil {
		return "", "", fmt.Errorf("failed to parse template %s: %w", path, err)
	}
	var textBuf bytes.Buffer
	if err := textTmpl.Execute(&textBuf, data); err != nil {
		return "", "", fmt.Errorf("failed to execute template %s: %w", path, err)
	}

	return htmlBuf.String(), textBuf.String(), nil
}

// SendEmail sends an email using Resend API
func SendEmail(cfg *config.Config, email *Email) error {
	// In development mode, log the email instead of sending
	if cfg.EmailTestMode {
		logEmailToConsole(email)
		log.Printf("Email logged successfully (test mode - not actually sent)")
		return nil
	}

	if cfg.ResendAPIKey == "" {
		return fmt.Errorf("RESEND_API_KEY not configured: %w", ErrEndpointNotConfigured)
	}

	client := resend.NewClient(cfg.ResendAPIKey)

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", cfg.EmailFromName, cfg.EmailFrom),
		To:      email.To,
		Subject: email.Subject,
		ReplyTo: email.ReplyTo,
		Html:    email.HTMLBody,
		Text:    email.TextBody,
	}

	if params.Html == "" && params.Text == "" {
		return fmt.Errorf("email must have either HTMLBody or TextBody")
	}

	sent, err := client.Emails.Send(params)
	if err != nil {
		return fmt.Errorf("failed to send email via Resend: %w", err)
	}

	log.Printf("Email sent successfully via Resend (ID: %s) to: %v", sent.Id, email.To)
	return nil
}

// logEmailToConsole logs email details when EMAIL_TEST_MODE is on
func logEmailToConsole(email *Email) {
	separator := strings.Repeat("=", 80)
	log.Printf("\n%s\nEMAIL (Test Mode - Not Actually Sent)\n%s", separator, separator)
	log.Printf("To: %v", email.To)
	log.Printf("Reply-To: %s", email.ReplyTo)
	log.Printf("Subject: %s", email.Subject)
	log.Printf("\n--- TEXT BODY ---\n%s", email.TextBody)
	log.Printf("\n--- HTML BODY (first 500 chars) ---\n%s...", truncate(email.HTMLBody, 500))
	log.Printf("%s\n", separator)
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen]
}

// EmailDispatcher sends submissions to the attorney's inbox through Resend
type EmailDispatcher struct {
	cfg  *config.Config
	send func(cfg *config.Config, email *Email) error
}

func NewEmailDispatcher(cfg *config.Config) *EmailDispatcher {
	return &EmailDispatcher{cfg: cfg, send: SendEmail}
}

func (d *EmailDispatcher) Mode() string {
	return "email"
}

// Dispatch sends the notification synchronously so failures reach the user
func (d *EmailDispatcher) Dispatch(_ context.Context, sub models.Submission) (*DispatchResult, error) {
	if d.cfg.NotifyEmail == "" {
		return nil, fmt.Errorf("%s email: %w", sub.Kind(), ErrEndpointNotConfigured)
	}

	reference := uuid.New().String()
	email := BuildSubmissionEmail(d.cfg.NotifyEmail, sub, reference, "en")
	if err := d.send(d.cfg, email); err != nil {
		return nil, fmt.Errorf("failed to send %s email: %w", sub.Kind(), err)
	}

	return &DispatchResult{Reference: reference, Mode: d.Mode()}, nil
}
