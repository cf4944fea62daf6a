package services

import (
	"attorney_site_go/config"
	"attorney_site_go/models"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrEndpointNotConfigured means the destination for a submission is missing
	// from the configuration. It is a server misconfiguration, not a user error.
	ErrEndpointNotConfigured = errors.New("dispatch endpoint not configured")

	// ErrDispatchThrottled means the outbound budget for the webhook is spent
	ErrDispatchThrottled = errors.New("dispatch rate limit exceeded")
)

// DispatchResult describes a successful dispatch
type DispatchResult struct {
	Reference string
	Mode      string
	// Response is the webhook's JSON body (webhook variant only)
	Response json.RawMessage
	// RedirectURL is the link the browser has to open (deep-link variant only)
	RedirectURL string
}

// Dispatcher forwards a validated submission to the attorney.
// One implementation is selected per deployment by DISPATCH_MODE.
type Dispatcher interface {
	Mode() string
	Dispatch(ctx context.Context, sub models.Submission) (*DispatchResult, error)
}

// NewDispatcher builds the dispatcher selected by cfg.DispatchMode
func NewDispatcher(cfg *config.Config, client *http.Client) (Dispatcher, error) {
	switch cfg.DispatchMode {
	case config.DispatchModeWebhook:
		return NewWebhookDispatcher(cfg.ConsultationWebhookURL, cfg.ContactWebhookURL, cfg.WebhookRatePerMinute, client), nil
	case config.DispatchModeWhatsApp:
		return NewDeepLinkDispatcher(cfg.WhatsAppDomain, cfg.WhatsAppNumber), nil
	case config.DispatchModeEmail:
		return NewEmailDispatcher(cfg), nil
	default:
		return nil, fmt.Errorf("unknown dispatch mode %q", cfg.DispatchMode)
	}
}

// WebhookError is a failed webhook call: a transport error, a non-2xx status,
// or a body that is not JSON.
type WebhookError struct {
	StatusCode int
	// Message is the message the webhook returned, if any
	Message string
	Err     error
}

func (e *WebhookError) Error() string {
	switch {
	case e.Err != nil && e.StatusCode != 0:
		return fmt.Sprintf("webhook returned status %d: %v", e.StatusCode, e.Err)
	case e.Err != nil:
		return e.Err.Error()
	case e.Message != "":
		return fmt.Sprintf("webhook returned status %d: %s", e.StatusCode, e.Message)
	default:
		return fmt.Sprintf("webhook returned status %d", e.StatusCode)
	}
}

func (e *WebhookError) Unwrap() error {
	return e.Err
}

// ServerMessage returns the message provided by the remote server, if any
func ServerMessage(err error) string {
	var webhookErr *WebhookError
	if errors.As(err, &webhookErr) {
		return webhookErr.Message
	}
	return ""
}
