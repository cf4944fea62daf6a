package services

import (
	"attorney_site_go/models"
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/google/uuid"
)

// DeepLinkDispatcher turns a submission into a pre-filled chat link.
// Delivery happens in the user's chat application and is never confirmed.
type DeepLinkDispatcher struct {
	domain string
	phone  string
}

// NewDeepLinkDispatcher creates a dispatcher for https://<domain>/<phone digits>
func NewDeepLinkDispatcher(domain, phone string) *DeepLinkDispatcher {
	return &DeepLinkDispatcher{
		domain: strings.Trim(strings.TrimSpace(domain), "/"),
		phone:  PhoneDigits(phone),
	}
}

func (d *DeepLinkDispatcher) Mode() string {
	return "whatsapp"
}

// Dispatch renders the message and returns the link to open. It never blocks.
func (d *DeepLinkDispatcher) Dispatch(_ context.Context, sub models.Submission) (*DispatchResult, error) {
	if d.phone == "" || d.domain == "" {
		return nil, fmt.Errorf("%s deep link: %w", sub.Kind(), ErrEndpointNotConfigured)
	}

	return &DispatchResult{
		Reference:   uuid.New().String(),
		Mode:        d.Mode(),
		RedirectURL: BuildDeepLink(d.domain, d.phone, RenderMessage(sub)),
	}, nil
}

// RenderMessage renders a submission as chat text: a bold title, a blank line,
// then one "*Label:* value" line per field. Empty values render as N/A.
func RenderMessage(sub models.Submission) string {
	var b strings.Builder
	b.WriteString("*" + sub.Title() + "*\n")
	for _, field := range sub.Summary() {
		value := field.Value
		if strings.TrimSpace(value) == "" {
			value = models.NotProvided
		}
		fmt.Fprintf(&b, "\n*%s:* %s", field.Label, value)
	}
	return b.String()
}

// BuildDeepLink returns https://<domain>/<digits>?text=<percent-encoded text>
func BuildDeepLink(domain, digits, text string) string {
	return fmt.Sprintf("https://%s/%s?text=%s", domain, digits, EncodeMessage(text))
}

// EncodeMessage percent-encodes text for a query value, spaces as %20
func EncodeMessage(text string) string {
	return strings.ReplaceAll(url.QueryEscape(text), "+", "%20")
}
