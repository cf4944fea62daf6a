package services

import (
	"attorney_site_go/models"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

// maxWebhookResponse caps how much of the webhook response is read
const maxWebhookResponse = 1 << 20

// WebhookDispatcher posts submissions as JSON to the spreadsheet webhook.
// It makes exactly one attempt per submission.
type WebhookDispatcher struct {
	endpoints map[models.SubmissionKind]string
	client    *http.Client
	limiter   *rate.Limiter
}

// NewWebhookDispatcher creates a dispatcher for the two webhook endpoints.
// perMinute <= 0 disables the outbound budget. A nil client uses
// http.DefaultClient, so the platform default timeouts apply.
func NewWebhookDispatcher(consultationURL, contactURL string, perMinute int, client *http.Client) *WebhookDispatcher {
	if client == nil {
		client = http.DefaultClient
	}

	d := &WebhookDispatcher{
		endpoints: map[models.SubmissionKind]string{
			models.KindConsultation: consultationURL,
			models.KindContact:      contactURL,
		},
		client: client,
	}
	if perMinute > 0 {
		d.limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMinute)), perMinute)
	}
	return d
}

func (d *WebhookDispatcher) Mode() string {
	return "webhook"
}

// Dispatch sends the submission's webhook body. Success is a 2xx status with a
// JSON body; anything else is returned as a *WebhookError.
func (d *WebhookDispatcher) Dispatch(ctx context.Context, sub models.Submission) (*DispatchResult, error) {
	endpoint := d.endpoints[sub.Kind()]
	if endpoint == "" {
		return nil, fmt.Errorf("%s webhook: %w", sub.Kind(), ErrEndpointNotConfigured)
	}

	if d.limiter != nil && !d.limiter.Allow() {
		return nil, ErrDispatchThrottled
	}

	body, err := json.Marshal(sub.WebhookBody())
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s payload: %w", sub.Kind(), err)
	}

	reference := uuid.New().String()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build %s request: %w", sub.Kind(), err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Submission-ID", reference)

	resp, err := d.client.Do(req)
	if err != nil {
		return nil, &WebhookError{Err: fmt.Errorf("failed to send %s: %w", sub.Kind(), err)}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxWebhookResponse))
	if err != nil {
		return nil, &WebhookError{StatusCode: resp.StatusCode, Err: fmt.Errorf("failed to read response: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &WebhookError{StatusCode: resp.StatusCode, Message: responseMessage(raw)}
	}

	if !json.Valid(raw) {
		return nil, &WebhookError{StatusCode: resp.StatusCode, Err: fmt.Errorf("malformed JSON response")}
	}

	return &DispatchResult{
		Reference: reference,
		Mode:      d.Mode(),
		Response:  json.RawMessage(raw),
	}, nil
}

// responseMessage extracts {"message": "..."} or {"error": "..."} from an error body
func responseMessage(raw []byte) string {
	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return ""
	}
	if body.Message != "" {
		return body.Message
	}
	return body.Error
}
