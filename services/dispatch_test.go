package services

import (
	"attorney_site_go/config"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDispatcher(t *testing.T) {
	tests := []struct {
		mode     string
		wantType interface{}
	}{
		{config.DispatchModeWebhook, &WebhookDispatcher{}},
		{config.DispatchModeWhatsApp, &DeepLinkDispatcher{}},
		{config.DispatchModeEmail, &EmailDispatcher{}},
	}

	for _, tt := range tests {
		t.Run(tt.mode, func(t *testing.T) {
			cfg := &config.Config{DispatchMode: tt.mode, WhatsAppDomain: "wa.me", WhatsAppNumber: "+1 419 607 7952"}
			d, err := NewDispatcher(cfg, nil)
			require.NoError(t, err)
			assert.IsType(t, tt.wantType, d)
			assert.Equal(t, tt.mode, d.Mode())
		})
	}

	t.Run("unknown", func(t *testing.T) {
		_, err := NewDispatcher(&config.Config{DispatchMode: "fax"}, nil)
		assert.Error(t, err)
	})
}

func TestWebhookErrorMessages(t *testing.T) {
	assert.Equal(t, "webhook returned status 503: busy", (&WebhookError{StatusCode: 503, Message: "busy"}).Error())
	assert.Equal(t, "dial failed", (&WebhookError{Err: errors.New("dial failed")}).Error())

	wrapped := fmt.Errorf("consultation: %w", &WebhookError{StatusCode: 500, Message: "Sheet is full"})
	assert.Equal(t, "Sheet is full", ServerMessage(wrapped))
	assert.Equal(t, "", ServerMessage(errors.New("other")))
}
