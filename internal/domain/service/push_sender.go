package service

import (
	"context"
)

// PushPayload is the fixed-shape payload forwarded to the push-delivery
// service: title, body, icon path and click-through URL.
type PushPayload struct {
	Title       string `json:"title"`
	Body        string `json:"body"`
	Icon        string `json:"icon"`
	ClickAction string `json:"click_action"`
}

// PushSender defines the interface for the push-delivery service.
type PushSender interface {
	// Send delivers the payload to a single device token.
	Send(ctx context.Context, token string, payload PushPayload) error

	// SendMulticast delivers the payload to multiple device tokens (max 500).
	// Returns success count, failure count and the list of tokens the
	// delivery service reported as invalid or unregistered.
	SendMulticast(ctx context.Context, tokens []string, payload PushPayload) (successCount, failureCount int, invalidTokens []string, err error)
}
