// Package notification implements push delivery over Firebase Cloud Messaging.
package notification

import (
	"context"
	"fmt"

	"townhub/internal/domain/service"

	"firebase.google.com/go/v4/messaging"
)

type fcmSender struct {
	client *messaging.Client
}

// NewFCMSender creates a PushSender backed by Firebase Cloud Messaging.
func NewFCMSender(client *messaging.Client) service.PushSender {
	return &fcmSender{client: client}
}

// Send delivers a push notification to a single device token
func (s *fcmSender) Send(ctx context.Context, token string, payload service.PushPayload) error {
	_, err := s.client.Send(ctx, &messaging.Message{
		Token:        token,
		Notification: &messaging.Notification{Title: payload.Title, Body: payload.Body},
		Webpush:      webpushConfig(payload),
	})
	if err != nil {
		return fmt.Errorf("failed to send notification: %w", err)
	}

	return nil
}

// SendMulticast delivers a push notification to multiple device tokens (max 500 tokens)
func (s *fcmSender) SendMulticast(ctx context.Context, tokens []string, payload service.PushPayload) (successCount, failureCount int, invalidTokens []string, err error) {
	if len(tokens) == 0 {
		return 0, 0, nil, nil
	}

	// Firebase limits to 500 tokens per request
	if len(tokens) > 500 {
		return 0, 0, nil, fmt.Errorf("token count exceeds limit: %d (max 500)", len(tokens))
	}

	message := &messaging.MulticastMessage{
		Tokens:       tokens,
		Notification: &messaging.Notification{Title: payload.Title, Body: payload.Body},
		Webpush:      webpushConfig(payload),
	}

	response, err := s.client.SendEachForMulticast(ctx, message)
	if err != nil {
		return 0, 0, nil, fmt.Errorf("failed to send multicast notification: %w", err)
	}

	successCount = response.SuccessCount
	failureCount = response.FailureCount

	// Collect invalid tokens
	invalidTokens = make([]string, 0)
	for idx, sendResponse := range response.Responses {
		if sendResponse.Error != nil {
			// Check if error is due to invalid or unregistered token
			if messaging.IsInvalidArgument(sendResponse.Error) ||
				messaging.IsUnregistered(sendResponse.Error) {
				invalidTokens = append(invalidTokens, tokens[idx])
			}
		}
	}

	return successCount, failureCount, invalidTokens, nil
}

// webpushConfig carries the icon and click-through URL the browser worker
// expects alongside the notification title and body.
func webpushConfig(payload service.PushPayload) *messaging.WebpushConfig {
	return &messaging.WebpushConfig{
		Notification: &messaging.WebpushNotification{
			Title: payload.Title,
			Body:  payload.Body,
			Icon:  payload.Icon,
		},
		FCMOptions: &messaging.WebpushFCMOptions{
			Link: payload.ClickAction,
		},
	}
}
