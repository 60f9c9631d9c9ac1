package usecase

import (
	"context"

	"townhub/internal/domain/service"
)

// RelayUsecase defines the interface for the push relay worker. It turns a
// notification event into FCM deliveries, best effort and without retries.
type RelayUsecase interface {
	// ProcessNotificationEvent resolves the notification document and the
	// recipient's device tokens, then forwards the push payload to FCM.
	// A missing document, missing recipient, or empty token list is a
	// logged no-op, not an error.
	ProcessNotificationEvent(ctx context.Context, event *service.NotificationEvent) error
}
