package usecase

import (
	"context"

	"townhub/internal/domain/entity"
)

// NotificationUsecase defines the interface for the in-app notification feed
// and the fan-in that triggers push delivery.
type NotificationUsecase interface {
	// NotifyNewPost persists a notification document for the recipient and
	// publishes the matching event for the push relay. The document
	// survives even when the event cannot be published.
	NotifyNewPost(ctx context.Context, recipientUID, senderName, postTitle string) (*entity.Notification, error)

	// ListNotifications returns the acting user's notifications newest first.
	ListNotifications(ctx context.Context, session entity.Session, limit, offset int) ([]*entity.Notification, error)
}
