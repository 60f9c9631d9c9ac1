// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"townhub/internal/domain/entity"
)

// ErrNotificationNotFound is returned when a notification document is not found.
var ErrNotificationNotFound = errors.New("notification not found")

// NotificationRepository defines the interface for notification-document persistence.
// Notification documents are write-once: the relay only ever reads them.
type NotificationRepository interface {
	// Create persists a new notification document.
	Create(ctx context.Context, notification *entity.Notification) error

	// FindByID retrieves a notification by its document id.
	// Returns ErrNotificationNotFound when the document does not exist.
	FindByID(ctx context.Context, id string) (*entity.Notification, error)

	// ListByRecipient returns a user's notifications newest first.
	ListByRecipient(ctx context.Context, recipientUID string, limit, offset int) ([]*entity.Notification, error)
}
