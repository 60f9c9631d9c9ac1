package service

import (
	"context"
)

// NotificationEvent is the message handed to the push relay whenever a
// notification document is created. It carries the document id — the relay
// re-reads the document itself — plus denormalized fields for tracing.
type NotificationEvent struct {
	RequestID      string `json:"request_id,omitempty"` // For distributed tracing
	NotificationID string `json:"notification_id"`
	RecipientUID   string `json:"recipient_uid"`
	SenderName     string `json:"sender_name"`
	PostTitle      string `json:"post_title"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishNotificationEvent publishes a notification event for async processing
	PublishNotificationEvent(ctx context.Context, event *NotificationEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
