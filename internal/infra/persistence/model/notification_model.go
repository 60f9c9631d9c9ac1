package model

import (
	"time"

	"townhub/internal/domain/entity"

	"github.com/pkg/errors"
)

// NotificationModel is the Firestore document shape for the 'notifications'
// collection. Documents are write-once; the relay reads them verbatim.
type NotificationModel struct {
	RecipientUID string    `firestore:"recipientUid"`
	SenderName   string    `firestore:"senderName"`
	PostTitle    string    `firestore:"postTitle"`
	CreatedAt    time.Time `firestore:"createdAt"`
}

// FromNotificationDomain converts a domain entity into its document shape.
func FromNotificationDomain(notification *entity.Notification) *NotificationModel {
	return &NotificationModel{
		RecipientUID: notification.RecipientUID,
		SenderName:   notification.SenderName,
		PostTitle:    notification.PostTitle,
		CreatedAt:    notification.CreatedAt,
	}
}

// ToDomain validates the decoded document and converts it to the domain entity.
func (m *NotificationModel) ToDomain(id string) (*entity.Notification, error) {
	if m.RecipientUID == "" {
		return nil, errors.Errorf("malformed notification document %s: missing recipient", id)
	}

	return &entity.Notification{
		ID:           id,
		RecipientUID: m.RecipientUID,
		SenderName:   m.SenderName,
		PostTitle:    m.PostTitle,
		CreatedAt:    m.CreatedAt,
	}, nil
}
