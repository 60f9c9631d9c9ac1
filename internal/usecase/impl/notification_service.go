package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "townhub/internal/delivery/context"
	"townhub/internal/domain/entity"
	domainerrors "townhub/internal/domain/errors"
	"townhub/internal/domain/repository"
	"townhub/internal/domain/service"
	"townhub/internal/errors"
	"townhub/internal/usecase"

	"github.com/google/uuid"
)

type notificationService struct {
	notificationRepo repository.NotificationRepository
	publisher        service.EventPublisher
	logger           *slog.Logger
}

// NewNotificationService creates a new notification service instance
func NewNotificationService(
	notificationRepo repository.NotificationRepository,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.NotificationUsecase {
	return &notificationService{
		notificationRepo: notificationRepo,
		publisher:        publisher,
		logger:           logger,
	}
}

// NotifyNewPost writes the notification document first and only then
// publishes the relay event. The document is the source of truth for the
// in-app feed and must survive regardless of delivery outcome.
func (s *notificationService) NotifyNewPost(ctx context.Context, recipientUID, senderName, postTitle string) (*entity.Notification, error) {
	notification := &entity.Notification{
		RecipientUID: recipientUID,
		SenderName:   senderName,
		PostTitle:    postTitle,
		CreatedAt:    time.Now(),
	}

	if err := s.notificationRepo.Create(ctx, notification); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to create notification")
	}

	requestID := deliverycontext.GetRequestIDFromContext(ctx)
	if requestID == "" {
		requestID = uuid.New().String()
	}

	event := &service.NotificationEvent{
		RequestID:      requestID,
		NotificationID: notification.ID,
		RecipientUID:   recipientUID,
		SenderName:     senderName,
		PostTitle:      postTitle,
	}

	if err := s.publisher.PublishNotificationEvent(ctx, event); err != nil {
		// Delivery is best effort. The in-app document already exists.
		s.logger.Error("failed to publish notification event",
			slog.String("notification_id", notification.ID),
			slog.Any("error", err))
	}

	return notification, nil
}

func (s *notificationService) ListNotifications(ctx context.Context, session entity.Session, limit, offset int) ([]*entity.Notification, error) {
	notifications, err := s.notificationRepo.ListByRecipient(ctx, session.UID, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "list notifications")
	}
	return notifications, nil
}
