package impl

import (
	"context"
	"fmt"
	"log/slog"

	"townhub/config"
	"townhub/internal/domain/repository"
	"townhub/internal/domain/service"
	"townhub/internal/errors"
	"townhub/internal/usecase"
)

const (
	// Firebase batch size limit
	firebaseBatchSize = 500

	pushTitle = "新貼文通知"
)

type relayService struct {
	notificationRepo repository.NotificationRepository
	userRepo         repository.UserRepository
	pushSender       service.PushSender
	push             *config.PushConfig
	logger           *slog.Logger
}

// NewRelayService creates a new relay service instance
func NewRelayService(
	notificationRepo repository.NotificationRepository,
	userRepo repository.UserRepository,
	pushSender service.PushSender,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.RelayUsecase {
	return &relayService{
		notificationRepo: notificationRepo,
		userRepo:         userRepo,
		pushSender:       pushSender,
		push:             cfg.Push,
		logger:           logger,
	}
}

// ProcessNotificationEvent re-reads the notification document named by the
// event instead of trusting the event payload, then multicasts to the
// recipient's registered tokens. Nothing here is retried: a failed or
// partial delivery is logged and the event is considered handled.
func (s *relayService) ProcessNotificationEvent(ctx context.Context, event *service.NotificationEvent) error {
	logger := s.logger.With(
		slog.String("request_id", event.RequestID),
		slog.String("notification_id", event.NotificationID))

	notification, err := s.notificationRepo.FindByID(ctx, event.NotificationID)
	if err != nil {
		if errors.Is(err, repository.ErrNotificationNotFound) {
			logger.Warn("notification document missing, dropping event")
			return nil
		}
		return errors.Wrap(err, "read notification")
	}

	recipient, err := s.userRepo.FindByUID(ctx, notification.RecipientUID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			logger.Warn("recipient has no profile, dropping event",
				slog.String("recipient_uid", notification.RecipientUID))
			return nil
		}
		return errors.Wrap(err, "read recipient")
	}

	if len(recipient.FCMTokens) == 0 {
		logger.Info("recipient has no registered tokens, dropping event",
			slog.String("recipient_uid", recipient.UID))
		return nil
	}

	payload := service.PushPayload{
		Title:       pushTitle,
		Body:        fmt.Sprintf("%s 發佈了新貼文「%s」", notification.SenderName, notification.PostTitle),
		Icon:        s.push.Icon,
		ClickAction: s.push.ClickActionBase,
	}

	var (
		totalSent     int
		totalFailed   int
		invalidTokens []string
	)

	tokens := recipient.FCMTokens
	for i := 0; i < len(tokens); i += firebaseBatchSize {
		end := i + firebaseBatchSize
		if end > len(tokens) {
			end = len(tokens)
		}
		batch := tokens[i:end]

		sent, failed, invalid, err := s.pushSender.SendMulticast(ctx, batch, payload)
		if err != nil {
			// Continue with remaining batches, delivery is best effort.
			logger.Error("multicast batch failed", slog.Any("error", err))
			totalFailed += len(batch)
			continue
		}

		totalSent += sent
		totalFailed += failed
		invalidTokens = append(invalidTokens, invalid...)
	}

	// Prune tokens FCM reported as dead so later events skip them.
	if len(invalidTokens) > 0 {
		if err := s.userRepo.RemoveFCMTokens(ctx, recipient.UID, invalidTokens); err != nil {
			logger.Error("failed to prune invalid tokens", slog.Any("error", err))
		}
	}

	logger.Info("notification event processed",
		slog.Int("sent", totalSent),
		slog.Int("failed", totalFailed),
		slog.Int("pruned", len(invalidTokens)))

	return nil
}
