package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"townhub/config"
	"townhub/internal/domain/entity"
	"townhub/internal/domain/repository"
	"townhub/internal/domain/service"
	mockRepo "townhub/internal/mocks/repository"
	mockSvc "townhub/internal/mocks/service"
	"townhub/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestRelayService(t *testing.T) (
	usecase.RelayUsecase,
	*mockRepo.MockNotificationRepository,
	*mockRepo.MockUserRepository,
	*mockSvc.MockPushSender,
) {
	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	pushSender := mockSvc.NewMockPushSender(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	relay := NewRelayService(notificationRepo, userRepo, pushSender, &config.Config{
		Push: &config.PushConfig{
			Icon:            "/icons/icon-192.png",
			ClickActionBase: "https://townhub.example.com",
		},
	}, logger)

	return relay, notificationRepo, userRepo, pushSender
}

func relayEvent() *service.NotificationEvent {
	return &service.NotificationEvent{
		RequestID:      "req-1",
		NotificationID: "n1",
		RecipientUID:   "owner",
		SenderName:     "阿誠",
		PostTitle:      "週年慶活動",
	}
}

func TestRelayService_ProcessNotificationEvent_Success(t *testing.T) {
	relay, notificationRepo, userRepo, pushSender := createTestRelayService(t)

	ctx := context.Background()

	notificationRepo.EXPECT().FindByID(ctx, "n1").Return(&entity.Notification{
		ID:           "n1",
		RecipientUID: "owner",
		SenderName:   "阿誠",
		PostTitle:    "週年慶活動",
	}, nil)
	userRepo.EXPECT().FindByUID(ctx, "owner").Return(&entity.UserProfile{
		UID:       "owner",
		FCMTokens: []string{"tok-1", "tok-2"},
	}, nil)
	pushSender.EXPECT().
		SendMulticast(ctx, []string{"tok-1", "tok-2"}, mock.Anything).
		Run(func(_ context.Context, _ []string, payload service.PushPayload) {
			assert.Equal(t, "新貼文通知", payload.Title)
			assert.Contains(t, payload.Body, "阿誠")
			assert.Contains(t, payload.Body, "週年慶活動")
			assert.Equal(t, "/icons/icon-192.png", payload.Icon)
			assert.Equal(t, "https://townhub.example.com", payload.ClickAction)
		}).
		Return(2, 0, nil, nil)

	err := relay.ProcessNotificationEvent(ctx, relayEvent())

	require.NoError(t, err)
}

func TestRelayService_MissingNotificationIsNoop(t *testing.T) {
	relay, notificationRepo, _, _ := createTestRelayService(t)

	ctx := context.Background()
	notificationRepo.EXPECT().FindByID(ctx, "n1").Return(nil, repository.ErrNotificationNotFound)

	err := relay.ProcessNotificationEvent(ctx, relayEvent())

	require.NoError(t, err)
}

func TestRelayService_MissingRecipientIsNoop(t *testing.T) {
	relay, notificationRepo, userRepo, _ := createTestRelayService(t)

	ctx := context.Background()
	notificationRepo.EXPECT().FindByID(ctx, "n1").Return(&entity.Notification{ID: "n1", RecipientUID: "owner"}, nil)
	userRepo.EXPECT().FindByUID(ctx, "owner").Return(nil, repository.ErrUserNotFound)

	err := relay.ProcessNotificationEvent(ctx, relayEvent())

	require.NoError(t, err)
}

func TestRelayService_NoTokensIsNoop(t *testing.T) {
	relay, notificationRepo, userRepo, _ := createTestRelayService(t)

	ctx := context.Background()
	notificationRepo.EXPECT().FindByID(ctx, "n1").Return(&entity.Notification{ID: "n1", RecipientUID: "owner"}, nil)
	userRepo.EXPECT().FindByUID(ctx, "owner").Return(&entity.UserProfile{UID: "owner"}, nil)

	err := relay.ProcessNotificationEvent(ctx, relayEvent())

	require.NoError(t, err)
}

func TestRelayService_PrunesInvalidTokens(t *testing.T) {
	relay, notificationRepo, userRepo, pushSender := createTestRelayService(t)

	ctx := context.Background()
	notificationRepo.EXPECT().FindByID(ctx, "n1").Return(&entity.Notification{ID: "n1", RecipientUID: "owner"}, nil)
	userRepo.EXPECT().FindByUID(ctx, "owner").Return(&entity.UserProfile{
		UID:       "owner",
		FCMTokens: []string{"tok-1", "tok-dead"},
	}, nil)
	pushSender.EXPECT().
		SendMulticast(ctx, []string{"tok-1", "tok-dead"}, mock.Anything).
		Return(1, 1, []string{"tok-dead"}, nil)
	userRepo.EXPECT().RemoveFCMTokens(ctx, "owner", []string{"tok-dead"}).Return(nil)

	err := relay.ProcessNotificationEvent(ctx, relayEvent())

	require.NoError(t, err)
}

func TestRelayService_DeliveryFailureIsNotRetried(t *testing.T) {
	relay, notificationRepo, userRepo, pushSender := createTestRelayService(t)

	ctx := context.Background()
	notificationRepo.EXPECT().FindByID(ctx, "n1").Return(&entity.Notification{ID: "n1", RecipientUID: "owner"}, nil)
	userRepo.EXPECT().FindByUID(ctx, "owner").Return(&entity.UserProfile{
		UID:       "owner",
		FCMTokens: []string{"tok-1"},
	}, nil)
	pushSender.EXPECT().
		SendMulticast(ctx, []string{"tok-1"}, mock.Anything).
		Return(0, 0, nil, assert.AnError).
		Once()

	err := relay.ProcessNotificationEvent(ctx, relayEvent())

	require.NoError(t, err)
}
