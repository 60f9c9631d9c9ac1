package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	deliverycontext "townhub/internal/delivery/context"
	"townhub/internal/domain/entity"
	"townhub/internal/domain/service"
	mockRepo "townhub/internal/mocks/repository"
	mockSvc "townhub/internal/mocks/service"
	"townhub/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestNotificationService(t *testing.T) (
	usecase.NotificationUsecase,
	*mockRepo.MockNotificationRepository,
	*mockSvc.MockEventPublisher,
) {
	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	svc := NewNotificationService(notificationRepo, publisher, logger)

	return svc, notificationRepo, publisher
}

func TestNotificationService_NotifyNewPost_Success(t *testing.T) {
	svc, notificationRepo, publisher := createTestNotificationService(t)

	ctx := context.Background()

	notificationRepo.EXPECT().
		Create(ctx, mock.Anything).
		Run(func(_ context.Context, n *entity.Notification) {
			n.ID = "n1"
		}).
		Return(nil)

	publisher.EXPECT().
		PublishNotificationEvent(ctx, mock.Anything).
		Run(func(_ context.Context, event *service.NotificationEvent) {
			assert.Equal(t, "n1", event.NotificationID)
			assert.Equal(t, "owner", event.RecipientUID)
			assert.NotEmpty(t, event.RequestID)
		}).
		Return(nil)

	notification, err := svc.NotifyNewPost(ctx, "owner", "阿誠", "週年慶活動")

	require.NoError(t, err)
	assert.Equal(t, "n1", notification.ID)
	assert.Equal(t, "owner", notification.RecipientUID)
}

func TestNotificationService_NotifyNewPost_PropagatesRequestID(t *testing.T) {
	svc, notificationRepo, publisher := createTestNotificationService(t)

	ctx := deliverycontext.WithRequestID(context.Background(), "req-7")

	notificationRepo.EXPECT().
		Create(ctx, mock.Anything).
		Run(func(_ context.Context, n *entity.Notification) {
			n.ID = "n2"
		}).
		Return(nil)

	publisher.EXPECT().
		PublishNotificationEvent(ctx, mock.Anything).
		Run(func(_ context.Context, event *service.NotificationEvent) {
			assert.Equal(t, "req-7", event.RequestID)
		}).
		Return(nil)

	_, err := svc.NotifyNewPost(ctx, "owner", "阿誠", "週年慶活動")

	require.NoError(t, err)
}

func TestNotificationService_NotifyNewPost_DocumentSurvivesPublishFailure(t *testing.T) {
	svc, notificationRepo, publisher := createTestNotificationService(t)

	ctx := context.Background()

	notificationRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)
	publisher.EXPECT().PublishNotificationEvent(ctx, mock.Anything).Return(assert.AnError)

	notification, err := svc.NotifyNewPost(ctx, "owner", "Chen", "標題")

	require.NoError(t, err)
	assert.NotNil(t, notification)
}

func TestNotificationService_NotifyNewPost_CreateFailure(t *testing.T) {
	svc, notificationRepo, _ := createTestNotificationService(t)

	ctx := context.Background()
	notificationRepo.EXPECT().Create(ctx, mock.Anything).Return(assert.AnError)

	_, err := svc.NotifyNewPost(ctx, "owner", "Chen", "標題")

	assert.Error(t, err)
}

func TestNotificationService_ListNotifications(t *testing.T) {
	svc, notificationRepo, _ := createTestNotificationService(t)

	ctx := context.Background()
	session := entity.Session{UID: "owner"}

	notificationRepo.EXPECT().
		ListByRecipient(ctx, "owner", 20, 0).
		Return([]*entity.Notification{{ID: "n2"}, {ID: "n1"}}, nil)

	notifications, err := svc.ListNotifications(ctx, session, 20, 0)

	require.NoError(t, err)
	assert.Len(t, notifications, 2)
}
