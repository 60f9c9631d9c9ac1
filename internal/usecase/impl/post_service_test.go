package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"townhub/internal/domain/entity"
	domainerrors "townhub/internal/domain/errors"
	"townhub/internal/domain/repository"
	mockRepo "townhub/internal/mocks/repository"
	mockUC "townhub/internal/mocks/usecase"
	"townhub/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestPostService(t *testing.T) (
	usecase.PostUsecase,
	*mockRepo.MockPostRepository,
	*mockRepo.MockBusinessRepository,
	*mockRepo.MockUserRepository,
	*mockUC.MockNotificationUsecase,
) {
	postRepo := mockRepo.NewMockPostRepository(t)
	businessRepo := mockRepo.NewMockBusinessRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	notificationUC := mockUC.NewMockNotificationUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	service := NewPostService(postRepo, businessRepo, userRepo, notificationUC, logger)

	return service, postRepo, businessRepo, userRepo, notificationUC
}

func TestPostService_CreatePost_NotifiesOwner(t *testing.T) {
	service, postRepo, businessRepo, userRepo, notificationUC := createTestPostService(t)

	ctx := context.Background()
	session := entity.Session{UID: "visitor", Name: "Chen"}

	businessRepo.EXPECT().FindByID(ctx, "b1").Return(&entity.Business{ID: "b1", OwnerUID: "owner"}, nil)
	userRepo.EXPECT().FindByUID(ctx, "visitor").Return(&entity.UserProfile{UID: "visitor", DisplayName: "阿誠"}, nil)
	postRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)
	notificationUC.EXPECT().
		NotifyNewPost(ctx, "owner", "阿誠", "週年慶活動").
		Return(&entity.Notification{ID: "n1"}, nil)

	post, err := service.CreatePost(ctx, session, &usecase.PostInput{BusinessID: "b1", Title: "週年慶活動", Body: "..."})

	require.NoError(t, err)
	assert.Equal(t, "阿誠", post.AuthorName)
	assert.Equal(t, "b1", post.BusinessID)
}

func TestPostService_CreatePost_OwnerPostSkipsNotification(t *testing.T) {
	service, postRepo, businessRepo, userRepo, _ := createTestPostService(t)

	ctx := context.Background()
	session := entity.Session{UID: "owner", Name: "Boss"}

	businessRepo.EXPECT().FindByID(ctx, "b1").Return(&entity.Business{ID: "b1", OwnerUID: "owner"}, nil)
	userRepo.EXPECT().FindByUID(ctx, "owner").Return(&entity.UserProfile{UID: "owner", DisplayName: "Boss"}, nil)
	postRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)

	_, err := service.CreatePost(ctx, session, &usecase.PostInput{BusinessID: "b1", Title: "公告"})

	require.NoError(t, err)
}

func TestPostService_CreatePost_SurvivesNotificationFailure(t *testing.T) {
	service, postRepo, businessRepo, userRepo, notificationUC := createTestPostService(t)

	ctx := context.Background()
	session := entity.Session{UID: "visitor", Name: "Chen"}

	businessRepo.EXPECT().FindByID(ctx, "b1").Return(&entity.Business{ID: "b1", OwnerUID: "owner"}, nil)
	userRepo.EXPECT().FindByUID(ctx, "visitor").Return(nil, repository.ErrUserNotFound)
	postRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)
	notificationUC.EXPECT().
		NotifyNewPost(ctx, "owner", "Chen", "標題").
		Return(nil, assert.AnError)

	post, err := service.CreatePost(ctx, session, &usecase.PostInput{BusinessID: "b1", Title: "標題"})

	require.NoError(t, err)
	assert.NotNil(t, post)
}

func TestPostService_CreatePost_BusinessGone(t *testing.T) {
	service, _, businessRepo, _, _ := createTestPostService(t)

	businessRepo.EXPECT().FindByID(mock.Anything, "gone").Return(nil, repository.ErrBusinessNotFound)

	_, err := service.CreatePost(context.Background(), entity.Session{UID: "u"},
		&usecase.PostInput{BusinessID: "gone", Title: "標題"})

	assert.ErrorIs(t, err, domainerrors.ErrBusinessNotFound)
}

func TestPostService_CreatePost_EmptyTitle(t *testing.T) {
	service, _, _, _, _ := createTestPostService(t)

	_, err := service.CreatePost(context.Background(), entity.Session{UID: "u"},
		&usecase.PostInput{BusinessID: "b1", Title: "  "})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestPostService_ListPosts(t *testing.T) {
	service, postRepo, _, _, _ := createTestPostService(t)

	ctx := context.Background()
	postRepo.EXPECT().List(ctx, "b1", 20, 0).Return([]*entity.Post{{ID: "p1"}, {ID: "p2"}}, nil)

	posts, err := service.ListPosts(ctx, "b1", 20, 0)

	require.NoError(t, err)
	assert.Len(t, posts, 2)
}
