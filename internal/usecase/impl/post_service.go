package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"townhub/internal/domain/entity"
	domainerrors "townhub/internal/domain/errors"
	"townhub/internal/domain/repository"
	"townhub/internal/errors"
	"townhub/internal/usecase"
)

type postService struct {
	postRepo       repository.PostRepository
	businessRepo   repository.BusinessRepository
	userRepo       repository.UserRepository
	notificationUC usecase.NotificationUsecase
	logger         *slog.Logger
}

// NewPostService creates a new post service instance
func NewPostService(
	postRepo repository.PostRepository,
	businessRepo repository.BusinessRepository,
	userRepo repository.UserRepository,
	notificationUC usecase.NotificationUsecase,
	logger *slog.Logger,
) usecase.PostUsecase {
	return &postService{
		postRepo:       postRepo,
		businessRepo:   businessRepo,
		userRepo:       userRepo,
		notificationUC: notificationUC,
		logger:         logger,
	}
}

func (s *postService) CreatePost(ctx context.Context, session entity.Session, input *usecase.PostInput) (*entity.Post, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, domainerrors.ErrValidationFailed
	}

	business, err := s.businessRepo.FindByID(ctx, input.BusinessID)
	if err != nil {
		if errors.Is(err, repository.ErrBusinessNotFound) {
			return nil, domainerrors.ErrBusinessNotFound
		}
		return nil, errors.Wrap(err, "create post")
	}

	post := &entity.Post{
		BusinessID: business.ID,
		AuthorUID:  session.UID,
		AuthorName: s.resolveAuthorName(ctx, session),
		Title:      title,
		Body:       input.Body,
		CreatedAt:  time.Now(),
	}

	if err := s.postRepo.Create(ctx, post); err != nil {
		s.logger.Error("failed to create post", slog.Any("error", err))
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to create post")
	}

	// Notify the business owner about the new post. The post is already
	// committed, so a notification failure is logged and swallowed.
	if business.OwnerUID != "" && business.OwnerUID != session.UID {
		if _, err := s.notificationUC.NotifyNewPost(ctx, business.OwnerUID, post.AuthorName, post.Title); err != nil {
			s.logger.Error("failed to notify business owner",
				slog.String("post_id", post.ID),
				slog.String("recipient_uid", business.OwnerUID),
				slog.Any("error", err))
		}
	}

	return post, nil
}

func (s *postService) ListPosts(ctx context.Context, businessID string, limit, offset int) ([]*entity.Post, error) {
	posts, err := s.postRepo.List(ctx, businessID, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "list posts")
	}
	return posts, nil
}

func (s *postService) resolveAuthorName(ctx context.Context, session entity.Session) string {
	profile, err := s.userRepo.FindByUID(ctx, session.UID)
	if err == nil && profile.DisplayName != "" {
		return profile.DisplayName
	}
	if session.Name != "" {
		return session.Name
	}
	return "匿名用戶"
}
