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

type reviewService struct {
	businessRepo repository.BusinessRepository
	userRepo     repository.UserRepository
	logger       *slog.Logger
}

// NewReviewService creates a new review service instance
func NewReviewService(
	businessRepo repository.BusinessRepository,
	userRepo repository.UserRepository,
	logger *slog.Logger,
) usecase.ReviewUsecase {
	return &reviewService{
		businessRepo: businessRepo,
		userRepo:     userRepo,
		logger:       logger,
	}
}

// SubmitReview validates the input, resolves the author's display name and
// commits the review together with the recomputed aggregates in a single
// transaction. The aggregate arithmetic lives in entity.ApplyRating.
func (s *reviewService) SubmitReview(ctx context.Context, session entity.Session, businessID string, input *usecase.ReviewInput) (*entity.RatingSummary, error) {
	if input.Rating < entity.MinRating || input.Rating > entity.MaxRating {
		return nil, domainerrors.ErrInvalidRating
	}

	text := strings.TrimSpace(input.Text)
	if text == "" {
		return nil, domainerrors.ErrEmptyReviewText
	}

	review := &entity.Review{
		AuthorUID:  session.UID,
		BusinessID: businessID,
		Rating:     input.Rating,
		Text:       text,
		AuthorName: s.resolveAuthorName(ctx, session),
		CreatedAt:  time.Now(),
	}

	summary, err := s.businessRepo.SubmitReview(ctx, businessID, review)
	if err != nil {
		if errors.Is(err, repository.ErrBusinessNotFound) {
			return nil, domainerrors.ErrBusinessNotFound
		}
		s.logger.Error("failed to submit review",
			slog.String("business_id", businessID),
			slog.Any("error", err))
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to submit review")
	}

	return summary, nil
}

// resolveAuthorName prefers the stored profile name so renamed users see
// their current name on new reviews. The session claim is the fallback.
func (s *reviewService) resolveAuthorName(ctx context.Context, session entity.Session) string {
	profile, err := s.userRepo.FindByUID(ctx, session.UID)
	if err == nil && profile.DisplayName != "" {
		return profile.DisplayName
	}
	if session.Name != "" {
		return session.Name
	}
	return "匿名用戶"
}
