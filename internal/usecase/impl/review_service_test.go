package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"townhub/internal/domain/entity"
	mockRepo "townhub/internal/mocks/repository"
	"townhub/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestReviewService(t *testing.T) (
	usecase.ReviewUsecase,
	*mockRepo.MockBusinessRepository,
	*mockRepo.MockUserRepository,
) {
	businessRepo := mockRepo.NewMockBusinessRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	service := NewReviewService(businessRepo, userRepo, logger)

	return service, businessRepo, userRepo
}

func TestReviewService_SubmitReview_Success(t *testing.T) {
	service, businessRepo, userRepo := createTestReviewService(t)

	ctx := context.Background()
	session := entity.Session{UID: "u1", Name: "Mei"}

	userRepo.EXPECT().FindByUID(ctx, "u1").Return(&entity.UserProfile{UID: "u1", DisplayName: "小美"}, nil)
	businessRepo.EXPECT().
		SubmitReview(ctx, "b1", mock.Anything).
		Run(func(_ context.Context, _ string, review *entity.Review) {
			assert.Equal(t, "u1", review.AuthorUID)
			assert.Equal(t, "小美", review.AuthorName)
			assert.Equal(t, 5, review.Rating)
			assert.Equal(t, "Great coffee", review.Text)
		}).
		Return(&entity.RatingSummary{AverageRating: 5.0, ReviewCount: 1}, nil)

	summary, err := service.SubmitReview(ctx, session, "b1", &usecase.ReviewInput{Rating: 5, Text: " Great coffee "})

	require.NoError(t, err)
	assert.Equal(t, int64(1), summary.ReviewCount)
	assert.InDelta(t, 5.0, summary.AverageRating, 1e-9)
}

func TestReviewService_SubmitReview_FallsBackToSessionName(t *testing.T) {
	service, businessRepo, userRepo := createTestReviewService(t)

	ctx := context.Background()
	session := entity.Session{UID: "u2", Name: "Chen"}

	userRepo.EXPECT().FindByUID(ctx, "u2").Return(nil, assert.AnError)
	businessRepo.EXPECT().
		SubmitReview(ctx, "b1", mock.Anything).
		Run(func(_ context.Context, _ string, review *entity.Review) {
			assert.Equal(t, "Chen", review.AuthorName)
		}).
		Return(&entity.RatingSummary{AverageRating: 3.0, ReviewCount: 2}, nil)

	_, err := service.SubmitReview(ctx, session, "b1", &usecase.ReviewInput{Rating: 3, Text: "ok"})

	require.NoError(t, err)
}
