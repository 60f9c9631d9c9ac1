package impl

import (
	"context"
	"testing"

	"townhub/internal/domain/entity"
	domainerrors "townhub/internal/domain/errors"
	"townhub/internal/domain/repository"
	"townhub/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestReviewService_SubmitReview_RatingOutOfRange(t *testing.T) {
	service, _, _ := createTestReviewService(t)

	for _, rating := range []int{0, -1, 6, 100} {
		_, err := service.SubmitReview(context.Background(), entity.Session{UID: "u"}, "b1",
			&usecase.ReviewInput{Rating: rating, Text: "text"})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidRating, "rating %d", rating)
	}
}

func TestReviewService_SubmitReview_EmptyText(t *testing.T) {
	service, _, _ := createTestReviewService(t)

	_, err := service.SubmitReview(context.Background(), entity.Session{UID: "u"}, "b1",
		&usecase.ReviewInput{Rating: 4, Text: "   "})

	assert.ErrorIs(t, err, domainerrors.ErrEmptyReviewText)
}

func TestReviewService_SubmitReview_BusinessGone(t *testing.T) {
	service, businessRepo, userRepo := createTestReviewService(t)

	ctx := context.Background()
	userRepo.EXPECT().FindByUID(ctx, "u1").Return(&entity.UserProfile{UID: "u1", DisplayName: "Mei"}, nil)
	businessRepo.EXPECT().
		SubmitReview(ctx, "gone", mock.Anything).
		Return(nil, repository.ErrBusinessNotFound)

	_, err := service.SubmitReview(ctx, entity.Session{UID: "u1"}, "gone",
		&usecase.ReviewInput{Rating: 4, Text: "too late"})

	assert.ErrorIs(t, err, domainerrors.ErrBusinessNotFound)
}

func TestReviewService_SubmitReview_TransactionFailure(t *testing.T) {
	service, businessRepo, userRepo := createTestReviewService(t)

	ctx := context.Background()
	userRepo.EXPECT().FindByUID(ctx, "u1").Return(&entity.UserProfile{UID: "u1", DisplayName: "Mei"}, nil)
	businessRepo.EXPECT().
		SubmitReview(ctx, "b1", mock.Anything).
		Return(nil, errors.New("contention"))

	summary, err := service.SubmitReview(ctx, entity.Session{UID: "u1"}, "b1",
		&usecase.ReviewInput{Rating: 4, Text: "text"})

	assert.Error(t, err)
	assert.Nil(t, summary)
}
