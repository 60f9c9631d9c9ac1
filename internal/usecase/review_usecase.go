package usecase

import (
	"context"

	"townhub/internal/domain/entity"
)

// ReviewInput carries the form fields for submitting a review.
type ReviewInput struct {
	Rating int    `json:"rating"`
	Text   string `json:"text"`
}

// ReviewUsecase defines the interface for review submission.
type ReviewUsecase interface {
	// SubmitReview writes the review and recomputes the business rating
	// aggregates atomically. Resubmitting replaces the user's previous
	// review in place without growing the review count. Returns the
	// post-commit aggregates.
	SubmitReview(ctx context.Context, session entity.Session, businessID string, input *ReviewInput) (*entity.RatingSummary, error)
}
