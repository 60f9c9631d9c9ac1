package model

import (
	"time"

	"townhub/internal/domain/entity"

	"github.com/pkg/errors"
)

// ReviewModel is the Firestore document shape for a business's 'reviews'
// subcollection. The document id is the author's UID and is not stored
// as a field.
type ReviewModel struct {
	Rating     int64     `firestore:"rating"`
	Text       string    `firestore:"text"`
	AuthorName string    `firestore:"authorName"`
	CreatedAt  time.Time `firestore:"createdAt"`
}

// FromReviewDomain converts a domain entity into its document shape.
func FromReviewDomain(review *entity.Review) *ReviewModel {
	return &ReviewModel{
		Rating:     int64(review.Rating),
		Text:       review.Text,
		AuthorName: review.AuthorName,
		CreatedAt:  review.CreatedAt,
	}
}

// ToDomain validates the decoded document and converts it to the domain entity.
func (m *ReviewModel) ToDomain(businessID, authorUID string) (*entity.Review, error) {
	if m.Rating < entity.MinRating || m.Rating > entity.MaxRating {
		return nil, errors.Errorf("malformed review document %s/%s: rating out of range", businessID, authorUID)
	}
	if m.Text == "" {
		return nil, errors.Errorf("malformed review document %s/%s: empty text", businessID, authorUID)
	}

	return &entity.Review{
		AuthorUID:  authorUID,
		BusinessID: businessID,
		Rating:     int(m.Rating),
		Text:       m.Text,
		AuthorName: m.AuthorName,
		CreatedAt:  m.CreatedAt,
	}, nil
}
