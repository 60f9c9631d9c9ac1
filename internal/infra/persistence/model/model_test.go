package model

import (
	"testing"
	"time"

	"townhub/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBusinessModel_ToDomain(t *testing.T) {
	m := &BusinessModel{
		Name:          "Blue Bottle",
		NameLower:     "blue bottle",
		Category:      "cafe",
		OwnerUID:      "owner-1",
		AverageRating: 4.5,
		ReviewCount:   2,
		CreatedAt:     time.Now(),
	}

	business, err := m.ToDomain("b1")

	require.NoError(t, err)
	assert.Equal(t, "b1", business.ID)
	assert.Equal(t, "Blue Bottle", business.Name)
	assert.Equal(t, int64(2), business.ReviewCount)
}

func TestBusinessModel_ToDomain_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		model BusinessModel
	}{
		{"missing name", BusinessModel{ReviewCount: 1, AverageRating: 3}},
		{"negative review count", BusinessModel{Name: "x", ReviewCount: -1}},
		{"rating above scale", BusinessModel{Name: "x", AverageRating: 9.5}},
		{"negative rating", BusinessModel{Name: "x", AverageRating: -0.5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.model.ToDomain("b1")
			assert.Error(t, err)
		})
	}
}

func TestReviewModel_RoundTrip(t *testing.T) {
	review := &entity.Review{
		AuthorUID:  "u1",
		BusinessID: "b1",
		Rating:     4,
		Text:       "solid",
		AuthorName: "Mei",
		CreatedAt:  time.Now(),
	}

	decoded, err := FromReviewDomain(review).ToDomain("b1", "u1")

	require.NoError(t, err)
	assert.Equal(t, review.Rating, decoded.Rating)
	assert.Equal(t, review.AuthorUID, decoded.AuthorUID)
	assert.Equal(t, review.BusinessID, decoded.BusinessID)
}

func TestReviewModel_ToDomain_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		model ReviewModel
	}{
		{"rating below scale", ReviewModel{Rating: 0, Text: "x"}},
		{"rating above scale", ReviewModel{Rating: 6, Text: "x"}},
		{"empty text", ReviewModel{Rating: 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.model.ToDomain("b1", "u1")
			assert.Error(t, err)
		})
	}
}

func TestNotificationModel_ToDomain_MissingRecipient(t *testing.T) {
	m := &NotificationModel{SenderName: "Chen", PostTitle: "t"}

	_, err := m.ToDomain("n1")

	assert.Error(t, err)
}
