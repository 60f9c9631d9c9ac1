package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyRating_FirstReview(t *testing.T) {
	summary := ApplyRating(RatingSummary{}, nil, 4)

	assert.Equal(t, int64(1), summary.ReviewCount)
	assert.InDelta(t, 4.0, summary.AverageRating, 1e-9)
}

func TestApplyRating_NewReviewExtendsAverage(t *testing.T) {
	summary := RatingSummary{AverageRating: 4.0, ReviewCount: 2}

	summary = ApplyRating(summary, nil, 1)

	assert.Equal(t, int64(3), summary.ReviewCount)
	assert.InDelta(t, 3.0, summary.AverageRating, 1e-9)
}

func TestApplyRating_ResubmissionKeepsCount(t *testing.T) {
	// Three reviews averaging 3.0; one author changes their 1 into a 4.
	summary := RatingSummary{AverageRating: 3.0, ReviewCount: 3}
	previous := 1

	summary = ApplyRating(summary, &previous, 4)

	assert.Equal(t, int64(3), summary.ReviewCount)
	assert.InDelta(t, 4.0, summary.AverageRating, 1e-9)
}

func TestApplyRating_ResubmissionSameRatingIsStable(t *testing.T) {
	summary := RatingSummary{AverageRating: 3.5, ReviewCount: 4}
	previous := 5

	summary = ApplyRating(summary, &previous, 5)

	assert.Equal(t, int64(4), summary.ReviewCount)
	assert.InDelta(t, 3.5, summary.AverageRating, 1e-9)
}

func TestApplyRating_SequenceMatchesPlainMean(t *testing.T) {
	ratings := []int{5, 3, 4, 1, 2, 5, 5, 4}

	var summary RatingSummary
	sum := 0
	for _, r := range ratings {
		summary = ApplyRating(summary, nil, r)
		sum += r
	}

	assert.Equal(t, int64(len(ratings)), summary.ReviewCount)
	assert.InDelta(t, float64(sum)/float64(len(ratings)), summary.AverageRating, 1e-9)
}

func TestBusinessNormalize(t *testing.T) {
	b := &Business{Name: "Luigi's Pizzeria"}
	b.Normalize()

	assert.Equal(t, "luigi's pizzeria", b.NameLower)
}
