// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"strings"
	"time"
)

// Business represents a listed local business in the directory.
type Business struct {
	ID            string    `json:"id"`             // Firestore document id.
	Name          string    `json:"name"`           // Display name of the business.
	NameLower     string    `json:"-"`              // Lowercased name, the prefix-search key.
	Category      string    `json:"category"`       // Directory category (e.g. "restaurant").
	Address       string    `json:"address"`        // Street address.
	Phone         string    `json:"phone"`          // Contact phone number.
	Website       string    `json:"website"`        // Public website URL.
	Description   string    `json:"description"`    // Free-text description.
	CoverImage    string    `json:"cover_image"`    // Reference to the cover image in object storage.
	OwnerUID      string    `json:"owner_uid"`      // UID of the user who listed this business.
	AverageRating float64   `json:"average_rating"` // Running aggregate, maintained by the review transaction.
	ReviewCount   int64     `json:"review_count"`   // Number of distinct reviews.
	CreatedAt     time.Time `json:"created_at"`     // Timestamp of when the listing was created.
}

// Normalize derives the search key from the display name.
func (b *Business) Normalize() {
	b.NameLower = strings.ToLower(strings.TrimSpace(b.Name))
}

// RatingSummary is the aggregate pair every review submission rewrites.
type RatingSummary struct {
	AverageRating float64 `json:"average_rating"`
	ReviewCount   int64   `json:"review_count"`
}

// ApplyRating recomputes the aggregate for a submitted rating.
// When previous is nil the rating is a new review and the count grows by one;
// otherwise the author is resubmitting and their old rating is replaced
// in place, leaving the count untouched.
func ApplyRating(summary RatingSummary, previous *int, rating int) RatingSummary {
	total := summary.AverageRating * float64(summary.ReviewCount)

	if previous != nil && summary.ReviewCount > 0 {
		return RatingSummary{
			AverageRating: (total - float64(*previous) + float64(rating)) / float64(summary.ReviewCount),
			ReviewCount:   summary.ReviewCount,
		}
	}

	newCount := summary.ReviewCount + 1

	return RatingSummary{
		AverageRating: (total + float64(rating)) / float64(newCount),
		ReviewCount:   newCount,
	}
}
