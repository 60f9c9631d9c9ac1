// Package entity contains the core business objects of the project.
package entity

import "time"

// Rating bounds accepted for a review.
const (
	MinRating = 1
	MaxRating = 5
)

// Review represents a user's star rating and text review of a business.
// Its document id equals the author's UID, which enforces at most one
// review per user per business at the storage level.
type Review struct {
	AuthorUID  string    `json:"author_uid"`  // Document id; the reviewing user's UID.
	BusinessID string    `json:"business_id"` // The reviewed business.
	Rating     int       `json:"rating"`      // Star rating, 1..5.
	Text       string    `json:"text"`        // Free-text body, never empty.
	AuthorName string    `json:"author_name"` // Display name captured at submission time.
	CreatedAt  time.Time `json:"created_at"`  // Timestamp of when the review was posted.
}
