// Package entity contains the core business objects of the project.
package entity

import "time"

// UserProfile is the persisted profile document at users/{uid}.
// FCMTokens addresses push delivery; an absent or empty list means the
// user has no registered device and the relay no-ops for them.
type UserProfile struct {
	UID         string    `json:"uid"`          // Firebase Auth UID; the document id.
	DisplayName string    `json:"display_name"` // Name shown on reviews and posts.
	Email       string    `json:"email"`        // Contact email from the auth provider.
	FCMTokens   []string  `json:"fcm_tokens"`   // Device registration tokens for push delivery.
	CreatedAt   time.Time `json:"created_at"`   // Timestamp of profile creation.
	UpdatedAt   time.Time `json:"updated_at"`   // Timestamp of the last modification.
}
