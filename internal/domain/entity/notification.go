// Package entity contains the core business objects of the project.
package entity

import "time"

// Notification is the write-once document the push relay consumes.
// The relay reads it exactly once and never mutates or deletes it.
type Notification struct {
	ID           string    `json:"id"`            // Firestore document id.
	RecipientUID string    `json:"recipient_uid"` // The user whose devices receive the push.
	SenderName   string    `json:"sender_name"`   // Display name of the user who caused the notification.
	PostTitle    string    `json:"post_title"`    // Title of the related post.
	CreatedAt    time.Time `json:"created_at"`    // Timestamp of the triggering write.
}
