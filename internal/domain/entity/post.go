// Package entity contains the core business objects of the project.
package entity

import "time"

// Post represents a community post attached to a business. Creating a post
// addressed at a business notifies the business owner.
type Post struct {
	ID         string    `json:"id"`          // Firestore document id.
	BusinessID string    `json:"business_id"` // The business this post is about.
	Title      string    `json:"title"`       // Post title, echoed into the notification.
	Body       string    `json:"body"`        // Free-text body.
	AuthorUID  string    `json:"author_uid"`  // UID of the posting user.
	AuthorName string    `json:"author_name"` // Display name captured at submission time.
	CreatedAt  time.Time `json:"created_at"`  // Timestamp of when the post was created.
}
