package usecase

import (
	"context"

	"townhub/internal/domain/entity"
)

// PostInput carries the form fields for publishing a community post.
type PostInput struct {
	BusinessID string `json:"business_id"`
	Title      string `json:"title"`
	Body       string `json:"body"`
}

// PostUsecase defines the interface for the community post feed.
type PostUsecase interface {
	// CreatePost publishes a post under a business and, when the author
	// is not the owner, fans out a push notification to the owner. The
	// post is persisted regardless of the notification outcome.
	CreatePost(ctx context.Context, session entity.Session, input *PostInput) (*entity.Post, error)

	// ListPosts returns posts newest first, optionally scoped to one business.
	ListPosts(ctx context.Context, businessID string, limit, offset int) ([]*entity.Post, error)
}
