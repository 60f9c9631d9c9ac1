// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"townhub/internal/domain/entity"
)

// ErrPostNotFound is a domain-specific error returned when a post is not found.
var ErrPostNotFound = errors.New("post not found")

// PostRepository defines the standard operations for community post persistence.
type PostRepository interface {
	// Create persists a new post.
	Create(ctx context.Context, post *entity.Post) error

	// FindByID retrieves a single post by its document id.
	// Returns ErrPostNotFound when the document does not exist.
	FindByID(ctx context.Context, id string) (*entity.Post, error)

	// List returns posts newest first, optionally scoped to one business.
	List(ctx context.Context, businessID string, limit, offset int) ([]*entity.Post, error)
}
