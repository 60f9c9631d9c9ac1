// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"townhub/internal/domain/entity"
)

// ErrBusinessNotFound is a domain-specific error returned when a business is not found.
var ErrBusinessNotFound = errors.New("business not found")

// ListFilter narrows a business listing. Zero values mean "no filter";
// Category "all" is equivalent to no category filter. Search is matched as a
// case-insensitive name prefix, server-side only.
type ListFilter struct {
	Category string
	Search   string
	Limit    int
	Offset   int
}

// BusinessRepository defines the standard operations for business persistence.
type BusinessRepository interface {
	// Create persists a new business listing with zeroed aggregates.
	Create(ctx context.Context, business *entity.Business) error

	// FindByID retrieves a single business by its document id.
	// Returns ErrBusinessNotFound when the document does not exist.
	FindByID(ctx context.Context, id string) (*entity.Business, error)

	// List returns businesses matching the filter, newest first
	// (ordered by the search key when a prefix filter is active).
	// An empty result is a valid empty success, not an error.
	List(ctx context.Context, filter ListFilter) ([]*entity.Business, error)

	// SubmitReview atomically writes the review under the business and
	// recomputes the business's rating aggregates in one transaction.
	// Returns ErrBusinessNotFound without committing anything when the
	// business no longer exists.
	SubmitReview(ctx context.Context, businessID string, review *entity.Review) (*entity.RatingSummary, error)

	// ListReviews returns a business's reviews ordered by creation time descending.
	ListReviews(ctx context.Context, businessID string) ([]*entity.Review, error)

	// Delete removes a business and its review subcollection.
	Delete(ctx context.Context, id string) error
}
