// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"townhub/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a user profile is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user profile persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByUID retrieves the profile document for a user.
	// Returns ErrUserNotFound when the document does not exist.
	FindByUID(ctx context.Context, uid string) (*entity.UserProfile, error)

	// Upsert creates or replaces the profile document for a user.
	Upsert(ctx context.Context, profile *entity.UserProfile) error

	// UpdateDisplayName modifies only the display name of an existing profile.
	UpdateDisplayName(ctx context.Context, uid, displayName string) error

	// AddFCMToken registers a device token, idempotently (array union).
	AddFCMToken(ctx context.Context, uid, token string) error

	// RemoveFCMTokens unregisters device tokens (array remove). Removing a
	// token that is not present is a no-op, not an error.
	RemoveFCMTokens(ctx context.Context, uid string, tokens []string) error
}
