package usecase

import (
	"context"

	"townhub/internal/domain/entity"
)

// ProfileUsecase defines the interface for the user profile and device
// token registry.
type ProfileUsecase interface {
	// GetProfile returns the acting user's profile, provisioning it from
	// the session claims on first access.
	GetProfile(ctx context.Context, session entity.Session) (*entity.UserProfile, error)

	// UpdateDisplayName changes the name shown on the user's reviews and posts.
	UpdateDisplayName(ctx context.Context, session entity.Session, displayName string) error

	// RegisterFCMToken records a device token for push delivery. Repeated
	// registration of the same token is a no-op.
	RegisterFCMToken(ctx context.Context, session entity.Session, token string) error

	// UnregisterFCMToken removes a device token, e.g. on sign-out.
	UnregisterFCMToken(ctx context.Context, session entity.Session, token string) error
}
