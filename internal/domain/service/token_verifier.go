package service

import (
	"context"

	"townhub/internal/domain/entity"
)

// TokenVerifier validates an ID token issued by the external authentication
// provider and resolves it into an immutable request session.
type TokenVerifier interface {
	// Verify checks the token's signature and expiry and extracts the
	// acting user's identity and role claims.
	Verify(ctx context.Context, idToken string) (*entity.Session, error)
}
