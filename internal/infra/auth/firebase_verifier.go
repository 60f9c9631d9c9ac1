// Package auth implements ID-token verification against Firebase Auth.
package auth

import (
	"context"

	"townhub/internal/domain/entity"
	"townhub/internal/domain/service"

	firebaseauth "firebase.google.com/go/v4/auth"
	"github.com/pkg/errors"
)

type firebaseVerifier struct {
	client *firebaseauth.Client
}

// NewFirebaseVerifier creates a TokenVerifier backed by Firebase Auth.
func NewFirebaseVerifier(client *firebaseauth.Client) service.TokenVerifier {
	return &firebaseVerifier{client: client}
}

// Verify validates the ID token and extracts the session identity.
func (v *firebaseVerifier) Verify(ctx context.Context, idToken string) (*entity.Session, error) {
	token, err := v.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, errors.Wrap(err, "failed to verify ID token")
	}

	session := &entity.Session{UID: token.UID}

	if name, ok := token.Claims["name"].(string); ok {
		session.Name = name
	}

	// Roles are custom claims set by the auth provider's admin tooling.
	if rolesClaim, ok := token.Claims["roles"].([]any); ok {
		for _, r := range rolesClaim {
			if role, ok := r.(string); ok {
				session.Roles = append(session.Roles, role)
			}
		}
	}

	return session, nil
}
