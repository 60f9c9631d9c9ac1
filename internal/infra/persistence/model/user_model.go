package model

import (
	"time"

	"townhub/internal/domain/entity"
)

// UserModel is the Firestore document shape for the 'users' collection,
// keyed by the Firebase Auth UID. An absent fcmTokens field decodes to a
// nil slice, which the relay treats as "no devices".
type UserModel struct {
	DisplayName string    `firestore:"displayName"`
	Email       string    `firestore:"email"`
	FCMTokens   []string  `firestore:"fcmTokens"`
	CreatedAt   time.Time `firestore:"createdAt"`
	UpdatedAt   time.Time `firestore:"updatedAt"`
}

// FromUserDomain converts a domain entity into its document shape.
func FromUserDomain(profile *entity.UserProfile) *UserModel {
	return &UserModel{
		DisplayName: profile.DisplayName,
		Email:       profile.Email,
		FCMTokens:   profile.FCMTokens,
		CreatedAt:   profile.CreatedAt,
		UpdatedAt:   profile.UpdatedAt,
	}
}

// ToDomain converts the decoded document to the domain entity. A profile
// document has no required fields beyond its id, so no validation applies.
func (m *UserModel) ToDomain(uid string) *entity.UserProfile {
	return &entity.UserProfile{
		UID:         uid,
		DisplayName: m.DisplayName,
		Email:       m.Email,
		FCMTokens:   m.FCMTokens,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
