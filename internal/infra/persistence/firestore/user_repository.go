package firestore

import (
	"context"
	"time"

	"townhub/internal/domain/entity"
	"townhub/internal/domain/repository"
	"townhub/internal/infra/persistence/model"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
)

// userRepository implements the repository.UserRepository interface.
type userRepository struct {
	client *firestore.Client
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(client *firestore.Client) repository.UserRepository {
	return &userRepository{
		client: client,
	}
}

func (repo *userRepository) users() *firestore.CollectionRef {
	return repo.client.Collection(collectionUsers)
}

// FindByUID retrieves the profile document for a user.
func (repo *userRepository) FindByUID(ctx context.Context, uid string) (*entity.UserProfile, error) {
	snap, err := repo.users().Doc(uid).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by UID")
	}

	var userM model.UserModel
	if err := snap.DataTo(&userM); err != nil {
		return nil, errors.Wrap(err, "failed to decode user document")
	}

	return userM.ToDomain(snap.Ref.ID), nil
}

// Upsert creates or replaces the profile document for a user.
func (repo *userRepository) Upsert(ctx context.Context, profile *entity.UserProfile) error {
	if _, err := repo.users().Doc(profile.UID).Set(ctx, model.FromUserDomain(profile)); err != nil {
		return errors.Wrap(err, "failed to upsert user")
	}

	return nil
}

// UpdateDisplayName modifies only the display name of an existing profile.
func (repo *userRepository) UpdateDisplayName(ctx context.Context, uid, displayName string) error {
	_, err := repo.users().Doc(uid).Update(ctx, []firestore.Update{
		{Path: "displayName", Value: displayName},
		{Path: "updatedAt", Value: time.Now()},
	})
	if err != nil {
		if isNotFound(err) {
			return repository.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to update display name")
	}

	return nil
}

// AddFCMToken registers a device token idempotently via array union.
func (repo *userRepository) AddFCMToken(ctx context.Context, uid, token string) error {
	_, err := repo.users().Doc(uid).Update(ctx, []firestore.Update{
		{Path: "fcmTokens", Value: firestore.ArrayUnion(token)},
		{Path: "updatedAt", Value: time.Now()},
	})
	if err != nil {
		if isNotFound(err) {
			return repository.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to add FCM token")
	}

	return nil
}

// RemoveFCMTokens unregisters device tokens via array remove.
func (repo *userRepository) RemoveFCMTokens(ctx context.Context, uid string, tokens []string) error {
	if len(tokens) == 0 {
		return nil
	}

	values := make([]any, 0, len(tokens))
	for _, token := range tokens {
		values = append(values, token)
	}

	_, err := repo.users().Doc(uid).Update(ctx, []firestore.Update{
		{Path: "fcmTokens", Value: firestore.ArrayRemove(values...)},
		{Path: "updatedAt", Value: time.Now()},
	})
	if err != nil {
		if isNotFound(err) {
			return repository.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to remove FCM tokens")
	}

	return nil
}
