package firestore

import (
	"context"

	"townhub/internal/domain/entity"
	"townhub/internal/domain/repository"
	"townhub/internal/infra/persistence/model"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/api/iterator"
)

// notificationRepository implements the repository.NotificationRepository interface.
type notificationRepository struct {
	client *firestore.Client
}

// NewNotificationRepository is the constructor for notificationRepository.
func NewNotificationRepository(client *firestore.Client) repository.NotificationRepository {
	return &notificationRepository{
		client: client,
	}
}

func (repo *notificationRepository) notifications() *firestore.CollectionRef {
	return repo.client.Collection(collectionNotifications)
}

// Create persists a new notification document. Documents are write-once;
// nothing in the system updates or deletes them afterwards.
func (repo *notificationRepository) Create(ctx context.Context, notification *entity.Notification) error {
	var ref *firestore.DocumentRef
	if notification.ID != "" {
		ref = repo.notifications().Doc(notification.ID)
	} else {
		ref = repo.notifications().NewDoc()
		notification.ID = ref.ID
	}

	if _, err := ref.Create(ctx, model.FromNotificationDomain(notification)); err != nil {
		return errors.Wrap(err, "failed to create notification")
	}

	return nil
}

// FindByID retrieves a notification by its document id.
func (repo *notificationRepository) FindByID(ctx context.Context, id string) (*entity.Notification, error) {
	snap, err := repo.notifications().Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrNotificationNotFound
		}

		return nil, errors.Wrap(err, "failed to find notification by ID")
	}

	var notificationM model.NotificationModel
	if err := snap.DataTo(&notificationM); err != nil {
		return nil, errors.Wrap(err, "failed to decode notification document")
	}

	return notificationM.ToDomain(snap.Ref.ID)
}

// ListByRecipient returns a user's notifications newest first.
func (repo *notificationRepository) ListByRecipient(ctx context.Context, recipientUID string, limit, offset int) ([]*entity.Notification, error) {
	query := repo.notifications().
		Where("recipientUid", "==", recipientUID).
		OrderBy("createdAt", firestore.Desc)

	if offset > 0 {
		query = query.Offset(offset)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	iter := query.Documents(ctx)
	defer iter.Stop()

	notifications := make([]*entity.Notification, 0)
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to list notifications")
		}

		var notificationM model.NotificationModel
		if err := snap.DataTo(&notificationM); err != nil {
			return nil, errors.Wrap(err, "failed to decode notification document")
		}

		notification, err := notificationM.ToDomain(snap.Ref.ID)
		if err != nil {
			return nil, err
		}

		notifications = append(notifications, notification)
	}

	return notifications, nil
}
