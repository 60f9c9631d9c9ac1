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

// postRepository implements the repository.PostRepository interface.
type postRepository struct {
	client *firestore.Client
}

// NewPostRepository is the constructor for postRepository.
func NewPostRepository(client *firestore.Client) repository.PostRepository {
	return &postRepository{
		client: client,
	}
}

func (repo *postRepository) posts() *firestore.CollectionRef {
	return repo.client.Collection(collectionPosts)
}

// Create persists a new post.
func (repo *postRepository) Create(ctx context.Context, post *entity.Post) error {
	var ref *firestore.DocumentRef
	if post.ID != "" {
		ref = repo.posts().Doc(post.ID)
	} else {
		ref = repo.posts().NewDoc()
		post.ID = ref.ID
	}

	if _, err := ref.Create(ctx, model.FromPostDomain(post)); err != nil {
		return errors.Wrap(err, "failed to create post")
	}

	return nil
}

// FindByID retrieves a single post by its document id.
func (repo *postRepository) FindByID(ctx context.Context, id string) (*entity.Post, error) {
	snap, err := repo.posts().Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrPostNotFound
		}

		return nil, errors.Wrap(err, "failed to find post by ID")
	}

	var postM model.PostModel
	if err := snap.DataTo(&postM); err != nil {
		return nil, errors.Wrap(err, "failed to decode post document")
	}

	return postM.ToDomain(snap.Ref.ID)
}

// List returns posts newest first, optionally scoped to one business.
func (repo *postRepository) List(ctx context.Context, businessID string, limit, offset int) ([]*entity.Post, error) {
	query := repo.posts().Query

	if businessID != "" {
		query = query.Where("businessId", "==", businessID)
	}

	query = query.OrderBy("createdAt", firestore.Desc)

	if offset > 0 {
		query = query.Offset(offset)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	iter := query.Documents(ctx)
	defer iter.Stop()

	posts := make([]*entity.Post, 0)
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to list posts")
		}

		var postM model.PostModel
		if err := snap.DataTo(&postM); err != nil {
			return nil, errors.Wrap(err, "failed to decode post document")
		}

		post, err := postM.ToDomain(snap.Ref.ID)
		if err != nil {
			return nil, err
		}

		posts = append(posts, post)
	}

	return posts, nil
}
