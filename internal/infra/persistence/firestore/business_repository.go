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

// businessRepository implements the repository.BusinessRepository interface.
type businessRepository struct {
	client *firestore.Client
}

// NewBusinessRepository is the constructor for businessRepository.
func NewBusinessRepository(client *firestore.Client) repository.BusinessRepository {
	return &businessRepository{
		client: client,
	}
}

func (repo *businessRepository) businesses() *firestore.CollectionRef {
	return repo.client.Collection(collectionBusinesses)
}

func (repo *businessRepository) reviews(businessID string) *firestore.CollectionRef {
	return repo.businesses().Doc(businessID).Collection(collectionReviews)
}

// Create persists a new business listing.
func (repo *businessRepository) Create(ctx context.Context, business *entity.Business) error {
	business.Normalize()

	var ref *firestore.DocumentRef
	if business.ID != "" {
		ref = repo.businesses().Doc(business.ID)
	} else {
		ref = repo.businesses().NewDoc()
		business.ID = ref.ID
	}

	if _, err := ref.Create(ctx, model.FromBusinessDomain(business)); err != nil {
		return errors.Wrap(err, "failed to create business")
	}

	return nil
}

// FindByID retrieves a single business by its document id.
func (repo *businessRepository) FindByID(ctx context.Context, id string) (*entity.Business, error) {
	snap, err := repo.businesses().Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrBusinessNotFound
		}

		return nil, errors.Wrap(err, "failed to find business by ID")
	}

	var businessM model.BusinessModel
	if err := snap.DataTo(&businessM); err != nil {
		return nil, errors.Wrap(err, "failed to decode business document")
	}

	return businessM.ToDomain(snap.Ref.ID)
}

// List returns businesses matching the filter. Filtering happens entirely
// server-side: category by equality, search by a prefix range on the
// lowercased name. With an active prefix the range field must lead the
// ordering; otherwise results come newest first.
func (repo *businessRepository) listQuery(filter repository.ListFilter) firestore.Query {
	query := repo.businesses().Query

	if filter.Category != "" && filter.Category != "all" {
		query = query.Where("category", "==", filter.Category)
	}

	if filter.Search != "" {
		query = query.
			Where("nameLower", ">=", filter.Search).
			Where("nameLower", "<=", filter.Search+prefixLast).
			OrderBy("nameLower", firestore.Asc)
	} else {
		query = query.OrderBy("createdAt", firestore.Desc)
	}

	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	return query
}

func (repo *businessRepository) List(ctx context.Context, filter repository.ListFilter) ([]*entity.Business, error) {
	iter := repo.listQuery(filter).Documents(ctx)
	defer iter.Stop()

	businesses := make([]*entity.Business, 0)
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to list businesses")
		}

		var businessM model.BusinessModel
		if err := snap.DataTo(&businessM); err != nil {
			return nil, errors.Wrap(err, "failed to decode business document")
		}

		business, err := businessM.ToDomain(snap.Ref.ID)
		if err != nil {
			return nil, err
		}

		businesses = append(businesses, business)
	}

	return businesses, nil
}

// SubmitReview writes the review and recomputes the business's aggregates in
// one serializable transaction. Firestore retries the closure on contention,
// so two concurrent submissions both end up reflected in the aggregates.
func (repo *businessRepository) SubmitReview(ctx context.Context, businessID string, review *entity.Review) (*entity.RatingSummary, error) {
	businessRef := repo.businesses().Doc(businessID)
	reviewRef := repo.reviews(businessID).Doc(review.AuthorUID)

	var summary entity.RatingSummary

	err := repo.client.RunTransaction(ctx, func(_ context.Context, tx *firestore.Transaction) error {
		businessSnap, err := tx.Get(businessRef)
		if err != nil {
			if isNotFound(err) {
				return repository.ErrBusinessNotFound
			}

			return errors.Wrap(err, "failed to read business")
		}

		var businessM model.BusinessModel
		if err := businessSnap.DataTo(&businessM); err != nil {
			return errors.Wrap(err, "failed to decode business document")
		}

		// Absent aggregate fields decode to zero, so the first review is
		// well-defined without special-casing.
		current := entity.RatingSummary{
			AverageRating: businessM.AverageRating,
			ReviewCount:   businessM.ReviewCount,
		}

		// A resubmission replaces the author's prior rating in place
		// instead of counting it again.
		var previous *int
		prevSnap, err := tx.Get(reviewRef)
		switch {
		case err == nil:
			var prevM model.ReviewModel
			if err := prevSnap.DataTo(&prevM); err != nil {
				return errors.Wrap(err, "failed to decode existing review")
			}
			prevRating := int(prevM.Rating)
			previous = &prevRating
		case isNotFound(err):
			// First review by this author.
		default:
			return errors.Wrap(err, "failed to read existing review")
		}

		summary = entity.ApplyRating(current, previous, review.Rating)

		if err := tx.Set(reviewRef, model.FromReviewDomain(review)); err != nil {
			return errors.Wrap(err, "failed to write review")
		}

		return errors.Wrap(tx.Update(businessRef, []firestore.Update{
			{Path: "averageRating", Value: summary.AverageRating},
			{Path: "reviewCount", Value: summary.ReviewCount},
		}), "failed to update rating aggregates")
	})
	if err != nil {
		return nil, err
	}

	return &summary, nil
}

// ListReviews returns a business's reviews ordered by creation time descending.
func (repo *businessRepository) ListReviews(ctx context.Context, businessID string) ([]*entity.Review, error) {
	iter := repo.reviews(businessID).
		OrderBy("createdAt", firestore.Desc).
		Documents(ctx)
	defer iter.Stop()

	reviews := make([]*entity.Review, 0)
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to list reviews")
		}

		var reviewM model.ReviewModel
		if err := snap.DataTo(&reviewM); err != nil {
			return nil, errors.Wrap(err, "failed to decode review document")
		}

		review, err := reviewM.ToDomain(businessID, snap.Ref.ID)
		if err != nil {
			return nil, err
		}

		reviews = append(reviews, review)
	}

	return reviews, nil
}

// Delete removes a business together with its review subcollection.
func (repo *businessRepository) Delete(ctx context.Context, id string) error {
	businessRef := repo.businesses().Doc(id)

	if _, err := businessRef.Get(ctx); err != nil {
		if isNotFound(err) {
			return repository.ErrBusinessNotFound
		}

		return errors.Wrap(err, "failed to read business")
	}

	writer := repo.client.BulkWriter(ctx)

	refs := repo.reviews(id).DocumentRefs(ctx)
	for {
		ref, err := refs.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return errors.Wrap(err, "failed to enumerate reviews")
		}

		if _, err := writer.Delete(ref); err != nil {
			return errors.Wrap(err, "failed to queue review deletion")
		}
	}

	if _, err := writer.Delete(businessRef); err != nil {
		return errors.Wrap(err, "failed to queue business deletion")
	}

	writer.End()

	return nil
}
