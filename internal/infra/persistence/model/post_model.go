package model

import (
	"time"

	"townhub/internal/domain/entity"

	"github.com/pkg/errors"
)

// PostModel is the Firestore document shape for the 'posts' collection.
type PostModel struct {
	BusinessID string    `firestore:"businessId"`
	Title      string    `firestore:"title"`
	Body       string    `firestore:"body"`
	AuthorUID  string    `firestore:"authorUid"`
	AuthorName string    `firestore:"authorName"`
	CreatedAt  time.Time `firestore:"createdAt"`
}

// FromPostDomain converts a domain entity into its document shape.
func FromPostDomain(post *entity.Post) *PostModel {
	return &PostModel{
		BusinessID: post.BusinessID,
		Title:      post.Title,
		Body:       post.Body,
		AuthorUID:  post.AuthorUID,
		AuthorName: post.AuthorName,
		CreatedAt:  post.CreatedAt,
	}
}

// ToDomain validates the decoded document and converts it to the domain entity.
func (m *PostModel) ToDomain(id string) (*entity.Post, error) {
	if m.Title == "" {
		return nil, errors.Errorf("malformed post document %s: missing title", id)
	}

	return &entity.Post{
		ID:         id,
		BusinessID: m.BusinessID,
		Title:      m.Title,
		Body:       m.Body,
		AuthorUID:  m.AuthorUID,
		AuthorName: m.AuthorName,
		CreatedAt:  m.CreatedAt,
	}, nil
}
