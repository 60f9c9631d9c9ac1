// Package usecase defines the application-layer interfaces the delivery
// layer depends on.
package usecase

import (
	"context"

	"townhub/internal/domain/entity"
	"townhub/internal/domain/repository"
)

// BusinessInput carries the form fields for creating a business listing.
type BusinessInput struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	Address     string `json:"address"`
	Phone       string `json:"phone"`
	Website     string `json:"website"`
	Description string `json:"description"`
	CoverImage  string `json:"cover_image"`
}

// BusinessDetail is the detail-view aggregate: the business document plus
// its reviews newest first. Zero reviews with a present business is a valid
// state, distinct from the business not existing at all.
type BusinessDetail struct {
	Business *entity.Business `json:"business"`
	Reviews  []*entity.Review `json:"reviews"`
}

// BusinessUsecase defines the interface for directory browsing and listing management.
type BusinessUsecase interface {
	// CreateBusiness validates the input and persists a new listing owned
	// by the acting user, with zeroed rating aggregates.
	CreateBusiness(ctx context.Context, session entity.Session, input *BusinessInput) (*entity.Business, error)

	// ListBusinesses returns businesses matching the filter, server-side
	// only. An empty result is a valid, empty success.
	ListBusinesses(ctx context.Context, filter repository.ListFilter) ([]*entity.Business, error)

	// GetBusinessDetail fetches the business and its reviews concurrently.
	GetBusinessDetail(ctx context.Context, id string) (*BusinessDetail, error)

	// GenerateShareQR renders the share QR code for a business detail page.
	GenerateShareQR(ctx context.Context, id string) ([]byte, error)

	// DeleteBusiness removes a listing and its reviews. Admin only.
	DeleteBusiness(ctx context.Context, session entity.Session, id string) error
}
