// Package model contains the Firestore-specific document shapes. Every
// decode goes through a validating toDomain conversion so malformed
// documents are rejected at the data-access boundary.
package model

import (
	"time"

	"townhub/internal/domain/entity"

	"github.com/pkg/errors"
)

// BusinessModel is the Firestore document shape for the 'businesses' collection.
type BusinessModel struct {
	Name          string    `firestore:"name"`
	NameLower     string    `firestore:"nameLower"`
	Category      string    `firestore:"category"`
	Address       string    `firestore:"address"`
	Phone         string    `firestore:"phone"`
	Website       string    `firestore:"website"`
	Description   string    `firestore:"description"`
	CoverImage    string    `firestore:"coverImage"`
	OwnerUID      string    `firestore:"ownerUid"`
	AverageRating float64   `firestore:"averageRating"`
	ReviewCount   int64     `firestore:"reviewCount"`
	CreatedAt     time.Time `firestore:"createdAt"`
}

// FromBusinessDomain converts a domain entity into its document shape.
func FromBusinessDomain(business *entity.Business) *BusinessModel {
	return &BusinessModel{
		Name:          business.Name,
		NameLower:     business.NameLower,
		Category:      business.Category,
		Address:       business.Address,
		Phone:         business.Phone,
		Website:       business.Website,
		Description:   business.Description,
		CoverImage:    business.CoverImage,
		OwnerUID:      business.OwnerUID,
		AverageRating: business.AverageRating,
		ReviewCount:   business.ReviewCount,
		CreatedAt:     business.CreatedAt,
	}
}

// ToDomain validates the decoded document and converts it to the domain entity.
func (m *BusinessModel) ToDomain(id string) (*entity.Business, error) {
	if m.Name == "" {
		return nil, errors.Errorf("malformed business document %s: missing name", id)
	}
	if m.ReviewCount < 0 {
		return nil, errors.Errorf("malformed business document %s: negative review count", id)
	}
	if m.AverageRating < 0 || m.AverageRating > entity.MaxRating {
		return nil, errors.Errorf("malformed business document %s: average rating out of range", id)
	}

	return &entity.Business{
		ID:            id,
		Name:          m.Name,
		NameLower:     m.NameLower,
		Category:      m.Category,
		Address:       m.Address,
		Phone:         m.Phone,
		Website:       m.Website,
		Description:   m.Description,
		CoverImage:    m.CoverImage,
		OwnerUID:      m.OwnerUID,
		AverageRating: m.AverageRating,
		ReviewCount:   m.ReviewCount,
		CreatedAt:     m.CreatedAt,
	}, nil
}
