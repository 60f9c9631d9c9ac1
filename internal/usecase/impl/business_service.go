// Package impl contains the concrete usecase implementations.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"townhub/internal/domain/entity"
	domainerrors "townhub/internal/domain/errors"
	"townhub/internal/domain/repository"
	"townhub/internal/domain/service"
	"townhub/internal/errors"
	"townhub/internal/usecase"

	"golang.org/x/sync/errgroup"
)

type businessService struct {
	businessRepo repository.BusinessRepository
	qrcodeSvc    service.QRCodeService
	logger       *slog.Logger
}

// NewBusinessService creates a new business service instance
func NewBusinessService(
	businessRepo repository.BusinessRepository,
	qrcodeSvc service.QRCodeService,
	logger *slog.Logger,
) usecase.BusinessUsecase {
	return &businessService{
		businessRepo: businessRepo,
		qrcodeSvc:    qrcodeSvc,
		logger:       logger,
	}
}

func (s *businessService) CreateBusiness(ctx context.Context, session entity.Session, input *usecase.BusinessInput) (*entity.Business, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, domainerrors.ErrValidationFailed
	}

	business := &entity.Business{
		Name:        strings.TrimSpace(input.Name),
		Category:    strings.TrimSpace(input.Category),
		Address:     input.Address,
		Phone:       input.Phone,
		Website:     input.Website,
		Description: input.Description,
		CoverImage:  input.CoverImage,
		OwnerUID:    session.UID,
		CreatedAt:   time.Now(),
	}
	business.Normalize()

	if err := s.businessRepo.Create(ctx, business); err != nil {
		s.logger.Error("failed to create business", slog.Any("error", err))
		return nil, domainerrors.ErrBusinessCreationFailed
	}

	return business, nil
}

func (s *businessService) ListBusinesses(ctx context.Context, filter repository.ListFilter) ([]*entity.Business, error) {
	filter.Search = strings.ToLower(strings.TrimSpace(filter.Search))

	businesses, err := s.businessRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "list businesses")
	}
	return businesses, nil
}

// GetBusinessDetail loads the business and its reviews concurrently. When
// the business is missing the reviews, even if present as orphans, are
// never surfaced.
func (s *businessService) GetBusinessDetail(ctx context.Context, id string) (*usecase.BusinessDetail, error) {
	var (
		business *entity.Business
		reviews  []*entity.Review
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		business, err = s.businessRepo.FindByID(gctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		reviews, err = s.businessRepo.ListReviews(gctx, id)
		return err
	})

	if err := g.Wait(); err != nil {
		if errors.Is(err, repository.ErrBusinessNotFound) {
			return nil, domainerrors.ErrBusinessNotFound
		}
		return nil, errors.Wrap(err, "get business detail")
	}

	return &usecase.BusinessDetail{Business: business, Reviews: reviews}, nil
}

func (s *businessService) GenerateShareQR(ctx context.Context, id string) ([]byte, error) {
	// Confirm the target exists before rendering a share code for it.
	if _, err := s.businessRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrBusinessNotFound) {
			return nil, domainerrors.ErrBusinessNotFound
		}
		return nil, errors.Wrap(err, "generate share qr")
	}

	png, err := s.qrcodeSvc.GenerateBusinessQR(id)
	if err != nil {
		return nil, errors.Wrap(err, "generate share qr")
	}
	return png, nil
}

func (s *businessService) DeleteBusiness(ctx context.Context, session entity.Session, id string) error {
	if !session.HasRole(entity.RoleAdmin) {
		return domainerrors.ErrForbidden
	}

	if err := s.businessRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrBusinessNotFound) {
			return domainerrors.ErrBusinessNotFound
		}
		return errors.Wrap(err, "delete business")
	}

	s.logger.Info("business deleted by admin",
		slog.String("business_id", id),
		slog.String("admin_uid", session.UID))
	return nil
}
