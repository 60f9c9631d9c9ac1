package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"townhub/internal/domain/entity"
	domainerrors "townhub/internal/domain/errors"
	"townhub/internal/domain/repository"
	mockRepo "townhub/internal/mocks/repository"
	mockSvc "townhub/internal/mocks/service"
	"townhub/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestBusinessService(t *testing.T) (
	usecase.BusinessUsecase,
	*mockRepo.MockBusinessRepository,
	*mockSvc.MockQRCodeService,
) {
	businessRepo := mockRepo.NewMockBusinessRepository(t)
	qrcodeSvc := mockSvc.NewMockQRCodeService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	service := NewBusinessService(businessRepo, qrcodeSvc, logger)

	return service, businessRepo, qrcodeSvc
}

func TestBusinessService_CreateBusiness_Success(t *testing.T) {
	service, businessRepo, _ := createTestBusinessService(t)

	ctx := context.Background()
	session := entity.Session{UID: "owner-1", Name: "Mei"}

	businessRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)

	business, err := service.CreateBusiness(ctx, session, &usecase.BusinessInput{
		Name:     "  Luigi's Pizzeria ",
		Category: "restaurant",
	})

	require.NoError(t, err)
	assert.Equal(t, "Luigi's Pizzeria", business.Name)
	assert.Equal(t, "luigi's pizzeria", business.NameLower)
	assert.Equal(t, "owner-1", business.OwnerUID)
	assert.Zero(t, business.ReviewCount)
	assert.Zero(t, business.AverageRating)
}

func TestBusinessService_CreateBusiness_EmptyName(t *testing.T) {
	service, _, _ := createTestBusinessService(t)

	_, err := service.CreateBusiness(context.Background(), entity.Session{UID: "u"}, &usecase.BusinessInput{Name: "   "})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestBusinessService_ListBusinesses_NormalizesSearch(t *testing.T) {
	service, businessRepo, _ := createTestBusinessService(t)

	ctx := context.Background()
	businessRepo.EXPECT().
		List(ctx, repository.ListFilter{Category: "cafe", Search: "blue bottle", Limit: 20}).
		Return([]*entity.Business{{ID: "b1"}}, nil)

	businesses, err := service.ListBusinesses(ctx, repository.ListFilter{Category: "cafe", Search: "  Blue Bottle ", Limit: 20})

	require.NoError(t, err)
	assert.Len(t, businesses, 1)
}

func TestBusinessService_ListBusinesses_EmptyResultIsSuccess(t *testing.T) {
	service, businessRepo, _ := createTestBusinessService(t)

	ctx := context.Background()
	businessRepo.EXPECT().List(ctx, mock.Anything).Return([]*entity.Business{}, nil)

	businesses, err := service.ListBusinesses(ctx, repository.ListFilter{})

	require.NoError(t, err)
	assert.Empty(t, businesses)
}

func TestBusinessService_GetBusinessDetail_Success(t *testing.T) {
	service, businessRepo, _ := createTestBusinessService(t)

	ctx := context.Background()
	businessRepo.EXPECT().FindByID(mock.Anything, "b1").Return(&entity.Business{ID: "b1", Name: "Cafe"}, nil)
	businessRepo.EXPECT().ListReviews(mock.Anything, "b1").Return([]*entity.Review{{AuthorUID: "u1", Rating: 5}}, nil)

	detail, err := service.GetBusinessDetail(ctx, "b1")

	require.NoError(t, err)
	assert.Equal(t, "b1", detail.Business.ID)
	assert.Len(t, detail.Reviews, 1)
}

func TestBusinessService_GetBusinessDetail_NotFound(t *testing.T) {
	service, businessRepo, _ := createTestBusinessService(t)

	// Orphaned reviews must never surface when the business is gone.
	businessRepo.EXPECT().FindByID(mock.Anything, "gone").Return(nil, repository.ErrBusinessNotFound)
	businessRepo.EXPECT().ListReviews(mock.Anything, "gone").Return([]*entity.Review{{AuthorUID: "u1"}}, nil).Maybe()

	detail, err := service.GetBusinessDetail(context.Background(), "gone")

	assert.ErrorIs(t, err, domainerrors.ErrBusinessNotFound)
	assert.Nil(t, detail)
}

func TestBusinessService_GetBusinessDetail_ZeroReviews(t *testing.T) {
	service, businessRepo, _ := createTestBusinessService(t)

	businessRepo.EXPECT().FindByID(mock.Anything, "b2").Return(&entity.Business{ID: "b2"}, nil)
	businessRepo.EXPECT().ListReviews(mock.Anything, "b2").Return([]*entity.Review{}, nil)

	detail, err := service.GetBusinessDetail(context.Background(), "b2")

	require.NoError(t, err)
	assert.NotNil(t, detail.Business)
	assert.Empty(t, detail.Reviews)
}

func TestBusinessService_GenerateShareQR_Success(t *testing.T) {
	service, businessRepo, qrcodeSvc := createTestBusinessService(t)

	ctx := context.Background()
	businessRepo.EXPECT().FindByID(ctx, "b1").Return(&entity.Business{ID: "b1"}, nil)
	qrcodeSvc.EXPECT().GenerateBusinessQR("b1").Return([]byte{0x89, 0x50, 0x4e, 0x47}, nil)

	png, err := service.GenerateShareQR(ctx, "b1")

	require.NoError(t, err)
	assert.NotEmpty(t, png)
}

func TestBusinessService_GenerateShareQR_NotFound(t *testing.T) {
	service, businessRepo, _ := createTestBusinessService(t)

	businessRepo.EXPECT().FindByID(mock.Anything, "gone").Return(nil, repository.ErrBusinessNotFound)

	_, err := service.GenerateShareQR(context.Background(), "gone")

	assert.ErrorIs(t, err, domainerrors.ErrBusinessNotFound)
}

func TestBusinessService_DeleteBusiness_RequiresAdmin(t *testing.T) {
	service, _, _ := createTestBusinessService(t)

	err := service.DeleteBusiness(context.Background(), entity.Session{UID: "u1"}, "b1")

	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestBusinessService_DeleteBusiness_Admin(t *testing.T) {
	service, businessRepo, _ := createTestBusinessService(t)

	ctx := context.Background()
	admin := entity.Session{UID: "a1", Roles: []string{entity.RoleAdmin}}
	businessRepo.EXPECT().Delete(ctx, "b1").Return(nil)

	err := service.DeleteBusiness(ctx, admin, "b1")

	require.NoError(t, err)
}
