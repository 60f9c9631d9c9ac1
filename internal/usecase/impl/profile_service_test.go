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
	"townhub/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestProfileService(t *testing.T) (usecase.ProfileUsecase, *mockRepo.MockUserRepository) {
	userRepo := mockRepo.NewMockUserRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	service := NewProfileService(userRepo, logger)

	return service, userRepo
}

func TestProfileService_GetProfile_Existing(t *testing.T) {
	service, userRepo := createTestProfileService(t)

	ctx := context.Background()
	userRepo.EXPECT().FindByUID(ctx, "u1").Return(&entity.UserProfile{UID: "u1", DisplayName: "Mei"}, nil)

	profile, err := service.GetProfile(ctx, entity.Session{UID: "u1"})

	require.NoError(t, err)
	assert.Equal(t, "Mei", profile.DisplayName)
}

func TestProfileService_GetProfile_ProvisionsOnFirstAccess(t *testing.T) {
	service, userRepo := createTestProfileService(t)

	ctx := context.Background()
	userRepo.EXPECT().FindByUID(ctx, "new").Return(nil, repository.ErrUserNotFound)
	userRepo.EXPECT().
		Upsert(ctx, mock.Anything).
		Run(func(_ context.Context, profile *entity.UserProfile) {
			assert.Equal(t, "new", profile.UID)
			assert.Equal(t, "Chen", profile.DisplayName)
		}).
		Return(nil)

	profile, err := service.GetProfile(ctx, entity.Session{UID: "new", Name: "Chen"})

	require.NoError(t, err)
	assert.Equal(t, "new", profile.UID)
}

func TestProfileService_UpdateDisplayName(t *testing.T) {
	service, userRepo := createTestProfileService(t)

	ctx := context.Background()
	userRepo.EXPECT().FindByUID(ctx, "u1").Return(&entity.UserProfile{UID: "u1"}, nil)
	userRepo.EXPECT().UpdateDisplayName(ctx, "u1", "新名字").Return(nil)

	err := service.UpdateDisplayName(ctx, entity.Session{UID: "u1"}, " 新名字 ")

	require.NoError(t, err)
}

func TestProfileService_UpdateDisplayName_Empty(t *testing.T) {
	service, _ := createTestProfileService(t)

	err := service.UpdateDisplayName(context.Background(), entity.Session{UID: "u1"}, "   ")

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestProfileService_RegisterFCMToken(t *testing.T) {
	service, userRepo := createTestProfileService(t)

	ctx := context.Background()
	userRepo.EXPECT().FindByUID(ctx, "u1").Return(&entity.UserProfile{UID: "u1"}, nil)
	userRepo.EXPECT().AddFCMToken(ctx, "u1", "tok-1").Return(nil)

	err := service.RegisterFCMToken(ctx, entity.Session{UID: "u1"}, "tok-1")

	require.NoError(t, err)
}

func TestProfileService_UnregisterFCMToken_MissingProfileIsNoop(t *testing.T) {
	service, userRepo := createTestProfileService(t)

	ctx := context.Background()
	userRepo.EXPECT().RemoveFCMTokens(ctx, "u1", []string{"tok-1"}).Return(repository.ErrUserNotFound)

	err := service.UnregisterFCMToken(ctx, entity.Session{UID: "u1"}, "tok-1")

	require.NoError(t, err)
}
