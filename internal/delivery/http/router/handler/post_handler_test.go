package handler

import (
	"io"
	"log/slog"
	"testing"

	"townhub/config"
	deliverycontext "townhub/internal/delivery/context"
	"townhub/internal/domain/entity"
	domainerrors "townhub/internal/domain/errors"
	mockRepo "townhub/internal/mocks/repository"
	mockUC "townhub/internal/mocks/usecase"
	"townhub/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestPostHandler(t *testing.T) *PostHandler {
	postRepo := mockRepo.NewMockPostRepository(t)
	businessRepo := mockRepo.NewMockBusinessRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	notificationUC := mockUC.NewMockNotificationUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	svc := impl.NewPostService(postRepo, businessRepo, userRepo, notificationUC, logger)

	return NewPostHandler(svc, &config.Config{}, logger)
}

func TestPostHandler_Create_EmptyBodyIsValidationError(t *testing.T) {
	h := createTestPostHandler(t)

	c, _ := postJSON(echo.New(), "/posts", "")
	deliverycontext.SetSession(c, &entity.Session{UID: "u1", Name: "Chen"})

	err := h.Create(c)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}
