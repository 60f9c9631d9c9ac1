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
	mockSvc "townhub/internal/mocks/service"
	"townhub/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestBusinessHandler(t *testing.T) *BusinessHandler {
	businessRepo := mockRepo.NewMockBusinessRepository(t)
	qrcodeSvc := mockSvc.NewMockQRCodeService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return NewBusinessHandler(impl.NewBusinessService(businessRepo, qrcodeSvc, logger), &config.Config{}, logger)
}

func TestBusinessHandler_Create_EmptyBodyIsValidationError(t *testing.T) {
	h := createTestBusinessHandler(t)

	c, _ := postJSON(echo.New(), "/businesses", "")
	deliverycontext.SetSession(c, &entity.Session{UID: "u1", Name: "Chen"})

	err := h.Create(c)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}
