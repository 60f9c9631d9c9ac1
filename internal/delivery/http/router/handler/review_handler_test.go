package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	deliverycontext "townhub/internal/delivery/context"
	"townhub/internal/domain/entity"
	domainerrors "townhub/internal/domain/errors"
	mockRepo "townhub/internal/mocks/repository"
	"townhub/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestReviewHandler(t *testing.T) *ReviewHandler {
	businessRepo := mockRepo.NewMockBusinessRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return NewReviewHandler(impl.NewReviewService(businessRepo, userRepo, logger), logger)
}

func postJSON(e *echo.Echo, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestReviewHandler_Submit_EmptyBodyIsValidationError(t *testing.T) {
	h := createTestReviewHandler(t)

	c, _ := postJSON(echo.New(), "/businesses/b1/reviews", "")
	c.SetParamNames("id")
	c.SetParamValues("b1")
	deliverycontext.SetSession(c, &entity.Session{UID: "u1", Name: "Chen"})

	err := h.Submit(c)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidRating)
}

func TestReviewHandler_Submit_RequiresSession(t *testing.T) {
	h := createTestReviewHandler(t)

	c, _ := postJSON(echo.New(), "/businesses/b1/reviews", `{"rating":5,"text":"好吃"}`)
	c.SetParamNames("id")
	c.SetParamValues("b1")

	err := h.Submit(c)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}
