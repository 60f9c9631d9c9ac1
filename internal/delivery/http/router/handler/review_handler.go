package handler

import (
	"log/slog"
	"net/http"

	"townhub/internal/delivery/http/response"
	"townhub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ReviewHandler holds dependencies for review submission.
type ReviewHandler struct {
	uc     usecase.ReviewUsecase
	logger *slog.Logger
}

// NewReviewHandler is the constructor for ReviewHandler, injected by Fx.
func NewReviewHandler(uc usecase.ReviewUsecase, logger *slog.Logger) *ReviewHandler {
	return &ReviewHandler{
		uc:     uc,
		logger: logger,
	}
}

// Submit handles a review submission for a business. The response carries
// the post-commit rating aggregates so the client can render them without a
// second read.
func (h *ReviewHandler) Submit(c echo.Context) error {
	session, err := requireSession(c)
	if err != nil {
		return err
	}

	var input usecase.ReviewInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid review input")
	}

	summary, err := h.uc.SubmitReview(c.Request().Context(), session, c.Param("id"), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, summary, "Review submitted successfully")
}
