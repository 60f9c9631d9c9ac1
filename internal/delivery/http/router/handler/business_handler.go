package handler

import (
	"log/slog"
	"net/http"

	"townhub/config"
	"townhub/internal/delivery/http/response"
	"townhub/internal/domain/repository"
	"townhub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// BusinessHandler holds dependencies for the directory endpoints.
type BusinessHandler struct {
	uc      usecase.BusinessUsecase
	listing *config.ListingConfig
	logger  *slog.Logger
}

// NewBusinessHandler is the constructor for BusinessHandler, injected by Fx.
func NewBusinessHandler(uc usecase.BusinessUsecase, cfg *config.Config, logger *slog.Logger) *BusinessHandler {
	return &BusinessHandler{
		uc:      uc,
		listing: cfg.Listing,
		logger:  logger,
	}
}

// List handles the directory browsing request with optional category and
// name-prefix filters.
func (h *BusinessHandler) List(c echo.Context) error {
	limit, offset := pagination(c, h.listing)

	filter := repository.ListFilter{
		Category: c.QueryParam("category"),
		Search:   c.QueryParam("search"),
		Limit:    limit,
		Offset:   offset,
	}

	businesses, err := h.uc.ListBusinesses(c.Request().Context(), filter)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, businesses, "")
}

// GetDetail handles the detail-view request: the business plus its reviews.
func (h *BusinessHandler) GetDetail(c echo.Context) error {
	detail, err := h.uc.GetBusinessDetail(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, detail, "")
}

// Create handles new listing submissions from signed-in users.
func (h *BusinessHandler) Create(c echo.Context) error {
	session, err := requireSession(c)
	if err != nil {
		return err
	}

	var input usecase.BusinessInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid business input")
	}

	business, err := h.uc.CreateBusiness(c.Request().Context(), session, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, business, "Business created successfully")
}

// ShareQR renders the share QR code for a business detail page as PNG.
func (h *BusinessHandler) ShareQR(c echo.Context) error {
	png, err := h.uc.GenerateShareQR(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// AdminDelete handles moderation removal of a listing and its reviews.
func (h *BusinessHandler) AdminDelete(c echo.Context) error {
	session, err := requireSession(c)
	if err != nil {
		return err
	}

	if err := h.uc.DeleteBusiness(c.Request().Context(), session, c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Business deleted successfully")
}
