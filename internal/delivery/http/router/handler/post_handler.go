package handler

import (
	"log/slog"
	"net/http"

	"townhub/config"
	"townhub/internal/delivery/http/response"
	"townhub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PostHandler holds dependencies for the community post endpoints.
type PostHandler struct {
	uc      usecase.PostUsecase
	listing *config.ListingConfig
	logger  *slog.Logger
}

// NewPostHandler is the constructor for PostHandler, injected by Fx.
func NewPostHandler(uc usecase.PostUsecase, cfg *config.Config, logger *slog.Logger) *PostHandler {
	return &PostHandler{
		uc:      uc,
		listing: cfg.Listing,
		logger:  logger,
	}
}

// Create handles publishing a post under a business.
func (h *PostHandler) Create(c echo.Context) error {
	session, err := requireSession(c)
	if err != nil {
		return err
	}

	var input usecase.PostInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid post input")
	}

	post, err := h.uc.CreatePost(c.Request().Context(), session, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, post, "Post created successfully")
}

// List handles the post feed, optionally scoped to one business.
func (h *PostHandler) List(c echo.Context) error {
	limit, offset := pagination(c, h.listing)

	posts, err := h.uc.ListPosts(c.Request().Context(), c.QueryParam("business_id"), limit, offset)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, posts, "")
}
