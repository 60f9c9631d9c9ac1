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

// NotificationHandler holds dependencies for the in-app notification feed.
type NotificationHandler struct {
	uc      usecase.NotificationUsecase
	listing *config.ListingConfig
	logger  *slog.Logger
}

// NewNotificationHandler is the constructor for NotificationHandler, injected by Fx.
func NewNotificationHandler(uc usecase.NotificationUsecase, cfg *config.Config, logger *slog.Logger) *NotificationHandler {
	return &NotificationHandler{
		uc:      uc,
		listing: cfg.Listing,
		logger:  logger,
	}
}

// List returns the acting user's notifications newest first.
func (h *NotificationHandler) List(c echo.Context) error {
	session, err := requireSession(c)
	if err != nil {
		return err
	}

	limit, offset := pagination(c, h.listing)

	notifications, err := h.uc.ListNotifications(c.Request().Context(), session, limit, offset)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, notifications, "")
}
