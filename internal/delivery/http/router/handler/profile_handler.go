package handler

import (
	"log/slog"
	"net/http"

	"townhub/internal/delivery/http/response"
	"townhub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProfileHandler holds dependencies for profile and device-token endpoints.
type ProfileHandler struct {
	uc     usecase.ProfileUsecase
	logger *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler, injected by Fx.
func NewProfileHandler(uc usecase.ProfileUsecase, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{
		uc:     uc,
		logger: logger,
	}
}

// updateProfileInput carries the editable profile fields.
type updateProfileInput struct {
	DisplayName string `json:"display_name" validate:"required"`
}

// registerTokenInput carries a device token registration.
type registerTokenInput struct {
	Token string `json:"token" validate:"required"`
}

// Get returns the acting user's profile.
func (h *ProfileHandler) Get(c echo.Context) error {
	session, err := requireSession(c)
	if err != nil {
		return err
	}

	profile, err := h.uc.GetProfile(c.Request().Context(), session)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, profile, "")
}

// Update changes the display name shown on the user's reviews and posts.
func (h *ProfileHandler) Update(c echo.Context) error {
	session, err := requireSession(c)
	if err != nil {
		return err
	}

	var input updateProfileInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}
	if err := c.Validate(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Display name is required")
	}

	if err := h.uc.UpdateDisplayName(c.Request().Context(), session, input.DisplayName); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Profile updated successfully")
}

// RegisterToken stores a device token for push delivery.
func (h *ProfileHandler) RegisterToken(c echo.Context) error {
	session, err := requireSession(c)
	if err != nil {
		return err
	}

	var input registerTokenInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid token input")
	}
	if err := c.Validate(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Token is required")
	}

	if err := h.uc.RegisterFCMToken(c.Request().Context(), session, input.Token); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, nil, "Token registered successfully")
}

// UnregisterToken removes a device token, typically on sign-out.
func (h *ProfileHandler) UnregisterToken(c echo.Context) error {
	session, err := requireSession(c)
	if err != nil {
		return err
	}

	if err := h.uc.UnregisterFCMToken(c.Request().Context(), session, c.Param("token")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Token removed successfully")
}
