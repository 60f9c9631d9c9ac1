// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"
	"strconv"

	"townhub/config"
	deliverycontext "townhub/internal/delivery/context"
	"townhub/internal/domain/entity"
	domainerrors "townhub/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// HealthCheck reports liveness for load balancers and uptime probes.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// requireSession returns the verified session stored by the auth middleware.
func requireSession(c echo.Context) (entity.Session, error) {
	session, ok := deliverycontext.GetSession(c)
	if !ok {
		return entity.Session{}, domainerrors.ErrUnauthorized
	}

	return *session, nil
}

// pagination reads limit/offset query parameters and clamps them to the
// configured bounds.
func pagination(c echo.Context, cfg *config.ListingConfig) (limit, offset int) {
	limit = cfg.DefaultLimit
	if raw := c.QueryParam("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}
	if limit > cfg.MaxLimit {
		limit = cfg.MaxLimit
	}

	if raw := c.QueryParam("offset"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed >= 0 {
			offset = parsed
		}
	}

	return limit, offset
}
