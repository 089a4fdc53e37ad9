package handler

import (
	"context"
	"net/http"
	"time"

	"prepai/internal/delivery/http/response"
	domainerrors "prepai/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

const healthPingTimeout = 2 * time.Second

// HealthHandler reports liveness and database readiness.
type HealthHandler struct {
	db *gorm.DB
}

// NewHealthHandler is the constructor for HealthHandler.
func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// Live answers as long as the process serves HTTP.
func (h *HealthHandler) Live(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}

// Ready pings the database.
func (h *HealthHandler) Ready(c echo.Context) error {
	sqlDB, err := h.db.DB()
	if err != nil {
		return domainerrors.NewBaseError(http.StatusServiceUnavailable, "NOT_READY", "Database unavailable", nil)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), healthPingTimeout)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		return domainerrors.NewBaseError(http.StatusServiceUnavailable, "NOT_READY", "Database unavailable", nil)
	}

	return response.Success(c, http.StatusOK, map[string]string{"status": "ready"}, "Service is ready")
}
