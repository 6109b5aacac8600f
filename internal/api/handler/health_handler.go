package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/cms-console/internal/core/ports"
)

// HealthHandler serves the liveness and readiness probes.
type HealthHandler struct {
	store  ports.Store
	driver string
}

func NewHealthHandler(store ports.Store, driver string) *HealthHandler {
	return &HealthHandler{store: store, driver: driver}
}

type dependencyStatus struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type readinessResponse struct {
	Status       string                      `json:"status"`
	Dependencies map[string]dependencyStatus `json:"dependencies"`
}

// Liveness handles GET /health.
//
// @Summary      Liveness probe
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *HealthHandler) Liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// Readiness handles GET /health/ready by pinging the store backend.
//
// @Summary      Readiness probe
// @Tags         health
// @Produce      json
// @Success      200  {object}  readinessResponse
// @Failure      503  {object}  readinessResponse
// @Router       /health/ready [get]
func (h *HealthHandler) Readiness(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 3*time.Second)
	defer cancel()

	deps := map[string]dependencyStatus{}
	status, code := "ok", http.StatusOK
	if err := h.store.Ping(ctx); err != nil {
		deps[h.driver] = dependencyStatus{Status: "unhealthy", Error: err.Error()}
		status, code = "degraded", http.StatusServiceUnavailable
	} else {
		deps[h.driver] = dependencyStatus{Status: "ok"}
	}

	return c.JSON(code, readinessResponse{Status: status, Dependencies: deps})
}
