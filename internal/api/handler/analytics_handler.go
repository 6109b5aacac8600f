package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/cms-console/internal/core/ports"
)

type AnalyticsHandler struct {
	analytics ports.AnalyticsService
}

func NewAnalyticsHandler(analytics ports.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analytics: analytics}
}

// @Summary      Descriptive statistics
// @Tags         analytics
// @Produce      json
// @Success      200  {object}  ports.Stats
// @Router       /v1/analytics/stats [get]
func (h *AnalyticsHandler) Stats(c echo.Context) error {
	return c.JSON(http.StatusOK, h.analytics.Stats(c.Request().Context()))
}

// @Summary      Most viewed content
// @Tags         analytics
// @Produce      json
// @Param        limit  query     int  false  "Maximum items (default 5)"
// @Success      200    {array}   ports.ContentPerformance
// @Router       /v1/analytics/top-content [get]
func (h *AnalyticsHandler) TopContent(c echo.Context) error {
	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "limit must be a non-negative integer")
		}
		limit = n
	}
	return c.JSON(http.StatusOK, h.analytics.TopContent(c.Request().Context(), limit))
}

// @Summary      Dashboard counters
// @Tags         analytics
// @Produce      json
// @Success      200  {object}  ports.DashboardStats
// @Router       /v1/analytics/dashboard [get]
func (h *AnalyticsHandler) Dashboard(c echo.Context) error {
	return c.JSON(http.StatusOK, h.analytics.Dashboard(c.Request().Context()))
}
