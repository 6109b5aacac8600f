package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/cms-console/internal/core/domain"
	"github.com/99minutos/cms-console/internal/core/ports"
)

const dataExportFilename = "cms-dashboard-data.json"

type ExportHandler struct {
	exports ports.ExportService
}

func NewExportHandler(exports ports.ExportService) *ExportHandler {
	return &ExportHandler{exports: exports}
}

// All downloads every collection as one JSON document.
//
// @Summary      Export all data
// @Tags         export
// @Produce      json
// @Success      200  {object}  ports.DataExport
// @Router       /v1/export [get]
func (h *ExportHandler) All(c echo.Context) error {
	attachment(c, dataExportFilename)
	return c.JSONPretty(http.StatusOK, h.exports.All(c.Request().Context()), "  ")
}

// Analytics downloads the analytics summary.
//
// @Summary      Export analytics
// @Tags         export
// @Produce      json
// @Success      200  {object}  ports.AnalyticsExport
// @Router       /v1/export/analytics [get]
func (h *ExportHandler) Analytics(c echo.Context) error {
	out := h.exports.Analytics(c.Request().Context())
	attachment(c, fmt.Sprintf("analytics-export-%s.json", domain.FormatDate(out.Timestamp)))
	return c.JSONPretty(http.StatusOK, out, "  ")
}

func attachment(c echo.Context, filename string) {
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
}
