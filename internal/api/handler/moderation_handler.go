package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/cms-console/internal/core/domain"
	"github.com/99minutos/cms-console/internal/core/ports"
)

// ModerationHandler serves the blacklist, reports and audit trail.
type ModerationHandler struct {
	blacklist  ports.BlacklistRepository
	reports    ports.ReportRepository
	audit      ports.AuditRepository
	moderation ports.ModerationService
}

func NewModerationHandler(
	blacklist ports.BlacklistRepository,
	reports ports.ReportRepository,
	audit ports.AuditRepository,
	moderation ports.ModerationService,
) *ModerationHandler {
	return &ModerationHandler{blacklist: blacklist, reports: reports, audit: audit, moderation: moderation}
}

// @Summary      List blacklist entries
// @Tags         moderation
// @Produce      json
// @Success      200  {array}  domain.BlacklistEntry
// @Router       /v1/blacklist [get]
func (h *ModerationHandler) ListBlacklist(c echo.Context) error {
	return c.JSON(http.StatusOK, h.blacklist.List(c.Request().Context()))
}

// AddBlacklist blacklists a user directly. The user's status is not changed
// and duplicates are not checked; use the ban endpoint for both.
//
// @Summary      Add a blacklist entry
// @Tags         moderation
// @Accept       json
// @Produce      json
// @Param        body  body      createBlacklistRequest  true  "Entry"
// @Success      201   {object}  domain.BlacklistEntry
// @Failure      422   {object}  errorResponse
// @Router       /v1/blacklist [post]
func (h *ModerationHandler) AddBlacklist(c echo.Context) error {
	var req createBlacklistRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	e, err := h.blacklist.Add(c.Request().Context(), domain.BlacklistEntry{UserID: req.UserID, Reason: req.Reason})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, e)
}

// @Summary      Remove a blacklist entry
// @Tags         moderation
// @Param        id   path  int  true  "Entry id"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /v1/blacklist/{id} [delete]
func (h *ModerationHandler) Unblacklist(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	ok, err := h.moderation.Unblacklist(c.Request().Context(), id)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("blacklist entry %d: %w", id, domain.ErrRecordNotFound)
	}
	return c.NoContent(http.StatusNoContent)
}

// @Summary      Blacklist every banned user that has no entry
// @Tags         moderation
// @Produce      json
// @Success      200  {object}  messageResponse
// @Router       /v1/blacklist/reconcile [post]
func (h *ModerationHandler) Reconcile(c echo.Context) error {
	n, err := h.moderation.ReconcileBans(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "blacklist reconciled", Count: n})
}

// @Summary      List reports
// @Tags         moderation
// @Produce      json
// @Success      200  {array}  domain.Report
// @Router       /v1/reports [get]
func (h *ModerationHandler) ListReports(c echo.Context) error {
	return c.JSON(http.StatusOK, h.reports.List(c.Request().Context()))
}

// @Summary      File a report
// @Tags         moderation
// @Accept       json
// @Produce      json
// @Param        body  body      createReportRequest  true  "Report"
// @Success      201   {object}  domain.Report
// @Failure      422   {object}  errorResponse
// @Router       /v1/reports [post]
func (h *ModerationHandler) AddReport(c echo.Context) error {
	var req createReportRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	r, err := h.reports.Add(c.Request().Context(), domain.Report{
		ReportedUserID: req.ReportedUserID,
		ReporterID:     req.ReporterID,
		Reason:         req.Reason,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, r)
}

// DeleteReport dismisses a report.
//
// @Summary      Dismiss a report
// @Tags         moderation
// @Param        id   path  int  true  "Report id"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /v1/reports/{id} [delete]
func (h *ModerationHandler) DeleteReport(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	ok, err := h.reports.Delete(c.Request().Context(), id)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("report %d: %w", id, domain.ErrRecordNotFound)
	}
	return c.NoContent(http.StatusNoContent)
}

// @Summary      Moderation audit trail, newest first
// @Tags         moderation
// @Produce      json
// @Success      200  {array}  domain.AuditEntry
// @Router       /v1/audit [get]
func (h *ModerationHandler) Audit(c echo.Context) error {
	return c.JSON(http.StatusOK, h.audit.List(c.Request().Context()))
}
