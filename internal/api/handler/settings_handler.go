package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/cms-console/internal/core/ports"
)

type SettingsHandler struct {
	settings ports.SettingsService
}

func NewSettingsHandler(settings ports.SettingsService) *SettingsHandler {
	return &SettingsHandler{settings: settings}
}

// UpdateProfile edits the signed-in user's name, email and bio.
//
// @Summary      Update own profile
// @Tags         settings
// @Accept       json
// @Produce      json
// @Param        body  body      profileRequest  true  "Profile"
// @Success      200   {object}  domain.User
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/profile [patch]
func (h *SettingsHandler) UpdateProfile(c echo.Context) error {
	if _, err := ctxUser(c); err != nil {
		return err
	}
	var req profileRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	u, err := h.settings.UpdateProfile(c.Request().Context(), ports.ProfileInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Bio:       req.Bio,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, u)
}

// DeleteAccount removes the signed-in user and ends the session.
//
// @Summary      Delete own account
// @Tags         settings
// @Success      204
// @Failure      401  {object}  errorResponse
// @Router       /v1/profile [delete]
func (h *SettingsHandler) DeleteAccount(c echo.Context) error {
	if err := h.settings.DeleteAccount(c.Request().Context()); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Reset wipes all data and restores the defaults. The caller is logged out.
//
// @Summary      Reset console data
// @Tags         settings
// @Produce      json
// @Success      200  {object}  messageResponse
// @Router       /v1/admin/reset [post]
func (h *SettingsHandler) Reset(c echo.Context) error {
	if err := h.settings.Reset(c.Request().Context()); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "data reset to defaults"})
}
