package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/cms-console/internal/core/domain"
	"github.com/99minutos/cms-console/internal/core/ports"
)

type SessionHandler struct {
	sessions ports.SessionService
}

func NewSessionHandler(sessions ports.SessionService) *SessionHandler {
	return &SessionHandler{sessions: sessions}
}

// Login starts a session for the named account. No password is checked.
//
// @Summary      Start a session
// @Tags         session
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Account to sign in as"
// @Success      200   {object}  domain.User
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/session [post]
func (h *SessionHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.sessions.LoginByUsername(c.Request().Context(), req.Username)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Current returns the signed-in user.
//
// @Summary      Current session
// @Tags         session
// @Produce      json
// @Success      200  {object}  domain.User
// @Failure      401  {object}  errorResponse
// @Router       /v1/session [get]
func (h *SessionHandler) Current(c echo.Context) error {
	user, ok := h.sessions.Current(c.Request().Context())
	if !ok {
		return domain.ErrNoSession
	}
	return c.JSON(http.StatusOK, user)
}

// Logout ends the session. Logging out twice is not an error.
//
// @Summary      End the session
// @Tags         session
// @Success      204
// @Router       /v1/session [delete]
func (h *SessionHandler) Logout(c echo.Context) error {
	if err := h.sessions.Logout(c.Request().Context()); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
