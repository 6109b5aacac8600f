package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/cms-console/internal/core/domain"
	"github.com/99minutos/cms-console/internal/core/ports"
)

type RoleHandler struct {
	roles     ports.RoleRepository
	analytics ports.AnalyticsService
}

func NewRoleHandler(roles ports.RoleRepository, analytics ports.AnalyticsService) *RoleHandler {
	return &RoleHandler{roles: roles, analytics: analytics}
}

// List returns every role.
//
// @Summary      List roles
// @Tags         roles
// @Produce      json
// @Success      200  {array}  domain.Role
// @Router       /v1/roles [get]
func (h *RoleHandler) List(c echo.Context) error {
	return c.JSON(http.StatusOK, h.roles.List(c.Request().Context()))
}

// Usage returns each role with the number of users currently holding it.
//
// @Summary      Live role usage
// @Tags         roles
// @Produce      json
// @Success      200  {array}  ports.RoleUsage
// @Router       /v1/roles/usage [get]
func (h *RoleHandler) Usage(c echo.Context) error {
	return c.JSON(http.StatusOK, h.analytics.RoleUsage(c.Request().Context()))
}

// Create adds a role.
//
// @Summary      Create a role
// @Tags         roles
// @Accept       json
// @Produce      json
// @Param        body  body      createRoleRequest  true  "Role"
// @Success      201   {object}  domain.Role
// @Failure      422   {object}  errorResponse
// @Router       /v1/roles [post]
func (h *RoleHandler) Create(c echo.Context) error {
	var req createRoleRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	r, err := h.roles.Add(c.Request().Context(), req.toDomain())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, r)
}

// Update merges the provided fields into the role.
//
// @Summary      Update a role
// @Tags         roles
// @Accept       json
// @Produce      json
// @Param        id    path      int                true  "Role id"
// @Param        body  body      updateRoleRequest  true  "Fields to change"
// @Success      200   {object}  domain.Role
// @Failure      404   {object}  errorResponse
// @Router       /v1/roles/{id} [patch]
func (h *RoleHandler) Update(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	var req updateRoleRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	ok, err := h.roles.Update(ctx, id, req.toPatch())
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("role %d: %w", id, domain.ErrRecordNotFound)
	}
	r, _ := h.roles.Get(ctx, id)
	return c.JSON(http.StatusOK, r)
}

// Delete removes a role.
//
// @Summary      Delete a role
// @Tags         roles
// @Param        id   path  int  true  "Role id"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /v1/roles/{id} [delete]
func (h *RoleHandler) Delete(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	ok, err := h.roles.Delete(c.Request().Context(), id)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("role %d: %w", id, domain.ErrRecordNotFound)
	}
	return c.NoContent(http.StatusNoContent)
}
