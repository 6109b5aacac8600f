package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/cms-console/internal/core/domain"
	"github.com/99minutos/cms-console/internal/core/ports"
)

type UserHandler struct {
	users      ports.UserRepository
	moderation ports.ModerationService
}

func NewUserHandler(users ports.UserRepository, moderation ports.ModerationService) *UserHandler {
	return &UserHandler{users: users, moderation: moderation}
}

// List returns users, optionally narrowed by a search term and a role.
//
// @Summary      List users
// @Tags         users
// @Produce      json
// @Param        q     query     string  false  "Search name, username or email"
// @Param        role  query     string  false  "Role filter"
// @Success      200   {array}   domain.User
// @Router       /v1/users [get]
func (h *UserHandler) List(c echo.Context) error {
	users := h.users.List(c.Request().Context())
	users = domain.SearchUsers(users, c.QueryParam("q"))
	users = domain.FilterUsersByRole(users, domain.UserRole(c.QueryParam("role")))
	return c.JSON(http.StatusOK, users)
}

// Get returns one user.
//
// @Summary      Get a user
// @Tags         users
// @Produce      json
// @Param        id   path      int  true  "User id"
// @Success      200  {object}  domain.User
// @Failure      404  {object}  errorResponse
// @Router       /v1/users/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	u, ok := h.users.Get(c.Request().Context(), id)
	if !ok {
		return fmt.Errorf("user %d: %w", id, domain.ErrUserNotFound)
	}
	return c.JSON(http.StatusOK, u)
}

// Create adds a user. The id and joined date are assigned by the server.
//
// @Summary      Create a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      createUserRequest  true  "User"
// @Success      201   {object}  domain.User
// @Failure      422   {object}  errorResponse
// @Router       /v1/users [post]
func (h *UserHandler) Create(c echo.Context) error {
	var req createUserRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	u, err := h.users.Add(c.Request().Context(), req.toDomain())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, u)
}

// Update merges the provided fields into the user.
//
// @Summary      Update a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id    path      int                true  "User id"
// @Param        body  body      updateUserRequest  true  "Fields to change"
// @Success      200   {object}  domain.User
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/users/{id} [patch]
func (h *UserHandler) Update(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	var req updateUserRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	ok, err := h.users.Update(ctx, id, req.toPatch())
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("user %d: %w", id, domain.ErrUserNotFound)
	}
	u, _ := h.users.Get(ctx, id)
	return c.JSON(http.StatusOK, u)
}

// Delete removes a user.
//
// @Summary      Delete a user
// @Tags         users
// @Param        id   path  int  true  "User id"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /v1/users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	ok, err := h.users.Delete(c.Request().Context(), id)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("user %d: %w", id, domain.ErrUserNotFound)
	}
	return c.NoContent(http.StatusNoContent)
}

// Ban marks the user banned and blacklists them.
//
// @Summary      Ban a user
// @Tags         moderation
// @Produce      json
// @Param        id   path      int  true  "User id"
// @Success      200  {object}  banResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/users/{id}/ban [post]
func (h *UserHandler) Ban(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	res, err := h.moderation.BanUser(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, banResponse{User: res.User, Entry: res.Entry, Created: res.Created})
}
