package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/cms-console/internal/core/domain"
	"github.com/99minutos/cms-console/internal/core/ports"
)

type ContentHandler struct {
	content ports.ContentRepository
}

func NewContentHandler(content ports.ContentRepository) *ContentHandler {
	return &ContentHandler{content: content}
}

// @Summary      List content
// @Tags         content
// @Produce      json
// @Success      200  {array}  domain.Content
// @Router       /v1/content [get]
func (h *ContentHandler) List(c echo.Context) error {
	return c.JSON(http.StatusOK, h.content.List(c.Request().Context()))
}

// @Summary      Create content
// @Tags         content
// @Accept       json
// @Produce      json
// @Param        body  body      createContentRequest  true  "Content item"
// @Success      201   {object}  domain.Content
// @Failure      422   {object}  errorResponse
// @Router       /v1/content [post]
func (h *ContentHandler) Create(c echo.Context) error {
	var req createContentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	item, err := h.content.Add(c.Request().Context(), req.toDomain())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, item)
}

// @Summary      Update content
// @Tags         content
// @Accept       json
// @Produce      json
// @Param        id    path      int                   true  "Content id"
// @Param        body  body      updateContentRequest  true  "Fields to change"
// @Success      200   {object}  domain.Content
// @Failure      404   {object}  errorResponse
// @Router       /v1/content/{id} [patch]
func (h *ContentHandler) Update(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	var req updateContentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	ok, err := h.content.Update(ctx, id, req.toPatch())
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("content %d: %w", id, domain.ErrRecordNotFound)
	}
	item, _ := h.content.Get(ctx, id)
	return c.JSON(http.StatusOK, item)
}

// @Summary      Delete content
// @Tags         content
// @Param        id   path  int  true  "Content id"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /v1/content/{id} [delete]
func (h *ContentHandler) Delete(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	ok, err := h.content.Delete(c.Request().Context(), id)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("content %d: %w", id, domain.ErrRecordNotFound)
	}
	return c.NoContent(http.StatusNoContent)
}
