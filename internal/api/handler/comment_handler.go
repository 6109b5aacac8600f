package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/cms-console/internal/core/domain"
	"github.com/99minutos/cms-console/internal/core/ports"
)

type CommentHandler struct {
	comments ports.CommentRepository
}

func NewCommentHandler(comments ports.CommentRepository) *CommentHandler {
	return &CommentHandler{comments: comments}
}

// List returns comments, optionally only those with the given status.
//
// @Summary      List comments
// @Tags         comments
// @Produce      json
// @Param        status  query     string  false  "approved, pending or spam"
// @Success      200     {array}   domain.Comment
// @Router       /v1/comments [get]
func (h *CommentHandler) List(c echo.Context) error {
	comments := h.comments.List(c.Request().Context())
	status := domain.CommentStatus(c.QueryParam("status"))
	if status == "" {
		return c.JSON(http.StatusOK, comments)
	}
	if !status.Valid() {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "status must be one of: approved pending spam")
	}

	filtered := make([]domain.Comment, 0, len(comments))
	for _, cm := range comments {
		if cm.Status == status {
			filtered = append(filtered, cm)
		}
	}
	return c.JSON(http.StatusOK, filtered)
}

// Create adds a comment. Author name and content title are resolved server side.
//
// @Summary      Create a comment
// @Tags         comments
// @Accept       json
// @Produce      json
// @Param        body  body      createCommentRequest  true  "Comment"
// @Success      201   {object}  domain.Comment
// @Failure      422   {object}  errorResponse
// @Router       /v1/comments [post]
func (h *CommentHandler) Create(c echo.Context) error {
	var req createCommentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	cm, err := h.comments.Add(c.Request().Context(), req.toDomain())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, cm)
}

// Update merges the provided fields into the comment.
//
// @Summary      Update a comment
// @Tags         comments
// @Accept       json
// @Produce      json
// @Param        id    path      int                   true  "Comment id"
// @Param        body  body      updateCommentRequest  true  "Fields to change"
// @Success      200   {object}  domain.Comment
// @Failure      404   {object}  errorResponse
// @Router       /v1/comments/{id} [patch]
func (h *CommentHandler) Update(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	var req updateCommentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	ok, err := h.comments.Update(ctx, id, req.toPatch())
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("comment %d: %w", id, domain.ErrRecordNotFound)
	}
	cm, _ := h.comments.Get(ctx, id)
	return c.JSON(http.StatusOK, cm)
}

// Delete removes a comment.
//
// @Summary      Delete a comment
// @Tags         comments
// @Param        id   path  int  true  "Comment id"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /v1/comments/{id} [delete]
func (h *CommentHandler) Delete(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	ok, err := h.comments.Delete(c.Request().Context(), id)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("comment %d: %w", id, domain.ErrRecordNotFound)
	}
	return c.NoContent(http.StatusNoContent)
}
