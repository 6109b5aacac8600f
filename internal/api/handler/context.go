package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/cms-console/internal/core/domain"
)

// Context keys written by the session middleware.
const (
	ContextUserKey = "user"
	ContextRoleKey = "role"
)

// ctxUser returns the session user injected by the session middleware.
// Its absence means the route was wired without the middleware.
func ctxUser(c echo.Context) (*domain.User, error) {
	u, _ := c.Get(ContextUserKey).(*domain.User)
	if u == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "no active session")
	}
	return u, nil
}

// paramID parses the :id path parameter.
func paramID(c echo.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "id must be a positive integer")
	}
	return id, nil
}

// bindAndValidate decodes the JSON body into req and runs its validate tags.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}
	return nil
}

type errorResponse struct {
	Error string `json:"error"`
}

type messageResponse struct {
	Message string `json:"message"`
	Count   int    `json:"count,omitempty"`
}
