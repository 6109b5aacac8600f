package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/99minutos/cms-console/internal/core/domain"
)

type errorBody struct {
	Error string `json:"error"`
}

// domainErrors lists the sentinels with a fixed HTTP rendering, checked in order.
var domainErrors = []struct {
	err     error
	status  int
	message string
}{
	{domain.ErrUserNotFound, http.StatusNotFound, "user not found"},
	{domain.ErrRecordNotFound, http.StatusNotFound, "record not found"},
	{domain.ErrNoSession, http.StatusUnauthorized, "no active session"},
	{domain.ErrUserBanned, http.StatusForbidden, "user is banned"},
	{domain.ErrForbidden, http.StatusForbidden, "access forbidden"},
}

// NewHTTPErrorHandler renders every error as {"error": "..."}. Errors that are
// neither echo HTTP errors nor known sentinels are logged and become a 500.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status, message := statusFor(err)
		if status == http.StatusInternalServerError {
			log.Error().
				Err(err).
				Str("method", c.Request().Method).
				Str("route", c.Path()).
				Str("request_id", c.Response().Header().Get(echo.HeaderXRequestID)).
				Msg("request failed")
		} else if status == http.StatusForbidden {
			log.Debug().Err(err).Str("route", c.Path()).Msg("request refused")
		}

		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(status)
			return
		}
		_ = c.JSON(status, errorBody{Error: message})
	}
}

func statusFor(err error) (int, string) {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprint(he.Message)
	}
	for _, de := range domainErrors {
		if errors.Is(err, de.err) {
			return de.status, de.message
		}
	}
	return http.StatusInternalServerError, "internal server error"
}
