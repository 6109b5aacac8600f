package api

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/99minutos/cms-console/internal/core/domain"
)

func TestStatusFor(t *testing.T) {
	cases := []struct {
		err    error
		status int
		msg    string
	}{
		{fmt.Errorf("ban user 9: %w", domain.ErrUserNotFound), http.StatusNotFound, "user not found"},
		{fmt.Errorf("comment 3: %w", domain.ErrRecordNotFound), http.StatusNotFound, "record not found"},
		{domain.ErrNoSession, http.StatusUnauthorized, "no active session"},
		{domain.ErrUserBanned, http.StatusForbidden, "user is banned"},
		{fmt.Errorf("role viewer: %w", domain.ErrForbidden), http.StatusForbidden, "access forbidden"},
		{echo.NewHTTPError(http.StatusUnprocessableEntity, "email is required"), http.StatusUnprocessableEntity, "email is required"},
		{errors.New("bolt: database not open"), http.StatusInternalServerError, "internal server error"},
	}
	for _, tc := range cases {
		status, msg := statusFor(tc.err)
		if status != tc.status || msg != tc.msg {
			t.Fatalf("%v: expected %d %q, got %d %q", tc.err, tc.status, tc.msg, status, msg)
		}
	}
}

func TestHTTPErrorHandler_WritesEnvelope(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/v1/users/9", nil), rec)

	NewHTTPErrorHandler(zerolog.Nop())(domain.ErrUserNotFound, c)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if body := rec.Body.String(); body != "{\"error\":\"user not found\"}\n" {
		t.Fatalf("unexpected body %q", body)
	}
}
