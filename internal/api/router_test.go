package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/swaggo/swag"

	"github.com/99minutos/cms-console/internal/core/domain"
	"github.com/99minutos/cms-console/internal/infrastructure/db/memory"
)

var testNow = time.Date(2023, 7, 1, 12, 0, 0, 0, time.UTC)

func newTestRouter(t *testing.T) (*echo.Echo, *Services) {
	t.Helper()

	svc := NewServices(memory.NewStore(), zerolog.Nop(), func() time.Time { return testNow })
	if err := svc.Seeder.Initialize(context.Background()); err != nil {
		t.Fatalf("seed: %v", err)
	}

	reg := prometheus.NewRegistry()
	e := NewRouter(svc, zerolog.Nop(), RouterOptions{
		StoreDriver: "memory",
		Registerer:  reg,
		Gatherer:    reg,
	})
	return e, svc
}

func do(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func login(t *testing.T, e *echo.Echo, username string) {
	t.Helper()
	rec := do(e, http.MethodPost, "/v1/session", `{"username":"`+username+`"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("login %s: expected 200, got %d: %s", username, rec.Code, rec.Body.String())
	}
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	return resp["error"]
}

func TestRouter_HealthAndMetrics(t *testing.T) {
	e, _ := newTestRouter(t)

	if rec := do(e, http.MethodGet, "/health", ""); rec.Code != http.StatusOK {
		t.Fatalf("liveness: expected 200, got %d", rec.Code)
	}
	if rec := do(e, http.MethodGet, "/health/ready", ""); rec.Code != http.StatusOK {
		t.Fatalf("readiness: expected 200, got %d", rec.Code)
	}

	rec := do(e, http.MethodGet, "/metrics", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("metrics: expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "requests_total") {
		t.Fatalf("expected request counter in metrics output")
	}
}

func TestRouter_RequiresSession(t *testing.T) {
	e, _ := newTestRouter(t)

	rec := do(e, http.MethodGet, "/v1/users", "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if msg := decodeError(t, rec); msg != "no active session" {
		t.Fatalf("unexpected error message %q", msg)
	}
}

func TestRouter_Login(t *testing.T) {
	e, _ := newTestRouter(t)

	if rec := do(e, http.MethodPost, "/v1/session", `{"username":"nobody"}`); rec.Code != http.StatusNotFound {
		t.Fatalf("unknown user: expected 404, got %d", rec.Code)
	}
	if rec := do(e, http.MethodPost, "/v1/session", `{"username":"mike_banned"}`); rec.Code != http.StatusForbidden {
		t.Fatalf("banned user: expected 403, got %d", rec.Code)
	}
	if rec := do(e, http.MethodPost, "/v1/session", `{}`); rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("missing username: expected 422, got %d", rec.Code)
	}

	login(t, e, "ADMIN")

	rec := do(e, http.MethodGet, "/v1/session", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("current: expected 200, got %d", rec.Code)
	}
	var u domain.User
	if err := json.Unmarshal(rec.Body.Bytes(), &u); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if u.Username != "admin" || u.Role != domain.RoleAdmin {
		t.Fatalf("unexpected session user %+v", u)
	}

	if rec := do(e, http.MethodDelete, "/v1/session", ""); rec.Code != http.StatusNoContent {
		t.Fatalf("logout: expected 204, got %d", rec.Code)
	}
	if rec := do(e, http.MethodGet, "/v1/session", ""); rec.Code != http.StatusUnauthorized {
		t.Fatalf("after logout: expected 401, got %d", rec.Code)
	}
}

func TestRouter_RoleGates(t *testing.T) {
	e, _ := newTestRouter(t)
	login(t, e, "john_viewer")

	if rec := do(e, http.MethodGet, "/v1/users", ""); rec.Code != http.StatusOK {
		t.Fatalf("viewer read: expected 200, got %d", rec.Code)
	}
	if rec := do(e, http.MethodDelete, "/v1/users/2", ""); rec.Code != http.StatusForbidden {
		t.Fatalf("viewer delete user: expected 403, got %d", rec.Code)
	}
	if rec := do(e, http.MethodPost, "/v1/content", `{"title":"Draft"}`); rec.Code != http.StatusForbidden {
		t.Fatalf("viewer create content: expected 403, got %d", rec.Code)
	}

	login(t, e, "jane_editor")

	if rec := do(e, http.MethodPost, "/v1/content", `{"title":"Draft"}`); rec.Code != http.StatusCreated {
		t.Fatalf("editor create content: expected 201, got %d", rec.Code)
	}
	if rec := do(e, http.MethodPost, "/v1/admin/reset", ""); rec.Code != http.StatusForbidden {
		t.Fatalf("editor reset: expected 403, got %d", rec.Code)
	}
}

func TestRouter_UserCRUD(t *testing.T) {
	e, _ := newTestRouter(t)
	login(t, e, "admin")

	body := `{"name":"New Person","username":"new_person","email":"new@example.com","role":"viewer"}`
	rec := do(e, http.MethodPost, "/v1/users", body)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	var created domain.User
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if created.ID != 7 || created.Joined != "2023-07-01" || created.Status != domain.StatusActive {
		t.Fatalf("unexpected created user %+v", created)
	}

	if rec := do(e, http.MethodPost, "/v1/users", `{"name":"x","username":"x","email":"not-an-email","role":"viewer"}`); rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("invalid email: expected 422, got %d", rec.Code)
	}

	rec = do(e, http.MethodPatch, "/v1/users/7", `{"status":"inactive"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("update: expected 200, got %d", rec.Code)
	}
	var updated domain.User
	_ = json.Unmarshal(rec.Body.Bytes(), &updated)
	if updated.Status != domain.StatusInactive || updated.Email != "new@example.com" {
		t.Fatalf("unexpected updated user %+v", updated)
	}

	if rec := do(e, http.MethodGet, "/v1/users/99", ""); rec.Code != http.StatusNotFound {
		t.Fatalf("missing: expected 404, got %d", rec.Code)
	}
	if rec := do(e, http.MethodGet, "/v1/users/abc", ""); rec.Code != http.StatusBadRequest {
		t.Fatalf("bad id: expected 400, got %d", rec.Code)
	}
	if rec := do(e, http.MethodDelete, "/v1/users/7", ""); rec.Code != http.StatusNoContent {
		t.Fatalf("delete: expected 204, got %d", rec.Code)
	}
	if rec := do(e, http.MethodDelete, "/v1/users/7", ""); rec.Code != http.StatusNotFound {
		t.Fatalf("delete twice: expected 404, got %d", rec.Code)
	}

	rec = do(e, http.MethodGet, "/v1/users?q=jane", "")
	var found []domain.User
	_ = json.Unmarshal(rec.Body.Bytes(), &found)
	if len(found) != 1 || found[0].ID != 2 {
		t.Fatalf("search: unexpected result %+v", found)
	}
}

func TestRouter_BanAndAudit(t *testing.T) {
	e, _ := newTestRouter(t)
	login(t, e, "admin")

	rec := do(e, http.MethodPost, "/v1/users/3/ban", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("ban: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var ban struct {
		User    domain.User           `json:"user"`
		Entry   domain.BlacklistEntry `json:"entry"`
		Created bool                  `json:"created"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &ban); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if ban.User.Status != domain.StatusBanned || !ban.Created || ban.Entry.UserName != "John Viewer" {
		t.Fatalf("unexpected ban result %+v", ban)
	}

	// Banning again does not add a second entry.
	rec = do(e, http.MethodPost, "/v1/users/3/ban", "")
	_ = json.Unmarshal(rec.Body.Bytes(), &ban)
	if ban.Created {
		t.Fatalf("expected existing entry on second ban")
	}

	var entries []domain.BlacklistEntry
	_ = json.Unmarshal(do(e, http.MethodGet, "/v1/blacklist", "").Body.Bytes(), &entries)
	if len(entries) != 2 {
		t.Fatalf("expected 2 blacklist entries, got %d", len(entries))
	}

	if rec := do(e, http.MethodPost, "/v1/users/42/ban", ""); rec.Code != http.StatusNotFound {
		t.Fatalf("ban missing user: expected 404, got %d", rec.Code)
	}

	var audit []domain.AuditEntry
	_ = json.Unmarshal(do(e, http.MethodGet, "/v1/audit", "").Body.Bytes(), &audit)
	if len(audit) == 0 {
		t.Fatalf("expected audit entries after ban")
	}
}

func TestRouter_Export(t *testing.T) {
	e, _ := newTestRouter(t)
	login(t, e, "jane_editor")

	rec := do(e, http.MethodGet, "/v1/export", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("export: expected 200, got %d", rec.Code)
	}
	if cd := rec.Header().Get(echo.HeaderContentDisposition); !strings.Contains(cd, "cms-dashboard-data.json") {
		t.Fatalf("unexpected content disposition %q", cd)
	}

	rec = do(e, http.MethodGet, "/v1/export/analytics", "")
	if cd := rec.Header().Get(echo.HeaderContentDisposition); !strings.Contains(cd, "analytics-export-2023-07-01.json") {
		t.Fatalf("unexpected content disposition %q", cd)
	}
}

func TestRouter_Reset(t *testing.T) {
	e, _ := newTestRouter(t)
	login(t, e, "admin")

	if rec := do(e, http.MethodDelete, "/v1/users/2", ""); rec.Code != http.StatusNoContent {
		t.Fatalf("delete: expected 204, got %d", rec.Code)
	}
	if rec := do(e, http.MethodPost, "/v1/admin/reset", ""); rec.Code != http.StatusOK {
		t.Fatalf("reset: expected 200, got %d", rec.Code)
	}

	// Reset clears the session along with the data.
	if rec := do(e, http.MethodGet, "/v1/users", ""); rec.Code != http.StatusUnauthorized {
		t.Fatalf("after reset: expected 401, got %d", rec.Code)
	}

	login(t, e, "admin")
	var users []domain.User
	_ = json.Unmarshal(do(e, http.MethodGet, "/v1/users", "").Body.Bytes(), &users)
	if len(users) != 6 {
		t.Fatalf("expected 6 default users after reset, got %d", len(users))
	}
}

func TestSwaggerDocCoversRoutes(t *testing.T) {
	e, _ := newTestRouter(t)

	raw, err := swag.ReadDoc()
	if err != nil {
		t.Fatalf("read swagger doc: %v", err)
	}
	var doc struct {
		Paths map[string]map[string]json.RawMessage `json:"paths"`
	}
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		t.Fatalf("swagger doc is not valid json: %v", err)
	}

	param := regexp.MustCompile(`:(\w+)`)
	for _, r := range e.Routes() {
		switch r.Method {
		case http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodPut, http.MethodDelete:
		default:
			continue
		}
		if r.Path == "/metrics" || strings.HasPrefix(r.Path, "/swagger") {
			continue
		}
		path := param.ReplaceAllString(r.Path, "{$1}")
		if _, ok := doc.Paths[path][strings.ToLower(r.Method)]; !ok {
			t.Fatalf("route %s %s missing from swagger doc", r.Method, path)
		}
	}
}
