package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func newRoleEcho(roles ...string) *echo.Echo {
	e := echo.New()
	g := e.Group("", RequireRole(roles...))
	g.POST("/applications/review", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	return e
}

func doWithRole(e *echo.Echo, role string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/applications/review", nil)
	if role != "" {
		req.Header.Set("Ax-Actor-Role", role)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRequireRole_MissingHeader_Is401(t *testing.T) {
	e := newRoleEcho("MARKETING")
	rec := doWithRole(e, "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("want 401, got %d", rec.Code)
	}
}

func TestRequireRole_WrongRole_Is403(t *testing.T) {
	e := newRoleEcho("MARKETING")
	rec := doWithRole(e, "BACK_OFFICE")
	if rec.Code != http.StatusForbidden {
		t.Fatalf("want 403, got %d", rec.Code)
	}
}

func TestRequireRole_AllowedRole_Passes(t *testing.T) {
	e := newRoleEcho("MARKETING", "BRANCH_MANAGER")
	for _, role := range []string{"MARKETING", "BRANCH_MANAGER"} {
		if rec := doWithRole(e, role); rec.Code != http.StatusOK {
			t.Fatalf("role %s: want 200, got %d", role, rec.Code)
		}
	}
}

func TestRequireRole_WhitespaceRole_Is401(t *testing.T) {
	e := newRoleEcho("MARKETING")
	rec := doWithRole(e, "   ")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("want 401, got %d", rec.Code)
	}
}
