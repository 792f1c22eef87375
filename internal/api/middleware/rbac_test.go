package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/gracepoint/church-admin-api/internal/core/domain"
)

func invokeRBAC(t *testing.T, role string, allowed ...domain.Role) error {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/admin/users", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if role != "" {
		c.Set("role", role)
	}

	h := RBAC(allowed...)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	return h(c)
}

func assertForbidden(t *testing.T, err error) {
	t.Helper()
	httpErr, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected *echo.HTTPError, got %v", err)
	}
	if httpErr.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", httpErr.Code)
	}
}

func TestRBAC_AllowsMatchingRole(t *testing.T) {
	if err := invokeRBAC(t, "admin", domain.RoleAdmin); err != nil {
		t.Fatalf("expected admin allowed, got %v", err)
	}
}

func TestRBAC_AllowsAnyListedRole(t *testing.T) {
	if err := invokeRBAC(t, "finance", domain.RoleAdmin, domain.RoleFinance); err != nil {
		t.Fatalf("expected finance allowed, got %v", err)
	}
}

// An authenticated caller with the wrong role is forbidden, not unauthorized.
func TestRBAC_WrongRoleIsForbidden(t *testing.T) {
	assertForbidden(t, invokeRBAC(t, "finance", domain.RoleAdmin))
	assertForbidden(t, invokeRBAC(t, "user", domain.RoleAdmin, domain.RoleFinance))
}

func TestRBAC_MissingRoleIsForbidden(t *testing.T) {
	assertForbidden(t, invokeRBAC(t, "", domain.RoleAdmin))
}
