package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mmeshcher/partspos-system/internal/model"
	"github.com/mmeshcher/partspos-system/internal/rbac"
)

func doGuardedRequest(t *testing.T, role model.Role, routes ...string) int {
	t.Helper()

	resolver := &stubResolver{session: model.Session{ID: "sess-1", Role: role}}
	m := NewAuthMiddleware("test-secret", resolver)

	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := m.Middleware(RequireRoute(routes...)(ok))

	w := httptest.NewRecorder()
	m.SetAuthCookie(w, "sess-1")
	cookie := w.Result().Cookies()[0]

	r := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	r.AddCookie(cookie)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, r)
	return rec.Result().StatusCode
}

func TestRequireRoute(t *testing.T) {
	tests := []struct {
		name   string
		role   model.Role
		routes []string
		want   int
	}{
		{"sales employee reaches sale", model.RoleSalesEmployee, []string{rbac.RouteSale}, http.StatusOK},
		{"sales employee blocked from reports", model.RoleSalesEmployee, []string{rbac.RouteReports}, http.StatusForbidden},
		{"general manager reaches reports", model.RoleGeneralManager, []string{rbac.RouteReports}, http.StatusOK},
		{"general manager blocked from inventory", model.RoleGeneralManager, []string{rbac.RouteManageInventory}, http.StatusForbidden},
		{"any of several routes is enough", model.RoleInventoryManager, []string{rbac.RouteSale, rbac.RouteManageInventory}, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := doGuardedRequest(t, tt.role, tt.routes...); got != tt.want {
				t.Fatalf("status = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestRequireRouteWithoutSession(t *testing.T) {
	guard := RequireRoute(rbac.RouteSale)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatalf("handler should not be called")
	}))

	rec := httptest.NewRecorder()
	guard.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/guarded", nil))

	if rec.Result().StatusCode != http.StatusUnauthorized {
		t.Fatalf("status = %d, want %d", rec.Result().StatusCode, http.StatusUnauthorized)
	}
}
