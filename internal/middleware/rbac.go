package middleware

import (
	"net/http"

	"github.com/mmeshcher/partspos-system/internal/rbac"
)

// RequireRoute пропускает запрос, только если роль текущей сессии имеет
// доступ к указанному экрану. Ограничение действует на уровне API,
// независимо от того, что показывает или скрывает интерфейс.
func RequireRoute(routes ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, ok := GetSessionFromContext(r.Context())
			if !ok {
				http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
				return
			}

			for _, route := range routes {
				if rbac.CanAccess(session.Role, route) {
					next.ServeHTTP(w, r)
					return
				}
			}

			http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
		})
	}
}
