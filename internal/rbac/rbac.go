// Package rbac содержит статическую модель доступа ролей к экранам системы.
package rbac

import "github.com/mmeshcher/partspos-system/internal/model"

// Идентификаторы экранов приложения.
const (
	RouteSale            = "/sale"
	RouteOnlineOrders    = "/online-orders"
	RouteManageInventory = "/manage-inventory"
	RouteReports         = "/reports"
)

// Первый маршрут в списке — экран по умолчанию после входа.
var rolePermissions = map[model.Role][]string{
	model.RoleSalesEmployee:    {RouteSale, RouteOnlineOrders},
	model.RoleInventoryManager: {RouteManageInventory},
	model.RoleGeneralManager:   {RouteReports},
}

// RoleLabels сопоставляет роли с отображаемыми названиями.
var RoleLabels = map[model.Role]string{
	model.RoleSalesEmployee:    "Sales Employee",
	model.RoleInventoryManager: "Inventory Manager",
	model.RoleGeneralManager:   "General Manager",
}

// PermittedRoutes возвращает упорядоченный список маршрутов, доступных роли.
func PermittedRoutes(role model.Role) []string {
	routes := rolePermissions[role]
	out := make([]string, len(routes))
	copy(out, routes)
	return out
}

// CanAccess сообщает, разрешён ли роли доступ к указанному маршруту.
func CanAccess(role model.Role, route string) bool {
	for _, r := range rolePermissions[role] {
		if r == route {
			return true
		}
	}
	return false
}

// DefaultRoute возвращает маршрут, на который пользователь попадает после входа.
func DefaultRoute(role model.Role) string {
	routes := rolePermissions[role]
	if len(routes) == 0 {
		return ""
	}
	return routes[0]
}

// ParseRole проверяет строковое значение роли на границе ввода.
// Неизвестная роль отклоняется сразу, до создания сессии.
func ParseRole(s string) (model.Role, bool) {
	role := model.Role(s)
	if _, ok := rolePermissions[role]; !ok {
		return "", false
	}
	return role, true
}
