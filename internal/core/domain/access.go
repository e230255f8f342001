package domain

import "errors"

var ErrForbidden = errors.New("access forbidden")

// Action is a logical operation a role may or may not reach.
type Action string

const (
	ActionProductView   Action = "product:view"
	ActionProductEdit   Action = "product:edit"
	ActionManagerManage Action = "manager:manage"
	ActionSellerManage  Action = "seller:manage"
)

// rolePermissions is the static access-control table. The SPA route guard and
// the server-side Authorize middleware both resolve against this one mapping.
var rolePermissions = map[string][]Action{
	RoleAdmin:    {ActionProductView, ActionProductEdit, ActionManagerManage, ActionSellerManage},
	RoleManager:  {ActionProductView, ActionProductEdit, ActionSellerManage},
	RoleSeller:   {ActionProductView, ActionProductEdit},
	RoleEmployee: {ActionProductView},
}

// Allowed reports whether role may perform action. Pure function; unknown
// roles have no permissions.
func Allowed(role string, action Action) bool {
	for _, a := range rolePermissions[role] {
		if a == action {
			return true
		}
	}
	return false
}

// ActionsFor returns the actions reachable by role, in table order.
// The returned slice is a copy.
func ActionsFor(role string) []Action {
	perms := rolePermissions[role]
	out := make([]Action, len(perms))
	copy(out, perms)
	return out
}
