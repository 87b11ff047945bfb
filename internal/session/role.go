package session

// Role determines which sections of the UI are visible and which
// actions are offered. The backend re-checks everything; client-side
// gating is advisory only.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleChef   Role = "chef"
	RoleWaiter Role = "waiter"
	// RoleUser is the public customer role: same capabilities as a
	// waiter minus staff identity.
	RoleUser Role = "user"
)

func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin, RoleChef, RoleWaiter, RoleUser:
		return Role(s), nil
	}
	return "", ErrUnknownRole
}

// Action is a capability the UI may or may not offer for the current
// role.
type Action string

const (
	ActionViewCatalog     Action = "view_catalog"
	ActionPlaceOrder      Action = "place_order"
	ActionManageOrders    Action = "manage_orders"
	ActionManageEmployees Action = "manage_employees"
	ActionManageTables    Action = "manage_tables"
	ActionManageMenu      Action = "manage_menu"
)

var capabilities = map[Role]map[Action]bool{
	RoleAdmin: {
		ActionViewCatalog:     true,
		ActionManageEmployees: true,
		ActionManageTables:    true,
		ActionManageMenu:      true,
	},
	RoleChef: {
		ActionViewCatalog:  true,
		ActionManageOrders: true,
	},
	RoleWaiter: {
		ActionViewCatalog: true,
		ActionPlaceOrder:  true,
	},
	RoleUser: {
		ActionViewCatalog: true,
		ActionPlaceOrder:  true,
	},
}

// Allows reports whether the role grants the given action.
func (r Role) Allows(a Action) bool {
	return capabilities[r][a]
}
