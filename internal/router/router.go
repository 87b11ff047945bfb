package router

import (
	"context"
	"errors"

	"resto-client/internal/logger"
	"resto-client/internal/session"

	"go.uber.org/zap"
)

// Tab is a named UI section. Exactly one is active at a time.
type Tab string

const (
	TabMenu      Tab = "menu"
	TabTables    Tab = "tables"
	TabOrders    Tab = "orders"
	TabCart      Tab = "cart"
	TabEmployees Tab = "employees"
)

var ErrUnknownTab = errors.New("unknown tab")

// RefreshFunc reloads the data backing a tab.
type RefreshFunc func(ctx context.Context) error

// Router tracks the active tab and runs the refresh registered for a
// tab when it activates. State lives here as an explicit value, not in
// CSS classes.
type Router struct {
	active  Tab
	refresh map[Tab]RefreshFunc
}

func New() *Router {
	return &Router{refresh: make(map[Tab]RefreshFunc)}
}

// Register binds a refresh routine to a tab. Tabs without a routine
// still switch, they just load nothing.
func (r *Router) Register(tab Tab, fn RefreshFunc) {
	r.refresh[tab] = fn
}

func (r *Router) Active() Tab {
	return r.active
}

// SwitchTo deactivates the previous tab, activates the new one and
// triggers its refresh. A failed refresh keeps the tab active; the data
// just stays stale until the next switch or manual reload.
func (r *Router) SwitchTo(ctx context.Context, tab Tab) error {
	switch tab {
	case TabMenu, TabTables, TabOrders, TabCart, TabEmployees:
	default:
		return ErrUnknownTab
	}

	r.active = tab
	logger.FromCtx(ctx).Debug("tab activated", zap.String("tab", string(tab)))

	if fn, ok := r.refresh[tab]; ok {
		return fn(ctx)
	}
	return nil
}

// HomeFor picks the landing tab after login: admins manage tables,
// chefs watch orders, everyone else starts at the menu.
func HomeFor(role session.Role) Tab {
	switch role {
	case session.RoleAdmin:
		return TabTables
	case session.RoleChef:
		return TabOrders
	default:
		return TabMenu
	}
}
