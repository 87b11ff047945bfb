package catalog

import (
	"context"

	"resto-client/internal/api"
	"resto-client/internal/logger"

	"go.uber.org/zap"
)

// API is the slice of the backend client the cache needs.
type API interface {
	ListMenu(ctx context.Context) ([]api.MenuItem, error)
	ListTables(ctx context.Context) ([]api.Table, error)
}

// Cache holds the last-fetched menu and table snapshots. Each refresh
// replaces its snapshot wholesale; there is no incremental merge. A
// failed refresh leaves the previous snapshot in place.
type Cache struct {
	api    API
	menu   []MenuItem
	tables []Table
}

func New(a API) *Cache {
	return &Cache{api: a}
}

func (c *Cache) RefreshMenu(ctx context.Context) error {
	items, err := c.api.ListMenu(ctx)
	if err != nil {
		return err
	}

	menu := make([]MenuItem, 0, len(items))
	for _, it := range items {
		menu = append(menu, fromAPIMenuItem(it))
	}
	c.menu = menu

	logger.FromCtx(ctx).Debug("menu snapshot replaced", zap.Int("items", len(menu)))
	return nil
}

func (c *Cache) RefreshTables(ctx context.Context) error {
	rows, err := c.api.ListTables(ctx)
	if err != nil {
		return err
	}

	tables := make([]Table, 0, len(rows))
	for _, t := range rows {
		tables = append(tables, fromAPITable(t))
	}
	c.tables = tables

	logger.FromCtx(ctx).Debug("table snapshot replaced", zap.Int("tables", len(tables)))
	return nil
}

// FindMenuItem resolves an id against the current menu snapshot.
func (c *Cache) FindMenuItem(id int64) (MenuItem, bool) {
	for _, it := range c.menu {
		if it.ID == id {
			return it, true
		}
	}
	return MenuItem{}, false
}

func (c *Cache) Menu() []MenuItem {
	out := make([]MenuItem, len(c.menu))
	copy(out, c.menu)
	return out
}

func (c *Cache) Tables() []Table {
	out := make([]Table, len(c.tables))
	copy(out, c.tables)
	return out
}

// OccupiedCount counts occupied tables in the current snapshot.
func (c *Cache) OccupiedCount() int {
	n := 0
	for _, t := range c.tables {
		if t.IsOccupied {
			n++
		}
	}
	return n
}
