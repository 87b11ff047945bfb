package cart

import (
	"context"

	"resto-client/internal/api"
	"resto-client/internal/catalog"
	"resto-client/internal/logger"

	"go.uber.org/zap"
)

// ItemResolver resolves a menu item id against the current catalog
// snapshot. Adds against a stale snapshot are fine; only id, name and
// price are taken from it.
type ItemResolver interface {
	FindMenuItem(id int64) (catalog.MenuItem, bool)
}

// OrderPlacer submits the assembled order to the backend.
type OrderPlacer interface {
	CreateOrder(ctx context.Context, input api.CreateOrderInput) (api.Order, error)
}

// Cart is the client-local pending order. Purely in-memory until
// Checkout; cleared on logout, new login, or a successful checkout.
type Cart struct {
	resolver ItemResolver
	placer   OrderPlacer
	lines    []Line
}

func New(resolver ItemResolver, placer OrderPlacer) *Cart {
	return &Cart{resolver: resolver, placer: placer}
}

// AddItem resolves the id through the catalog and increments an
// existing line or inserts a new one at quantity 1.
func (c *Cart) AddItem(menuItemID int64) error {
	item, ok := c.resolver.FindMenuItem(menuItemID)
	if !ok {
		return ErrUnknownItem
	}

	for i := range c.lines {
		if c.lines[i].MenuItemID == menuItemID {
			c.lines[i].Quantity++
			return nil
		}
	}

	c.lines = append(c.lines, Line{
		MenuItemID: item.ID,
		Name:       item.Name,
		UnitPrice:  item.Price,
		Quantity:   1,
	})
	return nil
}

// ChangeQuantity applies any integer delta to a line. A resulting
// quantity of zero or below removes the line.
func (c *Cart) ChangeQuantity(lineIndex, delta int) error {
	if lineIndex < 0 || lineIndex >= len(c.lines) {
		return ErrLineIndex
	}

	c.lines[lineIndex].Quantity += delta
	if c.lines[lineIndex].Quantity <= 0 {
		c.lines = append(c.lines[:lineIndex], c.lines[lineIndex+1:]...)
	}
	return nil
}

func (c *Cart) RemoveLine(lineIndex int) error {
	if lineIndex < 0 || lineIndex >= len(c.lines) {
		return ErrLineIndex
	}
	c.lines = append(c.lines[:lineIndex], c.lines[lineIndex+1:]...)
	return nil
}

// Lines returns a copy of the current lines.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// Total is computed fresh on every call, never cached.
func (c *Cart) Total() float64 {
	var total float64
	for _, l := range c.lines {
		total += l.UnitPrice * float64(l.Quantity)
	}
	return total
}

func (c *Cart) Clear() {
	c.lines = nil
}

// Checkout submits the cart as a single order. Validation failures
// happen before any network call; the cart is cleared only after the
// server acknowledged the order, so a failed submit leaves it intact.
func (c *Cart) Checkout(ctx context.Context, tableID int64) (api.Order, error) {
	if len(c.lines) == 0 {
		return api.Order{}, ErrEmptyCart
	}
	if tableID == 0 {
		return api.Order{}, ErrNoTableSelected
	}

	input := api.CreateOrderInput{
		TableID: tableID,
		Items:   make([]api.OrderItemInput, 0, len(c.lines)),
	}
	for _, l := range c.lines {
		input.Items = append(input.Items, api.OrderItemInput{
			MenuItemID: l.MenuItemID,
			Quantity:   l.Quantity,
		})
	}

	order, err := c.placer.CreateOrder(ctx, input)
	if err != nil {
		return api.Order{}, err
	}

	logger.FromCtx(ctx).Info("order placed",
		zap.Int64("order_id", order.ID),
		zap.Int64("table_id", order.TableID),
		zap.Float64("total", order.TotalPrice),
	)

	c.Clear()
	return order, nil
}
