package board

import (
	"context"
	"fmt"

	"resto-client/internal/api"
	"resto-client/internal/logger"
	"resto-client/internal/session"

	"go.uber.org/zap"
)

// OrdersAPI is the slice of the backend client the board needs.
type OrdersAPI interface {
	ListOrders(ctx context.Context) ([]api.Order, error)
	UpdateOrderStatus(ctx context.Context, id int64, status string) (api.Order, error)
	DeleteOrder(ctx context.Context, id int64) error
}

// Board is the read model over fetched orders. The authoritative copy
// lives server-side; Refresh replaces the local snapshot wholesale, and
// every mutation goes through the server before the snapshot changes.
type Board struct {
	api    OrdersAPI
	orders []Order
}

func New(a OrdersAPI) *Board {
	return &Board{api: a}
}

func (b *Board) Refresh(ctx context.Context) error {
	rows, err := b.api.ListOrders(ctx)
	if err != nil {
		return err
	}

	orders := make([]Order, 0, len(rows))
	for _, o := range rows {
		orders = append(orders, fromAPIOrder(o))
	}
	b.orders = orders

	logger.FromCtx(ctx).Debug("order board refreshed", zap.Int("orders", len(orders)))
	return nil
}

func (b *Board) Orders() []Order {
	out := make([]Order, len(b.orders))
	copy(out, b.orders)
	return out
}

func (b *Board) Get(id int64) (Order, bool) {
	for _, o := range b.orders {
		if o.ID == id {
			return o, true
		}
	}
	return Order{}, false
}

// ActiveCount counts orders with status pending, confirmed or ready.
func (b *Board) ActiveCount() int {
	n := 0
	for _, o := range b.orders {
		if o.Status.IsActive() {
			n++
		}
	}
	return n
}

func (b *Board) TotalCount() int {
	return len(b.orders)
}

// ActionsFor derives the per-order affordances for a role. Only chefs
// and admins get mutating actions, and mark-ready is gone once the
// order left pending/confirmed.
func ActionsFor(o Order, role session.Role) Actions {
	if role != session.RoleChef && role != session.RoleAdmin {
		return Actions{}
	}

	switch o.Status {
	case StatusPending, StatusConfirmed:
		return Actions{CanMarkReady: true, CanDelete: true}
	case StatusReady:
		return Actions{CanComplete: true, CanDelete: true}
	default:
		return Actions{CanDelete: true}
	}
}

// MarkReady transitions a pending/confirmed order to ready. The local
// snapshot is untouched until the server acknowledged the update.
func (b *Board) MarkReady(ctx context.Context, orderID int64) error {
	return b.transition(ctx, orderID, StatusReady, func(s Status) bool {
		return s == StatusPending || s == StatusConfirmed
	})
}

// Complete transitions a ready order to completed.
func (b *Board) Complete(ctx context.Context, orderID int64) error {
	return b.transition(ctx, orderID, StatusCompleted, func(s Status) bool {
		return s == StatusReady
	})
}

func (b *Board) transition(ctx context.Context, orderID int64, to Status, allowed func(Status) bool) error {
	order, ok := b.Get(orderID)
	if !ok {
		return ErrOrderNotFound
	}
	if !allowed(order.Status) {
		return ErrActionUnavailable
	}

	if _, err := b.api.UpdateOrderStatus(ctx, orderID, string(to)); err != nil {
		return err
	}

	logger.FromCtx(ctx).Info("order status updated",
		zap.Int64("order_id", orderID),
		zap.String("status", string(to)),
	)

	// The transition landed server-side; a failed refresh must not look
	// like a failed transition, or callers would re-offer the action.
	if err := b.Refresh(ctx); err != nil {
		return fmt.Errorf("%w: %v", ErrStaleAfterUpdate, err)
	}
	return nil
}

// Delete removes an order server-side and refreshes the board.
func (b *Board) Delete(ctx context.Context, orderID int64) error {
	if _, ok := b.Get(orderID); !ok {
		return ErrOrderNotFound
	}
	if err := b.api.DeleteOrder(ctx, orderID); err != nil {
		return err
	}
	if err := b.Refresh(ctx); err != nil {
		return fmt.Errorf("%w: %v", ErrStaleAfterUpdate, err)
	}
	return nil
}
