package notify

import (
	"context"
	"time"

	"resto-client/internal/api"
	"resto-client/internal/logger"

	"go.uber.org/zap"
)

// OrderSource is the slice of the backend client the watcher polls.
type OrderSource interface {
	ListOrdersByStatus(ctx context.Context, status string) ([]api.Order, error)
}

// Event fires once when an order transitions to ready.
type Event struct {
	OrderID int64
	TableID int64
}

// Watcher polls the ready orders on a fixed interval and emits one
// Event per transition. An order that leaves the ready set and comes
// back is notified again; one that stays ready is not.
type Watcher struct {
	src      OrderSource
	interval time.Duration
	seen     map[int64]struct{}
	events   chan Event
}

func NewWatcher(src OrderSource, interval time.Duration) *Watcher {
	return &Watcher{
		src:      src,
		interval: interval,
		seen:     make(map[int64]struct{}),
		events:   make(chan Event, 16),
	}
}

// Events is closed when the watcher stops.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Start runs the poll loop until the context is cancelled. Callers own
// the context; cancelling it on logout tears the watcher down.
func (w *Watcher) Start(ctx context.Context) {
	go func() {
		defer close(w.events)

		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				w.tick(ctx)
			}
		}
	}()
}

// tick polls once. Poll failures are logged and skipped; the next tick
// retries naturally.
func (w *Watcher) tick(ctx context.Context) {
	orders, err := w.src.ListOrdersByStatus(ctx, "ready")
	if err != nil {
		if ctx.Err() == nil {
			logger.FromCtx(ctx).Warn("ready-order poll failed", zap.Error(err))
		}
		return
	}

	current := make(map[int64]struct{}, len(orders))
	for _, o := range orders {
		current[o.ID] = struct{}{}
		if _, ok := w.seen[o.ID]; ok {
			continue
		}
		w.seen[o.ID] = struct{}{}

		select {
		case w.events <- Event{OrderID: o.ID, TableID: o.TableID}:
		default:
			// Drop rather than block the poll loop on a slow consumer.
			logger.FromCtx(ctx).Warn("ready event dropped", zap.Int64("order_id", o.ID))
		}
	}

	// Forget orders that left the ready set so a later re-transition
	// notifies again.
	for id := range w.seen {
		if _, ok := current[id]; !ok {
			delete(w.seen, id)
		}
	}
}
