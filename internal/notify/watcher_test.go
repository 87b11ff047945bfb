package notify

import (
	"context"
	"errors"
	"testing"
	"time"

	"resto-client/internal/api"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockOrderSource is a mock implementation of the OrderSource interface
type MockOrderSource struct {
	mock.Mock
}

func (m *MockOrderSource) ListOrdersByStatus(ctx context.Context, status string) ([]api.Order, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]api.Order), args.Error(1)
}

func drain(ch <-chan Event) []Event {
	var out []Event
	for {
		select {
		case ev := <-ch:
			out = append(out, ev)
		default:
			return out
		}
	}
}

func TestWatcher_Tick(t *testing.T) {
	ctx := context.Background()

	t.Run("Emits Once Per Ready Order", func(t *testing.T) {
		mockSrc := new(MockOrderSource)
		w := NewWatcher(mockSrc, time.Second)

		ready := []api.Order{{ID: 12, TableID: 3, Status: "ready"}}
		mockSrc.On("ListOrdersByStatus", ctx, "ready").Return(ready, nil).Twice()

		w.tick(ctx)
		w.tick(ctx)

		events := drain(w.events)
		assert.Equal(t, []Event{{OrderID: 12, TableID: 3}}, events)
		mockSrc.AssertExpectations(t)
	})

	t.Run("Renotifies After Order Leaves And Reenters Ready", func(t *testing.T) {
		mockSrc := new(MockOrderSource)
		w := NewWatcher(mockSrc, time.Second)

		ready := []api.Order{{ID: 12, TableID: 3, Status: "ready"}}
		mockSrc.On("ListOrdersByStatus", ctx, "ready").Return(ready, nil).Once()
		mockSrc.On("ListOrdersByStatus", ctx, "ready").Return([]api.Order{}, nil).Once()
		mockSrc.On("ListOrdersByStatus", ctx, "ready").Return(ready, nil).Once()

		w.tick(ctx)
		w.tick(ctx)
		w.tick(ctx)

		events := drain(w.events)
		assert.Len(t, events, 2)
		mockSrc.AssertExpectations(t)
	})

	t.Run("Poll Failure Emits Nothing", func(t *testing.T) {
		mockSrc := new(MockOrderSource)
		w := NewWatcher(mockSrc, time.Second)

		mockSrc.On("ListOrdersByStatus", ctx, "ready").Return(nil, errors.New("network down")).Once()

		w.tick(ctx)

		assert.Empty(t, drain(w.events))
	})
}

func TestWatcher_Start(t *testing.T) {
	t.Run("Cancel Closes Event Channel", func(t *testing.T) {
		mockSrc := new(MockOrderSource)
		mockSrc.On("ListOrdersByStatus", mock.Anything, "ready").Return([]api.Order{}, nil).Maybe()

		w := NewWatcher(mockSrc, 10*time.Millisecond)
		ctx, cancel := context.WithCancel(context.Background())
		w.Start(ctx)

		cancel()

		select {
		case _, ok := <-waitClosed(w.Events()):
			assert.False(t, ok)
		case <-time.After(time.Second):
			t.Fatal("event channel did not close after cancel")
		}
	})
}

// waitClosed forwards from ch until it closes, then closes its own
// channel, letting the test wait on closure while ignoring any events
// emitted before the cancel landed.
func waitClosed(ch <-chan Event) <-chan Event {
	out := make(chan Event)
	go func() {
		defer close(out)
		for range ch {
		}
	}()
	return out
}
