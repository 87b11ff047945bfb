package catalog

import (
	"context"
	"errors"
	"testing"

	"resto-client/internal/api"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockAPI is a mock implementation of the API interface
type MockAPI struct {
	mock.Mock
}

func (m *MockAPI) ListMenu(ctx context.Context) ([]api.MenuItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]api.MenuItem), args.Error(1)
}

func (m *MockAPI) ListTables(ctx context.Context) ([]api.Table, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]api.Table), args.Error(1)
}

func TestCache_RefreshMenu(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - Wholesale Replace", func(t *testing.T) {
		mockAPI := new(MockAPI)
		c := New(mockAPI)

		mockAPI.On("ListMenu", ctx).Return([]api.MenuItem{
			{ID: 7, Name: "Tea", Price: 50, Category: "drinks"},
		}, nil).Once()
		assert.NoError(t, c.RefreshMenu(ctx))

		mockAPI.On("ListMenu", ctx).Return([]api.MenuItem{
			{ID: 8, Name: "Soup", Price: 120, Category: "mains"},
		}, nil).Once()
		assert.NoError(t, c.RefreshMenu(ctx))

		// The old snapshot is gone entirely.
		_, ok := c.FindMenuItem(7)
		assert.False(t, ok)
		item, ok := c.FindMenuItem(8)
		assert.True(t, ok)
		assert.Equal(t, "Soup", item.Name)
		mockAPI.AssertExpectations(t)
	})

	t.Run("Error - Failed Refresh Keeps Snapshot", func(t *testing.T) {
		mockAPI := new(MockAPI)
		c := New(mockAPI)

		mockAPI.On("ListMenu", ctx).Return([]api.MenuItem{{ID: 7, Name: "Tea", Price: 50}}, nil).Once()
		assert.NoError(t, c.RefreshMenu(ctx))

		mockAPI.On("ListMenu", ctx).Return(nil, errors.New("network down")).Once()
		assert.Error(t, c.RefreshMenu(ctx))

		_, ok := c.FindMenuItem(7)
		assert.True(t, ok)
		mockAPI.AssertExpectations(t)
	})
}

func TestCache_RefreshTables(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockAPI := new(MockAPI)
		c := New(mockAPI)

		mockAPI.On("ListTables", ctx).Return([]api.Table{
			{ID: 1, TableNumber: 1, Seats: 4, IsOccupied: true},
			{ID: 2, TableNumber: 2, Seats: 2, IsOccupied: false},
			{ID: 3, TableNumber: 3, Seats: 6, IsOccupied: true},
		}, nil).Once()

		assert.NoError(t, c.RefreshTables(ctx))

		assert.Len(t, c.Tables(), 3)
		assert.Equal(t, 2, c.OccupiedCount())
		mockAPI.AssertExpectations(t)
	})
}

func TestCache_FindMenuItem(t *testing.T) {
	t.Run("Empty Cache", func(t *testing.T) {
		c := New(new(MockAPI))
		_, ok := c.FindMenuItem(7)
		assert.False(t, ok)
	})
}
