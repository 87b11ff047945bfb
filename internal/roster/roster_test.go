package roster

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

func (m *MockAPI) ListEmployees(ctx context.Context) ([]api.Employee, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]api.Employee), args.Error(1)
}

func TestRoster_Refresh(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - Wholesale Replace", func(t *testing.T) {
		mockAPI := new(MockAPI)
		r := New(mockAPI)

		mockAPI.On("ListEmployees", ctx).Return([]api.Employee{
			{ID: 1, Username: "anna", FullName: "Anna K", Role: "waiter"},
			{ID: 2, Username: "boris", FullName: "Boris M", Role: "chef"},
		}, nil).Once()

		assert.NoError(t, r.Refresh(ctx))
		assert.Equal(t, 2, r.Count())

		mockAPI.On("ListEmployees", ctx).Return([]api.Employee{
			{ID: 2, Username: "boris", FullName: "Boris M", Role: "chef"},
		}, nil).Once()

		assert.NoError(t, r.Refresh(ctx))
		assert.Equal(t, 1, r.Count())
		assert.Equal(t, "boris", r.Employees()[0].Username)
		mockAPI.AssertExpectations(t)
	})

	t.Run("Error - Failed Refresh Keeps Snapshot", func(t *testing.T) {
		mockAPI := new(MockAPI)
		r := New(mockAPI)

		mockAPI.On("ListEmployees", ctx).Return([]api.Employee{{ID: 1, Username: "anna"}}, nil).Once()
		assert.NoError(t, r.Refresh(ctx))

		mockAPI.On("ListEmployees", ctx).Return(nil, errors.New("network down")).Once()
		assert.Error(t, r.Refresh(ctx))

		assert.Equal(t, 1, r.Count())
	})
}
