package roster

import (
	"context"

	"resto-client/internal/api"
	"resto-client/internal/logger"

	"go.uber.org/zap"
)

// API is the slice of the backend client the roster needs.
type API interface {
	ListEmployees(ctx context.Context) ([]api.Employee, error)
}

type Employee struct {
	ID       int64
	Username string
	FullName string
	Role     string
}

// Roster is the admin-facing employee list, snapshot-replaced on each
// refresh like the catalog.
type Roster struct {
	api       API
	employees []Employee
}

func New(a API) *Roster {
	return &Roster{api: a}
}

func (r *Roster) Refresh(ctx context.Context) error {
	rows, err := r.api.ListEmployees(ctx)
	if err != nil {
		return err
	}

	employees := make([]Employee, 0, len(rows))
	for _, e := range rows {
		employees = append(employees, Employee{
			ID:       e.ID,
			Username: e.Username,
			FullName: e.FullName,
			Role:     e.Role,
		})
	}
	r.employees = employees

	logger.FromCtx(ctx).Debug("employee roster refreshed", zap.Int("employees", len(employees)))
	return nil
}

func (r *Roster) Employees() []Employee {
	out := make([]Employee, len(r.employees))
	copy(out, r.employees)
	return out
}

func (r *Roster) Count() int {
	return len(r.employees)
}
