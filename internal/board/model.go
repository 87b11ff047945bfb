package board

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusReady     Status = "ready"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// IsActive reports whether the order still needs kitchen or floor
// attention.
func (s Status) IsActive() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusReady:
		return true
	}
	return false
}

type OrderItem struct {
	MenuItemID int64
	Name       string
	Quantity   int
	UnitPrice  float64
}

type Order struct {
	ID         int64
	TableID    int64
	Status     Status
	TotalPrice float64
	Items      []OrderItem
}

// Actions is the set of operations the UI may offer for one order under
// the current role.
type Actions struct {
	CanMarkReady bool
	CanComplete  bool
	CanDelete    bool
}
