package catalog

type MenuItem struct {
	ID          int64
	Name        string
	Description string
	Price       float64
	Category    string
}

type Table struct {
	ID          int64
	TableNumber int
	Seats       int
	IsOccupied  bool
}
