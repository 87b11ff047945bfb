package cart

// Line is one pending order line. Quantity is always > 0; a change that
// would take it to zero or below removes the line instead.
type Line struct {
	MenuItemID int64
	Name       string
	UnitPrice  float64
	Quantity   int
}
