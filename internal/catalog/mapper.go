package catalog

import "resto-client/internal/api"

func fromAPIMenuItem(m api.MenuItem) MenuItem {
	return MenuItem{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Price:       m.Price,
		Category:    m.Category,
	}
}

func fromAPITable(t api.Table) Table {
	return Table{
		ID:          t.ID,
		TableNumber: t.TableNumber,
		Seats:       t.Seats,
		IsOccupied:  t.IsOccupied,
	}
}
