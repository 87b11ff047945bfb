package board

import "resto-client/internal/api"

func fromAPIOrder(o api.Order) Order {
	items := make([]OrderItem, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, OrderItem{
			MenuItemID: it.MenuItemID,
			Name:       it.Name,
			Quantity:   it.Quantity,
			UnitPrice:  it.Price,
		})
	}
	return Order{
		ID:         o.ID,
		TableID:    o.TableID,
		Status:     Status(o.Status),
		TotalPrice: o.TotalPrice,
		Items:      items,
	}
}
