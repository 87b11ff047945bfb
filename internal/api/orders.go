package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

func (c *Client) ListOrders(ctx context.Context) ([]Order, error) {
	var orders []Order
	if err := c.do(ctx, http.MethodGet, "/api/orders/", nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// ListOrdersByStatus filters server-side; the backend exposes a
// dedicated route for it so pollers do not pull the whole board.
func (c *Client) ListOrdersByStatus(ctx context.Context, status string) ([]Order, error) {
	var orders []Order
	path := "/api/orders/status/" + url.PathEscape(status)
	if err := c.do(ctx, http.MethodGet, path, nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (c *Client) GetOrder(ctx context.Context, id int64) (Order, error) {
	var order Order
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/orders/%d", id), nil, &order); err != nil {
		return Order{}, err
	}
	return order, nil
}

func (c *Client) CreateOrder(ctx context.Context, input CreateOrderInput) (Order, error) {
	var order Order
	if err := c.do(ctx, http.MethodPost, "/api/orders/", input, &order); err != nil {
		return Order{}, err
	}
	return order, nil
}

func (c *Client) UpdateOrderStatus(ctx context.Context, id int64, status string) (Order, error) {
	body := map[string]string{"status": status}
	var order Order
	path := fmt.Sprintf("/api/orders/%d", id)
	if err := c.do(ctx, http.MethodPut, path, body, &order); err != nil {
		return Order{}, err
	}
	return order, nil
}

func (c *Client) DeleteOrder(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/orders/%d", id), nil, nil)
}
