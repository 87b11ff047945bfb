package api

import (
	"context"
	"fmt"
	"net/http"
)

func (c *Client) ListMenu(ctx context.Context) ([]MenuItem, error) {
	var items []MenuItem
	if err := c.do(ctx, http.MethodGet, "/api/menu/", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *Client) CreateMenuItem(ctx context.Context, input MenuItemInput) (MenuItem, error) {
	var item MenuItem
	if err := c.do(ctx, http.MethodPost, "/api/menu/", input, &item); err != nil {
		return MenuItem{}, err
	}
	return item, nil
}

func (c *Client) UpdateMenuItem(ctx context.Context, id int64, input MenuItemInput) (MenuItem, error) {
	var item MenuItem
	path := fmt.Sprintf("/api/menu/%d", id)
	if err := c.do(ctx, http.MethodPut, path, input, &item); err != nil {
		return MenuItem{}, err
	}
	return item, nil
}

func (c *Client) DeleteMenuItem(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/menu/%d", id), nil, nil)
}
