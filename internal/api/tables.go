package api

import (
	"context"
	"fmt"
	"net/http"
)

func (c *Client) ListTables(ctx context.Context) ([]Table, error) {
	var tables []Table
	if err := c.do(ctx, http.MethodGet, "/api/tables/", nil, &tables); err != nil {
		return nil, err
	}
	return tables, nil
}

func (c *Client) CreateTable(ctx context.Context, input TableInput) (Table, error) {
	var table Table
	if err := c.do(ctx, http.MethodPost, "/api/tables/", input, &table); err != nil {
		return Table{}, err
	}
	return table, nil
}

func (c *Client) UpdateTable(ctx context.Context, id int64, patch TablePatch) (Table, error) {
	var table Table
	path := fmt.Sprintf("/api/tables/%d", id)
	if err := c.do(ctx, http.MethodPut, path, patch, &table); err != nil {
		return Table{}, err
	}
	return table, nil
}

func (c *Client) DeleteTable(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/tables/%d", id), nil, nil)
}
