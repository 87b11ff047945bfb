package api

import (
	"context"
	"fmt"
	"net/http"
)

func (c *Client) ListEmployees(ctx context.Context) ([]Employee, error) {
	var employees []Employee
	if err := c.do(ctx, http.MethodGet, "/api/employees/", nil, &employees); err != nil {
		return nil, err
	}
	return employees, nil
}

func (c *Client) CreateEmployee(ctx context.Context, input EmployeeInput) (Employee, error) {
	var emp Employee
	if err := c.do(ctx, http.MethodPost, "/api/employees/", input, &emp); err != nil {
		return Employee{}, err
	}
	return emp, nil
}

func (c *Client) UpdateEmployee(ctx context.Context, id int64, patch EmployeePatch) (Employee, error) {
	var emp Employee
	path := fmt.Sprintf("/api/employees/%d", id)
	if err := c.do(ctx, http.MethodPut, path, patch, &emp); err != nil {
		return Employee{}, err
	}
	return emp, nil
}

func (c *Client) DeleteEmployee(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/employees/%d", id), nil, nil)
}
