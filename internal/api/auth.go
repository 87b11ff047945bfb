package api

import (
	"context"
	"net/http"

	"resto-client/internal/logger"

	"go.uber.org/zap"
)

// Login authenticates against the backend. On success the returned
// access token (if any) is retained so later calls carry it.
func (c *Client) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	body := map[string]string{
		"username": username,
		"password": password,
	}

	var res LoginResult
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", body, &res); err != nil {
		return nil, err
	}

	if res.AccessToken != "" {
		c.SetToken(res.AccessToken)
	}

	logger.FromCtx(ctx).Info("login completed",
		zap.Int64("user_id", res.ID),
		zap.String("role", res.Role),
	)
	return &res, nil
}

// Register creates an account; it does not log the new user in.
func (c *Client) Register(ctx context.Context, username, password, fullName, role string) error {
	body := map[string]string{
		"username":  username,
		"password":  password,
		"full_name": fullName,
		"role":      role,
	}
	return c.do(ctx, http.MethodPost, "/api/auth/register", body, nil)
}

// Logout fires the logout endpoint and clears the stored token
// unconditionally, even when the request itself fails.
func (c *Client) Logout(ctx context.Context) error {
	err := c.do(ctx, http.MethodPost, "/auth/logout", nil, nil)
	c.SetToken("")
	return err
}
