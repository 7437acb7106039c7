package client

import (
	"context"
	"net/http"

	"threadline-be/internal/user"
)

type authResult struct {
	Token string     `json:"token"`
	User  *user.User `json:"user"`
}

// Login authenticates and persists the returned token, role and profile in
// one store mutation. On failure the store is untouched.
func (c *Client) Login(ctx context.Context, email, password string) (*user.User, error) {
	body := map[string]string{"email": email, "password": password}

	var res authResult
	if err := c.do(ctx, http.MethodPost, "/login", body, &res); err != nil {
		return nil, err
	}

	role := ""
	if res.User != nil {
		role = string(res.User.Role)
	}
	if err := c.store.SetAuth(res.Token, role, res.User); err != nil {
		return nil, err
	}
	return res.User, nil
}

// Register creates an account and stores the issued token, same as Login.
func (c *Client) Register(ctx context.Context, name, email, password, role string) (*user.User, error) {
	body := map[string]string{
		"name":     name,
		"email":    email,
		"password": password,
		"role":     role,
	}

	var res authResult
	if err := c.do(ctx, http.MethodPost, "/register", body, &res); err != nil {
		return nil, err
	}

	storedRole := ""
	if res.User != nil {
		storedRole = string(res.User.Role)
	}
	if err := c.store.SetAuth(res.Token, storedRole, res.User); err != nil {
		return nil, err
	}
	return res.User, nil
}

// Logout drops the stored credentials. The token itself stays valid until it
// expires server-side.
func (c *Client) Logout() error {
	return c.store.Logout()
}
