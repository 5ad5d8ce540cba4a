package api

import "fmt"

// Login exchanges credentials for a bearer token and stores it.
func (c *Client) Login(email, password string) error {
	var out AuthResponse
	resp, err := c.auth.R().
		SetBody(AuthRequest{Email: email, Password: password}).
		SetResult(&out).
		Post("/api/auth/login")
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}
	if err := statusErr("login", resp); err != nil {
		return err
	}
	return c.store.SetToken(out.Token)
}

// Register creates an account and stores the issued token.
func (c *Client) Register(name, email, password string) error {
	var out AuthResponse
	resp, err := c.auth.R().
		SetBody(RegisterRequest{Name: name, Email: email, Password: password}).
		SetResult(&out).
		Post("/api/auth/register")
	if err != nil {
		return fmt.Errorf("register: %w", err)
	}
	if err := statusErr("register", resp); err != nil {
		return err
	}
	return c.store.SetToken(out.Token)
}
