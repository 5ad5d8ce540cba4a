package api

import "fmt"

// Me fetches the caller's own profile.
func (c *Client) Me() (*Profile, error) {
	var out Profile
	resp, err := c.rest.R().SetResult(&out).Get("/api/profile/me")
	if err != nil {
		return nil, fmt.Errorf("profile me: %w", err)
	}
	if err := statusErr("profile me", resp); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateProfile replaces the caller's profile fields.
func (c *Client) UpdateProfile(p *Profile) error {
	resp, err := c.rest.R().SetBody(p).Put("/api/profile")
	if err != nil {
		return fmt.Errorf("profile update: %w", err)
	}
	return statusErr("profile update", resp)
}

// SearchUsers finds profiles matching the term.
func (c *Client) SearchUsers(term string) ([]UserSummary, error) {
	var out []UserSummary
	resp, err := c.rest.R().
		SetQueryParam("q", term).
		SetResult(&out).
		Get("/api/search/users")
	if err != nil {
		return nil, fmt.Errorf("search users: %w", err)
	}
	if err := statusErr("search users", resp); err != nil {
		return nil, err
	}
	return out, nil
}
