package api

import "fmt"

// GenerateCV downloads the rendered CV document for a profile.
func (c *Client) GenerateCV(profileID int64) ([]byte, error) {
	resp, err := c.rest.R().
		Get(fmt.Sprintf("/api/cv/generate/%d", profileID))
	if err != nil {
		return nil, fmt.Errorf("cv generate: %w", err)
	}
	if err := statusErr("cv generate", resp); err != nil {
		return nil, err
	}
	return resp.Body(), nil
}
