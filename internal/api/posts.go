package api

import "fmt"

// CreatePost publishes a feed post.
func (c *Client) CreatePost(in CreatePost) (*Post, error) {
	var out Post
	resp, err := c.rest.R().SetBody(in).SetResult(&out).Post("/api/posts")
	if err != nil {
		return nil, fmt.Errorf("post create: %w", err)
	}
	if err := statusErr("post create", resp); err != nil {
		return nil, err
	}
	return &out, nil
}

// ProfilePosts lists one profile's posts.
func (c *Client) ProfilePosts(profileID int64) ([]Post, error) {
	var out []Post
	resp, err := c.rest.R().
		SetResult(&out).
		Get(fmt.Sprintf("/api/posts/profile/%d", profileID))
	if err != nil {
		return nil, fmt.Errorf("posts profile: %w", err)
	}
	if err := statusErr("posts profile", resp); err != nil {
		return nil, err
	}
	return out, nil
}

// Feed lists the latest posts across connections.
func (c *Client) Feed() ([]Post, error) {
	var out []Post
	resp, err := c.rest.R().SetResult(&out).Get("/api/posts/latest")
	if err != nil {
		return nil, fmt.Errorf("feed: %w", err)
	}
	if err := statusErr("feed", resp); err != nil {
		return nil, err
	}
	return out, nil
}
