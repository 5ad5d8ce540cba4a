package api

import "fmt"

// SendConnectionRequest asks another user to connect.
func (c *Client) SendConnectionRequest(receiverID int64) error {
	resp, err := c.rest.R().
		SetBody(map[string]int64{"receiverId": receiverID}).
		Post("/api/connections/send")
	if err != nil {
		return fmt.Errorf("connection send: %w", err)
	}
	return statusErr("connection send", resp)
}

func (c *Client) AcceptConnection(id int64) error {
	resp, err := c.rest.R().Put(fmt.Sprintf("/api/connections/%d/accept", id))
	if err != nil {
		return fmt.Errorf("connection accept: %w", err)
	}
	return statusErr("connection accept", resp)
}

func (c *Client) RejectConnection(id int64) error {
	resp, err := c.rest.R().Put(fmt.Sprintf("/api/connections/%d/reject", id))
	if err != nil {
		return fmt.Errorf("connection reject: %w", err)
	}
	return statusErr("connection reject", resp)
}

func (c *Client) RemoveConnection(id int64) error {
	resp, err := c.rest.R().Delete(fmt.Sprintf("/api/connections/%d", id))
	if err != nil {
		return fmt.Errorf("connection remove: %w", err)
	}
	return statusErr("connection remove", resp)
}

// MyConnections lists accepted connections.
func (c *Client) MyConnections() ([]Connection, error) {
	return c.listConnections("/api/connections/my", "connections my")
}

// PendingReceived lists requests waiting on the caller.
func (c *Client) PendingReceived() ([]Connection, error) {
	return c.listConnections("/api/connections/pending/received", "connections pending received")
}

// PendingSent lists requests the caller has sent.
func (c *Client) PendingSent() ([]Connection, error) {
	return c.listConnections("/api/connections/pending/sent", "connections pending sent")
}

func (c *Client) listConnections(path, op string) ([]Connection, error) {
	var out []Connection
	resp, err := c.rest.R().SetResult(&out).Get(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := statusErr(op, resp); err != nil {
		return nil, err
	}
	return out, nil
}

// ConnectionStatus reports the relationship with another user.
func (c *Client) ConnectionStatus(userID int64) (string, error) {
	var out struct {
		Status string `json:"status"`
	}
	resp, err := c.rest.R().
		SetResult(&out).
		Get(fmt.Sprintf("/api/connections/status/%d", userID))
	if err != nil {
		return "", fmt.Errorf("connection status: %w", err)
	}
	if err := statusErr("connection status", resp); err != nil {
		return "", err
	}
	return out.Status, nil
}
