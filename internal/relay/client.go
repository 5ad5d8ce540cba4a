package relay

import (
	"errors"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/postfolio/meet/internal/core"
	"github.com/postfolio/meet/internal/domain"
)

var ErrBackpressure = errors.New("backpressure")

// client is one relay connection: id, transport, current room slot.
type client struct {
	id   domain.ClientID
	conn *websocket.Conn
	send chan core.Frame
	room domain.RoomName

	mu     sync.RWMutex
	closed bool
}

var _ core.SignalConnection = (*client)(nil)

func newClient(id domain.ClientID, conn *websocket.Conn) *client {
	return &client{
		id:   id,
		conn: conn,
		send: make(chan core.Frame, 32),
	}
}

func (c *client) TrySend(f core.Frame) error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.closed {
		return errors.New("connection closed")
	}
	select {
	case c.send <- f:
	default:
		return ErrBackpressure
	}
	return nil
}

func (c *client) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	close(c.send)
	_ = c.conn.Close()
	c.mu.Unlock()
}
