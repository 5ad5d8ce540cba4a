package signaling

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 64 * 1024
)

// ErrChannelUnavailable means the relay could not be reached within the
// dial timeout. Surfaced to the user; retry is theirs to initiate.
var ErrChannelUnavailable = errors.New("signaling channel unavailable")

// Client manages the websocket connection to the signaling relay. Incoming
// messages for one room arrive in relay send order; the channel is closed
// on transport loss, which the session must treat as call termination.
type Client struct {
	relayURL    string
	dialTimeout time.Duration

	conn     *websocket.Conn
	incoming chan *Message
	outgoing chan *Message
	done     chan struct{}

	mu     sync.Mutex
	closed bool
}

func NewClient(relayURL string, dialTimeout time.Duration) *Client {
	return &Client{
		relayURL:    relayURL,
		dialTimeout: dialTimeout,
		incoming:    make(chan *Message, 16),
		outgoing:    make(chan *Message, 16),
		done:        make(chan struct{}),
	}
}

// Connect dials the relay and starts the read/write pumps.
func (c *Client) Connect(ctx context.Context) error {
	dialer := websocket.Dialer{HandshakeTimeout: c.dialTimeout}

	ctx, cancel := context.WithTimeout(ctx, c.dialTimeout)
	defer cancel()

	conn, _, err := dialer.DialContext(ctx, c.relayURL, nil)
	if err != nil {
		return fmt.Errorf("%w: dial %s: %v", ErrChannelUnavailable, c.relayURL, err)
	}
	c.conn = conn

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	go c.readPump()
	go c.writePump()

	log.Info().Str("module", "signaling").Str("relay", c.relayURL).Msg("connected")
	return nil
}

// readPump reads relay messages until transport loss, then closes the
// incoming channel so the session observes the disconnect.
func (c *Client) readPump() {
	defer func() {
		c.conn.Close()
		close(c.incoming)
	}()

	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))

	for {
		var msg Message
		if err := c.conn.ReadJSON(&msg); err != nil {
			log.Warn().Err(err).Str("module", "signaling").Msg("readPump closing")
			return
		}
		// The session may already be gone; never wedge on a full buffer.
		select {
		case c.incoming <- &msg:
		case <-c.done:
			return
		}
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)

	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case msg := <-c.outgoing:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteJSON(msg); err != nil {
				log.Error().Err(err).Str("module", "signaling").Msg("writePump write error")
				return
			}

		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}

		case <-c.done:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			_ = c.conn.WriteMessage(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			return
		}
	}
}

// Send queues a message for the relay. Non-blocking once the client is
// closed or the write queue is saturated; the message is then dropped and
// logged, which is safe because transport loss terminates the call anyway.
func (c *Client) Send(msg *Message) {
	select {
	case c.outgoing <- msg:
	case <-c.done:
		log.Warn().Str("module", "signaling").Str("type", msg.Type).Msg("send after close")
	}
}

// JoinRoom requests membership in a room. The relay answers asynchronously
// with exactly one of created/joined/full on the incoming stream.
func (c *Client) JoinRoom(room string) {
	c.Send(&Message{Type: TypeJoinRoom, Room: room})
}

// Incoming returns the relay message stream. Closed on transport loss.
func (c *Client) Incoming() <-chan *Message {
	return c.incoming
}

// Close shuts down the connection. Idempotent.
func (c *Client) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	close(c.done)
}
