// Package relay implements the signaling relay: room-scoped message
// forwarding between at most two participants per room.
package relay

import (
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/postfolio/meet/internal/core"
	"github.com/postfolio/meet/internal/domain"
)

// JoinOutcome is the relay's answer to a joinRoom request.
type JoinOutcome int

const (
	JoinCreated JoinOutcome = iota
	JoinJoined
	JoinFull
)

// room holds the two participant slots in arrival order. The first slot is
// the offerer; the relay promotes the survivor into it on departure.
type room struct {
	name   domain.RoomName
	first  *client
	second *client
}

func (r *room) occupants() int {
	n := 0
	if r.first != nil {
		n++
	}
	if r.second != nil {
		n++
	}
	return n
}

func (r *room) other(c *client) *client {
	if r.first == c {
		return r.second
	}
	return r.first
}

type RoomInfo struct {
	Name        domain.RoomName `json:"name"`
	MemberCount int             `json:"client_count"`
}

// Hub is a threadsafe registry of rooms. It owns membership only; transport
// resources belong to the controller that registered the client.
type Hub struct {
	mu    sync.RWMutex
	rooms map[domain.RoomName]*room
}

func NewHub() *Hub {
	return &Hub{rooms: make(map[domain.RoomName]*room)}
}

// Join assigns the client a slot. Exactly one of created/joined/full per
// attempt; full is terminal and leaves the client roomless.
func (h *Hub) Join(c *client, name domain.RoomName) JoinOutcome {
	h.mu.Lock()
	defer h.mu.Unlock()

	r, ok := h.rooms[name]
	if !ok {
		r = &room{name: name, first: c}
		h.rooms[name] = r
		c.room = name
		log.Info().Str("module", "relay").Str("room", string(name)).Str("client_id", string(c.id)).Msg("room created")
		return JoinCreated
	}

	if r.second == nil && r.first != c {
		r.second = c
		c.room = name
		log.Info().Str("module", "relay").Str("room", string(name)).Str("client_id", string(c.id)).Msg("room joined")
		return JoinJoined
	}

	log.Warn().Str("module", "relay").Str("room", string(name)).Str("client_id", string(c.id)).Msg("room full")
	return JoinFull
}

// Forward relays a room-scoped frame to the other occupant, verbatim.
// Per-room ordering holds because each occupant has a single write pump.
func (h *Hub) Forward(c *client, frame core.Frame) {
	h.mu.RLock()
	r, ok := h.rooms[c.room]
	var peer *client
	if ok {
		peer = r.other(c)
	}
	h.mu.RUnlock()

	if peer == nil {
		log.Debug().Str("module", "relay").Str("room", string(c.room)).Msg("no peer to forward to")
		return
	}
	if err := peer.TrySend(frame); err != nil {
		log.Warn().Err(err).Str("module", "relay").Str("client_id", string(peer.id)).Msg("forward dropped")
	}
}

// Leave vacates the client's slot. The survivor is promoted to the first
// slot and told about it; an emptied room is deleted, so a later rejoin
// starts from scratch.
func (h *Hub) Leave(c *client) (survivor *client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	r, ok := h.rooms[c.room]
	if !ok {
		return nil
	}

	switch c {
	case r.first:
		r.first, r.second = r.second, nil
	case r.second:
		r.second = nil
	default:
		return nil
	}
	c.room = ""

	if r.occupants() == 0 {
		delete(h.rooms, r.name)
		log.Info().Str("module", "relay").Str("room", string(r.name)).Msg("room deleted")
		return nil
	}
	return r.first
}

func (h *Hub) Snapshot() []RoomInfo {
	h.mu.RLock()
	defer h.mu.RUnlock()
	out := make([]RoomInfo, 0, len(h.rooms))
	for name, r := range h.rooms {
		out = append(out, RoomInfo{Name: name, MemberCount: r.occupants()})
	}
	return out
}
