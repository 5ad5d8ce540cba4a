package call

import "errors"

var (
	// ErrRoomFull — the relay rejected the join. Terminal for this attempt;
	// the session never retries on its own.
	ErrRoomFull = errors.New("room is full")

	// ErrTransportLost — the signaling channel dropped mid-call. The
	// in-progress call is treated as terminated; reconnect is the user's.
	ErrTransportLost = errors.New("signaling transport lost")

	// ErrAlreadyJoined — a session handles exactly one room for its lifetime.
	ErrAlreadyJoined = errors.New("session already joined a room")

	// errNegotiationDiscarded marks a benign out-of-order offer/answer.
	// Logged, never surfaced.
	errNegotiationDiscarded = errors.New("negotiation message discarded")
)
