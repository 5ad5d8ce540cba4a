package call

// RoomState tracks room membership for one session.
type RoomState int

const (
	RoomIdle RoomState = iota
	RoomJoining
	RoomCreated
	RoomJoined
	RoomActive
	RoomFull
	RoomLeft
)

func (s RoomState) String() string {
	switch s {
	case RoomIdle:
		return "idle"
	case RoomJoining:
		return "joining"
	case RoomCreated:
		return "created"
	case RoomJoined:
		return "joined"
	case RoomActive:
		return "active"
	case RoomFull:
		return "full"
	case RoomLeft:
		return "left"
	default:
		return "invalid"
	}
}

// PeerState tracks the peer-connection lifecycle for the current
// negotiation round.
type PeerState int

const (
	PeerUninitialized PeerState = iota
	PeerConnectionBuilt
	PeerOfferSent
	PeerAnswerSent
	PeerNegotiated
	PeerClosed
)

func (s PeerState) String() string {
	switch s {
	case PeerUninitialized:
		return "uninitialized"
	case PeerConnectionBuilt:
		return "connection_built"
	case PeerOfferSent:
		return "offer_sent"
	case PeerAnswerSent:
		return "answer_sent"
	case PeerNegotiated:
		return "negotiated"
	case PeerClosed:
		return "closed"
	default:
		return "invalid"
	}
}
