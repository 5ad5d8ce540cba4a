package signaling

// Message is the room-scoped signaling envelope exchanged with the relay.
// Field names follow the wire protocol: candidate messages carry the
// media-line index as "label" and the media-line id as "id".
type Message struct {
	Type      string  `json:"type"`
	Room      string  `json:"room,omitempty"`
	SDP       string  `json:"sdp,omitempty"`
	Label     *uint16 `json:"label,omitempty"`
	ID        string  `json:"id,omitempty"`
	Candidate string  `json:"candidate,omitempty"`
	ClientID  string  `json:"clientId,omitempty"`
}

// Message type constants.
const (
	TypeJoinRoom = "joinRoom"

	TypeCreated = "created"
	TypeJoined  = "joined"
	TypeFull    = "full"

	TypeReady     = "ready"
	TypeOffer     = "offer"
	TypeAnswer    = "answer"
	TypeCandidate = "candidate"

	TypeUserDisconnected = "userDisconnected"
	TypeSetCaller        = "setCaller"

	TypeError = "error"
)
