package domain

// ClientID identifies one relay connection. Assigned by the relay on
// upgrade, echoed back in userDisconnected/setCaller events.
type ClientID string

// Role is the per-room arrival tag. The first arrival originates the SDP
// offer; the second answers. The relay reassigns it via setCaller when the
// original first arrival disconnects.
type Role int

const (
	RoleUnknown Role = iota
	RoleFirstArrival
	RoleSecondArrival
)

func (r Role) String() string {
	switch r {
	case RoleFirstArrival:
		return "first-arrival"
	case RoleSecondArrival:
		return "second-arrival"
	default:
		return "unknown"
	}
}
