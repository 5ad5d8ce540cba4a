package core

import (
	"context"

	"github.com/pion/webrtc/v4"
)

// PeerLink is the coordinator-facing view of one peer connection.
// Exclusively owned by the call session for its whole lifetime; nothing
// else mutates the underlying connection.
type PeerLink interface {
	// Start configures internal callbacks and binds the connection lifetime to ctx.
	Start(ctx context.Context) error
	// Close should stop all underlying media resources.
	Close()
	// CreateAndSetOffer builds a local offer and installs it as the local description.
	CreateAndSetOffer() (*webrtc.SessionDescription, error)
	// ApplyOfferAndCreateAnswer installs the remote offer and answers it.
	ApplyOfferAndCreateAnswer(webrtc.SessionDescription) (*webrtc.SessionDescription, error)
	// ApplyAnswer installs the remote answer.
	ApplyAnswer(webrtc.SessionDescription) error
	// SignalingState reports the underlying offer/answer state machine.
	SignalingState() webrtc.SignalingState
	// AddICECandidate applies a remote ICE candidate.
	AddICECandidate(webrtc.ICECandidateInit) error
	// AddLocalTracks attaches local media before any offer/answer is generated.
	AddLocalTracks([]webrtc.TrackLocal) error
	// OnICECandidate sets a callback for newly gathered local ICE candidates.
	OnICECandidate(func(webrtc.ICECandidateInit))
	// OnTrack sets a callback invoked when a remote track arrives.
	OnTrack(func(track *webrtc.TrackRemote, receiver *webrtc.RTPReceiver))
	// OnClosed sets a callback for connection teardown.
	OnClosed(func())
}
