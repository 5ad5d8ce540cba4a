package call

import (
	"github.com/pion/webrtc/v4"

	"github.com/postfolio/meet/internal/core"
)

type eventKind int

const (
	evMediaReady eventKind = iota
	evMediaError
	evLocalCandidate
	evRemoteTrack
	evLinkClosed
	evHangup
)

// event is the single funnel for everything that is not a relay message:
// media acquisition results, pion callbacks, user commands. The run loop
// consumes them one at a time, so no two reactions ever overlap.
type event struct {
	kind eventKind

	// epoch stamps link-originated events with the negotiation round that
	// produced them; the loop drops events from a torn-down round.
	epoch uint64

	err       error
	media     core.MediaSource
	candidate webrtc.ICECandidateInit
	track     *webrtc.TrackRemote
}
