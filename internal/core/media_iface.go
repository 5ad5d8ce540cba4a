package core

import "github.com/pion/webrtc/v4"

// MediaSource is a held local capture handle: the tracks it produces plus
// the release hook. Released exactly once, on session close.
type MediaSource interface {
	Tracks() []webrtc.TrackLocal
	Close() error
}

// PreviewSink receives the local and remote streams for display. The CLI
// implementation only logs; a UI would render.
type PreviewSink interface {
	AttachLocal(MediaSource)
	AttachRemote(track *webrtc.TrackRemote)
	DetachRemote()
}
