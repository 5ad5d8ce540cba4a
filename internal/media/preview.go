package media

import (
	"github.com/pion/webrtc/v4"
	"github.com/rs/zerolog/log"

	"github.com/postfolio/meet/internal/core"
)

// LogSink is the headless preview: it records attachment events instead of
// rendering. A UI front end supplies its own core.PreviewSink.
type LogSink struct{}

var _ core.PreviewSink = LogSink{}

func (LogSink) AttachLocal(src core.MediaSource) {
	log.Info().Str("module", "media").Int("tracks", len(src.Tracks())).Msg("local preview attached")
}

func (LogSink) AttachRemote(track *webrtc.TrackRemote) {
	log.Info().
		Str("module", "media").
		Str("kind", track.Kind().String()).
		Str("stream_id", track.StreamID()).
		Msg("remote preview attached")
}

func (LogSink) DetachRemote() {
	log.Info().Str("module", "media").Msg("remote preview detached")
}
