package media

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pion/webrtc/v4"
	"github.com/pion/webrtc/v4/pkg/media"

	"github.com/postfolio/meet/internal/core"
)

const sampleInterval = 100 * time.Millisecond

// sampleSource feeds silence/black frames into static sample tracks so the
// negotiated session carries live (if uninteresting) media.
type sampleSource struct {
	audio *webrtc.TrackLocalStaticSample
	video *webrtc.TrackLocalStaticSample

	done      chan struct{}
	closeOnce sync.Once
}

var _ core.MediaSource = (*sampleSource)(nil)

func newSampleSource() (*sampleSource, error) {
	streamID := "meet-" + uuid.NewString()

	audio, err := webrtc.NewTrackLocalStaticSample(
		webrtc.RTPCodecCapability{MimeType: webrtc.MimeTypeOpus},
		"audio", streamID,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDeviceUnavailable, err)
	}

	video, err := webrtc.NewTrackLocalStaticSample(
		webrtc.RTPCodecCapability{MimeType: webrtc.MimeTypeVP8},
		"video", streamID,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDeviceUnavailable, err)
	}

	src := &sampleSource{
		audio: audio,
		video: video,
		done:  make(chan struct{}),
	}
	go src.feed()
	return src, nil
}

func (s *sampleSource) feed() {
	ticker := time.NewTicker(sampleInterval)
	defer ticker.Stop()

	// Writes to an unattached static track are no-ops, so feeding can start
	// before the track is added to a peer connection.
	silence := []byte{0xf8, 0xff, 0xfe}
	black := make([]byte, 16)

	for {
		select {
		case <-s.done:
			return
		case <-ticker.C:
			_ = s.audio.WriteSample(media.Sample{Data: silence, Duration: sampleInterval})
			_ = s.video.WriteSample(media.Sample{Data: black, Duration: sampleInterval})
		}
	}
}

func (s *sampleSource) Tracks() []webrtc.TrackLocal {
	return []webrtc.TrackLocal{s.audio, s.video}
}

// Close stops the feeder. Safe to call more than once; only the first call
// releases the tracks.
func (s *sampleSource) Close() error {
	s.closeOnce.Do(func() { close(s.done) })
	return nil
}

func (s *sampleSource) closed() bool {
	select {
	case <-s.done:
		return true
	default:
		return false
	}
}
