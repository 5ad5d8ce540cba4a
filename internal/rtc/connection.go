package rtc

import (
	"context"

	"github.com/pion/webrtc/v4"
	"github.com/rs/zerolog/log"

	"github.com/postfolio/meet/internal/core"
)

// Connection implements core.PeerLink on top of a pion PeerConnection.
// Candidates trickle: both sides send each candidate as it is gathered
// instead of waiting for gathering to complete.
type Connection struct {
	pc     *webrtc.PeerConnection
	room   string
	cancel context.CancelFunc

	onICE    func(webrtc.ICECandidateInit)
	onTrack  func(track *webrtc.TrackRemote, receiver *webrtc.RTPReceiver)
	onClosed func()
}

var _ core.PeerLink = (*Connection)(nil)

func DefaultWebRTCConfig(stunServers []string) webrtc.Configuration {
	if len(stunServers) == 0 {
		stunServers = []string{"stun:stun.l.google.com:19302"}
	}
	return webrtc.Configuration{
		ICEServers: []webrtc.ICEServer{
			{URLs: stunServers},
		},
	}
}

func NewConnection(cfg webrtc.Configuration, room string) (*Connection, error) {
	pc, err := webrtc.NewPeerConnection(cfg)
	if err != nil {
		return nil, err
	}
	return &Connection{pc: pc, room: room}, nil
}

func (c *Connection) Start(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	c.cancel = cancel

	c.pc.OnICEConnectionStateChange(func(s webrtc.ICEConnectionState) {
		log.Info().Str("module", "rtc").Str("room", c.room).Str("ice_state", s.String()).Msg("ICE state")
		if s == webrtc.ICEConnectionStateFailed ||
			s == webrtc.ICEConnectionStateClosed {
			cancel()
		}
	})

	c.pc.OnConnectionStateChange(func(s webrtc.PeerConnectionState) {
		log.Info().Str("module", "rtc").Str("room", c.room).Str("peer_connection_state", s.String()).Msg("Peer state")
		if s == webrtc.PeerConnectionStateFailed ||
			s == webrtc.PeerConnectionStateClosed {
			cancel()
		}
	})

	// The context is the single teardown signal: ICE failure, connection
	// failure, Close and parent cancellation all land here, and onClosed
	// fires exactly once.
	go func() {
		<-ctx.Done()
		if c.onClosed != nil {
			c.onClosed()
		}
	}()

	c.pc.OnICECandidate(func(cand *webrtc.ICECandidate) {
		if cand != nil && c.onICE != nil {
			c.onICE(cand.ToJSON())
		}
	})

	c.pc.OnTrack(func(track *webrtc.TrackRemote, receiver *webrtc.RTPReceiver) {
		log.Info().
			Str("module", "rtc").
			Str("room", c.room).
			Str("kind", track.Kind().String()).
			Str("track_id", track.ID()).
			Str("stream_id", track.StreamID()).
			Msg("OnTrack received")
		if c.onTrack != nil {
			c.onTrack(track, receiver)
		}
	})

	return nil
}

func (c *Connection) CreateAndSetOffer() (*webrtc.SessionDescription, error) {
	offer, err := c.pc.CreateOffer(nil)
	if err != nil {
		return nil, err
	}
	if err := c.pc.SetLocalDescription(offer); err != nil {
		return nil, err
	}
	return c.pc.LocalDescription(), nil
}

func (c *Connection) ApplyOfferAndCreateAnswer(offer webrtc.SessionDescription) (*webrtc.SessionDescription, error) {
	if err := c.pc.SetRemoteDescription(offer); err != nil {
		return nil, err
	}
	answer, err := c.pc.CreateAnswer(nil)
	if err != nil {
		return nil, err
	}
	if err := c.pc.SetLocalDescription(answer); err != nil {
		return nil, err
	}
	return c.pc.LocalDescription(), nil
}

func (c *Connection) ApplyAnswer(answer webrtc.SessionDescription) error {
	return c.pc.SetRemoteDescription(answer)
}

func (c *Connection) SignalingState() webrtc.SignalingState {
	return c.pc.SignalingState()
}

func (c *Connection) AddICECandidate(ci webrtc.ICECandidateInit) error {
	return c.pc.AddICECandidate(ci)
}

// AddLocalTracks attaches local media so it is part of the initial
// negotiation. Must run before CreateAndSetOffer/ApplyOfferAndCreateAnswer.
func (c *Connection) AddLocalTracks(tracks []webrtc.TrackLocal) error {
	for _, track := range tracks {
		if _, err := c.pc.AddTrack(track); err != nil {
			return err
		}
	}
	return nil
}

func (c *Connection) Close() {
	if c.cancel != nil {
		c.cancel()
	}
	if c.pc != nil {
		if err := c.pc.Close(); err != nil {
			log.Error().Err(err).Str("module", "rtc").Str("room", c.room).Msg("close error")
		} else {
			log.Info().Str("module", "rtc").Str("room", c.room).Msg("closed")
		}
	}
}

func (c *Connection) OnICECandidate(fn func(webrtc.ICECandidateInit)) {
	c.onICE = fn
}

// OnTrack sets application-level callback for remote tracks.
func (c *Connection) OnTrack(fn func(track *webrtc.TrackRemote, receiver *webrtc.RTPReceiver)) {
	c.onTrack = fn
}

// OnClosed sets application-level callback for connection teardown.
func (c *Connection) OnClosed(fn func()) { c.onClosed = fn }
