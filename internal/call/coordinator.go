package call

import (
	"github.com/pion/webrtc/v4"
	"github.com/rs/zerolog/log"

	"github.com/postfolio/meet/internal/domain"
	"github.com/postfolio/meet/internal/signaling"
)

// maybeStartCall builds the connection and originates the offer, but only
// on the first-arrival side and only once all three gates are open: the
// peer signalled ready, this side knows its role, and local media exists.
// Re-checked whenever any of the three lands.
func (s *Session) maybeStartCall() {
	if s.role != domain.RoleFirstArrival || !s.readyReceived || s.source == nil {
		return
	}
	if s.peerState != PeerUninitialized {
		return
	}

	if err := s.buildLink(); err != nil {
		log.Error().Err(err).Str("module", "call").Msg("build peer connection")
		s.teardownLink()
		return
	}

	offer, err := s.link.CreateAndSetOffer()
	if err != nil {
		log.Error().Err(err).Str("module", "call").Msg("create offer")
		s.teardownLink()
		return
	}

	s.sig.Send(&signaling.Message{
		Type: signaling.TypeOffer,
		SDP:  offer.SDP,
		Room: string(s.room),
	})
	s.peerState = PeerOfferSent
	log.Info().Str("module", "call").Str("room", string(s.room)).Msg("offer sent")
}

// buildLink constructs the peer connection, attaches local tracks before
// any description is generated, and wires the pion callbacks through the
// event funnel stamped with the current negotiation epoch.
func (s *Session) buildLink() error {
	link, err := s.newLink(string(s.room))
	if err != nil {
		return err
	}

	if err := link.AddLocalTracks(s.source.Tracks()); err != nil {
		link.Close()
		return err
	}

	epoch := s.epoch
	link.OnICECandidate(func(ci webrtc.ICECandidateInit) {
		s.post(event{kind: evLocalCandidate, epoch: epoch, candidate: ci})
	})
	link.OnTrack(func(track *webrtc.TrackRemote, _ *webrtc.RTPReceiver) {
		s.post(event{kind: evRemoteTrack, epoch: epoch, track: track})
	})
	link.OnClosed(func() {
		s.post(event{kind: evLinkClosed, epoch: epoch})
	})

	if err := link.Start(s.ctx); err != nil {
		link.Close()
		return err
	}

	s.link = link
	s.peerState = PeerConnectionBuilt
	return nil
}

// handleOffer is the second-arrival path: build the connection if needed,
// apply the offer, answer. Offers in any other state are benign races and
// are discarded.
func (s *Session) handleOffer(msg *signaling.Message) {
	if s.role != domain.RoleSecondArrival {
		log.Debug().Err(errNegotiationDiscarded).Str("module", "call").
			Str("role", s.role.String()).Msg("offer ignored")
		return
	}
	if s.peerState != PeerUninitialized {
		log.Debug().Err(errNegotiationDiscarded).Str("module", "call").
			Str("peer_state", s.peerState.String()).Msg("duplicate offer ignored")
		return
	}
	if s.source == nil {
		// Media acquisition still in flight; replayed from evMediaReady.
		s.pendingOffer = msg
		return
	}

	if err := s.buildLink(); err != nil {
		log.Error().Err(err).Str("module", "call").Msg("build peer connection")
		s.teardownLink()
		return
	}

	offer := webrtc.SessionDescription{Type: webrtc.SDPTypeOffer, SDP: msg.SDP}
	answer, err := s.link.ApplyOfferAndCreateAnswer(offer)
	if err != nil {
		log.Error().Err(err).Str("module", "call").Msg("apply offer")
		s.teardownLink()
		return
	}
	s.remoteDescSet = true
	s.drainPendingCandidates()

	s.peerState = PeerAnswerSent
	s.sig.Send(&signaling.Message{
		Type: signaling.TypeAnswer,
		SDP:  answer.SDP,
		Room: string(s.room),
	})
	log.Info().Str("module", "call").Str("room", string(s.room)).Msg("answer sent")

	// The local answer is set and transmitted, so signaling is stable on
	// this side; the answerer has nothing left to wait for.
	s.peerState = PeerNegotiated
}

// handleAnswer applies the remote answer, but only while this side actually
// has an offer outstanding. Late and duplicate answers are discarded.
func (s *Session) handleAnswer(msg *signaling.Message) {
	if s.peerState != PeerOfferSent {
		log.Debug().Err(errNegotiationDiscarded).Str("module", "call").
			Str("peer_state", s.peerState.String()).Msg("answer ignored")
		return
	}
	if s.link.SignalingState() != webrtc.SignalingStateHaveLocalOffer {
		log.Debug().Err(errNegotiationDiscarded).Str("module", "call").
			Str("signaling_state", s.link.SignalingState().String()).Msg("answer ignored")
		return
	}

	answer := webrtc.SessionDescription{Type: webrtc.SDPTypeAnswer, SDP: msg.SDP}
	if err := s.link.ApplyAnswer(answer); err != nil {
		log.Error().Err(err).Str("module", "call").Msg("apply answer")
		return
	}
	s.remoteDescSet = true
	s.drainPendingCandidates()
	s.peerState = PeerNegotiated
	log.Info().Str("module", "call").Str("room", string(s.room)).Msg("negotiated")
}

// handleRemoteCandidate applies a trickled candidate, or queues it while the
// remote description is not in place yet. Queue order is arrival order.
func (s *Session) handleRemoteCandidate(msg *signaling.Message) {
	ci := webrtc.ICECandidateInit{Candidate: msg.Candidate}
	if msg.ID != "" {
		id := msg.ID
		ci.SDPMid = &id
	}
	if msg.Label != nil {
		label := *msg.Label
		ci.SDPMLineIndex = &label
	}

	if s.link == nil || !s.remoteDescSet {
		s.pending = append(s.pending, ci)
		return
	}
	s.applyCandidate(ci)
}

func (s *Session) drainPendingCandidates() {
	for _, ci := range s.pending {
		s.applyCandidate(ci)
	}
	s.pending = nil
}

// applyCandidate: a candidate that fails to apply is logged and skipped, it
// never aborts the session.
func (s *Session) applyCandidate(ci webrtc.ICECandidateInit) {
	if err := s.link.AddICECandidate(ci); err != nil {
		log.Warn().Err(err).Str("module", "call").Msg("add ice candidate failed, skipped")
	}
}

// sendLocalCandidate trickles a locally gathered candidate regardless of
// negotiation state.
func (s *Session) sendLocalCandidate(ci webrtc.ICECandidateInit) {
	msg := &signaling.Message{
		Type:      signaling.TypeCandidate,
		Candidate: ci.Candidate,
		Room:      string(s.room),
	}
	if ci.SDPMid != nil {
		msg.ID = *ci.SDPMid
	}
	if ci.SDPMLineIndex != nil {
		label := *ci.SDPMLineIndex
		msg.Label = &label
	}
	s.sig.Send(msg)
}
