// Package call owns one peer connection's lifecycle for the duration of a
// single two-party call session: room membership, role, offer/answer/ICE.
package call

import (
	"context"
	"sync"

	"github.com/pion/webrtc/v4"
	"github.com/rs/zerolog/log"

	"github.com/postfolio/meet/internal/core"
	"github.com/postfolio/meet/internal/domain"
	"github.com/postfolio/meet/internal/media"
	"github.com/postfolio/meet/internal/signaling"
)

// SignalChannel is what the session needs from the signaling client.
// Satisfied by *signaling.Client and by the in-process fakes in tests.
type SignalChannel interface {
	Connect(ctx context.Context) error
	JoinRoom(room string)
	Send(*signaling.Message)
	Incoming() <-chan *signaling.Message
	Close()
}

// Options wires a session. NewPeerLink is a factory so tests can supply a
// scripted link instead of a pion connection.
type Options struct {
	Signal      SignalChannel
	Acquirer    media.Acquirer
	Preview     core.PreviewSink
	NewPeerLink func(room string) (core.PeerLink, error)
}

// State is an observable snapshot for UIs and tests.
type State struct {
	Room RoomState
	Peer PeerState
	Role domain.Role
}

// Session coordinates one call. Constructed on call start, torn down on
// exit, never shared across rooms. All state below `loop-owned` is touched
// only from the run goroutine.
type Session struct {
	sig      SignalChannel
	acquirer media.Acquirer
	preview  core.PreviewSink
	newLink  func(room string) (core.PeerLink, error)

	events chan event
	done   chan struct{}

	ctx    context.Context
	cancel context.CancelFunc

	// loop-owned.
	room          domain.RoomName
	clientID      domain.ClientID
	role          domain.Role
	roomState     RoomState
	peerState     PeerState
	readyReceived bool
	readySent     bool
	source        core.MediaSource
	link          core.PeerLink
	pending       []webrtc.ICECandidateInit
	remoteDescSet bool
	pendingOffer  *signaling.Message
	epoch         uint64
	fatalErr      error

	mu       sync.Mutex
	snapshot State
	result   error
	joined   bool
	finished bool
}

func NewSession(opts Options) *Session {
	if opts.Preview == nil {
		opts.Preview = media.LogSink{}
	}
	return &Session{
		sig:      opts.Signal,
		acquirer: opts.Acquirer,
		preview:  opts.Preview,
		newLink:  opts.NewPeerLink,
		events:   make(chan event, 64),
		done:     make(chan struct{}),
	}
}

// Join validates the room name, connects the signaling channel and starts
// the event loop. Validation and connect errors are synchronous; everything
// after the join request is reported through Done/Err.
func (s *Session) Join(ctx context.Context, rawRoom string) error {
	room, err := domain.ParseRoomName(rawRoom)
	if err != nil {
		return err
	}

	s.mu.Lock()
	if s.joined {
		s.mu.Unlock()
		return ErrAlreadyJoined
	}
	s.joined = true
	s.mu.Unlock()

	if err := s.sig.Connect(ctx); err != nil {
		return err
	}

	s.ctx, s.cancel = context.WithCancel(ctx)
	s.room = room
	s.roomState = RoomJoining
	s.publishState()

	log.Info().Str("module", "call").Str("room", string(room)).Msg("joining room")
	s.sig.JoinRoom(string(room))

	go s.run()
	return nil
}

// Hangup requests teardown. Safe from any goroutine, idempotent.
func (s *Session) Hangup() {
	select {
	case s.events <- event{kind: evHangup}:
	case <-s.done:
	}
}

// Done is closed when the session has fully torn down.
func (s *Session) Done() <-chan struct{} { return s.done }

// Err reports why the session ended. Nil after a clean hangup.
func (s *Session) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.result
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot
}

func (s *Session) publishState() {
	s.mu.Lock()
	s.snapshot = State{Room: s.roomState, Peer: s.peerState, Role: s.role}
	s.mu.Unlock()
}

// post delivers an event to the loop. The return reports whether the loop
// will see it: false once the session has finished, in which case the
// caller keeps ownership of anything the event carries.
func (s *Session) post(ev event) bool {
	s.mu.Lock()
	if s.finished {
		s.mu.Unlock()
		return false
	}
	select {
	case s.events <- ev:
		s.mu.Unlock()
		return true
	default:
		s.mu.Unlock()
	}

	select {
	case s.events <- ev:
		return true
	case <-s.done:
		return false
	}
}

func (s *Session) run() {
	defer close(s.done)

	for {
		select {
		case msg, ok := <-s.sig.Incoming():
			if !ok {
				s.finish(ErrTransportLost)
				return
			}
			s.dispatch(msg)

		case ev := <-s.events:
			if ev.kind == evHangup {
				s.finish(nil)
				return
			}
			s.handleEvent(ev)
		}

		if s.roomState == RoomFull {
			s.finish(ErrRoomFull)
			return
		}
		if s.roomState == RoomLeft {
			s.finish(s.fatalErr)
			return
		}
		s.publishState()
	}
}

// dispatch handles one relay message. Per-room delivery order is the relay
// contract; cross-type races are guarded by the state checks below.
func (s *Session) dispatch(msg *signaling.Message) {
	switch msg.Type {
	case signaling.TypeCreated:
		log.Info().Str("module", "call").Str("room", msg.Room).Msg("room created, waiting for peer")
		s.clientID = domain.ClientID(msg.ClientID)
		s.role = domain.RoleFirstArrival
		s.roomState = RoomCreated
		s.startMediaAcquire()

	case signaling.TypeJoined:
		log.Info().Str("module", "call").Str("room", msg.Room).Msg("joined existing room")
		s.clientID = domain.ClientID(msg.ClientID)
		s.role = domain.RoleSecondArrival
		s.roomState = RoomJoined
		s.startMediaAcquire()

	case signaling.TypeFull:
		log.Warn().Str("module", "call").Str("room", msg.Room).Msg("room is full")
		s.roomState = RoomFull

	case signaling.TypeReady:
		s.readyReceived = true
		if s.roomState == RoomCreated || s.roomState == RoomJoined {
			s.roomState = RoomActive
		}
		s.maybeStartCall()

	case signaling.TypeOffer:
		s.handleOffer(msg)

	case signaling.TypeAnswer:
		s.handleAnswer(msg)

	case signaling.TypeCandidate:
		s.handleRemoteCandidate(msg)

	case signaling.TypeUserDisconnected:
		log.Info().Str("module", "call").Str("client_id", msg.ClientID).Msg("peer disconnected")
		s.resetAfterPeerLoss()

	case signaling.TypeSetCaller:
		if domain.ClientID(msg.ClientID) == s.clientID {
			s.role = domain.RoleFirstArrival
		} else {
			s.role = domain.RoleSecondArrival
		}
		log.Info().Str("module", "call").Str("role", s.role.String()).Msg("role reassigned")

	case signaling.TypeError:
		log.Warn().Str("module", "call").Str("room", msg.Room).Msg("relay error")

	default:
		log.Warn().Str("module", "call").Str("type", msg.Type).Msg("unknown signal")
	}
}

func (s *Session) handleEvent(ev event) {
	switch ev.kind {
	case evMediaReady:
		s.source = ev.media
		log.Info().Str("module", "call").Msg("local media ready")
		if s.role == domain.RoleSecondArrival && !s.readySent {
			s.readySent = true
			s.sig.Send(&signaling.Message{Type: signaling.TypeReady, Room: string(s.room)})
			if s.roomState == RoomJoined {
				s.roomState = RoomActive
			}
		}
		if s.pendingOffer != nil {
			offer := s.pendingOffer
			s.pendingOffer = nil
			s.handleOffer(offer)
			return
		}
		s.maybeStartCall()

	case evMediaError:
		log.Error().Err(ev.err).Str("module", "call").Msg("media acquisition failed")
		s.fatalErr = ev.err
		s.roomState = RoomLeft

	case evLocalCandidate:
		if ev.epoch != s.epoch {
			return
		}
		s.sendLocalCandidate(ev.candidate)

	case evRemoteTrack:
		if ev.epoch != s.epoch {
			return
		}
		s.preview.AttachRemote(ev.track)

	case evLinkClosed:
		if ev.epoch != s.epoch {
			return
		}
		log.Info().Str("module", "call").Msg("peer connection closed")
		s.resetAfterPeerLoss()
	}
}

// startMediaAcquire runs acquisition off the loop; the result comes back as
// an event. Acquisition outcomes are not epoch-stamped because local media
// outlives negotiation rounds — it is released only on session close.
func (s *Session) startMediaAcquire() {
	if s.source != nil {
		s.post(event{kind: evMediaReady, media: s.source})
		return
	}
	go func() {
		src, err := s.acquirer.Acquire(s.ctx)
		if err != nil {
			s.post(event{kind: evMediaError, err: err})
			return
		}
		if !s.post(event{kind: evMediaReady, media: src}) {
			// Session is gone; nobody else will release the capture.
			_ = src.Close()
		}
	}()
}

// resetAfterPeerLoss implements the disconnect rule: detach the remote
// preview, discard the connection, adopt first-arrival so a rejoining peer
// gets a fresh offer from this side.
func (s *Session) resetAfterPeerLoss() {
	s.preview.DetachRemote()
	s.teardownLink()
	s.role = domain.RoleFirstArrival
	s.roomState = RoomCreated
	s.readyReceived = false
	s.readySent = false
}

// teardownLink closes the current peer connection and invalidates its
// callbacks for the next negotiation round.
func (s *Session) teardownLink() {
	s.epoch++
	if s.link != nil {
		s.link.Close()
		s.link = nil
	}
	s.peerState = PeerUninitialized
	s.remoteDescSet = false
	s.pending = nil
	s.pendingOffer = nil
}

// drainEvents settles events that were already buffered when the session
// finished; the loop will never handle them, so anything they carry is
// released here.
func (s *Session) drainEvents() {
	for {
		select {
		case ev := <-s.events:
			if ev.kind == evMediaReady && ev.media != nil {
				_ = ev.media.Close()
			}
		default:
			return
		}
	}
}

// finish tears the whole session down: local media released exactly once,
// peer connection closed, signaling channel disconnected.
func (s *Session) finish(err error) {
	s.teardownLink()
	s.peerState = PeerClosed
	if s.source != nil {
		_ = s.source.Close()
		s.source = nil
	}
	s.preview.DetachRemote()
	s.sig.Close()
	if s.cancel != nil {
		s.cancel()
	}
	if s.roomState != RoomFull {
		s.roomState = RoomLeft
	}

	s.mu.Lock()
	s.finished = true
	if s.result == nil {
		s.result = err
	}
	s.snapshot = State{Room: s.roomState, Peer: s.peerState, Role: s.role}
	s.mu.Unlock()

	s.drainEvents()

	log.Info().Err(err).Str("module", "call").Str("room", string(s.room)).Msg("session finished")
}
