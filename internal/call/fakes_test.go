package call

import (
	"context"
	"sync"

	"github.com/pion/webrtc/v4"

	"github.com/postfolio/meet/internal/core"
	"github.com/postfolio/meet/internal/signaling"
)

// fakeSignal is an in-process SignalChannel. Tests feed relay messages into
// incoming and read everything the session transmits from sent.
type fakeSignal struct {
	incoming chan *signaling.Message
	sent     chan *signaling.Message

	mu          sync.Mutex
	closed      bool
	joinedRooms []string
}

func newFakeSignal() *fakeSignal {
	return &fakeSignal{
		incoming: make(chan *signaling.Message, 16),
		sent:     make(chan *signaling.Message, 64),
	}
}

func (f *fakeSignal) Connect(ctx context.Context) error { return nil }

func (f *fakeSignal) JoinRoom(room string) {
	f.mu.Lock()
	f.joinedRooms = append(f.joinedRooms, room)
	f.mu.Unlock()
}

func (f *fakeSignal) Send(msg *signaling.Message) { f.sent <- msg }

func (f *fakeSignal) Incoming() <-chan *signaling.Message { return f.incoming }

func (f *fakeSignal) Close() {
	f.mu.Lock()
	f.closed = true
	f.mu.Unlock()
}

func (f *fakeSignal) isClosed() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.closed
}

func (f *fakeSignal) deliver(msg *signaling.Message) { f.incoming <- msg }

// fakeSource stands in for acquired local media.
type fakeSource struct {
	mu         sync.Mutex
	closeCount int
}

func (s *fakeSource) Tracks() []webrtc.TrackLocal { return nil }

func (s *fakeSource) Close() error {
	s.mu.Lock()
	s.closeCount++
	s.mu.Unlock()
	return nil
}

func (s *fakeSource) closes() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closeCount
}

// fakeAcquirer hands out src once gate (if any) is released.
type fakeAcquirer struct {
	src  *fakeSource
	err  error
	gate chan struct{}
}

func (a *fakeAcquirer) Acquire(ctx context.Context) (core.MediaSource, error) {
	if a.gate != nil {
		select {
		case <-a.gate:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if a.err != nil {
		return nil, a.err
	}
	return a.src, nil
}

// stubbornAcquirer ignores cancellation: the result arrives whenever the
// gate opens, even if the session is gone by then.
type stubbornAcquirer struct {
	src  *fakeSource
	gate chan struct{}
}

func (a *stubbornAcquirer) Acquire(ctx context.Context) (core.MediaSource, error) {
	<-a.gate
	return a.src, nil
}

// fakeLink is a scripted core.PeerLink. SDP bodies are canned; the
// signaling state tracks the offer/answer calls the way pion would.
type fakeLink struct {
	mu          sync.Mutex
	started     bool
	closeCount  int
	tracksAdded bool
	sigState    webrtc.SignalingState
	candidates  []webrtc.ICECandidateInit
	applyOffers []string
	applyAnswer []string

	onICE    func(webrtc.ICECandidateInit)
	onTrack  func(*webrtc.TrackRemote, *webrtc.RTPReceiver)
	onClosed func()
}

var _ core.PeerLink = (*fakeLink)(nil)

func (l *fakeLink) Start(ctx context.Context) error {
	l.mu.Lock()
	l.started = true
	l.mu.Unlock()
	return nil
}

func (l *fakeLink) Close() {
	l.mu.Lock()
	l.closeCount++
	l.mu.Unlock()
}

func (l *fakeLink) CreateAndSetOffer() (*webrtc.SessionDescription, error) {
	l.mu.Lock()
	l.sigState = webrtc.SignalingStateHaveLocalOffer
	l.mu.Unlock()
	return &webrtc.SessionDescription{Type: webrtc.SDPTypeOffer, SDP: "local-offer"}, nil
}

func (l *fakeLink) ApplyOfferAndCreateAnswer(offer webrtc.SessionDescription) (*webrtc.SessionDescription, error) {
	l.mu.Lock()
	l.applyOffers = append(l.applyOffers, offer.SDP)
	l.sigState = webrtc.SignalingStateStable
	l.mu.Unlock()
	return &webrtc.SessionDescription{Type: webrtc.SDPTypeAnswer, SDP: "local-answer"}, nil
}

func (l *fakeLink) ApplyAnswer(answer webrtc.SessionDescription) error {
	l.mu.Lock()
	l.applyAnswer = append(l.applyAnswer, answer.SDP)
	l.sigState = webrtc.SignalingStateStable
	l.mu.Unlock()
	return nil
}

func (l *fakeLink) SignalingState() webrtc.SignalingState {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.sigState
}

func (l *fakeLink) AddICECandidate(ci webrtc.ICECandidateInit) error {
	l.mu.Lock()
	l.candidates = append(l.candidates, ci)
	l.mu.Unlock()
	return nil
}

func (l *fakeLink) AddLocalTracks(tracks []webrtc.TrackLocal) error {
	l.mu.Lock()
	l.tracksAdded = true
	l.mu.Unlock()
	return nil
}

func (l *fakeLink) OnICECandidate(fn func(webrtc.ICECandidateInit)) {
	l.mu.Lock()
	l.onICE = fn
	l.mu.Unlock()
}

func (l *fakeLink) OnTrack(fn func(*webrtc.TrackRemote, *webrtc.RTPReceiver)) {
	l.mu.Lock()
	l.onTrack = fn
	l.mu.Unlock()
}

func (l *fakeLink) OnClosed(fn func()) {
	l.mu.Lock()
	l.onClosed = fn
	l.mu.Unlock()
}

func (l *fakeLink) appliedCandidates() []webrtc.ICECandidateInit {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]webrtc.ICECandidateInit(nil), l.candidates...)
}

func (l *fakeLink) appliedOffers() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.applyOffers...)
}

func (l *fakeLink) appliedAnswers() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.applyAnswer...)
}

func (l *fakeLink) closes() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.closeCount
}

func (l *fakeLink) iceCallback() func(webrtc.ICECandidateInit) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.onICE
}
