package core

// Frame is a raw signaling payload already encoded for the wire.
type Frame []byte

// SignalConnection abstracts one relay-side transport endpoint.
// Owned by the adapter; the adapter must Close() it.
type SignalConnection interface {
	TrySend(Frame) error
	Close()
}
