// Package media provides local capture handles for the call session.
package media

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/postfolio/meet/internal/core"
)

var (
	// ErrPermissionDenied — capture access refused. Non-retryable without
	// a fresh prompt.
	ErrPermissionDenied = errors.New("media permission denied")
	// ErrDeviceUnavailable — no capture hardware. Fatal for the call attempt.
	ErrDeviceUnavailable = errors.New("no capture device available")
)

// Acquirer obtains the local media handle. Acquire is idempotent: while a
// source is already held it is returned as-is rather than re-acquired.
type Acquirer interface {
	Acquire(ctx context.Context) (core.MediaSource, error)
}

// SampleAcquirer produces synthetic audio/video tracks for headless
// clients. A device-backed implementation would satisfy the same interface.
type SampleAcquirer struct {
	preview core.PreviewSink

	mu   sync.Mutex
	held *sampleSource
}

var _ Acquirer = (*SampleAcquirer)(nil)

func NewSampleAcquirer(preview core.PreviewSink) *SampleAcquirer {
	return &SampleAcquirer{preview: preview}
}

func (a *SampleAcquirer) Acquire(ctx context.Context) (core.MediaSource, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.held != nil && !a.held.closed() {
		return a.held, nil
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	src, err := newSampleSource()
	if err != nil {
		return nil, err
	}
	a.held = src

	if a.preview != nil {
		a.preview.AttachLocal(src)
	}
	log.Info().Str("module", "media").Int("tracks", len(src.Tracks())).Msg("local media acquired")
	return src, nil
}
