package media

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAcquireIsIdempotent(t *testing.T) {
	a := NewSampleAcquirer(LogSink{})

	first, err := a.Acquire(context.Background())
	require.NoError(t, err)
	t.Cleanup(func() { first.Close() })

	second, err := a.Acquire(context.Background())
	require.NoError(t, err)
	require.Same(t, first, second)
}

func TestAcquireAfterCloseYieldsFreshSource(t *testing.T) {
	a := NewSampleAcquirer(nil)

	first, err := a.Acquire(context.Background())
	require.NoError(t, err)
	require.NoError(t, first.Close())

	second, err := a.Acquire(context.Background())
	require.NoError(t, err)
	t.Cleanup(func() { second.Close() })
	require.NotSame(t, first, second)
}

func TestAcquireHonoursCancelledContext(t *testing.T) {
	a := NewSampleAcquirer(nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := a.Acquire(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

func TestSampleSourceTracks(t *testing.T) {
	src, err := newSampleSource()
	require.NoError(t, err)
	t.Cleanup(func() { src.Close() })

	tracks := src.Tracks()
	require.Len(t, tracks, 2)

	ids := map[string]bool{}
	for _, tr := range tracks {
		ids[tr.ID()] = true
	}
	require.True(t, ids["audio"])
	require.True(t, ids["video"])
}

func TestSampleSourceCloseIdempotent(t *testing.T) {
	src, err := newSampleSource()
	require.NoError(t, err)

	require.NoError(t, src.Close())
	require.NoError(t, src.Close())
	require.True(t, src.closed())
}
