package imagesource

import (
	"context"
	"errors"
	"image"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) }

// gatedSource blocks in Load until release is closed or ctx ends.
type gatedSource struct {
	name    string
	img     image.Image
	release chan struct{}
}

func (g gatedSource) Name() string { return g.name }

func (g gatedSource) Load(ctx context.Context) (image.Image, error) {
	select {
	case <-g.release:
		return g.img, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func waitResult(t *testing.T, l *Loader) Result {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		if res, ok := l.Poll(); ok {
			return res
		}
		select {
		case <-deadline:
			t.Fatalf("no load result")
		case <-time.After(time.Millisecond):
		}
	}
}

func TestLoader_DeliversResult(t *testing.T) {
	l := NewLoader(time.Second, discardLogger())
	seq := l.Request(Static{Label: "s", Image: testImage(3, 3)})
	res := waitResult(t, l)
	require.Equal(t, seq, res.Seq)
	require.NoError(t, res.Err)
	require.Equal(t, "s", res.Name)
	require.Equal(t, 3, res.Image.Bounds().Dx())

	st := l.Stats()
	require.Equal(t, uint64(1), st.Requests)
	require.Equal(t, uint64(1), st.Loads)
}

func TestLoader_LatestRequestWins(t *testing.T) {
	l := NewLoader(0, discardLogger())
	first := gatedSource{name: "first", img: testImage(1, 1), release: make(chan struct{})}
	l.Request(first)
	second := l.Request(Static{Label: "second", Image: testImage(2, 2)})

	res := waitResult(t, l)
	require.Equal(t, second, res.Seq)
	require.Equal(t, "second", res.Name)

	// first was cancelled by the second request and must never surface.
	close(first.release)
	time.Sleep(10 * time.Millisecond)
	_, ok := l.Poll()
	require.False(t, ok)
}

func TestLoader_Failure(t *testing.T) {
	l := NewLoader(time.Second, nil)
	l.Request(Static{Label: "none"})
	res := waitResult(t, l)
	require.True(t, errors.Is(res.Err, ErrNoImage))
	require.Equal(t, uint64(1), l.Stats().Failures)
}

func TestLoader_CloseDropsInFlight(t *testing.T) {
	l := NewLoader(0, nil)
	src := gatedSource{name: "g", img: testImage(1, 1), release: make(chan struct{})}
	l.Request(src)
	l.Close()
	time.Sleep(10 * time.Millisecond)
	_, ok := l.Poll()
	require.False(t, ok)
}

func TestLoader_NilSafe(t *testing.T) {
	var l *Loader
	require.Zero(t, l.Request(Static{}))
	_, ok := l.Poll()
	require.False(t, ok)
	l.Close()
	require.Equal(t, Stats{}, l.Stats())
}
