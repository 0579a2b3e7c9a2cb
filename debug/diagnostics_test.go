package debug

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"
)

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestSnapshotHasGoroutines(t *testing.T) {
	found := false
	for _, a := range Snapshot() {
		if a.Key == "goroutines" && a.Value.Uint64() > 0 {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a positive goroutine count")
	}
}

func TestStartLogsProbesUntilCancelled(t *testing.T) {
	out := &syncBuffer{}
	logger := slog.New(slog.NewJSONHandler(out, nil))
	ctx, cancel := context.WithCancel(context.Background())
	Start(ctx, 5*time.Millisecond, logger, func() []slog.Attr {
		return []slog.Attr{slog.Int("loads", 3)}
	})
	deadline := time.Now().Add(2 * time.Second)
	for !strings.Contains(out.String(), `"loads":3`) {
		if time.Now().After(deadline) {
			cancel()
			t.Fatalf("no diagnostics record written: %q", out.String())
		}
		time.Sleep(5 * time.Millisecond)
	}
	cancel()
}
