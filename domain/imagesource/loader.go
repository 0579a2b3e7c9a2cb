package imagesource

import (
	"context"
	"image"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"
)

// Result is one finished load.
type Result struct {
	Seq      uint64
	Name     string
	Image    image.Image
	Err      error
	Duration time.Duration
}

// Stats summarises loader activity for instrumentation.
type Stats struct {
	Requests uint64
	Loads    uint64
	Failures uint64
	Stale    uint64
	AvgLoad  time.Duration
}

// Loader decodes sources off the UI thread. Only the result of the most
// recent Request is delivered; an older in-flight load is cancelled and its
// result dropped.
type Loader struct {
	logger  *slog.Logger
	timeout time.Duration
	results chan Result

	mu     sync.Mutex
	cancel context.CancelFunc

	seq      atomic.Uint64
	requests atomic.Uint64
	loads    atomic.Uint64
	failures atomic.Uint64
	stale    atomic.Uint64
	nanos    atomic.Uint64
}

// NewLoader constructs a loader. timeout <= 0 disables the per-load deadline.
func NewLoader(timeout time.Duration, logger *slog.Logger) *Loader {
	return &Loader{logger: logger, timeout: timeout, results: make(chan Result, 1)}
}

// Request starts loading src and returns its sequence number.
func (l *Loader) Request(src Source) uint64 {
	if l == nil || src == nil {
		return 0
	}
	var (
		ctx    context.Context
		cancel context.CancelFunc
	)
	if l.timeout > 0 {
		ctx, cancel = context.WithTimeout(context.Background(), l.timeout)
	} else {
		ctx, cancel = context.WithCancel(context.Background())
	}
	l.mu.Lock()
	if l.cancel != nil {
		l.cancel()
	}
	l.cancel = cancel
	seq := l.seq.Add(1)
	l.mu.Unlock()
	l.requests.Add(1)

	if l.logger != nil {
		l.logger.Debug("image load requested", "source", src.Name(), "seq", seq)
	}
	go l.run(ctx, cancel, seq, src)
	return seq
}

func (l *Loader) run(ctx context.Context, cancel context.CancelFunc, seq uint64, src Source) {
	defer cancel()
	start := time.Now()
	img, err := src.Load(ctx)
	res := Result{Seq: seq, Name: src.Name(), Image: img, Err: err, Duration: time.Since(start)}
	if err != nil {
		l.failures.Add(1)
	} else {
		l.loads.Add(1)
		l.nanos.Add(uint64(res.Duration.Nanoseconds()))
	}
	if seq != l.seq.Load() {
		l.stale.Add(1)
		return
	}
	select {
	case l.results <- res:
	default:
		select {
		case <-l.results:
		default:
		}
		select {
		case l.results <- res:
		default:
		}
	}
}

// Poll returns the latest finished load, if any, without blocking.
func (l *Loader) Poll() (Result, bool) {
	if l == nil {
		return Result{}, false
	}
	for {
		select {
		case res := <-l.results:
			if res.Seq != l.seq.Load() {
				l.stale.Add(1)
				continue
			}
			return res, true
		default:
			return Result{}, false
		}
	}
}

// Close cancels any in-flight load.
func (l *Loader) Close() {
	if l == nil {
		return
	}
	l.mu.Lock()
	if l.cancel != nil {
		l.cancel()
		l.cancel = nil
	}
	l.mu.Unlock()
	l.seq.Add(1)
}

func (l *Loader) Stats() Stats {
	if l == nil {
		return Stats{}
	}
	loads := l.loads.Load()
	var avg time.Duration
	if loads > 0 {
		avg = time.Duration(l.nanos.Load() / loads)
	}
	return Stats{
		Requests: l.requests.Load(),
		Loads:    loads,
		Failures: l.failures.Load(),
		Stale:    l.stale.Load(),
		AvgLoad:  avg,
	}
}
