// Package debug logs runtime diagnostics while the editor runs with -debug.
package debug

import (
	"context"
	"log/slog"
	"runtime"
	"runtime/metrics"
	"time"
)

// Probe contributes extra attributes to each diagnostics record. Probes run
// on the diagnostics goroutine and must be safe for concurrent use.
type Probe func() []slog.Attr

// Start logs goroutine, heap and RSS figures plus the probes' attributes
// every interval until ctx is done.
func Start(ctx context.Context, interval time.Duration, logger *slog.Logger, probes ...Probe) {
	if logger == nil {
		return
	}
	if interval <= 0 {
		interval = 2 * time.Second
	}
	go func() {
		t := time.NewTicker(interval)
		defer t.Stop()
		var rssErrLogged bool
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
			}
			attrs := Snapshot()
			rss, err := residentSet()
			if err != nil && !rssErrLogged {
				logger.Warn("diagnostics: rss unavailable", slog.String("err", err.Error()))
				rssErrLogged = true
			}
			attrs = append(attrs, slog.Uint64("rss", rss))
			for _, p := range probes {
				if p != nil {
					attrs = append(attrs, p()...)
				}
			}
			logger.LogAttrs(ctx, slog.LevelInfo, "diagnostics", attrs...)
		}
	}()
}

// Snapshot returns goroutine and memory figures of the current process.
func Snapshot() []slog.Attr {
	samples := []metrics.Sample{{Name: "/sched/goroutines:goroutines"}}
	metrics.Read(samples)
	var goroutines uint64
	if samples[0].Value.Kind() == metrics.KindUint64 {
		goroutines = samples[0].Value.Uint64()
	}
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	return []slog.Attr{
		slog.Uint64("goroutines", goroutines),
		slog.Uint64("heap_alloc", ms.HeapAlloc),
		slog.Uint64("heap_inuse", ms.HeapInuse),
		slog.Uint64("stack_inuse", ms.StackInuse),
		slog.Uint64("num_gc", uint64(ms.NumGC)),
	}
}
