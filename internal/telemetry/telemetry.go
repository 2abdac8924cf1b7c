// Package telemetry is the observability ambient stack (SPEC_FULL.md
// §4.L): structured logging via go.uber.org/zap plus a small in-process
// counter set, consulted by `elc gc --stats`. No metrics HTTP server is
// started — that would pull in a dependency surface this is a library
// module has no business running — the CLI just prints the counters.
package telemetry

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/go-elc/elc/internal/gc"
)

// Logger is the process-wide structured logger. NewLogger installs it;
// absent that call it defaults to zap.NewNop() so tests and library
// callers that never configure telemetry don't panic or spam stderr.
var Logger = zap.NewNop()

// NewLogger builds and installs a zap logger appropriate for cmd/elc:
// development encoder (human-readable, colorized level) when dev is true,
// production JSON encoding otherwise.
func NewLogger(dev bool) (*zap.Logger, error) {
	var l *zap.Logger
	var err error
	if dev {
		l, err = zap.NewDevelopment()
	} else {
		l, err = zap.NewProduction()
	}
	if err != nil {
		return nil, err
	}
	Logger = l
	return l, nil
}

// Counters accumulates collection statistics across the process lifetime,
// exposed to `elc gc --stats`.
type Counters struct {
	mu          sync.Mutex
	Collections int64
	Marked      int64
	Freed       int64
	Reclaimed   int64
	LastElapsed time.Duration
}

var global Counters

// Global returns the process-wide counter set.
func Global() *Counters { return &global }

// RecordCollection folds one gc.Stats observation into the counters and
// emits a structured log line, the Go analogue of a single collection's
// worth of "objects marked, objects freed, bytes reclaimed, wall time"
// the spec's collection driver section calls for.
func RecordCollection(stats gc.Stats, elapsed time.Duration) {
	global.mu.Lock()
	global.Collections++
	global.Marked += int64(stats.Marked)
	global.Freed += int64(stats.Freed)
	global.Reclaimed += stats.Reclaim
	global.LastElapsed = elapsed
	global.mu.Unlock()

	Logger.Info("gc: collection complete",
		zap.Int("marked", stats.Marked),
		zap.Int("freed", stats.Freed),
		zap.Int64("reclaimed_bytes", stats.Reclaim),
		zap.Duration("elapsed", elapsed),
	)
}

// Snapshot returns a copy of the current counters, safe to print or
// serialize without racing RecordCollection.
func (c *Counters) Snapshot() Counters {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Counters{
		Collections: c.Collections,
		Marked:      c.Marked,
		Freed:       c.Freed,
		Reclaimed:   c.Reclaimed,
		LastElapsed: c.LastElapsed,
	}
}
