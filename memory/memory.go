// Package memory tracks an estimate of raster bytes held by in-flight pages.
// The figure is an estimate, not ground truth: the invariant that matters is
// that it grows monotonically while surfaces are allocated and that the
// chunked executor's threshold gate bounds the peak.
package memory

import (
	"context"
	"runtime"
	"sync"
	"time"

	"github.com/wudi/hebscan/observability"
)

// CleanupThresholdMB is the estimate above which the chunked executor blocks
// on a cleanup pass before starting the next chunk.
const CleanupThresholdMB = 800

const (
	// cleanupGrace is how long a cleanup waits for the collector to act.
	cleanupGrace = 100 * time.Millisecond
	// cleanupDecay approximates reclaimed memory after a GC hint, since
	// precise reclamation cannot be measured per surface.
	cleanupDecay = 0.7
)

// Tracker maintains the running memory estimate. All methods are safe for
// concurrent use.
type Tracker struct {
	mu         sync.Mutex
	estimateMB float64
	cleanups   int
	log        observability.Logger
}

// NewTracker constructs a tracker. A nil logger is replaced with a no-op.
func NewTracker(log observability.Logger) *Tracker {
	if log == nil {
		log = observability.NopLogger{}
	}
	return &Tracker{log: log}
}

// Add records an allocated surface and returns the new estimate.
func (t *Tracker) Add(mb float64) float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.estimateMB += mb
	return t.estimateMB
}

// Release records a disposed surface and returns the new estimate. The
// estimate never goes negative.
func (t *Tracker) Release(mb float64) float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.estimateMB -= mb
	if t.estimateMB < 0 {
		t.estimateMB = 0
	}
	return t.estimateMB
}

// EstimateMB returns the current estimate.
func (t *Tracker) EstimateMB() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.estimateMB
}

// OverThreshold reports whether the estimate exceeds the cleanup gate.
func (t *Tracker) OverThreshold() bool {
	return t.EstimateMB() > CleanupThresholdMB
}

// Cleanups returns how many cleanup passes have run.
func (t *Tracker) Cleanups() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.cleanups
}

// Cleanup hints the collector, waits a short grace period, then decays the
// estimate. Blocks until the grace period elapses or the context is done.
func (t *Tracker) Cleanup(ctx context.Context) error {
	runtime.GC()
	select {
	case <-time.After(cleanupGrace):
	case <-ctx.Done():
		return ctx.Err()
	}
	t.mu.Lock()
	t.estimateMB *= cleanupDecay
	t.cleanups++
	after := t.estimateMB
	t.mu.Unlock()
	t.log.Debug("memory cleanup",
		observability.Float64(observability.MetricMemoryEstimate, after))
	return nil
}
