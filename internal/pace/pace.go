// Package pace provides the timed pauses between lines of shop output.
package pace

import (
	"context"
	"sync"
	"time"

	"github.com/zoobzio/clockz"
)

// Pacer suspends the caller between printed lines.
type Pacer interface {
	// Pause blocks for d or until ctx is done, returning ctx.Err() in the latter case.
	Pause(ctx context.Context, d time.Duration) error
}

// ClockPacer pauses against a clockz clock.
type ClockPacer struct {
	clock clockz.Clock
}

// New returns a ClockPacer on clock. A nil clock means the real wall clock.
func New(clock clockz.Clock) *ClockPacer {
	if clock == nil {
		clock = clockz.RealClock
	}
	return &ClockPacer{clock: clock}
}

// Pause implements Pacer.
func (p *ClockPacer) Pause(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if d <= 0 {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-p.clock.After(d):
		return nil
	}
}

// Recorder is a Pacer that returns immediately and remembers every pause.
// Command tests use it to assert pacing without sleeping.
type Recorder struct {
	mu     sync.Mutex
	pauses []time.Duration
}

// Pause implements Pacer.
func (r *Recorder) Pause(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pauses = append(r.pauses, d)
	return nil
}

// Pauses returns a copy of the recorded pauses in call order.
func (r *Recorder) Pauses() []time.Duration {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]time.Duration(nil), r.pauses...)
}

// Total returns the sum of all recorded pauses.
func (r *Recorder) Total() time.Duration {
	var total time.Duration
	for _, d := range r.Pauses() {
		total += d
	}
	return total
}
