// Package throttle implements a minimum-interval gate for expensive work.
package throttle

import (
	"errors"
	"sync/atomic"
	"time"

	"github.com/jonboulle/clockwork"
)

// ErrUnavailable is returned by Accept when a tick was already accepted
// within the window.
var ErrUnavailable = errors.New("throttle: window has not elapsed")

const never int64 = -1

// Throttle admits at most one tick per window. The last accepted instant is
// swapped atomically so a Throttle may be shared between goroutines.
type Throttle struct {
	window time.Duration
	clock  clockwork.Clock
	epoch  time.Time
	last   atomic.Int64 // nanoseconds since epoch, or never
}

// New creates a throttle with the given window using the real clock.
func New(window time.Duration) *Throttle {
	return NewWithClock(window, clockwork.NewRealClock())
}

// NewWithClock creates a throttle that reads time from clock.
func NewWithClock(window time.Duration, clock clockwork.Clock) *Throttle {
	t := &Throttle{
		window: window,
		clock:  clock,
		epoch:  clock.Now(),
	}
	t.last.Store(never)
	return t
}

// Window returns the minimum interval between accepted ticks.
func (t *Throttle) Window() time.Duration {
	return t.window
}

// Available reports whether a tick would be accepted now.
func (t *Throttle) Available() bool {
	return t.availableAt(t.last.Load(), t.elapsed())
}

// Accept records now as the last accepted tick. It returns ErrUnavailable,
// and records nothing, if the window has not elapsed yet.
func (t *Throttle) Accept() error {
	now := t.elapsed()
	for {
		last := t.last.Load()
		if !t.availableAt(last, now) {
			return ErrUnavailable
		}
		if t.last.CompareAndSwap(last, now) {
			return nil
		}
	}
}

func (t *Throttle) availableAt(last, now int64) bool {
	if last == never {
		return true
	}
	return time.Duration(now-last) >= t.window
}

// elapsed uses Sub so the monotonic reading of the clock is used.
func (t *Throttle) elapsed() int64 {
	return int64(t.clock.Now().Sub(t.epoch))
}
