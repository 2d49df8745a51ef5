package clipboard

import (
	"context"
	"sync"
	"time"
)

// AckDuration is how long a successful copy stays acknowledged
const AckDuration = 2 * time.Second

var afterFunc = time.AfterFunc // seam

// Flag is the transient "copied!" acknowledgment
// Raise turns it on and it switches itself off after the given duration;
// raising again restarts the countdown
type Flag struct {
	mu    sync.Mutex
	on    bool
	gen   uint64
	timer *time.Timer
}

// Raise switches the flag on for d
func (f *Flag) Raise(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.timer != nil {
		f.timer.Stop()
	}
	f.on = true
	f.gen++
	gen := f.gen
	f.timer = afterFunc(d, func() {
		f.mu.Lock()
		// a newer Raise owns the flag now
		if f.gen == gen {
			f.on = false
		}
		f.mu.Unlock()
	})
}

// On reports whether the acknowledgment is showing
func (f *Flag) On() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.on
}

// Clear switches the flag off now and cancels any pending reset
func (f *Flag) Clear() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.timer != nil {
		f.timer.Stop()
		f.timer = nil
	}
	f.on = false
	f.gen++
}

// Copy writes text with w and raises ack for d on success
// a failed copy leaves ack untouched
func Copy(ctx context.Context, w Writer, text string, ack *Flag, d time.Duration) bool {
	if w == nil || !w.Write(ctx, text) {
		return false
	}
	if ack != nil {
		ack.Raise(d)
	}
	return true
}
