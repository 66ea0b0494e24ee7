package storage

import (
	"sync"
	"time"
)

// Flush timing. Rapid successive mutations coalesce inside the debounce
// window; the fallback interval flushes the latest in-memory state even
// while mutations keep arriving.
const (
	DefaultDebounce = 2 * time.Second
	DefaultFallback = 30 * time.Second
)

// Flusher debounces fire-and-forget persistence writes. Mark requests a
// flush; writes never block the caller and a failed write is silently
// dropped - the in-memory state stays authoritative until the next attempt.
type Flusher struct {
	flush    func() error
	debounce time.Duration
	fallback time.Duration

	mu      sync.Mutex
	timer   *time.Timer
	oldest  time.Time
	stopped bool
}

// NewFlusher creates a Flusher around the given flush function. Zero
// durations select the defaults.
func NewFlusher(flush func() error, debounce, fallback time.Duration) *Flusher {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	if fallback <= 0 {
		fallback = DefaultFallback
	}
	return &Flusher{flush: flush, debounce: debounce, fallback: fallback}
}

// Mark schedules a flush after the debounce window. Repeated marks push the
// window forward, but never past the fallback interval measured from the
// oldest unflushed mark.
func (f *Flusher) Mark() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.stopped {
		return
	}

	now := time.Now()
	if f.oldest.IsZero() {
		f.oldest = now
	}

	delay := f.debounce
	if deadline := f.oldest.Add(f.fallback); now.Add(delay).After(deadline) {
		delay = time.Until(deadline)
		if delay < 0 {
			delay = 0
		}
	}

	if f.timer != nil {
		f.timer.Stop()
	}
	f.timer = time.AfterFunc(delay, f.fire)
}

func (f *Flusher) fire() {
	f.mu.Lock()
	if f.stopped {
		f.mu.Unlock()
		return
	}
	f.oldest = time.Time{}
	f.timer = nil
	f.mu.Unlock()

	// Best-effort: a later write supersedes a failed earlier one.
	_ = f.flush()
}

// Close cancels any pending timer and performs a final synchronous flush.
func (f *Flusher) Close() error {
	f.mu.Lock()
	if f.stopped {
		f.mu.Unlock()
		return nil
	}
	f.stopped = true
	if f.timer != nil {
		f.timer.Stop()
		f.timer = nil
	}
	f.mu.Unlock()

	return f.flush()
}
