package dispatch

import (
	"time"
)

// DefaultDebounceWindow suppresses a second activation arriving within this
// interval of the first. Some editor code paths fire the load hook twice in
// quick succession for the same logical open; the second call must be
// silently ignored.
const DefaultDebounceWindow = 2 * time.Second

// DebounceGuard owns the single mutable activation timestamp. Construct one
// per process and hand it to the Dispatcher; it is not safe for concurrent
// use, which matches the single-threaded reentrant-call model of the host.
type DebounceGuard struct {
	window time.Duration
	last   time.Time
}

// NewDebounceGuard creates a guard with the given window. A window of zero
// or less disables debouncing.
func NewDebounceGuard(window time.Duration) *DebounceGuard {
	return &DebounceGuard{window: window}
}

// TryActivate reports whether an activation at now is permitted. A permitted
// activation records now as the new timestamp as part of the check itself,
// so a later declined confirmation still consumes the window.
func (g *DebounceGuard) TryActivate(now time.Time) bool {
	if g.window > 0 && !g.last.IsZero() && now.Sub(g.last) <= g.window {
		return false
	}
	g.last = now
	return true
}

// Window returns the configured debounce window
func (g *DebounceGuard) Window() time.Duration {
	return g.window
}
