// Package valve implements the cancellation half of the cancellation/drain
// primitive (C7): a one-shot Trigger and a shared Valve that resolves when
// the trigger fires, plus the Cancel adapter for turning a channel-based
// source into an immediately-cancelable one. Ported from stream-util's
// Trigger/Valve + Cancel stream adapter onto Go's native context.Context.
// The complementary Drain behavior — keep delivering buffered items after
// close, then stop — is realized directly in pkg/queue.Unbounded.Close,
// not here.
package valve

import "context"

// Trigger fires a Valve exactly once. Calling it more than once is safe and
// has no additional effect, mirroring the origin's consuming
// Trigger::terminate (here a func value rather than an owned value, since Go
// has no linear-typing to enforce single use).
type Trigger func()

// Valve is a shareable "still open" signal. Done returns a channel that
// closes when the associated Trigger fires.
type Valve struct {
	ctx context.Context
}

// New returns a (Trigger, Valve) pair; Valve resolves when Trigger is called.
func New() (Trigger, Valve) {
	ctx, cancel := context.WithCancel(context.Background())
	return Trigger(cancel), Valve{ctx: ctx}
}

// Done returns a channel that is closed once the valve has been triggered.
func (v Valve) Done() <-chan struct{} {
	return v.ctx.Done()
}

// Closed reports whether the valve has already been triggered.
func (v Valve) Closed() bool {
	select {
	case <-v.ctx.Done():
		return true
	default:
		return false
	}
}

// Cancel blocks until either a value is received from in, or the valve
// fires, in which case it returns immediately with ok=false and drops
// whatever would have been received — no draining. It is the adapter used
// by interval-based tasks (keepalive, status poller) per §4.7.
func Cancel[T any](v Valve, in <-chan T) (T, bool) {
	var zero T
	select {
	case <-v.Done():
		return zero, false
	default:
	}
	select {
	case <-v.Done():
		return zero, false
	case item, ok := <-in:
		if !ok {
			return zero, false
		}
		return item, true
	}
}
