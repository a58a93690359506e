package notify

import (
	"fmt"
	"math"
	"time"
)

// Timeout is the expiry policy for a notification. It has three variants:
// the server default, never expire, and expire after a fixed number of
// milliseconds. The zero value is Never, matching the freedesktop wire
// encoding where 0 means "do not expire"; use TimeoutDefault for the
// server-decides policy.
//
// Timeout is an immutable value and is compared structurally with ==.
type Timeout struct {
	// ms holds the freedesktop expire_timeout wire value:
	// -1 = server default, 0 = never expire, anything else = milliseconds.
	ms int32
}

// Timeout sentinel values.
var (
	// TimeoutDefault leaves the expiry to the notification server.
	TimeoutDefault = Timeout{ms: -1}

	// TimeoutNever requests a notification that does not expire.
	TimeoutNever = Timeout{ms: 0}
)

// TimeoutFromMillis builds a Timeout from a raw millisecond count.
// Per the freedesktop notification spec, -1 selects the server default and
// 0 selects never-expire. Any other value, including other negatives, is
// stored as-is; sanity-checking negative counts is the caller's concern.
func TimeoutFromMillis(ms int32) Timeout {
	return Timeout{ms: ms}
}

// TimeoutFromDuration converts a duration into a Timeout.
// A zero-length duration (including sub-millisecond durations that truncate
// to zero) yields TimeoutNever. A millisecond count that cannot be
// represented as a non-negative int32 silently falls back to TimeoutDefault
// rather than erroring; callers depend on this graceful degradation.
func TimeoutFromDuration(d time.Duration) Timeout {
	ms := d.Milliseconds()
	if ms == 0 {
		return TimeoutNever
	}
	if ms < 0 || ms > math.MaxInt32 {
		return TimeoutDefault
	}
	return Timeout{ms: int32(ms)}
}

// IsDefault reports whether the server decides the expiry.
func (t Timeout) IsDefault() bool {
	return t.ms == -1
}

// IsNever reports whether the notification never expires.
func (t Timeout) IsNever() bool {
	return t.ms == 0
}

// Millis returns the millisecond count and true when the timeout is a
// fixed duration, or 0 and false for the Default and Never variants.
func (t Timeout) Millis() (int32, bool) {
	if t.ms == -1 || t.ms == 0 {
		return 0, false
	}
	return t.ms, true
}

// ExpireTimeout returns the raw wire value expected by freedesktop
// notification daemons: -1 for default, 0 for never, otherwise milliseconds.
func (t Timeout) ExpireTimeout() int32 {
	return t.ms
}

// String renders the timeout for logs and error messages.
func (t Timeout) String() string {
	switch {
	case t.IsDefault():
		return "default"
	case t.IsNever():
		return "never"
	default:
		return fmt.Sprintf("%dms", t.ms)
	}
}
