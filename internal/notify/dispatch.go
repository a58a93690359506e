// Package notify configures and dispatches desktop notifications on the
// host machine.
//
// A Notification is assembled with chainable setters and delivered through
// a Dispatcher, a narrow per-platform capability selected once at startup.
// All delivery failure is expressed as a returned Outcome value; dispatchers
// never panic and never terminate the process.
package notify

import (
	"context"
	"fmt"
)

// Status classifies the result of a dispatch attempt.
type Status string

const (
	// StatusDelivered means the host notification surface accepted the
	// notification. On macOS this is reported unconditionally because the
	// host API gives no failure signal; see the darwin dispatcher.
	StatusDelivered Status = "delivered"

	// StatusFailed means the dispatcher could not hand the notification to
	// the host surface (daemon unreachable, transport error, timeout).
	StatusFailed Status = "failed"

	// StatusUnsupported means the running platform or configured backend
	// has no notification surface. Callers must treat this as an expected,
	// non-fatal outcome.
	StatusUnsupported Status = "unsupported"
)

// Outcome is the result of handing a notification to the host surface.
// Reason is populated only for StatusFailed.
type Outcome struct {
	Status Status
	Reason string
}

// Delivered returns a successful outcome.
func Delivered() Outcome {
	return Outcome{Status: StatusDelivered}
}

// Failed returns a failed outcome with the given reason.
func Failed(reason string) Outcome {
	return Outcome{Status: StatusFailed, Reason: reason}
}

// Failedf returns a failed outcome with a formatted reason.
func Failedf(format string, args ...any) Outcome {
	return Outcome{Status: StatusFailed, Reason: fmt.Sprintf(format, args...)}
}

// Unsupported returns the outcome for platforms without a notification
// surface.
func Unsupported() Outcome {
	return Outcome{Status: StatusUnsupported}
}

// Dispatcher delivers a finalized notification to the host's notification
// surface. Implementations are per platform family and must return a
// Failed outcome rather than hang when the underlying transport is
// unreachable; Deliver is expected to honor ctx cancellation where the
// transport allows it.
type Dispatcher interface {
	// Name identifies the backend for logs ("dbus", "osascript", "toast",
	// "beeep", "unsupported").
	Name() string

	// Deliver hands the notification to the host surface and reports the
	// outcome. It never panics; all failure is a returned value.
	Deliver(ctx context.Context, n Notification) Outcome
}

// Backend names accepted by NewDispatcher.
const (
	// BackendAuto selects the native dispatcher for the compile target.
	BackendAuto = "auto"
	// BackendBeeep selects the cross-platform beeep dispatcher regardless
	// of platform.
	BackendBeeep = "beeep"
	// BackendNone disables dispatch; every Deliver returns Unsupported.
	BackendNone = "none"
)

// NewDispatcher resolves the dispatcher for the given backend selection.
// It is called once at startup; selection is a pure function of the build
// target and configuration, never re-evaluated per call.
func NewDispatcher(backend, appName string) (Dispatcher, error) {
	if appName == "" {
		appName = defaultAppName
	}
	switch backend {
	case "", BackendAuto:
		return newPlatformDispatcher(appName), nil
	case BackendBeeep:
		return newBeeepDispatcher(appName), nil
	case BackendNone:
		return unsupportedDispatcher{}, nil
	default:
		return nil, fmt.Errorf("notify: unknown backend %q (want %s, %s or %s)",
			backend, BackendAuto, BackendBeeep, BackendNone)
	}
}

// unsupportedDispatcher is the dispatcher for builds without a notification
// surface and for the "none" backend. It produces no host-side effect.
type unsupportedDispatcher struct{}

func (unsupportedDispatcher) Name() string { return "unsupported" }

func (unsupportedDispatcher) Deliver(context.Context, Notification) Outcome {
	return Unsupported()
}
