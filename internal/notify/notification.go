package notify

import (
	"context"
	"sync"
	"time"
)

// defaultAppName identifies this process to the host notification surface
// when no configured identity is supplied (package-level Show path).
const defaultAppName = "notificable"

// Notification is an accumulating notification configuration. It is built
// up with chainable setters and handed to a Dispatcher once complete.
//
// Notification is an immutable value: every setter returns a new value and
// never mutates its receiver, so a notification accidentally shared between
// goroutines carries no aliasing hazard. Construct with New, configure
// left-to-right, then Finalize or Show:
//
//	out := notify.New().
//		Summary("backup finished").
//		Body("37 files archived").
//		Show(ctx)
type Notification struct {
	summary     string
	subtitle    string
	hasSubtitle bool
	body        string
	timeout     Timeout
	replaceID   uint32
	hasID       bool
}

// New returns an all-default Notification: empty summary and body, no
// subtitle, no replacement id, and the server-default timeout.
func New() Notification {
	return Notification{timeout: TimeoutDefault}
}

// Summary replaces the single-line summary. Most surfaces render it as the
// notification title. No length limit is enforced here; surfaces may
// truncate or wrap.
func (n Notification) Summary(summary string) Notification {
	n.summary = summary
	return n
}

// Subtitle sets the optional subtitle line. Only the macOS notification
// center renders it; other dispatchers silently ignore it.
func (n Notification) Subtitle(subtitle string) Notification {
	n.subtitle = subtitle
	n.hasSubtitle = true
	return n
}

// Body replaces the multi-line body. Lightweight markup (freedesktop
// body-markup) is interpreted by the notification surface, not validated
// here.
func (n Notification) Body(body string) Notification {
	n.body = body
	return n
}

// Timeout sets the expiry policy from an already-constructed Timeout value.
func (n Notification) Timeout(t Timeout) Notification {
	n.timeout = t
	return n
}

// TimeoutMillis sets the expiry from a raw millisecond count, applying the
// freedesktop sentinel rules (-1 default, 0 never) via TimeoutFromMillis.
func (n Notification) TimeoutMillis(ms int32) Notification {
	n.timeout = TimeoutFromMillis(ms)
	return n
}

// TimeoutAfter sets the expiry from a duration via TimeoutFromDuration,
// inheriting its zero-collapses-to-never and overflow-falls-back-to-default
// behavior.
func (n Notification) TimeoutAfter(d time.Duration) Notification {
	n.timeout = TimeoutFromDuration(d)
	return n
}

// ID requests that the notification surface replace an existing
// notification with the given identity instead of creating a new one.
// Only honored by freedesktop daemons.
func (n Notification) ID(id uint32) Notification {
	n.replaceID = id
	n.hasID = true
	return n
}

// Finalize returns an immutable snapshot of the current configuration
// without dispatching. Because Notification already has value semantics the
// snapshot is simply a copy; calling Finalize repeatedly yields equal
// values and never affects the original.
func (n Notification) Finalize() Notification {
	return n
}

// Show dispatches the notification through the dispatcher selected for the
// running platform, resolved once per process. Services that need a
// configured identity, a bounded wait, or an injected dispatcher should go
// through Service.Send instead.
func (n Notification) Show(ctx context.Context) Outcome {
	return platformDispatcher().Deliver(ctx, n.Finalize())
}

// platformDispatcher resolves the build-selected dispatcher exactly once.
var platformDispatcher = sync.OnceValue(func() Dispatcher {
	return newPlatformDispatcher(defaultAppName)
})
