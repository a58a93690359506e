package notify

import (
	"context"

	"github.com/gen2brain/beeep"
)

// newBeeepDispatcher returns the cross-platform beeep dispatcher, selected
// with NOTIFY_BACKEND=beeep. beeep derives the sender identity from the
// running process, so appName is not used; it is accepted for signature
// parity with the platform constructors.
func newBeeepDispatcher(_ string) Dispatcher {
	return beeepDispatcher{}
}

// beeepDispatcher delivers through gen2brain/beeep, which picks the host
// mechanism itself (D-Bus, notification center, toast). It supports only
// summary and body: subtitle, timeout, and replacement id are ignored.
// Useful where the native dispatcher misbehaves, and on platforms this
// package has no native dispatcher for.
type beeepDispatcher struct{}

func (beeepDispatcher) Name() string { return "beeep" }

func (beeepDispatcher) Deliver(_ context.Context, n Notification) Outcome {
	if err := beeep.Notify(n.summary, n.body, ""); err != nil {
		return Failedf("beeep notify failed: %v", err)
	}
	return Delivered()
}
