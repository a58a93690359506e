//go:build windows

package notify

import (
	"context"

	"github.com/go-toast/toast"
)

// newPlatformDispatcher returns the toast dispatcher on Windows.
func newPlatformDispatcher(appName string) Dispatcher {
	return &toastDispatcher{appName: appName}
}

// toastDispatcher posts Windows toast notifications. The action center
// controls expiry, so the timeout field is ignored; the subtitle is folded
// into the message body since toasts have no separate subtitle line.
type toastDispatcher struct {
	appName string
}

func (d *toastDispatcher) Name() string { return "toast" }

func (d *toastDispatcher) Deliver(_ context.Context, n Notification) Outcome {
	message := n.body
	if n.hasSubtitle && n.subtitle != "" {
		message = n.subtitle + "\n" + message
	}

	t := toast.Notification{
		AppID:   d.appName,
		Title:   n.summary,
		Message: message,
	}
	if err := t.Push(); err != nil {
		return Failedf("toast push failed: %v", err)
	}

	return Delivered()
}
