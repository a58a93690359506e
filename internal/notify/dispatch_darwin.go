//go:build darwin

package notify

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// newPlatformDispatcher returns the notification-center dispatcher on macOS.
func newPlatformDispatcher(appName string) Dispatcher {
	return &osascriptDispatcher{appName: appName}
}

// osascriptDispatcher posts to the macOS notification center via
// `osascript -e 'display notification ...'`. It honors the subtitle field.
// The host controls expiry, so the timeout field is ignored, and the
// notification center gives no success/failure signal back to the script:
// Deliver reports Delivered unconditionally. That false-positive success is
// a known limitation of the host API, not something this dispatcher can
// detect or correct.
type osascriptDispatcher struct {
	appName string
}

func (d *osascriptDispatcher) Name() string { return "osascript" }

func (d *osascriptDispatcher) Deliver(ctx context.Context, n Notification) Outcome {
	script := fmt.Sprintf("display notification %s with title %s",
		appleScriptString(n.body), appleScriptString(n.summary))
	if n.hasSubtitle {
		script += " subtitle " + appleScriptString(n.subtitle)
	}

	// Exit status only tells us whether osascript ran, not whether the
	// notification was shown, so the result is discarded. CommandContext
	// still bounds the call so a wedged osascript cannot hang the caller.
	_ = exec.CommandContext(ctx, "osascript", "-e", script).Run()

	return Delivered()
}

// appleScriptString quotes a Go string as an AppleScript string literal.
// AppleScript escapes only backslashes and double quotes.
func appleScriptString(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	return `"` + s + `"`
}
