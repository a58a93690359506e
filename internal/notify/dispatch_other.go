//go:build !linux && !darwin && !windows

package notify

// newPlatformDispatcher returns the unsupported dispatcher on platforms
// without a notification surface.
func newPlatformDispatcher(string) Dispatcher {
	return unsupportedDispatcher{}
}
