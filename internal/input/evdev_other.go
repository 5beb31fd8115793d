//go:build !linux

package input

import "context"

// StartKeyboard is a no-op on systems without evdev.
func StartKeyboard(ctx context.Context, logger Logger, sink Sender) {
	if logger != nil {
		logger.Infof("input", "evdev unavailable on this platform, keyboard disabled")
	}
}
