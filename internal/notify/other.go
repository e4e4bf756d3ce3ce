//go:build !darwin && !linux

// Package notify provides desktop notification support.
// This file provides a no-op implementation for unsupported platforms.
package notify

// newPlatformNotifier has nothing to offer here; New falls back to the no-op notifier.
func newPlatformNotifier() Notifier {
	return nil
}
