// Package notify provides cross-platform desktop notification support and the
// daily reminder check.
// It uses native notification mechanisms on macOS (osascript) and Linux (notify-send).
package notify

import "tasktrack/internal/config"

// Notifier defines the interface for sending desktop notifications.
type Notifier interface {
	// Send sends a notification with the given title and message.
	Send(title, message string) error

	// SendWithSound sends a notification that plays the sound mapped to tone.
	SendWithSound(title, message string, tone config.Tone) error

	// IsSupported returns true if notifications are supported on this platform.
	IsSupported() bool
}

type noopNotifier struct{}

func (n *noopNotifier) Send(title, message string) error {
	return nil
}

func (n *noopNotifier) SendWithSound(title, message string, tone config.Tone) error {
	return nil
}

func (n *noopNotifier) IsSupported() bool {
	return false
}

// New creates a platform-specific notifier.
// Returns a no-op notifier if the platform doesn't support notifications.
func New() Notifier {
	n := newPlatformNotifier()
	if n == nil || !n.IsSupported() {
		return &noopNotifier{}
	}
	return n
}

// Noop returns a notifier that discards everything.
func Noop() Notifier {
	return &noopNotifier{}
}

// Deliver sends message through n, with the configured tone when sound is on.
func Deliver(n Notifier, title, message string, s config.Settings) error {
	if n == nil {
		return nil
	}
	if s.SoundEnabled {
		return n.SendWithSound(title, message, s.Tone)
	}
	return n.Send(title, message)
}
