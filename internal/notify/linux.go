//go:build linux

// Package notify provides desktop notification support.
// This file implements Linux notifications using notify-send.
package notify

import (
	"fmt"
	"os/exec"

	"tasktrack/internal/config"
)

// linuxNotifier implements notifications for Linux using notify-send.
type linuxNotifier struct{}

// newPlatformNotifier creates the Linux notifier.
func newPlatformNotifier() Notifier {
	return &linuxNotifier{}
}

// Send sends a notification without sound.
func (n *linuxNotifier) Send(title, message string) error {
	return n.sendNotification(title, message, "")
}

// SendWithSound sends a notification with a freedesktop sound-name hint.
// Note: Sound support depends on the notification daemon configuration.
func (n *linuxNotifier) SendWithSound(title, message string, tone config.Tone) error {
	return n.sendNotification(title, message, soundName(tone))
}

// IsSupported returns true if notify-send is available.
func (n *linuxNotifier) IsSupported() bool {
	_, err := exec.LookPath("notify-send")
	return err == nil
}

// soundName maps a tone to a freedesktop sound theme name.
func soundName(tone config.Tone) string {
	switch tone {
	case config.ToneChime:
		return "complete"
	case config.ToneBell:
		return "bell"
	default:
		return "message-new-instant"
	}
}

func notifySendArgs(title, message, sound string) []string {
	args := []string{
		"--app-name=tasktrack",
		title,
		message,
	}
	if sound != "" {
		args = append([]string{"--urgency=normal", "--hint=string:sound-name:" + sound}, args...)
	}
	return args
}

// sendNotification sends a Linux notification using notify-send.
func (n *linuxNotifier) sendNotification(title, message, sound string) error {
	cmd := exec.Command("notify-send", notifySendArgs(title, message, sound)...)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("notify-send failed: %w", err)
	}

	return nil
}
