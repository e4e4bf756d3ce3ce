//go:build darwin

// Package notify provides desktop notification support.
// This file implements macOS notifications using osascript.
package notify

import (
	"fmt"
	"os/exec"
	"strings"

	"tasktrack/internal/config"
)

// darwinNotifier implements notifications for macOS using osascript.
type darwinNotifier struct{}

// newPlatformNotifier creates the macOS notifier.
func newPlatformNotifier() Notifier {
	return &darwinNotifier{}
}

// Send sends a notification without sound.
func (n *darwinNotifier) Send(title, message string) error {
	return n.sendNotification(title, message, "")
}

// SendWithSound sends a notification with the system sound mapped to tone.
func (n *darwinNotifier) SendWithSound(title, message string, tone config.Tone) error {
	return n.sendNotification(title, message, soundName(tone))
}

// IsSupported returns true if osascript is available.
func (n *darwinNotifier) IsSupported() bool {
	_, err := exec.LookPath("osascript")
	return err == nil
}

// soundName maps a tone to a macOS system sound.
func soundName(tone config.Tone) string {
	switch tone {
	case config.ToneChime:
		return "Glass"
	case config.ToneBell:
		return "Ping"
	default:
		return "default"
	}
}

// sendNotification sends a macOS notification using osascript.
func (n *darwinNotifier) sendNotification(title, message, sound string) error {
	title = escapeAppleScript(title)
	message = escapeAppleScript(message)

	script := fmt.Sprintf(`display notification "%s" with title "%s"`, message, title)
	if sound != "" {
		script += fmt.Sprintf(` sound name "%s"`, sound)
	}

	cmd := exec.Command("osascript", "-e", script)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("osascript failed: %w", err)
	}

	return nil
}

// escapeAppleScript escapes special characters for AppleScript strings.
func escapeAppleScript(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\"", "\\\"")
	return s
}
