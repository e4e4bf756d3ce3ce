package ui

import (
	"testing"
	"time"

	"tasktrack/internal/config"
)

func TestNotificationPanel_BannerExpires(t *testing.T) {
	setupTest(t)
	n := NewNotificationPanel(createTestStyles())
	n.now = func() time.Time { return testNow }

	n.Show("saved", config.PanelBanner)
	if n.Blocking() {
		t.Error("a banner must not block input")
	}
	if got := n.BannerView(); !contains(got, "saved") || !contains(got, "✕") {
		t.Errorf("BannerView() = %q", got)
	}

	n.Expire(testNow.Add(bannerTTL - time.Second))
	if n.Text() != "saved" {
		t.Fatal("banner expired early")
	}
	n.Expire(testNow.Add(bannerTTL + time.Second))
	if n.Text() != "" {
		t.Error("banner should expire after its TTL")
	}
}

func TestNotificationPanel_AlertAndModalPersist(t *testing.T) {
	for _, panel := range []config.Panel{config.PanelAlert, config.PanelModal} {
		t.Run(string(panel), func(t *testing.T) {
			setupTest(t)
			n := NewNotificationPanel(createTestStyles())
			n.SetSize(80, 24)
			n.Show("heads up", panel)

			if !n.Blocking() {
				t.Error("alerts and modals block until dismissed")
			}
			n.Expire(time.Now().Add(time.Hour))
			if n.Text() != "heads up" {
				t.Error("alerts and modals never expire on their own")
			}

			if n.BannerView() != "" {
				t.Error("BannerView should be empty for non-banner notices")
			}
			var view string
			if panel == config.PanelAlert {
				view = n.AlertView()
			} else {
				view = n.ModalView()
			}
			if !contains(view, "heads up") {
				t.Errorf("%s view missing text: %q", panel, view)
			}

			n.Dismiss()
			if n.Visible(panel) || n.Blocking() {
				t.Error("Dismiss should clear the notice")
			}
		})
	}
}

func TestNotificationPanel_ShowReplaces(t *testing.T) {
	n := NewNotificationPanel(createTestStyles())
	n.Show("first", config.PanelModal)
	n.Show("second", config.PanelBanner)
	if n.Text() != "second" || n.Visible(config.PanelModal) {
		t.Error("Show should replace the current notice")
	}
}
