package ui

import (
	"strings"
	"time"

	"tasktrack/internal/config"

	"github.com/charmbracelet/lipgloss"
)

// bannerTTL is how long a banner stays on the status line.
const bannerTTL = 4 * time.Second

// notice is a message shown through the configured notification panel.
type notice struct {
	text  string
	panel config.Panel
	until time.Time // banners only
}

// NotificationPanel presents notices as a banner on the status line, an
// alert box above the panes, or a modal that replaces the screen.
// Alerts and modals stay until dismissed; banners expire on their own.
type NotificationPanel struct {
	current *notice
	styles  *Styles
	width   int
	height  int
	now     func() time.Time
}

// NewNotificationPanel creates an empty panel.
func NewNotificationPanel(styles *Styles) *NotificationPanel {
	return &NotificationPanel{styles: styles, now: time.Now}
}

// SetSize sets the screen dimensions used to center modals.
func (n *NotificationPanel) SetSize(width, height int) {
	n.width = width
	n.height = height
}

// SetStyles swaps the palette after a dark mode change.
func (n *NotificationPanel) SetStyles(styles *Styles) {
	n.styles = styles
}

// Show replaces the current notice.
func (n *NotificationPanel) Show(text string, panel config.Panel) {
	nt := &notice{text: text, panel: panel}
	if panel == config.PanelBanner {
		nt.until = n.now().Add(bannerTTL)
	}
	n.current = nt
}

// Dismiss clears the current notice.
func (n *NotificationPanel) Dismiss() {
	n.current = nil
}

// Expire clears a banner whose time is up.
func (n *NotificationPanel) Expire(now time.Time) {
	if n.current != nil && n.current.panel == config.PanelBanner && now.After(n.current.until) {
		n.current = nil
	}
}

// Text returns the current notice text, or "".
func (n *NotificationPanel) Text() string {
	if n.current == nil {
		return ""
	}
	return n.current.text
}

// Visible reports whether a notice of the given panel kind is showing.
func (n *NotificationPanel) Visible(panel config.Panel) bool {
	return n.current != nil && n.current.panel == panel
}

// Blocking reports whether the notice must be dismissed before other input
// is handled.
func (n *NotificationPanel) Blocking() bool {
	return n.current != nil && n.current.panel != config.PanelBanner
}

// BannerView renders the status-line banner with its close mark.
func (n *NotificationPanel) BannerView() string {
	if !n.Visible(config.PanelBanner) {
		return ""
	}
	return n.styles.BannerStyle.Render(n.current.text + "  ✕")
}

// AlertView renders the alert box shown above the panes.
func (n *NotificationPanel) AlertView() string {
	if !n.Visible(config.PanelAlert) {
		return ""
	}
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(n.styles.ColorPrimary).
		Background(n.styles.ColorBgLight).
		Foreground(n.styles.ColorText).
		Padding(0, 2)
	hint := n.styles.HelpStyle.Render("[enter] OK")
	content := box.Render(n.current.text + "   " + hint)
	return lipgloss.PlaceHorizontal(n.width, lipgloss.Center, content)
}

// ModalView renders the full-screen modal.
func (n *NotificationPanel) ModalView() string {
	if !n.Visible(config.PanelModal) {
		return ""
	}
	overlayStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(n.styles.ColorPrimary).
		Background(n.styles.ColorBgLight).
		Padding(1, 2).
		Width(overlayWidth(n.width))

	button := lipgloss.NewStyle().
		Foreground(n.styles.ColorBg).
		Background(n.styles.ColorPrimary).
		Bold(true).
		Padding(0, 2).
		Render("Dismiss")

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(n.styles.ColorText).Render(n.current.text))
	b.WriteString("\n\n")
	b.WriteString(button)

	return lipgloss.Place(n.width, n.height, lipgloss.Center, lipgloss.Center, overlayStyle.Render(b.String()))
}
