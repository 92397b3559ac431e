package ui

import (
	"helpdesk/internal/ui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const maxToastWidth = 60

// toast is the single notification shown above the footer. A newer toast
// replaces an older one; seq stops a stale expiry from clearing it.
type toast struct {
	text    string
	isError bool
	seq     int
}

func (t toast) visible() bool { return t.text != "" }

func (m *App) showToast(text string, isError bool) tea.Cmd {
	m.toast.seq++
	m.toast.text = text
	m.toast.isError = isError
	d := successToastDuration
	if isError {
		d = errorToastDuration
	}
	return scheduleToastExpiry(m.toast.seq, d)
}

func (m *App) renderToast() string {
	if !m.toast.visible() {
		return ""
	}
	width := m.width - 4
	if width > maxToastWidth {
		width = maxToastWidth
	}
	if m.toast.isError {
		title := lipgloss.NewStyle().Foreground(theme.Current().Error()).Bold(true).Render("⚠ Error")
		return styleErrorToast().Render(title + "\n" + truncateText(m.toast.text, width))
	}
	return styleSuccessToast().Render(truncateText(m.toast.text, width))
}
