package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// footerHint is a short key hint for the footer bar. Descriptions are
// shorter than the help overlay text.
type footerHint struct {
	key  string
	desc string
}

var globalFooterHints = []footerHint{
	{"/", "Search"},
	{"c", "New"},
	{"r", "Refresh"},
	{"?", "Help"},
	{"q", "Quit"},
}

var tableFooterHints = []footerHint{
	{"↑↓", "Move"},
	{"⏎", "Menu"},
	{"1/2/3", "Sort"},
	{"n", "Rows"},
}

var menuFooterHints = []footerHint{
	{"e", "Edit"},
	{"d", "Delete"},
	{"esc", "Close"},
}

var searchFooterHints = []footerHint{
	{"⏎", "Apply"},
	{"esc", "Clear"},
}

// renderFooter renders the bottom bar with the user on the right.
func (m *App) renderFooter() string {
	var hints []footerHint
	switch {
	case m.searching:
		hints = append(hints, searchFooterHints...)
	case m.mgr.Menu().IsOpen():
		hints = append(hints, menuFooterHints...)
	default:
		hints = append(hints, tableFooterHints...)
	}
	contextCount := len(hints)
	hints = append(hints, globalFooterHints...)

	right := styleStatsDim().Render(m.footerRight())
	rightWidth := lipgloss.Width(right)
	hints = trimHintsToFit(hints, contextCount, m.width-rightWidth-4)

	left := footerLine(hints)
	spacing := m.width - lipgloss.Width(left) - rightWidth
	if spacing < 2 {
		spacing = 2
	}
	return left + strings.Repeat(" ", spacing) + right
}

func (m *App) footerRight() string {
	parts := []string{m.themeLabel()}
	if m.user != "" {
		parts = append(parts, m.user)
	}
	return strings.Join(parts, " · ")
}

// footerLine renders hints as pills separated by two spaces.
func footerLine(hints []footerHint) string {
	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		parts = append(parts, keyPill(h.key, h.desc))
	}
	return strings.Join(parts, "  ")
}

func keyPill(key, desc string) string {
	return styleKeyPill().Render(" "+key+" ") + " " + styleKeyDesc().Render(desc)
}

// trimHintsToFit drops context hints from the front first, then globals
// from the end, until the line fits.
func trimHintsToFit(hints []footerHint, contextCount, available int) []footerHint {
	for len(hints) > 0 && lipgloss.Width(footerLine(hints)) > available {
		if contextCount > 0 {
			hints = hints[1:]
			contextCount--
			continue
		}
		hints = hints[:len(hints)-1]
	}
	return hints
}
