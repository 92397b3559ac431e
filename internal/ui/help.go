package ui

import (
	"strings"

	"helpdesk/internal/ui/theme"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

type helpSection struct {
	title string
	rows  [][]string
}

func helpRow(b key.Binding) []string {
	return []string{b.Help().Key, b.Help().Desc}
}

// getHelpSections lists the bindings shown in the help overlay, in order.
func getHelpSections(keys KeyMap) []helpSection {
	return []helpSection{
		{
			title: "NAVIGATION",
			rows: [][]string{
				helpRow(keys.Up),
				helpRow(keys.Home),
				helpRow(keys.End),
				helpRow(keys.PageUp),
				helpRow(keys.PageDown),
			},
		},
		{
			title: "VIEW",
			rows: [][]string{
				helpRow(keys.Search),
				helpRow(keys.SortType),
				helpRow(keys.SortStatus),
				helpRow(keys.SortPriority),
				helpRow(keys.Entries),
				helpRow(keys.TypeFilter),
				helpRow(keys.Detail),
				helpRow(keys.Theme),
			},
		},
		{
			title: "TICKETS",
			rows: [][]string{
				helpRow(keys.Menu),
				helpRow(keys.Edit),
				helpRow(keys.Delete),
				helpRow(keys.Copy),
				helpRow(keys.NewTicket),
				helpRow(keys.Refresh),
				helpRow(keys.Escape),
				helpRow(keys.Quit),
			},
		},
	}
}

// renderHelpOverlay returns the help modal centered in width x height.
func renderHelpOverlay(keys KeyMap, width, height int) string {
	sections := getHelpSections(keys)

	leftCol := lipgloss.JoinVertical(lipgloss.Left,
		renderHelpSectionTable(sections[0]),
		"",
		renderHelpSectionTable(sections[1]),
	)
	rightCol := renderHelpSectionTable(sections[2])
	columns := lipgloss.JoinHorizontal(lipgloss.Top, leftCol, "    ", rightCol)

	th := theme.Current()
	title := lipgloss.NewStyle().Foreground(th.Accent()).Bold(true).Render("✦ HELPDESK ✦")
	dividerWidth := lipgloss.Width(columns)
	if dividerWidth < 40 {
		dividerWidth = 40
	}
	divider := styleDivider().Render(strings.Repeat("─", dividerWidth))
	footer := styleStatsDim().Italic(true).Render("Press ? or Esc to close")

	content := lipgloss.JoinVertical(lipgloss.Center,
		title,
		divider,
		"",
		columns,
		"",
		footer,
	)
	return lipgloss.Place(width, height,
		lipgloss.Center, lipgloss.Center,
		styleOverlay().Render(content),
		lipgloss.WithWhitespaceChars(" "),
	)
}

func renderHelpSectionTable(section helpSection) string {
	th := theme.Current()
	keyStyle := lipgloss.NewStyle().Foreground(th.Primary()).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(th.Text())

	t := table.New().
		Border(lipgloss.HiddenBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			if col == 0 {
				return keyStyle.Width(14)
			}
			return descStyle
		}).
		Rows(section.rows...)

	header := lipgloss.NewStyle().Foreground(th.Secondary()).Bold(true).Render(section.title)
	underline := styleDivider().Render(strings.Repeat("─", len(section.title)))

	// The hidden border leaves an empty top row.
	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		underline,
		strings.TrimPrefix(t.String(), "\n"),
	)
}
