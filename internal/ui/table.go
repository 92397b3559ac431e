package ui

import (
	"fmt"
	"strings"

	"helpdesk/internal/domain"
	"helpdesk/internal/tickets"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const (
	colIDWidth       = 6
	colTypeWidth     = 12
	colCategoryWidth = 16
	colStatusWidth   = 16
	colPriorityWidth = 13
	minTitleWidth    = 12
	minResponseWidth = 12
	colGap           = 1
)

type column struct {
	title   string
	width   int
	sortKey tickets.SortKey
}

// tableColumns lays the columns out in width. The category column only
// appears in the agent view, matching the agent dashboards.
func tableColumns(width int, agent bool) []column {
	cols := []column{
		{title: "ID", width: colIDWidth},
		{title: "Type", width: colTypeWidth, sortKey: tickets.SortType},
	}
	if agent {
		cols = append(cols, column{title: "Category", width: colCategoryWidth})
	}
	cols = append(cols, column{title: "Title"})
	cols = append(cols,
		column{title: "Status", width: colStatusWidth, sortKey: tickets.SortStatus},
		column{title: "Priority", width: colPriorityWidth, sortKey: tickets.SortPriority},
		column{title: "Agent Response"},
	)

	fixed := 0
	for _, c := range cols {
		fixed += c.width + colGap
	}
	flex := width - fixed - 2
	titleWidth := flex * 3 / 5
	if titleWidth < minTitleWidth {
		titleWidth = minTitleWidth
	}
	responseWidth := flex - titleWidth
	if responseWidth < minResponseWidth {
		responseWidth = minResponseWidth
	}
	for i := range cols {
		switch cols[i].title {
		case "Title":
			cols[i].width = titleWidth
		case "Agent Response":
			cols[i].width = responseWidth
		}
	}
	return cols
}

// renderTable draws the header, the visible window of rows and, under the
// row it belongs to, the open row menu.
func (m *App) renderTable(rows []domain.Ticket, width, height int) string {
	cols := tableColumns(width, m.agent)
	sort := m.mgr.State.Sort

	headerCells := make([]string, len(cols))
	for i, c := range cols {
		label := c.title
		if c.sortKey != "" {
			label = fmt.Sprintf("%s %s", c.title, sort.Indicator(c.sortKey))
		}
		headerCells[i] = styleColumnHeader().Render(padCell(label, c.width))
	}
	lines := []string{" " + strings.Join(headerCells, " ")}

	if len(rows) == 0 {
		msg := "No tickets"
		switch {
		case !m.mgr.Loaded():
			msg = "Loading tickets…"
		case m.mgr.State.Search != "":
			msg = fmt.Sprintf("No tickets match %q", m.mgr.State.Search)
		}
		lines = append(lines, "", styleStatsDim().Render("  "+msg))
		return strings.Join(lines, "\n")
	}

	menu := m.mgr.Menu()
	capacity := height - 1
	if menu.IsOpen() {
		capacity--
	}
	start, end := visibleWindow(len(rows), m.cursor, capacity)
	for i := start; i < end; i++ {
		t := rows[i]
		line := renderRow(t, cols)
		if i == m.cursor {
			line = styleSelected().Render("›" + line)
		} else {
			line = " " + line
		}
		lines = append(lines, line)
		if menu.OpenOn(t.ID) {
			lines = append(lines, renderRowMenu())
		}
	}
	return strings.Join(lines, "\n")
}

func renderRow(t domain.Ticket, cols []column) string {
	cells := make([]string, len(cols))
	for i, c := range cols {
		var cell string
		switch c.title {
		case "ID":
			cell = styleID().Render(padCell(fmt.Sprintf("#%d", t.ID), c.width))
		case "Type":
			cell = styleNormalText().Render(padCell(string(t.Type), c.width))
		case "Category":
			cell = styleStatsDim().Render(padCell(t.Category, c.width))
		case "Title":
			cell = styleNormalText().Render(padCell(t.Title, c.width))
		case "Status":
			cell = padCell(renderStatus(t.Status), c.width)
		case "Priority":
			cell = padCell(renderPriority(t.Priority), c.width)
		case "Agent Response":
			resp := t.Response()
			if resp == "" {
				cell = styleStatsDim().Render(padCell("—", c.width))
			} else {
				cell = styleNormalText().Render(padCell(firstLine(resp), c.width))
			}
		}
		cells[i] = cell
	}
	return strings.Join(cells, " ")
}

func renderRowMenu() string {
	return "   " + styleMenu().Render(footerLine(menuFooterHints))
}

// visibleWindow returns the [start, end) slice of n rows that keeps cursor
// on screen when only height rows fit.
func visibleWindow(n, cursor, height int) (int, int) {
	if height < 1 {
		height = 1
	}
	if n <= height {
		return 0, n
	}
	start := cursor - height/2
	if start < 0 {
		start = 0
	}
	if start+height > n {
		start = n - height
	}
	return start, start + height
}

func renderStatus(s domain.Status) string {
	label := string(s)
	if label == "" {
		label = string(domain.StatusUnknown)
	}
	return lipgloss.NewStyle().Foreground(statusColor(s)).Render("● " + label)
}

func renderPriority(p domain.Priority) string {
	label := string(p)
	if label == "" {
		label = "—"
	}
	return lipgloss.NewStyle().Foreground(priorityColor(p)).Bold(p == domain.PriorityHigh).Render(label)
}

// truncateText shortens s to width cells, ending in an ellipsis when cut.
func truncateText(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return ansi.Truncate(s, width, "…")
}

// padCell truncates then pads s to exactly width cells. s may be styled.
func padCell(s string, width int) string {
	s = truncateText(s, width)
	if w := ansi.StringWidth(s); w < width {
		s += strings.Repeat(" ", width-w)
	}
	return s
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i] + " …"
	}
	return s
}
