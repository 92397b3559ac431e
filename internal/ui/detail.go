package ui

import (
	"fmt"
	"strings"

	"helpdesk/internal/domain"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
)

// updateDetailContent refreshes the detail pane for the row under the cursor.
// The pane scrolls back to the top when the selection changes.
func (m *App) updateDetailContent() {
	if !m.showDetail {
		return
	}
	t, ok := m.selected()
	if !ok {
		m.detailID = 0
		m.detail.SetContent(styleStatsDim().Render("No ticket selected"))
		return
	}
	if m.detailID != t.ID {
		m.detail.GotoTop()
		m.detailID = t.ID
	}
	m.detail.SetContent(renderDetail(t, m.detail.Width, m.outputFormat))
}

func renderDetail(t domain.Ticket, width int, format string) string {
	if width < 10 {
		width = 10
	}
	makeRow := func(k, v string) string {
		return lipgloss.JoinHorizontal(lipgloss.Left, styleField().Render(k), v)
	}

	header := styleID().Render(fmt.Sprintf("#%d ", t.ID)) +
		styleNormalText().Bold(true).Render(wordwrap.String(t.Title, width-6))

	rows := []string{
		makeRow("Type:", styleNormalText().Render(string(t.Type))),
	}
	if t.Category != "" {
		rows = append(rows, makeRow("Category:", styleNormalText().Render(t.Category)))
	}
	rows = append(rows,
		makeRow("Status:", renderStatus(t.Status)),
		makeRow("Priority:", renderPriority(t.Priority)),
	)
	if t.CreatedBy != "" {
		rows = append(rows, makeRow("Created by:", styleNormalText().Render(t.CreatedBy)))
	}

	renderMarkdown := buildMarkdownRenderer(format, width-2)
	description := strings.TrimSpace(t.Description)
	if description == "" {
		description = styleStatsDim().Render("No description")
	} else {
		description = renderMarkdown(description)
	}

	response := strings.TrimSpace(t.Response())
	if response == "" {
		response = styleStatsDim().Render("No response yet")
	} else {
		response = styleNormalText().Render(wordwrap.String(response, width-2))
	}

	return strings.Join([]string{
		header,
		"",
		strings.Join(rows, "\n"),
		"",
		detailSection("Description", description),
		"",
		detailSection("Agent Response", response),
	}, "\n")
}

func detailSection(label, body string) string {
	return styleColumnHeader().Render(label) + "\n" + body
}
