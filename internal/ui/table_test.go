package ui

import (
	"strings"
	"testing"

	"helpdesk/internal/domain"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func TestVisibleWindow(t *testing.T) {
	tests := []struct {
		name               string
		n, cursor, height  int
		wantStart, wantEnd int
	}{
		{"fits", 3, 2, 10, 0, 3},
		{"top", 20, 0, 5, 0, 5},
		{"middle", 20, 10, 5, 8, 13},
		{"bottom", 20, 19, 5, 15, 20},
		{"zero height", 4, 2, 0, 2, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := visibleWindow(tt.n, tt.cursor, tt.height)
			if start != tt.wantStart || end != tt.wantEnd {
				t.Fatalf("visibleWindow(%d, %d, %d) = [%d, %d), want [%d, %d)",
					tt.n, tt.cursor, tt.height, start, end, tt.wantStart, tt.wantEnd)
			}
		})
	}
}

func TestPadCell(t *testing.T) {
	if got := padCell("abc", 6); got != "abc   " {
		t.Fatalf("padCell short = %q", got)
	}
	got := padCell("a long ticket title", 8)
	if w := ansi.StringWidth(got); w != 8 {
		t.Fatalf("padCell width = %d, want 8", w)
	}
	if !strings.HasSuffix(got, "…") {
		t.Fatalf("expected ellipsis, got %q", got)
	}
	if got := padCell("abc", 0); got != "" {
		t.Fatalf("padCell zero width = %q", got)
	}
}

func TestFirstLine(t *testing.T) {
	if got := firstLine("  single  "); got != "single" {
		t.Fatalf("firstLine = %q", got)
	}
	if got := firstLine("one\ntwo"); got != "one …" {
		t.Fatalf("firstLine multi = %q", got)
	}
}

func TestTableColumnsCategoryOnlyForAgents(t *testing.T) {
	has := func(cols []column) bool {
		for _, c := range cols {
			if c.title == "Category" {
				return true
			}
		}
		return false
	}
	if has(tableColumns(120, false)) {
		t.Fatal("user view should not show the category column")
	}
	if !has(tableColumns(120, true)) {
		t.Fatal("agent view should show the category column")
	}
	for _, c := range tableColumns(20, false) {
		if c.title == "Title" && c.width < minTitleWidth {
			t.Fatalf("title width %d below minimum", c.width)
		}
	}
}

func TestTrimHintsToFit(t *testing.T) {
	hints := append(append([]footerHint{}, tableFooterHints...), globalFooterHints...)
	all := trimHintsToFit(hints, len(tableFooterHints), 1000)
	if len(all) != len(hints) {
		t.Fatalf("expected all hints to fit, got %d", len(all))
	}

	globalsOnly := lipgloss.Width(footerLine(globalFooterHints))
	trimmed := trimHintsToFit(hints, len(tableFooterHints), globalsOnly)
	if len(trimmed) != len(globalFooterHints) || trimmed[0].key != "/" {
		t.Fatalf("expected context hints dropped first, got %+v", trimmed)
	}

	if got := trimHintsToFit(hints, len(tableFooterHints), 0); len(got) != 0 {
		t.Fatalf("expected no hints, got %+v", got)
	}
}

func TestRenderDetail(t *testing.T) {
	resp := "Replaced the battery"
	ticket := domain.Ticket{
		ID:            4,
		Type:          domain.TypeAsset,
		Category:      "Laptop",
		Title:         "Battery drains",
		Description:   "Dies after an hour",
		Status:        domain.StatusResolved,
		Priority:      domain.PriorityMedium,
		AgentResponse: &resp,
	}
	out := ansi.Strip(renderDetail(ticket, 60, "plain"))
	for _, want := range []string{"#4", "Battery drains", "Laptop", "Resolved", "Dies after an hour", "Replaced the battery"} {
		if !strings.Contains(out, want) {
			t.Fatalf("detail missing %q:\n%s", want, out)
		}
	}

	ticket.AgentResponse = nil
	ticket.Description = ""
	out = ansi.Strip(renderDetail(ticket, 60, "plain"))
	if !strings.Contains(out, "No response yet") || !strings.Contains(out, "No description") {
		t.Fatalf("expected placeholders:\n%s", out)
	}
}
