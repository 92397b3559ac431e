package ui

import (
	"strings"

	"helpdesk/internal/domain"
	"helpdesk/internal/ui/theme"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/termenv"
)

// Styles are built on demand so a theme switch takes effect on the next frame.

func styleAppHeader() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(theme.Current().Background()).
		Background(theme.Current().Primary()).
		Bold(true).
		Padding(0, 1)
}

func styleStatsDim() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.Current().TextMuted())
}

func styleNormalText() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.Current().Text())
}

func styleID() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.Current().Accent()).Bold(true)
}

func styleColumnHeader() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.Current().Secondary()).Bold(true)
}

func styleSelected() lipgloss.Style {
	return lipgloss.NewStyle().
		Background(theme.Current().BackgroundSecondary()).
		Foreground(theme.Current().Text()).
		Bold(true)
}

func stylePane() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(theme.Current().BorderNormal())
}

func styleOverlay() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Current().BorderFocused()).
		Padding(1, 2)
}

func styleOverlayTitle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.Current().Accent()).Bold(true)
}

func styleDivider() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.Current().Primary())
}

func styleField() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(theme.Current().Secondary()).
		Bold(true).
		Width(13)
}

func styleFieldFocused() lipgloss.Style {
	return styleField().Foreground(theme.Current().Primary())
}

func styleErrorToast() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Current().Error()).
		Foreground(theme.Current().Text()).
		Padding(0, 1)
}

func styleSuccessToast() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Current().Success()).
		Foreground(theme.Current().Text()).
		Padding(0, 1)
}

func styleKeyPill() lipgloss.Style {
	return lipgloss.NewStyle().
		Background(theme.Current().Primary()).
		Foreground(theme.Current().Background()).
		Bold(true)
}

func styleKeyDesc() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.Current().TextMuted())
}

func styleMenu() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Current().Primary()).
		Padding(0, 1)
}

// statusColor maps a status to the colour of its dashboard bucket.
func statusColor(s domain.Status) lipgloss.AdaptiveColor {
	return bucketColor(s.Bucket())
}

func priorityColor(p domain.Priority) lipgloss.AdaptiveColor {
	th := theme.Current()
	switch p {
	case domain.PriorityHigh:
		return th.Error()
	case domain.PriorityMedium:
		return th.Warning()
	case domain.PriorityLow:
		return th.Success()
	default:
		return th.TextMuted()
	}
}

// ApplyOutputFormat sets the terminal colour profile for the whole program.
// "plain" strips colour; anything else uses what the terminal reports.
func ApplyOutputFormat(format string) {
	if strings.EqualFold(strings.TrimSpace(format), "plain") {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}
	lipgloss.SetColorProfile(termenv.EnvColorProfile())
}

// buildMarkdownRenderer returns a renderer for ticket descriptions. "plain"
// and renderer failures fall back to word wrapping.
func buildMarkdownRenderer(format string, width int) func(string) string {
	if width < 10 {
		width = 10
	}
	fallback := func(input string) string {
		return wordwrap.String(input, width)
	}

	style := strings.ToLower(strings.TrimSpace(format))
	switch style {
	case "", "rich", "dark":
		style = "dark"
	case "plain":
		return fallback
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return fallback
	}
	return func(input string) string {
		out, err := renderer.Render(input)
		if err != nil {
			return fallback(input)
		}
		return strings.TrimSpace(out)
	}
}
