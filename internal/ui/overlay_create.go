package ui

import (
	"strings"

	"helpdesk/internal/domain"
	appErrors "helpdesk/internal/errors"
	"helpdesk/internal/helpdesk"
	"helpdesk/internal/ui/theme"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const createOverlayWidth = 60

type createField int

const (
	createFieldType createField = iota
	createFieldCategory
	createFieldPriority
	createFieldTitle
	createFieldDescription
	createFieldCount
)

// CreateOverlay is the new-ticket form.
type CreateOverlay struct {
	typeIdx     int
	categoryIdx int
	priorityIdx int
	title       textinput.Model
	description textarea.Model
	focus       createField
	errText     string
	saving      bool
	keys        KeyMap
}

// CreateSubmittedMsg carries a validated create request.
type CreateSubmittedMsg struct {
	Request helpdesk.CreateTicketRequest
}

// CreateCancelledMsg is sent when the form is closed without submitting.
type CreateCancelledMsg struct{}

// NewCreateOverlay returns an empty form. Priority starts at Low.
func NewCreateOverlay(keys KeyMap) *CreateOverlay {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = "Short summary"
	ti.CharLimit = editTitleLimit
	ti.Width = createOverlayWidth - 4

	ta := newBaseTextarea(createOverlayWidth-4, 5)
	ta.Placeholder = "What happened? Markdown is fine."

	return &CreateOverlay{
		title:       ti,
		description: ta,
		keys:        keys,
	}
}

// Request builds the create request from the current form values.
func (m *CreateOverlay) Request() helpdesk.CreateTicketRequest {
	t := domain.TicketTypes[m.typeIdx]
	category := ""
	if cats := domain.Categories(t); len(cats) > 0 {
		category = cats[m.categoryIdx%len(cats)]
	}
	return helpdesk.CreateTicketRequest{
		Type:        t,
		Category:    category,
		Priority:    domain.Priorities[m.priorityIdx],
		Title:       strings.TrimSpace(m.title.Value()),
		Description: strings.TrimSpace(m.description.Value()),
	}
}

// SetError shows a message inside the form.
func (m *CreateOverlay) SetError(text string) {
	m.errText = text
}

// SetSaving marks a submit in flight.
func (m *CreateOverlay) SetSaving(saving bool) {
	m.saving = saving
}

// Update handles navigation between fields, selector changes and submit.
func (m *CreateOverlay) Update(msg tea.Msg) (*CreateOverlay, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(keyMsg, m.keys.Escape):
		return m, func() tea.Msg { return CreateCancelledMsg{} }
	case key.Matches(keyMsg, m.keys.Save):
		return m, m.submit()
	case key.Matches(keyMsg, m.keys.Next):
		m.setFocus((m.focus + 1) % createFieldCount)
		return m, nil
	case key.Matches(keyMsg, m.keys.Prev):
		m.setFocus((m.focus + createFieldCount - 1) % createFieldCount)
		return m, nil
	}

	switch m.focus {
	case createFieldType, createFieldCategory, createFieldPriority:
		switch keyMsg.String() {
		case "left", "h":
			m.cycle(-1)
		case "right", "l", " ":
			m.cycle(1)
		case "enter", "down":
			m.setFocus(m.focus + 1)
		}
		return m, nil
	case createFieldTitle:
		if keyMsg.String() == "enter" {
			m.setFocus(createFieldDescription)
			return m, nil
		}
		var cmd tea.Cmd
		m.title, cmd = m.title.Update(keyMsg)
		return m, cmd
	default:
		var cmd tea.Cmd
		m.description, cmd = m.description.Update(keyMsg)
		return m, cmd
	}
}

func (m *CreateOverlay) submit() tea.Cmd {
	if m.saving {
		return nil
	}
	req := m.Request()
	if err := req.Validate(); err != nil {
		m.errText = appErrors.UserMessage(err, err.Error())
		return nil
	}
	m.errText = ""
	return func() tea.Msg { return CreateSubmittedMsg{Request: req} }
}

func (m *CreateOverlay) cycle(delta int) {
	wrap := func(i, n int) int { return ((i+delta)%n + n) % n }
	switch m.focus {
	case createFieldType:
		m.typeIdx = wrap(m.typeIdx, len(domain.TicketTypes))
		m.categoryIdx = 0
	case createFieldCategory:
		if n := len(domain.Categories(domain.TicketTypes[m.typeIdx])); n > 0 {
			m.categoryIdx = wrap(m.categoryIdx, n)
		}
	case createFieldPriority:
		m.priorityIdx = wrap(m.priorityIdx, len(domain.Priorities))
	}
}

func (m *CreateOverlay) setFocus(f createField) {
	m.focus = f
	m.title.Blur()
	m.description.Blur()
	switch f {
	case createFieldTitle:
		m.title.Focus()
	case createFieldDescription:
		m.description.Focus()
	}
}

// View renders the form.
func (m *CreateOverlay) View() string {
	req := m.Request()
	divider := styleDivider().Render(strings.Repeat("─", createOverlayWidth))

	label := func(f createField, text string) string {
		if m.focus == f {
			return styleFieldFocused().Render("› " + text)
		}
		return styleField().Render("  " + text)
	}
	selector := func(f createField, value string) string {
		if m.focus == f {
			return styleSelected().Render("‹ " + value + " ›")
		}
		return styleNormalText().Render(value)
	}

	lines := []string{
		styleOverlayTitle().Render("New ticket"),
		divider,
		label(createFieldType, "Type") + selector(createFieldType, string(req.Type)),
		label(createFieldCategory, "Category") + selector(createFieldCategory, req.Category),
		label(createFieldPriority, "Priority") + selector(createFieldPriority, renderPriority(req.Priority)),
		"",
		label(createFieldTitle, "Title"),
		m.title.View(),
		"",
		label(createFieldDescription, "Description"),
		m.description.View(),
	}
	if m.errText != "" {
		errStyle := lipgloss.NewStyle().Foreground(theme.Current().Error()).Bold(true)
		lines = append(lines, "", errStyle.Render("⚠ "+m.errText))
	}
	footer := []footerHint{{"ctrl+s", "Submit"}, {"⇥", "Field"}, {"←→", "Choose"}, {"esc", "Cancel"}}
	if m.saving {
		footer = []footerHint{{"…", "Submitting"}}
	}
	lines = append(lines, "", divider, footerLine(footer))
	return styleOverlay().Render(strings.Join(lines, "\n"))
}
