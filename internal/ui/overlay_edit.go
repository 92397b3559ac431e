package ui

import (
	"fmt"
	"strings"

	"helpdesk/internal/domain"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	editOverlayWidth = 60
	editTitleLimit   = 120
)

// EditOverlay is the modal for changing a ticket's title and description.
// The rest of the ticket is shown read-only.
type EditOverlay struct {
	ticket      domain.Ticket
	title       textinput.Model
	description textarea.Model
	focusDesc   bool
	saving      bool
	keys        KeyMap
}

// EditSubmittedMsg carries the edited fields when the user saves.
type EditSubmittedMsg struct {
	TicketID    int
	Title       string
	Description string
}

// EditCancelledMsg is sent when the modal is closed without saving.
type EditCancelledMsg struct{}

// NewEditOverlay builds the modal from the staged ticket copy.
func NewEditOverlay(t domain.Ticket, keys KeyMap) *EditOverlay {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = editTitleLimit
	ti.Width = editOverlayWidth - 4
	ti.SetValue(t.Title)
	ti.CursorEnd()
	ti.Focus()

	ta := newBaseTextarea(editOverlayWidth-4, 6)
	ta.SetValue(t.Description)

	return &EditOverlay{
		ticket:      t,
		title:       ti,
		description: ta,
		keys:        keys,
	}
}

// Values returns the current contents of the editable fields.
func (m *EditOverlay) Values() (string, string) {
	return m.title.Value(), m.description.Value()
}

// SetSaving marks a save in flight; further saves are ignored until it clears.
func (m *EditOverlay) SetSaving(saving bool) {
	m.saving = saving
}

// Update routes keys to the focused field.
func (m *EditOverlay) Update(msg tea.Msg) (*EditOverlay, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(keyMsg, m.keys.Escape):
		return m, func() tea.Msg { return EditCancelledMsg{} }
	case key.Matches(keyMsg, m.keys.Save):
		if m.saving {
			return m, nil
		}
		title, desc := m.Values()
		id := m.ticket.ID
		return m, func() tea.Msg {
			return EditSubmittedMsg{TicketID: id, Title: title, Description: desc}
		}
	case key.Matches(keyMsg, m.keys.Next), key.Matches(keyMsg, m.keys.Prev):
		m.toggleFocus()
		return m, nil
	}

	var cmd tea.Cmd
	if m.focusDesc {
		m.description, cmd = m.description.Update(keyMsg)
	} else {
		m.title, cmd = m.title.Update(keyMsg)
	}
	return m, cmd
}

func (m *EditOverlay) toggleFocus() {
	m.focusDesc = !m.focusDesc
	if m.focusDesc {
		m.title.Blur()
		m.description.Focus()
	} else {
		m.description.Blur()
		m.title.Focus()
	}
}

// View renders the modal.
func (m *EditOverlay) View() string {
	divider := styleDivider().Render(strings.Repeat("─", editOverlayWidth))

	titleLabel, descLabel := styleFieldFocused(), styleField()
	if m.focusDesc {
		titleLabel, descLabel = styleField(), styleFieldFocused()
	}

	meta := fmt.Sprintf("%s  %s  %s",
		string(m.ticket.Type),
		renderStatus(m.ticket.Status),
		renderPriority(m.ticket.Priority))

	footer := []footerHint{{"ctrl+s", "Save"}, {"⇥", "Field"}, {"esc", "Cancel"}}
	if m.saving {
		footer = []footerHint{{"…", "Saving"}}
	}

	lines := []string{
		styleOverlayTitle().Render(fmt.Sprintf("Edit ticket #%d", m.ticket.ID)),
		divider,
		styleStatsDim().Render(meta),
		"",
		titleLabel.Render("Title"),
		m.title.View(),
		"",
		descLabel.Render("Description"),
		m.description.View(),
		"",
		divider,
		footerLine(footer),
	}
	return styleOverlay().Render(strings.Join(lines, "\n"))
}

// newBaseTextarea returns a textarea without prompt or line numbers.
func newBaseTextarea(width, height int) textarea.Model {
	ta := textarea.New()
	ta.Prompt = ""
	ta.ShowLineNumbers = false
	ta.SetWidth(width)
	ta.SetHeight(height)
	return ta
}
