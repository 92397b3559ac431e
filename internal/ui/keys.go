package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all keyboard shortcuts for the dashboard.
// Each binding includes the actual keys and help text for display.
// Up/Down share help text since they appear as a single row in the help overlay.
type KeyMap struct {
	// Navigation
	Up       key.Binding
	Down     key.Binding
	Home     key.Binding
	End      key.Binding
	PageUp   key.Binding
	PageDown key.Binding

	// View state
	Search       key.Binding
	SortType     key.Binding
	SortStatus   key.Binding
	SortPriority key.Binding
	Entries      key.Binding
	TypeFilter   key.Binding
	Detail       key.Binding

	// Row actions
	Menu   key.Binding
	Edit   key.Binding
	Delete key.Binding
	Copy   key.Binding

	// Global
	NewTicket key.Binding
	Refresh   key.Binding
	Theme     key.Binding
	Help      key.Binding
	Escape    key.Binding
	Quit      key.Binding

	// Overlays
	Save    key.Binding
	Confirm key.Binding
	Cancel  key.Binding
	Next    key.Binding
	Prev    key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/↓  j/k", "Move up/down"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↑/↓  j/k", "Move up/down"),
		),
		Home: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("Home  g", "Jump to top"),
		),
		End: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("End   G", "Jump to bottom"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup", "ctrl+b"),
			key.WithHelp("PgUp  Ctrl+B", "Page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", "ctrl+f"),
			key.WithHelp("PgDn  Ctrl+F", "Page down"),
		),

		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "Search titles"),
		),
		SortType: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "Sort by type"),
		),
		SortStatus: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "Sort by status"),
		),
		SortPriority: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "Sort by priority"),
		),
		Entries: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "Entries 5/10/15/All"),
		),
		TypeFilter: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("⇥ (Tab)", "Type All/Service/Asset"),
		),
		Detail: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "Toggle detail"),
		),

		Menu: key.NewBinding(
			key.WithKeys("enter", "m"),
			key.WithHelp("⏎  m", "Row actions"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "Edit ticket"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "Delete ticket"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "Copy ID"),
		),

		NewTicket: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "New ticket"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "Reload"),
		),
		Theme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "Next theme"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "Help"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("Esc", "Close/clear"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "Quit"),
		),

		Save: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("Ctrl+S", "Save"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "Confirm"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("n", "esc"),
			key.WithHelp("n/Esc", "Cancel"),
		),
		Next: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("⇥", "Next field"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("⇧⇥", "Previous field"),
		),
	}
}
