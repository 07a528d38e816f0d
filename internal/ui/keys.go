package ui

import (
	"prodtable/internal/model"

	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines all keybindings for the table screen.
type KeyMap struct {
	Up          key.Binding
	Down        key.Binding
	PrevPage    key.Binding
	NextPage    key.Binding
	JumpPage    key.Binding
	NextColumn  key.Binding
	PrevColumn  key.Binding
	Sort        key.Binding
	HideColumn  key.Binding
	ShowColumns key.Binding
	Search      key.Binding
	ClearSearch key.Binding
	Settings    key.Binding
	Filters     key.Binding
	ClearFilter key.Binding
	FocusNext   key.Binding
	Help        key.Binding
	Quit        key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "down"),
		),
		PrevPage: key.NewBinding(
			key.WithKeys("h", "left", "["),
			key.WithHelp("h/←", "prev page"),
		),
		NextPage: key.NewBinding(
			key.WithKeys("l", "right", "]"),
			key.WithHelp("l/→", "next page"),
		),
		JumpPage: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "go to page"),
		),
		NextColumn: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next col"),
		),
		PrevColumn: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev col"),
		),
		Sort: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "sort col"),
		),
		HideColumn: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "hide col"),
		),
		ShowColumns: key.NewBinding(
			key.WithKeys("C"),
			key.WithHelp("C", "show cols"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		ClearSearch: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "clear search"),
		),
		Settings: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "columns"),
		),
		Filters: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "filters"),
		),
		ClearFilter: key.NewBinding(
			key.WithKeys("X"),
			key.WithHelp("X", "clear filters"),
		),
		FocusNext: key.NewBinding(
			key.WithKeys("ctrl+o"),
			key.WithHelp("ctrl+o", "switch panel"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// PanelKeyMap defines keybindings shared by the search box and sidebars.
type PanelKeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Toggle    key.Binding
	ShowAll   key.Binding
	Clear     key.Binding
	Close     key.Binding
	Done      key.Binding
	FocusNext key.Binding
}

// DefaultPanelKeyMap returns the default panel keybindings.
func DefaultPanelKeyMap() PanelKeyMap {
	return PanelKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "shift+tab"),
			key.WithHelp("↑", "prev"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "tab"),
			key.WithHelp("↓", "next"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "toggle"),
		),
		ShowAll: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "show all"),
		),
		Clear: key.NewBinding(
			key.WithKeys("ctrl+x"),
			key.WithHelp("ctrl+x", "clear filters"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
		Done: key.NewBinding(
			key.WithKeys("esc", "enter"),
			key.WithHelp("enter/esc", "done"),
		),
		FocusNext: key.NewBinding(
			key.WithKeys("ctrl+o"),
			key.WithHelp("ctrl+o", "switch panel"),
		),
	}
}

// keyHelp adapts a set of bindings to help.KeyMap.
type keyHelp struct {
	short []key.Binding
	full  [][]key.Binding
}

func (h keyHelp) ShortHelp() []key.Binding  { return h.short }
func (h keyHelp) FullHelp() [][]key.Binding { return h.full }

// helpFor returns the bindings that apply to the focused area.
func helpFor(focus model.Focus, k KeyMap, p PanelKeyMap) keyHelp {
	switch focus {
	case model.FocusSearch:
		return keyHelp{
			short: []key.Binding{p.Done},
			full:  [][]key.Binding{{p.Done}},
		}
	case model.FocusSettings:
		return keyHelp{
			short: []key.Binding{p.Up, p.Down, p.Toggle, p.ShowAll, p.Close, p.FocusNext},
			full:  [][]key.Binding{{p.Up, p.Down}, {p.Toggle, p.ShowAll}, {p.Close, p.FocusNext}},
		}
	case model.FocusFilters:
		return keyHelp{
			short: []key.Binding{p.Up, p.Down, p.Clear, p.Close, p.FocusNext},
			full:  [][]key.Binding{{p.Up, p.Down}, {p.Clear}, {p.Close, p.FocusNext}},
		}
	default:
		return keyHelp{
			short: []key.Binding{k.Search, k.Sort, k.NextColumn, k.PrevPage, k.NextPage, k.Settings, k.Filters, k.Help, k.Quit},
			full: [][]key.Binding{
				{k.Up, k.Down, k.PrevPage, k.NextPage, k.JumpPage},
				{k.NextColumn, k.PrevColumn, k.Sort, k.HideColumn, k.ShowColumns},
				{k.Search, k.ClearSearch, k.Filters, k.ClearFilter},
				{k.Settings, k.FocusNext, k.Help, k.Quit},
			},
		}
	}
}
