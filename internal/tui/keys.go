package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines key bindings for the editor
type keyMap struct {
	Next      key.Binding
	Prev      key.Binding
	Submit    key.Binding
	Clear     key.Binding
	Press     key.Binding
	Up        key.Binding
	Down      key.Binding
	Edit      key.Binding
	Delete    key.Binding
	Help      key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Next: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous"),
		),
		Submit: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "add/save"),
		),
		Clear: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "clear form"),
		),
		Press: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "press"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e", "enter"),
			key.WithHelp("e", "edit"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d", "x", "delete"),
			key.WithHelp("d", "delete"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// bindingSet is the subset of bindings that applies to the focused control.
type bindingSet struct {
	short []key.Binding
	full  [][]key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (b bindingSet) ShortHelp() []key.Binding { return b.short }

// FullHelp returns keybindings for the expanded help view
func (b bindingSet) FullHelp() [][]key.Binding { return b.full }

// helpFor returns the bindings shown in the footer for a focus position.
func (k keyMap) helpFor(f Focus) bindingSet {
	form := []key.Binding{k.Submit, k.Clear, k.ForceQuit}
	switch f {
	case FocusList:
		return bindingSet{
			short: []key.Binding{k.Up, k.Down, k.Edit, k.Delete, k.Next, k.Quit},
			full: [][]key.Binding{
				{k.Up, k.Down, k.Edit, k.Delete},
				{k.Next, k.Prev, k.Help, k.Quit},
				form,
			},
		}
	case FocusPrimary, FocusClear:
		return bindingSet{
			short: []key.Binding{k.Press, k.Next, k.Prev, k.Help},
			full: [][]key.Binding{
				{k.Press, k.Next, k.Prev, k.Help},
				form,
			},
		}
	default:
		return bindingSet{
			short: []key.Binding{k.Next, k.Submit, k.Clear, k.ForceQuit},
			full: [][]key.Binding{
				{k.Next, k.Prev},
				form,
			},
		}
	}
}
