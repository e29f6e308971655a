package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the key bindings for the list screen.
type keyMap struct {
	add      key.Binding
	nextCat  key.Binding
	prevCat  key.Binding
	picker   key.Binding
	up       key.Binding
	down     key.Binding
	del      key.Binding
	delEmpty key.Binding // only while the input is empty
	grab     key.Binding
	cancel   key.Binding
	yes      key.Binding
	no       key.Binding
	dismiss  key.Binding
	quit     key.Binding
	showHelp key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		add: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "add"),
		),
		nextCat: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next category"),
		),
		prevCat: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev category"),
		),
		picker: key.NewBinding(
			key.WithKeys("ctrl+k"),
			key.WithHelp("ctrl+k", "pick category"),
		),
		up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "up"),
		),
		down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "down"),
		),
		del: key.NewBinding(
			key.WithKeys("ctrl+d"),
			key.WithHelp("ctrl+d", "delete"),
		),
		delEmpty: key.NewBinding(
			key.WithKeys("delete"),
			key.WithHelp("del", "delete when input is empty"),
		),
		grab: key.NewBinding(
			key.WithKeys("ctrl+g"),
			key.WithHelp("ctrl+g", "grab/drop"),
		),
		cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		yes: key.NewBinding(
			key.WithKeys("y", "Y", "enter"),
			key.WithHelp("y", "yes"),
		),
		no: key.NewBinding(
			key.WithKeys("n", "N", "esc"),
			key.WithHelp("n", "no"),
		),
		dismiss: key.NewBinding(
			key.WithKeys("enter", "esc", " "),
			key.WithHelp("enter", "ok"),
		),
		quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		showHelp: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("f1", "more"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.add, k.nextCat, k.del, k.grab, k.quit, k.showHelp}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.add, k.nextCat, k.prevCat, k.picker},
		{k.up, k.down, k.del, k.delEmpty},
		{k.grab, k.cancel, k.quit},
	}
}
