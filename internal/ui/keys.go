package ui

import (
	"github.com/charmbracelet/bubbles/key"
)

// keyMap holds the main window bindings. Pane navigation keys belong to the
// widgets.
type keyMap struct {
	Quit        key.Binding
	ForceQuit   key.Binding
	SwitchPane  key.Binding
	Left        key.Binding
	Right       key.Binding
	Filter      key.Binding
	Search      key.Binding
	QuickSearch key.Binding
	Layout      key.Binding
	Sync        key.Binding
	Tag         key.Binding
	TagAll      key.Binding
	Install     key.Binding
	Upgrade     key.Binding
	Remove      key.Binding
	Reinstall   key.Binding
	Help        key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit:        key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQuit:   key.NewBinding(key.WithKeys("ctrl+c")),
		SwitchPane:  key.NewBinding(key.WithKeys("tab", "shift+tab"), key.WithHelp("tab", "switch list")),
		Left:        key.NewBinding(key.WithKeys("left")),
		Right:       key.NewBinding(key.WithKeys("right")),
		Filter:      key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "filter")),
		Search:      key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "search")),
		QuickSearch: key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "quick search")),
		Layout:      key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "toggle layout")),
		Sync:        key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "sync repository")),
		Tag:         key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "tag")),
		TagAll:      key.NewBinding(key.WithKeys("T"), key.WithHelp("T", "tag all")),
		Install:     key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "install tagged")),
		Upgrade:     key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "upgrade tagged")),
		Remove:      key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "remove tagged")),
		Reinstall:   key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "reinstall tagged")),
		Help:        key.NewBinding(key.WithKeys("?", "h"), key.WithHelp("?", "help")),
	}
}

// ShortHelp feeds the footer line.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.SwitchPane, k.Filter, k.Search, k.Tag, k.Help, k.Quit}
}

// FullHelp feeds the help window, one column per group.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.SwitchPane, k.QuickSearch, k.Filter, k.Search, k.Layout},
		{k.Tag, k.TagAll, k.Install, k.Upgrade, k.Remove, k.Reinstall},
		{k.Sync, k.Help, k.Quit},
	}
}
