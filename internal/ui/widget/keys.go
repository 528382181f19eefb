package widget

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the bindings shared by all widgets.
type KeyMap struct {
	Up            key.Binding
	Down          key.Binding
	PageUp        key.Binding
	PageDown      key.Binding
	Home          key.Binding
	End           key.Binding
	Left          key.Binding
	Right         key.Binding
	Confirm       key.Binding
	Cancel        key.Binding
	FocusNext     key.Binding
	FocusPrevious key.Binding
	Toggle        key.Binding
	Backspace     key.Binding
	Delete        key.Binding
}

// Keys is the default key map.
var Keys = DefaultKeyMap()

// DefaultKeyMap returns the standard widget bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:            key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "previous")),
		Down:          key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "next")),
		PageUp:        key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "page up")),
		PageDown:      key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "page down")),
		Home:          key.NewBinding(key.WithKeys("home"), key.WithHelp("home", "first")),
		End:           key.NewBinding(key.WithKeys("end"), key.WithHelp("end", "last")),
		Left:          key.NewBinding(key.WithKeys("left")),
		Right:         key.NewBinding(key.WithKeys("right")),
		Confirm:       key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		Cancel:        key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		FocusNext:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		FocusPrevious: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous field")),
		Toggle:        key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle")),
		Backspace:     key.NewBinding(key.WithKeys("backspace", "ctrl+h")),
		Delete:        key.NewBinding(key.WithKeys("delete", "ctrl+d")),
	}
}
