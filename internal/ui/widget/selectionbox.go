package widget

import (
	"github.com/atomicstack/sbbrowse/internal/theme"
	tea "github.com/charmbracelet/bubbletea"
)

// SelectionBox is a modal single-choice list. Typing an item's hotkey
// selects and confirms it in one step.
type SelectionBox struct {
	*ListBox
}

// NewSelectionBox returns an empty selection dialog.
func NewSelectionBox(title string, styles *theme.Styles) *SelectionBox {
	l := NewListBox(title, PlainRows, styles)
	l.SetInfo("Enter: Ok | Esc: Cancel")
	l.SetActivated(true)
	return &SelectionBox{ListBox: l}
}

// HandleKey adds hotkeys on top of list navigation.
func (s *SelectionBox) HandleKey(msg tea.KeyMsg) Result {
	if msg.Type == tea.KeyRunes && len(msg.Runes) == 1 && !msg.Alt {
		for idx, item := range s.Items() {
			if item.MatchesHotkey(msg.Runes[0]) {
				s.SetHighlight(idx)
				return s.confirmHighlighted()
			}
		}
		return none()
	}
	return s.ListBox.HandleKey(msg)
}
