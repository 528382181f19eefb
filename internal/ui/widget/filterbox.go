package widget

import (
	"github.com/atomicstack/sbbrowse/internal/theme"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Filter names a package filter.
type Filter string

const (
	FilterAll           Filter = "All"
	FilterInstalled     Filter = "Installed"
	FilterUpgradable    Filter = "Upgradable"
	FilterTagged        Filter = "Tagged"
	FilterBlacklisted   Filter = "Blacklisted"
	FilterNonDependency Filter = "Non-dependencies"
)

// Filters lists every filter in display order.
var Filters = []Filter{FilterAll, FilterInstalled, FilterUpgradable, FilterTagged, FilterBlacklisted, FilterNonDependency}

// FilterBox is a group of mutually exclusive filter checkboxes.
type FilterBox struct {
	*InputBox
	toggles []*ToggleInput
}

// NewFilterBox returns the dialog with current checked.
func NewFilterBox(current Filter, styles *theme.Styles) *FilterBox {
	toggles := make([]*ToggleInput, len(Filters))
	items := make([]InputItem, len(Filters))
	for i, f := range Filters {
		toggles[i] = NewToggleInput(string(f), styles)
		items[i] = toggles[i]
	}
	b := &FilterBox{
		InputBox: NewInputBox("Select filter", "Space: Check | Enter: Apply | Esc: Cancel", styles, items...),
		toggles:  toggles,
	}
	b.check(b.index(current))
	b.setFocus(b.index(current))
	return b
}

func (b *FilterBox) index(f Filter) int {
	for i, candidate := range Filters {
		if candidate == f {
			return i
		}
	}
	return 0
}

func (b *FilterBox) check(idx int) {
	for i, t := range b.toggles {
		t.SetEnabled(i == idx)
	}
}

// Selected returns the checked filter.
func (b *FilterBox) Selected() Filter {
	for i, t := range b.toggles {
		if t.Enabled() {
			return Filters[i]
		}
	}
	return FilterAll
}

// HandleKey checks the focused filter on Space and unchecks the rest. Enter
// confirms with the checked filter as the value.
func (b *FilterBox) HandleKey(msg tea.KeyMsg) Result {
	if key.Matches(msg, Keys.Toggle) {
		b.check(b.Focus())
		return none()
	}
	res := b.InputBox.HandleKey(msg)
	if res.Signal == SignalConfirm {
		res.Value = string(b.Selected())
	}
	return res
}

// HandleMouse focuses and checks the clicked filter.
func (b *FilterBox) HandleMouse(e MouseEvent) Result {
	res := b.InputBox.HandleMouse(e)
	if e.Pressed(tea.MouseButtonLeft) {
		idx := e.Y - frameHeaderRows - 1
		if idx >= 0 && idx < len(b.toggles) {
			b.check(idx)
		}
	}
	return res
}
