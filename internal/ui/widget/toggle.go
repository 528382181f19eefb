package widget

import (
	"github.com/atomicstack/sbbrowse/internal/theme"
	"github.com/atomicstack/sbbrowse/internal/ui/state"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// ToggleInput is a labelled checkbox.
type ToggleInput struct {
	label   string
	value   state.ToggleEntry
	focused bool
	styles  *theme.Styles
	keys    KeyMap
}

// NewToggleInput returns an unchecked box.
func NewToggleInput(label string, styles *theme.Styles) *ToggleInput {
	return &ToggleInput{label: label, styles: stylesOrDefault(styles), keys: Keys}
}

func (t *ToggleInput) Label() string          { return t.label }
func (t *ToggleInput) Enabled() bool          { return t.value.Enabled() }
func (t *ToggleInput) SetEnabled(v bool) bool { return t.value.Set(v) }
func (t *ToggleInput) SetFocused(f bool)      { t.focused = f }
func (t *ToggleInput) Focused() bool          { return t.focused }

// HandleKey flips the box on Space.
func (t *ToggleInput) HandleKey(msg tea.KeyMsg) Result {
	switch {
	case key.Matches(msg, t.keys.Toggle):
		t.value.Toggle()
	case key.Matches(msg, t.keys.Confirm):
		return Result{Signal: SignalConfirm, Value: t.label}
	case key.Matches(msg, t.keys.Cancel):
		return cancel()
	case key.Matches(msg, t.keys.FocusNext, t.keys.Down):
		return Result{Signal: SignalFocusNext}
	case key.Matches(msg, t.keys.FocusPrevious, t.keys.Up):
		return Result{Signal: SignalFocusPrevious}
	}
	return none()
}

// Line renders "[x] label".
func (t *ToggleInput) Line(width int) string {
	box := "[ ] "
	if t.value.Enabled() {
		box = "[x] "
	}
	if t.focused {
		return fit(render(t.styles.HighlightActive, box+t.label), width)
	}
	return fit(box+t.label, width)
}
