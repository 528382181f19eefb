package widget

import (
	"github.com/atomicstack/sbbrowse/internal/theme"
	"github.com/atomicstack/sbbrowse/internal/ui/state"
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// InputItem is a field hosted by an InputBox.
type InputItem interface {
	HandleKey(tea.KeyMsg) Result
	SetFocused(bool)
	Focused() bool
	// Line renders the field in width cells.
	Line(width int) string
}

// TextInput is a single-line text field. The buffer and cursor survive
// between interactions so a reopened dialog shows the previous text.
type TextInput struct {
	label   string
	entry   *state.TextEntry
	caret   cursor.Model
	focused bool
	styles  *theme.Styles
	keys    KeyMap
}

// NewTextInput returns an empty field with an optional label.
func NewTextInput(label string, styles *theme.Styles) *TextInput {
	styles = stylesOrDefault(styles)
	c := cursor.New()
	c.SetMode(cursor.CursorStatic)
	if styles.Cursor != nil {
		c.Style = *styles.Cursor
	}
	return &TextInput{
		label:  label,
		entry:  state.NewTextEntry(1),
		caret:  c,
		styles: styles,
		keys:   Keys,
	}
}

// Value returns the field contents.
func (t *TextInput) Value() string { return t.entry.Text() }

// SetValue replaces the contents and moves the cursor to the end.
func (t *TextInput) SetValue(v string) { t.entry.SetText(v) }

// Entry exposes the editing engine.
func (t *TextInput) Entry() *state.TextEntry { return t.entry }

// SetFocused shows or hides the caret.
func (t *TextInput) SetFocused(focused bool) {
	t.focused = focused
	if focused {
		t.caret.Focus()
		return
	}
	t.caret.Blur()
}

// Focused reports whether the field has the caret.
func (t *TextInput) Focused() bool { return t.focused }

// HandleKey edits the buffer. Enter confirms with the text, Esc cancels, Tab
// and Down move focus forward, Shift-Tab and Up move it back.
func (t *TextInput) HandleKey(msg tea.KeyMsg) Result {
	switch {
	case key.Matches(msg, t.keys.Confirm):
		return Result{Signal: SignalConfirm, Value: t.entry.Text()}
	case key.Matches(msg, t.keys.Cancel):
		return cancel()
	case key.Matches(msg, t.keys.FocusNext, t.keys.Down):
		return Result{Signal: SignalFocusNext}
	case key.Matches(msg, t.keys.FocusPrevious, t.keys.Up):
		return Result{Signal: SignalFocusPrevious}
	case key.Matches(msg, t.keys.Backspace):
		t.entry.Backspace()
	case key.Matches(msg, t.keys.Delete):
		t.entry.Delete()
	case key.Matches(msg, t.keys.Left):
		t.entry.Left()
	case key.Matches(msg, t.keys.Right):
		t.entry.Right()
	case key.Matches(msg, t.keys.Home):
		t.entry.Home()
	case key.Matches(msg, t.keys.End):
		t.entry.End()
	case msg.Type == tea.KeySpace:
		t.entry.Insert(' ')
	case msg.Type == tea.KeyRunes && !msg.Alt:
		for _, r := range msg.Runes {
			t.entry.Insert(r)
		}
	}
	return none()
}

// Line renders the label followed by the visible slice of the buffer, with
// the caret drawn over the cursor cell when focused.
func (t *TextInput) Line(width int) string {
	label := ""
	if t.label != "" {
		label = t.label + " "
	}
	t.entry.SetWidth(width - lipgloss.Width(label))
	runes := []rune(t.entry.Visible())
	col := t.entry.CursorCol()
	if !t.focused {
		return label + fit(string(runes), t.entry.Width())
	}
	under := " "
	if col < len(runes) {
		under = string(runes[col])
	}
	t.caret.SetChar(under)
	before := string(runes[:min(col, len(runes))])
	after := ""
	if col+1 < len(runes) {
		after = string(runes[col+1:])
	}
	return label + fit(before+t.caret.View()+after, t.entry.Width())
}
