package widget

import (
	"strings"

	"github.com/atomicstack/sbbrowse/internal/theme"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// InputBox groups input fields in one frame. Exactly one field has focus;
// focus signals from the fields cycle it in both directions.
type InputBox struct {
	title  string
	info   string
	items  []InputItem
	focus  int
	width  int
	height int
	styles *theme.Styles
}

// NewInputBox returns a dialog hosting items in order. The first item starts
// with focus.
func NewInputBox(title, info string, styles *theme.Styles, items ...InputItem) *InputBox {
	b := &InputBox{title: title, info: info, items: items, styles: stylesOrDefault(styles)}
	b.setFocus(0)
	return b
}

// Title returns the dialog title.
func (b *InputBox) Title() string { return b.title }

// Focus returns the index of the focused field.
func (b *InputBox) Focus() int { return b.focus }

// Items returns the hosted fields.
func (b *InputBox) Items() []InputItem { return b.items }

func (b *InputBox) setFocus(idx int) {
	if len(b.items) == 0 {
		b.focus = 0
		return
	}
	n := len(b.items)
	b.focus = ((idx % n) + n) % n
	for i, item := range b.items {
		item.SetFocused(i == b.focus)
	}
}

// HandleKey forwards the key to the focused field. Focus signals are
// absorbed here; confirm and cancel end the dialog.
func (b *InputBox) HandleKey(msg tea.KeyMsg) Result {
	if len(b.items) == 0 {
		if msg.Type == tea.KeyEsc {
			return cancel()
		}
		return none()
	}
	res := b.items[b.focus].HandleKey(msg)
	switch res.Signal {
	case SignalFocusNext:
		b.setFocus(b.focus + 1)
		return none()
	case SignalFocusPrevious:
		b.setFocus(b.focus - 1)
		return none()
	}
	return res
}

// HandleMouse focuses the clicked field. A click on a focused checkbox
// toggles it.
func (b *InputBox) HandleMouse(e MouseEvent) Result {
	if !e.Pressed(tea.MouseButtonLeft) {
		return none()
	}
	idx := e.Y - frameHeaderRows - 1
	if idx < 0 || idx >= len(b.items) {
		return none()
	}
	if idx == b.focus {
		if t, ok := b.items[idx].(*ToggleInput); ok {
			t.value.Toggle()
		}
		return none()
	}
	b.setFocus(idx)
	return none()
}

// Resize records the box size.
func (b *InputBox) Resize(width, height int) Result {
	b.width = width
	b.height = height
	return Result{Signal: SignalResize, Size: Size{Width: width, Height: height}}
}

// MinimumSize fits the chrome, a blank row above and below the fields, and
// the title.
func (b *InputBox) MinimumSize() (height, width int) {
	height = frameHeaderRows + frameFooterRows + len(b.items) + 2
	width = max(lipgloss.Width(b.title), lipgloss.Width(b.info)) + 4
	return height, max(width, 24)
}

// PreferredSize leaves room for typing.
func (b *InputBox) PreferredSize() (height, width int) {
	height, width = b.MinimumSize()
	return height, max(width, 48)
}

// View renders the fields one per row.
func (b *InputBox) View() string {
	f := newFrame(b.width, b.styles)
	lines := []string{f.top(), f.centered(b.title, b.styles.Title), f.divider(), f.row("")}
	for _, item := range b.items {
		lines = append(lines, f.row(" "+item.Line(f.inner()-2)))
	}
	for len(lines) < b.height-frameFooterRows {
		lines = append(lines, f.row(""))
	}
	lines = append(lines, f.divider(), f.row(render(b.styles.Info, b.info)), f.bottom())
	return strings.Join(lines, "\n")
}
