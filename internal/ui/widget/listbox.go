package widget

import (
	"strings"

	"github.com/atomicstack/sbbrowse/internal/format/table"
	"github.com/atomicstack/sbbrowse/internal/logging/events"
	"github.com/atomicstack/sbbrowse/internal/theme"
	"github.com/atomicstack/sbbrowse/internal/ui/state"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ListBox is a framed, scrollable list. Navigation state lives in the
// embedded engine; the widget renders it and maps input onto it.
type ListBox struct {
	*state.ListBox

	title   string
	info    string
	columns [2]string
	width   int
	render RowRenderer
	styles *theme.Styles
	keys   KeyMap

	cache   map[int]string
	renders int
}

// NewListBox builds an empty list titled title. A nil renderer shows item
// names; nil styles use the default theme.
func NewListBox(title string, render RowRenderer, styles *theme.Styles) *ListBox {
	if render == nil {
		render = PlainRows
	}
	l := &ListBox{
		ListBox: state.NewListBox(),
		title:   title,
		render:  render,
		styles:  stylesOrDefault(styles),
		keys:    Keys,
		cache:   make(map[int]string),
	}
	l.SetHeaderRows(frameHeaderRows)
	l.SetReservedRows(frameFooterRows)
	return l
}

// Title returns the list title.
func (l *ListBox) Title() string { return l.title }

// SetTitle replaces the title.
func (l *ListBox) SetTitle(title string) {
	l.title = title
	l.SetRedraw(state.RedrawAll)
}

// Info returns the footer hint.
func (l *ListBox) Info() string { return l.info }

// SetInfo replaces the footer hint.
func (l *ListBox) SetInfo(info string) {
	l.info = info
	l.SetRedraw(state.RedrawAll)
}

// SetColumnHeader shows a header row above the items with left flush left
// and right flush right. Two empty labels remove it.
func (l *ListBox) SetColumnHeader(left, right string) {
	l.columns = [2]string{left, right}
	rows := frameHeaderRows
	if l.hasColumns() {
		rows++
	}
	l.SetHeaderRows(rows)
}

func (l *ListBox) hasColumns() bool { return l.columns != [2]string{} }

// Width returns the width the list was laid out for.
func (l *ListBox) Width() int { return l.width }

// HandleKey maps navigation keys onto the engine. Enter confirms the
// highlighted item; an empty list ignores it.
func (l *ListBox) HandleKey(msg tea.KeyMsg) Result {
	switch {
	case key.Matches(msg, l.keys.Up):
		l.trace(l.HighlightPrevious())
	case key.Matches(msg, l.keys.Down):
		l.trace(l.HighlightNext())
	case key.Matches(msg, l.keys.PageUp):
		l.trace(l.HighlightPreviousPage())
	case key.Matches(msg, l.keys.PageDown):
		l.trace(l.HighlightNextPage())
	case key.Matches(msg, l.keys.Home):
		l.trace(l.HighlightFirst())
	case key.Matches(msg, l.keys.End):
		l.trace(l.HighlightLast())
	case key.Matches(msg, l.keys.Confirm):
		return l.confirmHighlighted()
	case key.Matches(msg, l.keys.Cancel):
		return cancel()
	}
	return none()
}

// HandleMouse highlights the clicked row and confirms on a second click. The
// wheel scrolls one row at a time.
func (l *ListBox) HandleMouse(e MouseEvent) Result {
	switch {
	case e.Pressed(tea.MouseButtonLeft):
		if e.X <= 0 || e.X >= l.width-1 {
			return none()
		}
		_, again, ok := l.HitTest(e.Y)
		if !ok {
			return none()
		}
		if again {
			return l.confirmHighlighted()
		}
		l.trace(state.MoveWithin)
	case e.Button == tea.MouseButtonWheelUp:
		l.trace(l.HighlightPrevious())
	case e.Button == tea.MouseButtonWheelDown:
		l.trace(l.HighlightNext())
	}
	return none()
}

func (l *ListBox) confirmHighlighted() Result {
	item, ok := l.HighlightedItem()
	if !ok {
		return none()
	}
	return confirm(&item, item.Name)
}

func (l *ListBox) trace(mv state.Movement) {
	if mv.Moved() {
		events.List.Move(l.title, l.Highlight(), l.FirstVisible(), mv.String())
	}
}

// Resize lays the list out in width x height cells.
func (l *ListBox) Resize(width, height int) Result {
	l.width = width
	l.SetHeight(height)
	return Result{Signal: SignalResize, Size: Size{Width: width, Height: height}}
}

// MinimumSize is the chrome plus one item row, wide enough for the title.
func (l *ListBox) MinimumSize() (height, width int) {
	height = l.HeaderRows() + frameFooterRows + 1
	width = max(lipgloss.Width(l.title), lipgloss.Width(l.info), 8) + 4
	return height, width
}

// PreferredSize shows every item without scrolling.
func (l *ListBox) PreferredSize() (height, width int) {
	minH, minW := l.MinimumSize()
	height = max(l.HeaderRows()+frameFooterRows+l.Len(), minH)
	width = minW
	for _, item := range l.Items() {
		width = max(width, lipgloss.Width(item.Name)+6)
	}
	return height, width
}

// View renders the frame. Rows are cached between calls and only the rows
// the engine marked dirty are rendered again.
func (l *ListBox) View() string {
	l.refreshCache()
	f := newFrame(l.width, l.styles)
	lines := make([]string, 0, l.Height())
	lines = append(lines, f.top(), f.centered(l.title, l.styles.Title), f.divider())
	if l.hasColumns() {
		header := table.Columns(l.columns[0], l.columns[1], f.inner())
		lines = append(lines, f.row(render(l.styles.Header, header)))
	}
	first := l.FirstVisible()
	for row := 0; row < l.VisibleRows(); row++ {
		if text, ok := l.cache[first+row]; ok {
			lines = append(lines, f.row(text))
			continue
		}
		lines = append(lines, f.row(""))
	}
	lines = append(lines, f.divider(), f.row(render(l.styles.Info, fit(l.info, f.inner()))), f.bottom())
	return strings.Join(lines, "\n")
}

func (l *ListBox) refreshCache() {
	switch l.Redraw() {
	case state.RedrawAll:
		clear(l.cache)
	case state.RedrawChanged:
		for _, idx := range l.DirtyRows() {
			delete(l.cache, idx)
		}
	}
	l.ResetRedraw()
	first := l.FirstVisible()
	last := min(first+l.VisibleRows(), l.Len())
	for idx := first; idx < last; idx++ {
		if _, ok := l.cache[idx]; !ok {
			l.cache[idx] = l.renderRow(idx)
		}
	}
}

func (l *ListBox) renderRow(idx int) string {
	l.renders++
	inner := max(l.width-2, 0)
	item := l.Items()[idx]
	row := l.render(item, inner)

	style := lipgloss.NewStyle()
	if l.styles.Item != nil {
		style = *l.styles.Item
	}
	if row.Tagged && l.styles.Tagged != nil {
		style = *l.styles.Tagged
	}
	if idx == l.Highlight() {
		hl := l.styles.HighlightInactive
		if l.Activated() {
			hl = l.styles.HighlightActive
		}
		if hl != nil {
			style = *hl
		}
	}
	if row.Bold {
		style = style.Bold(true)
	}

	text := []rune(fit(row.Text, inner))
	if row.Hotkey < 0 || row.Hotkey >= len(text) {
		return style.Render(string(text))
	}
	hot := style.Underline(true)
	if l.styles.Hotkey != nil {
		hot = style.Inherit(*l.styles.Hotkey)
	}
	return style.Render(string(text[:row.Hotkey])) +
		hot.Render(string(text[row.Hotkey])) +
		style.Render(string(text[row.Hotkey+1:]))
}
