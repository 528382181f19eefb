package state

// RedrawScope names the minimal region a widget must repaint after a state
// change.
type RedrawScope int

const (
	RedrawNone RedrawScope = iota
	// RedrawChanged touches only the previously and newly highlighted rows.
	RedrawChanged
	RedrawAll
)

func (s RedrawScope) String() string {
	switch s {
	case RedrawChanged:
		return "changed"
	case RedrawAll:
		return "all"
	default:
		return "none"
	}
}

// Movement is the outcome of a navigation operation.
type Movement int

const (
	// MoveNone means the highlight was already at the boundary.
	MoveNone Movement = iota
	// MoveWithin means the highlight moved inside the current viewport.
	MoveWithin
	// MoveScrolled means the viewport itself moved.
	MoveScrolled
)

// Scrolled reports whether the viewport moved.
func (m Movement) Scrolled() bool { return m == MoveScrolled }

// Moved reports whether anything changed.
func (m Movement) Moved() bool { return m != MoveNone }

func (m Movement) String() string {
	switch m {
	case MoveWithin:
		return "within"
	case MoveScrolled:
		return "scrolled"
	default:
		return "none"
	}
}

// ListBox is the viewport/highlight engine shared by every list widget. It
// owns its items by value and keeps the highlighted row inside the window of
// visible rows.
type ListBox struct {
	items        []ListItem
	highlight    int
	firstVisible int
	height       int
	reservedRows int
	headerRows   int
	activated    bool
	redraw       RedrawScope
	dirty        []int
}

// NewListBox returns an empty list box.
func NewListBox() *ListBox {
	return &ListBox{highlight: -1, redraw: RedrawAll}
}

// Len returns the number of items.
func (l *ListBox) Len() int { return len(l.items) }

// Items exposes the items in display order. Callers must not retain the slice
// across mutations.
func (l *ListBox) Items() []ListItem { return l.items }

// Item returns the item at idx.
func (l *ListBox) Item(idx int) (ListItem, bool) {
	if idx < 0 || idx >= len(l.items) {
		return ListItem{}, false
	}
	return l.items[idx], true
}

// Highlight returns the highlighted index, or -1 when the list is empty.
func (l *ListBox) Highlight() int { return l.highlight }

// HighlightedItem returns the highlighted item.
func (l *ListBox) HighlightedItem() (ListItem, bool) {
	return l.Item(l.highlight)
}

// FirstVisible returns the index of the first rendered item.
func (l *ListBox) FirstVisible() int { return l.firstVisible }

// Height returns the window height the engine was sized for.
func (l *ListBox) Height() int { return l.height }

// HeaderRows returns the number of fixed rows above the item region.
func (l *ListBox) HeaderRows() int { return l.headerRows }

// VisibleRows is the number of item rows inside the window.
func (l *ListBox) VisibleRows() int {
	rows := l.height - l.reservedRows - l.headerRows
	if rows < 1 {
		return 1
	}
	return rows
}

// Redraw returns the pending redraw scope.
func (l *ListBox) Redraw() RedrawScope { return l.redraw }

// SetRedraw raises the pending redraw scope. It never lowers it; use
// ResetRedraw once the widget has repainted.
func (l *ListBox) SetRedraw(scope RedrawScope) {
	if scope > l.redraw {
		l.redraw = scope
	}
}

// DirtyRows lists the item indexes touched since the last repaint. Only
// meaningful when Redraw returns RedrawChanged.
func (l *ListBox) DirtyRows() []int { return l.dirty }

// ResetRedraw marks the pending redraw as done.
func (l *ListBox) ResetRedraw() {
	l.redraw = RedrawNone
	l.dirty = l.dirty[:0]
}

func (l *ListBox) markDirty(rows ...int) {
	for _, row := range rows {
		if row >= 0 {
			l.dirty = append(l.dirty, row)
		}
	}
}

// Activated reports whether the list has keyboard focus.
func (l *ListBox) Activated() bool { return l.activated }

// SetActivated changes focus; every row's highlight colour changes.
func (l *ListBox) SetActivated(active bool) {
	if l.activated == active {
		return
	}
	l.activated = active
	l.SetRedraw(RedrawAll)
}

// SetHeight resizes the window and restores the viewport invariants.
func (l *ListBox) SetHeight(height int) {
	l.height = height
	l.clampView()
	l.SetRedraw(RedrawAll)
}

// SetReservedRows sets the number of non-item chrome rows.
func (l *ListBox) SetReservedRows(rows int) {
	if rows < 0 {
		rows = 0
	}
	l.reservedRows = rows
	l.clampView()
	l.SetRedraw(RedrawAll)
}

// SetHeaderRows sets the number of fixed rows before the item region.
func (l *ListBox) SetHeaderRows(rows int) {
	if rows < 0 {
		rows = 0
	}
	l.headerRows = rows
	l.clampView()
	l.SetRedraw(RedrawAll)
}

// SetItems replaces the items and highlights the first one.
func (l *ListBox) SetItems(items []ListItem) {
	l.items = CloneItems(items)
	l.firstVisible = 0
	if len(l.items) == 0 {
		l.highlight = -1
	} else {
		l.highlight = 0
	}
	l.SetRedraw(RedrawAll)
}

// AddItem appends an item.
func (l *ListBox) AddItem(item ListItem) {
	l.items = append(l.items, CloneItems([]ListItem{item})...)
	if l.highlight < 0 {
		l.highlight = 0
	}
	l.SetRedraw(RedrawAll)
}

// Clear discards every item and resets the viewport.
func (l *ListBox) Clear() {
	l.items = nil
	l.highlight = -1
	l.firstVisible = 0
	l.SetRedraw(RedrawAll)
}

// HighlightNext moves the highlight down one row without wrapping.
func (l *ListBox) HighlightNext() Movement {
	if len(l.items) == 0 || l.highlight >= len(l.items)-1 {
		return MoveNone
	}
	oldH, oldF := l.highlight, l.firstVisible
	l.highlight++
	if l.highlight > l.firstVisible+l.VisibleRows()-1 {
		l.firstVisible++
	}
	return l.settle(oldH, oldF)
}

// HighlightPrevious moves the highlight up one row without wrapping.
func (l *ListBox) HighlightPrevious() Movement {
	if len(l.items) == 0 || l.highlight <= 0 {
		return MoveNone
	}
	oldH, oldF := l.highlight, l.firstVisible
	l.highlight--
	if l.highlight < l.firstVisible {
		l.firstVisible--
	}
	return l.settle(oldH, oldF)
}

// HighlightNextPage moves the highlight and the viewport down one page.
func (l *ListBox) HighlightNextPage() Movement {
	if len(l.items) == 0 {
		return MoveNone
	}
	oldH, oldF := l.highlight, l.firstVisible
	rows := l.VisibleRows()
	l.highlight = min(l.highlight+rows, len(l.items)-1)
	l.firstVisible = min(l.firstVisible+rows, l.maxFirst())
	l.clampView()
	return l.settle(oldH, oldF)
}

// HighlightPreviousPage moves the highlight and the viewport up one page.
func (l *ListBox) HighlightPreviousPage() Movement {
	if len(l.items) == 0 {
		return MoveNone
	}
	oldH, oldF := l.highlight, l.firstVisible
	rows := l.VisibleRows()
	l.highlight = max(l.highlight-rows, 0)
	l.firstVisible = max(l.firstVisible-rows, 0)
	l.clampView()
	return l.settle(oldH, oldF)
}

// HighlightFirst jumps to the first item.
func (l *ListBox) HighlightFirst() Movement {
	if len(l.items) == 0 {
		return MoveNone
	}
	oldH, oldF := l.highlight, l.firstVisible
	l.highlight = 0
	l.firstVisible = 0
	return l.settle(oldH, oldF)
}

// HighlightLast jumps to the last item and shows the last full page.
func (l *ListBox) HighlightLast() Movement {
	if len(l.items) == 0 {
		return MoveNone
	}
	oldH, oldF := l.highlight, l.firstVisible
	l.highlight = len(l.items) - 1
	l.firstVisible = l.maxFirst()
	return l.settle(oldH, oldF)
}

// SetHighlight highlights idx, scrolling only as far as needed.
func (l *ListBox) SetHighlight(idx int) Movement {
	if len(l.items) == 0 {
		return MoveNone
	}
	oldH, oldF := l.highlight, l.firstVisible
	l.highlight = idx
	l.clampView()
	return l.settle(oldH, oldF)
}

// HitTest maps a pane-relative row to an item. The first hit on a row
// highlights it; a hit on the already highlighted row reports confirm.
func (l *ListBox) HitTest(row int) (idx int, confirm bool, ok bool) {
	if len(l.items) == 0 {
		return -1, false, false
	}
	offset := row - l.headerRows
	if offset < 0 || offset >= l.VisibleRows() {
		return -1, false, false
	}
	idx = l.firstVisible + offset
	if idx >= len(l.items) {
		return -1, false, false
	}
	if idx == l.highlight {
		return idx, true, true
	}
	l.SetHighlight(idx)
	return idx, false, true
}

// ToggleTag flips the tag on the highlighted item.
func (l *ListBox) ToggleTag() (ListItem, bool) {
	if l.highlight < 0 {
		return ListItem{}, false
	}
	l.items[l.highlight].Tagged = !l.items[l.highlight].Tagged
	l.markDirty(l.highlight)
	l.SetRedraw(RedrawChanged)
	return l.items[l.highlight], true
}

// SetTagged sets the tag on the item at idx.
func (l *ListBox) SetTagged(idx int, tagged bool) bool {
	if idx < 0 || idx >= len(l.items) {
		return false
	}
	if l.items[idx].Tagged == tagged {
		return false
	}
	l.items[idx].Tagged = tagged
	l.SetRedraw(RedrawAll)
	return true
}

// TaggedItems returns the tagged items in display order.
func (l *ListBox) TaggedItems() []ListItem {
	var tagged []ListItem
	for _, item := range l.items {
		if item.Tagged {
			tagged = append(tagged, item)
		}
	}
	return tagged
}

// IndexOf returns the index of the first item with the given name.
func (l *ListBox) IndexOf(name string) int {
	for idx, item := range l.items {
		if item.Name == name {
			return idx
		}
	}
	return -1
}

func (l *ListBox) maxFirst() int {
	n := len(l.items) - l.VisibleRows()
	if n < 0 {
		return 0
	}
	return n
}

func (l *ListBox) clampView() {
	if len(l.items) == 0 {
		l.highlight = -1
		l.firstVisible = 0
		return
	}
	if l.highlight < 0 {
		l.highlight = 0
	}
	if l.highlight >= len(l.items) {
		l.highlight = len(l.items) - 1
	}
	if l.firstVisible > l.maxFirst() {
		l.firstVisible = l.maxFirst()
	}
	if l.firstVisible < 0 {
		l.firstVisible = 0
	}
	if l.highlight < l.firstVisible {
		l.firstVisible = l.highlight
	}
	if upper := l.firstVisible + l.VisibleRows() - 1; l.highlight > upper {
		l.firstVisible = l.highlight - l.VisibleRows() + 1
	}
}

func (l *ListBox) settle(oldHighlight, oldFirst int) Movement {
	switch {
	case l.firstVisible != oldFirst:
		l.SetRedraw(RedrawAll)
		return MoveScrolled
	case l.highlight != oldHighlight:
		l.markDirty(oldHighlight, l.highlight)
		l.SetRedraw(RedrawChanged)
		return MoveWithin
	default:
		return MoveNone
	}
}
