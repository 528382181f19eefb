package state

import "unicode"

// TextEntry is the single-line editing engine behind text inputs. It tracks a
// rune buffer, the cursor position and the first visible column so the
// cursor always renders inside a field of the configured width.
type TextEntry struct {
	buf      []rune
	cursor   int
	firstCol int
	width    int
}

// NewTextEntry returns an empty entry rendered in width columns.
func NewTextEntry(width int) *TextEntry {
	e := &TextEntry{}
	e.SetWidth(width)
	return e
}

// Text returns the buffer contents.
func (e *TextEntry) Text() string { return string(e.buf) }

// Len returns the buffer length in runes.
func (e *TextEntry) Len() int { return len(e.buf) }

// Cursor returns the cursor position in runes.
func (e *TextEntry) Cursor() int { return e.cursor }

// FirstCol returns the first rune rendered in the field.
func (e *TextEntry) FirstCol() int { return e.firstCol }

// Width returns the field width in columns.
func (e *TextEntry) Width() int { return e.width }

// CursorCol returns the cursor's column within the field.
func (e *TextEntry) CursorCol() int { return e.cursor - e.firstCol }

// Visible returns the slice of the buffer currently inside the field.
func (e *TextEntry) Visible() string {
	end := min(e.firstCol+e.width, len(e.buf))
	if e.firstCol >= end {
		return ""
	}
	return string(e.buf[e.firstCol:end])
}

// SetWidth changes the field width and re-clamps the viewport.
func (e *TextEntry) SetWidth(width int) bool {
	if width < 1 {
		width = 1
	}
	e.width = width
	return e.reclamp()
}

// SetText replaces the buffer and moves the cursor to the end.
func (e *TextEntry) SetText(text string) bool {
	e.buf = []rune(text)
	e.cursor = len(e.buf)
	e.reclamp()
	return true
}

// Clear empties the buffer.
func (e *TextEntry) Clear() bool {
	changed := len(e.buf) > 0
	e.buf = nil
	e.cursor = 0
	e.firstCol = 0
	return changed
}

// Insert adds r at the cursor and advances the cursor.
func (e *TextEntry) Insert(r rune) bool {
	if unicode.IsControl(r) {
		return false
	}
	e.buf = append(e.buf, 0)
	copy(e.buf[e.cursor+1:], e.buf[e.cursor:])
	e.buf[e.cursor] = r
	e.cursor++
	e.reclamp()
	return true
}

// Backspace removes the rune before the cursor.
func (e *TextEntry) Backspace() bool {
	if e.cursor == 0 {
		return false
	}
	e.buf = append(e.buf[:e.cursor-1], e.buf[e.cursor:]...)
	e.cursor--
	e.reclamp()
	return true
}

// Delete removes the rune under the cursor; the cursor stays put.
func (e *TextEntry) Delete() bool {
	if e.cursor >= len(e.buf) {
		return false
	}
	e.buf = append(e.buf[:e.cursor], e.buf[e.cursor+1:]...)
	e.reclamp()
	return true
}

// Left moves the cursor one rune left. The result reports whether the
// visible slice of the buffer changed.
func (e *TextEntry) Left() bool {
	if e.cursor == 0 {
		return false
	}
	e.cursor--
	return e.reclamp()
}

// Right moves the cursor one rune right.
func (e *TextEntry) Right() bool {
	if e.cursor >= len(e.buf) {
		return false
	}
	e.cursor++
	return e.reclamp()
}

// Home moves the cursor to the start.
func (e *TextEntry) Home() bool {
	e.cursor = 0
	return e.reclamp()
}

// End moves the cursor past the last rune.
func (e *TextEntry) End() bool {
	e.cursor = len(e.buf)
	return e.reclamp()
}

// reclamp recomputes the first visible column and reports whether it moved.
func (e *TextEntry) reclamp() bool {
	before := e.firstCol
	switch {
	case len(e.buf) < e.width:
		e.firstCol = 0
	case e.cursor-e.firstCol > e.width-1:
		e.firstCol = e.cursor - e.width + 1
	case e.cursor < e.firstCol:
		e.firstCol = e.cursor
	}
	return before != e.firstCol
}
