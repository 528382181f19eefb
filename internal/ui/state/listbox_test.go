package state

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestList(n, height int) *ListBox {
	items := make([]ListItem, n)
	for i := range items {
		items[i] = NewItem(fmt.Sprintf("item-%02d", i))
	}
	l := NewListBox()
	l.SetHeight(height)
	l.SetItems(items)
	l.ResetRedraw()
	return l
}

func assertContained(t *testing.T, l *ListBox) {
	t.Helper()
	if l.Len() == 0 {
		require.Equal(t, -1, l.Highlight())
		require.Equal(t, 0, l.FirstVisible())
		return
	}
	require.GreaterOrEqual(t, l.Highlight(), 0)
	require.Less(t, l.Highlight(), l.Len())
	require.GreaterOrEqual(t, l.FirstVisible(), 0)
	require.LessOrEqual(t, l.FirstVisible(), l.Highlight())
	require.LessOrEqual(t, l.Highlight(), l.FirstVisible()+l.VisibleRows()-1)
	require.LessOrEqual(t, l.FirstVisible(), max(0, l.Len()-l.VisibleRows()))
}

func TestHighlightNextScrollsOneRow(t *testing.T) {
	l := newTestList(10, 3)
	assert.Equal(t, MoveWithin, l.HighlightNext())
	assert.Equal(t, RedrawChanged, l.Redraw())
	assert.ElementsMatch(t, []int{0, 1}, l.DirtyRows())
	l.ResetRedraw()

	assert.Equal(t, MoveWithin, l.HighlightNext())
	assert.Equal(t, MoveScrolled, l.HighlightNext())
	assert.Equal(t, RedrawAll, l.Redraw())
	assert.Equal(t, 3, l.Highlight())
	assert.Equal(t, 1, l.FirstVisible())
}

func TestHighlightClampsAtEnds(t *testing.T) {
	l := newTestList(4, 10)
	assert.Equal(t, MoveNone, l.HighlightPrevious())
	assert.Equal(t, 0, l.Highlight())
	assert.Equal(t, RedrawNone, l.Redraw())

	l.HighlightLast()
	l.ResetRedraw()
	assert.Equal(t, MoveNone, l.HighlightNext())
	assert.False(t, l.HighlightNext().Scrolled())
	assert.Equal(t, 3, l.Highlight())
	assert.Equal(t, RedrawNone, l.Redraw())
}

func TestPagingReportsScrollOnlyWhenViewportMoves(t *testing.T) {
	l := newTestList(12, 5)
	mv := l.HighlightNextPage()
	assert.Equal(t, MoveScrolled, mv)
	assert.Equal(t, 5, l.Highlight())
	assert.Equal(t, 5, l.FirstVisible())

	mv = l.HighlightNextPage()
	assert.Equal(t, MoveScrolled, mv)
	assert.Equal(t, 10, l.Highlight())
	assert.Equal(t, 7, l.FirstVisible())

	mv = l.HighlightNextPage()
	assert.Equal(t, MoveWithin, mv, "last page already shown, only highlight moves")
	assert.Equal(t, 11, l.Highlight())

	mv = l.HighlightNextPage()
	assert.Equal(t, MoveNone, mv)

	mv = l.HighlightPreviousPage()
	assert.Equal(t, MoveScrolled, mv)
	assert.Equal(t, 6, l.Highlight())
	assert.Equal(t, 2, l.FirstVisible())
}

func TestPagingShortListNeverScrolls(t *testing.T) {
	l := newTestList(3, 10)
	assert.Equal(t, MoveWithin, l.HighlightNextPage())
	assert.Equal(t, 2, l.Highlight())
	assert.Equal(t, MoveNone, l.HighlightNextPage())
	assert.Equal(t, MoveWithin, l.HighlightPreviousPage())
	assert.Equal(t, 0, l.Highlight())
}

func TestHighlightFirstLastSnapViewport(t *testing.T) {
	l := newTestList(20, 6)
	assert.Equal(t, MoveScrolled, l.HighlightLast())
	assert.Equal(t, 19, l.Highlight())
	assert.Equal(t, 14, l.FirstVisible())
	assert.Equal(t, MoveNone, l.HighlightLast())
	assert.Equal(t, MoveScrolled, l.HighlightFirst())
	assert.Equal(t, 0, l.FirstVisible())
}

func TestHeaderAndReservedRowsShrinkViewport(t *testing.T) {
	l := newTestList(10, 8)
	l.SetHeaderRows(2)
	l.SetReservedRows(3)
	assert.Equal(t, 3, l.VisibleRows())
	l.HighlightLast()
	assertContained(t, l)
	assert.Equal(t, 7, l.FirstVisible())
}

func TestViewportContainmentUnderRandomNavigation(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for _, size := range []int{1, 2, 5, 17, 40} {
		l := newTestList(size, 7)
		l.SetHeaderRows(2)
		for step := 0; step < 500; step++ {
			before := l.FirstVisible()
			var mv Movement
			switch rng.Intn(8) {
			case 0:
				mv = l.HighlightNext()
			case 1:
				mv = l.HighlightPrevious()
			case 2:
				mv = l.HighlightNextPage()
			case 3:
				mv = l.HighlightPreviousPage()
			case 4:
				mv = l.HighlightFirst()
			case 5:
				mv = l.HighlightLast()
			case 6:
				mv = l.SetHighlight(rng.Intn(size + 2))
			case 7:
				l.SetHeight(3 + rng.Intn(10))
				before = l.FirstVisible()
			}
			assertContained(t, l)
			assert.Equal(t, before != l.FirstVisible(), mv.Scrolled(), "size %d step %d", size, step)
		}
	}
}

func TestClearIsIdempotent(t *testing.T) {
	l := newTestList(5, 3)
	l.HighlightLast()
	l.Clear()
	l.Clear()
	assert.Equal(t, 0, l.Len())
	assert.Equal(t, -1, l.Highlight())
	assert.Equal(t, 0, l.FirstVisible())
	assert.Equal(t, MoveNone, l.HighlightNext())
	_, ok := l.HighlightedItem()
	assert.False(t, ok)
}

func TestHitTest(t *testing.T) {
	l := newTestList(10, 6)
	l.SetHeaderRows(2)
	l.HighlightNextPage()

	_, _, ok := l.HitTest(1)
	assert.False(t, ok, "header rows never map to items")

	idx, confirm, ok := l.HitTest(3)
	require.True(t, ok)
	assert.False(t, confirm)
	assert.Equal(t, l.FirstVisible()+1, idx)
	assert.Equal(t, idx, l.Highlight())

	idx2, confirm, ok := l.HitTest(3)
	require.True(t, ok)
	assert.True(t, confirm)
	assert.Equal(t, idx, idx2)

	_, _, ok = l.HitTest(2 + l.VisibleRows())
	assert.False(t, ok)
}

func TestHitTestPastEndOfShortList(t *testing.T) {
	l := newTestList(2, 10)
	_, _, ok := l.HitTest(5)
	assert.False(t, ok)
	assert.Equal(t, 0, l.Highlight())
}

func TestToggleTagMarksHighlightedRowDirty(t *testing.T) {
	l := newTestList(3, 5)
	l.HighlightNext()
	l.ResetRedraw()
	item, ok := l.ToggleTag()
	require.True(t, ok)
	assert.True(t, item.Tagged)
	assert.Equal(t, RedrawChanged, l.Redraw())
	assert.Equal(t, []int{1}, l.DirtyRows())
	assert.Len(t, l.TaggedItems(), 1)
}

func TestSetItemsCopiesProperties(t *testing.T) {
	item := NewItem("a")
	item.SetBoolProp("installed", true)
	l := NewListBox()
	l.SetItems([]ListItem{item})
	item.SetBoolProp("installed", false)
	got, ok := l.Item(0)
	require.True(t, ok)
	assert.True(t, got.BoolProp("installed"))
}
