package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func namedItems(names ...string) []ListItem {
	items := make([]ListItem, len(names))
	for i, name := range names {
		items[i] = NewItem(name)
	}
	return items
}

func TestBestMatchIndex(t *testing.T) {
	items := namedItems("audio", "development", "libraries", "libreoffice", "python")
	cases := []struct {
		query string
		want  int
	}{
		{"", 0},
		{"LIBRARIES", 2},
		{"libr", 2},
		{"office", 3},
		{"pyt", 4},
		{"dvlp", 1},
		{"zzz", -1},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, BestMatchIndex(items, tc.query), "query %q", tc.query)
	}
	assert.Equal(t, -1, BestMatchIndex(nil, "a"))
}

func TestQuickSearchMovesHighlight(t *testing.T) {
	l := NewListBox()
	l.SetHeight(3)
	l.SetItems(namedItems("a1", "a2", "a3", "b1", "b2", "c1"))
	mv, ok := l.QuickSearch("c")
	assert.True(t, ok)
	assert.Equal(t, MoveScrolled, mv)
	assert.Equal(t, 5, l.Highlight())

	mv, ok = l.QuickSearch("nothing")
	assert.False(t, ok)
	assert.Equal(t, MoveNone, mv)
	assert.Equal(t, 5, l.Highlight())
}
