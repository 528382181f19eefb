package widget

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func numberedText(n int) string {
	lines := make([]string, n)
	for i := range lines {
		lines[i] = fmt.Sprintf("line %02d", i)
	}
	return strings.Join(lines, "\n")
}

func TestTextViewScrolls(t *testing.T) {
	v := NewTextView("README", numberedText(30), nil)
	res := v.Resize(40, 10)
	assert.Equal(t, SignalResize, res.Signal)
	assert.Contains(t, v.View(), "line 00")
	assert.NotContains(t, v.View(), "line 04")

	v.HandleKey(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, v.Offset())

	v.HandleKey(tea.KeyMsg{Type: tea.KeyPgDown})
	assert.Equal(t, 5, v.Offset())

	v.HandleKey(tea.KeyMsg{Type: tea.KeyEnd})
	assert.Equal(t, 26, v.Offset())
	assert.Contains(t, v.View(), "line 29")
	assert.Contains(t, v.View(), "100%")

	v.HandleMouse(MouseEvent{Button: tea.MouseButtonWheelUp})
	assert.Equal(t, 23, v.Offset())

	v.HandleKey(tea.KeyMsg{Type: tea.KeyHome})
	assert.Equal(t, 0, v.Offset())
}

func TestTextViewCloses(t *testing.T) {
	v := NewTextView("Help", "short", nil)
	v.Resize(40, 8)
	assert.Equal(t, SignalConfirm, v.HandleKey(tea.KeyMsg{Type: tea.KeyEnter}).Signal)
	assert.Equal(t, SignalCancel, v.HandleKey(tea.KeyMsg{Type: tea.KeyEsc}).Signal)
	assert.Equal(t, SignalNone, v.HandleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")}).Signal)
}

func TestTextViewPreferredSize(t *testing.T) {
	v := NewTextView("README", numberedText(3), nil)
	h, w := v.PreferredSize()
	assert.Equal(t, 9, h)
	assert.Equal(t, 26, w)
}
