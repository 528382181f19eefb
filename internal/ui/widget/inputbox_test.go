package widget

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextInputKeyMapping(t *testing.T) {
	in := NewTextInput("", nil)
	in.SetFocused(true)
	cases := []struct {
		key  tea.KeyMsg
		want Signal
	}{
		{keyMsg(tea.KeyTab), SignalFocusNext},
		{keyMsg(tea.KeyDown), SignalFocusNext},
		{keyMsg(tea.KeyShiftTab), SignalFocusPrevious},
		{keyMsg(tea.KeyUp), SignalFocusPrevious},
		{keyMsg(tea.KeyEsc), SignalCancel},
		{runeMsg("a"), SignalNone},
		{keyMsg(tea.KeyLeft), SignalNone},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, in.HandleKey(tc.key).Signal, "key %s", tc.key)
	}
}

func TestTextInputEditsAndConfirms(t *testing.T) {
	in := NewTextInput("Search:", nil)
	in.SetFocused(true)
	in.HandleKey(runeMsg("ffm"))
	in.HandleKey(keyMsg(tea.KeySpace))
	in.HandleKey(runeMsg("x"))
	in.HandleKey(keyMsg(tea.KeyBackspace))
	in.HandleKey(keyMsg(tea.KeyHome))
	in.HandleKey(keyMsg(tea.KeyDelete))

	res := in.HandleKey(keyMsg(tea.KeyEnter))
	assert.Equal(t, SignalConfirm, res.Signal)
	assert.Equal(t, "fm ", res.Value)
	assert.Equal(t, "fm ", in.Value(), "text survives the confirm")
	assert.Contains(t, in.Line(20), "Search: fm")
}

func TestInputBoxFocusCyclesBothWays(t *testing.T) {
	box := NewSearchBox(nil)
	n := len(box.Items())
	require.Equal(t, 3, n)
	for i := 0; i < n; i++ {
		assert.Equal(t, SignalNone, box.HandleKey(keyMsg(tea.KeyTab)).Signal)
	}
	assert.Equal(t, 0, box.Focus(), "n focus-next signals return to the start")

	box.HandleKey(keyMsg(tea.KeyShiftTab))
	assert.Equal(t, n-1, box.Focus())
	for i, item := range box.Items() {
		assert.Equal(t, i == n-1, item.Focused())
	}
}

func TestSearchBoxCollectsValues(t *testing.T) {
	box := NewSearchBox(nil)
	h, _ := box.MinimumSize()
	box.Resize(48, h)
	box.HandleKey(runeMsg("qt"))
	box.HandleKey(keyMsg(tea.KeyDown))
	box.HandleKey(keyMsg(tea.KeySpace))
	box.HandleKey(keyMsg(tea.KeyDown))

	res := box.HandleKey(keyMsg(tea.KeyEnter))
	assert.Equal(t, SignalConfirm, res.Signal)
	assert.Equal(t, "qt", box.SearchString())
	assert.True(t, box.CaseSensitive())
	assert.False(t, box.WholeWord())
	assert.Contains(t, box.View(), "[x] Case sensitive")

	assert.Equal(t, SignalCancel, box.HandleKey(keyMsg(tea.KeyEsc)).Signal)
}

func TestInputBoxMouseFocusesAndToggles(t *testing.T) {
	box := NewSearchBox(nil)
	box.HandleMouse(click(3, frameHeaderRows+1+2))
	assert.Equal(t, 2, box.Focus())
	assert.False(t, box.WholeWord())
	box.HandleMouse(click(3, frameHeaderRows+1+2))
	assert.True(t, box.WholeWord())
}

func TestFilterBoxIsExclusive(t *testing.T) {
	box := NewFilterBox(FilterInstalled, nil)
	assert.Equal(t, FilterInstalled, box.Selected())
	assert.Equal(t, 1, box.Focus())

	box.HandleKey(keyMsg(tea.KeyDown))
	box.HandleKey(keyMsg(tea.KeySpace))
	assert.Equal(t, FilterUpgradable, box.Selected())
	checked := 0
	for _, toggle := range box.toggles {
		if toggle.Enabled() {
			checked++
		}
	}
	assert.Equal(t, 1, checked)

	box.HandleKey(keyMsg(tea.KeySpace))
	assert.Equal(t, FilterUpgradable, box.Selected(), "space never unchecks the only filter")

	res := box.HandleKey(keyMsg(tea.KeyEnter))
	assert.Equal(t, SignalConfirm, res.Signal)
	assert.Equal(t, string(FilterUpgradable), res.Value)

	box.HandleMouse(click(3, frameHeaderRows+1+5))
	assert.Equal(t, FilterNonDependency, box.Selected())
}
