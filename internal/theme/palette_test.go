package theme

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaletteStyleUnknownEntry(t *testing.T) {
	_, err := DefaultPalette().Style("nope")
	require.ErrorIs(t, err, ErrUnknownColor)
}

func TestPaletteStyleEmptyPair(t *testing.T) {
	p := Palette{ColorTitle: {}}
	_, err := p.Style(ColorTitle)
	require.ErrorIs(t, err, ErrUnknownColor)
}

func TestParsePaletteMergesOverDefaults(t *testing.T) {
	p, err := ParsePalette([]byte("title:\n  fg: \"#ff0000\"\nHighlight-Active:\n  fg: \"0\"\n  bg: \"7\"\n"))
	require.NoError(t, err)
	assert.Equal(t, "#ff0000", p[ColorTitle].Fg)
	assert.Equal(t, ColorPair{Fg: "0", Bg: "7"}, p[ColorHighlightActive])
	assert.Equal(t, DefaultPalette()[ColorInfo], p[ColorInfo])
}

func TestParsePaletteRejectsGarbage(t *testing.T) {
	_, err := ParsePalette([]byte("- just\n- a list\n"))
	require.Error(t, err)
}

func TestFromPaletteFallsBackToReverseVideo(t *testing.T) {
	styles := FromPalette(Palette{})
	assert.True(t, styles.HighlightActive.GetReverse())
	assert.True(t, styles.HighlightInactive.GetReverse())

	styles = FromPalette(DefaultPalette())
	assert.False(t, styles.HighlightActive.GetReverse())
	assert.Equal(t, lipgloss.Color("25"), styles.HighlightActive.GetBackground())
}
