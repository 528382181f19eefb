package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatAlignsColumns(t *testing.T) {
	rows := [][]string{
		{"Name", "Version"},
		{"ffmpeg", "6.1"},
		{"qt5", "5.15.13"},
	}
	got := Format(rows, []Alignment{AlignLeft, AlignRight})
	assert.Equal(t, []string{
		"Name    Version",
		"ffmpeg      6.1",
		"qt5     5.15.13",
	}, got)
	assert.Nil(t, Format(nil, nil))
}

func TestFormatMeasuresWideRunes(t *testing.T) {
	got := Format([][]string{{"日本", "x"}, {"ab", "y"}}, nil)
	assert.Equal(t, []string{"日本  x", "ab    y"}, got)
}

func TestColumns(t *testing.T) {
	assert.Equal(t, "ffmpeg   installed", Columns("ffmpeg", "installed", 18))
	assert.Equal(t, "ffmpeg", Columns("ffmpeg", "", 6))
	assert.Equal(t, "ff… installed", Columns("ffmpeg", "installed", 13))
	assert.Equal(t, "abc   ", Columns("abc", "", 6))
	assert.Equal(t, "", Columns("abc", "x", 0))
}
