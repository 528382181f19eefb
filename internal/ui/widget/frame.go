package widget

import (
	"strings"

	"github.com/atomicstack/sbbrowse/internal/theme"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

// Rows every framed widget spends on chrome: border, title and divider above
// the content; divider, info line and border below it.
const (
	frameHeaderRows = 3
	frameFooterRows = 3
)

// frame draws a bordered box line by line so callers control every row.
type frame struct {
	width  int
	border lipgloss.Border
	style  *lipgloss.Style
}

func newFrame(width int, styles *theme.Styles) frame {
	return frame{width: max(width, 2), border: lipgloss.RoundedBorder(), style: styles.Frame}
}

func (f frame) inner() int { return f.width - 2 }

func (f frame) paint(s string) string {
	if f.style == nil {
		return s
	}
	return f.style.Render(s)
}

func (f frame) top() string {
	return f.paint(f.border.TopLeft + strings.Repeat(f.border.Top, f.inner()) + f.border.TopRight)
}

func (f frame) bottom() string {
	return f.paint(f.border.BottomLeft + strings.Repeat(f.border.Bottom, f.inner()) + f.border.BottomRight)
}

func (f frame) divider() string {
	return f.paint(f.border.MiddleLeft + strings.Repeat(f.border.Top, f.inner()) + f.border.MiddleRight)
}

// row wraps already-styled content in the side borders, cutting or padding it
// to the inner width.
func (f frame) row(content string) string {
	return f.paint(f.border.Left) + fit(content, f.inner()) + f.paint(f.border.Right)
}

// centered renders text centred in the inner width with style.
func (f frame) centered(text string, style *lipgloss.Style) string {
	text = fit(text, f.inner())
	text = strings.TrimRight(text, " ")
	pad := (f.inner() - lipgloss.Width(text)) / 2
	line := strings.Repeat(" ", max(pad, 0)) + text
	if style != nil {
		line = style.Render(line)
	}
	return f.row(line)
}

// fit truncates s (ANSI aware) to width cells and right-pads it with spaces.
func fit(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(s) > width {
		s = truncate.String(s, uint(width))
	}
	if pad := width - lipgloss.Width(s); pad > 0 {
		s += strings.Repeat(" ", pad)
	}
	return s
}

func stylesOrDefault(styles *theme.Styles) *theme.Styles {
	if styles == nil {
		return theme.Default()
	}
	return styles
}

func render(style *lipgloss.Style, text string) string {
	if style == nil {
		return text
	}
	return style.Render(text)
}
