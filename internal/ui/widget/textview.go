package widget

import (
	"fmt"
	"strings"

	"github.com/atomicstack/sbbrowse/internal/theme"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
)

const (
	textViewMaxWidth = 84
	wheelStep        = 3
)

// TextView is a framed, scrollable text pager used for READMEs, files and
// the help screen.
type TextView struct {
	title  string
	info   string
	text   string
	wrap   bool
	vp     viewport.Model
	width  int
	height int
	styles *theme.Styles
	keys   KeyMap
}

// NewTextView returns a pager over text. Tabs are expanded and long lines
// are word wrapped to the box width.
func NewTextView(title, text string, styles *theme.Styles) *TextView {
	return &TextView{
		title:  title,
		info:   "Enter/Esc: Close",
		text:   strings.ReplaceAll(strings.TrimRight(text, "\n"), "\t", "    "),
		wrap:   true,
		vp:     viewport.New(0, 0),
		styles: stylesOrDefault(styles),
		keys:   Keys,
	}
}

// SetWrap turns word wrapping off for preformatted text.
func (t *TextView) SetWrap(wrap bool) { t.wrap = wrap }

func (t *TextView) Title() string { return t.title }

// Offset returns the first visible line.
func (t *TextView) Offset() int { return t.vp.YOffset }

// HandleKey scrolls; Enter and Esc close the view.
func (t *TextView) HandleKey(msg tea.KeyMsg) Result {
	switch {
	case key.Matches(msg, t.keys.Up):
		t.vp.LineUp(1)
	case key.Matches(msg, t.keys.Down):
		t.vp.LineDown(1)
	case key.Matches(msg, t.keys.PageUp):
		t.vp.ViewUp()
	case key.Matches(msg, t.keys.PageDown):
		t.vp.ViewDown()
	case key.Matches(msg, t.keys.Home):
		t.vp.GotoTop()
	case key.Matches(msg, t.keys.End):
		t.vp.GotoBottom()
	case key.Matches(msg, t.keys.Confirm):
		return Result{Signal: SignalConfirm}
	case key.Matches(msg, t.keys.Cancel):
		return cancel()
	}
	return none()
}

// HandleMouse scrolls with the wheel.
func (t *TextView) HandleMouse(e MouseEvent) Result {
	switch e.Button {
	case tea.MouseButtonWheelUp:
		t.vp.LineUp(wheelStep)
	case tea.MouseButtonWheelDown:
		t.vp.LineDown(wheelStep)
	}
	return none()
}

func (t *TextView) bodyWidth() int { return max(t.width-4, 1) }

func (t *TextView) content(width int) string {
	if !t.wrap {
		return t.text
	}
	return wordwrap.String(t.text, width)
}

// Resize reflows the text for the new size.
func (t *TextView) Resize(width, height int) Result {
	t.width = width
	t.height = height
	t.vp.Width = t.bodyWidth()
	t.vp.Height = max(height-frameHeaderRows-frameFooterRows, 1)
	t.vp.SetContent(t.content(t.vp.Width))
	return Result{Signal: SignalResize, Size: Size{Width: width, Height: height}}
}

func (t *TextView) MinimumSize() (height, width int) {
	width = max(lipgloss.Width(t.title), lipgloss.Width(t.info)+6, 20) + 4
	return frameHeaderRows + frameFooterRows + 1, width
}

// PreferredSize fits every line, capped at textViewMaxWidth columns.
func (t *TextView) PreferredSize() (height, width int) {
	minH, minW := t.MinimumSize()
	longest := 0
	for _, line := range strings.Split(t.text, "\n") {
		longest = max(longest, lipgloss.Width(line))
	}
	width = max(minW, min(longest, textViewMaxWidth)+4)
	lines := strings.Count(t.content(width-4), "\n") + 1
	return max(minH, frameHeaderRows+frameFooterRows+lines), width
}

// View renders the visible slice of text with a scroll position in the info
// line.
func (t *TextView) View() string {
	f := newFrame(t.width, t.styles)
	lines := []string{f.top(), f.centered(t.title, t.styles.Title), f.divider()}
	body := strings.Split(t.vp.View(), "\n")
	for i := 0; i < t.vp.Height; i++ {
		row := ""
		if i < len(body) {
			row = body[i]
		}
		lines = append(lines, f.row(" "+row))
	}
	info := t.info
	if t.vp.TotalLineCount() > t.vp.Height {
		info = fmt.Sprintf("%s | %3.0f%%", info, t.vp.ScrollPercent()*100)
	}
	lines = append(lines, f.divider(), f.centered(info, t.styles.Info), f.bottom())
	return strings.Join(lines, "\n")
}
