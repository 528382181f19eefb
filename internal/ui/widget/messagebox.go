package widget

import (
	"strings"

	"github.com/atomicstack/sbbrowse/internal/theme"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
)

const (
	messageMarginV  = 1
	messageMarginH  = 2
	messageMaxWidth = 64
)

// MessageBox shows a framed message. Enter confirms and Esc cancels. A body
// taller than the box scrolls with the arrow and page keys.
type MessageBox struct {
	title    string
	message  string
	info     string
	centered bool
	width    int
	height   int
	offset   int
	styles   *theme.Styles
	keys     KeyMap
	style    *lipgloss.Style
}

// NewMessageBox returns a centred message dialog.
func NewMessageBox(title, message, info string, styles *theme.Styles) *MessageBox {
	return &MessageBox{
		title:    title,
		message:  message,
		info:     info,
		centered: true,
		styles:   stylesOrDefault(styles),
		keys:     Keys,
	}
}

// NewErrorBox returns a message box for err text, drawn in the error style.
func NewErrorBox(message string, styles *theme.Styles) *MessageBox {
	b := NewMessageBox("Error", message, "Enter: Dismiss", styles)
	b.style = b.styles.Error
	return b
}

// SetCentered chooses between centred and left-aligned body text.
func (b *MessageBox) SetCentered(centered bool) { b.centered = centered }

// SetInfo replaces the footer hint.
func (b *MessageBox) SetInfo(info string) { b.info = info }

func (b *MessageBox) Title() string   { return b.title }
func (b *MessageBox) Message() string { return b.message }
func (b *MessageBox) Info() string    { return b.info }

func (b *MessageBox) HandleKey(msg tea.KeyMsg) Result {
	switch {
	case key.Matches(msg, b.keys.Confirm):
		return Result{Signal: SignalConfirm}
	case key.Matches(msg, b.keys.Cancel):
		return cancel()
	case key.Matches(msg, b.keys.Up):
		b.scroll(-1)
	case key.Matches(msg, b.keys.Down):
		b.scroll(1)
	case key.Matches(msg, b.keys.PageUp):
		b.scroll(-b.bodyRows())
	case key.Matches(msg, b.keys.PageDown):
		b.scroll(b.bodyRows())
	}
	return none()
}

// Offset returns the first body line shown.
func (b *MessageBox) Offset() int { return b.offset }

// bodyRows is the number of message lines that fit between the margins. An
// unsized box shows the whole message.
func (b *MessageBox) bodyRows() int {
	if b.height <= 0 {
		return len(b.body())
	}
	return max(b.height-frameHeaderRows-frameFooterRows-2*messageMarginV, 0)
}

func (b *MessageBox) scroll(delta int) {
	last := max(len(b.body())-b.bodyRows(), 0)
	b.offset = min(max(b.offset+delta, 0), last)
}

func (b *MessageBox) body() []string {
	return b.wrap(newFrame(b.width, b.styles).inner() - 2*messageMarginH)
}

// HandleMouse dismisses the box on a left click. The wheel scrolls the body.
func (b *MessageBox) HandleMouse(e MouseEvent) Result {
	switch {
	case e.Pressed(tea.MouseButtonLeft):
		return Result{Signal: SignalConfirm}
	case e.Button == tea.MouseButtonWheelUp:
		b.scroll(-1)
	case e.Button == tea.MouseButtonWheelDown:
		b.scroll(1)
	}
	return none()
}

func (b *MessageBox) Resize(width, height int) Result {
	b.width = width
	b.height = height
	b.scroll(0)
	return Result{Signal: SignalResize, Size: Size{Width: width, Height: height}}
}

func (b *MessageBox) chromeWidth() int {
	return max(lipgloss.Width(b.title), lipgloss.Width(b.info)) + 4
}

// MinimumSize fits the title and info line plus one body row.
func (b *MessageBox) MinimumSize() (height, width int) {
	return frameHeaderRows + frameFooterRows + 1 + 2*messageMarginV, max(b.chromeWidth(), 2*messageMarginH+12)
}

// PreferredSize fits the whole wrapped message, capped at messageMaxWidth.
func (b *MessageBox) PreferredSize() (height, width int) {
	minH, minW := b.MinimumSize()
	longest := 0
	for _, line := range strings.Split(b.message, "\n") {
		longest = max(longest, lipgloss.Width(line))
	}
	width = max(minW, min(longest, messageMaxWidth)+2*messageMarginH+2)
	lines := b.wrap(width - 2 - 2*messageMarginH)
	height = max(minH, frameHeaderRows+frameFooterRows+len(lines)+2*messageMarginV)
	return height, width
}

func (b *MessageBox) wrap(width int) []string {
	if width <= 0 {
		return nil
	}
	return strings.Split(wordwrap.String(b.message, width), "\n")
}

// View renders the message inside the frame, padded to the box height.
func (b *MessageBox) View() string {
	f := newFrame(b.width, b.styles)
	bodyWidth := f.inner() - 2*messageMarginH
	lines := []string{f.top(), f.centered(b.title, b.styles.Title), f.divider()}
	for i := 0; i < messageMarginV; i++ {
		lines = append(lines, f.row(""))
	}
	margin := strings.Repeat(" ", messageMarginH)
	body := b.body()
	body = body[min(b.offset, len(body)):]
	if rows := b.bodyRows(); len(body) > rows {
		body = body[:rows]
	}
	for _, line := range body {
		if b.centered {
			if pad := (bodyWidth - lipgloss.Width(line)) / 2; pad > 0 {
				line = strings.Repeat(" ", pad) + line
			}
		}
		lines = append(lines, f.row(margin+render(b.style, fit(line, bodyWidth))))
	}
	for len(lines) < b.height-frameFooterRows {
		lines = append(lines, f.row(""))
	}
	lines = append(lines, f.divider(), f.centered(b.info, b.styles.Info), f.bottom())
	return strings.Join(lines, "\n")
}
