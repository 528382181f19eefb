package ui

import (
	"fmt"
	"strings"

	"github.com/atomicstack/sbbrowse/internal/format/table"
	"github.com/atomicstack/sbbrowse/internal/ui/state"
	"github.com/atomicstack/sbbrowse/internal/ui/widget"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/truncate"
)

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	size := msg.(tea.WindowSizeMsg)
	if !m.fixedWidth {
		m.width = size.Width
	}
	if !m.fixedHeight {
		m.height = size.Height
	}
	m.help.Width = m.width
	m.layout()
	m.resizeDialogs()
	return nil
}

// View implements tea.Model. Dialogs are painted over the panes from the
// root of the stack to the top.
func (m *Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}
	lines := []string{m.headerLine()}
	if m.paneArea().Height > 0 {
		lines = append(lines, strings.Split(m.panesView(), "\n")...)
	}
	lines = append(lines, m.statusLine())
	if m.showFooter {
		lines = append(lines, m.footerLine())
	}
	for _, ctx := range m.dialogs {
		overlay(lines, ctx.widget.View(), ctx.rect, m.width)
	}
	return strings.Join(lines, "\n")
}

func (m *Model) panesView() string {
	categories := m.categories.View()
	builds := m.currentBuilds().View()
	if m.vertical {
		return categories + "\n" + builds
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, categories, builds)
}

func (m *Model) headerLine() string {
	right := fmt.Sprintf("Filter: %s", m.filter)
	if m.search != nil {
		right += fmt.Sprintf(" | Search: %s", m.search.term)
	}
	return paint(m.styles.Header, table.Columns(" "+m.title, right+" ", m.width))
}

// statusLine shows, in order of precedence, running work, the quick search
// prompt, the last error, a transient info message and the highlighted
// package.
func (m *Model) statusLine() string {
	switch {
	case m.loading:
		return paint(m.styles.Status, fitLine(" "+m.pendingLabel+"...", m.width))
	case m.quickActive:
		return fitLine(" "+m.quick.View(), m.width)
	case m.errMsg != "":
		return paint(m.styles.Error, fitLine(" "+m.errMsg, m.width))
	}
	if info := m.currentInfo(); info != "" {
		return paint(m.styles.Status, fitLine(" "+info, m.width))
	}
	return paint(m.styles.Info, fitLine(" "+m.selectionStatus(), m.width))
}

func (m *Model) selectionStatus() string {
	if m.catalog == nil {
		return ""
	}
	if m.active == paneBuilds {
		if item, ok := m.currentBuilds().HighlightedItem(); ok {
			return packageStatus(item)
		}
	}
	if item, ok := m.categories.HighlightedItem(); ok {
		return fmt.Sprintf("%s: %d SlackBuilds", item.Name, m.currentBuilds().Len())
	}
	return "No SlackBuilds to show"
}

func packageStatus(item state.ListItem) string {
	version := item.Prop(widget.PropVersion)
	var s string
	switch {
	case item.BoolProp(widget.PropUpgradable):
		s = fmt.Sprintf("%s %s (installed %s)", item.Name, version, item.Prop(widget.PropInstalledAs))
	case item.BoolProp(widget.PropInstalled):
		s = fmt.Sprintf("%s %s (installed)", item.Name, version)
	default:
		s = fmt.Sprintf("%s %s", item.Name, version)
	}
	if item.BoolProp(widget.PropBlacklisted) {
		s += " [blacklisted]"
	}
	return s
}

func (m *Model) footerLine() string {
	return paint(m.styles.Footer, fitLine(" "+m.help.ShortHelpView(m.keys.ShortHelp()), m.width))
}

// overlay paints view over lines at rect, keeping what lies left and right
// of the dialog on each row.
func overlay(lines []string, view string, rect widget.Rect, width int) {
	for i, row := range strings.Split(view, "\n") {
		y := rect.Y + i
		if i >= rect.Height || y < 0 || y >= len(lines) {
			continue
		}
		bg := lines[y]
		if w := ansi.StringWidth(bg); w < width {
			bg += strings.Repeat(" ", width-w)
		}
		left := ansi.Cut(bg, 0, rect.X)
		right := ansi.Cut(bg, rect.X+rect.Width, width)
		lines[y] = left + fitLine(row, rect.Width) + right
	}
}

// fitLine truncates s to width cells and pads it with spaces.
func fitLine(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = truncate.String(s, uint(width))
	if w := ansi.StringWidth(s); w < width {
		s += strings.Repeat(" ", width-w)
	}
	return s
}

func paint(style *lipgloss.Style, text string) string {
	if style == nil {
		return text
	}
	return style.Render(text)
}
