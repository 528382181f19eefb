package ui

import (
	"github.com/atomicstack/sbbrowse/internal/logging"
	"github.com/atomicstack/sbbrowse/internal/logging/events"
	"github.com/atomicstack/sbbrowse/internal/ui/widget"
	tea "github.com/charmbracelet/bubbletea"
)

// dialogContext is one entry of the modal stack. Only the top entry receives
// input; every entry is drawn, root first.
type dialogContext struct {
	title  string
	widget widget.Widget
	rect   widget.Rect
	// persistent dialogs stay open after a confirm so follow-up dialogs can
	// stack on top of them. Cancel always closes.
	persistent bool
	onResult   func(widget.Result) tea.Cmd
}

func (m *Model) openDialog(title string, w widget.Widget, onResult func(widget.Result) tea.Cmd) *dialogContext {
	ctx := &dialogContext{title: title, widget: w, onResult: onResult}
	m.dialogs = append(m.dialogs, ctx)
	m.placeDialog(ctx)
	events.Dialog.Open(title, len(m.dialogs))
	return ctx
}

func (m *Model) topDialog() *dialogContext {
	if len(m.dialogs) == 0 {
		return nil
	}
	return m.dialogs[len(m.dialogs)-1]
}

// closeDialog removes ctx wherever it sits in the stack.
func (m *Model) closeDialog(ctx *dialogContext, signal widget.Signal) {
	for i, candidate := range m.dialogs {
		if candidate != ctx {
			continue
		}
		events.Dialog.Close(ctx.title, signal.String(), i+1)
		m.dialogs = append(m.dialogs[:i], m.dialogs[i+1:]...)
		return
	}
}

func (m *Model) closeAllDialogs() {
	for len(m.dialogs) > 0 {
		m.closeDialog(m.topDialog(), widget.SignalCancel)
	}
}

// placeDialog centres the dialog over the pane area at its preferred size,
// never smaller than its minimum and never larger than the area.
func (m *Model) placeDialog(ctx *dialogContext) {
	area := m.paneArea()
	prefH, prefW := ctx.widget.PreferredSize()
	minH, minW := ctx.widget.MinimumSize()
	ctx.rect = area.Centered(max(prefW, minW), max(prefH, minH))
	ctx.widget.Resize(ctx.rect.Width, ctx.rect.Height)
}

func (m *Model) resizeDialogs() {
	for i, ctx := range m.dialogs {
		m.placeDialog(ctx)
		events.Dialog.Resize(i+1, ctx.rect.Width, ctx.rect.Height)
	}
}

// dispatchDialog applies the result of an event fed to ctx.
func (m *Model) dispatchDialog(ctx *dialogContext, res widget.Result) tea.Cmd {
	switch res.Signal {
	case widget.SignalConfirm, widget.SignalCancel:
		if res.Signal == widget.SignalCancel || !ctx.persistent {
			m.closeDialog(ctx, res.Signal)
		}
		if ctx.onResult != nil {
			return ctx.onResult(res)
		}
	case widget.SignalResize:
		m.placeDialog(ctx)
	}
	return nil
}

func (m *Model) showMessage(title, message string) *dialogContext {
	return m.openDialog(title, widget.NewMessageBox(title, message, "Enter: Dismiss", m.styles), nil)
}

func (m *Model) showError(err error) *dialogContext {
	logging.Error(err)
	return m.openDialog("Error", widget.NewErrorBox(err.Error(), m.styles), nil)
}

// confirm asks a yes/no question and runs yes on Enter.
func (m *Model) confirm(title, question string, yes func() tea.Cmd) *dialogContext {
	box := widget.NewMessageBox(title, question, "Enter: Yes | Esc: No", m.styles)
	return m.openDialog(title, box, func(res widget.Result) tea.Cmd {
		if res.Signal != widget.SignalConfirm {
			return nil
		}
		return yes()
	})
}
