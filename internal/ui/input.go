package ui

import (
	"github.com/atomicstack/sbbrowse/internal/backend"
	"github.com/atomicstack/sbbrowse/internal/logging/events"
	"github.com/atomicstack/sbbrowse/internal/ui/widget"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) focusName() string {
	if top := m.topDialog(); top != nil {
		return top.title
	}
	if m.quickActive {
		return "quick-search"
	}
	return m.active.String()
}

// handleKeyMsg routes keys: the top dialog first, then the quick search
// prompt, then main window bindings, then the active pane.
func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg := msg.(tea.KeyMsg)
	if key.Matches(keyMsg, m.keys.ForceQuit) {
		return m.quit("ctrl+c")
	}
	events.Input.Key(m.focusName(), keyMsg.String())
	if m.loading {
		return nil
	}
	if top := m.topDialog(); top != nil {
		return m.dispatchDialog(top, top.widget.HandleKey(keyMsg))
	}
	if m.quickActive {
		return m.handleQuickSearchKey(keyMsg)
	}
	m.errMsg = ""
	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		return m.quit("q")
	case key.Matches(keyMsg, m.keys.SwitchPane):
		m.switchPane()
	case key.Matches(keyMsg, m.keys.Filter):
		return m.selectFilter()
	case key.Matches(keyMsg, m.keys.Search):
		return m.openSearch()
	case key.Matches(keyMsg, m.keys.QuickSearch):
		return m.startQuickSearch()
	case key.Matches(keyMsg, m.keys.Layout):
		m.toggleLayout()
	case key.Matches(keyMsg, m.keys.Sync):
		return m.syncRepo()
	case key.Matches(keyMsg, m.keys.Tag):
		m.tag()
	case key.Matches(keyMsg, m.keys.TagAll):
		m.tagAll()
	case key.Matches(keyMsg, m.keys.Install):
		return m.applyTags(backend.ActionInstall)
	case key.Matches(keyMsg, m.keys.Upgrade):
		return m.applyTags(backend.ActionUpgrade)
	case key.Matches(keyMsg, m.keys.Remove):
		return m.applyTags(backend.ActionRemove)
	case key.Matches(keyMsg, m.keys.Reinstall):
		return m.applyTags(backend.ActionReinstall)
	case key.Matches(keyMsg, m.keys.Help):
		return m.showHelp()
	default:
		return m.handlePaneKey(keyMsg)
	}
	return nil
}

// handleMouseMsg delivers clicks to the top dialog when they land inside it
// and drops them otherwise. Without dialogs the pane under the pointer gets
// the event; a click on the inactive pane activates it.
func (m *Model) handleMouseMsg(msg tea.Msg) tea.Cmd {
	mouse := msg.(tea.MouseMsg)
	if m.loading {
		return nil
	}
	if top := m.topDialog(); top != nil {
		if !top.rect.Contains(mouse.X, mouse.Y) {
			return nil
		}
		events.Input.Mouse(top.title, mouse.X, mouse.Y, mouse.String())
		return m.dispatchDialog(top, top.widget.HandleMouse(top.rect.Relative(mouse)))
	}
	if m.quickActive {
		m.stopQuickSearch()
	}
	catRect, buildRect := m.paneRects()
	for _, target := range []struct {
		pane pane
		rect widget.Rect
	}{{paneCategories, catRect}, {paneBuilds, buildRect}} {
		if !target.rect.Contains(mouse.X, mouse.Y) {
			continue
		}
		l := m.paneList(target.pane)
		events.Input.Mouse(target.pane.String(), mouse.X, mouse.Y, mouse.String())
		activated := false
		if mouse.Action == tea.MouseActionPress && mouse.Button == tea.MouseButtonLeft && target.pane != m.active {
			if l.Len() == 0 {
				return nil
			}
			m.setActive(target.pane)
			activated = true
		}
		res := l.HandleMouse(target.rect.Relative(mouse))
		if activated && res.Signal == widget.SignalConfirm {
			return nil
		}
		return m.handlePaneResult(target.pane, res)
	}
	return nil
}
