package ui

import (
	"context"
	"fmt"

	"github.com/atomicstack/sbbrowse/internal/backend"
	"github.com/atomicstack/sbbrowse/internal/logging/events"
	"github.com/atomicstack/sbbrowse/internal/ui/command"
	tea "github.com/charmbracelet/bubbletea"
)

func waitForBackendEvent(w *backend.Watcher) tea.Cmd {
	return func() tea.Msg {
		evt, ok := <-w.Events()
		if !ok {
			return backendDoneMsg{}
		}
		return backendEventMsg{event: evt}
	}
}

type backendEventMsg struct {
	event backend.Event
}

type backendDoneMsg struct{}

type catalogLoadedMsg struct {
	catalog *backend.Catalog
	err     error
}

type actionDoneMsg struct {
	action backend.Action
	pkg    backend.Package
	err    error
}

type syncDoneMsg struct {
	err error
}

// loadCatalog rescans the repository off the UI goroutine.
func (m *Model) loadCatalog(label string) tea.Cmd {
	m.loading = true
	m.pendingLabel = label
	src := m.src
	return m.bus.Execute(command.Request{
		ID:    "catalog",
		Label: label,
		Run: func(ctx context.Context) tea.Msg {
			catalog, err := src.Packages(ctx)
			return catalogLoadedMsg{catalog: catalog, err: err}
		},
	})
}

func (m *Model) handleCatalogLoadedMsg(msg tea.Msg) tea.Cmd {
	loaded := msg.(catalogLoadedMsg)
	m.loading = false
	m.pendingLabel = ""
	if loaded.err != nil {
		events.Backend.Error("catalog", loaded.err)
		m.showError(fmt.Errorf("read repository: %w", loaded.err))
		return nil
	}
	m.catalog = loaded.catalog
	for name := range m.tagged {
		if _, ok := m.catalog.Lookup(name); !ok {
			delete(m.tagged, name)
		}
	}
	m.rebuild()
	if m.reloadPending {
		m.reloadPending = false
		return m.loadCatalog("Package state changed")
	}
	return nil
}

func (m *Model) handleBackendEventMsg(msg tea.Msg) tea.Cmd {
	evt := msg.(backendEventMsg).event
	var cmd tea.Cmd
	switch {
	case evt.Err != nil:
		events.Backend.Error("watcher", evt.Err)
		m.errMsg = evt.Err.Error()
	case m.loading:
		m.reloadPending = true
	default:
		cmd = m.loadCatalog("Package state changed")
	}
	if m.watcher == nil {
		return cmd
	}
	return tea.Batch(cmd, waitForBackendEvent(m.watcher))
}

func (m *Model) handleBackendDoneMsg(tea.Msg) tea.Cmd {
	m.watcher = nil
	return nil
}

// runAction modifies pkg. Sources that can hand out a command line run it
// in the foreground so the package tool owns the terminal.
func (m *Model) runAction(pkg backend.Package, action backend.Action) tea.Cmd {
	m.loading = true
	m.pendingLabel = fmt.Sprintf("%s %s", action, pkg.Name)
	events.Action.Start(string(action), pkg.Name)
	req := command.Request{ID: string(action), Label: pkg.Name}
	done := func(err error) tea.Msg {
		return actionDoneMsg{action: action, pkg: pkg, err: err}
	}
	if cmdr, ok := m.src.(backend.Commander); ok {
		cmd, err := cmdr.Command(action, pkg)
		if err != nil {
			return func() tea.Msg { return done(err) }
		}
		return m.bus.Foreground(req, cmd, done)
	}
	src := m.src
	req.Run = func(ctx context.Context) tea.Msg {
		return done(src.Execute(ctx, action, pkg))
	}
	return m.bus.Execute(req)
}

func (m *Model) handleActionDoneMsg(msg tea.Msg) tea.Cmd {
	done := msg.(actionDoneMsg)
	m.loading = false
	m.pendingLabel = ""
	if m.batch != nil {
		return m.continueBatch(done)
	}
	if done.err != nil {
		err := fmt.Errorf("%s %s: %w", done.action, done.pkg.Name, done.err)
		events.Action.Error(err)
		m.showError(err)
		return m.loadCatalog("Refreshing")
	}
	info := fmt.Sprintf("%s %s", pastTense(done.action), done.pkg.Name)
	events.Action.Success(info)
	delete(m.tagged, done.pkg.Name)
	if m.verbose {
		m.showMessage("Success", info+".")
	} else {
		m.setInfo(info)
	}
	return m.loadCatalog("Refreshing")
}

func (m *Model) runSync() tea.Cmd {
	m.loading = true
	m.pendingLabel = "Syncing repository"
	req := command.Request{ID: "sync", Label: "repository"}
	done := func(err error) tea.Msg { return syncDoneMsg{err: err} }
	if cmdr, ok := m.src.(backend.Commander); ok {
		cmd, err := cmdr.SyncCommand()
		if err != nil {
			return func() tea.Msg { return done(err) }
		}
		return m.bus.Foreground(req, cmd, done)
	}
	src := m.src
	req.Run = func(ctx context.Context) tea.Msg { return done(src.Sync(ctx)) }
	return m.bus.Execute(req)
}

func (m *Model) handleSyncDoneMsg(msg tea.Msg) tea.Cmd {
	done := msg.(syncDoneMsg)
	m.loading = false
	m.pendingLabel = ""
	if done.err != nil {
		err := fmt.Errorf("sync: %w", done.err)
		events.Action.Error(err)
		m.showError(err)
		return nil
	}
	events.Action.Success("repository synced")
	m.setInfo("Repository synced")
	return m.loadCatalog("Reading repository")
}

func pastTense(action backend.Action) string {
	switch action {
	case backend.ActionInstall:
		return "Installed"
	case backend.ActionRemove:
		return "Removed"
	case backend.ActionUpgrade:
		return "Upgraded"
	case backend.ActionReinstall:
		return "Reinstalled"
	}
	return string(action)
}
