package ui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/atomicstack/sbbrowse/internal/backend"
	"github.com/atomicstack/sbbrowse/internal/logging"
	"github.com/atomicstack/sbbrowse/internal/logging/events"
	"github.com/atomicstack/sbbrowse/internal/ui/widget"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type batchRun struct {
	action  backend.Action
	queue   []backend.Package
	done    int
	failed  []string
	skipped int
}

func (m *Model) selectFilter() tea.Cmd {
	box := widget.NewFilterBox(m.filter, m.styles)
	m.openDialog("Select filter", box, func(res widget.Result) tea.Cmd {
		if res.Signal != widget.SignalConfirm {
			return nil
		}
		m.filter = widget.Filter(res.Value)
		m.rebuild()
		if m.categories.Len() == 0 {
			m.setInfo(fmt.Sprintf("No SlackBuilds match the %s filter", m.filter))
		}
		return nil
	})
	return nil
}

func (m *Model) openSearch() tea.Cmd {
	m.searchBox.Reset()
	m.openDialog("Search", m.searchBox, func(res widget.Result) tea.Cmd {
		if res.Signal != widget.SignalConfirm {
			return nil
		}
		term := strings.TrimSpace(m.searchBox.SearchString())
		if term == "" {
			m.clearSearch()
			return nil
		}
		m.search = &searchQuery{
			term:          term,
			caseSensitive: m.searchBox.CaseSensitive(),
			wholeWord:     m.searchBox.WholeWord(),
		}
		m.rebuild()
		if m.categories.Len() == 0 {
			m.showMessage("Search", fmt.Sprintf("No SlackBuilds match %q.", term))
		}
		return nil
	})
	return nil
}

func (m *Model) clearSearch() {
	m.search = nil
	m.rebuild()
}

// showBuildActions opens the action menu for pkg. The menu stays open while
// viewers are stacked on it; modifying actions close every dialog.
func (m *Model) showBuildActions(pkg backend.Package) tea.Cmd {
	box := widget.NewBuildActionBox(buildItem(pkg, m.tagged[pkg.Name]), m.styles)
	box.SetTitle(pkg.Name)
	ctx := m.openDialog(pkg.Name, box, func(res widget.Result) tea.Cmd {
		if res.Signal != widget.SignalConfirm || res.Item == nil {
			return nil
		}
		switch res.Item.Name {
		case widget.ActionViewReadme:
			return m.viewReadme(pkg)
		case widget.ActionBrowseFiles:
			return m.browseFiles(pkg)
		case widget.ActionInstall:
			return m.modifyPackage(pkg, backend.ActionInstall)
		case widget.ActionRemove:
			return m.modifyPackage(pkg, backend.ActionRemove)
		case widget.ActionUpgrade:
			return m.modifyPackage(pkg, backend.ActionUpgrade)
		case widget.ActionReinstall:
			return m.modifyPackage(pkg, backend.ActionReinstall)
		case widget.ActionBuildOrder:
			return m.showBuildOrder(pkg)
		case widget.ActionInverseDeps:
			return m.showInverseReqs(pkg)
		case widget.ActionPackageInfo:
			return m.showPackageInfo(pkg)
		}
		return nil
	})
	ctx.persistent = true
	return nil
}

func (m *Model) viewReadme(pkg backend.Package) tea.Cmd {
	text, err := m.src.Readme(pkg.Name)
	if err != nil {
		m.showError(err)
		return nil
	}
	m.openDialog("README", widget.NewTextView(pkg.Name+" README", text, m.styles), nil)
	return nil
}

func (m *Model) browseFiles(pkg backend.Package) tea.Cmd {
	dir, err := m.src.PackageDir(pkg.Name)
	if err != nil {
		m.showError(err)
		return nil
	}
	box := widget.NewDirListBox(pkg.Name+" files", m.fs, m.styles)
	if err := box.SetDirectory(dir, 0); err != nil {
		m.showError(fmt.Errorf("browse %s: %w", pkg.Name, err))
		return nil
	}
	ctx := m.openDialog("Files", box, func(res widget.Result) tea.Cmd {
		if res.Signal != widget.SignalConfirm {
			return nil
		}
		text, err := m.fs.ReadFile(res.Value)
		if err != nil {
			m.showError(err)
			return nil
		}
		m.openDialog("File", widget.NewTextView(filepath.Base(res.Value), text, m.styles), nil)
		return nil
	})
	ctx.persistent = true
	return nil
}

func (m *Model) showBuildOrder(pkg backend.Package) tea.Cmd {
	order, err := m.src.BuildOrder(pkg.Name)
	if err != nil {
		m.showError(err)
		return nil
	}
	info := "Enter: Actions | Esc: Back"
	if len(order.Missing) > 0 {
		info = "Missing: " + strings.Join(order.Missing, ", ")
	}
	m.openPackageList("Build order: "+pkg.Name, info, order.Packages)
	return nil
}

func (m *Model) showInverseReqs(pkg backend.Package) tea.Cmd {
	pkgs, err := m.src.InverseDeps(pkg.Name)
	if err != nil {
		m.showError(err)
		return nil
	}
	if len(pkgs) == 0 {
		m.showMessage("Inverse deps", fmt.Sprintf("No SlackBuilds require %s.", pkg.Name))
		return nil
	}
	m.openPackageList("Required by "+pkg.Name, "Enter: Actions | Esc: Back", pkgs)
	return nil
}

// openPackageList shows pkgs in a dialog list; confirming an entry opens its
// action menu on top.
func (m *Model) openPackageList(title, info string, pkgs []backend.Package) {
	l := widget.NewListBox(title, widget.BuildRows, m.styles)
	l.SetItems(buildItems(pkgs, m.tagged))
	l.SetInfo(info)
	l.SetActivated(true)
	ctx := m.openDialog(title, l, func(res widget.Result) tea.Cmd {
		if res.Signal != widget.SignalConfirm || res.Item == nil {
			return nil
		}
		pkg, ok := m.catalog.Lookup(res.Item.Name)
		if !ok {
			m.showError(fmt.Errorf("%w: %s", backend.ErrUnknownPackage, res.Item.Name))
			return nil
		}
		return m.showBuildActions(pkg)
	})
	ctx.persistent = true
}

func (m *Model) showPackageInfo(pkg backend.Package) tea.Cmd {
	text, err := m.src.Info(pkg.Name)
	if err != nil {
		m.showError(err)
		return nil
	}
	box := widget.NewMessageBox(pkg.Name, text, "Enter: Dismiss", m.styles)
	box.SetCentered(false)
	m.openDialog("Package info", box, nil)
	return nil
}

// modifyPackage confirms and runs one action. Install and upgrade list the
// dependencies that will be built first.
func (m *Model) modifyPackage(pkg backend.Package, action backend.Action) tea.Cmd {
	question := fmt.Sprintf("%s %s?", verb(action), pkg.Name)
	if action == backend.ActionInstall || action == backend.ActionUpgrade {
		if order, err := m.src.BuildOrder(pkg.Name); err == nil && len(order.Packages) > 1 {
			names := make([]string, 0, len(order.Packages))
			for _, dep := range order.Packages {
				names = append(names, dep.Name)
			}
			question += "\n\nBuild order: " + strings.Join(names, " ")
		}
	}
	m.confirm(verb(action), question, func() tea.Cmd {
		m.closeAllDialogs()
		return m.runAction(pkg, action)
	})
	return nil
}

func verb(action backend.Action) string {
	s := string(action)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// taggedFor returns the tagged packages action applies to, in catalog order.
// Blacklisted packages are never touched by a batch.
func (m *Model) taggedFor(action backend.Action) []backend.Package {
	if m.catalog == nil {
		return nil
	}
	var out []backend.Package
	for _, pkg := range m.catalog.Packages {
		if !m.tagged[pkg.Name] || pkg.Blacklisted {
			continue
		}
		var applies bool
		switch action {
		case backend.ActionInstall:
			applies = !pkg.Installed
		case backend.ActionUpgrade:
			applies = pkg.Upgradable
		case backend.ActionRemove, backend.ActionReinstall:
			applies = pkg.Installed
		}
		if applies {
			out = append(out, pkg)
		}
	}
	return out
}

// applyTags runs action on every tagged package it applies to, one after the
// other, after a single confirmation.
func (m *Model) applyTags(action backend.Action) tea.Cmd {
	pkgs := m.taggedFor(action)
	if len(pkgs) == 0 {
		m.showMessage("Apply to tagged", fmt.Sprintf("No tagged SlackBuilds can be %s.", strings.ToLower(pastTense(action))))
		return nil
	}
	names := make([]string, 0, len(pkgs))
	for _, pkg := range pkgs {
		names = append(names, pkg.Name)
	}
	question := fmt.Sprintf("%s %d tagged SlackBuild(s)?\n\n%s", verb(action), len(pkgs), strings.Join(names, " "))
	m.confirm("Apply to tagged", question, func() tea.Cmd {
		m.batch = &batchRun{action: action, queue: pkgs}
		return m.nextInBatch()
	})
	return nil
}

func (m *Model) nextInBatch() tea.Cmd {
	b := m.batch
	if len(b.queue) == 0 {
		return m.finishBatch()
	}
	pkg := b.queue[0]
	b.queue = b.queue[1:]
	return m.runAction(pkg, b.action)
}

// continueBatch records one result. A failure pauses the batch until the
// error is acknowledged; Esc drops the rest of the queue.
func (m *Model) continueBatch(done actionDoneMsg) tea.Cmd {
	b := m.batch
	if done.err == nil {
		b.done++
		delete(m.tagged, done.pkg.Name)
		events.Action.Success(fmt.Sprintf("%s %s", pastTense(done.action), done.pkg.Name))
		return m.nextInBatch()
	}
	err := fmt.Errorf("%s %s: %w", done.action, done.pkg.Name, done.err)
	events.Action.Error(err)
	logging.Error(err)
	b.failed = append(b.failed, done.pkg.Name)
	if len(b.queue) == 0 {
		return m.finishBatch()
	}
	box := widget.NewErrorBox(err.Error(), m.styles)
	box.SetInfo("Enter: Continue | Esc: Cancel remaining")
	m.openDialog("Error", box, func(res widget.Result) tea.Cmd {
		if res.Signal == widget.SignalCancel {
			b.skipped = len(b.queue)
			b.queue = nil
		}
		return m.nextInBatch()
	})
	return nil
}

func (m *Model) finishBatch() tea.Cmd {
	b := m.batch
	m.batch = nil
	lines := []string{fmt.Sprintf("%s: %d", pastTense(b.action), b.done)}
	if len(b.failed) > 0 {
		lines = append(lines, fmt.Sprintf("Failed: %s", strings.Join(b.failed, ", ")))
	}
	if b.skipped > 0 {
		lines = append(lines, fmt.Sprintf("Skipped: %d", b.skipped))
	}
	m.showMessage("Summary", strings.Join(lines, "\n"))
	return m.loadCatalog("Refreshing")
}

func (m *Model) syncRepo() tea.Cmd {
	m.confirm("Sync", "Sync the repository with upstream?", m.runSync)
	return nil
}

func (m *Model) showHelp() tea.Cmd {
	text := m.help.FullHelpView(m.keys.FullHelp()) + "\n\n" +
		m.help.FullHelpView([][]key.Binding{
			{widget.Keys.Up, widget.Keys.Down, widget.Keys.PageUp, widget.Keys.PageDown},
			{widget.Keys.Home, widget.Keys.End, widget.Keys.Confirm, widget.Keys.Cancel},
		})
	view := widget.NewTextView("Help", text, m.styles)
	view.SetWrap(false)
	m.openDialog("Help", view, nil)
	return nil
}
