package ui

import (
	"strings"
	"unicode"

	"github.com/atomicstack/sbbrowse/internal/backend"
	"github.com/atomicstack/sbbrowse/internal/logging/events"
	"github.com/atomicstack/sbbrowse/internal/ui/state"
	"github.com/atomicstack/sbbrowse/internal/ui/widget"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	headerRows     = 1
	statusRows     = 1
	minCategoryCol = 16
)

type searchQuery struct {
	term          string
	caseSensitive bool
	wholeWord     bool
}

// matches reports whether name contains the term. Whole-word matching
// requires the match to be bounded by non-alphanumeric runes.
func (q *searchQuery) matches(name string) bool {
	term := q.term
	if !q.caseSensitive {
		name = strings.ToLower(name)
		term = strings.ToLower(term)
	}
	if term == "" {
		return true
	}
	for start := 0; start <= len(name)-len(term); {
		idx := strings.Index(name[start:], term)
		if idx < 0 {
			return false
		}
		idx += start
		if !q.wholeWord || (boundaryBefore(name, idx) && boundaryAfter(name, idx+len(term))) {
			return true
		}
		start = idx + 1
	}
	return false
}

func boundaryBefore(s string, idx int) bool {
	if idx == 0 {
		return true
	}
	r := []rune(s[:idx])
	return !isWordRune(r[len(r)-1])
}

func boundaryAfter(s string, idx int) bool {
	if idx >= len(s) {
		return true
	}
	return !isWordRune([]rune(s[idx:])[0])
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

func (m *Model) newBuildList(title string) *widget.ListBox {
	l := widget.NewListBox(title, widget.BuildRows, m.styles)
	l.SetColumnHeader(widget.BuildColumns())
	l.SetInfo("Enter: Actions | Esc: Categories")
	return l
}

// visible applies the active filter and search to pkg.
func (m *Model) visible(pkg backend.Package) bool {
	if m.search != nil && !m.search.matches(pkg.Name) {
		return false
	}
	switch m.filter {
	case widget.FilterInstalled:
		return pkg.Installed
	case widget.FilterUpgradable:
		return pkg.Upgradable
	case widget.FilterTagged:
		return m.tagged[pkg.Name]
	case widget.FilterBlacklisted:
		return pkg.Blacklisted
	case widget.FilterNonDependency:
		return pkg.Installed && !m.catalog.IsDependency(pkg.Name)
	}
	return true
}

func buildItem(pkg backend.Package, tagged bool) state.ListItem {
	item := state.NewItem(pkg.Name)
	item.Tagged = tagged
	item.SetProp(widget.PropCategory, pkg.Category)
	item.SetProp(widget.PropVersion, pkg.Version)
	item.SetBoolProp(widget.PropInstalled, pkg.Installed)
	item.SetBoolProp(widget.PropUpgradable, pkg.Upgradable)
	item.SetBoolProp(widget.PropBlacklisted, pkg.Blacklisted)
	if pkg.Installed {
		item.SetProp(widget.PropInstalledAs, pkg.InstalledVersion)
	}
	return item
}

func buildItems(pkgs []backend.Package, tagged map[string]bool) []state.ListItem {
	items := make([]state.ListItem, 0, len(pkgs))
	for _, pkg := range pkgs {
		items = append(items, buildItem(pkg, tagged[pkg.Name]))
	}
	return items
}

// rebuild regenerates both panes from the catalog, keeping highlights on the
// same names where they survive.
func (m *Model) rebuild() {
	selected := ""
	if item, ok := m.categories.HighlightedItem(); ok {
		selected = item.Name
	}
	byCategory := map[string][]backend.Package{}
	var categories []string
	if m.catalog != nil {
		for _, pkg := range m.catalog.Packages {
			if !m.visible(pkg) {
				continue
			}
			if _, ok := byCategory[pkg.Category]; !ok {
				categories = append(categories, pkg.Category)
			}
			byCategory[pkg.Category] = append(byCategory[pkg.Category], pkg)
		}
	}

	catItems := make([]state.ListItem, 0, len(categories))
	for _, category := range categories {
		item := state.NewItem(category)
		item.Tagged = m.anyTagged(byCategory[category])
		catItems = append(catItems, item)
	}
	m.categories.SetItems(catItems)
	if idx := m.categories.IndexOf(selected); idx >= 0 {
		m.categories.SetHighlight(idx)
	}

	builds := make(map[string]*widget.ListBox, len(categories))
	for _, category := range categories {
		l, ok := m.builds[category]
		if !ok {
			l = m.newBuildList(category)
		}
		previous := ""
		if item, ok := l.HighlightedItem(); ok {
			previous = item.Name
		}
		l.SetItems(buildItems(byCategory[category], m.tagged))
		if idx := l.IndexOf(previous); idx >= 0 {
			l.SetHighlight(idx)
		}
		builds[category] = l
	}
	m.builds = builds
	m.syncBuildKey()
	if m.active == paneBuilds && m.currentBuilds().Len() == 0 {
		m.active = paneCategories
	}
	m.setActive(m.active)
	m.layout()
}

func (m *Model) anyTagged(pkgs []backend.Package) bool {
	for _, pkg := range pkgs {
		if m.tagged[pkg.Name] {
			return true
		}
	}
	return false
}

// syncBuildKey points the build pane at the highlighted category.
func (m *Model) syncBuildKey() {
	name := ""
	if item, ok := m.categories.HighlightedItem(); ok {
		name = item.Name
	}
	if name != m.buildKey {
		m.buildKey = name
		if l := m.currentBuilds(); l != nil {
			l.SetActivated(m.active == paneBuilds)
		}
	}
}

func (m *Model) currentBuilds() *widget.ListBox {
	if l, ok := m.builds[m.buildKey]; ok {
		return l
	}
	return m.noBuilds
}

func (m *Model) paneList(p pane) *widget.ListBox {
	if p == paneBuilds {
		return m.currentBuilds()
	}
	return m.categories
}

func (m *Model) activeList() *widget.ListBox { return m.paneList(m.active) }

func (m *Model) setActive(p pane) {
	changed := p != m.active
	m.active = p
	m.categories.SetActivated(p == paneCategories)
	m.noBuilds.SetActivated(p == paneBuilds)
	for _, l := range m.builds {
		l.SetActivated(p == paneBuilds)
	}
	if changed {
		events.List.Activate(p.String())
	}
}

func (m *Model) switchPane() {
	if m.active == paneBuilds {
		m.setActive(paneCategories)
		return
	}
	if m.currentBuilds().Len() > 0 {
		m.setActive(paneBuilds)
	}
}

func (m *Model) paneArea() widget.Rect {
	bottom := statusRows
	if m.showFooter {
		bottom++
	}
	return widget.Rect{X: 0, Y: headerRows, Width: m.width, Height: max(m.height-headerRows-bottom, 0)}
}

func (m *Model) paneRects() (categories, builds widget.Rect) {
	area := m.paneArea()
	if m.vertical {
		top := area.Height / 2
		categories = widget.Rect{X: area.X, Y: area.Y, Width: area.Width, Height: top}
		builds = widget.Rect{X: area.X, Y: area.Y + top, Width: area.Width, Height: area.Height - top}
		return categories, builds
	}
	left := min(max(area.Width/3, minCategoryCol), area.Width)
	categories = widget.Rect{X: area.X, Y: area.Y, Width: left, Height: area.Height}
	builds = widget.Rect{X: area.X + left, Y: area.Y, Width: area.Width - left, Height: area.Height}
	return categories, builds
}

// layout sizes both panes for the current window and layout.
func (m *Model) layout() {
	catRect, buildRect := m.paneRects()
	m.categories.Resize(catRect.Width, catRect.Height)
	m.noBuilds.Resize(buildRect.Width, buildRect.Height)
	for _, l := range m.builds {
		l.Resize(buildRect.Width, buildRect.Height)
	}
	events.App.Layout(m.layoutName(), m.width, m.height)
}

func (m *Model) layoutName() string {
	if m.vertical {
		return "vertical"
	}
	return "horizontal"
}

func (m *Model) toggleLayout() {
	m.vertical = !m.vertical
	m.layout()
	m.resizeDialogs()
}

// tag toggles the highlighted build, or every visible build of the
// highlighted category when the category pane is active.
func (m *Model) tag() {
	if m.active == paneCategories {
		m.tagCategory()
		return
	}
	l := m.currentBuilds()
	item, ok := l.ToggleTag()
	if !ok {
		return
	}
	m.setTagged(item.Name, item.Tagged)
	events.List.Tag(paneBuilds.String(), item.Name, item.Tagged)
	if m.filter == widget.FilterTagged {
		m.rebuild()
		return
	}
	if idx := m.categories.IndexOf(item.Prop(widget.PropCategory)); idx >= 0 {
		m.categories.SetTagged(idx, len(l.TaggedItems()) > 0)
	}
}

func (m *Model) tagCategory() {
	item, ok := m.categories.HighlightedItem()
	if !ok {
		return
	}
	l := m.currentBuilds()
	tag := len(l.TaggedItems()) < l.Len()
	for _, build := range l.Items() {
		m.setTagged(build.Name, tag)
	}
	events.List.Tag(paneCategories.String(), item.Name, tag)
	m.rebuild()
}

// tagAll tags every visible build, or untags them all when every one is
// already tagged.
func (m *Model) tagAll() {
	var visible []string
	allTagged := true
	for _, l := range m.builds {
		for _, item := range l.Items() {
			visible = append(visible, item.Name)
			allTagged = allTagged && item.Tagged
		}
	}
	if len(visible) == 0 {
		return
	}
	for _, name := range visible {
		m.setTagged(name, !allTagged)
	}
	events.List.Tag("all", "", !allTagged)
	m.rebuild()
}

func (m *Model) setTagged(name string, tagged bool) {
	if tagged {
		m.tagged[name] = true
		return
	}
	delete(m.tagged, name)
}

func (m *Model) startQuickSearch() tea.Cmd {
	if m.activeList().Len() == 0 {
		return nil
	}
	m.quickActive = true
	m.quick.Reset()
	return m.quick.Focus()
}

func (m *Model) stopQuickSearch() {
	m.quickActive = false
	m.quick.Blur()
}

// handleQuickSearchKey feeds the prompt and jumps to the best match after
// every edit. Enter and Esc end the search where it stands.
func (m *Model) handleQuickSearchKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEnter, tea.KeyEsc:
		m.stopQuickSearch()
		return nil
	}
	before := m.quick.Value()
	var cmd tea.Cmd
	m.quick, cmd = m.quick.Update(msg)
	query := m.quick.Value()
	if query == before || query == "" {
		return cmd
	}
	l := m.activeList()
	l.QuickSearch(query)
	events.List.QuickSearch(m.active.String(), query, l.Highlight())
	if m.active == paneCategories {
		m.syncBuildKey()
	}
	return cmd
}

// handlePaneResult reacts to the outcome of an event fed to pane p.
func (m *Model) handlePaneResult(p pane, res widget.Result) tea.Cmd {
	if p == paneCategories {
		m.syncBuildKey()
		switch res.Signal {
		case widget.SignalConfirm:
			if m.currentBuilds().Len() > 0 {
				m.setActive(paneBuilds)
			}
		case widget.SignalCancel:
			if m.search != nil {
				m.clearSearch()
				return nil
			}
			return m.quit("escape")
		}
		return nil
	}
	switch res.Signal {
	case widget.SignalConfirm:
		if res.Item == nil {
			return nil
		}
		if pkg, ok := m.catalog.Lookup(res.Item.Name); ok {
			return m.showBuildActions(pkg)
		}
	case widget.SignalCancel:
		m.setActive(paneCategories)
	}
	return nil
}

func (m *Model) handlePaneKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Left):
		m.setActive(paneCategories)
		return nil
	case key.Matches(msg, m.keys.Right):
		if m.currentBuilds().Len() > 0 {
			m.setActive(paneBuilds)
		}
		return nil
	}
	return m.handlePaneResult(m.active, m.activeList().HandleKey(msg))
}
