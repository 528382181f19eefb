package widget

import (
	"github.com/atomicstack/sbbrowse/internal/theme"
	"github.com/atomicstack/sbbrowse/internal/ui/state"
)

// Build action labels.
const (
	ActionViewReadme  = "View README"
	ActionBrowseFiles = "Browse files"
	ActionInstall     = "Install"
	ActionRemove      = "Remove"
	ActionUpgrade     = "Upgrade"
	ActionReinstall   = "Reinstall"
	ActionBuildOrder  = "Compute build order"
	ActionInverseDeps = "List inverse deps"
	ActionPackageInfo = "Show package info"
)

// BuildActions lists the actions offered for build, derived from its
// installed, blacklisted and upgradable properties.
func BuildActions(build state.ListItem) []state.ListItem {
	add := func(items []state.ListItem, name string, hotkey int) []state.ListItem {
		item := state.NewItem(name)
		item.Hotkey = hotkey
		return append(items, item)
	}
	var items []state.ListItem
	items = add(items, ActionViewReadme, 0)
	items = add(items, ActionBrowseFiles, 0)
	switch {
	case !build.BoolProp(PropInstalled):
		items = add(items, ActionInstall, 0)
	case build.BoolProp(PropBlacklisted):
	case build.BoolProp(PropUpgradable):
		items = add(items, ActionRemove, 0)
		items = add(items, ActionUpgrade, 0)
	default:
		items = add(items, ActionRemove, 0)
		items = add(items, ActionReinstall, 1)
	}
	items = add(items, ActionBuildOrder, 0)
	items = add(items, ActionInverseDeps, 0)
	items = add(items, ActionPackageInfo, 0)
	return items
}

// NewBuildActionBox returns the action menu for build.
func NewBuildActionBox(build state.ListItem, styles *theme.Styles) *SelectionBox {
	s := NewSelectionBox("Select an action", styles)
	s.SetItems(BuildActions(build))
	return s
}
