package widget

import (
	"github.com/atomicstack/sbbrowse/internal/format/table"
	"github.com/atomicstack/sbbrowse/internal/ui/state"
)

// Item property keys shared by the list renderers and the compositor.
const (
	PropInstalled   = "installed"
	PropUpgradable  = "upgradable"
	PropBlacklisted = "blacklisted"
	PropCategory    = "category"
	PropType        = "type"
	PropVersion     = "version"
	PropInstalledAs = "installed_version"
)

// Row is the rendered text of one list item plus the emphasis it asks for.
type Row struct {
	Text   string
	Bold   bool
	Tagged bool
	// Hotkey is the rune offset of the accelerator in Text, or state.NoHotkey.
	Hotkey int
}

// RowRenderer turns an item into a row for a list of the given inner width.
type RowRenderer func(item state.ListItem, width int) Row

const tagMarker = "*"

func marker(tagged bool) string {
	if tagged {
		return tagMarker + " "
	}
	return "  "
}

// PlainRows renders the item name with its hotkey.
func PlainRows(item state.ListItem, width int) Row {
	return Row{Text: item.Name, Hotkey: item.Hotkey}
}

// CategoryRows renders a category. Tagged is set by the owner whenever any
// package in the category carries a tag.
func CategoryRows(item state.ListItem, width int) Row {
	return Row{Text: marker(item.Tagged) + item.Name, Tagged: item.Tagged, Hotkey: state.NoHotkey}
}

// BuildRows renders a package name with its status flush right.
func BuildRows(item state.ListItem, width int) Row {
	return Row{
		Text:   table.Columns(marker(item.Tagged)+item.Name, BuildStatus(item), width),
		Tagged: item.Tagged,
		Hotkey: state.NoHotkey,
	}
}

// BuildColumns labels the columns drawn by BuildRows.
func BuildColumns() (name, status string) {
	return marker(false) + "Name", "Status"
}

// BuildStatus summarises a package's install state.
func BuildStatus(item state.ListItem) string {
	switch {
	case item.BoolProp(PropBlacklisted):
		return "blacklisted"
	case item.BoolProp(PropUpgradable):
		return "upgradable"
	case item.BoolProp(PropInstalled):
		return "installed"
	default:
		return ""
	}
}

// DirRows renders directory entries: directories bold with a trailing slash,
// symlinks with a trailing @.
func DirRows(item state.ListItem, width int) Row {
	switch item.Prop(PropType) {
	case "dir":
		return Row{Text: item.Name + "/", Bold: true, Hotkey: state.NoHotkey}
	case "lnk":
		return Row{Text: item.Name + "@", Hotkey: state.NoHotkey}
	default:
		return Row{Text: item.Name, Hotkey: state.NoHotkey}
	}
}
