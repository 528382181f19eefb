package widget

import (
	"fmt"
	"path/filepath"

	"github.com/atomicstack/sbbrowse/internal/fsys"
	"github.com/atomicstack/sbbrowse/internal/logging"
	"github.com/atomicstack/sbbrowse/internal/theme"
	"github.com/atomicstack/sbbrowse/internal/ui/state"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const parentEntry = ".."

// DirListBox browses a directory tree rooted at the first directory it was
// given. Below the root the listing starts with "..".
type DirListBox struct {
	*ListBox
	lister fsys.Lister
	dir    string
	level  int
}

// NewDirListBox returns an empty browser reading through lister.
func NewDirListBox(title string, lister fsys.Lister, styles *theme.Styles) *DirListBox {
	l := NewListBox(title, DirRows, styles)
	l.SetInfo("Enter: View | Esc: Back")
	l.SetActivated(true)
	return &DirListBox{ListBox: l, lister: lister}
}

// Directory returns the directory being shown.
func (d *DirListBox) Directory() string { return d.dir }

// Level returns how many directories below the root the listing is.
func (d *DirListBox) Level() int { return d.level }

// SetDirectory lists path, which is levelChange levels away from the current
// one. On error the previous directory, level and items are kept.
func (d *DirListBox) SetDirectory(path string, levelChange int) error {
	if d.level+levelChange < 0 {
		return ErrTopLevel
	}
	entries, err := d.lister.List(path)
	if err != nil {
		return err
	}
	items := make([]state.ListItem, 0, len(entries)+1)
	if d.level+levelChange > 0 {
		up := state.NewItem(parentEntry)
		up.SetProp(PropType, string(fsys.TypeDir))
		items = append(items, up)
	}
	for _, entry := range entries {
		item := state.NewItem(entry.Name)
		item.SetProp(PropType, string(entry.Type))
		items = append(items, item)
	}
	d.dir = path
	d.level += levelChange
	d.SetItems(items)
	return nil
}

// NavigateUp lists the parent directory.
func (d *DirListBox) NavigateUp() error {
	if d.level == 0 {
		return ErrTopLevel
	}
	parent, err := fsys.Up(d.dir)
	if err != nil {
		return err
	}
	return d.SetDirectory(parent, -1)
}

// HandleKey opens directories on Enter and confirms files with their path.
func (d *DirListBox) HandleKey(msg tea.KeyMsg) Result {
	if key.Matches(msg, d.keys.Confirm) {
		return d.open()
	}
	return d.ListBox.HandleKey(msg)
}

// HandleMouse opens the entry on a second click.
func (d *DirListBox) HandleMouse(e MouseEvent) Result {
	res := d.ListBox.HandleMouse(e)
	if res.Signal == SignalConfirm {
		return d.open()
	}
	return res
}

func (d *DirListBox) open() Result {
	item, ok := d.HighlightedItem()
	if !ok {
		return none()
	}
	if item.Prop(PropType) != string(fsys.TypeDir) {
		return confirm(&item, filepath.Join(d.dir, item.Name))
	}
	var err error
	if item.Name == parentEntry {
		err = d.NavigateUp()
	} else {
		err = d.SetDirectory(filepath.Join(d.dir, item.Name), 1)
	}
	if err != nil {
		logging.Error(fmt.Errorf("browse %s: %w", item.Name, err))
	}
	return none()
}
