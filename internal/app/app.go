package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/atomicstack/sbbrowse/internal/backend"
	"github.com/atomicstack/sbbrowse/internal/logging"
	"github.com/atomicstack/sbbrowse/internal/theme"
	"github.com/atomicstack/sbbrowse/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

// Layouts of the two main panes.
const (
	LayoutHorizontal = "horizontal"
	LayoutVertical   = "vertical"
)

const watchInterval = 250 * time.Millisecond

// Config describes user-provided application options.
type Config struct {
	Backend    backend.Config
	Layout     string
	Width      int
	Height     int
	ShowFooter bool
	Verbose    bool
	Watch      bool
	Palette    theme.Palette
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	repo := backend.NewRepo(cfg.Backend, nil)
	var watcher *backend.Watcher
	if cfg.Watch {
		w, err := backend.NewWatcher(cfg.Backend.PackageLogDir, cfg.Backend.BlacklistFile, watchInterval)
		if err != nil {
			// The browser still works without live updates.
			logging.Error(fmt.Errorf("watch package state: %w", err))
		} else {
			watcher = w
			defer watcher.Stop()
		}
	}
	model := ui.NewModel(repo, watcher, ui.Options{
		Width:      cfg.Width,
		Height:     cfg.Height,
		ShowFooter: cfg.ShowFooter,
		Verbose:    cfg.Verbose,
		Vertical:   cfg.Layout == LayoutVertical,
		Styles:     theme.FromPalette(cfg.Palette),
	})
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
