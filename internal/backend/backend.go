// Package backend reads a SlackBuild repository and the local package
// database, and runs package actions.
package backend

import (
	"context"
	"errors"
	"os/exec"
)

// Action is a package modification.
type Action string

const (
	ActionInstall   Action = "install"
	ActionRemove    Action = "remove"
	ActionUpgrade   Action = "upgrade"
	ActionReinstall Action = "reinstall"
)

// ErrUnknownPackage is returned for names absent from the repository.
var ErrUnknownPackage = errors.New("unknown package")

// Package is one SlackBuild and its local install state.
type Package struct {
	Name             string
	Category         string
	Version          string
	InstalledVersion string
	Installed        bool
	Upgradable       bool
	Blacklisted      bool
	Requires         []string
	Info             map[string]string
	Dir              string
}

// Source is everything the UI needs from the repository.
type Source interface {
	Packages(ctx context.Context) (*Catalog, error)
	Execute(ctx context.Context, action Action, pkg Package) error
	Sync(ctx context.Context) error
	BuildOrder(name string) (Order, error)
	InverseDeps(name string) ([]Package, error)
	Info(name string) (string, error)
	Readme(name string) (string, error)
	PackageDir(name string) (string, error)
}

// Commander is implemented by sources whose actions should run in the
// foreground terminal rather than in the background.
type Commander interface {
	Command(action Action, pkg Package) (*exec.Cmd, error)
	SyncCommand() (*exec.Cmd, error)
}
