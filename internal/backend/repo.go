package backend

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/atomicstack/sbbrowse/internal/format/table"
	"github.com/atomicstack/sbbrowse/internal/logging/events"
)

// Config locates the repository and the commands used to act on it.
type Config struct {
	RepoDir       string
	PackageLogDir string
	BlacklistFile string
	// Commands maps each action to a shell template; see Expand.
	Commands    map[Action]string
	SyncCommand string
	Shell       string
}

// DefaultCommands drive sbotools.
func DefaultCommands() map[Action]string {
	return map[Action]string{
		ActionInstall:   "sboinstall -r {name}",
		ActionRemove:    "removepkg {name}",
		ActionUpgrade:   "sboupgrade -r {name}",
		ActionReinstall: "sboinstall -r --reinstall {name}",
	}
}

// Repo is a Source backed by a SlackBuild tree on disk.
type Repo struct {
	cfg    Config
	runner Runner

	mu      sync.RWMutex
	catalog *Catalog
}

// NewRepo returns a repository reader. A nil runner executes through the
// configured shell.
func NewRepo(cfg Config, runner Runner) *Repo {
	if cfg.Commands == nil {
		cfg.Commands = DefaultCommands()
	}
	if runner == nil {
		runner = ShellRunner{Shell: cfg.Shell}
	}
	return &Repo{cfg: cfg, runner: runner}
}

// Packages rescans the repository, the package log and the blacklist.
func (r *Repo) Packages(ctx context.Context) (*Catalog, error) {
	blacklist, err := LoadBlacklist(r.cfg.BlacklistFile)
	if err != nil {
		return nil, err
	}
	installed, err := ReadInstalled(r.cfg.PackageLogDir)
	if err != nil {
		return nil, err
	}
	packages, err := r.scan(ctx)
	if err != nil {
		return nil, err
	}
	for i := range packages {
		pkg := &packages[i]
		if inst, ok := installed[pkg.Name]; ok {
			pkg.Installed = true
			pkg.InstalledVersion = inst.Version
			pkg.Upgradable = inst.Version != pkg.Version
		}
	}
	catalog := NewCatalog(packages)
	catalog.SetBlacklisted(blacklist)
	r.mu.Lock()
	r.catalog = catalog
	r.mu.Unlock()
	events.Backend.Load(r.cfg.RepoDir, len(catalog.Categories), len(catalog.Packages))
	return catalog, nil
}

func (r *Repo) scan(ctx context.Context) ([]Package, error) {
	categories, err := os.ReadDir(r.cfg.RepoDir)
	if err != nil {
		return nil, fmt.Errorf("read repository: %w", err)
	}
	var packages []Package
	for _, cat := range categories {
		if !cat.IsDir() || strings.HasPrefix(cat.Name(), ".") {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		catDir := filepath.Join(r.cfg.RepoDir, cat.Name())
		builds, err := os.ReadDir(catDir)
		if err != nil {
			return nil, fmt.Errorf("read category %s: %w", cat.Name(), err)
		}
		for _, build := range builds {
			if !build.IsDir() {
				continue
			}
			dir := filepath.Join(catDir, build.Name())
			pkg, err := readPackage(cat.Name(), dir, build.Name())
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			if err != nil {
				return nil, err
			}
			packages = append(packages, pkg)
		}
	}
	return packages, nil
}

func readPackage(category, dir, name string) (Package, error) {
	f, err := os.Open(filepath.Join(dir, name+".info"))
	if err != nil {
		return Package{}, err
	}
	defer f.Close()
	info, err := ParseInfo(f)
	if err != nil {
		return Package{}, fmt.Errorf("%s/%s: %w", category, name, err)
	}
	return Package{
		Name:     name,
		Category: category,
		Version:  info["VERSION"],
		Requires: splitRequires(info["REQUIRES"]),
		Info:     info,
		Dir:      dir,
	}, nil
}

// ReadInstalled lists the package log directory. A missing directory means
// nothing is installed.
func ReadInstalled(dir string) (map[string]InstalledPackage, error) {
	installed := make(map[string]InstalledPackage)
	if strings.TrimSpace(dir) == "" {
		return installed, nil
	}
	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return installed, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read package log: %w", err)
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if pkg, ok := ParsePackageID(entry.Name()); ok {
			installed[pkg.Name] = pkg
		}
	}
	return installed, nil
}

func (r *Repo) snapshot() *Catalog {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.catalog
}

func (r *Repo) lookup(name string) (Package, error) {
	pkg, ok := r.snapshot().Lookup(name)
	if !ok {
		return Package{}, fmt.Errorf("%w: %s", ErrUnknownPackage, name)
	}
	return pkg, nil
}

// BuildOrder resolves name against the last scan.
func (r *Repo) BuildOrder(name string) (Order, error) {
	c := r.snapshot()
	if c == nil {
		return Order{}, fmt.Errorf("%w: %s", ErrUnknownPackage, name)
	}
	return c.BuildOrder(name)
}

// InverseDeps lists packages requiring name in the last scan.
func (r *Repo) InverseDeps(name string) ([]Package, error) {
	c := r.snapshot()
	if c == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownPackage, name)
	}
	return c.InverseDeps(name)
}

// PackageDir returns the SlackBuild directory of name.
func (r *Repo) PackageDir(name string) (string, error) {
	pkg, err := r.lookup(name)
	if err != nil {
		return "", err
	}
	return pkg.Dir, nil
}

// Readme returns the README shipped with name.
func (r *Repo) Readme(name string) (string, error) {
	pkg, err := r.lookup(name)
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(filepath.Join(pkg.Dir, "README"))
	if err != nil {
		return "", fmt.Errorf("read README: %w", err)
	}
	return string(data), nil
}

// Info formats the package metadata as an aligned two-column table.
func (r *Repo) Info(name string) (string, error) {
	pkg, err := r.lookup(name)
	if err != nil {
		return "", err
	}
	return FormatInfo(pkg), nil
}

// FormatInfo renders the interesting fields of pkg.
func FormatInfo(pkg Package) string {
	installed := "no"
	if pkg.Installed {
		installed = pkg.InstalledVersion
	}
	requires := strings.Join(pkg.Requires, " ")
	if requires == "" {
		requires = "(none)"
	}
	rows := [][]string{
		{"Name:", pkg.Name},
		{"Category:", pkg.Category},
		{"Version:", pkg.Version},
		{"Installed:", installed},
		{"Requires:", requires},
	}
	extra := make([]string, 0, len(pkg.Info))
	for key := range pkg.Info {
		switch key {
		case "HOMEPAGE", "MAINTAINER", "EMAIL":
			extra = append(extra, key)
		}
	}
	sort.Strings(extra)
	for _, key := range extra {
		label := strings.ToUpper(key[:1]) + strings.ToLower(key[1:]) + ":"
		rows = append(rows, []string{label, pkg.Info[key]})
	}
	if pkg.Blacklisted {
		rows = append(rows, []string{"Blacklisted:", "yes"})
	}
	return strings.Join(table.Format(rows, nil), "\n")
}
