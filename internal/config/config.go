package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/atomicstack/sbbrowse/internal/app"
	"github.com/atomicstack/sbbrowse/internal/backend"
	"github.com/atomicstack/sbbrowse/internal/theme"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// Config captures runtime configuration for the application.
type Config struct {
	App      app.Config
	Logging  Logging
	Features Features
	File     string
	Flags    map[string]string
	Args     []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

type Features struct {
	Verbose bool
	Watch   bool
}

const (
	envConfigFile    = "SBBROWSE_CONFIG"
	envRepoDir       = "SBBROWSE_REPO_DIR"
	envPackageLogDir = "SBBROWSE_PACKAGE_LOG_DIR"
	envBlacklist     = "SBBROWSE_BLACKLIST"
	envSyncCommand   = "SBBROWSE_SYNC_COMMAND"
	envShell         = "SBBROWSE_SHELL"
	envLayout        = "SBBROWSE_LAYOUT"
	envWidth         = "SBBROWSE_WIDTH"
	envHeight        = "SBBROWSE_HEIGHT"
	envShowFooter    = "SBBROWSE_FOOTER"
	envVerbose       = "SBBROWSE_VERBOSE"
	envWatch         = "SBBROWSE_WATCH"
	envTrace         = "SBBROWSE_TRACE"
	envLogFile       = "SBBROWSE_LOG_FILE"
)

const (
	defaultRepoDir       = "/var/lib/sbopkg/SBo-git"
	defaultPackageLogDir = "/var/lib/pkgtools/packages"
	defaultBlacklist     = "/etc/sbotools/sbotools.hints"
	defaultSyncCommand   = "sbocheck"
)

// fileConfig is the YAML layout of the optional configuration file.
type fileConfig struct {
	RepoDir       string            `yaml:"repo_dir"`
	PackageLogDir string            `yaml:"package_log_dir"`
	Blacklist     string            `yaml:"blacklist"`
	SyncCommand   string            `yaml:"sync_command"`
	Shell         string            `yaml:"shell"`
	Commands      map[string]string `yaml:"commands"`
	Layout        string            `yaml:"layout"`
	Width         *int              `yaml:"width"`
	Height        *int              `yaml:"height"`
	Footer        *bool             `yaml:"footer"`
	Verbose       *bool             `yaml:"verbose"`
	Watch         *bool             `yaml:"watch"`
	Trace         *bool             `yaml:"trace"`
	LogFile       string            `yaml:"log_file"`
	Colors        theme.Palette     `yaml:"colors"`
}

// LoadArgs parses configuration from CLI arguments and environment
// variables on a private flag set.
func LoadArgs(args []string, environ []string) (Config, error) {
	fs := pflag.NewFlagSet("sbbrowse", pflag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))
	BindFlags(fs)
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return Resolve(fs, args, environ)
}

// BindFlags registers every option on fs. Defaults are applied by Resolve so
// that the environment and the config file can sit between them and the
// command line.
func BindFlags(fs *pflag.FlagSet) {
	fs.StringP("config", "c", "", "path to a YAML configuration file")
	fs.String("repo-dir", "", "SlackBuild repository root")
	fs.String("package-log-dir", "", "directory listing installed packages")
	fs.String("blacklist", "", "file of package patterns that must not be modified")
	fs.String("sync-command", "", "command that updates the repository")
	fs.String("shell", "", "shell used to run package commands")
	fs.StringToString("command", nil, "action command template, e.g. install='sboinstall {name}'")
	fs.StringP("layout", "l", "", "pane layout: horizontal or vertical")
	fs.Int("width", 0, "desired viewport width in cells (0 uses terminal width)")
	fs.Int("height", 0, "desired viewport height in rows (0 uses terminal height)")
	fs.Bool("footer", false, "enable footer hint row")
	fs.Bool("verbose", false, "print success messages for actions")
	fs.Bool("watch", true, "reload when the package log or blacklist changes")
	fs.Bool("trace", false, "enable verbose JSON trace logging")
	fs.String("log-file", "", "path to the log file")
}

type layers struct {
	fs   *pflag.FlagSet
	env  map[string]string
	file fileConfig
}

// Resolve merges a parsed flag set with the environment and the config file.
// Precedence is flag, then environment, then file, then built-in default.
func Resolve(fs *pflag.FlagSet, args []string, environ []string) (Config, error) {
	l := layers{fs: fs, env: parseEnv(environ)}
	path := l.str("config", envConfigFile, "", "")
	file, err := readFile(path)
	if err != nil {
		return Config{}, err
	}
	l.file = file

	width, err := l.int("width", envWidth, file.Width, 0)
	if err != nil {
		return Config{}, err
	}
	height, err := l.int("height", envHeight, file.Height, 0)
	if err != nil {
		return Config{}, err
	}
	footer, err := l.bool("footer", envShowFooter, file.Footer, false)
	if err != nil {
		return Config{}, err
	}
	verbose, err := l.bool("verbose", envVerbose, file.Verbose, false)
	if err != nil {
		return Config{}, err
	}
	watch, err := l.bool("watch", envWatch, file.Watch, true)
	if err != nil {
		return Config{}, err
	}
	trace, err := l.bool("trace", envTrace, file.Trace, false)
	if err != nil {
		return Config{}, err
	}
	commands, err := l.commands()
	if err != nil {
		return Config{}, err
	}

	layout := strings.ToLower(l.str("layout", envLayout, file.Layout, app.LayoutHorizontal))
	logFile := l.str("log-file", envLogFile, file.LogFile, "")

	cfg := Config{
		App: app.Config{
			Backend: backend.Config{
				RepoDir:       l.str("repo-dir", envRepoDir, file.RepoDir, defaultRepoDir),
				PackageLogDir: l.str("package-log-dir", envPackageLogDir, file.PackageLogDir, defaultPackageLogDir),
				BlacklistFile: l.str("blacklist", envBlacklist, file.Blacklist, defaultBlacklist),
				SyncCommand:   l.str("sync-command", envSyncCommand, file.SyncCommand, defaultSyncCommand),
				Shell:         l.str("shell", envShell, file.Shell, ""),
				Commands:      commands,
			},
			Layout:     layout,
			Width:      width,
			Height:     height,
			ShowFooter: footer,
			Verbose:    verbose,
			Watch:      watch,
			Palette:    theme.DefaultPalette().Merge(file.Colors),
		},
		Logging: Logging{
			FilePath: logFile,
			Trace:    trace,
		},
		Features: Features{
			Verbose: verbose,
			Watch:   watch,
		},
		File: path,
		Flags: map[string]string{
			"repoDir": l.str("repo-dir", envRepoDir, file.RepoDir, defaultRepoDir),
			"layout":  layout,
			"width":   strconv.Itoa(width),
			"height":  strconv.Itoa(height),
			"footer":  strconv.FormatBool(footer),
			"trace":   strconv.FormatBool(trace),
			"verbose": strconv.FormatBool(verbose),
			"watch":   strconv.FormatBool(watch),
			"logFile": logFile,
		},
		Args: append([]string(nil), args...),
	}
	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func readFile(path string) (fileConfig, error) {
	var file fileConfig
	if strings.TrimSpace(path) == "" {
		return file, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return file, fmt.Errorf("config file %s not found", path)
	}
	if err != nil {
		return file, fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &file); err != nil {
		return file, fmt.Errorf("parse config file %s: %w", path, err)
	}
	return file, nil
}

func (l layers) changed(name string) bool {
	f := l.fs.Lookup(name)
	return f != nil && f.Changed
}

func (l layers) str(name, envKey, file, fallback string) string {
	if l.changed(name) {
		v, _ := l.fs.GetString(name)
		return v
	}
	if v, ok := l.env[envKey]; ok {
		return v
	}
	if file != "" {
		return file
	}
	return fallback
}

func (l layers) int(name, envKey string, file *int, fallback int) (int, error) {
	if l.changed(name) {
		return l.fs.GetInt(name)
	}
	if v, ok := envInt(l.env, envKey); ok {
		return v, nil
	}
	if file != nil {
		return *file, nil
	}
	return fallback, nil
}

func (l layers) bool(name, envKey string, file *bool, fallback bool) (bool, error) {
	if l.changed(name) {
		return l.fs.GetBool(name)
	}
	if v, ok := envBool(l.env, envKey); ok {
		return v, nil
	}
	if file != nil {
		return *file, nil
	}
	return fallback, nil
}

func (l layers) commands() (map[backend.Action]string, error) {
	commands := backend.DefaultCommands()
	merge := func(src map[string]string) error {
		for name, template := range src {
			action := backend.Action(strings.ToLower(strings.TrimSpace(name)))
			if _, ok := commands[action]; !ok {
				return fmt.Errorf("unknown action %q in command templates", name)
			}
			commands[action] = template
		}
		return nil
	}
	if err := merge(l.file.Commands); err != nil {
		return nil, err
	}
	if l.changed("command") {
		flags, err := l.fs.GetStringToString("command")
		if err != nil {
			return nil, err
		}
		if err := merge(flags); err != nil {
			return nil, err
		}
	}
	return commands, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

// envInt ignores unset, blank and malformed values.
func envInt(env map[string]string, key string) (int, bool) {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return 0, false
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}
	return parsed, true
}

func envBool(env map[string]string, key string) (bool, bool) {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return false, false
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return false, false
	}
	return parsed, true
}

// Validate rejects sizes and layouts the UI cannot honour.
func Validate(cfg Config) error {
	if cfg.App.Width < 0 {
		return fmt.Errorf("width must be >= 0 (got %d)", cfg.App.Width)
	}
	if cfg.App.Height < 0 {
		return fmt.Errorf("height must be >= 0 (got %d)", cfg.App.Height)
	}
	switch cfg.App.Layout {
	case app.LayoutHorizontal, app.LayoutVertical:
	default:
		return fmt.Errorf("layout must be %q or %q (got %q)", app.LayoutHorizontal, app.LayoutVertical, cfg.App.Layout)
	}
	if strings.TrimSpace(cfg.App.Backend.RepoDir) == "" {
		return errors.New("repository directory must be set")
	}
	return nil
}
