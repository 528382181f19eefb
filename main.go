package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/atomicstack/sbbrowse/internal/app"
	"github.com/atomicstack/sbbrowse/internal/backend"
	"github.com/atomicstack/sbbrowse/internal/config"
	"github.com/atomicstack/sbbrowse/internal/logging"
	"github.com/atomicstack/sbbrowse/internal/logging/events"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// exitError carries the process exit status for err.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func main() {
	if err := newRootCmd(os.Args[1:], os.Environ()).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		var exit *exitError
		if errors.As(err, &exit) {
			os.Exit(exit.code)
		}
		os.Exit(1)
	}
}

func newRootCmd(args, environ []string) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "sbbrowse",
		Short:         "Browse, install and upgrade SlackBuilds from a local repository",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Resolve(cmd.Flags(), args, environ)
			if err != nil {
				return &exitError{code: 2, err: fmt.Errorf("configuration error: %w", err)}
			}
			return run(cfg)
		},
	}
	config.BindFlags(cmd.Flags())
	cmd.SetArgs(args)
	return cmd
}

func run(cfg config.Config) error {
	logging.Configure(cfg.Logging.FilePath)
	defer logging.Close()
	logging.SetTraceEnabled(cfg.Logging.Trace)

	terminal := probeTerminal()
	events.App.Start(startupTracePayload(cfg, terminal))
	if !terminal.Interactive {
		return errors.New("stdin and stdout must be a terminal")
	}

	if err := app.Run(cfg.App); err != nil {
		logging.Error(err)
		return err
	}
	return nil
}

// startupTracePayload records how the browser was started and what it found
// on disk.
func startupTracePayload(cfg config.Config, terminal terminalInfo) map[string]interface{} {
	flags := make(map[string]interface{}, len(cfg.Flags)+2)
	for k, v := range cfg.Flags {
		flags[k] = v
	}
	flags["trace"] = cfg.Logging.Trace
	flags["logFile"] = cfg.Logging.FilePath
	payload := map[string]interface{}{
		"argv":     cfg.Args,
		"flags":    flags,
		"config":   cfg,
		"paths":    probePaths(cfg.App.Backend),
		"terminal": terminal,
	}
	if exe, err := os.Executable(); err == nil {
		payload["executable"] = exe
	}
	return payload
}

type pathProbe struct {
	Name   string `json:"name"`
	Path   string `json:"path"`
	Exists bool   `json:"exists"`
	Dir    bool   `json:"dir,omitempty"`
	Error  string `json:"error,omitempty"`
}

func probePaths(cfg backend.Config) []pathProbe {
	paths := []struct{ name, path string }{
		{"repository", cfg.RepoDir},
		{"packages", cfg.PackageLogDir},
		{"blacklist", cfg.BlacklistFile},
	}
	probes := make([]pathProbe, 0, len(paths))
	for _, p := range paths {
		probe := pathProbe{Name: p.name, Path: p.path}
		if p.path != "" {
			info, err := os.Stat(p.path)
			switch {
			case err == nil:
				probe.Exists = true
				probe.Dir = info.IsDir()
			case !errors.Is(err, fs.ErrNotExist):
				probe.Error = err.Error()
			}
		}
		probes = append(probes, probe)
	}
	return probes
}

// terminalInfo describes the standard descriptors. The browser needs stdin
// and stdout attached to a terminal.
type terminalInfo struct {
	Interactive bool     `json:"interactive"`
	Source      string   `json:"source,omitempty"`
	Width       int      `json:"width,omitempty"`
	Height      int      `json:"height,omitempty"`
	Redirected  []string `json:"redirected,omitempty"`
}

func probeTerminal() terminalInfo {
	var info terminalInfo
	ttys := map[string]bool{}
	for _, f := range []*os.File{os.Stdin, os.Stdout, os.Stderr} {
		name := strings.TrimPrefix(f.Name(), "/dev/")
		fd := int(f.Fd())
		if fd < 0 || !term.IsTerminal(fd) {
			info.Redirected = append(info.Redirected, name)
			continue
		}
		ttys[name] = true
		if info.Source != "" {
			continue
		}
		if width, height, err := term.GetSize(fd); err == nil {
			info.Source, info.Width, info.Height = name, width, height
		}
	}
	info.Interactive = ttys["stdin"] && ttys["stdout"]
	return info
}
