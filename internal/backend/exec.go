package backend

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/atomicstack/sbbrowse/internal/logging/events"
)

const defaultShell = "/bin/sh"

// Runner executes a shell command line.
type Runner interface {
	Run(ctx context.Context, command string) (string, error)
}

// ShellRunner runs commands through sh -c and captures their output.
type ShellRunner struct {
	Shell string
}

func (s ShellRunner) shell() string {
	if strings.TrimSpace(s.Shell) == "" {
		return defaultShell
	}
	return s.Shell
}

// Cmd builds the process for command.
func (s ShellRunner) Cmd(ctx context.Context, command string) *exec.Cmd {
	argv := []string{s.shell(), "-c", command}
	events.Backend.Exec(argv)
	if ctx == nil {
		return exec.Command(argv[0], argv[1:]...)
	}
	return exec.CommandContext(ctx, argv[0], argv[1:]...)
}

// Run executes command and returns its combined output.
func (s ShellRunner) Run(ctx context.Context, command string) (string, error) {
	out, err := s.Cmd(ctx, command).CombinedOutput()
	if err != nil {
		return string(out), fmt.Errorf("%s: %w", command, err)
	}
	return string(out), nil
}

// Expand substitutes {name}, {version}, {category} and {dir} in template.
func Expand(template string, pkg Package) string {
	return strings.NewReplacer(
		"{name}", pkg.Name,
		"{version}", pkg.Version,
		"{category}", pkg.Category,
		"{dir}", pkg.Dir,
	).Replace(template)
}

func (r *Repo) commandLine(action Action, pkg Package) (string, error) {
	template, ok := r.cfg.Commands[action]
	if !ok || strings.TrimSpace(template) == "" {
		return "", fmt.Errorf("no command configured for %s", action)
	}
	return Expand(template, pkg), nil
}

// Execute runs action for pkg through the runner.
func (r *Repo) Execute(ctx context.Context, action Action, pkg Package) error {
	line, err := r.commandLine(action, pkg)
	if err != nil {
		return err
	}
	if _, err := r.runner.Run(ctx, line); err != nil {
		return fmt.Errorf("%s %s: %w", action, pkg.Name, err)
	}
	return nil
}

// Sync runs the configured repository update command.
func (r *Repo) Sync(ctx context.Context) error {
	if strings.TrimSpace(r.cfg.SyncCommand) == "" {
		return fmt.Errorf("no sync command configured")
	}
	if _, err := r.runner.Run(ctx, r.cfg.SyncCommand); err != nil {
		return fmt.Errorf("sync: %w", err)
	}
	return nil
}

// Command returns the foreground process for action on pkg.
func (r *Repo) Command(action Action, pkg Package) (*exec.Cmd, error) {
	line, err := r.commandLine(action, pkg)
	if err != nil {
		return nil, err
	}
	return ShellRunner{Shell: r.cfg.Shell}.Cmd(context.Background(), line), nil
}

// SyncCommand returns the foreground process for a repository update.
func (r *Repo) SyncCommand() (*exec.Cmd, error) {
	if strings.TrimSpace(r.cfg.SyncCommand) == "" {
		return nil, fmt.Errorf("no sync command configured")
	}
	return ShellRunner{Shell: r.cfg.Shell}.Cmd(context.Background(), r.cfg.SyncCommand), nil
}
