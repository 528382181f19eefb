package command

import (
	"context"
	"fmt"
	"os/exec"

	"github.com/atomicstack/sbbrowse/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
)

// Request encapsulates a backend invocation.
type Request struct {
	ID    string
	Label string
	// Run does the work off the UI goroutine and returns the message that
	// reports its outcome.
	Run func(context.Context) tea.Msg
}

// Bus coordinates the execution of backend work.
type Bus struct {
	ctx context.Context
}

// New initialises a command bus instance.
func New(ctx context.Context) *Bus {
	if ctx == nil {
		ctx = context.Background()
	}
	return &Bus{ctx: ctx}
}

// Execute wraps a request into a Bubble Tea command while emitting trace logs.
func (b *Bus) Execute(req Request) tea.Cmd {
	events.Command.Queue(req.ID, req.Label)
	return func() tea.Msg {
		if req.Run == nil {
			events.Command.Skip(req.ID, req.Label)
			return nil
		}
		msg := req.Run(b.ctx)
		events.Command.Result(req.ID, req.Label, fmt.Sprintf("%T", msg))
		return msg
	}
}

// Foreground suspends the program and runs cmd attached to the terminal.
// done turns the exit status into the outcome message.
func (b *Bus) Foreground(req Request, cmd *exec.Cmd, done func(error) tea.Msg) tea.Cmd {
	events.Command.Queue(req.ID, req.Label)
	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		msg := done(err)
		events.Command.Result(req.ID, req.Label, fmt.Sprintf("%T", msg))
		return msg
	})
}
