package widget

import (
	"errors"

	"github.com/atomicstack/sbbrowse/internal/ui/state"
)

// Signal is the outcome of feeding one event to a widget.
type Signal int

const (
	// SignalNone means the widget consumed the event and stays open.
	SignalNone Signal = iota
	SignalConfirm
	SignalCancel
	SignalFocusNext
	SignalFocusPrevious
	SignalResize
)

func (s Signal) String() string {
	switch s {
	case SignalConfirm:
		return "confirm"
	case SignalCancel:
		return "cancel"
	case SignalFocusNext:
		return "focus-next"
	case SignalFocusPrevious:
		return "focus-previous"
	case SignalResize:
		return "resize"
	default:
		return "none"
	}
}

// Size is a width/height pair in cells.
type Size struct {
	Width  int
	Height int
}

// Result carries a signal and whatever the widget produced alongside it.
type Result struct {
	Signal Signal
	Item   *state.ListItem
	Value  string
	Size   Size
}

// Done reports whether the widget's interaction ended.
func (r Result) Done() bool {
	return r.Signal == SignalConfirm || r.Signal == SignalCancel
}

// ErrTopLevel is returned when navigating up from the first directory level.
var ErrTopLevel = errors.New("already at top level")

func none() Result { return Result{} }

func confirm(item *state.ListItem, value string) Result {
	return Result{Signal: SignalConfirm, Item: item, Value: value}
}

func cancel() Result { return Result{Signal: SignalCancel} }
