// Package widget holds the terminal widgets composed into panes and dialogs.
// Widgets never block: each input event is fed through HandleKey or
// HandleMouse and the returned Result tells the owner whether the interaction
// continues.
package widget

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Widget is the capability set every pane and dialog implements.
type Widget interface {
	HandleKey(tea.KeyMsg) Result
	// HandleMouse receives coordinates relative to the widget's top-left cell.
	HandleMouse(MouseEvent) Result
	// Resize lays the widget out for the given cell budget.
	Resize(width, height int) Result
	View() string
	MinimumSize() (height, width int)
	PreferredSize() (height, width int)
}

// MouseEvent is a mouse action in widget-relative coordinates.
type MouseEvent struct {
	X, Y   int
	Button tea.MouseButton
	Action tea.MouseAction
}

// Pressed reports whether the event is a press of button.
func (e MouseEvent) Pressed(button tea.MouseButton) bool {
	return e.Button == button && e.Action == tea.MouseActionPress
}

// Rect is a screen region.
type Rect struct {
	X, Y, Width, Height int
}

// Contains reports whether the absolute cell lies inside the region.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Relative converts an absolute mouse message into region coordinates.
func (r Rect) Relative(msg tea.MouseMsg) MouseEvent {
	return MouseEvent{X: msg.X - r.X, Y: msg.Y - r.Y, Button: msg.Button, Action: msg.Action}
}

// Centered returns a width x height region centred inside r.
func (r Rect) Centered(width, height int) Rect {
	width = min(width, r.Width)
	height = min(height, r.Height)
	return Rect{
		X:      r.X + (r.Width-width)/2,
		Y:      r.Y + (r.Height-height)/2,
		Width:  width,
		Height: height,
	}
}
