// Package ui contains the Bubble Tea program that powers the SlackBuild
// browser. Model owns message orchestration; widgets in internal/ui/widget
// own drawing and input for the individual panes and dialogs.
//
// Message flow:
//   - Bubble Tea invokes Model.Update, which routes each tea.Msg through a
//     typed handler registry.
//   - Keys go to the top dialog when one is open, then to the quick search
//     prompt, then to the main window bindings (keys.go), and finally to the
//     active pane. Mouse events go to the widget under the pointer.
//   - Widgets answer every event with a widget.Result. The compositor
//     (dialogs.go) closes dialogs on cancel or confirm and hands the result
//     to the callback registered when the dialog was opened.
//
// State ownership:
//   - The catalog is a backend.Catalog snapshot. Tags, the active filter and
//     the search live on the Model and survive catalog reloads.
//   - The category pane and one build list per category are rebuilt from the
//     catalog whenever it, the filter or the search change (panes.go).
//
// Backend interactions:
//   - Catalog reads and package actions run through the internal/ui/command
//     bus. Sources implementing backend.Commander run actions in the
//     foreground terminal via tea.ExecProcess.
//   - A backend.Watcher reports package database and blacklist changes, which
//     trigger a catalog reload.
package ui
