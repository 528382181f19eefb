package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Frame             *lipgloss.Style
	Title             *lipgloss.Style
	Info              *lipgloss.Style
	Item              *lipgloss.Style
	HighlightActive   *lipgloss.Style
	HighlightInactive *lipgloss.Style
	Tagged            *lipgloss.Style
	Hotkey            *lipgloss.Style
	Header            *lipgloss.Style
	Footer            *lipgloss.Style
	Status            *lipgloss.Style
	Error             *lipgloss.Style
	Cursor            *lipgloss.Style
	Prompt            *lipgloss.Style
}

var defaultStyles = FromPalette(DefaultPalette())

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return defaultStyles
}

// FromPalette derives the style set from a colour palette. Missing or broken
// highlight pairs fall back to reverse video so the highlighted row stays
// visible on any terminal.
func FromPalette(p Palette) *Styles {
	plain := lipgloss.NewStyle()
	reverse := lipgloss.NewStyle().Reverse(true)
	return &Styles{
		Frame:             ptr(p.StyleOr(ColorNormal, plain)),
		Title:             ptr(p.StyleOr(ColorTitle, plain).Bold(true)),
		Info:              ptr(p.StyleOr(ColorInfo, plain)),
		Item:              ptr(p.StyleOr(ColorNormal, plain)),
		HighlightActive:   ptr(p.StyleOr(ColorHighlightActive, reverse)),
		HighlightInactive: ptr(p.StyleOr(ColorHighlightInactive, reverse.Faint(true))),
		Tagged:            ptr(p.StyleOr(ColorTagged, plain.Bold(true))),
		Hotkey:            ptr(plain.Underline(true)),
		Header:            ptr(p.StyleOr(ColorHeader, reverse).Bold(true)),
		Footer:            ptr(p.StyleOr(ColorFooter, reverse)),
		Status:            ptr(p.StyleOr(ColorInfo, plain).Italic(true)),
		Error:             ptr(p.StyleOr(ColorError, plain).Bold(true)),
		Cursor:            ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("33"))),
		Prompt:            ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true)),
	}
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
