package theme

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// Palette entry names.
const (
	ColorNormal            = "normal"
	ColorHighlightActive   = "highlight-active"
	ColorHighlightInactive = "highlight-inactive"
	ColorTitle             = "title"
	ColorInfo              = "info"
	ColorTagged            = "tagged"
	ColorHeader            = "header"
	ColorFooter            = "footer"
	ColorError             = "error"
)

// ErrUnknownColor is returned when a palette entry is missing or empty.
var ErrUnknownColor = errors.New("unknown color")

// ColorPair is a foreground/background pair. Values are anything lipgloss
// accepts as a colour: ANSI indexes ("33") or hex ("#ff8800").
type ColorPair struct {
	Fg string `yaml:"fg"`
	Bg string `yaml:"bg"`
}

// Palette maps entry names to colour pairs.
type Palette map[string]ColorPair

// DefaultPalette is the built-in colour scheme.
func DefaultPalette() Palette {
	return Palette{
		ColorNormal:            {Fg: "252"},
		ColorHighlightActive:   {Fg: "255", Bg: "25"},
		ColorHighlightInactive: {Fg: "252", Bg: "238"},
		ColorTitle:             {Fg: "81"},
		ColorInfo:              {Fg: "245"},
		ColorTagged:            {Fg: "214"},
		ColorHeader:            {Fg: "255", Bg: "24"},
		ColorFooter:            {Fg: "250", Bg: "236"},
		ColorError:             {Fg: "196"},
	}
}

// ParsePalette reads a YAML mapping of entry names to pairs and merges it over
// the default palette.
func ParsePalette(data []byte) (Palette, error) {
	overrides := Palette{}
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return nil, fmt.Errorf("parse palette: %w", err)
	}
	return DefaultPalette().Merge(overrides), nil
}

// Merge returns a copy of p with every entry of overrides applied.
func (p Palette) Merge(overrides Palette) Palette {
	out := make(Palette, len(p)+len(overrides))
	for name, pair := range p {
		out[name] = pair
	}
	for name, pair := range overrides {
		out[strings.ToLower(strings.TrimSpace(name))] = pair
	}
	return out
}

// Style builds the lipgloss style for the named entry.
func (p Palette) Style(name string) (lipgloss.Style, error) {
	pair, ok := p[name]
	if !ok {
		return lipgloss.Style{}, fmt.Errorf("%w: %s", ErrUnknownColor, name)
	}
	fg := strings.TrimSpace(pair.Fg)
	bg := strings.TrimSpace(pair.Bg)
	if fg == "" && bg == "" {
		return lipgloss.Style{}, fmt.Errorf("%w: %s has no colours", ErrUnknownColor, name)
	}
	style := lipgloss.NewStyle()
	if fg != "" {
		style = style.Foreground(lipgloss.Color(fg))
	}
	if bg != "" {
		style = style.Background(lipgloss.Color(bg))
	}
	return style, nil
}

// StyleOr returns the named style, or fallback when the lookup fails.
func (p Palette) StyleOr(name string, fallback lipgloss.Style) lipgloss.Style {
	style, err := p.Style(name)
	if err != nil {
		return fallback
	}
	return style
}
