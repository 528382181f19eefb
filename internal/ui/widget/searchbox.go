package widget

import "github.com/atomicstack/sbbrowse/internal/theme"

// SearchBox asks for a search term and two matching options.
type SearchBox struct {
	*InputBox
	term          *TextInput
	caseSensitive *ToggleInput
	wholeWord     *ToggleInput
}

// NewSearchBox returns an empty search dialog.
func NewSearchBox(styles *theme.Styles) *SearchBox {
	term := NewTextInput("Search:", styles)
	cs := NewToggleInput("Case sensitive", styles)
	ww := NewToggleInput("Whole word", styles)
	return &SearchBox{
		InputBox:      NewInputBox("Search repository", "Enter: Search | Esc: Cancel", styles, term, cs, ww),
		term:          term,
		caseSensitive: cs,
		wholeWord:     ww,
	}
}

func (s *SearchBox) SearchString() string { return s.term.Value() }
func (s *SearchBox) CaseSensitive() bool  { return s.caseSensitive.Enabled() }
func (s *SearchBox) WholeWord() bool      { return s.wholeWord.Enabled() }

// Reset focuses the search term again, keeping its previous contents.
func (s *SearchBox) Reset() { s.setFocus(0) }
