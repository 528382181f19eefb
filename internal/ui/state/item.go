package state

import "strings"

// NoHotkey marks an item without an accelerator.
const NoHotkey = -1

// ListItem is the unit every list box displays: a label, a property bag and
// an optional single-key accelerator.
type ListItem struct {
	Name   string
	Props  map[string]string
	Hotkey int
	Tagged bool
}

// NewItem constructs an item without properties or hotkey.
func NewItem(name string) ListItem {
	return ListItem{Name: name, Hotkey: NoHotkey}
}

// Prop returns the string property stored under key.
func (i ListItem) Prop(key string) string {
	if i.Props == nil {
		return ""
	}
	return i.Props[key]
}

// BoolProp interprets the property stored under key as a boolean.
func (i ListItem) BoolProp(key string) bool {
	switch strings.ToLower(strings.TrimSpace(i.Prop(key))) {
	case "1", "true", "yes":
		return true
	}
	return false
}

// SetProp stores a string property, replacing any previous value.
func (i *ListItem) SetProp(key, value string) {
	if i.Props == nil {
		i.Props = make(map[string]string)
	}
	i.Props[key] = value
}

// SetBoolProp stores a boolean property.
func (i *ListItem) SetBoolProp(key string, value bool) {
	if value {
		i.SetProp(key, "1")
		return
	}
	i.SetProp(key, "0")
}

// HotkeyRune returns the accelerator character, if any.
func (i ListItem) HotkeyRune() (rune, bool) {
	runes := []rune(i.Name)
	if i.Hotkey < 0 || i.Hotkey >= len(runes) {
		return 0, false
	}
	return runes[i.Hotkey], true
}

// MatchesHotkey reports whether r selects this item (case-insensitive).
func (i ListItem) MatchesHotkey(r rune) bool {
	hk, ok := i.HotkeyRune()
	if !ok {
		return false
	}
	return strings.EqualFold(string(hk), string(r))
}

// CloneItems copies items including their property maps.
func CloneItems(items []ListItem) []ListItem {
	if items == nil {
		return nil
	}
	dup := make([]ListItem, len(items))
	for idx, item := range items {
		dup[idx] = item
		if item.Props != nil {
			props := make(map[string]string, len(item.Props))
			for k, v := range item.Props {
				props[k] = v
			}
			dup[idx].Props = props
		}
	}
	return dup
}
