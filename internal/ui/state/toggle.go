package state

// ToggleEntry is the binary value behind a checkbox input.
type ToggleEntry struct {
	enabled bool
}

// Enabled reports the current value.
func (t *ToggleEntry) Enabled() bool { return t.enabled }

// Set stores v and reports whether the value changed.
func (t *ToggleEntry) Set(v bool) bool {
	if t.enabled == v {
		return false
	}
	t.enabled = v
	return true
}

// Toggle flips the value.
func (t *ToggleEntry) Toggle() { t.enabled = !t.enabled }
