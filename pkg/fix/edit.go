// Package fix provides text edit types and conflict-resolving application
// logic for auto-fixing filter lists.
package fix

// TextEdit represents a single atomic text replacement in a file.
type TextEdit struct {
	// StartOffset is the byte index where the edit begins (inclusive).
	StartOffset int

	// EndOffset is the byte index where the edit ends (exclusive).
	EndOffset int

	// NewText is the replacement text.
	NewText string
}

// Replace creates an edit that replaces bytes [start, end) with newText.
func Replace(start, end int, newText string) TextEdit {
	return TextEdit{StartOffset: start, EndOffset: end, NewText: newText}
}

// Insert creates an edit that inserts text at the given offset.
func Insert(offset int, text string) TextEdit {
	return Replace(offset, offset, text)
}

// Delete creates an edit that deletes bytes [start, end).
func Delete(start, end int) TextEdit {
	return Replace(start, end, "")
}

// IsNoop returns true if the edit would not change the content.
// A zero-length range with empty replacement changes nothing.
func (e TextEdit) IsNoop() bool {
	return e.StartOffset == e.EndOffset && e.NewText == ""
}
