package fix

import "bytes"

// ApplyResult describes the outcome of a single fix application pass.
type ApplyResult struct {
	// Output is the rewritten content after applying the accepted edits.
	Output []byte

	// Applied contains the edits that were spliced into Output, in
	// application order.
	Applied []TextEdit

	// Deferred contains the edits that overlapped an already-applied edit
	// and were held back for a later round.
	Deferred []TextEdit
}

// Changed returns true if this pass modified the content.
func (r *ApplyResult) Changed() bool {
	return len(r.Applied) > 0
}

// Apply performs one conflict-resolving application pass over content.
//
// Candidates are sorted by (start, end) ascending; the sorted list is then
// walked left to right with a cursor at the end of the last accepted edit.
// An edit is accepted iff it starts at or after the cursor; everything else
// is deferred untouched. Two edits with identical ranges therefore never
// both apply in one pass: the earlier-sorted one wins.
//
// The rewritten text is built in a single linear pass, O(n + k) for content
// length n and edit count k. Returns an error only when an edit's range does
// not fit the content; conflicts are not errors.
func Apply(content []byte, edits []TextEdit) (*ApplyResult, error) {
	if len(edits) == 0 {
		return &ApplyResult{Output: content}, nil
	}

	if err := Validate(edits, len(content)); err != nil {
		return nil, err
	}

	sorted := make([]TextEdit, len(edits))
	copy(sorted, edits)
	Sort(sorted)

	result := &ApplyResult{
		Applied: make([]TextEdit, 0, len(sorted)),
	}

	// Estimate result size from the accepted edits as we go.
	var out bytes.Buffer
	out.Grow(len(content))

	cursor := 0
	for _, edit := range sorted {
		if edit.StartOffset < cursor {
			// Overlaps an edit already applied this pass.
			result.Deferred = append(result.Deferred, edit)
			continue
		}

		// Copy content before this edit, then splice the replacement.
		out.Write(content[cursor:edit.StartOffset])
		out.WriteString(edit.NewText)
		cursor = edit.EndOffset
		result.Applied = append(result.Applied, edit)
	}
	// Copy remaining content.
	out.Write(content[cursor:])

	result.Output = out.Bytes()
	return result, nil
}
