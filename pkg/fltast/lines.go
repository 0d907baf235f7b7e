package fltast

import (
	"bytes"
	"sort"
)

// Filter lists are line-oriented, so nearly every diagnostic position is
// derived from the index built here. BuildLines records, per line, where its
// text starts, where its newline sequence starts, and where the next line
// begins. Both LF and CRLF endings are handled; a file ending in a newline
// gets a final empty line, matching how editors number lines.
//
// An empty file still gets one zero-width line so that offset 0 resolves to
// position (1,1) and a rule may report on the root of an empty list.
func BuildLines(content []byte) []LineInfo {
	if len(content) == 0 {
		return []LineInfo{{}}
	}

	lines := make([]LineInfo, 0, bytes.Count(content, []byte{'\n'})+1)
	start := 0
	for start <= len(content) {
		rel := bytes.IndexByte(content[start:], '\n')
		if rel < 0 {
			// Final line without a trailing newline.
			lines = append(lines, LineInfo{
				StartOffset:  start,
				NewlineStart: len(content),
				EndOffset:    len(content),
			})
			break
		}

		nl := start + rel
		textEnd := nl
		if nl > start && content[nl-1] == '\r' {
			textEnd = nl - 1
		}
		lines = append(lines, LineInfo{
			StartOffset:  start,
			NewlineStart: textEnd,
			EndOffset:    nl + 1,
		})
		start = nl + 1
	}

	return lines
}

// LineCount reports how many lines the index holds.
func (f *FileSnapshot) LineCount() int {
	return len(f.Lines)
}

// LineAt maps a byte offset to a 1-based (line, column) pair. Columns count
// bytes, not runes. Offsets at or past the end of content clamp onto the
// last line, so the one-past-the-end offset of a node range stays
// addressable. Negative offsets yield (0, 0).
func (f *FileSnapshot) LineAt(offset int) (int, int) {
	if offset < 0 || len(f.Lines) == 0 {
		return 0, 0
	}

	if offset >= len(f.Content) {
		last := f.Lines[len(f.Lines)-1]
		return len(f.Lines), offset - last.StartOffset + 1
	}

	idx := sort.Search(len(f.Lines), func(i int) bool {
		return f.Lines[i].EndOffset > offset
	})
	if idx >= len(f.Lines) {
		idx = len(f.Lines) - 1
	}

	info := f.Lines[idx]
	if offset < info.StartOffset {
		return 0, 0
	}

	return idx + 1, offset - info.StartOffset + 1
}

// Offset is the inverse of LineAt: a 1-based line and column back to a byte
// offset. The column one past the line's end is accepted so that LineAt
// output for a line-final offset round-trips. Anything else out of range
// returns false.
func (f *FileSnapshot) Offset(line, col int) (int, bool) {
	if line < 1 || line > len(f.Lines) || col < 1 {
		return 0, false
	}

	info := f.Lines[line-1]
	offset := info.StartOffset + col - 1
	if offset > info.EndOffset {
		return 0, false
	}

	return offset, true
}

// LineContent returns the text of a 1-based line without its newline, or nil
// when the line number is out of range.
func (f *FileSnapshot) LineContent(line int) []byte {
	if line < 1 || line > len(f.Lines) {
		return nil
	}

	info := f.Lines[line-1]
	return f.Content[info.StartOffset:info.NewlineStart]
}
