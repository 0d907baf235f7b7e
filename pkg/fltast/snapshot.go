// Package fltast provides the core filter-list AST representation for goaglint.
// It defines a lossless, immutable view of an adblock filter list including:
// - FileSnapshot: the complete file representation with a line index
// - AST nodes: structural representation carrying exact byte ranges
package fltast

// FileSnapshot is an immutable, lossless view of a filter list at a specific time.
// It holds the raw content, line metadata, and the AST root.
type FileSnapshot struct {
	// Path is the file path (may be empty for in-memory content).
	Path string

	// Content is the full file bytes.
	Content []byte

	// Lines contains metadata for each line in the file.
	Lines []LineInfo

	// Root is the AST root node (FilterList).
	Root *Node
}

// LineInfo holds metadata for a single line in a file.
type LineInfo struct {
	// StartOffset is the byte index of the line start.
	StartOffset int

	// NewlineStart is the byte index where newline characters begin.
	// For lines without a trailing newline (e.g., last line), this equals EndOffset.
	NewlineStart int

	// EndOffset is the byte index just after the newline (or end of file).
	EndOffset int
}

// NewFileSnapshot creates a new FileSnapshot from content.
// It builds the line index but does not parse (that requires a Parser).
func NewFileSnapshot(path string, content []byte) *FileSnapshot {
	return &FileSnapshot{
		Path:    path,
		Content: content,
		Lines:   BuildLines(content),
		Root:    nil,
	}
}

// SetFile sets the File back-reference on every node of the given tree.
func SetFile(root *Node, file *FileSnapshot) {
	if root == nil {
		return
	}
	root.File = file
	for child := root.FirstChild; child != nil; child = child.Next {
		SetFile(child, file)
	}
}
