package cssel

// AdapterID identifies the selector tree to the walker.
const AdapterID = "css"

// TreeAdapter exposes selector ASTs to the generic tree walker in pkg/lint
// and doubles as the embedded parser for cosmetic rule bodies: it satisfies
// both lint.Adapter and lint.EmbeddedParser structurally.
type TreeAdapter struct{}

// ID returns the adapter identifier.
func (TreeAdapter) ID() string { return AdapterID }

// Parse parses a selector body slice into a selector tree. Offsets in the
// returned tree are absolute host-file offsets computed from baseOffset.
func (TreeAdapter) Parse(text []byte, baseOffset, baseLine, baseColumn int) (any, error) {
	root, err := Parse(text, baseOffset, baseLine, baseColumn)
	if err != nil {
		return nil, err
	}
	return root, nil
}

// NodeType returns the selector-facing type name of the node.
func (TreeAdapter) NodeType(node any) string {
	n, ok := node.(*Node)
	if !ok || n == nil {
		return ""
	}
	return n.Kind.String()
}

// NodeAttr returns the attribute slot name; selector trees have none.
func (TreeAdapter) NodeAttr(node any) string { return "" }

// Children returns the direct children of the node as opaque handles.
func (TreeAdapter) Children(node any) []any {
	n, ok := node.(*Node)
	if !ok || n == nil {
		return nil
	}
	var children []any
	for child := n.FirstChild; child != nil; child = child.Next {
		children = append(children, child)
	}
	return children
}

// StartOffset returns the starting byte offset of the node.
func (TreeAdapter) StartOffset(node any) int {
	n, ok := node.(*Node)
	if !ok || n == nil {
		return 0
	}
	return n.StartOffset
}

// EndOffset returns the ending byte offset of the node.
func (TreeAdapter) EndOffset(node any) int {
	n, ok := node.(*Node)
	if !ok || n == nil {
		return 0
	}
	return n.EndOffset
}
