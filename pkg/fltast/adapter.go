package fltast

// AdapterID identifies the host filter-list tree to the walker.
const AdapterID = "adblock"

// TreeAdapter exposes fltast trees to the generic tree walker in pkg/lint.
// It satisfies the lint.Adapter interface structurally; nodes are passed as
// opaque handles and must be *Node values produced by the host parser.
type TreeAdapter struct{}

// ID returns the adapter identifier.
func (TreeAdapter) ID() string { return AdapterID }

// NodeType returns the selector-facing type name of the node.
func (TreeAdapter) NodeType(node any) string {
	n, ok := node.(*Node)
	if !ok || n == nil {
		return ""
	}
	return n.Kind.String()
}

// NodeAttr returns the attribute slot name the node occupies in its parent.
func (TreeAdapter) NodeAttr(node any) string {
	n, ok := node.(*Node)
	if !ok || n == nil {
		return ""
	}
	return n.Attr
}

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
