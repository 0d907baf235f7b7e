// Package cssel provides a minimal CSS selector-list parser used as the
// embedded-language parser for cosmetic rule bodies. It understands enough
// selector structure for linting (selector lists, compound parts,
// combinators) without attempting full CSS conformance.
package cssel

// NodeKind classifies the type of a selector AST node.
type NodeKind uint8

const (
	// NodeSelectorList is the root: comma-separated selectors.
	NodeSelectorList NodeKind = iota

	// NodeSelector is one complex selector within a list.
	NodeSelector

	// NodeCompound is a run of simple selectors with no combinator between.
	NodeCompound

	// Simple selector parts.
	NodeTypeSelector
	NodeIDSelector
	NodeClassSelector
	NodeAttributeSelector
	NodePseudo

	// NodeCombinator is a " ", ">", "+", or "~" between compounds.
	NodeCombinator
)

var nodeKindNames = [...]string{
	NodeSelectorList:      "SelectorList",
	NodeSelector:          "Selector",
	NodeCompound:          "Compound",
	NodeTypeSelector:      "TypeSelector",
	NodeIDSelector:        "IDSelector",
	NodeClassSelector:     "ClassSelector",
	NodeAttributeSelector: "AttributeSelector",
	NodePseudo:            "Pseudo",
	NodeCombinator:        "Combinator",
}

// String returns the selector-facing type name for the kind.
func (k NodeKind) String() string {
	if int(k) < len(nodeKindNames) {
		return nodeKindNames[k]
	}
	return "Unknown"
}

// Node represents a single node in the selector AST. Offsets are absolute
// byte offsets into the host file, computed from the embedding base.
type Node struct {
	// Kind identifies what type of node this is.
	Kind NodeKind

	// Value is the node's raw text (e.g., ".banner", ">").
	Value string

	// Tree structure pointers.
	Parent     *Node
	FirstChild *Node
	LastChild  *Node
	Prev       *Node
	Next       *Node

	// Byte span in the host file. StartOffset <= EndOffset.
	StartOffset int
	EndOffset   int
}

// AppendChild adds child as the last child of n, fixing up sibling links.
func (n *Node) AppendChild(child *Node) {
	child.Parent = n
	if n.LastChild == nil {
		n.FirstChild = child
		n.LastChild = child
		return
	}
	child.Prev = n.LastChild
	n.LastChild.Next = child
	n.LastChild = child
}

// HasChildren returns true if this node has any children.
func (n *Node) HasChildren() bool {
	return n.FirstChild != nil
}

// Children returns a slice of all direct children.
func (n *Node) Children() []*Node {
	var children []*Node
	for child := n.FirstChild; child != nil; child = child.Next {
		children = append(children, child)
	}
	return children
}

// ChildCount returns the number of direct children.
func (n *Node) ChildCount() int {
	count := 0
	for child := n.FirstChild; child != nil; child = child.Next {
		count++
	}
	return count
}
