package fltast

// NodeKind classifies the type of an AST node.
type NodeKind uint8

// Node kinds for the line-oriented adblock filter syntax.
const (
	NodeFilterList NodeKind = iota

	// Comment-family nodes.
	NodeComment
	NodeMetadataComment

	// Preprocessor directives (!#if, !#endif, !#include, ...).
	NodePreProcessor

	// Network rules (||example.org^$third-party).
	NodeNetworkRule
	NodeModifierList
	NodeModifier

	// Cosmetic rules (example.org##.banner).
	NodeCosmeticRule
	NodeDomainList
	NodeDomain
	NodeSelectorBody

	// Fallback for lines that match no known rule shape.
	NodeInvalidRule
)

// nodeKindNames maps kinds to the type names used by selectors.
var nodeKindNames = [...]string{
	NodeFilterList:      "FilterList",
	NodeComment:         "Comment",
	NodeMetadataComment: "MetadataComment",
	NodePreProcessor:    "PreProcessor",
	NodeNetworkRule:     "NetworkRule",
	NodeModifierList:    "ModifierList",
	NodeModifier:        "Modifier",
	NodeCosmeticRule:    "CosmeticRule",
	NodeDomainList:      "DomainList",
	NodeDomain:          "Domain",
	NodeSelectorBody:    "SelectorBody",
	NodeInvalidRule:     "InvalidRule",
}

// String returns the selector-facing type name for the kind.
func (k NodeKind) String() string {
	if int(k) < len(nodeKindNames) {
		return nodeKindNames[k]
	}
	return "Unknown"
}

// Node represents a single node in the filter-list AST.
// Nodes form a tree structure with parent/child/sibling relationships and
// carry exact byte offsets into the containing FileSnapshot.
type Node struct {
	// Kind identifies what type of node this is.
	Kind NodeKind

	// Tree structure pointers.
	Parent     *Node
	FirstChild *Node
	LastChild  *Node
	Prev       *Node
	Next       *Node

	// Byte span in FileSnapshot.Content. StartOffset <= EndOffset.
	StartOffset int
	EndOffset   int

	// Attr names the attribute slot this node occupies in its parent
	// (e.g., "body" for a SelectorBody under a CosmeticRule).
	// Empty for plain children.
	Attr string

	// File is a back-reference to the containing FileSnapshot.
	File *FileSnapshot

	// Comment holds attributes for comment-family nodes.
	Comment *CommentAttrs

	// PreProc holds attributes for preprocessor nodes.
	PreProc *PreProcAttrs

	// Network holds attributes for network rule nodes.
	Network *NetworkAttrs

	// Modifier holds attributes for modifier nodes.
	Modifier *ModifierAttrs

	// Cosmetic holds attributes for cosmetic rule nodes.
	Cosmetic *CosmeticAttrs
}

// CommentAttrs holds attributes for Comment and MetadataComment nodes.
type CommentAttrs struct {
	// Marker is the comment marker ("!" or "#").
	Marker string

	// Text is the comment text after the marker, trimmed.
	Text string

	// Key and Value are set for metadata comments ("! Title: My List").
	Key   string
	Value string
}

// PreProcAttrs holds attributes for PreProcessor nodes.
type PreProcAttrs struct {
	// Directive is the directive name without the "!#" prefix (e.g., "if").
	Directive string

	// Params is the raw parameter text after the directive, trimmed.
	Params string
}

// NetworkAttrs holds attributes for NetworkRule nodes.
type NetworkAttrs struct {
	// Pattern is the matching pattern before any "$" separator.
	Pattern string

	// Exception is true for "@@" exception rules.
	Exception bool
}

// ModifierAttrs holds attributes for Modifier nodes.
type ModifierAttrs struct {
	// Name is the modifier name (e.g., "third-party").
	Name string

	// Value is the modifier value after "=", empty if none.
	Value string

	// Negated is true for "~"-prefixed modifiers.
	Negated bool
}

// CosmeticAttrs holds attributes for CosmeticRule nodes.
type CosmeticAttrs struct {
	// Separator is the rule separator ("##", "#@#", "#?#", ...).
	Separator string

	// Exception is true for "#@#" exception rules.
	Exception bool
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

// ChildCount returns the number of direct children.
func (n *Node) ChildCount() int {
	count := 0
	for child := n.FirstChild; child != nil; child = child.Next {
		count++
	}
	return count
}

// Children returns a slice of all direct children.
func (n *Node) Children() []*Node {
	var children []*Node
	for child := n.FirstChild; child != nil; child = child.Next {
		children = append(children, child)
	}
	return children
}
