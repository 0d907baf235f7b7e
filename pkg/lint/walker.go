package lint

import (
	"fmt"

	"github.com/yaklabco/goaglint/pkg/fltast"
)

// Adapter extracts structure and byte ranges from an opaque syntax tree.
// The host tree and every embedded sub-tree each have their own adapter;
// nodes are never addressed through a shared node interface.
type Adapter interface {
	// ID identifies the adapter (e.g., "adblock", "css").
	ID() string

	// NodeType returns the selector-facing type name of the node.
	NodeType(node any) string

	// NodeAttr returns the attribute slot the node occupies in its
	// parent, or "" if none.
	NodeAttr(node any) string

	// Children returns the node's direct children as opaque handles.
	Children(node any) []any

	// StartOffset and EndOffset return the node's byte range in the
	// host file. Embedded adapters must report absolute offsets.
	StartOffset(node any) int
	EndOffset(node any) int
}

// EmbeddedParser parses a slice of host text into a sub-tree and adapts it
// for traversal. The base offset/line/column locate the slice in the host
// file so the sub-tree can report absolute positions.
type EmbeddedParser interface {
	Adapter

	Parse(text []byte, baseOffset, baseLine, baseColumn int) (any, error)
}

// NodeRef is a tagged node handle: an opaque node paired with the adapter
// that owns it. All position extraction goes through the owning adapter.
type NodeRef struct {
	Adapter Adapter
	Node    any
}

// Range returns the node's byte range via its owning adapter.
func (ref NodeRef) Range() fltast.SourceRange {
	return fltast.SourceRange{
		StartOffset: ref.Adapter.StartOffset(ref.Node),
		EndOffset:   ref.Adapter.EndOffset(ref.Node),
	}
}

// embeddingPoint pairs a compiled selector with the parser to invoke when
// traversal reaches a matching node.
type embeddingPoint struct {
	selector *Selector
	parser   EmbeddedParser
}

// Walker traverses the host tree pre-order, dispatching visitors at every
// node. At registered embedding points it parses the node's text slice into
// a sub-tree and traverses that with the same dispatch. Traversal order is
// deterministic for a given tree.
type Walker struct {
	file     *fltast.FileSnapshot
	host     Adapter
	embedded []embeddingPoint
	visitors *VisitorSet
	reporter *Reporter
}

// NewWalker creates a walker for one file run.
func NewWalker(
	file *fltast.FileSnapshot,
	host Adapter,
	embedded []embeddingPoint,
	visitors *VisitorSet,
	reporter *Reporter,
) *Walker {
	return &Walker{
		file:     file,
		host:     host,
		embedded: embedded,
		visitors: visitors,
		reporter: reporter,
	}
}

// Walk traverses the whole tree. A returned error comes from a visitor and
// indicates a broken rule; scoped embedded-parse failures are reported as
// fatal diagnostics and do not stop the walk.
func (w *Walker) Walk() error {
	if w.file.Root == nil {
		return fmt.Errorf("walk: snapshot has no root")
	}
	return w.visit(w.host, w.file.Root, nil)
}

func (w *Walker) visit(ad Adapter, node any, path []PathStep) error {
	step := PathStep{Type: ad.NodeType(node), Attr: ad.NodeAttr(node)}
	// Full slice expression forces a copy on append so sibling subtrees
	// never share path backing arrays.
	path = append(path[:len(path):len(path)], step)

	if err := w.visitors.Dispatch(NodeRef{Adapter: ad, Node: node}, path); err != nil {
		return err
	}

	for _, ep := range w.embedded {
		if !ep.selector.Match(path) {
			continue
		}
		if err := w.visitEmbedded(ad, node, ep, path); err != nil {
			return err
		}
	}

	for _, child := range ad.Children(node) {
		if err := w.visit(ad, child, path); err != nil {
			return err
		}
	}

	return nil
}

// visitEmbedded parses and traverses one embedded sub-tree. Parse failures
// are scoped: they become a fatal diagnostic at the embedding point and the
// rest of the host traversal continues.
func (w *Walker) visitEmbedded(ad Adapter, node any, ep embeddingPoint, path []PathStep) error {
	start := ad.StartOffset(node)
	end := ad.EndOffset(node)
	if start < 0 || end > len(w.file.Content) || start > end {
		return fmt.Errorf("embedding point %s: node range [%d:%d) outside content", ep.selector, start, end)
	}

	line, col := w.file.LineAt(start)
	sub, err := ep.parser.Parse(w.file.Content[start:end], start, line, col)
	if err != nil {
		w.reporter.reportFatal(start, end, fmt.Sprintf("cannot parse embedded %s: %v", ep.parser.ID(), err))
		return nil
	}

	return w.visit(ep.parser, sub, path)
}
