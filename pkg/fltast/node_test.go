package fltast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendChild(t *testing.T) {
	root := &Node{Kind: NodeFilterList}
	a := &Node{Kind: NodeNetworkRule}
	b := &Node{Kind: NodeComment}

	root.AppendChild(a)
	root.AppendChild(b)

	assert.Same(t, a, root.FirstChild)
	assert.Same(t, b, root.LastChild)
	assert.Same(t, root, a.Parent)
	assert.Same(t, b, a.Next)
	assert.Same(t, a, b.Prev)
	assert.Nil(t, b.Next)

	assert.True(t, root.HasChildren())
	assert.Equal(t, 2, root.ChildCount())
	assert.Equal(t, []*Node{a, b}, root.Children())
}

func TestNodeKindString(t *testing.T) {
	assert.Equal(t, "FilterList", NodeFilterList.String())
	assert.Equal(t, "NetworkRule", NodeNetworkRule.String())
	assert.Equal(t, "CosmeticRule", NodeCosmeticRule.String())
	assert.Equal(t, "Unknown", NodeKind(200).String())
}

func TestNodeTextAndPosition(t *testing.T) {
	content := []byte("||ads.example^\nexample.com##.ad\n")
	f := NewFileSnapshot("t.txt", content)

	node := &Node{Kind: NodeCosmeticRule, StartOffset: 15, EndOffset: 31}
	f.Root = &Node{Kind: NodeFilterList, EndOffset: len(content)}
	f.Root.AppendChild(node)
	SetFile(f.Root, f)

	assert.Equal(t, "example.com##.ad", string(node.Text()))

	pos := node.SourcePosition()
	assert.Equal(t, 2, pos.StartLine)
	assert.Equal(t, 1, pos.StartColumn)
	assert.True(t, pos.IsValid())
	assert.True(t, pos.IsSingleLine())

	rng := node.SourceRange()
	assert.Equal(t, 16, rng.Len())
	assert.True(t, rng.Contains(20))
	assert.False(t, rng.Contains(31))
}

func TestTreeAdapter(t *testing.T) {
	ad := TreeAdapter{}

	node := &Node{Kind: NodeSelectorBody, Attr: "body", StartOffset: 3, EndOffset: 9}
	child := &Node{Kind: NodeDomain}
	node.AppendChild(child)

	assert.Equal(t, "adblock", ad.ID())
	assert.Equal(t, "SelectorBody", ad.NodeType(node))
	assert.Equal(t, "body", ad.NodeAttr(node))
	assert.Equal(t, 3, ad.StartOffset(node))
	assert.Equal(t, 9, ad.EndOffset(node))

	children := ad.Children(node)
	require.Len(t, children, 1)
	assert.Same(t, child, children[0].(*Node))

	// Non-node handles degrade instead of panicking.
	assert.Empty(t, ad.NodeType("bogus"))
	assert.Nil(t, ad.Children(nil))
}

func TestWalk(t *testing.T) {
	root := &Node{Kind: NodeFilterList}
	rule := &Node{Kind: NodeNetworkRule}
	mods := &Node{Kind: NodeModifierList}
	mod := &Node{Kind: NodeModifier}

	mods.AppendChild(mod)
	rule.AppendChild(mods)
	root.AppendChild(rule)
	root.AppendChild(&Node{Kind: NodeComment})

	var order []NodeKind
	err := Walk(root, func(n *Node) error {
		order = append(order, n.Kind)
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, []NodeKind{
		NodeFilterList, NodeNetworkRule, NodeModifierList, NodeModifier, NodeComment,
	}, order)
}

func TestFindByKind(t *testing.T) {
	root := &Node{Kind: NodeFilterList}
	root.AppendChild(&Node{Kind: NodeNetworkRule})
	root.AppendChild(&Node{Kind: NodeComment})
	root.AppendChild(&Node{Kind: NodeNetworkRule})

	found := FindByKind(root, NodeNetworkRule)
	assert.Len(t, found, 2)

	first := FindFirst(root, func(n *Node) bool { return n.Kind == NodeComment })
	require.NotNil(t, first)
	assert.Equal(t, NodeComment, first.Kind)
}
