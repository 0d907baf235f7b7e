package lint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompileSelectorErrors(t *testing.T) {
	tests := []struct {
		name string
		expr string
	}{
		{name: "empty", expr: ""},
		{name: "empty step", expr: "A > > B"},
		{name: "trailing combinator", expr: "A >"},
		{name: "missing attribute", expr: "A."},
		{name: "missing type", expr: ".attr"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := CompileSelector(tt.expr)
			assert.Error(t, err)
		})
	}
}

func TestSelectorMatch(t *testing.T) {
	path := []PathStep{
		{Type: "FilterList"},
		{Type: "CosmeticRule"},
		{Type: "SelectorBody", Attr: "body"},
	}

	tests := []struct {
		name  string
		expr  string
		match bool
	}{
		{name: "single step end anchored", expr: "SelectorBody", match: true},
		{name: "with attribute", expr: "SelectorBody.body", match: true},
		{name: "wrong attribute", expr: "SelectorBody.head", match: false},
		{name: "parent child", expr: "CosmeticRule > SelectorBody.body", match: true},
		{name: "full path", expr: "FilterList > CosmeticRule > SelectorBody", match: true},
		{name: "wrong parent", expr: "NetworkRule > SelectorBody", match: false},
		{name: "not end anchored", expr: "CosmeticRule", match: false},
		{name: "longer than path", expr: "A > B > C > D", match: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel, err := CompileSelector(tt.expr)
			require.NoError(t, err)
			assert.Equal(t, tt.match, sel.Match(path))
		})
	}
}

func TestVisitorSetDispatchOrder(t *testing.T) {
	vs := NewVisitorSet()

	var calls []string
	record := func(name string) VisitFunc {
		return func(NodeRef) error {
			calls = append(calls, name)
			return nil
		}
	}

	require.NoError(t, vs.Register("NetworkRule", record("first")))
	require.NoError(t, vs.Register("NetworkRule", record("second")))
	require.NoError(t, vs.Register("CosmeticRule", record("never")))

	path := []PathStep{{Type: "FilterList"}, {Type: "NetworkRule"}}
	require.NoError(t, vs.Dispatch(NodeRef{}, path))

	assert.Equal(t, []string{"first", "second"}, calls)
}
