package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDuplicatedRules(t *testing.T) {
	tests := []struct {
		name    string
		content string
		count   int
	}{
		{
			name:    "no duplicates",
			content: "||a.example^\n||b.example^\n",
			count:   0,
		},
		{
			name:    "one duplicate",
			content: "||a.example^\n||b.example^\n||a.example^\n",
			count:   1,
		},
		{
			name:    "triplicate reports twice",
			content: "||a.example^\n||a.example^\n||a.example^\n",
			count:   2,
		},
		{
			name:    "comments exempt",
			content: "! note\n||a.example^\n! note\n",
			count:   0,
		},
		{
			name:    "preprocessor exempt",
			content: "!#endif\n!#endif\n",
			count:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := lintWith(t, NewDuplicatedRulesRule(), tt.content, nil)
			assert.Len(t, result.Diagnostics, tt.count)
		})
	}
}

func TestDuplicatedRulesMessagePointsAtOriginal(t *testing.T) {
	result := lintWith(t, NewDuplicatedRulesRule(), "||a.example^\n||b.example^\n||a.example^\n", nil)

	require.Len(t, result.Diagnostics, 1)
	diag := result.Diagnostics[0]
	assert.Equal(t, 3, diag.StartLine)
	assert.Contains(t, diag.Message, "line 1")
}

func TestDuplicatedRulesFixDeletesLaterLine(t *testing.T) {
	outcome := fixWith(t, NewDuplicatedRulesRule(), "||a.example^\n||b.example^\n||a.example^\n")

	assert.Equal(t, "||a.example^\n||b.example^\n", string(outcome.FixedText))
	assert.Equal(t, 1, outcome.AppliedFixCount)
	assert.Equal(t, 0, outcome.RemainingFixCount)
}
