package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrailingSpacesDetection(t *testing.T) {
	tests := []struct {
		name    string
		content string
		count   int
	}{
		{name: "clean file", content: "||ads.example^\n! comment\n", count: 0},
		{name: "trailing space", content: "||ads.example^ \n", count: 1},
		{name: "trailing tab", content: "||ads.example^\t\n", count: 1},
		{name: "multiple lines", content: "||a^ \n||b^\n||c^  \n", count: 2},
		{name: "last line without newline", content: "||ads.example^ ", count: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := lintWith(t, NewTrailingSpacesRule(), tt.content, nil)
			assert.Len(t, result.Diagnostics, tt.count)
		})
	}
}

func TestTrailingSpacesPosition(t *testing.T) {
	result := lintWith(t, NewTrailingSpacesRule(), "||ads.example^  \n", nil)

	require.Len(t, result.Diagnostics, 1)
	diag := result.Diagnostics[0]
	assert.Equal(t, 1, diag.StartLine)
	assert.Equal(t, 15, diag.StartColumn)
	assert.True(t, diag.HasFix())
}

func TestTrailingSpacesFix(t *testing.T) {
	outcome := fixWith(t, NewTrailingSpacesRule(), "||a^ \n! note\t\n||b^\n")

	assert.Equal(t, "||a^\n! note\n||b^\n", string(outcome.FixedText))
	assert.Equal(t, 2, outcome.AppliedFixCount)
	assert.Equal(t, 0, outcome.RemainingFixCount)
}
