package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSingleSelector(t *testing.T) {
	tests := []struct {
		name    string
		content string
		count   int
	}{
		{name: "single selector", content: "example.com##.ad\n", count: 0},
		{name: "two selectors", content: "example.com##.ad, .banner\n", count: 1},
		{name: "three selectors", content: "example.com##.a, .b, .c\n", count: 1},
		{name: "comma inside pseudo", content: "example.com##:is(.a, .b)\n", count: 0},
		{name: "network rule ignored", content: "||ads.example^\n", count: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := lintWith(t, NewSingleSelectorRule(), tt.content, nil)
			assert.Len(t, result.Diagnostics, tt.count)
		})
	}
}

func TestSingleSelectorSuggestion(t *testing.T) {
	result := lintWith(t, NewSingleSelectorRule(), "example.com##.ad, .banner\n", nil)

	require.Len(t, result.Diagnostics, 1)
	diag := result.Diagnostics[0]
	assert.Contains(t, diag.Message, "2 selectors")
	assert.Nil(t, diag.Fix)

	require.Len(t, diag.Suggestions, 1)
	sug := diag.Suggestions[0]
	require.NotNil(t, sug.Fix)
	assert.Equal(t, "example.com##.ad\nexample.com##.banner", sug.Fix.NewText)
	assert.Equal(t, 0, sug.Fix.StartOffset)
	assert.Equal(t, 25, sug.Fix.EndOffset, "edit replaces the line but keeps the newline")
}
