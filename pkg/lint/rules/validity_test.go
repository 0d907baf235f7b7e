package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvalidRules(t *testing.T) {
	tests := []struct {
		name    string
		content string
		count   int
	}{
		{name: "valid network rule", content: "||ads.example^\n", count: 0},
		{name: "valid cosmetic rule", content: "example.com##.ad\n", count: 0},
		{name: "empty modifier section", content: "||ads.example^$\n", count: 1},
		{name: "bare exception", content: "@@\n", count: 1},
		{name: "empty cosmetic body", content: "example.com##\n", count: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := lintWith(t, NewInvalidRulesRule(), tt.content, nil)
			assert.Len(t, result.Diagnostics, tt.count)
		})
	}
}

func TestInvalidRulesMessageIncludesText(t *testing.T) {
	result := lintWith(t, NewInvalidRulesRule(), "@@\n", nil)

	require.Len(t, result.Diagnostics, 1)
	assert.Contains(t, result.Diagnostics[0].Message, "@@")
}

func TestShortRules(t *testing.T) {
	tests := []struct {
		name    string
		content string
		options map[string]any
		count   int
	}{
		{name: "long enough", content: "||ads.example^\n", count: 0},
		{name: "too short", content: "ads\n", count: 1},
		{name: "exactly minimum", content: "adss\n", count: 0},
		{name: "comment exempt", content: "! x\n", count: 0},
		{
			name:    "custom minimum",
			content: "||ads.example^\n",
			options: map[string]any{"min_length": 20},
			count:   1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := lintWith(t, NewShortRulesRule(), tt.content, tt.options)
			assert.Len(t, result.Diagnostics, tt.count)
		})
	}
}

func TestShortRulesMessage(t *testing.T) {
	result := lintWith(t, NewShortRulesRule(), "ads\n", nil)

	require.Len(t, result.Diagnostics, 1)
	assert.Equal(t, "rule is 3 characters long, minimum is 4", result.Diagnostics[0].Message)
}
