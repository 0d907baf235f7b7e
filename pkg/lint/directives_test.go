package lint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDirective(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		kind  DirectiveKind
		rules []string
		ok    bool
	}{
		{
			name: "disable file all rules",
			text: "aglint-disable",
			kind: DirectiveDisableFile,
			ok:   true,
		},
		{
			name:  "disable next line with rule",
			text:  "aglint-disable-next-line my-rule",
			kind:  DirectiveDisableNextLine,
			rules: []string{"my-rule"},
			ok:    true,
		},
		{
			name:  "disable line with rule list",
			text:  "aglint-disable-line rule-a, rule-b",
			kind:  DirectiveDisableLine,
			rules: []string{"rule-a", "rule-b"},
			ok:    true,
		},
		{
			name: "enable",
			text: "aglint-enable",
			kind: DirectiveEnableFile,
			ok:   true,
		},
		{
			name: "surrounding whitespace",
			text: "   aglint-disable   ",
			kind: DirectiveDisableFile,
			ok:   true,
		},
		{name: "plain comment", text: "Title: My List", ok: false},
		{name: "prefix of a word", text: "aglint-disabled stuff", ok: false},
		{name: "empty", text: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, ok := parseDirective(tt.text)
			require.Equal(t, tt.ok, ok)
			if !ok {
				return
			}
			assert.Equal(t, tt.kind, d.Kind)
			assert.Equal(t, tt.rules, d.Rules)
		})
	}
}

func TestDirectiveMatches(t *testing.T) {
	all := Directive{Kind: DirectiveDisableFile}
	assert.True(t, all.Matches("any-rule"))
	assert.False(t, all.Matches(""), "fatal diagnostics have no rule id and never match")

	scoped := Directive{Kind: DirectiveDisableFile, Rules: []string{"rule-a", "rule-b"}}
	assert.True(t, scoped.Matches("rule-a"))
	assert.False(t, scoped.Matches("rule-c"))
}
