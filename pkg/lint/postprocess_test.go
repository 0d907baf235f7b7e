package lint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/goaglint/pkg/config"
	"github.com/yaklabco/goaglint/pkg/fltast"
)

func diagAt(ruleID string, line int, severity config.Severity) Diagnostic {
	return Diagnostic{
		RuleID:      ruleID,
		Severity:    severity,
		StartLine:   line,
		StartColumn: 1,
		EndLine:     line,
		EndColumn:   2,
	}
}

func directiveAt(kind DirectiveKind, line int, rules ...string) Directive {
	return Directive{
		Kind:  kind,
		Rules: rules,
		Line:  line,
		Position: fltast.SourcePosition{
			StartLine: line, StartColumn: 1, EndLine: line, EndColumn: 10,
		},
	}
}

func TestApplyDirectivesDisableNextLineScoping(t *testing.T) {
	directives := []Directive{directiveAt(DirectiveDisableNextLine, 2, "my-rule")}

	tests := []struct {
		name       string
		line       int
		suppressed bool
	}{
		{name: "directive line itself", line: 2, suppressed: false},
		{name: "next line", line: 3, suppressed: true},
		{name: "line after next", line: 4, suppressed: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags := []Diagnostic{diagAt("my-rule", tt.line, config.SeverityError)}
			surviving, _ := ApplyDirectives(diags, directives, "list.txt", false, config.SeverityWarn)

			if tt.suppressed {
				assert.Empty(t, surviving)
			} else {
				assert.Len(t, surviving, 1)
			}
		})
	}
}

func TestApplyDirectivesDisableLine(t *testing.T) {
	directives := []Directive{directiveAt(DirectiveDisableLine, 5)}

	diags := []Diagnostic{
		diagAt("rule-a", 5, config.SeverityError),
		diagAt("rule-b", 5, config.SeverityWarn),
		diagAt("rule-a", 6, config.SeverityError),
	}

	surviving, counts := ApplyDirectives(diags, directives, "list.txt", false, config.SeverityWarn)

	// Empty rule set means all rules, but only on the directive's line.
	require.Len(t, surviving, 1)
	assert.Equal(t, 6, surviving[0].StartLine)
	assert.Equal(t, 1, counts.Errors)
	assert.Equal(t, 0, counts.Warnings)
}

func TestApplyDirectivesFileScope(t *testing.T) {
	directives := []Directive{
		directiveAt(DirectiveDisableFile, 2, "my-rule"),
		directiveAt(DirectiveEnableFile, 6, "my-rule"),
	}

	diags := []Diagnostic{
		diagAt("my-rule", 1, config.SeverityError),  // before disable
		diagAt("my-rule", 4, config.SeverityError),  // inside disabled span
		diagAt("other", 4, config.SeverityError),    // different rule
		diagAt("my-rule", 8, config.SeverityError),  // after enable
	}

	surviving, _ := ApplyDirectives(diags, directives, "list.txt", false, config.SeverityWarn)

	require.Len(t, surviving, 3)
	assert.Equal(t, 1, surviving[0].StartLine)
	assert.Equal(t, "other", surviving[1].RuleID)
	assert.Equal(t, 8, surviving[2].StartLine)
}

func TestApplyDirectivesDisableFileToEOF(t *testing.T) {
	directives := []Directive{directiveAt(DirectiveDisableFile, 3)}

	diags := []Diagnostic{
		diagAt("rule-a", 2, config.SeverityError),
		diagAt("rule-b", 100, config.SeverityError),
	}

	surviving, _ := ApplyDirectives(diags, directives, "list.txt", false, config.SeverityWarn)

	require.Len(t, surviving, 1)
	assert.Equal(t, 2, surviving[0].StartLine)
}

func TestApplyDirectivesUnusedReporting(t *testing.T) {
	directives := []Directive{directiveAt(DirectiveDisableNextLine, 1, "quiet-rule")}
	diags := []Diagnostic{diagAt("loud-rule", 5, config.SeverityError)}

	t.Run("enabled", func(t *testing.T) {
		surviving, counts := ApplyDirectives(diags, directives, "list.txt", true, config.SeverityWarn)

		require.Len(t, surviving, 2)
		unused := surviving[1]
		assert.Empty(t, unused.RuleID)
		assert.Equal(t, config.SeverityWarn, unused.Severity)
		assert.Equal(t, 1, unused.StartLine)
		assert.Contains(t, unused.Message, "quiet-rule")
		assert.Nil(t, unused.Fix)
		assert.Equal(t, 1, counts.Warnings)
	})

	t.Run("disabled", func(t *testing.T) {
		surviving, _ := ApplyDirectives(diags, directives, "list.txt", false, config.SeverityWarn)
		assert.Len(t, surviving, 1)
	})
}

func TestApplyDirectivesUsedDirectiveNotReported(t *testing.T) {
	directives := []Directive{directiveAt(DirectiveDisableNextLine, 1, "my-rule")}
	diags := []Diagnostic{diagAt("my-rule", 2, config.SeverityError)}

	surviving, counts := ApplyDirectives(diags, directives, "list.txt", true, config.SeverityWarn)

	assert.Empty(t, surviving)
	assert.Equal(t, Counts{}, counts)
}

func TestApplyDirectivesEnableNeverUnused(t *testing.T) {
	directives := []Directive{directiveAt(DirectiveEnableFile, 1)}

	surviving, _ := ApplyDirectives(nil, directives, "list.txt", true, config.SeverityWarn)
	assert.Empty(t, surviving, "enable directives do not participate in unused reporting")
}

func TestApplyDirectivesFatalNeverSuppressed(t *testing.T) {
	directives := []Directive{directiveAt(DirectiveDisableFile, 1)}
	diags := []Diagnostic{{
		Severity:  config.SeverityError,
		StartLine: 3,
		Fatal:     true,
	}}

	surviving, counts := ApplyDirectives(diags, directives, "list.txt", false, config.SeverityWarn)

	require.Len(t, surviving, 1)
	assert.Equal(t, 1, counts.FatalErrors)
}

func TestApplyDirectivesInputsNotMutated(t *testing.T) {
	directives := []Directive{directiveAt(DirectiveDisableNextLine, 1, "my-rule")}
	diags := []Diagnostic{diagAt("my-rule", 2, config.SeverityError)}

	_, _ = ApplyDirectives(diags, directives, "list.txt", true, config.SeverityWarn)

	assert.False(t, directives[0].Used, "caller's directive slice must stay untouched")
}
