package pretty

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/goaglint/pkg/analysis"
)

func TestIsColorEnabled(t *testing.T) {
	var buf bytes.Buffer

	assert.True(t, IsColorEnabled("always", &buf))
	assert.False(t, IsColorEnabled("never", &buf))
	assert.False(t, IsColorEnabled("auto", &buf), "a plain buffer is not a TTY")
}

func TestFormatDiagnostic(t *testing.T) {
	s := NewStyles(false)

	entry := &analysis.DiagnosticEntry{
		FilePath:    "easylist.txt",
		RuleID:      "no-trailing-spaces",
		Severity:    "warn",
		Message:     "trailing whitespace",
		StartLine:   3,
		StartColumn: 15,
		SourceLine:  "||ads.example^  ",
	}

	out := s.FormatDiagnostic(entry, true)

	assert.Contains(t, out, "easylist.txt:3:15")
	assert.Contains(t, out, "warning")
	assert.Contains(t, out, "trailing whitespace")
	assert.Contains(t, out, "(no-trailing-spaces)")
	assert.Contains(t, out, "||ads.example^")

	// Caret lands under the reported column.
	lines := strings.Split(out, "\n")
	require.GreaterOrEqual(t, len(lines), 3)
	caretLine := lines[2]
	assert.Equal(t, "^", strings.TrimSpace(caretLine))
	assert.Equal(t, len("        ")+14, strings.Index(caretLine, "^"))
}

func TestFormatDiagnosticFatal(t *testing.T) {
	s := NewStyles(false)

	entry := &analysis.DiagnosticEntry{
		FilePath:    "broken.txt",
		Severity:    "error",
		Fatal:       true,
		Message:     "cannot parse file: binary content",
		StartLine:   1,
		StartColumn: 1,
	}

	out := s.FormatDiagnostic(entry, false)
	assert.Contains(t, out, "fatal")
	assert.NotContains(t, out, "()", "no empty rule id parens")
}

func TestFormatDiagnosticSuggestions(t *testing.T) {
	s := NewStyles(false)

	entry := &analysis.DiagnosticEntry{
		FilePath:    "list.txt",
		RuleID:      "single-selector",
		Severity:    "warn",
		Message:     "selector list has 2 selectors",
		StartLine:   1,
		StartColumn: 1,
		Suggestions: []analysis.SuggestionEntry{
			{Message: "split into one rule per selector"},
		},
	}

	out := s.FormatDiagnostic(entry, false)
	assert.Contains(t, out, "Suggestion:")
	assert.Contains(t, out, "split into one rule per selector")
}

func TestFormatSummaryOneLine(t *testing.T) {
	s := NewStyles(false)

	out := s.FormatSummaryOneLine(analysis.Totals{
		Files:           3,
		FilesWithIssues: 2,
		Issues:          12,
		Errors:          8,
		Warnings:        4,
		Fixable:         6,
	})
	assert.Equal(t, "12 issues (8 errors, 4 warnings) in 2 files, 6 fixable\n", out)

	out = s.FormatSummaryOneLine(analysis.Totals{Files: 3})
	assert.Equal(t, "No issues found (3 files checked)\n", out)

	out = s.FormatSummaryOneLine(analysis.Totals{Files: 1, Fixed: 2, FilesFixed: 1})
	assert.Equal(t, "No issues found (1 files checked), 2 fixed in 1 file\n", out)

	out = s.FormatSummaryOneLine(analysis.Totals{Files: 1, FilesWithIssues: 1, Issues: 1, Warnings: 1})
	assert.Equal(t, "1 issue (1 warnings) in 1 file\n", out)
}

func TestFormatSummaryBlock(t *testing.T) {
	s := NewStyles(false)

	out := s.FormatSummary(analysis.Totals{
		Files:           4,
		FilesWithIssues: 1,
		FilesSkipped:    1,
		Issues:          2,
		Errors:          1,
		FatalErrors:     1,
		Warnings:        1,
	})

	assert.Contains(t, out, "Files checked:     4")
	assert.Contains(t, out, "Files with issues: 1")
	assert.Contains(t, out, "Files skipped:     1")
	assert.Contains(t, out, "Total issues:      2")
	assert.Contains(t, out, "Fatal:           1")
	assert.Contains(t, out, "Lint failed with errors")

	clean := s.FormatSummary(analysis.Totals{Files: 2})
	assert.Contains(t, clean, "Lint passed")
}

func TestFormatFileHeader(t *testing.T) {
	s := NewStyles(false)

	assert.Equal(t, "list.txt (3 issues)", s.FormatFileHeader("list.txt", 3))
	assert.Equal(t, "list.txt", s.FormatFileHeader("list.txt", 0))
}
