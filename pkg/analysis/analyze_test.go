package analysis

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/goaglint/pkg/config"
	"github.com/yaklabco/goaglint/pkg/fix"
	"github.com/yaklabco/goaglint/pkg/lint"
	"github.com/yaklabco/goaglint/pkg/runner"
)

func diag(ruleID string, sev config.Severity, line int, fixable bool) lint.Diagnostic {
	d := lint.Diagnostic{
		RuleID:      ruleID,
		Severity:    sev,
		Category:    "layout",
		Message:     "issue",
		StartLine:   line,
		StartColumn: 1,
		EndLine:     line,
		EndColumn:   2,
	}
	if fixable {
		edit := fix.Delete(0, 1)
		d.Fix = &edit
	}
	return d
}

func fixtureResult() *runner.Result {
	cleanResult := &lint.Result{}

	dirty := []lint.Diagnostic{
		diag("no-trailing-spaces", config.SeverityWarn, 1, true),
		diag("no-trailing-spaces", config.SeverityWarn, 2, true),
		diag("no-invalid-rules", config.SeverityError, 3, false),
	}
	dirtyResult := &lint.Result{Diagnostics: dirty, Counts: lint.Tally(dirty)}

	fatal := []lint.Diagnostic{{
		Severity:    config.SeverityError,
		Message:     "cannot parse file: binary content",
		StartLine:   1,
		StartColumn: 1,
		EndLine:     1,
		EndColumn:   1,
		Fatal:       true,
	}}
	fatalResult := &lint.Result{Diagnostics: fatal, Counts: lint.Tally(fatal)}

	r := &runner.Result{
		Files: []runner.FileOutcome{
			{Path: "/work/broken.txt", Result: fatalResult},
			{Path: "/work/clean.txt", Result: cleanResult},
			{Path: "/work/dirty.txt", Result: dirtyResult},
			{Path: "/work/notes.txt", Skipped: true, SkipReason: "not a filter list"},
			{Path: "/work/locked.txt", Error: errors.New("permission denied")},
		},
	}
	r.Stats.FilesModified = 1
	r.Stats.DiagnosticsFixed = 2
	return r
}

func TestAnalyzeTotals(t *testing.T) {
	report := Analyze(fixtureResult(), DefaultOptions())

	assert.Equal(t, ReportVersion, report.Version)
	assert.False(t, report.Timestamp.IsZero())

	totals := report.Totals
	assert.Equal(t, 5, totals.Files)
	assert.Equal(t, 2, totals.FilesWithIssues)
	assert.Equal(t, 1, totals.FilesSkipped)
	assert.Equal(t, 1, totals.FilesErrored)
	assert.Equal(t, 1, totals.FilesFixed)
	assert.Equal(t, 4, totals.Issues)
	assert.Equal(t, 2, totals.Errors)
	assert.Equal(t, 1, totals.FatalErrors)
	assert.Equal(t, 2, totals.Warnings)
	assert.Equal(t, 2, totals.Fixable)
	assert.Equal(t, 2, totals.Fixed)
	assert.True(t, totals.HasIssues())
	assert.True(t, totals.HasErrors())
}

func TestAnalyzeRelativePaths(t *testing.T) {
	opts := DefaultOptions()
	opts.WorkingDir = "/work"

	report := Analyze(fixtureResult(), opts)

	require.NotEmpty(t, report.Diagnostics)
	assert.Equal(t, "broken.txt", report.Diagnostics[0].FilePath)
}

func TestAnalyzeDiagnosticEntries(t *testing.T) {
	report := Analyze(fixtureResult(), DefaultOptions())
	require.Len(t, report.Diagnostics, 4)

	fatal := report.Diagnostics[0]
	assert.True(t, fatal.Fatal)
	assert.Empty(t, fatal.RuleID)
	assert.Equal(t, "error", fatal.Severity)
	assert.False(t, fatal.Fixable)

	fixable := report.Diagnostics[1]
	assert.Equal(t, "no-trailing-spaces", fixable.RuleID)
	assert.True(t, fixable.Fixable)
	require.NotNil(t, fixable.Fix)
	assert.Equal(t, 1, fixable.Fix.EndOffset)
}

func TestAnalyzeByRule(t *testing.T) {
	opts := DefaultOptions()
	opts.WorkingDir = "/work"

	report := Analyze(fixtureResult(), opts)
	require.Len(t, report.ByRule, 2, "fatal diagnostics have no rule bucket")

	// Default sort: by count, descending.
	top := report.ByRule[0]
	assert.Equal(t, "no-trailing-spaces", top.RuleID)
	assert.Equal(t, 2, top.Issues)
	assert.Equal(t, 2, top.Warnings)
	assert.True(t, top.Fixable)
	assert.Equal(t, []string{"dirty.txt"}, top.Files)

	assert.Equal(t, "no-invalid-rules", report.ByRule[1].RuleID)
	assert.Equal(t, 1, report.ByRule[1].Errors)
	assert.False(t, report.ByRule[1].Fixable)
}

func TestAnalyzeByFile(t *testing.T) {
	opts := DefaultOptions()
	opts.WorkingDir = "/work"

	report := Analyze(fixtureResult(), opts)
	require.Len(t, report.ByFile, 2, "clean files are omitted")

	top := report.ByFile[0]
	assert.Equal(t, "dirty.txt", top.Path)
	assert.Equal(t, 3, top.Issues)
	assert.Equal(t, 1, top.Errors)
	assert.Equal(t, 2, top.Warnings)
	assert.Equal(t, []string{"no-invalid-rules", "no-trailing-spaces"}, top.Rules)
}

func TestAnalyzeSortModes(t *testing.T) {
	result := fixtureResult()

	alpha := DefaultOptions()
	alpha.SortBy = SortByAlpha
	report := Analyze(result, alpha)
	assert.Equal(t, "no-invalid-rules", report.ByRule[0].RuleID)
	assert.Equal(t, "no-trailing-spaces", report.ByRule[1].RuleID)

	severity := DefaultOptions()
	severity.SortBy = SortBySeverity
	report = Analyze(result, severity)
	assert.Equal(t, "no-invalid-rules", report.ByRule[0].RuleID, "errors sort first")
}

func TestAnalyzeViewToggles(t *testing.T) {
	report := Analyze(fixtureResult(), Options{})

	assert.Empty(t, report.Diagnostics)
	assert.Empty(t, report.ByRule)
	assert.Empty(t, report.ByFile)
	assert.Equal(t, 4, report.Totals.Issues, "totals are always computed")
}

func TestAnalyzeNilResult(t *testing.T) {
	report := Analyze(nil, DefaultOptions())

	assert.Equal(t, ReportVersion, report.Version)
	assert.Zero(t, report.Totals.Files)
	assert.False(t, report.Totals.HasIssues())
}

func TestSortFieldIsValid(t *testing.T) {
	assert.True(t, SortByCount.IsValid())
	assert.True(t, SortByAlpha.IsValid())
	assert.True(t, SortBySeverity.IsValid())
	assert.False(t, SortField("bogus").IsValid())
}
