package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/goaglint/pkg/analysis"
)

func writeTestFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	root := NewRootCommand(buildInfo())
	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), err
}

func TestLintCommandFindsIssues(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, ".goaglint.yml", `
rules:
  no-trailing-spaces: warn
  no-invalid-rules: error
`)
	writeTestFile(t, dir, "list.txt", "! Title: Test List\n||ads.example^  \nexample.com##\n")
	t.Chdir(dir)

	out, err := execute(t, "lint", ".", "--format", "json", "--color", "never")
	require.ErrorIs(t, err, ErrLintIssuesFound)

	var report analysis.Report
	require.NoError(t, json.Unmarshal([]byte(out), &report))

	assert.Equal(t, 1, report.Totals.Files)
	assert.Equal(t, 2, report.Totals.Issues)
	assert.Equal(t, 1, report.Totals.Errors)
	assert.Equal(t, 1, report.Totals.Warnings)

	ruleIDs := make(map[string]bool)
	for _, entry := range report.Diagnostics {
		ruleIDs[entry.RuleID] = true
	}
	assert.True(t, ruleIDs["no-trailing-spaces"])
	assert.True(t, ruleIDs["no-invalid-rules"])
}

func TestLintCommandCleanRun(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, ".goaglint.yml", `
rules:
  no-trailing-spaces: warn
`)
	writeTestFile(t, dir, "list.txt", "! Title: Test List\n||ads.example^\n")
	t.Chdir(dir)

	out, err := execute(t, "lint", ".", "--color", "never")
	require.NoError(t, err)
	assert.Contains(t, out, "No issues found")
}

func TestLintCommandFix(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, ".goaglint.yml", `
rules:
  no-trailing-spaces: warn
`)
	path := writeTestFile(t, dir, "list.txt", "||ads.example^  \n||track.example^\n")
	t.Chdir(dir)

	_, err := execute(t, "lint", ".", "--fix", "--color", "never")
	require.NoError(t, err, "all issues fixed, exit clean")

	fixed, readErr := os.ReadFile(path)
	require.NoError(t, readErr)
	assert.Equal(t, "||ads.example^\n||track.example^\n", string(fixed))

	backup, readErr := os.ReadFile(path + ".goaglint.bak")
	require.NoError(t, readErr, "sidecar backup written")
	assert.Equal(t, "||ads.example^  \n||track.example^\n", string(backup))
}

func TestLintCommandFixDryRun(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, ".goaglint.yml", `
rules:
  no-trailing-spaces: warn
`)
	path := writeTestFile(t, dir, "list.txt", "||ads.example^  \n")
	t.Chdir(dir)

	_, err := execute(t, "lint", ".", "--fix", "--dry-run", "--color", "never")
	require.NoError(t, err)

	content, readErr := os.ReadFile(path)
	require.NoError(t, readErr)
	assert.Equal(t, "||ads.example^  \n", string(content), "dry run leaves the file alone")
}

func TestLintCommandStrict(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, ".goaglint.yml", `
rules:
  no-trailing-spaces: warn
`)
	writeTestFile(t, dir, "list.txt", "||ads.example^  \n")
	t.Chdir(dir)

	_, err := execute(t, "lint", ".", "--color", "never")
	require.NoError(t, err, "warnings alone do not fail the run")

	_, err = execute(t, "lint", ".", "--strict", "--color", "never")
	require.ErrorIs(t, err, ErrLintIssuesFound)

	var coder ExitCoder
	require.ErrorAs(t, err, &coder)
	assert.Equal(t, ExitLintWarnings, coder.ExitCode())
}

func TestLintCommandErrorExitCode(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, ".goaglint.yml", `
rules:
  no-invalid-rules: error
`)
	writeTestFile(t, dir, "list.txt", "example.com##\n")
	t.Chdir(dir)

	_, err := execute(t, "lint", ".", "--color", "never")
	require.ErrorIs(t, err, ErrLintIssuesFound)

	var coder ExitCoder
	require.ErrorAs(t, err, &coder)
	assert.Equal(t, ExitLintErrors, coder.ExitCode())
}

func TestLintCommandConfigErrorExitCode(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, ".goaglint.yml", `
rules:
  no-trailing-spaces: loud
`)
	t.Chdir(dir)

	_, err := execute(t, "lint", ".")
	require.Error(t, err)

	var coder ExitCoder
	require.ErrorAs(t, err, &coder)
	assert.Equal(t, ExitConfigError, coder.ExitCode())
}

func TestLintCommandUnknownFlagExitCode(t *testing.T) {
	_, err := execute(t, "lint", "--no-such-flag")
	require.Error(t, err)

	var coder ExitCoder
	require.ErrorAs(t, err, &coder)
	assert.Equal(t, ExitInvalidUsage, coder.ExitCode())
}

func TestLintCommandSkipsProse(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, ".goaglint.yml", `
rules:
  no-trailing-spaces: warn
`)
	writeTestFile(t, dir, "notes.txt", "These are meeting notes.\nNothing here is a filter.\nJust plain sentences.\nMore prose follows here.\n")
	t.Chdir(dir)

	out, err := execute(t, "lint", ".", "--format", "json", "--color", "never")
	require.NoError(t, err)

	var report analysis.Report
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	require.Len(t, report.SkippedFiles, 1)
	assert.Zero(t, report.Totals.Issues)
}

func TestLintCommandInvalidFormat(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	_, err := execute(t, "lint", ".", "--format", "sarif")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "format")
}
