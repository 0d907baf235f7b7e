package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/goaglint/pkg/lint"
	"github.com/yaklabco/goaglint/pkg/runner"
)

func buildInfo() BuildInfo {
	return BuildInfo{Version: "test", Commit: "abc123", Date: "2026-01-01"}
}

func TestNewRootCommand(t *testing.T) {
	root := NewRootCommand(buildInfo())
	require.NotNil(t, root)
	assert.Equal(t, "goaglint", root.Use)

	var names []string
	for _, sub := range root.Commands() {
		names = append(names, sub.Name())
	}
	assert.Contains(t, names, "lint")
	assert.Contains(t, names, "rules")
	assert.Contains(t, names, "init")
	assert.Contains(t, names, "version")
}

func TestRootPersistentFlags(t *testing.T) {
	root := NewRootCommand(buildInfo())

	for _, flag := range []string{"debug", "config", "color"} {
		assert.NotNil(t, root.PersistentFlags().Lookup(flag), flag)
	}
}

func TestExitCodeFromResult(t *testing.T) {
	tests := []struct {
		name     string
		result   *runner.Result
		strict   bool
		expected int
	}{
		{"nil result", nil, false, ExitSuccess},
		{"clean", &runner.Result{}, false, ExitSuccess},
		{
			"errors",
			&runner.Result{Stats: runner.Stats{Counts: lint.Counts{Errors: 1}}},
			false,
			ExitLintErrors,
		},
		{
			"warnings lenient",
			&runner.Result{Stats: runner.Stats{Counts: lint.Counts{Warnings: 3}}},
			false,
			ExitSuccess,
		},
		{
			"warnings strict",
			&runner.Result{Stats: runner.Stats{Counts: lint.Counts{Warnings: 3}}},
			true,
			ExitLintWarnings,
		},
		{
			"processing errors",
			&runner.Result{Stats: runner.Stats{FilesErrored: 1}},
			false,
			ExitLintErrors,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.expected, ExitCodeFromResult(testCase.result, testCase.strict))
		})
	}
}

func TestInitCommand(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, ".goaglint.yml")

	root := NewRootCommand(buildInfo())
	root.SetArgs([]string{"init", "--output", target})
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})

	require.NoError(t, root.Execute())

	content, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Contains(t, string(content), "rules:")
	assert.Contains(t, string(content), "no-trailing-spaces")

	// A second run without --force must refuse to overwrite.
	root = NewRootCommand(buildInfo())
	root.SetArgs([]string{"init", "--output", target})
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	err = root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	// With --force it succeeds.
	root = NewRootCommand(buildInfo())
	root.SetArgs([]string{"init", "--output", target, "--force"})
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	require.NoError(t, root.Execute())
}

func TestNewLintEngine(t *testing.T) {
	engine, err := newLintEngine()
	require.NoError(t, err)
	require.NotNil(t, engine)
}
