package runner

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/goaglint/pkg/config"
	"github.com/yaklabco/goaglint/pkg/fsutil"
	"github.com/yaklabco/goaglint/pkg/lint"
	_ "github.com/yaklabco/goaglint/pkg/lint/rules"
	"github.com/yaklabco/goaglint/pkg/parser/cssel"
	"github.com/yaklabco/goaglint/pkg/parser/fltparse"
)

func newRunner(t *testing.T) *Runner {
	t.Helper()
	engine := lint.NewEngine(fltparse.New(), lint.DefaultRegistry)
	require.NoError(t, engine.RegisterEmbedded("CosmeticRule > SelectorBody.body", cssel.TreeAdapter{}))
	return New(engine)
}

func lintConfig() *config.Config {
	cfg := config.NewConfig()
	cfg.Rules = map[string]config.RuleSetting{
		"no-trailing-spaces": {Severity: config.SeverityWarn},
		"no-invalid-rules":   {Severity: config.SeverityError},
	}
	return cfg
}

func TestRunLintOnly(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "clean.txt"),
		[]byte("||ads.example^\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "dirty.txt"),
		[]byte("||ads.example^  \n"), 0644))

	r := newRunner(t)
	result, err := r.Run(context.Background(), Options{
		WorkingDir: dir,
		Config:     lintConfig(),
	})
	require.NoError(t, err)

	assert.Equal(t, 2, result.Stats.FilesDiscovered)
	assert.Equal(t, 2, result.Stats.FilesProcessed)
	assert.Equal(t, 1, result.Stats.FilesWithIssues)
	assert.Equal(t, 1, result.Stats.DiagnosticsTotal)
	assert.Equal(t, 1, result.Stats.DiagnosticsFixable)
	assert.Equal(t, 1, result.Stats.Counts.Warnings)
	assert.Zero(t, result.Stats.FilesModified)
	assert.True(t, result.HasIssues())
	assert.False(t, result.HasErrors())

	// Outcomes follow discovery order regardless of worker scheduling.
	require.Len(t, result.Files, 2)
	assert.Equal(t, filepath.Join(dir, "clean.txt"), result.Files[0].Path)
	assert.Equal(t, filepath.Join(dir, "dirty.txt"), result.Files[1].Path)

	// Lint-only never touches the file.
	content, err := os.ReadFile(filepath.Join(dir, "dirty.txt"))
	require.NoError(t, err)
	assert.Equal(t, "||ads.example^  \n", string(content))
}

func TestRunWithFix(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dirty.txt")
	require.NoError(t, os.WriteFile(path, []byte("||ads.example^  \n"), 0600))

	cfg := lintConfig()
	cfg.Fix = true

	r := newRunner(t)
	result, err := r.Run(context.Background(), Options{WorkingDir: dir, Config: cfg})
	require.NoError(t, err)

	require.Len(t, result.Files, 1)
	outcome := result.Files[0]
	require.NoError(t, outcome.Error)
	assert.True(t, outcome.Written)
	assert.Equal(t, 1, outcome.EditsApplied)
	assert.Equal(t, 1, result.Stats.FilesModified)
	assert.Equal(t, 1, result.Stats.DiagnosticsFixed)
	assert.Zero(t, result.Stats.DiagnosticsTotal, "settled text is clean")

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "||ads.example^\n", string(content))

	stat, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), stat.Mode().Perm(), "mode preserved")

	// Default config keeps backups on.
	backup, err := os.ReadFile(fsutil.BackupPath(path, fsutil.BackupModeSidecar))
	require.NoError(t, err)
	assert.Equal(t, "||ads.example^  \n", string(backup))
}

func TestRunWithFixNoBackups(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dirty.txt")
	require.NoError(t, os.WriteFile(path, []byte("||ads.example^  \n"), 0644))

	cfg := lintConfig()
	cfg.Fix = true
	cfg.NoBackups = true

	r := newRunner(t)
	_, err := r.Run(context.Background(), Options{WorkingDir: dir, Config: cfg})
	require.NoError(t, err)

	assert.False(t, fsutil.BackupExists(path, fsutil.BackupModeSidecar))
}

func TestRunDryRun(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dirty.txt")
	require.NoError(t, os.WriteFile(path, []byte("||ads.example^  \n"), 0644))

	cfg := lintConfig()
	cfg.Fix = true
	cfg.DryRun = true

	r := newRunner(t)
	result, err := r.Run(context.Background(), Options{WorkingDir: dir, Config: cfg})
	require.NoError(t, err)

	outcome := result.Files[0]
	assert.False(t, outcome.Written)
	assert.Equal(t, 1, outcome.EditsApplied, "dry run still reports what it would fix")

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "||ads.example^  \n", string(content), "file untouched")
}

func TestRunSkipsNonFilterLists(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "changelog.txt"),
		[]byte("Release notes\n\nAdded a thing.\nFixed a thing.\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "list.txt"),
		[]byte("||ads.example^\n"), 0644))

	r := newRunner(t)
	result, err := r.Run(context.Background(), Options{
		WorkingDir: dir,
		Config:     lintConfig(),
	})
	require.NoError(t, err)

	assert.Equal(t, 1, result.Stats.FilesSkipped)
	assert.Equal(t, 1, result.Stats.FilesProcessed)

	skipped := result.Files[0]
	assert.True(t, skipped.Skipped)
	assert.NotEmpty(t, skipped.SkipReason)
	assert.Nil(t, skipped.Result)
}

func TestRunEmptyDirectory(t *testing.T) {
	r := newRunner(t)
	result, err := r.Run(context.Background(), Options{
		WorkingDir: t.TempDir(),
		Config:     lintConfig(),
	})
	require.NoError(t, err)

	assert.Zero(t, result.Stats.FilesDiscovered)
	assert.Empty(t, result.Files)
	assert.False(t, result.HasIssues())
}

func TestRunFatalParseCounts(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "list.txt"),
		[]byte("||ads.example^\n"), 0644))
	// NUL content: sniffed out before the engine runs.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "binary.txt"),
		[]byte("||ads\x00example^\n"), 0644))

	r := newRunner(t)
	result, err := r.Run(context.Background(), Options{
		WorkingDir: dir,
		Config:     lintConfig(),
	})
	require.NoError(t, err)

	assert.Equal(t, 1, result.Stats.FilesSkipped)
	assert.Equal(t, 1, result.Stats.FilesProcessed)
}
