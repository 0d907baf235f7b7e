package runner

import (
	"context"
	"fmt"

	"github.com/yaklabco/goaglint/pkg/config"
	"github.com/yaklabco/goaglint/pkg/fsutil"
	"github.com/yaklabco/goaglint/pkg/lint"
	"github.com/yaklabco/goaglint/pkg/listdetect"
)

// processFile runs the per-file pipeline: read, sniff, lint (optionally with
// fixes), and write back safely when fixing changed the text.
func (r *Runner) processFile(ctx context.Context, path string, cfg *config.Config) FileOutcome {
	outcome := FileOutcome{Path: path}

	content, info, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		outcome.Error = fmt.Errorf("read %s: %w", path, err)
		return outcome
	}

	if !listdetect.IsFilterList(content) {
		outcome.Skipped = true
		outcome.SkipReason = "content does not look like a filter list"
		return outcome
	}

	if cfg == nil || !cfg.Fix {
		result, err := r.Engine.Lint(ctx, path, content, cfg)
		if err != nil {
			outcome.Error = err
			return outcome
		}
		outcome.Result = result
		return outcome
	}

	fixed, err := r.Engine.LintWithFixes(ctx, path, content, cfg, lint.FixOptions{
		MaxRounds:  cfg.MaxFixRounds,
		Categories: cfg.FixCategories,
		RuleIDs:    cfg.FixRules,
	})
	if err != nil {
		outcome.Error = err
		return outcome
	}

	outcome.Result = fixed.Result
	outcome.EditsApplied = fixed.AppliedFixCount
	outcome.FixRoundLimitHit = fixed.RoundLimitHit

	if !fixed.Changed() || cfg.DryRun {
		return outcome
	}

	// Never clobber a file that changed under us between read and write.
	modified, err := fsutil.CheckModified(ctx, info)
	if err != nil {
		outcome.Error = fmt.Errorf("check %s: %w", path, err)
		return outcome
	}
	if modified {
		outcome.Skipped = true
		outcome.SkipReason = "file was modified externally during the run"
		outcome.EditsApplied = 0
		return outcome
	}

	if _, err := fsutil.CreateBackup(ctx, path, backupConfig(cfg)); err != nil {
		outcome.Error = fmt.Errorf("backup %s: %w", path, err)
		return outcome
	}

	if err := fsutil.WriteAtomic(ctx, path, fixed.FixedText, info.Mode); err != nil {
		outcome.Error = fmt.Errorf("write %s: %w", path, err)
		return outcome
	}

	outcome.Written = true
	return outcome
}

// backupConfig translates the run configuration into fsutil backup settings.
func backupConfig(cfg *config.Config) fsutil.BackupConfig {
	bc := fsutil.BackupConfig{
		Enabled: cfg.Backups.Enabled && !cfg.NoBackups,
		Mode:    fsutil.BackupMode(cfg.Backups.Mode),
	}
	if bc.Mode == "" {
		bc.Mode = fsutil.BackupModeSidecar
	}
	return bc
}
