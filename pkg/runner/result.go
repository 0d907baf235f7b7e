package runner

import "github.com/yaklabco/goaglint/pkg/lint"

// FileOutcome is the per-file outcome of a run.
type FileOutcome struct {
	// Path is the absolute file path that was processed.
	Path string

	// Result is the lint result for this file. Nil when the file errored
	// or was skipped before linting.
	Result *lint.Result

	// Skipped is set when the file was excluded before linting, e.g. when
	// its content does not look like a filter list or it was modified
	// externally while fixing.
	Skipped bool

	// SkipReason explains a skip for reporting.
	SkipReason string

	// Written is set when fixes were applied and the file was rewritten.
	Written bool

	// EditsApplied is the number of fix edits spliced into the file across
	// all fix rounds.
	EditsApplied int

	// FixRoundLimitHit is set when fixable issues remained after the
	// configured fix-round budget.
	FixRoundLimitHit bool

	// Error is set if the file could not be processed.
	Error error
}

// Stats captures aggregate information about a run.
type Stats struct {
	// FilesDiscovered is the total number of files found during discovery.
	FilesDiscovered int

	// FilesProcessed is the number of files successfully linted.
	FilesProcessed int

	// FilesSkipped is the number of files skipped before linting.
	FilesSkipped int

	// FilesErrored is the number of files that encountered errors.
	FilesErrored int

	// FilesWithIssues is the number of files with at least one diagnostic.
	FilesWithIssues int

	// FilesModified is the number of files rewritten by fixes.
	FilesModified int

	// DiagnosticsTotal is the total diagnostic count across all files.
	DiagnosticsTotal int

	// DiagnosticsFixable is the number of diagnostics carrying fixes.
	DiagnosticsFixable int

	// DiagnosticsFixed is the total number of edits applied across files.
	DiagnosticsFixed int

	// Counts tallies surviving diagnostics by severity across all files.
	Counts lint.Counts
}

// Result is the overall runner result. Files are ordered deterministically
// by path regardless of worker completion order.
type Result struct {
	Files []FileOutcome
	Stats Stats
}

// HasErrors reports whether any error-severity diagnostics occurred.
func (r *Result) HasErrors() bool {
	return r != nil && r.Stats.Counts.Errors > 0
}

// HasIssues reports whether any diagnostics were found.
func (r *Result) HasIssues() bool {
	return r != nil && r.Stats.DiagnosticsTotal > 0
}

// HasProcessingErrors reports whether any file failed to process at all.
func (r *Result) HasProcessingErrors() bool {
	return r != nil && r.Stats.FilesErrored > 0
}

// accumulate folds one file outcome into the aggregate stats.
func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)

	if outcome.Error != nil {
		r.Stats.FilesErrored++
		return
	}
	if outcome.Skipped {
		r.Stats.FilesSkipped++
		return
	}
	if outcome.Result == nil {
		return
	}

	r.Stats.FilesProcessed++
	if outcome.Written {
		r.Stats.FilesModified++
	}
	r.Stats.DiagnosticsFixed += outcome.EditsApplied

	diagCount := len(outcome.Result.Diagnostics)
	r.Stats.DiagnosticsTotal += diagCount
	r.Stats.DiagnosticsFixable += outcome.Result.FixableCount()
	if diagCount > 0 {
		r.Stats.FilesWithIssues++
	}

	r.Stats.Counts.Warnings += outcome.Result.Counts.Warnings
	r.Stats.Counts.Errors += outcome.Result.Counts.Errors
	r.Stats.Counts.FatalErrors += outcome.Result.Counts.FatalErrors
}
