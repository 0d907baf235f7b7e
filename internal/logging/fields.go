// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldPaths      = "paths"
	FieldFiles      = "files"
	FieldWorkingDir = "working_dir"

	// Configuration fields.
	FieldConfig = "config"
	FieldFix    = "fix"
	FieldDryRun = "dry_run"
	FieldJobs   = "jobs"
	FieldFormat = "format"

	// Statistics fields.
	FieldFilesDiscovered  = "files_discovered"
	FieldFilesProcessed   = "files_processed"
	FieldFilesSkipped     = "files_skipped"
	FieldFilesWithIssues  = "files_with_issues"
	FieldFilesModified    = "files_modified"
	FieldDiagnosticsTotal = "diagnostics_total"
	FieldDiagnosticsFixed = "diagnostics_fixed"
	FieldFixRounds        = "fix_rounds"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"

	// Rule fields.
	FieldRule        = "rule"
	FieldCategory    = "category"
	FieldSeverity    = "severity"
	FieldFixable     = "fixable"
	FieldDescription = "description"
)
