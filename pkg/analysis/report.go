// Package analysis turns raw runner results into pre-computed report views.
// The Report is computed once by Analyze() and shared by all renderers.
package analysis

import "time"

// ReportVersion is the current report format version.
const ReportVersion = "1.0.0"

// Report contains pre-computed views of a lint run.
type Report struct {
	// Diagnostics is the flat list for detailed output.
	Diagnostics []DiagnosticEntry `json:"diagnostics,omitempty"`

	// ByFile groups diagnostics by file path.
	ByFile []FileAnalysis `json:"byFile,omitempty"`

	// ByRule groups diagnostics by rule.
	ByRule []RuleAnalysis `json:"byRule,omitempty"`

	// FileErrors lists files that could not be processed.
	FileErrors []FileError `json:"fileErrors,omitempty"`

	// SkippedFiles lists files excluded before linting.
	SkippedFiles []SkippedFile `json:"skippedFiles,omitempty"`

	// Totals contains aggregate statistics.
	Totals Totals `json:"summary"`

	// Version is the report format version.
	Version string `json:"version"`

	// Timestamp is when the analysis was performed.
	Timestamp time.Time `json:"timestamp"`
}

// DiagnosticEntry represents a single diagnostic in the report.
type DiagnosticEntry struct {
	FilePath    string            `json:"filePath"`
	RuleID      string            `json:"ruleId,omitempty"`
	Severity    string            `json:"severity"`
	Category    string            `json:"category,omitempty"`
	Message     string            `json:"message"`
	StartLine   int               `json:"startLine"`
	StartColumn int               `json:"startColumn"`
	EndLine     int               `json:"endLine"`
	EndColumn   int               `json:"endColumn"`
	Fatal       bool              `json:"fatal,omitempty"`
	Fixable     bool              `json:"fixable"`
	Fix         *FixEntry         `json:"fix,omitempty"`
	Suggestions []SuggestionEntry `json:"suggestions,omitempty"`

	// SourceLine is the content of the diagnostic's first line, captured
	// for terminal context rendering. Not part of the JSON format.
	SourceLine string `json:"-"`
}

// FileError records a file that failed to process.
type FileError struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// SkippedFile records a file excluded before linting.
type SkippedFile struct {
	Path   string `json:"path"`
	Reason string `json:"reason"`
}

// FixEntry represents a text edit fix.
type FixEntry struct {
	StartOffset int    `json:"startOffset"`
	EndOffset   int    `json:"endOffset"`
	NewText     string `json:"newText"`
}

// SuggestionEntry is one manual-choice repair in the report.
type SuggestionEntry struct {
	Message string    `json:"message"`
	Fix     *FixEntry `json:"fix,omitempty"`
}

// Totals contains aggregate statistics for the report.
type Totals struct {
	Files           int `json:"filesChecked"`
	FilesWithIssues int `json:"filesWithIssues"`
	FilesSkipped    int `json:"filesSkipped"`
	FilesErrored    int `json:"filesErrored"`
	FilesFixed      int `json:"filesFixed"`
	Issues          int `json:"totalIssues"`
	Errors          int `json:"errors"`
	FatalErrors     int `json:"fatalErrors"`
	Warnings        int `json:"warnings"`
	Fixable         int `json:"fixable"`
	Fixed           int `json:"fixed"`
}

// HasIssues returns true if there are any issues.
func (t Totals) HasIssues() bool {
	return t.Issues > 0
}

// HasErrors returns true if there are any errors.
func (t Totals) HasErrors() bool {
	return t.Errors > 0
}

// FileAnalysis contains aggregated data for a single file.
type FileAnalysis struct {
	Path     string   `json:"path"`
	Issues   int      `json:"issues"`
	Errors   int      `json:"errors"`
	Warnings int      `json:"warnings"`
	Rules    []string `json:"rules,omitempty"`
}

// RuleAnalysis contains aggregated data for a single rule.
type RuleAnalysis struct {
	RuleID   string   `json:"ruleId"`
	Issues   int      `json:"issues"`
	Errors   int      `json:"errors"`
	Warnings int      `json:"warnings"`
	Fixable  bool     `json:"fixable"`
	Files    []string `json:"files,omitempty"`
}
