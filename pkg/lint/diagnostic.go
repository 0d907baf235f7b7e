package lint

import (
	"github.com/yaklabco/goaglint/pkg/config"
	"github.com/yaklabco/goaglint/pkg/fix"
	"github.com/yaklabco/goaglint/pkg/fltast"
)

// Diagnostic represents a single issue found in a file.
type Diagnostic struct {
	// RuleID identifies the rule that produced the diagnostic. Empty for
	// fatal parse errors and unused-directive reports.
	RuleID string

	// Severity is the resolved severity of the diagnostic.
	Severity config.Severity

	// Category is the producing rule's declared category. Empty when no
	// rule is involved.
	Category Category

	// Message is the rendered, human-readable description.
	Message string

	// FilePath is the path of the file containing the issue.
	FilePath string

	// 1-based position range.
	StartLine   int
	StartColumn int
	EndLine     int
	EndColumn   int

	// Fix is the proposed repair, if any.
	Fix *fix.TextEdit

	// Suggestions are alternative repairs the user can pick manually.
	Suggestions []Suggestion

	// Fatal marks parse failures. Fatal diagnostics never come from
	// rules and are never fixable.
	Fatal bool
}

// Suggestion is one manual-choice repair attached to a diagnostic.
type Suggestion struct {
	// Message describes the suggested change.
	Message string

	// Fix is the edit implementing the suggestion.
	Fix *fix.TextEdit
}

// HasFix returns true if the diagnostic carries a fix.
func (d *Diagnostic) HasFix() bool {
	return d.Fix != nil
}

// SourcePosition returns the diagnostic position as a SourcePosition.
func (d *Diagnostic) SourcePosition() fltast.SourcePosition {
	return fltast.SourcePosition{
		StartLine:   d.StartLine,
		StartColumn: d.StartColumn,
		EndLine:     d.EndLine,
		EndColumn:   d.EndColumn,
	}
}

// Counts tallies surviving diagnostics by severity. Fatal parse errors
// count as errors and are additionally tracked on their own.
type Counts struct {
	Warnings    int
	Errors      int
	FatalErrors int
}

// Add tallies one diagnostic.
func (c *Counts) Add(d *Diagnostic) {
	switch d.Severity {
	case config.SeverityWarn:
		c.Warnings++
	case config.SeverityError:
		c.Errors++
		if d.Fatal {
			c.FatalErrors++
		}
	}
}

// Tally computes counts over a diagnostic list.
func Tally(diags []Diagnostic) Counts {
	var counts Counts
	for i := range diags {
		counts.Add(&diags[i])
	}
	return counts
}
