package lint

import (
	"strings"

	"github.com/yaklabco/goaglint/pkg/config"
)

// ApplyDirectives filters diagnostics through the collected inline
// directives and tallies severity counts over the survivors.
//
// A diagnostic is dropped when some directive covers its start line and
// targets its rule; the covering directive is marked used. When
// reportUnused is set, every disable directive that suppressed nothing
// yields one extra non-fixable diagnostic at unusedSeverity.
//
// The function is pure: inputs are not mutated; the returned slice is
// freshly allocated.
func ApplyDirectives(
	diags []Diagnostic,
	directives []Directive,
	filePath string,
	reportUnused bool,
	unusedSeverity config.Severity,
) ([]Diagnostic, Counts) {
	// Copy so marking "used" does not touch the caller's slice.
	scoped := make([]Directive, len(directives))
	copy(scoped, directives)

	surviving := make([]Diagnostic, 0, len(diags))
	for i := range diags {
		if idx := coveringDirective(scoped, &diags[i]); idx >= 0 {
			scoped[idx].Used = true
			continue
		}
		surviving = append(surviving, diags[i])
	}

	if reportUnused {
		for i := range scoped {
			d := &scoped[i]
			if !d.IsDisable() || d.Used {
				continue
			}
			surviving = append(surviving, unusedDirectiveDiagnostic(d, filePath, unusedSeverity))
		}
	}

	return surviving, Tally(surviving)
}

// coveringDirective returns the index of the first directive that
// suppresses the diagnostic, or -1.
func coveringDirective(directives []Directive, diag *Diagnostic) int {
	for i := range directives {
		d := &directives[i]
		if !d.Matches(diag.RuleID) {
			continue
		}

		switch d.Kind {
		case DirectiveDisableLine:
			if diag.StartLine == d.Line {
				return i
			}
		case DirectiveDisableNextLine:
			if diag.StartLine == d.Line+1 {
				return i
			}
		case DirectiveDisableFile:
			if diag.StartLine >= d.Line && !reenabledBefore(directives, d, diag) {
				return i
			}
		case DirectiveEnableFile:
			// Enable directives never suppress.
		}
	}
	return -1
}

// reenabledBefore reports whether an enable directive between the disable
// and the diagnostic line re-enables the diagnostic's rule.
func reenabledBefore(directives []Directive, disable *Directive, diag *Diagnostic) bool {
	for i := range directives {
		d := &directives[i]
		if d.Kind != DirectiveEnableFile {
			continue
		}
		if d.Line <= disable.Line || d.Line > diag.StartLine {
			continue
		}
		if d.Matches(diag.RuleID) {
			return true
		}
	}
	return false
}

// unusedDirectiveDiagnostic builds the report for a directive that matched
// zero diagnostics.
func unusedDirectiveDiagnostic(d *Directive, filePath string, severity config.Severity) Diagnostic {
	message := "unused aglint-disable directive (no problems were reported)"
	if len(d.Rules) > 0 {
		message = "unused aglint-disable directive (no problems were reported from " +
			strings.Join(d.Rules, ", ") + ")"
	}

	return Diagnostic{
		Severity:    severity,
		Message:     message,
		FilePath:    filePath,
		StartLine:   d.Position.StartLine,
		StartColumn: d.Position.StartColumn,
		EndLine:     d.Position.EndLine,
		EndColumn:   d.Position.EndColumn,
	}
}
