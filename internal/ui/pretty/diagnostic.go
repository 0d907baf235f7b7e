package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/goaglint/pkg/analysis"
)

// FormatDiagnostic formats a single report entry for terminal output.
func (s *Styles) FormatDiagnostic(entry *analysis.DiagnosticEntry, showContext bool) string {
	var builder strings.Builder

	location := fmt.Sprintf("%s:%d:%d",
		s.FilePath.Render(entry.FilePath),
		entry.StartLine,
		entry.StartColumn,
	)

	severity := s.FormatSeverity(entry.Severity, entry.Fatal)

	// Fatal parse errors and unused-directive reports have no rule id.
	rule := ""
	if entry.RuleID != "" {
		rule = "  " + s.RuleID.Render("("+entry.RuleID+")")
	}

	builder.WriteString(fmt.Sprintf("  %s  %s  %s%s\n",
		location,
		severity,
		s.Message.Render(entry.Message),
		rule,
	))

	if showContext && entry.SourceLine != "" {
		builder.WriteString(s.FormatSourceContext(entry.SourceLine, entry.StartColumn))
	}

	for _, suggestion := range entry.Suggestions {
		builder.WriteString("    " + s.Dim.Render("Suggestion:") + " " +
			s.Suggestion.Render(suggestion.Message) + "\n")
	}

	return builder.String()
}

// FormatSeverity returns a styled severity string.
func (s *Styles) FormatSeverity(severity string, fatal bool) string {
	if fatal {
		return s.Error.Render("fatal")
	}
	switch severity {
	case "error":
		return s.Error.Render("error")
	case "warn":
		return s.Warning.Render("warning")
	default:
		return severity
	}
}

// FormatSourceContext formats the source line with a caret marker.
func (s *Styles) FormatSourceContext(line string, column int) string {
	var builder strings.Builder

	// Indent to align with diagnostic output.
	const indent = "        "

	builder.WriteString(indent + s.SourceLine.Render(line) + "\n")

	if column > 0 {
		padding := indent + strings.Repeat(" ", column-1)
		builder.WriteString(padding + s.Caret.Render("^") + "\n")
	}

	return builder.String()
}

// FormatFileHeader formats a file header for grouped output.
func (s *Styles) FormatFileHeader(path string, issueCount int) string {
	header := s.FilePath.Render(path)
	if issueCount > 0 {
		header += s.Dim.Render(fmt.Sprintf(" (%d issues)", issueCount))
	}
	return header
}
