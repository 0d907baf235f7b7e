package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yaklabco/goaglint/pkg/analysis"
)

const (
	summaryDividerWidth = 40
	wordFile            = "file"
	wordFiles           = "files"
)

// FormatSummaryOneLine formats run totals as a single line.
// Example: "12 issues (8 errors, 4 warnings) in 3 files, 6 fixable".
func (s *Styles) FormatSummaryOneLine(totals analysis.Totals) string {
	if totals.Issues == 0 {
		checked := totals.Files - totals.FilesSkipped - totals.FilesErrored
		msg := s.Success.Render("No issues found") +
			s.Dim.Render(fmt.Sprintf(" (%d files checked)", checked))
		if totals.Fixed > 0 {
			fileWord := wordFiles
			if totals.FilesFixed == 1 {
				fileWord = wordFile
			}
			msg += ", " + s.Success.Render(fmt.Sprintf("%d fixed in %d %s", totals.Fixed, totals.FilesFixed, fileWord))
		}
		return msg + "\n"
	}

	var parts []string

	issueWord := "issues"
	if totals.Issues == 1 {
		issueWord = "issue"
	}

	var severityParts []string
	if totals.Errors > 0 {
		severityParts = append(severityParts, s.Error.Render(fmt.Sprintf("%d errors", totals.Errors)))
	}
	if totals.Warnings > 0 {
		severityParts = append(severityParts, s.Warning.Render(fmt.Sprintf("%d warnings", totals.Warnings)))
	}

	fileWord := wordFiles
	if totals.FilesWithIssues == 1 {
		fileWord = wordFile
	}
	if len(severityParts) > 0 {
		parts = append(parts, fmt.Sprintf("%d %s (%s) in %d %s", totals.Issues, issueWord, strings.Join(severityParts, ", "), totals.FilesWithIssues, fileWord))
	} else {
		parts = append(parts, fmt.Sprintf("%d %s in %d %s", totals.Issues, issueWord, totals.FilesWithIssues, fileWord))
	}

	if totals.Fixable > 0 {
		parts = append(parts, s.Success.Render(fmt.Sprintf("%d fixable", totals.Fixable)))
	}

	if totals.Fixed > 0 {
		fixedFileWord := wordFiles
		if totals.FilesFixed == 1 {
			fixedFileWord = wordFile
		}
		parts = append(parts, s.Success.Render(fmt.Sprintf("%d fixed in %d %s", totals.Fixed, totals.FilesFixed, fixedFileWord)))
	}

	return strings.Join(parts, ", ") + "\n"
}

// FormatSummary formats run totals as a summary block.
func (s *Styles) FormatSummary(totals analysis.Totals) string {
	var builder strings.Builder

	builder.WriteString("\n")
	builder.WriteString(s.SummaryTitle.Render("Summary"))
	builder.WriteString("\n")
	builder.WriteString(strings.Repeat("-", summaryDividerWidth))
	builder.WriteString("\n")

	builder.WriteString("  Files checked:     " +
		s.SummaryValue.Render(strconv.Itoa(totals.Files)) + "\n")

	if totals.FilesWithIssues > 0 {
		builder.WriteString("  Files with issues: " +
			s.Failure.Render(strconv.Itoa(totals.FilesWithIssues)) + "\n")
	}
	if totals.FilesSkipped > 0 {
		builder.WriteString("  Files skipped:     " +
			s.SummaryValue.Render(strconv.Itoa(totals.FilesSkipped)) + "\n")
	}
	if totals.FilesFixed > 0 {
		builder.WriteString("  Files modified:    " +
			s.Success.Render(strconv.Itoa(totals.FilesFixed)) + "\n")
	}

	builder.WriteString("\n")

	builder.WriteString("  Total issues:      " +
		s.SummaryValue.Render(strconv.Itoa(totals.Issues)) + "\n")

	if totals.Errors > 0 {
		builder.WriteString("    Errors:          " +
			s.Error.Render(strconv.Itoa(totals.Errors)) + "\n")
	}
	if totals.FatalErrors > 0 {
		builder.WriteString("    Fatal:           " +
			s.Error.Render(strconv.Itoa(totals.FatalErrors)) + "\n")
	}
	if totals.Warnings > 0 {
		builder.WriteString("    Warnings:        " +
			s.Warning.Render(strconv.Itoa(totals.Warnings)) + "\n")
	}

	builder.WriteString("\n")

	switch {
	case totals.Errors > 0:
		builder.WriteString(s.Failure.Render("Lint failed with errors"))
	case totals.Warnings > 0:
		builder.WriteString(s.Warning.Render("Lint completed with warnings"))
	default:
		builder.WriteString(s.Success.Render("Lint passed"))
	}
	builder.WriteString("\n")

	return builder.String()
}
