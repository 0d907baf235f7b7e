package analysis

import (
	"cmp"
	"path/filepath"
	"slices"
	"time"

	"github.com/yaklabco/goaglint/pkg/config"
	"github.com/yaklabco/goaglint/pkg/lint"
	"github.com/yaklabco/goaglint/pkg/runner"
)

// Analyze transforms a runner.Result into a Report. It performs a single
// pass through the diagnostics to compute all requested views.
func Analyze(result *runner.Result, opts Options) *Report {
	report := &Report{
		Version:   ReportVersion,
		Timestamp: time.Now(),
	}

	if result == nil {
		return report
	}

	acc := newAccumulator()

	report.Totals.FilesFixed = result.Stats.FilesModified
	report.Totals.Fixed = result.Stats.DiagnosticsFixed

	for _, file := range result.Files {
		report.Totals.Files++

		if file.Error != nil {
			report.Totals.FilesErrored++
			report.FileErrors = append(report.FileErrors, FileError{
				Path:    displayPath(file.Path, opts.WorkingDir),
				Message: file.Error.Error(),
			})
			continue
		}
		if file.Skipped {
			report.Totals.FilesSkipped++
			report.SkippedFiles = append(report.SkippedFiles, SkippedFile{
				Path:   displayPath(file.Path, opts.WorkingDir),
				Reason: file.SkipReason,
			})
			continue
		}
		if file.Result == nil {
			continue
		}
		if len(file.Result.Diagnostics) > 0 {
			report.Totals.FilesWithIssues++
		}

		path := displayPath(file.Path, opts.WorkingDir)
		fa := acc.file(path)

		for i := range file.Result.Diagnostics {
			diag := &file.Result.Diagnostics[i]
			report.Totals.Issues++

			severity := string(diag.Severity)
			switch diag.Severity {
			case config.SeverityError:
				report.Totals.Errors++
				fa.Errors++
				if diag.Fatal {
					report.Totals.FatalErrors++
				}
			case config.SeverityWarn:
				report.Totals.Warnings++
				fa.Warnings++
			}
			if diag.HasFix() {
				report.Totals.Fixable++
			}

			fa.Issues++
			if diag.RuleID != "" {
				acc.fileRules[path][diag.RuleID] = true

				ra := acc.rule(diag.RuleID)
				ra.Issues++
				switch diag.Severity {
				case config.SeverityError:
					ra.Errors++
				case config.SeverityWarn:
					ra.Warnings++
				}
				if diag.HasFix() {
					ra.Fixable = true
				}
				acc.ruleFiles[diag.RuleID][path] = true
			}

			if opts.IncludeDiagnostics {
				entry := newDiagnosticEntry(path, severity, diag)
				if file.Result.Snapshot != nil {
					entry.SourceLine = string(file.Result.Snapshot.LineContent(diag.StartLine))
				}
				report.Diagnostics = append(report.Diagnostics, entry)
			}
		}
	}

	if opts.IncludeByRule {
		report.ByRule = acc.byRule(opts)
	}
	if opts.IncludeByFile {
		report.ByFile = acc.byFile(opts)
	}

	return report
}

// displayPath converts an absolute path to a relative path from workDir.
// If workDir is empty or conversion fails, the original path is kept.
func displayPath(absPath, workDir string) string {
	if workDir == "" {
		return absPath
	}
	relPath, err := filepath.Rel(workDir, absPath)
	if err != nil {
		return absPath
	}
	return relPath
}

// accumulator holds per-file and per-rule state during the single pass.
type accumulator struct {
	ruleMap   map[string]*RuleAnalysis
	fileMap   map[string]*FileAnalysis
	ruleFiles map[string]map[string]bool
	fileRules map[string]map[string]bool
}

func newAccumulator() *accumulator {
	return &accumulator{
		ruleMap:   make(map[string]*RuleAnalysis),
		fileMap:   make(map[string]*FileAnalysis),
		ruleFiles: make(map[string]map[string]bool),
		fileRules: make(map[string]map[string]bool),
	}
}

func (a *accumulator) file(path string) *FileAnalysis {
	if _, ok := a.fileMap[path]; !ok {
		a.fileMap[path] = &FileAnalysis{Path: path}
		a.fileRules[path] = make(map[string]bool)
	}
	return a.fileMap[path]
}

func (a *accumulator) rule(ruleID string) *RuleAnalysis {
	if _, ok := a.ruleMap[ruleID]; !ok {
		a.ruleMap[ruleID] = &RuleAnalysis{RuleID: ruleID}
		a.ruleFiles[ruleID] = make(map[string]bool)
	}
	return a.ruleMap[ruleID]
}

func (a *accumulator) byRule(opts Options) []RuleAnalysis {
	result := make([]RuleAnalysis, 0, len(a.ruleMap))
	for ruleID, ra := range a.ruleMap {
		for f := range a.ruleFiles[ruleID] {
			ra.Files = append(ra.Files, f)
		}
		slices.Sort(ra.Files)
		result = append(result, *ra)
	}
	sortAnalyses(result, opts,
		func(ra RuleAnalysis) string { return ra.RuleID },
		func(ra RuleAnalysis) (int, int, int) { return ra.Errors, ra.Warnings, ra.Issues })
	return result
}

func (a *accumulator) byFile(opts Options) []FileAnalysis {
	var result []FileAnalysis
	for path, fa := range a.fileMap {
		if fa.Issues == 0 {
			continue
		}
		for r := range a.fileRules[path] {
			fa.Rules = append(fa.Rules, r)
		}
		slices.Sort(fa.Rules)
		result = append(result, *fa)
	}
	sortAnalyses(result, opts,
		func(fa FileAnalysis) string { return fa.Path },
		func(fa FileAnalysis) (int, int, int) { return fa.Errors, fa.Warnings, fa.Issues })
	return result
}

// sortAnalyses orders rule or file analyses by the configured sort field.
// Alphabetical sorting is always ascending; severity sorting is always
// errors-first descending.
func sortAnalyses[T any](items []T, opts Options, key func(T) string, counts func(T) (int, int, int)) {
	slices.SortFunc(items, func(left, right T) int {
		switch opts.SortBy {
		case SortByAlpha:
			return cmp.Compare(key(left), key(right))
		case SortBySeverity:
			le, lw, li := counts(left)
			re, rw, ri := counts(right)
			if result := cmp.Compare(re, le); result != 0 {
				return result
			}
			if result := cmp.Compare(rw, lw); result != 0 {
				return result
			}
			if result := cmp.Compare(ri, li); result != 0 {
				return result
			}
			return cmp.Compare(key(left), key(right))
		default: // SortByCount
			_, _, li := counts(left)
			_, _, ri := counts(right)
			result := cmp.Compare(li, ri)
			if opts.SortDesc {
				result = -result
			}
			if result == 0 {
				result = cmp.Compare(key(left), key(right))
			}
			return result
		}
	})
}

// newDiagnosticEntry builds a report entry from a lint diagnostic.
func newDiagnosticEntry(path, severity string, diag *lint.Diagnostic) DiagnosticEntry {
	entry := DiagnosticEntry{
		FilePath:    path,
		RuleID:      diag.RuleID,
		Severity:    severity,
		Category:    string(diag.Category),
		Message:     diag.Message,
		StartLine:   diag.StartLine,
		StartColumn: diag.StartColumn,
		EndLine:     diag.EndLine,
		EndColumn:   diag.EndColumn,
		Fatal:       diag.Fatal,
		Fixable:     diag.HasFix(),
	}
	if diag.Fix != nil {
		entry.Fix = &FixEntry{
			StartOffset: diag.Fix.StartOffset,
			EndOffset:   diag.Fix.EndOffset,
			NewText:     diag.Fix.NewText,
		}
	}
	for _, s := range diag.Suggestions {
		se := SuggestionEntry{Message: s.Message}
		if s.Fix != nil {
			se.Fix = &FixEntry{
				StartOffset: s.Fix.StartOffset,
				EndOffset:   s.Fix.EndOffset,
				NewText:     s.Fix.NewText,
			}
		}
		entry.Suggestions = append(entry.Suggestions, se)
	}
	return entry
}
