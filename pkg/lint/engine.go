package lint

import (
	"context"
	"fmt"

	"github.com/yaklabco/goaglint/pkg/config"
	"github.com/yaklabco/goaglint/pkg/fltast"
)

// Result contains the outcome of linting a single file.
type Result struct {
	// Snapshot is the parsed file. Nil when the primary parse failed.
	Snapshot *fltast.FileSnapshot

	// Diagnostics contains all surviving issues in deterministic order.
	Diagnostics []Diagnostic

	// Counts tallies the diagnostics by severity.
	Counts Counts
}

// HasIssues returns true if any diagnostics were found.
func (r *Result) HasIssues() bool {
	return len(r.Diagnostics) > 0
}

// Fatal returns true if the result contains a fatal parse diagnostic.
func (r *Result) Fatal() bool {
	return r.Counts.FatalErrors > 0
}

// FixableCount returns the number of diagnostics carrying fixes.
func (r *Result) FixableCount() int {
	count := 0
	for i := range r.Diagnostics {
		if r.Diagnostics[i].HasFix() {
			count++
		}
	}
	return count
}

// Engine coordinates parsing, rule execution, and post-processing.
type Engine struct {
	// Parser parses filter-list files into FileSnapshots.
	Parser Parser

	// Loader resolves configured rule names to implementations.
	Loader Loader

	// HostAdapter adapts the primary tree for traversal.
	HostAdapter Adapter

	embedded []embeddingPoint
}

// NewEngine creates an Engine with the given parser and rule loader, using
// the filter-list tree adapter for the primary tree.
func NewEngine(parser Parser, loader Loader) *Engine {
	return &Engine{
		Parser:      parser,
		Loader:      loader,
		HostAdapter: fltast.TreeAdapter{},
	}
}

// RegisterEmbedded adds an embedded-language parser invoked at every node
// matching the selector expression. Registration happens at construction
// time, before any file is linted.
func (e *Engine) RegisterEmbedded(expr string, parser EmbeddedParser) error {
	sel, err := CompileSelector(expr)
	if err != nil {
		return fmt.Errorf("register embedded parser %q: %w", parser.ID(), err)
	}
	e.embedded = append(e.embedded, embeddingPoint{selector: sel, parser: parser})
	return nil
}

// Lint parses and lints one file.
//
// A primary parse failure is not an error: it yields a Result with a single
// fatal diagnostic and no rule execution. Returned errors indicate broken
// configuration or rules (unknown rule name, invalid options, capability
// violations), never problems with the linted file.
func (e *Engine) Lint(
	ctx context.Context,
	path string,
	content []byte,
	cfg *config.Config,
) (*Result, error) {
	snapshot, err := e.Parser.Parse(ctx, path, content)
	if err != nil {
		return fatalResult(path, err), nil
	}

	instances, err := LoadRules(e.Loader, cfg)
	if err != nil {
		return nil, err
	}

	reporter := NewReporter(snapshot)
	visitors := NewVisitorSet()

	// The directive collector registers first so directives are gathered
	// regardless of rule order. It never emits diagnostics itself.
	var collector *DirectiveCollector
	if cfg != nil && cfg.AllowInlineConfig {
		collector = NewDirectiveCollector(snapshot)
		if err := visitors.Register("Comment", collector.Visit); err != nil {
			return nil, err
		}
	}

	for _, inst := range instances {
		inst.bind(reporter, snapshot)
		if err := visitors.RegisterAll(inst, inst.Rule.Visitors(inst)); err != nil {
			return nil, err
		}
	}

	walker := NewWalker(snapshot, e.HostAdapter, e.embedded, visitors, reporter)
	if err := walker.Walk(); err != nil {
		return nil, err
	}

	var directives []Directive
	if collector != nil {
		directives = collector.Directives()
	}

	reportUnused := false
	unusedSeverity := config.SeverityWarn
	if cfg != nil {
		reportUnused = cfg.ReportUnusedDisableDirectives
		if cfg.UnusedDirectiveSeverity.IsValid() {
			unusedSeverity = cfg.UnusedDirectiveSeverity
		}
	}

	diags, counts := ApplyDirectives(
		reporter.Diagnostics(), directives, path, reportUnused, unusedSeverity)

	return &Result{
		Snapshot:    snapshot,
		Diagnostics: diags,
		Counts:      counts,
	}, nil
}

// fatalResult wraps a primary parse failure as a normal lint result with
// one fatal diagnostic at the best-known position.
func fatalResult(path string, parseErr error) *Result {
	diag := Diagnostic{
		Severity:    config.SeverityError,
		Message:     fmt.Sprintf("cannot parse file: %v", parseErr),
		FilePath:    path,
		StartLine:   1,
		StartColumn: 1,
		EndLine:     1,
		EndColumn:   1,
		Fatal:       true,
	}

	return &Result{
		Diagnostics: []Diagnostic{diag},
		Counts:      Counts{Errors: 1, FatalErrors: 1},
	}
}
