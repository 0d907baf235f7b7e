// Package reporter formats lint run results for terminals and machines.
// Every format renders the same pre-computed analysis.Report.
package reporter

import (
	"context"
	"fmt"

	"github.com/yaklabco/goaglint/pkg/analysis"
	"github.com/yaklabco/goaglint/pkg/runner"
)

// Compile-time interface check.
var _ Reporter = (*reporterFacade)(nil)

// Reporter formats and writes lint results.
type Reporter interface {
	// Report writes formatted output for the given result.
	// It returns the number of issues reported and any write errors.
	Report(ctx context.Context, result *runner.Result) (int, error)
}

// reporterFacade bridges the Reporter interface to Renderer implementations:
// it analyzes the raw result once and hands the report to the renderer.
type reporterFacade struct {
	renderer     Renderer
	analysisOpts analysis.Options
}

// Report implements Reporter.
func (f *reporterFacade) Report(ctx context.Context, result *runner.Result) (int, error) {
	report := analysis.Analyze(result, f.analysisOpts)
	if err := f.renderer.Render(ctx, report); err != nil {
		return 0, fmt.Errorf("render: %w", err)
	}
	return report.Totals.Issues, nil
}

// New creates a Reporter for the specified options.
func New(opts Options) (Reporter, error) {
	if opts.Writer == nil {
		opts.Writer = DefaultOptions().Writer
	}

	format := opts.Format
	if format == "" {
		format = FormatText
	}
	if !format.IsValid() {
		return nil, fmt.Errorf("unsupported format: %s", format)
	}

	var renderer Renderer
	switch format {
	case FormatJSON:
		renderer = NewJSONRenderer(opts)
	case FormatSummary:
		renderer = NewSummaryRenderer(opts)
	default:
		renderer = NewTextRenderer(opts)
	}

	return &reporterFacade{
		renderer: renderer,
		analysisOpts: analysis.Options{
			IncludeDiagnostics: true,
			IncludeByFile:      true,
			IncludeByRule:      true,
			SortBy:             analysis.SortByCount,
			SortDesc:           true,
			WorkingDir:         opts.WorkingDir,
		},
	}, nil
}
