package reporter

import (
	"bufio"
	"context"
	"fmt"

	"github.com/yaklabco/goaglint/internal/ui/pretty"
	"github.com/yaklabco/goaglint/pkg/analysis"
)

// TextRenderer formats reports as styled terminal output.
type TextRenderer struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

// NewTextRenderer creates a new text renderer.
func NewTextRenderer(opts Options) *TextRenderer {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &TextRenderer{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Render implements Renderer.
func (r *TextRenderer) Render(_ context.Context, report *analysis.Report) (err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if report == nil || report.Totals.Files == 0 {
		if r.opts.ShowSummary {
			fmt.Fprintln(r.bw, r.styles.Success.Render("No files to check."))
		}
		return nil
	}

	for _, fileErr := range report.FileErrors {
		fmt.Fprintf(r.bw, "%s: %s\n",
			r.styles.FilePath.Render(fileErr.Path),
			r.styles.Error.Render(fmt.Sprintf("error: %s", fileErr.Message)),
		)
	}

	r.renderDiagnostics(report)

	if r.opts.ShowSummary {
		fmt.Fprint(r.bw, r.styles.FormatSummaryOneLine(report.Totals))
	}

	return nil
}

// renderDiagnostics writes diagnostics grouped by file. Entries arrive
// already ordered file by file, so a single pass with a header on each
// path change is enough.
func (r *TextRenderer) renderDiagnostics(report *analysis.Report) {
	counts := make(map[string]int, len(report.ByFile))
	for _, entry := range report.Diagnostics {
		counts[entry.FilePath]++
	}

	currentPath := ""
	for i := range report.Diagnostics {
		entry := &report.Diagnostics[i]

		if entry.FilePath != currentPath {
			if currentPath != "" {
				fmt.Fprintln(r.bw)
			}
			currentPath = entry.FilePath
			fmt.Fprintln(r.bw, r.styles.FormatFileHeader(currentPath, counts[currentPath]))
		}

		fmt.Fprint(r.bw, r.styles.FormatDiagnostic(entry, r.opts.ShowContext))
	}

	if currentPath != "" {
		fmt.Fprintln(r.bw)
	}
}
