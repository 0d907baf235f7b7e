package reporter

import (
	"io"
	"os"
)

// bufWriterSize is the buffer size for buffered output writers (64 KiB).
const bufWriterSize = 64 * 1024

// SummaryOrder controls which table leads in summary output.
type SummaryOrder string

const (
	// SummaryOrderRules shows the per-rule table first.
	SummaryOrderRules SummaryOrder = "rules"

	// SummaryOrderFiles shows the per-file table first.
	SummaryOrderFiles SummaryOrder = "files"
)

// Options configures reporter behavior.
type Options struct {
	// Writer is the destination for output (typically os.Stdout).
	Writer io.Writer

	// Format specifies the output format.
	Format Format

	// Color controls colorized output.
	// Values: "auto" (default), "always", "never"
	Color string

	// ShowContext includes source line context in diagnostics.
	ShowContext bool

	// ShowSummary displays aggregate statistics after results.
	ShowSummary bool

	// Compact uses minified output where applicable (JSON).
	Compact bool

	// SummaryOrder controls the order of tables in summary output.
	SummaryOrder SummaryOrder

	// WorkingDir is the directory to make paths relative to.
	// If empty, paths are kept as-is (typically absolute).
	WorkingDir string
}

// DefaultOptions returns Options with sensible defaults.
func DefaultOptions() Options {
	return Options{
		Writer:       os.Stdout,
		Format:       FormatText,
		Color:        "auto",
		ShowContext:  true,
		ShowSummary:  true,
		SummaryOrder: SummaryOrderRules,
	}
}
