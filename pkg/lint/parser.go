// Package lint provides the rule engine, diagnostics, and registry for goaglint.
package lint

import (
	"context"

	"github.com/yaklabco/goaglint/pkg/fltast"
)

// Parser parses filter-list files into FileSnapshots.
type Parser interface {
	// Parse converts raw bytes into a FileSnapshot with a populated AST.
	//
	// Implementations must guarantee:
	//   - The returned snapshot has Path, Content, Lines, and Root set.
	//   - Root is non-nil on success.
	//   - Byte offsets in the AST refer to positions in Content.
	//
	// A returned error means the content could not be parsed at all
	// (e.g., binary input); the engine converts it into a fatal
	// diagnostic rather than failing the run.
	Parse(ctx context.Context, path string, content []byte) (*fltast.FileSnapshot, error)
}
