package lint

import (
	"bytes"
	"context"
	"slices"

	"github.com/yaklabco/goaglint/pkg/config"
	"github.com/yaklabco/goaglint/pkg/fix"
)

// DefaultMaxFixRounds bounds the lint-then-fix loop when the caller does
// not set a limit.
const DefaultMaxFixRounds = 10

// FixOptions controls which fixes the loop applies and how long it runs.
type FixOptions struct {
	// MaxRounds bounds the number of lint-then-apply iterations.
	// Zero means DefaultMaxFixRounds.
	MaxRounds int

	// Categories restricts fixes to rules of these categories when
	// non-empty.
	Categories []string

	// RuleIDs restricts fixes to these rules when non-empty.
	RuleIDs []string
}

// FixOutcome is the result of LintWithFixes.
type FixOutcome struct {
	// Result is the lint result against the settled text, so diagnostic
	// positions are consistent with FixedText.
	Result *Result

	// FixedText is the final text after all applied rounds. Equals the
	// input when nothing was fixed.
	FixedText []byte

	// AppliedFixCount is the total number of edits spliced across all
	// rounds.
	AppliedFixCount int

	// RemainingFixCount is the number of applicable fixes still reported
	// against the settled text.
	RemainingFixCount int

	// RoundsPerformed is the number of rounds that modified the text.
	RoundsPerformed int

	// RoundLimitHit is set when fixes remained after MaxRounds; callers
	// can warn about unresolved conflicts without failing.
	RoundLimitHit bool
}

// Changed returns true if the text was modified.
func (o *FixOutcome) Changed() bool {
	return o.AppliedFixCount > 0
}

// LintWithFixes runs the lint pipeline repeatedly, applying the maximal
// non-conflicting subset of proposed fixes each round against the current
// text. Every round re-lints from scratch so fixes are always computed
// against authoritative content; stale edits from earlier rounds are never
// re-mapped. The loop stops when a round proposes no fixes or MaxRounds is
// reached. The re-lint that ends the loop doubles as the verification pass,
// so the returned Result always describes FixedText.
func (e *Engine) LintWithFixes(
	ctx context.Context,
	path string,
	content []byte,
	cfg *config.Config,
	opts FixOptions,
) (*FixOutcome, error) {
	maxRounds := opts.MaxRounds
	if maxRounds <= 0 {
		maxRounds = DefaultMaxFixRounds
	}

	current := content
	result, err := e.Lint(ctx, path, current, cfg)
	if err != nil {
		return nil, err
	}

	outcome := &FixOutcome{}

	for {
		edits := collectFixes(result.Diagnostics, opts)
		if len(edits) == 0 {
			break
		}
		if outcome.RoundsPerformed >= maxRounds {
			outcome.RoundLimitHit = true
			break
		}

		applied, err := fix.Apply(current, edits)
		if err != nil {
			return nil, err
		}
		if bytes.Equal(applied.Output, current) {
			// No progress; re-linting would loop forever.
			break
		}

		current = applied.Output
		outcome.RoundsPerformed++
		outcome.AppliedFixCount += len(applied.Applied)

		result, err = e.Lint(ctx, path, current, cfg)
		if err != nil {
			return nil, err
		}
	}

	outcome.Result = result
	outcome.FixedText = current
	outcome.RemainingFixCount = len(collectFixes(result.Diagnostics, opts))
	return outcome, nil
}

// collectFixes gathers the edits of all fixable diagnostics that pass the
// category and rule-id filters. No-op edits are skipped.
func collectFixes(diags []Diagnostic, opts FixOptions) []fix.TextEdit {
	var edits []fix.TextEdit
	for i := range diags {
		d := &diags[i]
		if d.Fix == nil || d.Fix.IsNoop() || d.Fatal {
			continue
		}
		if len(opts.RuleIDs) > 0 && !slices.Contains(opts.RuleIDs, d.RuleID) {
			continue
		}
		if len(opts.Categories) > 0 && !slices.Contains(opts.Categories, string(d.Category)) {
			continue
		}
		edits = append(edits, *d.Fix)
	}
	return edits
}
