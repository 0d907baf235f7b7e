package lint

import (
	"fmt"
	"strings"

	"github.com/yaklabco/goaglint/pkg/config"
	"github.com/yaklabco/goaglint/pkg/fix"
	"github.com/yaklabco/goaglint/pkg/fltast"
)

// FixGenerator computes a fix against the current source text. Returning
// nil means there is nothing to change; the fix is silently dropped.
type FixGenerator func(content []byte) *fix.TextEdit

// SuggestionInput is one suggestion attached to a report.
type SuggestionInput struct {
	// MessageID selects the suggestion message template.
	MessageID string

	// Data fills the template placeholders.
	Data map[string]string

	// Fix computes the suggestion's edit.
	Fix FixGenerator
}

// Report is a rule's description of one issue, handed to the Reporter.
type Report struct {
	// Node positions the diagnostic via its owning adapter's offsets.
	// Either Node or Position must be set.
	Node *NodeRef

	// Position overrides node-derived positioning when set.
	Position *fltast.SourcePosition

	// MessageID selects a template from the rule's message table.
	MessageID string

	// Data fills the template placeholders.
	Data map[string]string

	// Fix computes the diagnostic's fix. Requires Descriptor.CanFix.
	Fix FixGenerator

	// Suggestions each compute their own edit. Requires CanSuggest.
	Suggestions []SuggestionInput
}

// Reporter is the single choke point through which diagnostics enter a run.
// It validates reports against rule capabilities, resolves positions, and
// renders messages. Capability violations and unresolvable positions are
// programming errors and fail the run.
type Reporter struct {
	file        *fltast.FileSnapshot
	diagnostics []Diagnostic
}

// NewReporter creates a reporter for one file run.
func NewReporter(file *fltast.FileSnapshot) *Reporter {
	return &Reporter{file: file}
}

// Diagnostics returns all accumulated diagnostics in emission order.
func (r *Reporter) Diagnostics() []Diagnostic {
	return r.diagnostics
}

// Report validates and records one diagnostic from a rule instance.
func (r *Reporter) Report(inst *Instance, rep Report) error {
	desc := inst.Descriptor

	// Severity may have been toggled off between load and traversal.
	if inst.Severity == config.SeverityOff {
		return nil
	}

	pos, err := r.resolvePosition(desc.ID, rep)
	if err != nil {
		return err
	}

	message, err := renderMessage(desc, rep.MessageID, rep.Data)
	if err != nil {
		return err
	}

	diag := Diagnostic{
		RuleID:      desc.ID,
		Severity:    inst.Severity,
		Category:    desc.Category,
		Message:     message,
		FilePath:    r.file.Path,
		StartLine:   pos.StartLine,
		StartColumn: pos.StartColumn,
		EndLine:     pos.EndLine,
		EndColumn:   pos.EndColumn,
	}

	if rep.Fix != nil {
		if !desc.CanFix {
			return fmt.Errorf("rule %q reported a fix but does not declare fix capability", desc.ID)
		}
		diag.Fix = rep.Fix(r.file.Content)
	}

	for _, sug := range rep.Suggestions {
		if !desc.CanSuggest {
			return fmt.Errorf("rule %q reported a suggestion but does not declare suggest capability", desc.ID)
		}
		sugMessage, err := renderMessage(desc, sug.MessageID, sug.Data)
		if err != nil {
			return err
		}
		var edit *fix.TextEdit
		if sug.Fix != nil {
			edit = sug.Fix(r.file.Content)
		}
		diag.Suggestions = append(diag.Suggestions, Suggestion{
			Message: sugMessage,
			Fix:     edit,
		})
	}

	r.diagnostics = append(r.diagnostics, diag)
	return nil
}

// reportFatal records a fatal diagnostic for the byte range [start, end).
// Used for parse failures; fatal diagnostics carry no rule id.
func (r *Reporter) reportFatal(start, end int, message string) {
	startLine, startCol := r.file.LineAt(start)
	endLine, endCol := r.file.LineAt(end)
	if startLine == 0 {
		startLine, startCol = 1, 1
	}
	if endLine == 0 {
		endLine, endCol = startLine, startCol
	}

	r.diagnostics = append(r.diagnostics, Diagnostic{
		Severity:    config.SeverityError,
		Message:     message,
		FilePath:    r.file.Path,
		StartLine:   startLine,
		StartColumn: startCol,
		EndLine:     endLine,
		EndColumn:   endCol,
		Fatal:       true,
	})
}

// resolvePosition prefers an explicit position, then falls back to the
// reported node's byte range via its owning adapter.
func (r *Reporter) resolvePosition(ruleID string, rep Report) (fltast.SourcePosition, error) {
	if rep.Position != nil {
		return *rep.Position, nil
	}

	if rep.Node == nil {
		return fltast.SourcePosition{}, fmt.Errorf("rule %q reported without a position or node", ruleID)
	}

	rng := rep.Node.Range()
	startLine, startCol := r.file.LineAt(rng.StartOffset)
	endLine, endCol := r.file.LineAt(rng.EndOffset)
	if startLine == 0 || endLine == 0 {
		return fltast.SourcePosition{}, fmt.Errorf(
			"rule %q reported node with range [%d:%d) outside content", ruleID, rng.StartOffset, rng.EndOffset)
	}

	return fltast.SourcePosition{
		StartLine:   startLine,
		StartColumn: startCol,
		EndLine:     endLine,
		EndColumn:   endCol,
	}, nil
}

// renderMessage expands {{placeholder}} markers in the rule's template for
// the given message id.
func renderMessage(desc *Descriptor, messageID string, data map[string]string) (string, error) {
	template, ok := desc.Messages[messageID]
	if !ok {
		return "", fmt.Errorf("rule %q has no message %q", desc.ID, messageID)
	}

	message := template
	for key, value := range data {
		message = strings.ReplaceAll(message, "{{"+key+"}}", value)
	}
	return message, nil
}
