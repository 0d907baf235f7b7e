package lint

import (
	"strings"

	"github.com/yaklabco/goaglint/pkg/fltast"
)

// DirectiveKind classifies an inline configuration comment.
type DirectiveKind int

const (
	// DirectiveDisableFile suppresses rules from its line to the next
	// matching enable directive, or end of file.
	DirectiveDisableFile DirectiveKind = iota

	// DirectiveEnableFile ends an earlier file-scoped disable.
	DirectiveEnableFile

	// DirectiveDisableLine suppresses rules on the directive's own line.
	DirectiveDisableLine

	// DirectiveDisableNextLine suppresses rules on the following line.
	DirectiveDisableNextLine
)

// Directive is one recognized inline configuration comment. Directives are
// created during the walk and consumed by the post-processor; Used tracks
// whether the directive suppressed at least one diagnostic.
type Directive struct {
	Kind DirectiveKind

	// Rules lists the targeted rule IDs; empty means all rules.
	Rules []string

	// Line is the 1-based line of the directive comment.
	Line int

	// Position locates the directive for unused-directive reporting.
	Position fltast.SourcePosition

	// Used is set by the post-processor when the directive matches a
	// diagnostic.
	Used bool
}

// Matches reports whether the directive targets the given rule ID.
// Fatal diagnostics have no rule ID and are never suppressed.
func (d *Directive) Matches(ruleID string) bool {
	if ruleID == "" {
		return false
	}
	if len(d.Rules) == 0 {
		return true
	}
	for _, id := range d.Rules {
		if id == ruleID {
			return true
		}
	}
	return false
}

// IsDisable reports whether the directive is one of the disable kinds.
// Only disable directives participate in unused-directive reporting.
func (d *Directive) IsDisable() bool {
	return d.Kind != DirectiveEnableFile
}

// directivePrefixes maps comment-text prefixes to directive kinds, checked
// longest first so "aglint-disable-next-line" never parses as
// "aglint-disable".
var directivePrefixes = []struct {
	prefix string
	kind   DirectiveKind
}{
	{"aglint-disable-next-line", DirectiveDisableNextLine},
	{"aglint-disable-line", DirectiveDisableLine},
	{"aglint-disable", DirectiveDisableFile},
	{"aglint-enable", DirectiveEnableFile},
}

// DirectiveCollector is the privileged visitor that recognizes inline
// configuration comments during the walk. It emits no diagnostics; its
// output is the directive list consumed in post-processing.
type DirectiveCollector struct {
	file       *fltast.FileSnapshot
	directives []Directive
}

// NewDirectiveCollector creates a collector for one file run.
func NewDirectiveCollector(file *fltast.FileSnapshot) *DirectiveCollector {
	return &DirectiveCollector{file: file}
}

// Directives returns the collected directives in source order.
func (dc *DirectiveCollector) Directives() []Directive {
	return dc.directives
}

// Visit inspects one comment node for a directive. Registered by the
// engine under the "Comment" selector when inline config is enabled.
func (dc *DirectiveCollector) Visit(ref NodeRef) error {
	node, ok := ref.Node.(*fltast.Node)
	if !ok || node.Comment == nil {
		return nil
	}

	directive, ok := parseDirective(node.Comment.Text)
	if !ok {
		return nil
	}

	line, _ := dc.file.LineAt(node.StartOffset)
	directive.Line = line
	directive.Position = node.SourcePosition()
	dc.directives = append(dc.directives, directive)
	return nil
}

// parseDirective recognizes "aglint-<kind> [rule, rule...]" comment bodies.
func parseDirective(text string) (Directive, bool) {
	text = strings.TrimSpace(text)

	for _, candidate := range directivePrefixes {
		if !strings.HasPrefix(text, candidate.prefix) {
			continue
		}

		rest := text[len(candidate.prefix):]
		if rest != "" && rest[0] != ' ' && rest[0] != '\t' {
			// Something like "aglint-disabled": not a directive.
			continue
		}

		return Directive{
			Kind:  candidate.kind,
			Rules: splitRuleList(rest),
		}, true
	}

	return Directive{}, false
}

// splitRuleList parses the optional comma-separated rule list after a
// directive keyword. Returns nil for an empty list (meaning all rules).
func splitRuleList(text string) []string {
	var rules []string
	for _, part := range strings.Split(text, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			rules = append(rules, part)
		}
	}
	return rules
}
