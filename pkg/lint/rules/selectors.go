package rules

import (
	"strconv"
	"strings"

	"github.com/yaklabco/goaglint/pkg/config"
	"github.com/yaklabco/goaglint/pkg/fix"
	"github.com/yaklabco/goaglint/pkg/lint"
	"github.com/yaklabco/goaglint/pkg/parser/cssel"
)

// SingleSelectorRule flags cosmetic rules whose selector part is a
// comma-separated list. One selector per rule keeps lists diffable and
// lets blockers disable entries individually.
type SingleSelectorRule struct {
	desc *lint.Descriptor
}

// NewSingleSelectorRule creates a new single-selector rule.
func NewSingleSelectorRule() *SingleSelectorRule {
	return &SingleSelectorRule{
		desc: &lint.Descriptor{
			ID:          "single-selector",
			Description: "Cosmetic rules should target one selector per line",
			Category:    lint.CategorySuggestion,
			CanSuggest:  true,
			Messages: map[string]string{
				"multiple": "cosmetic rule lists {{count}} selectors, expected one",
				"split":    "Split into one rule per selector",
			},
			DefaultSeverity: config.SeverityWarn,
		},
	}
}

// Descriptor returns the rule metadata.
func (r *SingleSelectorRule) Descriptor() *lint.Descriptor { return r.desc }

// Visitors registers on the embedded selector tree's root.
func (r *SingleSelectorRule) Visitors(inst *lint.Instance) lint.Visitors {
	return lint.Visitors{
		"SelectorList": func(ref lint.NodeRef) error {
			list, ok := ref.Node.(*cssel.Node)
			if !ok {
				return nil
			}
			if list.ChildCount() <= 1 {
				return nil
			}
			return r.reportList(inst, ref, list)
		},
	}
}

func (r *SingleSelectorRule) reportList(inst *lint.Instance, ref lint.NodeRef, list *cssel.Node) error {
	return inst.Report(lint.Report{
		Node:      &ref,
		MessageID: "multiple",
		Data:      map[string]string{"count": strconv.Itoa(list.ChildCount())},
		Suggestions: []lint.SuggestionInput{{
			MessageID: "split",
			Fix: func(content []byte) *fix.TextEdit {
				return splitSelectorList(content, inst, list)
			},
		}},
	})
}

// splitSelectorList rewrites "example.com##.a, .b" into one line per
// selector, repeating the domain-and-separator prefix.
func splitSelectorList(content []byte, inst *lint.Instance, list *cssel.Node) *fix.TextEdit {
	file := inst.File()

	line, _ := file.LineAt(list.StartOffset)
	if line < 1 || line > file.LineCount() {
		return nil
	}
	info := file.Lines[line-1]

	// Everything before the selector body, i.e. domains plus separator.
	prefix := string(content[info.StartOffset:list.StartOffset])

	replacements := make([]string, 0, list.ChildCount())
	for sel := list.FirstChild; sel != nil; sel = sel.Next {
		replacements = append(replacements, prefix+strings.TrimSpace(sel.Value))
	}

	edit := fix.Replace(info.StartOffset, info.NewlineStart, strings.Join(replacements, "\n"))
	return &edit
}
