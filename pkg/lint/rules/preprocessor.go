package rules

import (
	"strings"

	"github.com/yaklabco/goaglint/pkg/config"
	"github.com/yaklabco/goaglint/pkg/fix"
	"github.com/yaklabco/goaglint/pkg/fltast"
	"github.com/yaklabco/goaglint/pkg/lint"
)

// IfClosedRule checks that every "!#if" directive has a matching "!#endif".
type IfClosedRule struct {
	desc *lint.Descriptor
}

// NewIfClosedRule creates a new if-closed rule.
func NewIfClosedRule() *IfClosedRule {
	return &IfClosedRule{
		desc: &lint.Descriptor{
			ID:          "if-closed",
			Description: `Every "!#if" directive should be closed with "!#endif"`,
			Category:    lint.CategoryProblem,
			CanSuggest:  true,
			Messages: map[string]string{
				"unclosed":   `"!#if" directive is never closed with "!#endif"`,
				"unopened":   `"!#{{directive}}" directive has no matching "!#if"`,
				"appendEnd":  `Append "!#endif" at the end of the file`,
			},
			DefaultSeverity: config.SeverityError,
		},
	}
}

// Descriptor returns the rule metadata.
func (r *IfClosedRule) Descriptor() *lint.Descriptor { return r.desc }

// Visitors registers a root visitor; if/endif pairing needs the whole file
// in document order, so the rule scans the top-level nodes itself.
func (r *IfClosedRule) Visitors(inst *lint.Instance) lint.Visitors {
	return lint.Visitors{
		"FilterList": func(ref lint.NodeRef) error {
			root, ok := ref.Node.(*fltast.Node)
			if !ok {
				return nil
			}
			return r.checkPairs(inst, root)
		},
	}
}

func (r *IfClosedRule) checkPairs(inst *lint.Instance, root *fltast.Node) error {
	var open []*fltast.Node

	for node := root.FirstChild; node != nil; node = node.Next {
		if node.Kind != fltast.NodePreProcessor || node.PreProc == nil {
			continue
		}

		switch node.PreProc.Directive {
		case "if":
			open = append(open, node)
		case "else":
			if len(open) == 0 {
				if err := r.reportUnopened(inst, node); err != nil {
					return err
				}
			}
		case "endif":
			if len(open) == 0 {
				if err := r.reportUnopened(inst, node); err != nil {
					return err
				}
				continue
			}
			open = open[:len(open)-1]
		}
	}

	for _, node := range open {
		ref := lint.NodeRef{Adapter: fltast.TreeAdapter{}, Node: node}
		err := inst.Report(lint.Report{
			Node:      &ref,
			MessageID: "unclosed",
			Suggestions: []lint.SuggestionInput{{
				MessageID: "appendEnd",
				Fix: func(content []byte) *fix.TextEdit {
					insert := "!#endif\n"
					if len(content) > 0 && content[len(content)-1] != '\n' {
						insert = "\n" + insert
					}
					edit := fix.Insert(len(content), insert)
					return &edit
				},
			}},
		})
		if err != nil {
			return err
		}
	}

	return nil
}

func (r *IfClosedRule) reportUnopened(inst *lint.Instance, node *fltast.Node) error {
	ref := lint.NodeRef{Adapter: fltast.TreeAdapter{}, Node: node}
	return inst.Report(lint.Report{
		Node:      &ref,
		MessageID: "unopened",
		Data:      map[string]string{"directive": node.PreProc.Directive},
	})
}

// knownDirectives lists the preprocessor directives understood by the
// major blockers.
var knownDirectives = map[string]bool{
	"if":                 true,
	"else":               true,
	"endif":              true,
	"include":            true,
	"safari_cb_affinity": true,
	"platform":           true,
	"not_platform":       true,
}

// UnknownDirectivesRule flags preprocessor directives outside the known set.
type UnknownDirectivesRule struct {
	desc *lint.Descriptor
}

// NewUnknownDirectivesRule creates a new unknown-preprocessor-directives rule.
func NewUnknownDirectivesRule() *UnknownDirectivesRule {
	return &UnknownDirectivesRule{
		desc: &lint.Descriptor{
			ID:          "unknown-preprocessor-directives",
			Description: "Preprocessor directives should be ones the blockers understand",
			Category:    lint.CategoryProblem,
			Messages: map[string]string{
				"unknown": `unknown preprocessor directive "!#{{directive}}"`,
			},
			DefaultSeverity: config.SeverityError,
		},
	}
}

// Descriptor returns the rule metadata.
func (r *UnknownDirectivesRule) Descriptor() *lint.Descriptor { return r.desc }

// Visitors registers on every PreProcessor node.
func (r *UnknownDirectivesRule) Visitors(inst *lint.Instance) lint.Visitors {
	return lint.Visitors{
		"PreProcessor": func(ref lint.NodeRef) error {
			node, ok := ref.Node.(*fltast.Node)
			if !ok || node.PreProc == nil {
				return nil
			}

			name := strings.ToLower(node.PreProc.Directive)
			if knownDirectives[name] {
				return nil
			}

			return inst.Report(lint.Report{
				Node:      &ref,
				MessageID: "unknown",
				Data:      map[string]string{"directive": node.PreProc.Directive},
			})
		},
	}
}
