package rules

import (
	"strconv"

	"github.com/yaklabco/goaglint/pkg/config"
	"github.com/yaklabco/goaglint/pkg/fltast"
	"github.com/yaklabco/goaglint/pkg/lint"
)

// InvalidRulesRule reports lines the parser could not understand.
type InvalidRulesRule struct {
	desc *lint.Descriptor
}

// NewInvalidRulesRule creates a new no-invalid-rules rule.
func NewInvalidRulesRule() *InvalidRulesRule {
	return &InvalidRulesRule{
		desc: &lint.Descriptor{
			ID:          "no-invalid-rules",
			Description: "Every line should be a syntactically valid filter rule",
			Category:    lint.CategoryProblem,
			Messages: map[string]string{
				"invalid": "rule cannot be parsed: {{text}}",
			},
			DefaultSeverity: config.SeverityError,
		},
	}
}

// Descriptor returns the rule metadata.
func (r *InvalidRulesRule) Descriptor() *lint.Descriptor { return r.desc }

// Visitors registers on every InvalidRule node.
func (r *InvalidRulesRule) Visitors(inst *lint.Instance) lint.Visitors {
	return lint.Visitors{
		"InvalidRule": func(ref lint.NodeRef) error {
			node, ok := ref.Node.(*fltast.Node)
			if !ok {
				return nil
			}

			return inst.Report(lint.Report{
				Node:      &ref,
				MessageID: "invalid",
				Data:      map[string]string{"text": string(node.Text())},
			})
		},
	}
}

// ShortRulesRule flags rules shorter than a configurable minimum length.
// Very short patterns tend to over-block.
type ShortRulesRule struct {
	desc *lint.Descriptor
}

// NewShortRulesRule creates a new no-short-rules rule.
func NewShortRulesRule() *ShortRulesRule {
	return &ShortRulesRule{
		desc: &lint.Descriptor{
			ID:          "no-short-rules",
			Description: "Rules should be long enough not to over-block",
			Category:    lint.CategorySuggestion,
			Messages: map[string]string{
				"tooShort": "rule is {{length}} characters long, minimum is {{min}}",
			},
			Options: map[string]lint.OptionSpec{
				"min_length": {Type: lint.OptionInt, Default: 4},
			},
			DefaultSeverity: config.SeverityWarn,
		},
	}
}

// Descriptor returns the rule metadata.
func (r *ShortRulesRule) Descriptor() *lint.Descriptor { return r.desc }

// Visitors registers on both rule kinds; comments and preprocessor
// directives are exempt.
func (r *ShortRulesRule) Visitors(inst *lint.Instance) lint.Visitors {
	check := func(ref lint.NodeRef) error {
		node, ok := ref.Node.(*fltast.Node)
		if !ok {
			return nil
		}

		minLength := inst.OptionInt("min_length", 4)
		length := node.EndOffset - node.StartOffset
		if length >= minLength {
			return nil
		}

		return inst.Report(lint.Report{
			Node:      &ref,
			MessageID: "tooShort",
			Data: map[string]string{
				"length": strconv.Itoa(length),
				"min":    strconv.Itoa(minLength),
			},
		})
	}

	return lint.Visitors{
		"NetworkRule":  check,
		"CosmeticRule": check,
	}
}
