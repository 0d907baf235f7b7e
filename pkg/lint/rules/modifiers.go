package rules

import (
	"github.com/yaklabco/goaglint/pkg/config"
	"github.com/yaklabco/goaglint/pkg/fix"
	"github.com/yaklabco/goaglint/pkg/fltast"
	"github.com/yaklabco/goaglint/pkg/lint"
)

// DuplicatedModifiersRule flags repeated modifier names in a network rule's
// "$modifier,..." section.
type DuplicatedModifiersRule struct {
	desc *lint.Descriptor
}

// NewDuplicatedModifiersRule creates a new duplicated-modifiers rule.
func NewDuplicatedModifiersRule() *DuplicatedModifiersRule {
	return &DuplicatedModifiersRule{
		desc: &lint.Descriptor{
			ID:          "duplicated-modifiers",
			Description: "Network rule modifiers should not repeat",
			Category:    lint.CategoryProblem,
			CanFix:      true,
			Messages: map[string]string{
				"duplicated": `modifier "{{name}}" is used more than once`,
			},
			DefaultSeverity: config.SeverityError,
		},
	}
}

// Descriptor returns the rule metadata.
func (r *DuplicatedModifiersRule) Descriptor() *lint.Descriptor { return r.desc }

// Visitors registers on every ModifierList node.
func (r *DuplicatedModifiersRule) Visitors(inst *lint.Instance) lint.Visitors {
	return lint.Visitors{
		"ModifierList": func(ref lint.NodeRef) error {
			list, ok := ref.Node.(*fltast.Node)
			if !ok {
				return nil
			}
			return r.checkList(inst, list)
		},
	}
}

func (r *DuplicatedModifiersRule) checkList(inst *lint.Instance, list *fltast.Node) error {
	seen := make(map[string]bool)

	for mod := list.FirstChild; mod != nil; mod = mod.Next {
		if mod.Modifier == nil {
			continue
		}

		name := mod.Modifier.Name
		if !seen[name] {
			seen[name] = true
			continue
		}

		// The duplicate always has a preceding sibling; deleting from
		// its end removes the separating comma too.
		delStart := mod.Prev.EndOffset
		delEnd := mod.EndOffset

		ref := lint.NodeRef{Adapter: fltast.TreeAdapter{}, Node: mod}
		err := inst.Report(lint.Report{
			Node:      &ref,
			MessageID: "duplicated",
			Data:      map[string]string{"name": name},
			Fix: func([]byte) *fix.TextEdit {
				edit := fix.Delete(delStart, delEnd)
				return &edit
			},
		})
		if err != nil {
			return err
		}
	}

	return nil
}
