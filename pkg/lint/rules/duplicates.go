package rules

import (
	"strconv"

	"github.com/yaklabco/goaglint/pkg/config"
	"github.com/yaklabco/goaglint/pkg/fix"
	"github.com/yaklabco/goaglint/pkg/fltast"
	"github.com/yaklabco/goaglint/pkg/lint"
)

// DuplicatedRulesRule flags byte-identical rule lines. The first occurrence
// stays; later ones are reported and deletable.
type DuplicatedRulesRule struct {
	desc *lint.Descriptor
}

// NewDuplicatedRulesRule creates a new no-duplicated-rules rule.
func NewDuplicatedRulesRule() *DuplicatedRulesRule {
	return &DuplicatedRulesRule{
		desc: &lint.Descriptor{
			ID:          "no-duplicated-rules",
			Description: "The same rule should not appear twice in a list",
			Category:    lint.CategoryProblem,
			CanFix:      true,
			Messages: map[string]string{
				"duplicated": "rule is a duplicate of the one on line {{line}}",
			},
			DefaultSeverity: config.SeverityWarn,
		},
	}
}

// Descriptor returns the rule metadata.
func (r *DuplicatedRulesRule) Descriptor() *lint.Descriptor { return r.desc }

// Visitors registers a root visitor; duplicate detection needs the whole
// file in document order.
func (r *DuplicatedRulesRule) Visitors(inst *lint.Instance) lint.Visitors {
	return lint.Visitors{
		"FilterList": func(ref lint.NodeRef) error {
			root, ok := ref.Node.(*fltast.Node)
			if !ok {
				return nil
			}
			return r.checkDuplicates(inst, root)
		},
	}
}

func (r *DuplicatedRulesRule) checkDuplicates(inst *lint.Instance, root *fltast.Node) error {
	file := inst.File()
	firstSeen := make(map[string]int)

	for node := root.FirstChild; node != nil; node = node.Next {
		switch node.Kind {
		case fltast.NodeComment, fltast.NodeMetadataComment, fltast.NodePreProcessor:
			continue
		}

		text := string(node.Text())
		line, _ := file.LineAt(node.StartOffset)

		original, ok := firstSeen[text]
		if !ok {
			firstSeen[text] = line
			continue
		}

		// Delete the whole line including its newline.
		info := file.Lines[line-1]
		delStart := info.StartOffset
		delEnd := info.EndOffset

		ref := lint.NodeRef{Adapter: fltast.TreeAdapter{}, Node: node}
		err := inst.Report(lint.Report{
			Node:      &ref,
			MessageID: "duplicated",
			Data:      map[string]string{"line": strconv.Itoa(original)},
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
