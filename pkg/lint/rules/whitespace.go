package rules

import (
	"github.com/yaklabco/goaglint/pkg/config"
	"github.com/yaklabco/goaglint/pkg/fix"
	"github.com/yaklabco/goaglint/pkg/fltast"
	"github.com/yaklabco/goaglint/pkg/lint"
)

// TrailingSpacesRule checks for trailing whitespace on lines.
type TrailingSpacesRule struct {
	desc *lint.Descriptor
}

// NewTrailingSpacesRule creates a new trailing-spaces rule.
func NewTrailingSpacesRule() *TrailingSpacesRule {
	return &TrailingSpacesRule{
		desc: &lint.Descriptor{
			ID:          "no-trailing-spaces",
			Description: "Lines should not have trailing whitespace",
			Category:    lint.CategoryLayout,
			CanFix:      true,
			Messages: map[string]string{
				"trailing": "trailing whitespace on line",
			},
			DefaultSeverity: config.SeverityWarn,
		},
	}
}

// Descriptor returns the rule metadata.
func (r *TrailingSpacesRule) Descriptor() *lint.Descriptor { return r.desc }

// Visitors registers a single root visitor; the check is line based and
// must also cover lines that carry no AST node.
func (r *TrailingSpacesRule) Visitors(inst *lint.Instance) lint.Visitors {
	return lint.Visitors{
		"FilterList": func(lint.NodeRef) error {
			return r.checkLines(inst)
		},
	}
}

func (r *TrailingSpacesRule) checkLines(inst *lint.Instance) error {
	file := inst.File()

	for lineNum := 1; lineNum <= file.LineCount(); lineNum++ {
		info := file.Lines[lineNum-1]
		text := file.LineContent(lineNum)

		end := len(text)
		start := end
		for start > 0 && (text[start-1] == ' ' || text[start-1] == '\t') {
			start--
		}
		if start == end {
			continue
		}

		wsStart := info.StartOffset + start
		wsEnd := info.NewlineStart

		err := inst.Report(lint.Report{
			Position: &fltast.SourcePosition{
				StartLine:   lineNum,
				StartColumn: start + 1,
				EndLine:     lineNum,
				EndColumn:   end + 1,
			},
			MessageID: "trailing",
			Fix: func([]byte) *fix.TextEdit {
				edit := fix.Delete(wsStart, wsEnd)
				return &edit
			},
		})
		if err != nil {
			return err
		}
	}

	return nil
}
