package lint

import (
	"fmt"
	"strings"
)

// PathStep is one ancestor entry in the walk path: the node's type name and
// the attribute slot it occupies in its parent (may be empty).
type PathStep struct {
	Type string
	Attr string
}

// Selector is a compiled node-path pattern. The string form is a sequence
// of node-type names joined by ">", each optionally suffixed with
// ".attribute"; matching is anchored at the end of the walk path, so
// "Child" matches any Child node while "Parent > Child" matches only Child
// nodes directly under a Parent.
type Selector struct {
	source string
	steps  []selectorStep
}

type selectorStep struct {
	typ  string
	attr string
}

// CompileSelector parses a selector expression. Compilation happens once at
// registration; matching never re-parses the string.
func CompileSelector(expr string) (*Selector, error) {
	parts := strings.Split(expr, ">")
	steps := make([]selectorStep, 0, len(parts))

	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			return nil, fmt.Errorf("selector %q: empty path step", expr)
		}

		step := selectorStep{typ: part}
		if dot := strings.IndexByte(part, '.'); dot >= 0 {
			step.typ = part[:dot]
			step.attr = part[dot+1:]
			if step.typ == "" || step.attr == "" {
				return nil, fmt.Errorf("selector %q: malformed attribute step %q", expr, part)
			}
		}
		steps = append(steps, step)
	}

	return &Selector{source: expr, steps: steps}, nil
}

// String returns the original selector expression.
func (s *Selector) String() string {
	return s.source
}

// Match reports whether the walk path ends with this selector's step
// sequence. Each step must match the corresponding path entry exactly:
// type names are compared verbatim, and a step with an attribute suffix
// additionally requires the node to occupy that attribute slot.
func (s *Selector) Match(path []PathStep) bool {
	if len(path) < len(s.steps) {
		return false
	}

	base := len(path) - len(s.steps)
	for i, step := range s.steps {
		entry := path[base+i]
		if entry.Type != step.typ {
			return false
		}
		if step.attr != "" && entry.Attr != step.attr {
			return false
		}
	}
	return true
}
