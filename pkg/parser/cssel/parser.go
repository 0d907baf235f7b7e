package cssel

import (
	"fmt"
)

// ParseError describes a selector syntax error. Offset is absolute in the
// host file so the engine can position the resulting diagnostic.
type ParseError struct {
	Offset  int
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("selector syntax error at offset %d: %s", e.Offset, e.Message)
}

// Parse parses a selector list slice taken from a host file.
//
// base is the absolute byte offset of text[0] in the host file; baseLine and
// baseColumn locate it for error reporting. All node offsets in the returned
// tree are absolute host-file offsets.
func Parse(text []byte, base, baseLine, baseColumn int) (*Node, error) {
	p := &parser{text: text, base: base, line: baseLine, col: baseColumn}
	return p.parseSelectorList()
}

type parser struct {
	text []byte
	base int
	line int
	col  int
	pos  int
}

func (p *parser) errorf(offset int, format string, args ...any) error {
	return &ParseError{
		Offset:  p.base + offset,
		Message: fmt.Sprintf(format, args...),
	}
}

// parseSelectorList parses the whole input as comma-separated selectors.
func (p *parser) parseSelectorList() (*Node, error) {
	list := &Node{
		Kind:        NodeSelectorList,
		Value:       string(p.text),
		StartOffset: p.base,
		EndOffset:   p.base + len(p.text),
	}

	start := 0
	depth := 0
	var quote byte

	for i := 0; i <= len(p.text); i++ {
		atEnd := i == len(p.text)
		if !atEnd {
			c := p.text[i]
			switch {
			case quote != 0:
				if c == quote && p.text[i-1] != '\\' {
					quote = 0
				}
				continue
			case c == '"' || c == '\'':
				quote = c
				continue
			case c == '(' || c == '[':
				depth++
				continue
			case c == ')' || c == ']':
				depth--
				if depth < 0 {
					return nil, p.errorf(i, "unmatched %q", string(c))
				}
				continue
			case c != ',' || depth != 0:
				continue
			}
		}

		sel, err := p.parseSelector(start, i)
		if err != nil {
			return nil, err
		}
		list.AppendChild(sel)
		start = i + 1
	}

	if quote != 0 {
		return nil, p.errorf(len(p.text), "unterminated string")
	}
	if depth != 0 {
		return nil, p.errorf(len(p.text), "unbalanced brackets")
	}

	return list, nil
}

// parseSelector parses one complex selector from text[from:to].
func (p *parser) parseSelector(from, to int) (*Node, error) {
	begin, end := trimRange(p.text, from, to)
	if begin >= end {
		return nil, p.errorf(from, "empty selector")
	}

	sel := &Node{
		Kind:        NodeSelector,
		Value:       string(p.text[begin:end]),
		StartOffset: p.base + begin,
		EndOffset:   p.base + end,
	}

	i := begin
	expectCompound := true
	for i < end {
		c := p.text[i]

		if c == ' ' || c == '\t' {
			// Whitespace: either a descendant combinator or padding
			// around an explicit one.
			j := i
			for j < end && (p.text[j] == ' ' || p.text[j] == '\t') {
				j++
			}
			if j < end && !isExplicitCombinator(p.text[j]) && !expectCompound {
				sel.AppendChild(&Node{
					Kind:        NodeCombinator,
					Value:       " ",
					StartOffset: p.base + i,
					EndOffset:   p.base + j,
				})
				expectCompound = true
			}
			i = j
			continue
		}

		if isExplicitCombinator(c) {
			if expectCompound {
				return nil, p.errorf(i, "unexpected combinator %q", string(c))
			}
			sel.AppendChild(&Node{
				Kind:        NodeCombinator,
				Value:       string(c),
				StartOffset: p.base + i,
				EndOffset:   p.base + i + 1,
			})
			expectCompound = true
			i++
			continue
		}

		compound, next, err := p.parseCompound(i, end)
		if err != nil {
			return nil, err
		}
		sel.AppendChild(compound)
		expectCompound = false
		i = next
	}

	if expectCompound {
		return nil, p.errorf(end, "selector ends with a combinator")
	}

	return sel, nil
}

func isExplicitCombinator(c byte) bool {
	return c == '>' || c == '+' || c == '~'
}

// parseCompound parses a run of simple selectors starting at i.
// Returns the compound node and the index just past it.
func (p *parser) parseCompound(i, end int) (*Node, int, error) {
	compound := &Node{
		Kind:        NodeCompound,
		StartOffset: p.base + i,
	}

	start := i
	for i < end {
		c := p.text[i]
		if c == ' ' || c == '\t' || isExplicitCombinator(c) {
			break
		}

		var part *Node
		var next int
		var err error

		switch c {
		case '#':
			part, next, err = p.parseNamedPart(i, end, NodeIDSelector, "id")
		case '.':
			part, next, err = p.parseNamedPart(i, end, NodeClassSelector, "class")
		case '[':
			part, next, err = p.parseBracketed(i, end, '[', ']', NodeAttributeSelector)
		case ':':
			part, next, err = p.parsePseudo(i, end)
		default:
			part, next, err = p.parseTypeSelector(i, end)
		}
		if err != nil {
			return nil, 0, err
		}
		compound.AppendChild(part)
		i = next
	}

	if !compound.HasChildren() {
		return nil, 0, p.errorf(start, "empty compound selector")
	}

	compound.EndOffset = p.base + i
	compound.Value = string(p.text[start:i])
	return compound, i, nil
}

// parseNamedPart parses "#name" or ".name" parts.
func (p *parser) parseNamedPart(i, end int, kind NodeKind, what string) (*Node, int, error) {
	j := i + 1
	for j < end && isIdentChar(p.text[j]) {
		j++
	}
	if j == i+1 {
		return nil, 0, p.errorf(i, "missing %s name", what)
	}
	return &Node{
		Kind:        kind,
		Value:       string(p.text[i:j]),
		StartOffset: p.base + i,
		EndOffset:   p.base + j,
	}, j, nil
}

// parseTypeSelector parses a type name or the universal selector "*".
func (p *parser) parseTypeSelector(i, end int) (*Node, int, error) {
	if p.text[i] == '*' {
		return &Node{
			Kind:        NodeTypeSelector,
			Value:       "*",
			StartOffset: p.base + i,
			EndOffset:   p.base + i + 1,
		}, i + 1, nil
	}

	j := i
	for j < end && isIdentChar(p.text[j]) {
		j++
	}
	if j == i {
		return nil, 0, p.errorf(i, "unexpected character %q", string(p.text[i]))
	}
	return &Node{
		Kind:        NodeTypeSelector,
		Value:       string(p.text[i:j]),
		StartOffset: p.base + i,
		EndOffset:   p.base + j,
	}, j, nil
}

// parseBracketed parses a balanced "[...]" attribute selector, honoring
// quoted strings inside.
func (p *parser) parseBracketed(i, end int, open, close byte, kind NodeKind) (*Node, int, error) {
	depth := 0
	var quote byte
	for j := i; j < end; j++ {
		c := p.text[j]
		switch {
		case quote != 0:
			if c == quote && p.text[j-1] != '\\' {
				quote = 0
			}
		case c == '"' || c == '\'':
			quote = c
		case c == open:
			depth++
		case c == close:
			depth--
			if depth == 0 {
				return &Node{
					Kind:        kind,
					Value:       string(p.text[i : j+1]),
					StartOffset: p.base + i,
					EndOffset:   p.base + j + 1,
				}, j + 1, nil
			}
		}
	}
	return nil, 0, p.errorf(i, "unclosed %q", string(open))
}

// parsePseudo parses ":name" or "::name" with an optional balanced
// "(...)" argument.
func (p *parser) parsePseudo(i, end int) (*Node, int, error) {
	j := i + 1
	if j < end && p.text[j] == ':' {
		j++
	}

	nameStart := j
	for j < end && isIdentChar(p.text[j]) {
		j++
	}
	if j == nameStart {
		return nil, 0, p.errorf(i, "missing pseudo-class name")
	}

	if j < end && p.text[j] == '(' {
		depth := 0
		var quote byte
		for k := j; k < end; k++ {
			c := p.text[k]
			switch {
			case quote != 0:
				if c == quote && p.text[k-1] != '\\' {
					quote = 0
				}
			case c == '"' || c == '\'':
				quote = c
			case c == '(':
				depth++
			case c == ')':
				depth--
				if depth == 0 {
					return &Node{
						Kind:        NodePseudo,
						Value:       string(p.text[i : k+1]),
						StartOffset: p.base + i,
						EndOffset:   p.base + k + 1,
					}, k + 1, nil
				}
			}
		}
		return nil, 0, p.errorf(j, "unclosed pseudo-class argument")
	}

	return &Node{
		Kind:        NodePseudo,
		Value:       string(p.text[i:j]),
		StartOffset: p.base + i,
		EndOffset:   p.base + j,
	}, j, nil
}

// isIdentChar reports whether c may appear in an identifier.
func isIdentChar(c byte) bool {
	return c == '-' || c == '_' || c == '\\' ||
		(c >= '0' && c <= '9') ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		c >= 0x80
}

// trimRange narrows [from, to) to exclude surrounding whitespace.
func trimRange(text []byte, from, to int) (int, int) {
	for from < to && (text[from] == ' ' || text[from] == '\t') {
		from++
	}
	for to > from && (text[to-1] == ' ' || text[to-1] == '\t') {
		to--
	}
	return from, to
}
