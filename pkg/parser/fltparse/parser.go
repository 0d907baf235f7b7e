// Package fltparse provides the host-language Parser for adblock filter
// lists. The grammar is line oriented: every non-blank line is a comment, a
// preprocessor directive, a cosmetic rule, or a network rule. Parsing is
// lossless; every node carries exact byte offsets into the snapshot so rules
// and fixes can address the original text.
package fltparse

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/yaklabco/goaglint/pkg/fltast"
)

// Parser implements lint.Parser for the adblock filter-list syntax.
type Parser struct{}

// New creates a new filter-list parser.
func New() *Parser {
	return &Parser{}
}

// ErrBinaryContent is returned when the input contains NUL bytes and is
// almost certainly not a filter list.
var ErrBinaryContent = errors.New("binary content")

// Parse converts raw filter-list bytes into a fully-populated FileSnapshot.
//
// The returned snapshot satisfies:
//   - snapshot.Path == path
//   - bytes.Equal(snapshot.Content, content)
//   - snapshot.Root != nil && snapshot.Root.Kind == fltast.NodeFilterList
//   - all nodes have node.File == snapshot
//
// Malformed lines never fail the parse; they become InvalidRule nodes so
// rules can report on them. The only fatal condition is binary input.
func (p *Parser) Parse(ctx context.Context, path string, content []byte) (*fltast.FileSnapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("parse cancelled: %w", err)
	}

	if bytes.IndexByte(content, 0) >= 0 {
		return nil, fmt.Errorf("%w: NUL byte in input", ErrBinaryContent)
	}

	snapshot := fltast.NewFileSnapshot(path, copyContent(content))

	root := &fltast.Node{
		Kind:        fltast.NodeFilterList,
		StartOffset: 0,
		EndOffset:   len(snapshot.Content),
	}
	snapshot.Root = root

	for _, line := range snapshot.Lines {
		text := snapshot.Content[line.StartOffset:line.NewlineStart]
		if isBlank(text) {
			continue
		}
		node := parseLine(text, line.StartOffset)
		root.AppendChild(node)
	}

	fltast.SetFile(root, snapshot)
	return snapshot, nil
}

// copyContent creates a copy of the content slice to ensure immutability.
func copyContent(content []byte) []byte {
	if content == nil {
		return nil
	}
	cp := make([]byte, len(content))
	copy(cp, content)
	return cp
}

// isBlank reports whether a line contains only whitespace.
func isBlank(text []byte) bool {
	return len(bytes.TrimSpace(text)) == 0
}

// parseLine classifies one non-blank line and builds its node.
// base is the byte offset of the line start in the snapshot.
func parseLine(text []byte, base int) *fltast.Node {
	switch {
	case bytes.HasPrefix(text, []byte("!#")):
		return parsePreProcessor(text, base)
	case text[0] == '!':
		return parseComment(text, base, "!")
	case isHashComment(text):
		return parseComment(text, base, "#")
	}

	if sep, sepIdx := findCosmeticSeparator(text); sepIdx >= 0 {
		return parseCosmeticRule(text, base, sep, sepIdx)
	}

	return parseNetworkRule(text, base)
}

// isHashComment reports whether the line is a hosts-style "#" comment.
// A bare "#" or "# ..." is a comment; "#..." without a space could be the
// start of a cosmetic separator and is not.
func isHashComment(text []byte) bool {
	if text[0] != '#' {
		return false
	}
	return len(text) == 1 || text[1] == ' ' || text[1] == '\t'
}

// metadataKeys lists the comment header keys treated as list metadata.
var metadataKeys = map[string]bool{
	"title":         true,
	"description":   true,
	"homepage":      true,
	"license":       true,
	"version":       true,
	"expires":       true,
	"last modified": true,
	"time updated":  true,
	"checksum":      true,
	"diff-path":     true,
}

// parseComment builds a Comment or MetadataComment node.
func parseComment(text []byte, base int, marker string) *fltast.Node {
	body := strings.TrimSpace(string(text[len(marker):]))

	node := &fltast.Node{
		Kind:        fltast.NodeComment,
		StartOffset: base,
		EndOffset:   base + len(text),
		Comment: &fltast.CommentAttrs{
			Marker: marker,
			Text:   body,
		},
	}

	if marker == "!" {
		if key, value, ok := splitMetadata(body); ok {
			node.Kind = fltast.NodeMetadataComment
			node.Comment.Key = key
			node.Comment.Value = value
		}
	}

	return node
}

// splitMetadata recognizes "Key: Value" comment bodies with a known key.
func splitMetadata(body string) (string, string, bool) {
	colon := strings.Index(body, ":")
	if colon <= 0 {
		return "", "", false
	}
	key := strings.TrimSpace(body[:colon])
	if !metadataKeys[strings.ToLower(key)] {
		return "", "", false
	}
	return key, strings.TrimSpace(body[colon+1:]), true
}

// parsePreProcessor builds a PreProcessor node from a "!#directive params" line.
func parsePreProcessor(text []byte, base int) *fltast.Node {
	rest := string(text[2:])
	directive := rest
	params := ""
	if space := strings.IndexAny(rest, " \t"); space >= 0 {
		directive = rest[:space]
		params = strings.TrimSpace(rest[space:])
	}

	return &fltast.Node{
		Kind:        fltast.NodePreProcessor,
		StartOffset: base,
		EndOffset:   base + len(text),
		PreProc: &fltast.PreProcAttrs{
			Directive: directive,
			Params:    params,
		},
	}
}

// cosmeticSeparators lists recognized separators, longest first so that
// longest-match wins ("#@?#" before "#?#" before "##").
var cosmeticSeparators = []string{
	"#@?#", "#@$#", "#@%#", "#@#",
	"#?#", "#$#", "#%#", "##",
}

// findCosmeticSeparator returns the separator and its index, or ("", -1).
func findCosmeticSeparator(text []byte) (string, int) {
	bestIdx := -1
	bestSep := ""
	for _, sep := range cosmeticSeparators {
		idx := bytes.Index(text, []byte(sep))
		if idx < 0 {
			continue
		}
		if bestIdx < 0 || idx < bestIdx || (idx == bestIdx && len(sep) > len(bestSep)) {
			bestIdx = idx
			bestSep = sep
		}
	}
	return bestSep, bestIdx
}

// parseCosmeticRule builds a CosmeticRule node with its DomainList and
// SelectorBody children. An empty selector body makes the line invalid.
func parseCosmeticRule(text []byte, base int, sep string, sepIdx int) *fltast.Node {
	bodyStart := sepIdx + len(sep)
	if len(bytes.TrimSpace(text[bodyStart:])) == 0 {
		return invalidRule(text, base)
	}

	node := &fltast.Node{
		Kind:        fltast.NodeCosmeticRule,
		StartOffset: base,
		EndOffset:   base + len(text),
		Cosmetic: &fltast.CosmeticAttrs{
			Separator: sep,
			Exception: strings.HasPrefix(sep, "#@"),
		},
	}

	if sepIdx > 0 {
		node.AppendChild(parseDomainList(text[:sepIdx], base))
	}

	body := &fltast.Node{
		Kind:        fltast.NodeSelectorBody,
		Attr:        "body",
		StartOffset: base + bodyStart,
		EndOffset:   base + len(text),
	}
	node.AppendChild(body)

	return node
}

// parseDomainList builds a DomainList node from the comma-separated domain
// part of a cosmetic rule.
func parseDomainList(text []byte, base int) *fltast.Node {
	list := &fltast.Node{
		Kind:        fltast.NodeDomainList,
		Attr:        "domains",
		StartOffset: base,
		EndOffset:   base + len(text),
	}

	offset := 0
	for _, part := range bytes.Split(text, []byte(",")) {
		trimmed := bytes.TrimSpace(part)
		if len(trimmed) > 0 {
			lead := bytes.IndexByte(part, trimmed[0])
			start := base + offset + lead
			list.AppendChild(&fltast.Node{
				Kind:        fltast.NodeDomain,
				StartOffset: start,
				EndOffset:   start + len(trimmed),
			})
		}
		offset += len(part) + 1
	}

	return list
}

// parseNetworkRule builds a NetworkRule node, splitting the pattern from an
// optional "$modifier,..." section.
func parseNetworkRule(text []byte, base int) *fltast.Node {
	pattern := text
	exception := false
	patternStart := 0

	if bytes.HasPrefix(text, []byte("@@")) {
		exception = true
		patternStart = 2
		pattern = text[2:]
		if len(bytes.TrimSpace(pattern)) == 0 {
			return invalidRule(text, base)
		}
	}

	node := &fltast.Node{
		Kind:        fltast.NodeNetworkRule,
		StartOffset: base,
		EndOffset:   base + len(text),
		Network: &fltast.NetworkAttrs{
			Exception: exception,
		},
	}

	sepIdx := lastUnescapedDollar(pattern)
	if sepIdx < 0 {
		node.Network.Pattern = string(pattern)
		return node
	}

	modText := pattern[sepIdx+1:]
	if len(bytes.TrimSpace(modText)) == 0 {
		// "ads$" has an options separator but no options.
		return invalidRule(text, base)
	}

	node.Network.Pattern = string(pattern[:sepIdx])
	modStart := base + patternStart + sepIdx + 1
	node.AppendChild(parseModifierList(modText, modStart))

	return node
}

// lastUnescapedDollar returns the index of the last '$' not preceded by a
// backslash, or -1. A trailing '$' in the pattern position (regex anchor
// inside /.../$ rules) is not treated specially; linting such rules is the
// job of rules, not the parser.
func lastUnescapedDollar(text []byte) int {
	for i := len(text) - 1; i >= 0; i-- {
		if text[i] != '$' {
			continue
		}
		if i > 0 && text[i-1] == '\\' {
			continue
		}
		return i
	}
	return -1
}

// parseModifierList builds a ModifierList node with one Modifier child per
// unescaped-comma-separated entry.
func parseModifierList(text []byte, base int) *fltast.Node {
	list := &fltast.Node{
		Kind:        fltast.NodeModifierList,
		Attr:        "modifiers",
		StartOffset: base,
		EndOffset:   base + len(text),
	}

	start := 0
	for i := 0; i <= len(text); i++ {
		atEnd := i == len(text)
		if !atEnd && (text[i] != ',' || (i > 0 && text[i-1] == '\\')) {
			continue
		}
		list.AppendChild(parseModifier(text[start:i], base+start))
		start = i + 1
	}

	return list
}

// parseModifier builds a single Modifier node from "~name=value" text.
func parseModifier(text []byte, base int) *fltast.Node {
	node := &fltast.Node{
		Kind:        fltast.NodeModifier,
		StartOffset: base,
		EndOffset:   base + len(text),
		Modifier:    &fltast.ModifierAttrs{},
	}

	body := string(text)
	if strings.HasPrefix(body, "~") {
		node.Modifier.Negated = true
		body = body[1:]
	}

	if eq := strings.Index(body, "="); eq >= 0 {
		node.Modifier.Name = strings.TrimSpace(body[:eq])
		node.Modifier.Value = body[eq+1:]
	} else {
		node.Modifier.Name = strings.TrimSpace(body)
	}

	return node
}

// invalidRule wraps an unparseable line.
func invalidRule(text []byte, base int) *fltast.Node {
	return &fltast.Node{
		Kind:        fltast.NodeInvalidRule,
		StartOffset: base,
		EndOffset:   base + len(text),
	}
}
