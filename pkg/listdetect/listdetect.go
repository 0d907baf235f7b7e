// Package listdetect decides whether a text file plausibly contains adblock
// filter-list syntax. Discovery matches files by extension; this check keeps
// arbitrary .txt files (changelogs, notes) out of the lint run.
package listdetect

import (
	"bytes"
	"strings"
)

// sampleLines caps how many non-blank lines are inspected.
const sampleLines = 50

// minConfidence is the fraction of sampled lines that must look like
// filter-list syntax.
const minConfidence = 0.5

// IsFilterList reports whether content looks like an adblock filter list.
//
// The heuristic samples the leading non-blank lines and counts how many
// match known filter-list shapes: "!" comments, "!#" directives, hosts-style
// "#" comments, network rule anchors, and cosmetic separators. Binary
// content never qualifies.
func IsFilterList(content []byte) bool {
	if bytes.IndexByte(content, 0) >= 0 {
		return false
	}

	total := 0
	hits := 0

	for line := range strings.Lines(string(content)) {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		total++
		if looksLikeFilterLine(trimmed) {
			hits++
		}
		if total >= sampleLines {
			break
		}
	}

	// An empty file is not evidence either way; treat it as a list so the
	// pipeline can still run (and report nothing).
	if total == 0 {
		return true
	}

	return float64(hits) >= minConfidence*float64(total)
}

// looksLikeFilterLine classifies a single trimmed line.
func looksLikeFilterLine(line string) bool {
	switch {
	case strings.HasPrefix(line, "!"):
		// Comments, metadata headers, and !# directives.
		return true
	case strings.HasPrefix(line, "#"):
		// Hosts-style comment or a generic cosmetic rule ("##.ad").
		return true
	case strings.HasPrefix(line, "@@"), strings.HasPrefix(line, "||"), strings.HasPrefix(line, "|"):
		return true
	case strings.HasPrefix(line, "/") && strings.HasSuffix(line, "/"):
		// Regex network rule.
		return true
	}

	for _, sep := range []string{"#@?#", "#@$#", "#@%#", "#@#", "#?#", "#$#", "#%#", "##"} {
		if strings.Contains(line, sep) {
			return true
		}
	}

	// Bare domain patterns ("ads.example.com^$third-party" or hosts entries).
	if strings.ContainsAny(line, "^$*") && !strings.ContainsAny(line, " \t") {
		return true
	}

	return false
}
