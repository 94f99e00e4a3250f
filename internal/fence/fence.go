// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package fence finds fenced code blocks tagged with a language label.
//
// Matching is a single non-greedy pattern: a block starts at "```" followed
// immediately by the label and ends at the next "```". The label is matched
// literally and case-sensitively, so a label that prefixes another one
// ("java" and "javascript") also matches the longer label's fences.
package fence

import "regexp"

const marker = "```"

// pattern compiles the block pattern for label.
func pattern(label string) *regexp.Regexp {
	return regexp.MustCompile(`(?s)` + marker + regexp.QuoteMeta(label) + `(.*?)` + marker)
}

// Extract returns the contents of every block fenced with label, in document
// order, with the fence markers removed and surrounding whitespace kept.
// It returns nil when nothing matches.
func Extract(text, label string) []string {
	matches := pattern(label).FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return nil
	}
	blocks := make([]string, len(matches))
	for i, m := range matches {
		blocks[i] = m[1]
	}
	return blocks
}
