package lexical

import (
	"regexp"
	"strings"
)

// hyphenPrefixRe matches a word-internal hyphen immediately following
// one of the sense-changing prefixes re/pre/non/de, case-insensitively,
// e.g. "re-cycled" or "Non-linear". Other hyphenations (e.g.
// "case-based") are left alone for Tokenize to split on.
var hyphenPrefixRe = regexp.MustCompile(`(?i)\b(re|pre|non|de)-(\w)`)

// Heuristics joins its input with newline separators into a single
// string, then drops prefix-hyphens so "re-cycled" reaches Tokenize as
// one word instead of two.
func Heuristics(in []string) []string {
	joined := strings.Join(in, "\n")
	fixed := hyphenPrefixRe.ReplaceAllString(joined, "$1$2")
	return []string{fixed}
}
