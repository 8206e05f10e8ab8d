package lexical

import (
	"strings"
	"unicode"

	"github.com/kljensen/snowball/english"
)

// StemFunc is the core's external stemming contract: a deterministic
// function word -> stem that returns the empty string for non-alphabetic
// input. The Porter stemmer (PorterStem, below) is the reference choice;
// the engine never depends on which algorithm a caller plugs in here.
type StemFunc func(word string) string

// PorterStem wraps github.com/kljensen/snowball/english, the Porter2
// stemmer for English, matching the word->stem contract StemFunc
// documents: it lowercases its input (Porter stemmers assume lowercase)
// and returns "" for tokens with no alphabetic rune.
func PorterStem(word string) string {
	if !hasLetter(word) {
		return ""
	}
	return english.Stem(strings.ToLower(word), false)
}

func hasLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}

// NewStemmer returns a Stage applying fn to every token that contains at
// least one alphabetic character; tokens without any letter pass through
// unchanged. Order is preserved and no token is ever dropped: if fn
// returns "" (its contractual answer for non-alphabetic input, which
// this stage never actually feeds it), the original token is kept.
func NewStemmer(fn StemFunc) Stage {
	return func(in []string) []string {
		out := make([]string, len(in))
		for i, tok := range in {
			if !hasLetter(tok) {
				out[i] = tok
				continue
			}
			stem := fn(tok)
			if stem == "" {
				stem = tok
			}
			out[i] = stem
		}
		return out
	}
}
