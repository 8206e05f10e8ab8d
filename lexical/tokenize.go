package lexical

import "regexp"

// wordRe matches the maximal runs of word characters (letters, digits,
// underscore) that Tokenize emits.
var wordRe = regexp.MustCompile(`\w+`)

// Tokenize splits each input string on non-word characters, emitting
// the maximal word-character runs in original order.
func Tokenize(in []string) []string {
	var out []string
	for _, s := range in {
		out = append(out, wordRe.FindAllString(s, -1)...)
	}
	return out
}
