package lexical

import (
	"bufio"
	"strings"
)

// StopSet is the lowercased set of tokens a stop filter drops.
type StopSet map[string]struct{}

// ParseStopList builds a StopSet from a newline/whitespace-separated
// string. Lines starting with '#' are comments and ignored; every other
// whitespace-separated field becomes a (lowercased) stop word. The same
// parser handles both the built-in default list and a caller-supplied
// replacement, so there is exactly one code path for "what counts as a
// stop word".
func ParseStopList(s string) StopSet {
	set := make(StopSet)
	scanner := bufio.NewScanner(strings.NewReader(s))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		for _, field := range strings.Fields(line) {
			set[strings.ToLower(field)] = struct{}{}
		}
	}
	return set
}

// NewStopFilter returns a Stage dropping tokens whose lowercased form is
// in set.
func NewStopFilter(set StopSet) Stage {
	return func(in []string) []string {
		out := make([]string, 0, len(in))
		for _, tok := range in {
			if _, stop := set[strings.ToLower(tok)]; stop {
				continue
			}
			out = append(out, tok)
		}
		return out
	}
}
