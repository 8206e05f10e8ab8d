package codec

import (
	"strconv"
	"strings"

	"github.com/gitpan/Search-FreeText/errs"
)

// TermCount is one distinct term present in a document, with its count.
type TermCount struct {
	Term  string
	Count int
}

// DocumentRecord is the decoded form of a per-document record.
type DocumentRecord struct {
	Terms     []TermCount
	DocSize   int
	CallerKey string
}

var escaper = strings.NewReplacer(`\`, `\\`, `;`, `\;`, `=`, `\=`)

func escapeTerm(term string) string {
	return escaper.Replace(term)
}

// unescapeTerm reverses escapeTerm, interpreting a leading backslash as
// an escape for the very next byte.
func unescapeTerm(s string) string {
	if !strings.ContainsRune(s, '\\') {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			i++
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

// splitUnescaped splits s on unescaped occurrences of sep, treating a
// backslash as escaping the byte that follows it.
func splitUnescaped(s string, sep byte) []string {
	var parts []string
	var cur strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '\\' && i+1 < len(s) {
			cur.WriteByte(c)
			cur.WriteByte(s[i+1])
			i++
			continue
		}
		if c == sep {
			parts = append(parts, cur.String())
			cur.Reset()
			continue
		}
		cur.WriteByte(c)
	}
	parts = append(parts, cur.String())
	return parts
}

// EncodeDocumentRecord packs rec into its stored string shape:
// <escaped terms joined by ';'> ":" <docSize> "," <callerKey>.
// The caller key is never escaped. DecodeDocumentRecord reads it back as
// everything after the first ',' that follows docSize; ExtractCallerKey
// reads it back as the suffix after the final comma.
func EncodeDocumentRecord(rec DocumentRecord) string {
	entries := make([]string, len(rec.Terms))
	for i, tc := range rec.Terms {
		entry := escapeTerm(tc.Term)
		if tc.Count >= 2 {
			entry += "=" + strconv.Itoa(tc.Count)
		}
		entries[i] = entry
	}
	return strings.Join(entries, ";") + ":" + strconv.Itoa(rec.DocSize) + "," + rec.CallerKey
}

// DecodeDocumentRecord fully parses a per-document record, including the
// escaped term list. The read path in the scorer does not need the term
// list and should prefer ExtractCallerKey/ExtractDocSize instead.
func DecodeDocumentRecord(key, value string) (DocumentRecord, error) {
	termsPart, rest, found := cutLastColonBoundary(value)
	if !found {
		return DocumentRecord{}, &errs.Corruption{Key: key, Reason: "missing \":\" boundary"}
	}
	commaIdx := strings.IndexByte(rest, ',')
	if commaIdx < 0 {
		return DocumentRecord{}, &errs.Corruption{Key: key, Reason: "missing ',' before caller key"}
	}
	docSize, err := strconv.Atoi(rest[:commaIdx])
	if err != nil {
		return DocumentRecord{}, &errs.Corruption{Key: key, Reason: "docSize: " + err.Error()}
	}
	callerKey := rest[commaIdx+1:]

	var terms []TermCount
	if termsPart != "" {
		for _, entry := range splitUnescaped(termsPart, ';') {
			fields := splitUnescaped(entry, '=')
			term := unescapeTerm(fields[0])
			count := 1
			if len(fields) > 1 {
				c, err := strconv.Atoi(fields[len(fields)-1])
				if err != nil {
					return DocumentRecord{}, &errs.Corruption{Key: key, Reason: "term count: " + err.Error()}
				}
				count = c
			}
			terms = append(terms, TermCount{Term: term, Count: count})
		}
	}
	return DocumentRecord{Terms: terms, DocSize: docSize, CallerKey: callerKey}, nil
}

// cutLastColonBoundary finds the ":" that separates the escaped term
// list from "<docSize>,<callerKey>". Because terms escape literal ':'
// never (only ';', '=', '\' are escaped), the boundary is simply the
// first unescaped ':' scanning from the left.
func cutLastColonBoundary(value string) (termsPart, rest string, found bool) {
	for i := 0; i < len(value); i++ {
		if value[i] == '\\' && i+1 < len(value) {
			i++
			continue
		}
		if value[i] == ':' {
			return value[:i], value[i+1:], true
		}
	}
	return "", "", false
}

// ExtractCallerKey returns the caller key suffix of a per-document
// record without decoding the escaped term list, by taking everything
// after the final ',' in the value. This is the documented fast path:
// it avoids backtracking over the escaped term list. A caller key that
// itself contains ',' comes back as only the part after its last comma.
func ExtractCallerKey(value string) string {
	idx := strings.LastIndexByte(value, ',')
	if idx < 0 {
		return ""
	}
	return value[idx+1:]
}

// ExtractDocSize returns the docSize field of a per-document record by
// scanning for the ':' boundary and parsing the decimal digits up to
// the next ','.
func ExtractDocSize(key, value string) (int, error) {
	termsPart, rest, found := cutLastColonBoundary(value)
	_ = termsPart
	if !found {
		return 0, &errs.Corruption{Key: key, Reason: "missing \":\" boundary"}
	}
	commaIdx := strings.IndexByte(rest, ',')
	if commaIdx < 0 {
		return 0, &errs.Corruption{Key: key, Reason: "missing ',' before caller key"}
	}
	docSize, err := strconv.Atoi(rest[:commaIdx])
	if err != nil {
		return 0, &errs.Corruption{Key: key, Reason: "docSize: " + err.Error()}
	}
	return docSize, nil
}
