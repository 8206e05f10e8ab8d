package codec

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/gitpan/Search-FreeText/errs"
)

// Posting is one (docId, term frequency) entry within a term record.
type Posting struct {
	DocID uint64
	Count int
}

// TermRecord is the decoded form of a term-record value: the postings
// for one vocabulary entry plus its collection frequency.
type TermRecord struct {
	Postings []Posting
	// CFreq is the collection frequency: the sum of per-document counts
	// across every posting.
	CFreq int
	// Extra carries any comma-separated fields after cfreq, reserved
	// for future use. Decode preserves them verbatim so Encode can
	// round-trip a record this version doesn't fully understand.
	Extra []string
}

var postingRe = regexp.MustCompile(`^(\d+)(?:=(\d+))?$`)

// DecodeTermRecord parses a term-record value. An absent record (value
// == "") decodes to an empty TermRecord with no error, matching the
// "default 0" treatment spec.md gives a missing term record.
func DecodeTermRecord(key, value string) (TermRecord, error) {
	if value == "" {
		return TermRecord{}, nil
	}
	left, right, found := strings.Cut(value, ":")
	if !found {
		return TermRecord{}, &errs.Corruption{Key: key, Reason: "missing ':' separator"}
	}

	var rec TermRecord
	if left != "" {
		for _, p := range strings.Split(left, ";") {
			m := postingRe.FindStringSubmatch(p)
			if m == nil {
				return TermRecord{}, &errs.Corruption{Key: key, Reason: "malformed posting " + strconv.Quote(p)}
			}
			docID, err := strconv.ParseUint(m[1], 10, 64)
			if err != nil {
				return TermRecord{}, &errs.Corruption{Key: key, Reason: "posting docId: " + err.Error()}
			}
			count := 1
			if m[2] != "" {
				c, err := strconv.Atoi(m[2])
				if err != nil {
					return TermRecord{}, &errs.Corruption{Key: key, Reason: "posting count: " + err.Error()}
				}
				count = c
			}
			rec.Postings = append(rec.Postings, Posting{DocID: docID, Count: count})
		}
	}

	fields := strings.Split(right, ",")
	cfreq, err := strconv.Atoi(fields[0])
	if err != nil {
		return TermRecord{}, &errs.Corruption{Key: key, Reason: "cfreq: " + err.Error()}
	}
	rec.CFreq = cfreq
	if len(fields) > 1 {
		rec.Extra = fields[1:]
	}
	return rec, nil
}

// EncodeTermRecord packs rec back into its stored string shape.
func EncodeTermRecord(rec TermRecord) string {
	postings := make([]string, len(rec.Postings))
	for i, p := range rec.Postings {
		if p.Count == 1 {
			postings[i] = strconv.FormatUint(p.DocID, 10)
		} else {
			postings[i] = strconv.FormatUint(p.DocID, 10) + "=" + strconv.Itoa(p.Count)
		}
	}
	right := strconv.Itoa(rec.CFreq)
	if len(rec.Extra) > 0 {
		right += "," + strings.Join(rec.Extra, ",")
	}
	return strings.Join(postings, ";") + ":" + right
}

// AppendPosting decodes the existing value (if any), appends one posting
// for docID/count, updates cfreq, and returns the re-encoded value. The
// caller must guarantee docID has no existing posting in this record;
// the codec does not check for duplicates (spec.md: a document indexes
// each term at most once via the indexer).
func AppendPosting(key, existing string, docID uint64, count int) (string, error) {
	rec, err := DecodeTermRecord(key, existing)
	if err != nil {
		return "", err
	}
	rec.Postings = append(rec.Postings, Posting{DocID: docID, Count: count})
	rec.CFreq += count
	return EncodeTermRecord(rec), nil
}
