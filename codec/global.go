package codec

import (
	"strconv"
	"strings"

	"github.com/gitpan/Search-FreeText/errs"
	"github.com/gitpan/Search-FreeText/keys"
)

// Global is the decoded form of the value stored at keys.GlobalKey.
type Global struct {
	// DocCount is the largest id ever allocated.
	DocCount uint64
	// TotalTerms is the sum of docSize across all currently live
	// documents; it is the corpus length BM25 averages over.
	TotalTerms uint64
	// FreeHead is the decimal id at the head of the free-list, or ""
	// when no document has been deallocated.
	FreeHead string
}

// EncodeGlobal packs g as "<docCount>,<totalTerms>,<freeHead>".
func EncodeGlobal(g Global) string {
	return strconv.FormatUint(g.DocCount, 10) + "," +
		strconv.FormatUint(g.TotalTerms, 10) + "," + g.FreeHead
}

// DecodeGlobal unpacks the value stored at keys.GlobalKey.
func DecodeGlobal(value string) (Global, error) {
	parts := strings.SplitN(value, ",", 3)
	if len(parts) != 3 {
		return Global{}, &errs.Corruption{Key: keys.GlobalKey, Reason: "expected 3 comma-separated fields"}
	}
	docCount, err := strconv.ParseUint(parts[0], 10, 64)
	if err != nil {
		return Global{}, &errs.Corruption{Key: keys.GlobalKey, Reason: "docCount: " + err.Error()}
	}
	totalTerms, err := strconv.ParseUint(parts[1], 10, 64)
	if err != nil {
		return Global{}, &errs.Corruption{Key: keys.GlobalKey, Reason: "totalTerms: " + err.Error()}
	}
	return Global{DocCount: docCount, TotalTerms: totalTerms, FreeHead: parts[2]}, nil
}
