// Package scorer implements the BM25 query engine: component E
// (SPEC_FULL.md §4.E). See http://en.wikipedia.org/wiki/Okapi_BM25.
package scorer

import (
	"context"
	"math"
	"sort"

	"github.com/gitpan/Search-FreeText/codec"
	"github.com/gitpan/Search-FreeText/errs"
	"github.com/gitpan/Search-FreeText/keys"
	"github.com/gitpan/Search-FreeText/lexical"
	"github.com/gitpan/Search-FreeText/store"
)

// Params are the three knobs BM25 exposes. B controls length
// normalization strength, K1 document-side term-frequency saturation,
// K3 query-side term-frequency saturation.
type Params struct {
	B  float64
	K1 float64
	K3 float64
}

// DefaultParams matches the reference values from Robertson et al.,
// Okapi at TREC-4.
func DefaultParams() Params {
	return Params{B: 0.75, K1: 1.2, K3: 7}
}

// Validate enforces the preconditions SPEC_FULL.md §4.E requires: K1 and
// K3 non-negative, B in [0, 1].
func (p Params) Validate() error {
	if p.K1 < 0 {
		return &errs.PreconditionFailure{Reason: "K1 must be >= 0"}
	}
	if p.K3 < 0 {
		return &errs.PreconditionFailure{Reason: "K3 must be >= 0"}
	}
	if p.B < 0 || p.B > 1 {
		return &errs.PreconditionFailure{Reason: "B must be in [0, 1]"}
	}
	return nil
}

// Result is one scored hit handed to a search() caller.
type Result struct {
	CallerKey string
	Score     float64
}

// Engine applies BM25 to matching postings read from a Store.
type Engine struct {
	Store    store.Store
	Pipeline *lexical.Pipeline
	Params   Params
}

// New returns an Engine sharing s/p with the rest of the search engine.
// An unset (zero-value) Params is replaced with DefaultParams.
func New(s store.Store, p *lexical.Pipeline, params Params) *Engine {
	if params == (Params{}) {
		params = DefaultParams()
	}
	return &Engine{Store: s, Pipeline: p, Params: params}
}

// Visitor is called once per result in ranked order; returning false
// stops emission (it does not unwind the already-completed scoring
// pass).
type Visitor func(callerKey string, score float64, docID uint64) bool

// resolveQueryTerms implements step 1 of SPEC_FULL.md §4.E: text is run
// through the lexical pipeline, a []string is used as-is, anything else
// is errs.BadQuery.
func (e *Engine) resolveQueryTerms(query interface{}) ([]string, error) {
	switch q := query.(type) {
	case string:
		return e.Pipeline.Run(q), nil
	case []string:
		return q, nil
	default:
		return nil, &errs.BadQuery{Got: query}
	}
}

// SearchWithCallback scores query against the index and invokes visit
// once per result, most relevant first, ties broken by ascending docId.
func (e *Engine) SearchWithCallback(ctx context.Context, query interface{}, visit Visitor) error {
	// Preconditions are checked before any store read (SPEC_FULL.md §7).
	if err := e.Params.Validate(); err != nil {
		return err
	}

	terms, err := e.resolveQueryTerms(query)
	if err != nil {
		return err
	}

	qc := make(map[string]int, len(terms))
	for _, t := range terms {
		qc[t]++
	}
	numDistinctQueryTerms := len(qc)

	globalValue, ok, err := e.Store.Get(ctx, keys.GlobalKey)
	if err != nil {
		return err
	}
	if !ok {
		return &errs.EmptyIndex{}
	}
	global, err := codec.DecodeGlobal(globalValue)
	if err != nil {
		return err
	}
	if global.DocCount == 0 {
		return &errs.EmptyIndex{}
	}
	if numDistinctQueryTerms == 0 {
		return nil
	}
	avgDocLength := float64(global.TotalTerms) / float64(global.DocCount)

	scores := make(map[uint64]float64)
	lenCache := make(map[uint64]int)

	for term, qf := range qc {
		value, ok, err := e.Store.Get(ctx, term)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}
		rec, err := codec.DecodeTermRecord(term, value)
		if err != nil {
			return err
		}
		df := len(rec.Postings)
		if df == 0 {
			continue
		}
		idf := math.Log(float64(global.DocCount) / float64(df))
		qtf := float64(qf) * (e.Params.K3 + 1) / (float64(qf) + e.Params.K3)

		for _, posting := range rec.Postings {
			length, ok := lenCache[posting.DocID]
			if !ok {
				docValue, found, err := e.Store.Get(ctx, keys.DocumentKey(posting.DocID))
				if err != nil {
					return err
				}
				if !found {
					return &errs.Corruption{Key: keys.DocumentKey(posting.DocID), Reason: "posting references missing document record"}
				}
				length, err = codec.ExtractDocSize(keys.DocumentKey(posting.DocID), docValue)
				if err != nil {
					return err
				}
				lenCache[posting.DocID] = length
			}

			norm := (1 - e.Params.B) + e.Params.B*float64(length)/avgDocLength
			tf := float64(posting.Count) * (e.Params.K1 + 1) / (float64(posting.Count) + e.Params.K1*norm)
			scores[posting.DocID] += tf * idf * qtf
		}
	}

	docIDs := make([]uint64, 0, len(scores))
	for id, s := range scores {
		scores[id] = s / float64(numDistinctQueryTerms)
		docIDs = append(docIDs, id)
	}
	sort.Slice(docIDs, func(i, j int) bool {
		si, sj := scores[docIDs[i]], scores[docIDs[j]]
		if si != sj {
			return si > sj
		}
		return docIDs[i] < docIDs[j]
	})

	for _, docID := range docIDs {
		docValue, found, err := e.Store.Get(ctx, keys.DocumentKey(docID))
		if err != nil {
			return err
		}
		if !found {
			return &errs.Corruption{Key: keys.DocumentKey(docID), Reason: "scored document has no document record"}
		}
		callerKey := codec.ExtractCallerKey(docValue)
		if !visit(callerKey, scores[docID], docID) {
			break
		}
	}
	return nil
}

// Search is a convenience wrapper over SearchWithCallback: it collects
// results up to limit (0 or absent meaning unlimited).
func (e *Engine) Search(ctx context.Context, query interface{}, limit int) ([]Result, error) {
	var results []Result
	err := e.SearchWithCallback(ctx, query, func(callerKey string, score float64, docID uint64) bool {
		results = append(results, Result{CallerKey: callerKey, Score: score})
		return limit <= 0 || len(results) < limit
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}
