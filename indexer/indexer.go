// Package indexer implements index_document: component D of the engine
// (SPEC_FULL.md §4.D).
package indexer

import (
	"context"

	"github.com/gitpan/Search-FreeText/codec"
	"github.com/gitpan/Search-FreeText/keys"
	"github.com/gitpan/Search-FreeText/lexical"
	"github.com/gitpan/Search-FreeText/registry"
	"github.com/gitpan/Search-FreeText/store"
)

// Indexer turns a document's terms into a fresh docId plus the term and
// per-document store writes that docId needs.
type Indexer struct {
	Store    store.Store
	Registry *registry.Registry
	Pipeline *lexical.Pipeline
}

// New returns an Indexer sharing s/r/p with the rest of the engine.
func New(s store.Store, r *registry.Registry, p *lexical.Pipeline) *Indexer {
	return &Indexer{Store: s, Registry: r, Pipeline: p}
}

// Result describes what IndexDocument actually wrote, useful to a
// notifier or caller-side audit log.
type Result struct {
	DocID   uint64
	DocSize int
}

// IndexDocument runs text through the lexical pipeline, allocates a
// docId for callerKey, and writes one posting per distinct term plus the
// per-document record. All writes for a single document are attempted as
// a group; a store failure partway through is surfaced unchanged (as
// errs.Store) so the caller can decide whether to rebuild, per
// SPEC_FULL.md §7.
func (ix *Indexer) IndexDocument(ctx context.Context, callerKey, text string) (Result, error) {
	terms := ix.Pipeline.Run(text)
	docSize := len(terms)

	// Count term -> occurrences while preserving first-seen order, so
	// writes are deterministic and byte-stable across runs.
	counts := make(map[string]int, len(terms))
	order := make([]string, 0, len(terms))
	for _, t := range terms {
		if _, seen := counts[t]; !seen {
			order = append(order, t)
		}
		counts[t]++
	}

	docID, err := ix.Registry.Allocate(ctx, callerKey, docSize)
	if err != nil {
		return Result{}, err
	}

	for _, term := range order {
		count := counts[term]
		existing, _, err := ix.Store.Get(ctx, term)
		if err != nil {
			return Result{}, err
		}
		updated, err := codec.AppendPosting(term, existing, docID, count)
		if err != nil {
			return Result{}, err
		}
		if err := ix.Store.Put(ctx, term, updated); err != nil {
			return Result{}, err
		}
	}

	docTerms := make([]codec.TermCount, len(order))
	for i, term := range order {
		docTerms[i] = codec.TermCount{Term: term, Count: counts[term]}
	}
	docValue := codec.EncodeDocumentRecord(codec.DocumentRecord{
		Terms:     docTerms,
		DocSize:   docSize,
		CallerKey: callerKey,
	})
	if err := ix.Store.Put(ctx, keys.DocumentKey(docID), docValue); err != nil {
		return Result{}, err
	}

	return Result{DocID: docID, DocSize: docSize}, nil
}
