// Package search implements a persistent free-text search engine over an
// external ordered key-value store, answering ranked queries under the
// BM25 relevance model (Robertson et al., Okapi at TREC-4). See
// SPEC_FULL.md for the full design.
package search

import (
	"context"
	"errors"
	"time"

	"github.com/gitpan/Search-FreeText/errs"
	"github.com/gitpan/Search-FreeText/indexer"
	"github.com/gitpan/Search-FreeText/lexical"
	"github.com/gitpan/Search-FreeText/notify"
	"github.com/gitpan/Search-FreeText/registry"
	"github.com/gitpan/Search-FreeText/scorer"
	"github.com/gitpan/Search-FreeText/store"
)

// Engine is the entry point for indexing and search. Construct one with
// New, Open it, use it, and Close it; never share one Engine across
// concurrent writers without external serialization (SPEC_FULL.md §5).
type Engine struct {
	config Config

	store    store.Store
	pipeline *lexical.Pipeline
	registry *registry.Registry
	indexer  *indexer.Indexer
	scorer   *scorer.Engine
}

// New constructs an engine from cfg. Unset fields are filled with their
// documented defaults (SPEC_FULL.md §6); cfg.Store must not be nil.
func New(cfg Config) *Engine {
	cfg = cfg.withDefaults()
	pipeline := cfg.buildPipeline()
	reg := registry.New(cfg.Store)

	return &Engine{
		config:   cfg,
		store:    cfg.Store,
		pipeline: pipeline,
		registry: reg,
		indexer:  indexer.New(cfg.Store, reg, pipeline),
		scorer:   scorer.New(cfg.Store, pipeline, cfg.bm25Params()),
	}
}

// Open acquires the backing store's persistent resources.
func (e *Engine) Open(ctx context.Context) error {
	return e.store.Open(ctx)
}

// Close releases the backing store's persistent resources. It is safe
// to call even after Open failed.
func (e *Engine) Close(ctx context.Context) error {
	return e.store.Close(ctx)
}

// Clear wipes the entire index atomically. The next allocation starts
// from docId 1.
func (e *Engine) Clear(ctx context.Context) error {
	return e.registry.Clear(ctx)
}

// IndexDocument runs text through the lexical pipeline and writes the
// resulting postings and per-document record under a freshly allocated
// docId for callerKey. Re-indexing an existing callerKey fails with
// *errs.AlreadyIndexed and makes no writes.
func (e *Engine) IndexDocument(ctx context.Context, callerKey, text string) error {
	result, err := e.indexer.IndexDocument(ctx, callerKey, text)
	if err != nil {
		if isStoreFailure(err) {
			e.config.Metrics.StoreError()
		}
		return err
	}
	e.config.Metrics.DocumentIndexed()
	e.config.Notifier.DocumentIndexed(ctx, notify.Event{
		CallerKey: callerKey,
		DocID:     result.DocID,
		DocSize:   result.DocSize,
	})
	return nil
}

// Result is one scored hit returned by Search.
type Result struct {
	CallerKey string
	Score     float64
}

// Search scores queryText against the index and returns up to limit
// results ordered by descending BM25 score (0 or negative limit means
// unlimited). It fails with *errs.EmptyIndex if no document has ever
// been indexed.
func (e *Engine) Search(ctx context.Context, queryText string, limit int) ([]Result, error) {
	start := time.Now()
	scored, err := e.scorer.Search(ctx, queryText, limit)
	e.config.Metrics.SearchPerformed(time.Since(start))
	if err != nil {
		if isStoreFailure(err) {
			e.config.Metrics.StoreError()
		}
		return nil, err
	}
	results := make([]Result, len(scored))
	for i, r := range scored {
		results[i] = Result{CallerKey: r.CallerKey, Score: r.Score}
	}
	return results, nil
}

// Visitor is called once per result in ranked order; returning false
// stops emission without unwinding the completed scoring pass.
type Visitor func(callerKey string, score float64, docID uint64) bool

// SearchWithCallback is the uncollected form of Search. query is either
// raw text (string) or a pre-tokenized sequence ([]string) that bypasses
// the lexical pipeline entirely; any other type fails with
// *errs.BadQuery.
func (e *Engine) SearchWithCallback(ctx context.Context, query interface{}, visit Visitor) error {
	start := time.Now()
	err := e.scorer.SearchWithCallback(ctx, query, scorer.Visitor(visit))
	e.config.Metrics.SearchPerformed(time.Since(start))
	if err != nil && isStoreFailure(err) {
		e.config.Metrics.StoreError()
	}
	return err
}

func isStoreFailure(err error) bool {
	var storeErr *errs.Store
	return errors.As(err, &storeErr)
}
