package search

import (
	"context"
	"errors"
	"testing"

	"github.com/gitpan/Search-FreeText/errs"
	"github.com/gitpan/Search-FreeText/store"
)

func newTestEngine() *Engine {
	return New(Config{Store: store.NewMemStore()})
}

func TestEngineEndToEndCorpus(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine()
	if err := e.Open(ctx); err != nil {
		t.Fatal(err)
	}
	defer e.Close(ctx)

	corpus := []struct{ key, text string }{
		{"1", "Hello world"},
		{"2", "World in motion"},
		{"3", "Cruel crazy beautiful world"},
		{"4", "Hey crazy"},
	}
	for _, doc := range corpus {
		if err := e.IndexDocument(ctx, doc.key, doc.text); err != nil {
			t.Fatalf("indexing %q: %v", doc.key, err)
		}
	}

	results, err := e.Search(ctx, "Crazy", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 2 || results[0].CallerKey != "4" || results[1].CallerKey != "3" {
		t.Errorf("got %+v, want [4 3]", results)
	}

	if _, err := e.Search(ctx, "the", 10); err != nil {
		t.Fatal(err)
	}

	if err := e.Clear(ctx); err != nil {
		t.Fatal(err)
	}
	_, err = e.Search(ctx, "anything", 10)
	var empty *errs.EmptyIndex
	if !errors.As(err, &empty) {
		t.Fatalf("got %v, want *errs.EmptyIndex", err)
	}
}

func TestEngineRejectsDuplicateCallerKey(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine()
	if err := e.IndexDocument(ctx, "doc-a", "hello"); err != nil {
		t.Fatal(err)
	}
	err := e.IndexDocument(ctx, "doc-a", "anything")
	var dup *errs.AlreadyIndexed
	if !errors.As(err, &dup) {
		t.Fatalf("got %v, want *errs.AlreadyIndexed", err)
	}
}

func TestEngineSearchWithCallbackStopsOnFalse(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine()
	if err := e.IndexDocument(ctx, "1", "alpha beta"); err != nil {
		t.Fatal(err)
	}
	if err := e.IndexDocument(ctx, "2", "alpha gamma"); err != nil {
		t.Fatal(err)
	}

	var seen int
	err := e.SearchWithCallback(ctx, "alpha", func(callerKey string, score float64, docID uint64) bool {
		seen++
		return false
	})
	if err != nil {
		t.Fatal(err)
	}
	if seen != 1 {
		t.Errorf("got %d callback invocations, want exactly 1", seen)
	}
}

func TestEngineCustomBM25Values(t *testing.T) {
	ctx := context.Background()
	b := 0.0
	e := New(Config{Store: store.NewMemStore(), Values: BM25Values{B: &b}})
	if err := e.IndexDocument(ctx, "1", "short doc"); err != nil {
		t.Fatal(err)
	}
	if err := e.IndexDocument(ctx, "2", "a much longer document with many more words in it"); err != nil {
		t.Fatal(err)
	}
	if _, err := e.Search(ctx, "doc", 10); err != nil {
		t.Fatal(err)
	}
}
