package indexer

import (
	"context"
	"testing"

	"github.com/gitpan/Search-FreeText/codec"
	"github.com/gitpan/Search-FreeText/errs"
	"github.com/gitpan/Search-FreeText/keys"
	"github.com/gitpan/Search-FreeText/lexical"
	"github.com/gitpan/Search-FreeText/registry"
	"github.com/gitpan/Search-FreeText/store"
)

func newTestIndexer() (*Indexer, store.Store) {
	s := store.NewMemStore()
	p := lexical.New(lexical.Tokenize)
	return New(s, registry.New(s), p), s
}

func TestIndexDocumentWritesPostingsAndRecord(t *testing.T) {
	ix, s := newTestIndexer()
	ctx := context.Background()

	result, err := ix.IndexDocument(ctx, "doc-a", "hello world hello")
	if err != nil {
		t.Fatal(err)
	}
	if result.DocID != 1 || result.DocSize != 3 {
		t.Errorf("got %+v, want DocID=1 DocSize=3", result)
	}

	termValue, ok, err := s.Get(ctx, "hello")
	if err != nil || !ok {
		t.Fatalf("missing term record for 'hello': ok=%v err=%v", ok, err)
	}
	rec, err := codec.DecodeTermRecord("hello", termValue)
	if err != nil {
		t.Fatal(err)
	}
	if len(rec.Postings) != 1 || rec.Postings[0] != (codec.Posting{DocID: 1, Count: 2}) {
		t.Errorf("got postings %+v, want one posting {1 2}", rec.Postings)
	}

	docValue, ok, err := s.Get(ctx, keys.DocumentKey(1))
	if err != nil || !ok {
		t.Fatalf("missing document record: ok=%v err=%v", ok, err)
	}
	callerKey := codec.ExtractCallerKey(docValue)
	if callerKey != "doc-a" {
		t.Errorf("got caller key %q, want doc-a", callerKey)
	}
}

func TestIndexDocumentRejectsDuplicateCallerKey(t *testing.T) {
	ix, _ := newTestIndexer()
	ctx := context.Background()

	if _, err := ix.IndexDocument(ctx, "doc-a", "hello"); err != nil {
		t.Fatal(err)
	}
	_, err := ix.IndexDocument(ctx, "doc-a", "anything")
	if _, ok := err.(*errs.AlreadyIndexed); !ok {
		t.Fatalf("got %v (%T), want *errs.AlreadyIndexed", err, err)
	}
}

func TestIndexDocumentAccumulatesPostingsAcrossDocuments(t *testing.T) {
	ix, s := newTestIndexer()
	ctx := context.Background()

	if _, err := ix.IndexDocument(ctx, "doc-a", "hello world"); err != nil {
		t.Fatal(err)
	}
	if _, err := ix.IndexDocument(ctx, "doc-b", "hello there"); err != nil {
		t.Fatal(err)
	}

	termValue, _, err := s.Get(ctx, "hello")
	if err != nil {
		t.Fatal(err)
	}
	rec, err := codec.DecodeTermRecord("hello", termValue)
	if err != nil {
		t.Fatal(err)
	}
	if len(rec.Postings) != 2 {
		t.Errorf("got %d postings, want 2", len(rec.Postings))
	}
	if rec.CFreq != 2 {
		t.Errorf("got cfreq %d, want 2", rec.CFreq)
	}
}
