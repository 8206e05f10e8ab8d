package store

import (
	"context"
	"path/filepath"
	"testing"
)

func TestKVStoreOpenCreatesFile(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "index.kv")
	s := NewKVStore(path)
	if err := s.Open(ctx); err != nil {
		t.Fatal(err)
	}
	defer s.Close(ctx)

	if err := s.Put(ctx, "k", "v"); err != nil {
		t.Fatal(err)
	}
	got, ok, err := s.Get(ctx, "k")
	if err != nil {
		t.Fatal(err)
	}
	if !ok || got != "v" {
		t.Errorf("got (%q, %v), want (v, true)", got, ok)
	}
}

func TestKVStoreGetMissingKey(t *testing.T) {
	ctx := context.Background()
	s := NewKVStore(filepath.Join(t.TempDir(), "index.kv"))
	if err := s.Open(ctx); err != nil {
		t.Fatal(err)
	}
	defer s.Close(ctx)

	_, ok, err := s.Get(ctx, "missing")
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Error("got ok=true for missing key")
	}
}

func TestKVStoreDeleteAndClear(t *testing.T) {
	ctx := context.Background()
	s := NewKVStore(filepath.Join(t.TempDir(), "index.kv"))
	if err := s.Open(ctx); err != nil {
		t.Fatal(err)
	}
	defer s.Close(ctx)

	for _, k := range []string{"a", "b", "c"} {
		if err := s.Put(ctx, k, k+"-value"); err != nil {
			t.Fatal(err)
		}
	}
	if err := s.Delete(ctx, "b"); err != nil {
		t.Fatal(err)
	}
	if _, ok, _ := s.Get(ctx, "b"); ok {
		t.Error("key 'b' still present after Delete")
	}
	if _, ok, _ := s.Get(ctx, "a"); !ok {
		t.Error("key 'a' missing after unrelated Delete")
	}

	if err := s.Clear(ctx); err != nil {
		t.Fatal(err)
	}
	for _, k := range []string{"a", "c"} {
		if _, ok, _ := s.Get(ctx, k); ok {
			t.Errorf("key %q still present after Clear", k)
		}
	}
}

func TestKVStoreReopenPersists(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "index.kv")

	s1 := NewKVStore(path)
	if err := s1.Open(ctx); err != nil {
		t.Fatal(err)
	}
	if err := s1.Put(ctx, "durable", "yes"); err != nil {
		t.Fatal(err)
	}
	if err := s1.Close(ctx); err != nil {
		t.Fatal(err)
	}

	s2 := NewKVStore(path)
	if err := s2.Open(ctx); err != nil {
		t.Fatal(err)
	}
	defer s2.Close(ctx)
	got, ok, err := s2.Get(ctx, "durable")
	if err != nil {
		t.Fatal(err)
	}
	if !ok || got != "yes" {
		t.Errorf("got (%q, %v), want (yes, true)", got, ok)
	}
}
