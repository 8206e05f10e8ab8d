// Package registry maintains the global record and the caller-key <->
// docId mapping: component C of the engine (SPEC_FULL.md §4.C).
package registry

import (
	"context"
	"strconv"

	"github.com/gitpan/Search-FreeText/codec"
	"github.com/gitpan/Search-FreeText/errs"
	"github.com/gitpan/Search-FreeText/keys"
	"github.com/gitpan/Search-FreeText/store"
)

// Registry reads and writes the global record and the reverse-lookup
// entries against a Store. It holds no state of its own between calls.
type Registry struct {
	Store store.Store
}

// New returns a Registry backed by s.
func New(s store.Store) *Registry {
	return &Registry{Store: s}
}

// Globals returns the current (docCount, totalTerms, freeHead), failing
// with errs.EmptyIndex when the global record is absent.
func (r *Registry) Globals(ctx context.Context) (codec.Global, error) {
	value, ok, err := r.Store.Get(ctx, keys.GlobalKey)
	if err != nil {
		return codec.Global{}, err
	}
	if !ok {
		return codec.Global{}, &errs.EmptyIndex{}
	}
	return codec.DecodeGlobal(value)
}

// Allocate assigns a fresh docId to callerKey, threading the free-list
// when one is populated (SPEC_FULL.md §4.C/§9). It fails with
// errs.AlreadyIndexed, making no writes, when callerKey already has a
// reverse-lookup entry.
func (r *Registry) Allocate(ctx context.Context, callerKey string, docSize int) (uint64, error) {
	reverseKey := keys.ReverseLookupKey(callerKey)
	if _, ok, err := r.Store.Get(ctx, reverseKey); err != nil {
		return 0, err
	} else if ok {
		return 0, &errs.AlreadyIndexed{CallerKey: callerKey}
	}

	value, ok, err := r.Store.Get(ctx, keys.GlobalKey)
	if err != nil {
		return 0, err
	}
	g := codec.Global{}
	if ok {
		g, err = codec.DecodeGlobal(value)
		if err != nil {
			return 0, err
		}
	}

	var docID uint64
	next := codec.Global{TotalTerms: g.TotalTerms + uint64(docSize)}
	if g.FreeHead == "" {
		docID = g.DocCount + 1
		next.DocCount = docID
		next.FreeHead = ""
	} else {
		freeID, err := strconv.ParseUint(g.FreeHead, 10, 64)
		if err != nil {
			return 0, &errs.Corruption{Key: keys.GlobalKey, Reason: "freeHead: " + err.Error()}
		}
		freeRecValue, ok, err := r.Store.Get(ctx, keys.DocumentKey(freeID))
		if err != nil {
			return 0, err
		}
		if !ok {
			return 0, &errs.Corruption{Key: keys.DocumentKey(freeID), Reason: "free-list head has no document record"}
		}
		// A free-list slot's per-document record carries only the
		// next free id, per SPEC_FULL.md §9's dormant free-list
		// design: it is never populated by a public operation today,
		// so this path is documented but unreachable in practice.
		docID = freeID
		next.FreeHead = freeRecValue
		next.DocCount = g.DocCount
	}

	if err := r.Store.Put(ctx, keys.GlobalKey, codec.EncodeGlobal(next)); err != nil {
		return 0, err
	}
	if err := r.Store.Put(ctx, reverseKey, strconv.FormatUint(docID, 10)); err != nil {
		return 0, err
	}
	return docID, nil
}

// Clear empties the entire backing store. The next allocation starts
// from id 1.
func (r *Registry) Clear(ctx context.Context) error {
	return r.Store.Clear(ctx)
}
