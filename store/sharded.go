package store

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/gitpan/Search-FreeText/errs"
)

// ShardedStore fans a single logical key space out across N physical
// Store instances, routing each key by the Murmur3 hash of its bytes.
// This is an operational scaling knob, not a semantic change: every key
// still maps to exactly one shard deterministically, so Get after Put is
// always consistent and the core's single-writer-per-key invariant is
// unaffected.
type ShardedStore struct {
	shards []Store
}

// NewShardedStore fans out across shards. len(shards) must be > 0.
func NewShardedStore(shards []Store) *ShardedStore {
	return &ShardedStore{shards: shards}
}

func (s *ShardedStore) shardFor(key string) Store {
	n := uint32(len(s.shards))
	return s.shards[Murmur3([]byte(key))%n]
}

func (s *ShardedStore) Open(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, shard := range s.shards {
		shard := shard
		g.Go(func() error { return shard.Open(ctx) })
	}
	if err := g.Wait(); err != nil {
		return &errs.Store{Op: "open", Err: err}
	}
	return nil
}

func (s *ShardedStore) Close(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, shard := range s.shards {
		shard := shard
		g.Go(func() error { return shard.Close(ctx) })
	}
	if err := g.Wait(); err != nil {
		return &errs.Store{Op: "close", Err: err}
	}
	return nil
}

func (s *ShardedStore) Get(ctx context.Context, key string) (string, bool, error) {
	return s.shardFor(key).Get(ctx, key)
}

func (s *ShardedStore) Put(ctx context.Context, key, value string) error {
	return s.shardFor(key).Put(ctx, key, value)
}

func (s *ShardedStore) Delete(ctx context.Context, key string) error {
	return s.shardFor(key).Delete(ctx, key)
}

func (s *ShardedStore) Clear(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, shard := range s.shards {
		shard := shard
		g.Go(func() error { return shard.Clear(ctx) })
	}
	if err := g.Wait(); err != nil {
		return &errs.Store{Op: "clear", Err: err}
	}
	return nil
}
