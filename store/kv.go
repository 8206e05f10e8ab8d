package store

import (
	"context"
	"fmt"
	"io"
	"sync"

	"modernc.org/kv"
	"github.com/gitpan/Search-FreeText/errs"
)

// KVStore wraps modernc.org/kv (formerly github.com/cznic/kv), an
// embedded ordered key-value B+tree file store. It is not selected
// automatically: Config.Store has no default. The end-to-end tests in
// this module run against MemStore, not KVStore.
type KVStore struct {
	Path string
	// Options are passed to kv.Open/kv.Create verbatim; the zero value
	// is fine for local development.
	Options kv.Options

	mu sync.Mutex
	db *kv.DB
}

// NewKVStore returns a Store backed by the modernc.org/kv file at path,
// created on first Open if it does not already exist.
func NewKVStore(path string) *KVStore {
	return &KVStore{Path: path}
}

func (s *KVStore) Open(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	opts := s.Options
	db, err := kv.Open(s.Path, &opts)
	if err != nil {
		db, err = kv.Create(s.Path, &opts)
		if err != nil {
			return &errs.Store{Op: "open", Err: fmt.Errorf("kv: %w", err)}
		}
	}
	s.db = db
	return nil
}

func (s *KVStore) Close(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	if err != nil {
		return &errs.Store{Op: "close", Err: err}
	}
	return nil
}

func (s *KVStore) Get(ctx context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	value, err := s.db.Get(nil, []byte(key))
	if err != nil {
		return "", false, &errs.Store{Op: "get", Key: key, Err: err}
	}
	if value == nil {
		return "", false, nil
	}
	return string(value), true, nil
}

func (s *KVStore) Put(ctx context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.db.Set([]byte(key), []byte(value)); err != nil {
		return &errs.Store{Op: "put", Key: key, Err: err}
	}
	return nil
}

func (s *KVStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.db.Delete([]byte(key)); err != nil {
		return &errs.Store{Op: "delete", Key: key, Err: err}
	}
	return nil
}

func (s *KVStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var keys [][]byte
	enum, err := s.db.SeekFirst()
	if err == io.EOF {
		return nil
	}
	if err != nil {
		return &errs.Store{Op: "clear", Err: err}
	}
	for {
		k, _, err := enum.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return &errs.Store{Op: "clear", Err: err}
		}
		keys = append(keys, append([]byte(nil), k...))
	}
	for _, k := range keys {
		if err := s.db.Delete(k); err != nil {
			return &errs.Store{Op: "clear", Key: string(k), Err: err}
		}
	}
	return nil
}
