package store

import (
	"context"
	"fmt"

	"github.com/gitpan/Search-FreeText/errs"
	"gopkg.in/mgo.v2"
	"gopkg.in/mgo.v2/bson"
)

// mongoKeyValue is one document in the backing collection: _id is the
// engine's string key directly, so Get/Put/Delete are single-document
// operations with no secondary index needed.
type mongoKeyValue struct {
	Key   string `bson:"_id"`
	Value string `bson:"value"`
}

// MongoStore wraps gopkg.in/mgo.v2 as a Store backend: one collection,
// keyed by the engine's own string keys.
type MongoStore struct {
	URL        string
	Database   string
	Collection string

	session *mgo.Session
}

// NewMongoStore returns a Store backed by a single collection in a
// MongoDB database reached at url.
func NewMongoStore(url, database, collection string) *MongoStore {
	return &MongoStore{URL: url, Database: database, Collection: collection}
}

func (s *MongoStore) Open(ctx context.Context) error {
	session, err := mgo.Dial(s.URL)
	if err != nil {
		return &errs.Store{Op: "open", Err: fmt.Errorf("mongo: %w", err)}
	}
	if err := session.Ping(); err != nil {
		session.Close()
		return &errs.Store{Op: "open", Err: fmt.Errorf("mongo ping: %w", err)}
	}
	session.SetMode(mgo.Monotonic, true)
	s.session = session
	return nil
}

func (s *MongoStore) Close(ctx context.Context) error {
	if s.session != nil {
		s.session.Close()
		s.session = nil
	}
	return nil
}

func (s *MongoStore) coll() *mgo.Collection {
	return s.session.DB(s.Database).C(s.Collection)
}

func (s *MongoStore) Get(ctx context.Context, key string) (string, bool, error) {
	var doc mongoKeyValue
	err := s.coll().FindId(key).One(&doc)
	if err == mgo.ErrNotFound {
		return "", false, nil
	}
	if err != nil {
		return "", false, &errs.Store{Op: "get", Key: key, Err: err}
	}
	return doc.Value, true, nil
}

func (s *MongoStore) Put(ctx context.Context, key, value string) error {
	_, err := s.coll().UpsertId(key, mongoKeyValue{Key: key, Value: value})
	if err != nil {
		return &errs.Store{Op: "put", Key: key, Err: err}
	}
	return nil
}

func (s *MongoStore) Delete(ctx context.Context, key string) error {
	err := s.coll().RemoveId(key)
	if err != nil && err != mgo.ErrNotFound {
		return &errs.Store{Op: "delete", Key: key, Err: err}
	}
	return nil
}

func (s *MongoStore) Clear(ctx context.Context) error {
	_, err := s.coll().RemoveAll(bson.M{})
	if err != nil {
		return &errs.Store{Op: "clear", Err: err}
	}
	return nil
}
