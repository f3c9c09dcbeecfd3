package controllers

import (
	"context"
	"fmt"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// FakeCollection is an in-memory Collection used by handler and middleware
// tests. Documents are stored as bson maps; filters support the only shape
// the handlers use, field equality.
type FakeCollection struct {
	mu   sync.Mutex
	docs []bson.M

	InsertErr error
	FindErr   error
}

func NewFakeCollection(docs ...interface{}) *FakeCollection {
	fc := &FakeCollection{}
	for _, d := range docs {
		m, err := toBsonMap(d)
		if err != nil {
			panic(fmt.Sprintf("FakeCollection seed: %v", err))
		}
		fc.docs = append(fc.docs, m)
	}
	return fc
}

// Count reports the number of stored documents.
func (fc *FakeCollection) Count() int {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	return len(fc.docs)
}

// Docs returns a snapshot of the stored documents.
func (fc *FakeCollection) Docs() []bson.M {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	out := make([]bson.M, len(fc.docs))
	copy(out, fc.docs)
	return out
}

func (fc *FakeCollection) FindOne(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) *mongo.SingleResult {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	for _, doc := range fc.docs {
		if matches(doc, filter) {
			return mongo.NewSingleResultFromDocument(doc, nil, nil)
		}
	}
	return mongo.NewSingleResultFromDocument(bson.D{}, mongo.ErrNoDocuments, nil)
}

func (fc *FakeCollection) Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) (*mongo.Cursor, error) {
	if fc.FindErr != nil {
		return nil, fc.FindErr
	}
	fc.mu.Lock()
	defer fc.mu.Unlock()
	matched := []interface{}{}
	for _, doc := range fc.docs {
		if matches(doc, filter) {
			matched = append(matched, doc)
		}
	}
	return mongo.NewCursorFromDocuments(matched, nil, nil)
}

func (fc *FakeCollection) InsertOne(ctx context.Context, document interface{}, opts ...*options.InsertOneOptions) (*mongo.InsertOneResult, error) {
	if fc.InsertErr != nil {
		return nil, fc.InsertErr
	}
	m, err := toBsonMap(document)
	if err != nil {
		return nil, err
	}
	fc.mu.Lock()
	defer fc.mu.Unlock()
	fc.docs = append(fc.docs, m)
	return &mongo.InsertOneResult{InsertedID: m["_id"]}, nil
}

func (fc *FakeCollection) UpdateOne(ctx context.Context, filter interface{}, update interface{}, opts ...*options.UpdateOptions) (*mongo.UpdateResult, error) {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	set, _ := update.(bson.M)["$set"].(bson.M)
	for _, doc := range fc.docs {
		if matches(doc, filter) {
			for k, v := range set {
				doc[k] = v
			}
			return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
		}
	}
	return &mongo.UpdateResult{}, nil
}

func (fc *FakeCollection) DeleteOne(ctx context.Context, filter interface{}, opts ...*options.DeleteOptions) (*mongo.DeleteResult, error) {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	for i, doc := range fc.docs {
		if matches(doc, filter) {
			fc.docs = append(fc.docs[:i], fc.docs[i+1:]...)
			return &mongo.DeleteResult{DeletedCount: 1}, nil
		}
	}
	return &mongo.DeleteResult{}, nil
}

func matches(doc bson.M, filter interface{}) bool {
	f, ok := filter.(bson.M)
	if !ok {
		return false
	}
	for k, want := range f {
		if doc[k] != want {
			return false
		}
	}
	return true
}

func toBsonMap(document interface{}) (bson.M, error) {
	raw, err := bson.Marshal(document)
	if err != nil {
		return nil, err
	}
	var m bson.M
	if err := bson.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	return m, nil
}
