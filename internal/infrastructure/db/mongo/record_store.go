package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const recordsCollection = "records"

// RecordStore is the MongoDB-backed key-value record store: one document per
// key, replaced wholesale on every write. Concurrent writers to the same key
// race and the last write wins, which is the store's documented contract.
type RecordStore struct {
	coll *mongo.Collection
}

func NewRecordStore(db *mongo.Database) *RecordStore {
	return &RecordStore{coll: db.Collection(recordsCollection)}
}

type recordDoc struct {
	Key       string `bson:"_id"`
	Value     []byte `bson:"value"`
	UpdatedAt int64  `bson:"updated_at"`
}

// Read returns the raw value stored under key, or (nil, nil) when absent.
func (s *RecordStore) Read(ctx context.Context, key string) ([]byte, error) {
	var doc recordDoc
	if err := s.coll.FindOne(ctx, bson.M{"_id": key}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("read record %q: %w", key, err)
	}
	return doc.Value, nil
}

// Write overwrites the value under key, creating the document if needed.
func (s *RecordStore) Write(ctx context.Context, key string, value []byte) error {
	doc := recordDoc{
		Key:       key,
		Value:     value,
		UpdatedAt: time.Now().UTC().Unix(),
	}
	opts := options.Replace().SetUpsert(true)
	if _, err := s.coll.ReplaceOne(ctx, bson.M{"_id": key}, doc, opts); err != nil {
		return fmt.Errorf("write record %q: %w", key, err)
	}
	return nil
}
