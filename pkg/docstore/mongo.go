package docstore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoDocument struct {
	Key                  string    `bson:"_id"`
	Document             string    `bson:"document"`
	ModificationDateTime time.Time `bson:"modificationdatetime"`
}

// MongoStore keeps each document in its own record keyed by _id.
type MongoStore struct {
	Collection *mongo.Collection
}

func NewMongoStore(collection *mongo.Collection) *MongoStore {
	return &MongoStore{Collection: collection}
}

func (s *MongoStore) Name() string {
	return "mongo"
}

func (s *MongoStore) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	if s.Collection == nil {
		return nil, errors.New("mongo collection not connected")
	}

	var document mongoDocument
	err := s.Collection.FindOne(ctx, bson.M{"_id": key}).Decode(&document)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("%s: %w", key, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}

	return io.NopCloser(strings.NewReader(document.Document)), nil
}

func (s *MongoStore) Write(ctx context.Context, key string, document []byte) error {
	if s.Collection == nil {
		return errors.New("mongo collection not connected")
	}

	opts := options.Replace().SetUpsert(true)
	_, err := s.Collection.ReplaceOne(ctx, bson.M{"_id": key}, mongoDocument{
		Key:                  key,
		Document:             string(document),
		ModificationDateTime: time.Now(),
	}, opts)

	return err
}
