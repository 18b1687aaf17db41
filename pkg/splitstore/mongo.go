package splitstore

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoStore is a MongoDB-backed split store for shared deployments where
// several training jobs consume the same pinned split assignment.
type MongoStore struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// NewMongoStore connects to MongoDB and uses the given database and
// collection for split records.
func NewMongoStore(ctx context.Context, uri, database, collection string) (*MongoStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect to mongodb: %w", err)
	}
	return &MongoStore{
		client: client,
		coll:   client.Database(database).Collection(collection),
	}, nil
}

// Save upserts the record by id.
func (s *MongoStore) Save(ctx context.Context, rec *Record) error {
	opts := options.Replace().SetUpsert(true)
	if _, err := s.coll.ReplaceOne(ctx, bson.M{"_id": rec.ID}, rec, opts); err != nil {
		return fmt.Errorf("save split record: %w", err)
	}
	return nil
}

// Get retrieves a record by id.
func (s *MongoStore) Get(ctx context.Context, id string) (*Record, error) {
	var rec Record
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&rec)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get split record: %w", err)
	}
	return &rec, nil
}

// List returns all records, newest first.
func (s *MongoStore) List(ctx context.Context) ([]*Record, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := s.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list split records: %w", err)
	}
	defer cursor.Close(ctx)

	var records []*Record
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("decode split records: %w", err)
	}
	return records, nil
}

// Close disconnects the underlying client.
func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// Ensure MongoStore implements Store.
var _ Store = (*MongoStore)(nil)
