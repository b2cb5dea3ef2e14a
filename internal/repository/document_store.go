package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrStoreUnavailable is returned when the database handle was never initialized.
var ErrStoreUnavailable = errors.New("database not configured")

const defaultTimeout = 5 * time.Second

// DocumentStore is a thin adapter over a Mongo database. A nil database is
// valid and makes every data call fail with ErrStoreUnavailable.
type DocumentStore struct {
	db      *mongo.Database
	timeout time.Duration
	now     func() time.Time
}

func NewDocumentStore(db *mongo.Database, timeout time.Duration) *DocumentStore {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &DocumentStore{
		db:      db,
		timeout: timeout,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// Available reports whether a database handle was configured.
func (s *DocumentStore) Available() bool {
	return s != nil && s.db != nil
}

// Name returns the database name, or "" when unavailable.
func (s *DocumentStore) Name() string {
	if !s.Available() {
		return ""
	}
	return s.db.Name()
}

// Insert stores record in collection and returns the new identifier.
func (s *DocumentStore) Insert(ctx context.Context, collection string, record any) (string, error) {
	if !s.Available() {
		return "", ErrStoreUnavailable
	}

	doc, err := toDocument(record)
	if err != nil {
		return "", fmt.Errorf("encode %s document: %w", collection, err)
	}
	now := s.now()
	doc["created_at"] = now
	doc["updated_at"] = now

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	res, err := s.db.Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("insert into %s: %w", collection, err)
	}

	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		return oid.Hex(), nil
	}
	return fmt.Sprint(res.InsertedID), nil
}

// Query returns every document of collection matching filter.
func (s *DocumentStore) Query(ctx context.Context, collection string, filter bson.M) ([]bson.M, error) {
	if !s.Available() {
		return nil, ErrStoreUnavailable
	}
	if filter == nil {
		filter = bson.M{}
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	cursor, err := s.db.Collection(collection).Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", collection, err)
	}
	defer cursor.Close(ctx)

	docs := make([]bson.M, 0)
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode %s documents: %w", collection, err)
	}
	return docs, nil
}

// ListCollectionNames lists the collections of the database.
func (s *DocumentStore) ListCollectionNames(ctx context.Context) ([]string, error) {
	if !s.Available() {
		return nil, ErrStoreUnavailable
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	return s.db.ListCollectionNames(ctx, bson.D{})
}

func toDocument(record any) (bson.M, error) {
	raw, err := bson.Marshal(record)
	if err != nil {
		return nil, err
	}
	var doc bson.M
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}
