package database

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

const (
	ProductsCollection  = "product"
	ReviewsCollection   = "review"
	BlogPostsCollection = "blogpost"
	FAQsCollection      = "faq"
)

// Store is the document store the catalog is persisted in. Collections are
// addressed by name; documents are decoded into the caller's types.
type Store interface {
	Name() string
	Count(ctx context.Context, collection string) (int64, error)
	Insert(ctx context.Context, collection string, doc any) (string, error)
	// FindAll decodes every document matching filter into results, which
	// must be a pointer to a slice.
	FindAll(ctx context.Context, collection string, filter bson.M, results any) error
	// FindOne decodes the first match into result or returns ErrNotFound.
	FindOne(ctx context.Context, collection string, filter bson.M, result any) error
	CollectionNames(ctx context.Context) ([]string, error)
}

type mongoStore struct {
	db *mongo.Database
}

// NewMongoStore returns a Store backed by the named database of client.
func NewMongoStore(client *mongo.Client, databaseName string) Store {
	return &mongoStore{db: client.Database(databaseName)}
}

func (s *mongoStore) Name() string {
	return s.db.Name()
}

func (s *mongoStore) Count(ctx context.Context, collection string) (int64, error) {
	n, err := s.db.Collection(collection).CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, fmt.Errorf("count %s: %w", collection, err)
	}
	return n, nil
}

func (s *mongoStore) Insert(ctx context.Context, collection string, doc any) (string, error) {
	res, err := s.db.Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("insert into %s: %w", collection, err)
	}
	if oid, ok := res.InsertedID.(bson.ObjectID); ok {
		return oid.Hex(), nil
	}
	return fmt.Sprint(res.InsertedID), nil
}

func (s *mongoStore) FindAll(ctx context.Context, collection string, filter bson.M, results any) error {
	if filter == nil {
		filter = bson.M{}
	}
	cursor, err := s.db.Collection(collection).Find(ctx, filter)
	if err != nil {
		return fmt.Errorf("find in %s: %w", collection, err)
	}
	if err := cursor.All(ctx, results); err != nil {
		return fmt.Errorf("decode %s: %w", collection, err)
	}
	return nil
}

func (s *mongoStore) FindOne(ctx context.Context, collection string, filter bson.M, result any) error {
	err := s.db.Collection(collection).FindOne(ctx, filter).Decode(result)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("find one in %s: %w", collection, err)
	}
	return nil
}

func (s *mongoStore) CollectionNames(ctx context.Context) ([]string, error) {
	return s.db.ListCollectionNames(ctx, bson.D{})
}
