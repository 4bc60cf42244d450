package storage

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names used by the backend.
const (
	FoodCollection   = "foods"
	UserCollection   = "users"
	ReviewCollection = "reviews"
)

var (
	// ErrInvalidID marks a path id that is not a well-formed ObjectID hex.
	ErrInvalidID = errors.New("invalid identifier")
	// ErrNotFound marks an update whose target document does not exist.
	ErrNotFound = errors.New("document not found")
)

// Gateway is the single owner of database access. Handlers never touch
// collections directly; they go through one shared Gateway, which the
// driver keeps safe for concurrent use.
type Gateway struct {
	db *mongo.Database
}

func NewGateway(db *mongo.Database) *Gateway {
	return &Gateway{db: db}
}

// ListAll returns every document in the collection. An empty collection
// yields an empty slice, not an error.
func (g *Gateway) ListAll(ctx context.Context, collection string) ([]bson.M, error) {
	cursor, err := g.db.Collection(collection).Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", collection, err)
	}
	docs := []bson.M{}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", collection, err)
	}
	return docs, nil
}

// GetByID returns the document with the given id, or (nil, nil) when no
// document matches. A malformed id is ErrInvalidID, not a miss.
func (g *Gateway) GetByID(ctx context.Context, collection, id string) (bson.M, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}

	var doc bson.M
	err = g.db.Collection(collection).FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("finding %s/%s: %w", collection, id, err)
	}
	return doc, nil
}

// Insert stores the document and returns the assigned id in hex form.
func (g *Gateway) Insert(ctx context.Context, collection string, doc interface{}) (string, error) {
	result, err := g.db.Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("inserting into %s: %w", collection, err)
	}
	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return fmt.Sprintf("%v", result.InsertedID), nil
	}
	return oid.Hex(), nil
}

// FindByField returns the first document whose field equals value, or
// (nil, nil) when none matches.
func (g *Gateway) FindByField(ctx context.Context, collection, field string, value interface{}) (bson.M, error) {
	var doc bson.M
	err := g.db.Collection(collection).FindOne(ctx, bson.M{field: value}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("finding %s by %s: %w", collection, field, err)
	}
	return doc, nil
}

// IncrementField atomically adds delta to a counter field and returns the
// post-update document, so callers can report the new value without a
// second read.
func (g *Gateway) IncrementField(ctx context.Context, collection, id, field string, delta int) (bson.M, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	update := bson.M{"$inc": bson.M{field: delta}}

	var doc bson.M
	err = g.db.Collection(collection).FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("%w: %s/%s", ErrNotFound, collection, id)
	}
	if err != nil {
		return nil, fmt.Errorf("updating %s/%s: %w", collection, id, err)
	}
	return doc, nil
}

// IsDuplicateKey reports whether err is a unique-index violation.
func IsDuplicateKey(err error) bool {
	return mongo.IsDuplicateKeyError(err)
}
