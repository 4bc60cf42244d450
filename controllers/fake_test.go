package controller_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	controller "github.com/tasmiakhaled/foodWebsite-server/controllers"
	"github.com/tasmiakhaled/foodWebsite-server/routes"
	"github.com/tasmiakhaled/foodWebsite-server/storage"
)

// fakeStore mimics the mongo gateway's contract in memory: malformed ids
// are errors, misses are (nil, nil), increments return the post-update
// document.
type fakeStore struct {
	docs      map[string][]bson.M
	insertErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{docs: map[string][]bson.M{}}
}

func (f *fakeStore) ListAll(ctx context.Context, collection string) ([]bson.M, error) {
	return append([]bson.M{}, f.docs[collection]...), nil
}

func (f *fakeStore) GetByID(ctx context.Context, collection, id string) (bson.M, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", storage.ErrInvalidID, id)
	}
	for _, doc := range f.docs[collection] {
		if doc["_id"] == oid {
			return doc, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) Insert(ctx context.Context, collection string, doc interface{}) (string, error) {
	if f.insertErr != nil {
		return "", f.insertErr
	}
	raw, err := bson.Marshal(doc)
	if err != nil {
		return "", err
	}
	var m bson.M
	if err := bson.Unmarshal(raw, &m); err != nil {
		return "", err
	}
	oid := primitive.NewObjectID()
	m["_id"] = oid
	f.docs[collection] = append(f.docs[collection], m)
	return oid.Hex(), nil
}

func (f *fakeStore) FindByField(ctx context.Context, collection, field string, value interface{}) (bson.M, error) {
	for _, doc := range f.docs[collection] {
		if doc[field] == value {
			return doc, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) IncrementField(ctx context.Context, collection, id, field string, delta int) (bson.M, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", storage.ErrInvalidID, id)
	}
	for _, doc := range f.docs[collection] {
		if doc["_id"] != oid {
			continue
		}
		var current int64
		switch v := doc[field].(type) {
		case int32:
			current = int64(v)
		case int64:
			current = v
		case int:
			current = int64(v)
		}
		doc[field] = current + int64(delta)
		return doc, nil
	}
	return nil, fmt.Errorf("%w: %s/%s", storage.ErrNotFound, collection, id)
}

func newTestRouter(t *testing.T, h *controller.Handler, uploadDir string) *mux.Router {
	t.Helper()
	router := mux.NewRouter()
	routes.FoodRoutes(router, h)
	routes.UserRoutes(router, h)
	routes.ReviewRoutes(router, h)
	routes.StaticRoutes(router, uploadDir)
	routes.HealthRoutes(router, h)
	return router
}
