package controller

import (
	"context"
	"io"
	"time"

	"github.com/go-playground/validator"
	"go.mongodb.org/mongo-driver/bson"
)

const requestTimeout = 10 * time.Second

var validate = validator.New()

// Store is the persistence surface the handlers depend on. The mongo
// gateway implements it in production; tests substitute an in-memory
// fake.
type Store interface {
	ListAll(ctx context.Context, collection string) ([]bson.M, error)
	GetByID(ctx context.Context, collection, id string) (bson.M, error)
	Insert(ctx context.Context, collection string, doc interface{}) (string, error)
	FindByField(ctx context.Context, collection, field string, value interface{}) (bson.M, error)
	IncrementField(ctx context.Context, collection, id, field string, delta int) (bson.M, error)
}

// FileSink stores uploaded review images.
type FileSink interface {
	Store(file io.Reader, originalName, contentType string) (string, error)
	Remove(ref string) error
}

// Handler carries the shared collaborators into each request. It holds no
// per-request state.
type Handler struct {
	store Store
	sink  FileSink
}

func NewHandler(store Store, sink FileSink) *Handler {
	return &Handler{store: store, sink: sink}
}
