package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User documents are mostly schemaless: clients may attach arbitrary
// profile fields at signup and they are stored as sent. Only the fields
// the backend itself reads are named here; userName is unique across the
// collection.
type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	UserName string             `bson:"userName" json:"userName" validate:"required"`
}
