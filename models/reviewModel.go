package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Review is submitted as a multipart form. Rating arrives as a form field
// and is kept as the client sent it. Image is nil when no file was
// uploaded.
type Review struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name   string             `bson:"name" json:"name" validate:"required"`
	Email  string             `bson:"email" json:"email" validate:"required,email"`
	Rating string             `bson:"rating" json:"rating" validate:"required,numeric"`
	Review string             `bson:"review" json:"review" validate:"required"`
	Image  *string            `bson:"image" json:"image"`
}
