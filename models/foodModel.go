package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Food documents are created outside this backend; the handlers only read
// them and bump the like/dislike counters.
type Food struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name        string             `bson:"name" json:"name" validate:"required,min=2,max=100"`
	Description string             `bson:"description" json:"description"`
	Price       float64            `bson:"price" json:"price" validate:"gte=0"`
	Category    string             `bson:"category" json:"category"`
	Image       string             `bson:"image" json:"image"`
	Likes       int64              `bson:"likes" json:"likes" validate:"gte=0"`
	Dislikes    int64              `bson:"dislikes" json:"dislikes" validate:"gte=0"`
}
