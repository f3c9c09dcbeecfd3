package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"`
	Role      string             `bson:"role,omitempty" json:"role,omitempty"`
	Photo     string             `bson:"photo,omitempty" json:"photo,omitempty"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}
