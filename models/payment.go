package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment references a property and a user by value only; nothing enforces
// that either exists.
type Payment struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email      string             `bson:"email" json:"email"`
	PropertyID string             `bson:"propertyId" json:"propertyId"`
	Amount     float64            `bson:"amount" json:"amount"`
	Currency   string             `bson:"currency" json:"currency"`
	Date       time.Time          `bson:"date" json:"date"`
}
