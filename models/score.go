package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ScoreHistory struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email string             `bson:"email" json:"email"`
	Score float64            `bson:"score" json:"score"`
	Date  time.Time          `bson:"date" json:"date"`
}
