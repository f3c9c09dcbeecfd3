package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type ContactMessage struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name    string             `bson:"name" json:"name"`
	Email   string             `bson:"email" json:"email"`
	Phone   string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Message string             `bson:"message" json:"message"`
	Status  string             `bson:"status,omitempty" json:"status,omitempty"`
}
