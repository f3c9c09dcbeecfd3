package controllers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/swipe-defend/property_review_system/backend/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func CreateContactMessage(contact Collection) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var msg models.ContactMessage
		if err := json.NewDecoder(r.Body).Decode(&msg); err != nil {
			log.Printf("Error decoding contact message: %v", err)
			http.Error(w, "Invalid request payload", http.StatusBadRequest)
			return
		}

		msg.ID = primitive.NewObjectID()

		ctx, cancel := dbContext(r.Context())
		defer cancel()

		result, err := contact.InsertOne(ctx, msg)
		if err != nil {
			log.Printf("Error inserting contact message: %v", err)
			http.Error(w, "Failed to create contact message", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(InsertResponse{InsertedID: result.InsertedID})
	}
}

func GetContactMessages(contact Collection) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := dbContext(r.Context())
		defer cancel()

		cursor, err := contact.Find(ctx, bson.M{})
		if err != nil {
			log.Printf("Error fetching contact messages: %v", err)
			http.Error(w, "Failed to fetch contact messages", http.StatusInternalServerError)
			return
		}
		defer cursor.Close(ctx)

		results := []models.ContactMessage{}
		if err := cursor.All(ctx, &results); err != nil {
			log.Printf("Error decoding contact messages: %v", err)
			http.Error(w, "Failed to fetch contact messages", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(results)
	}
}

type contactStatusUpdate struct {
	Status string `json:"status"`
}

// UpdateContactStatus replaces only the status field.
func UpdateContactStatus(contact Collection) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := mux.Vars(r)["id"]
		objID, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			log.Printf("Invalid contact ID format: %v", err)
			http.Error(w, "Invalid contact ID format", http.StatusBadRequest)
			return
		}

		var update contactStatusUpdate
		if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
			log.Printf("Error decoding contact status update: %v", err)
			http.Error(w, "Invalid request payload", http.StatusBadRequest)
			return
		}

		ctx, cancel := dbContext(r.Context())
		defer cancel()

		result, err := contact.UpdateOne(ctx, bson.M{"_id": objID}, bson.M{"$set": bson.M{"status": update.Status}})
		if err != nil {
			log.Printf("Error updating contact message %s: %v", id, err)
			http.Error(w, "Failed to update contact message", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(UpdateResponse{MatchedCount: result.MatchedCount, ModifiedCount: result.ModifiedCount})
	}
}

func DeleteContactMessage(contact Collection) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := mux.Vars(r)["id"]
		objID, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			log.Printf("Invalid contact ID format: %v", err)
			http.Error(w, "Invalid contact ID format", http.StatusBadRequest)
			return
		}

		ctx, cancel := dbContext(r.Context())
		defer cancel()

		result, err := contact.DeleteOne(ctx, bson.M{"_id": objID})
		if err != nil {
			log.Printf("Error deleting contact message %s: %v", id, err)
			http.Error(w, "Failed to delete contact message", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(DeleteResponse{DeletedCount: result.DeletedCount})
	}
}
