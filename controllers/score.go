package controllers

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/swipe-defend/property_review_system/backend/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func GetScoreHistory(scores Collection) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := dbContext(r.Context())
		defer cancel()

		cursor, err := scores.Find(ctx, bson.M{})
		if err != nil {
			log.Printf("Error fetching score history: %v", err)
			http.Error(w, "Failed to fetch score history", http.StatusInternalServerError)
			return
		}
		defer cursor.Close(ctx)

		results := []models.ScoreHistory{}
		if err := cursor.All(ctx, &results); err != nil {
			log.Printf("Error decoding score history: %v", err)
			http.Error(w, "Failed to fetch score history", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(results)
	}
}

// GetScoreHistoryByEmail lists score entries for one email, in storage order.
func GetScoreHistoryByEmail(scores Collection) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		email := mux.Vars(r)["email"]

		ctx, cancel := dbContext(r.Context())
		defer cancel()

		cursor, err := scores.Find(ctx, bson.M{"email": email})
		if err != nil {
			log.Printf("Error fetching score history for %s: %v", email, err)
			http.Error(w, "Failed to fetch score history", http.StatusInternalServerError)
			return
		}
		defer cursor.Close(ctx)

		results := []models.ScoreHistory{}
		if err := cursor.All(ctx, &results); err != nil {
			log.Printf("Error decoding score history for %s: %v", email, err)
			http.Error(w, "Failed to fetch score history", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(results)
	}
}

func AddScoreEntry(scores Collection) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var entry models.ScoreHistory
		if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
			log.Printf("Error decoding score entry: %v", err)
			http.Error(w, "Invalid request payload", http.StatusBadRequest)
			return
		}

		entry.ID = primitive.NewObjectID()
		if entry.Date.IsZero() {
			entry.Date = time.Now()
		}

		ctx, cancel := dbContext(r.Context())
		defer cancel()

		result, err := scores.InsertOne(ctx, entry)
		if err != nil {
			log.Printf("Error inserting score entry: %v", err)
			http.Error(w, "Failed to create score entry", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(InsertResponse{InsertedID: result.InsertedID})
	}
}
