package controllers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/redis/go-redis/v9"
	"github.com/swipe-defend/property_review_system/backend/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const reviewCacheKey = "reviews:all"
const reviewCacheTTL = 10 * time.Minute

// GetReviews lists every review. The response is cached because this is the
// one unguarded list endpoint; a nil redis client disables the cache.
func GetReviews(reviews Collection, redisClient *redis.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if redisClient != nil {
			cached, err := redisClient.Get(r.Context(), reviewCacheKey).Result()
			if err == nil {
				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte(cached))
				return
			}
			if err != redis.Nil {
				log.Printf("Redis GET error for key %s: %v", reviewCacheKey, err)
			}
		}

		ctx, cancel := dbContext(r.Context())
		defer cancel()

		cursor, err := reviews.Find(ctx, bson.M{})
		if err != nil {
			log.Printf("Error fetching reviews: %v", err)
			http.Error(w, "Failed to fetch reviews", http.StatusInternalServerError)
			return
		}
		defer cursor.Close(ctx)

		results := []models.Review{}
		if err := cursor.All(ctx, &results); err != nil {
			log.Printf("Error decoding reviews: %v", err)
			http.Error(w, "Failed to fetch reviews", http.StatusInternalServerError)
			return
		}

		body, err := json.Marshal(results)
		if err != nil {
			log.Printf("Error encoding reviews: %v", err)
			http.Error(w, "Failed to fetch reviews", http.StatusInternalServerError)
			return
		}

		if redisClient != nil {
			if err := redisClient.Set(r.Context(), reviewCacheKey, body, reviewCacheTTL).Err(); err != nil {
				log.Printf("Redis SET error for key %s: %v", reviewCacheKey, err)
			}
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write(body)
	}
}

func CreateReview(reviews Collection, redisClient *redis.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var review models.Review
		if err := json.NewDecoder(r.Body).Decode(&review); err != nil {
			log.Printf("Error decoding review: %v", err)
			http.Error(w, "Invalid request payload", http.StatusBadRequest)
			return
		}

		review.ID = primitive.NewObjectID()

		ctx, cancel := dbContext(r.Context())
		defer cancel()

		result, err := reviews.InsertOne(ctx, review)
		if err != nil {
			log.Printf("Error inserting review: %v", err)
			http.Error(w, "Failed to create review", http.StatusInternalServerError)
			return
		}

		go deleteReviewCache(redisClient)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(InsertResponse{InsertedID: result.InsertedID})
	}
}

type reviewUpdate struct {
	Name    string  `json:"name"`
	Details string  `json:"details"`
	Rating  float64 `json:"rating"`
}

// UpdateReview replaces exactly the name, details and rating fields.
func UpdateReview(reviews Collection, redisClient *redis.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := mux.Vars(r)["id"]
		objID, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			log.Printf("Invalid review ID format: %v", err)
			http.Error(w, "Invalid review ID format", http.StatusBadRequest)
			return
		}

		var update reviewUpdate
		if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
			log.Printf("Error decoding review update: %v", err)
			http.Error(w, "Invalid request payload", http.StatusBadRequest)
			return
		}

		ctx, cancel := dbContext(r.Context())
		defer cancel()

		result, err := reviews.UpdateOne(ctx, bson.M{"_id": objID}, bson.M{"$set": bson.M{
			"name":    update.Name,
			"details": update.Details,
			"rating":  update.Rating,
		}})
		if err != nil {
			log.Printf("Error updating review %s: %v", id, err)
			http.Error(w, "Failed to update review", http.StatusInternalServerError)
			return
		}

		go deleteReviewCache(redisClient)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(UpdateResponse{MatchedCount: result.MatchedCount, ModifiedCount: result.ModifiedCount})
	}
}

func DeleteReview(reviews Collection, redisClient *redis.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := mux.Vars(r)["id"]
		objID, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			log.Printf("Invalid review ID format: %v", err)
			http.Error(w, "Invalid review ID format", http.StatusBadRequest)
			return
		}

		ctx, cancel := dbContext(r.Context())
		defer cancel()

		result, err := reviews.DeleteOne(ctx, bson.M{"_id": objID})
		if err != nil {
			log.Printf("Error deleting review %s: %v", id, err)
			http.Error(w, "Failed to delete review", http.StatusInternalServerError)
			return
		}

		go deleteReviewCache(redisClient)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(DeleteResponse{DeletedCount: result.DeletedCount})
	}
}

func deleteReviewCache(redisClient *redis.Client) {
	if redisClient == nil {
		return
	}
	ctx, cancel := dbContext(context.Background())
	defer cancel()
	if err := redisClient.Del(ctx, reviewCacheKey).Err(); err != nil {
		log.Printf("Redis DEL error for key %s: %v", reviewCacheKey, err)
	}
}
