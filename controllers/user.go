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
	"go.mongodb.org/mongo-driver/mongo"
)

func GetUsers(users Collection) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := dbContext(r.Context())
		defer cancel()

		cursor, err := users.Find(ctx, bson.M{})
		if err != nil {
			log.Printf("Error fetching users: %v", err)
			http.Error(w, "Failed to fetch users", http.StatusInternalServerError)
			return
		}
		defer cursor.Close(ctx)

		results := []models.User{}
		if err := cursor.All(ctx, &results); err != nil {
			log.Printf("Error decoding users: %v", err)
			http.Error(w, "Failed to fetch users", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(results)
	}
}

// GetSingleUser returns the stored user for an email, or null when absent.
// Self-access only: the requested email must match the caller's.
func GetSingleUser(users Collection) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		email := mux.Vars(r)["email"]

		callerEmail, ok := r.Context().Value(UserEmailKey).(string)
		if !ok || callerEmail != email {
			http.Error(w, "forbidden access", http.StatusForbidden)
			return
		}

		ctx, cancel := dbContext(r.Context())
		defer cancel()

		var user models.User
		err := users.FindOne(ctx, bson.M{"email": email}).Decode(&user)
		if err == mongo.ErrNoDocuments {
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(nil)
			return
		}
		if err != nil {
			log.Printf("Error fetching user %s: %v", email, err)
			http.Error(w, "Failed to fetch user", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(user)
	}
}

// GetAdminStatus reports whether the target email's stored role is admin.
// Self-access only, and never returns the full user document.
func GetAdminStatus(users Collection) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		email := mux.Vars(r)["email"]

		callerEmail, ok := r.Context().Value(UserEmailKey).(string)
		if !ok || callerEmail != email {
			http.Error(w, "forbidden access", http.StatusForbidden)
			return
		}

		ctx, cancel := dbContext(r.Context())
		defer cancel()

		var user models.User
		err := users.FindOne(ctx, bson.M{"email": email}).Decode(&user)
		if err != nil && err != mongo.ErrNoDocuments {
			log.Printf("Error fetching user %s: %v", email, err)
			http.Error(w, "Failed to fetch user", http.StatusInternalServerError)
			return
		}

		admin := err == nil && user.Role == "admin"

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]bool{"admin": admin})
	}
}

// CreateUser inserts a new user unless one with the same email already
// exists. The find-then-insert guard is best effort, not atomic; concurrent
// duplicate signups can both pass the check.
func CreateUser(users Collection) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var user models.User
		if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
			log.Printf("Error decoding user data: %v", err)
			http.Error(w, "Invalid request payload", http.StatusBadRequest)
			return
		}

		ctx, cancel := dbContext(r.Context())
		defer cancel()

		err := users.FindOne(ctx, bson.M{"email": user.Email}).Err()
		if err == nil {
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(InsertResponse{Message: "user already exists", InsertedID: nil})
			return
		}
		if err != mongo.ErrNoDocuments {
			log.Printf("Error checking existing user %s: %v", user.Email, err)
			http.Error(w, "Failed to create user", http.StatusInternalServerError)
			return
		}

		user.ID = primitive.NewObjectID()
		if user.CreatedAt.IsZero() {
			user.CreatedAt = time.Now()
		}

		result, err := users.InsertOne(ctx, user)
		if err != nil {
			log.Printf("Error inserting user into the database: %v", err)
			http.Error(w, "Failed to create user", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(InsertResponse{InsertedID: result.InsertedID})
	}
}

// MakeUserAdmin sets role=admin on the user with the given id.
func MakeUserAdmin(users Collection) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := mux.Vars(r)["id"]
		objID, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			log.Printf("Invalid user ID format: %v", err)
			http.Error(w, "Invalid user ID format", http.StatusBadRequest)
			return
		}

		ctx, cancel := dbContext(r.Context())
		defer cancel()

		result, err := users.UpdateOne(ctx, bson.M{"_id": objID}, bson.M{"$set": bson.M{"role": "admin"}})
		if err != nil {
			log.Printf("Error updating user %s: %v", id, err)
			http.Error(w, "Failed to update user", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(UpdateResponse{MatchedCount: result.MatchedCount, ModifiedCount: result.ModifiedCount})
	}
}

// DeleteUser removes a user by id. Deleting an absent id reports zero
// deletions, not an error.
func DeleteUser(users Collection) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := mux.Vars(r)["id"]
		objID, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			log.Printf("Invalid user ID format: %v", err)
			http.Error(w, "Invalid user ID format", http.StatusBadRequest)
			return
		}

		ctx, cancel := dbContext(r.Context())
		defer cancel()

		result, err := users.DeleteOne(ctx, bson.M{"_id": objID})
		if err != nil {
			log.Printf("Error deleting user %s: %v", id, err)
			http.Error(w, "Failed to delete user", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(DeleteResponse{DeletedCount: result.DeletedCount})
	}
}
