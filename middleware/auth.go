package middleware

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/swipe-defend/property_review_system/backend/controllers"
	"github.com/swipe-defend/property_review_system/backend/models"
	"github.com/swipe-defend/property_review_system/backend/utils"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// VerifyToken checks the bearer credential and attaches the decoded email
// to the request context. It never touches the database.
func VerifyToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenHeader := r.Header.Get("Authorization")
		if tokenHeader == "" {
			log.Printf("Missing Authorization header from request %s %s", r.Method, r.URL)
			http.Error(w, "unauthorized access", http.StatusUnauthorized)
			return
		}

		tokenParts := strings.Split(tokenHeader, " ")
		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
			log.Printf("Invalid Authorization header format from request %s %s", r.Method, r.URL)
			http.Error(w, "unauthorized access", http.StatusUnauthorized)
			return
		}

		claims, err := utils.ValidateJWT(tokenParts[1])
		if err != nil {
			log.Printf("Invalid or expired token: %v", err)
			http.Error(w, "unauthorized access", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), controllers.UserEmailKey, claims.Email)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// VerifyAdmin must run after VerifyToken. It looks up the caller's stored
// role and rejects anything but admin.
func VerifyAdmin(users controllers.Collection) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			email, ok := r.Context().Value(controllers.UserEmailKey).(string)
			if !ok {
				// Precondition failure: VerifyToken did not run.
				log.Printf("VerifyAdmin called without VerifyToken on %s %s", r.Method, r.URL)
				http.Error(w, "internal server error", http.StatusInternalServerError)
				return
			}

			ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
			defer cancel()

			var user models.User
			err := users.FindOne(ctx, bson.M{"email": email}).Decode(&user)
			if err != nil && err != mongo.ErrNoDocuments {
				log.Printf("Error looking up role for %s: %v", email, err)
				http.Error(w, "internal server error", http.StatusInternalServerError)
				return
			}

			if err == mongo.ErrNoDocuments || user.Role != "admin" {
				http.Error(w, "forbidden access", http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
