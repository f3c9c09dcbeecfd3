package controllers

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/swipe-defend/property_review_system/backend/models"
	"github.com/swipe-defend/property_review_system/backend/payment"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type paymentIntentRequest struct {
	Price float64 `json:"price"`
}

type paymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

// CreatePaymentIntent converts the requested price to integer minor units
// and forwards it to the payment gateway. Only the opaque client secret is
// relayed back.
func CreatePaymentIntent(gateway payment.IntentCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req paymentIntentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("Error decoding payment intent request: %v", err)
			http.Error(w, "Invalid request payload", http.StatusBadRequest)
			return
		}

		amount := int64(req.Price * 100)

		secret, err := gateway.CreateIntent(r.Context(), amount, "usd")
		if err != nil {
			log.Printf("Error creating payment intent: %v", err)
			http.Error(w, "Failed to create payment intent", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(paymentIntentResponse{ClientSecret: secret})
	}
}

func GetPayments(payments Collection) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := dbContext(r.Context())
		defer cancel()

		cursor, err := payments.Find(ctx, bson.M{})
		if err != nil {
			log.Printf("Error fetching payments: %v", err)
			http.Error(w, "Failed to fetch payments", http.StatusInternalServerError)
			return
		}
		defer cursor.Close(ctx)

		results := []models.Payment{}
		if err := cursor.All(ctx, &results); err != nil {
			log.Printf("Error decoding payments: %v", err)
			http.Error(w, "Failed to fetch payments", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(results)
	}
}

func GetPaymentsByEmail(payments Collection) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		email := mux.Vars(r)["email"]

		ctx, cancel := dbContext(r.Context())
		defer cancel()

		cursor, err := payments.Find(ctx, bson.M{"email": email})
		if err != nil {
			log.Printf("Error fetching payments for %s: %v", email, err)
			http.Error(w, "Failed to fetch payments", http.StatusInternalServerError)
			return
		}
		defer cursor.Close(ctx)

		results := []models.Payment{}
		if err := cursor.All(ctx, &results); err != nil {
			log.Printf("Error decoding payments for %s: %v", email, err)
			http.Error(w, "Failed to fetch payments", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(results)
	}
}

// CreatePayment records a completed payment. The declared propertyId is
// stored by value only; nothing dereferences it.
func CreatePayment(payments Collection) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var p models.Payment
		if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
			log.Printf("Error decoding payment: %v", err)
			http.Error(w, "Invalid request payload", http.StatusBadRequest)
			return
		}

		p.ID = primitive.NewObjectID()
		if p.Date.IsZero() {
			p.Date = time.Now()
		}

		ctx, cancel := dbContext(r.Context())
		defer cancel()

		result, err := payments.InsertOne(ctx, p)
		if err != nil {
			log.Printf("Error inserting payment: %v", err)
			http.Error(w, "Failed to create payment", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(InsertResponse{InsertedID: result.InsertedID})
	}
}
