package controllers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/swipe-defend/property_review_system/backend/utils"
)

type TokenRequest struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

// IssueToken signs a token for whatever identity the client submits. There
// is deliberately no check that the email belongs to a stored user.
func IssueToken() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req TokenRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("Error decoding token request: %v", err)
			http.Error(w, "Invalid request payload", http.StatusBadRequest)
			return
		}
		if req.Email == "" {
			http.Error(w, "email is required", http.StatusBadRequest)
			return
		}

		token, err := utils.GenerateJWT(req.Email, req.Name)
		if err != nil {
			log.Printf("Error generating JWT token: %v", err)
			http.Error(w, "Failed to generate token", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(TokenResponse{Token: token})
	}
}

// Health is the liveness probe at GET /.
func Health() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("Property review server is running"))
	}
}
