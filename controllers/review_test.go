package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/swipe-defend/property_review_system/backend/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestCreateThenListReviews(t *testing.T) {
	reviews := NewFakeCollection()

	r := httptest.NewRequest("POST", "/reviews", strings.NewReader(`{"name":"A","details":"D","rating":5}`))
	w := httptest.NewRecorder()
	CreateReview(reviews, nil).ServeHTTP(w, r)

	if w.Code != http.StatusCreated {
		t.Fatalf("create status = %d, want %d", w.Code, http.StatusCreated)
	}
	var created InsertResponse
	if err := json.NewDecoder(w.Body).Decode(&created); err != nil {
		t.Fatalf("decoding create response: %v", err)
	}
	if created.InsertedID == nil {
		t.Error("expected a generated insertedId")
	}

	r = httptest.NewRequest("GET", "/reviews", nil)
	w = httptest.NewRecorder()
	GetReviews(reviews, nil).ServeHTTP(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("list status = %d, want %d", w.Code, http.StatusOK)
	}
	var listed []models.Review
	if err := json.NewDecoder(w.Body).Decode(&listed); err != nil {
		t.Fatalf("decoding list response: %v", err)
	}
	if len(listed) != 1 {
		t.Fatalf("listed %d reviews, want 1", len(listed))
	}
	got := listed[0]
	if got.Name != "A" || got.Details != "D" || got.Rating != 5 {
		t.Errorf("review = %+v, want name A, details D, rating 5", got)
	}
	if got.ID.IsZero() {
		t.Error("expected a generated identifier on the listed review")
	}
}

func TestGetReviewsEmpty(t *testing.T) {
	reviews := NewFakeCollection()

	r := httptest.NewRequest("GET", "/reviews", nil)
	w := httptest.NewRecorder()
	GetReviews(reviews, nil).ServeHTTP(w, r)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if body := strings.TrimSpace(w.Body.String()); body != "[]" {
		t.Errorf("body = %q, want []", body)
	}
}

func TestUpdateReviewReplacesListedFields(t *testing.T) {
	id := primitive.NewObjectID()
	reviews := NewFakeCollection(models.Review{ID: id, Name: "Old", Email: "a@example.com", Details: "old", Rating: 1})

	body := `{"name":"New","details":"new details","rating":4}`
	r := httptest.NewRequest("PATCH", "/reviews/"+id.Hex(), strings.NewReader(body))
	r = mux.SetURLVars(r, map[string]string{"id": id.Hex()})
	w := httptest.NewRecorder()
	UpdateReview(reviews, nil).ServeHTTP(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	doc := reviews.Docs()[0]
	if doc["name"] != "New" || doc["details"] != "new details" || doc["rating"] != 4.0 {
		t.Errorf("doc = %v, want updated name/details/rating", doc)
	}
	if doc["email"] != "a@example.com" {
		t.Errorf("email = %v, want untouched a@example.com", doc["email"])
	}
}

func TestDeleteReviewAbsent(t *testing.T) {
	reviews := NewFakeCollection()
	id := primitive.NewObjectID()

	r := httptest.NewRequest("DELETE", "/reviews/"+id.Hex(), nil)
	r = mux.SetURLVars(r, map[string]string{"id": id.Hex()})
	w := httptest.NewRecorder()
	DeleteReview(reviews, nil).ServeHTTP(w, r)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", w.Code, http.StatusOK)
	}
	var resp DeleteResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.DeletedCount != 0 {
		t.Errorf("deletedCount = %d, want 0", resp.DeletedCount)
	}
}
