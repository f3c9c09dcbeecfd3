package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/swipe-defend/property_review_system/backend/models"
)

func TestAddScoreEntryDefaultsDate(t *testing.T) {
	scores := NewFakeCollection()

	r := httptest.NewRequest("POST", "/scoreHistory", strings.NewReader(`{"email":"a@example.com","score":87}`))
	w := httptest.NewRecorder()
	AddScoreEntry(scores).ServeHTTP(w, r)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusCreated)
	}
	doc := scores.Docs()[0]
	if doc["date"] == nil {
		t.Error("expected a defaulted date on the stored entry")
	}
	if doc["score"] != 87.0 {
		t.Errorf("score = %v, want 87", doc["score"])
	}
}

func TestGetScoreHistoryByEmailFilters(t *testing.T) {
	scores := NewFakeCollection(
		models.ScoreHistory{Email: "a@example.com", Score: 10},
		models.ScoreHistory{Email: "b@example.com", Score: 20},
		models.ScoreHistory{Email: "a@example.com", Score: 30},
	)

	r := httptest.NewRequest("GET", "/scoreHistory/a@example.com", nil)
	r = mux.SetURLVars(r, map[string]string{"email": "a@example.com"})
	w := httptest.NewRecorder()
	GetScoreHistoryByEmail(scores).ServeHTTP(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	var listed []models.ScoreHistory
	if err := json.NewDecoder(w.Body).Decode(&listed); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(listed) != 2 {
		t.Fatalf("listed %d entries, want 2", len(listed))
	}
	// Storage order is preserved.
	if listed[0].Score != 10 || listed[1].Score != 30 {
		t.Errorf("listed = %+v, want scores 10 then 30", listed)
	}
}

func TestGetScoreHistoryAll(t *testing.T) {
	scores := NewFakeCollection(
		models.ScoreHistory{Email: "a@example.com", Score: 10},
		models.ScoreHistory{Email: "b@example.com", Score: 20},
	)

	r := httptest.NewRequest("GET", "/scoreHistory", nil)
	w := httptest.NewRecorder()
	GetScoreHistory(scores).ServeHTTP(w, r)

	var listed []models.ScoreHistory
	if err := json.NewDecoder(w.Body).Decode(&listed); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(listed) != 2 {
		t.Errorf("listed %d entries, want 2", len(listed))
	}
}
