package routes

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/redis/go-redis/v9"
	"github.com/swipe-defend/property_review_system/backend/config"
	"github.com/swipe-defend/property_review_system/backend/controllers"
	"github.com/swipe-defend/property_review_system/backend/middleware"
	"github.com/swipe-defend/property_review_system/backend/payment"
)

// Deps carries everything the handlers need, injected once at startup.
type Deps struct {
	Users        controllers.Collection
	Reviews      controllers.Collection
	Payments     controllers.Collection
	Contact      controllers.Collection
	ScoreHistory controllers.Collection
	Redis        *redis.Client
	Gateway      payment.IntentCreator
}

func NewDeps(cols *config.Collections, redisClient *redis.Client, gateway payment.IntentCreator) Deps {
	return Deps{
		Users:        cols.Users,
		Reviews:      cols.Reviews,
		Payments:     cols.Payments,
		Contact:      cols.Contact,
		ScoreHistory: cols.ScoreHistory,
		Redis:        redisClient,
		Gateway:      gateway,
	}
}

func Routes(router *mux.Router, deps Deps) {
	verifyAdmin := middleware.VerifyAdmin(deps.Users)

	authed := func(h http.Handler) http.Handler {
		return middleware.VerifyToken(h)
	}
	adminOnly := func(h http.Handler) http.Handler {
		return middleware.VerifyToken(verifyAdmin(h))
	}

	router.HandleFunc("/", controllers.Health()).Methods("GET")
	router.HandleFunc("/jwt", controllers.IssueToken()).Methods("POST")

	// User routes
	router.Handle("/users", adminOnly(controllers.GetUsers(deps.Users))).Methods("GET")
	router.HandleFunc("/users", controllers.CreateUser(deps.Users)).Methods("POST")
	router.Handle("/singleuser/{email}", authed(controllers.GetSingleUser(deps.Users))).Methods("GET")
	router.Handle("/users/admin/{email}", authed(controllers.GetAdminStatus(deps.Users))).Methods("GET")
	router.Handle("/users/admin/{id}", adminOnly(controllers.MakeUserAdmin(deps.Users))).Methods("PATCH")
	router.Handle("/users/{id}", adminOnly(controllers.DeleteUser(deps.Users))).Methods("DELETE")

	// Review routes
	router.HandleFunc("/reviews", controllers.GetReviews(deps.Reviews, deps.Redis)).Methods("GET")
	router.HandleFunc("/reviews", controllers.CreateReview(deps.Reviews, deps.Redis)).Methods("POST")
	router.HandleFunc("/reviews/{id}", controllers.UpdateReview(deps.Reviews, deps.Redis)).Methods("PATCH")
	router.HandleFunc("/reviews/{id}", controllers.DeleteReview(deps.Reviews, deps.Redis)).Methods("DELETE")

	// Contact routes
	router.HandleFunc("/contact", controllers.CreateContactMessage(deps.Contact)).Methods("POST")
	router.Handle("/contact", adminOnly(controllers.GetContactMessages(deps.Contact))).Methods("GET")
	router.Handle("/contact/{id}", adminOnly(controllers.UpdateContactStatus(deps.Contact))).Methods("PATCH")
	router.Handle("/contact/{id}", adminOnly(controllers.DeleteContactMessage(deps.Contact))).Methods("DELETE")

	// Payment routes
	router.HandleFunc("/create-payment-intent", controllers.CreatePaymentIntent(deps.Gateway)).Methods("POST")
	router.Handle("/payments", adminOnly(controllers.GetPayments(deps.Payments))).Methods("GET")
	router.Handle("/payments/{email}", authed(controllers.GetPaymentsByEmail(deps.Payments))).Methods("GET")
	router.HandleFunc("/payments", controllers.CreatePayment(deps.Payments)).Methods("POST")

	// Score history routes
	router.Handle("/scoreHistory", adminOnly(controllers.GetScoreHistory(deps.ScoreHistory))).Methods("GET")
	router.Handle("/scoreHistory/{email}", authed(controllers.GetScoreHistoryByEmail(deps.ScoreHistory))).Methods("GET")
	router.Handle("/scoreHistory", authed(controllers.AddScoreEntry(deps.ScoreHistory))).Methods("POST")
}
