package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"github.com/swipe-defend/property_review_system/backend/config"
	"github.com/swipe-defend/property_review_system/backend/payment"
	"github.com/swipe-defend/property_review_system/backend/routes"
	"github.com/swipe-defend/property_review_system/backend/utils"
)

func loadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Error loading .env file: %v", err)
	}
}

func setupRouter(deps routes.Deps) *mux.Router {
	router := mux.NewRouter()
	routes.Routes(router, deps)
	return router
}

func main() {
	loadEnv()

	if err := utils.InitJWT(); err != nil {
		log.Fatalf("JWT setup failed: %v", err)
	}

	client, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("Failed to connect to the database: %v", err)
	}
	defer config.CloseDBConnection(client)

	cols := config.InitCollections(client)
	redisClient := config.InitRedis()

	stripeKey := os.Getenv("STRIPE_SECRET_KEY")
	if stripeKey == "" {
		log.Println("STRIPE_SECRET_KEY not set, payment intents will fail")
	}
	gateway := payment.NewStripeGateway(stripeKey)

	router := setupRouter(routes.NewDeps(cols, redisClient, gateway))

	corsOptions := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	})
	handler := corsOptions.Handler(router)

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}

	server := &http.Server{
		Addr:           ":" + port,
		Handler:        handler,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	go func() {
		log.Printf("Server running on port %s", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error starting server: %v", err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt)
	<-sigCh

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Error during server shutdown: %v", err)
	}
	log.Println("Server gracefully stopped")
}
