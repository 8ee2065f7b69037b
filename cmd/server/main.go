package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"untwist-backend/internal/database"
	"untwist-backend/internal/email"
	"untwist-backend/internal/handlers"
	"untwist-backend/internal/repository"

	"github.com/joho/godotenv"
)

func main() {
	// Load .env (ignore error in production — env vars set directly)
	_ = godotenv.Load()

	// Required env vars
	mongoURI := getEnv("MONGODB_URI", "")
	dbName := getEnv("DB_NAME", "untwist")
	port := getEnv("PORT", "8080")

	// Notification config — optional; sends are skipped when unset
	resendAPIKey := getEnv("RESEND_API_KEY", "")
	notificationEmail := getEnv("NOTIFICATION_EMAIL", "")
	fromEmail := getEnv("FROM_EMAIL", "")

	adminAPIKey := getEnv("ADMIN_API_KEY", "")
	production := getEnv("APP_ENV", "") == "production"

	if mongoURI == "" {
		log.Fatal("❌ MONGODB_URI is required")
	}

	// Connect to MongoDB
	db, err := database.Connect(mongoURI, dbName)
	if err != nil {
		log.Fatalf("❌ Failed to connect to MongoDB: %v", err)
	}

	feedbackRepo := repository.NewFeedbackRepo(db)

	// Ensure indexes
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := feedbackRepo.EnsureIndexes(ctx); err != nil {
		log.Printf("⚠️  Warning: failed to create feedback indexes: %v", err)
	}

	notifier := email.NewResendNotifier(resendAPIKey, fromEmail, notificationEmail)

	feedbackHandler := handlers.NewFeedbackHandler(feedbackRepo, notifier, production)

	r := handlers.NewRouter(feedbackHandler, adminAPIKey)

	// Start server
	log.Printf("🚀 Untwist feedback backend starting on port %s", port)
	if err := http.ListenAndServe(":"+port, r); err != nil {
		log.Fatalf("❌ Server failed: %v", err)
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
