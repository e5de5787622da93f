package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"feedback-portal/internal/config"
	"feedback-portal/internal/database"
	"feedback-portal/internal/handlers"
	"feedback-portal/internal/notify"
	"feedback-portal/internal/repository"

	"github.com/joho/godotenv"
)

func main() {
	// Load .env (ignore error in production — env vars set directly)
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Invalid configuration: %v", err)
	}

	// Connect to MongoDB
	db, err := database.Connect(cfg.MongoURI, cfg.DBName)
	if err != nil {
		log.Fatalf("❌ Failed to connect to MongoDB: %v", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepo(db)
	feedbackRepo := repository.NewFeedbackRepo(db)

	// Ensure indexes
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Printf("⚠️  Warning: failed to create user indexes: %v", err)
	}
	if err := feedbackRepo.EnsureIndexes(ctx); err != nil {
		log.Printf("⚠️  Warning: failed to create feedback indexes: %v", err)
	}

	// Pick the feedback notifier — real email only when Resend is configured
	var notifier notify.Notifier
	if cfg.ResendAPIKey != "" {
		notifier = notify.NewEmailNotifier(cfg.ResendAPIKey, cfg.FromEmail)
	} else {
		log.Println("⚠️  RESEND_API_KEY not set, feedback notifications are logged only")
		notifier = notify.NewMockNotifier()
	}

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userRepo, cfg.JWTSecret, time.Duration(cfg.TokenTTLHours)*time.Hour, cfg.BcryptCost)
	feedbackHandler := handlers.NewFeedbackHandler(feedbackRepo, userRepo, notifier)
	dashboardHandler := handlers.NewDashboardHandler(userRepo, feedbackRepo)
	userHandler := handlers.NewUserHandler(userRepo)

	r := handlers.NewRouter(cfg.JWTSecret, cfg.CORSOrigins, authHandler, feedbackHandler, dashboardHandler, userHandler)

	// Start server
	log.Printf("🚀 Feedback portal backend starting on port %s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		log.Fatalf("❌ Server failed: %v", err)
	}
}
