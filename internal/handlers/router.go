package handlers

import (
	"net/http"

	customMiddleware "feedback-portal/internal/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter assembles the full route tree. The same router serves production
// and the test suite.
func NewRouter(jwtSecret string, corsOrigins []string, auth *AuthHandler, feedback *FeedbackHandler, dashboard *DashboardHandler, user *UserHandler) chi.Router {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   corsOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok","service":"feedback-portal"}`))
	})

	// Public routes (no auth required)
	r.Post("/register", auth.Register)
	r.Post("/login", auth.Login)

	// Protected routes (JWT required)
	r.Group(func(r chi.Router) {
		r.Use(customMiddleware.JWTAuth(jwtSecret))

		r.Get("/dashboard/manager", dashboard.Manager)
		r.Get("/dashboard/employee", dashboard.Employee)
		r.Post("/feedback", feedback.SubmitFeedback)
		r.Get("/feedback/{id}", feedback.GetHistory)
		r.Put("/feedback/{id}", feedback.EditFeedback)
		r.Post("/feedback/{id}/ack", feedback.AcknowledgeFeedback)
		r.Get("/users/me", user.GetMe)
		r.Get("/team", user.GetTeam)
	})

	return r
}
