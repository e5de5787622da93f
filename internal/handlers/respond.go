package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"feedback-portal/internal/apperr"
	"feedback-portal/internal/middleware"
	"feedback-portal/internal/models"
	"feedback-portal/internal/policy"
)

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError maps a taxonomy error to its status and message. Anything
// outside the taxonomy is logged and reported as a 500.
func writeError(w http.ResponseWriter, err error) {
	status := apperr.Status(err)
	if status == http.StatusInternalServerError {
		log.Printf("Internal error: %v", err)
		writeJSON(w, status, map[string]string{"error": "internal server error"})
		return
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

// caller builds the policy principal from the claims JWTAuth stored in the
// request context.
func caller(r *http.Request) policy.Caller {
	return policy.Caller{
		ID:   middleware.GetUserID(r.Context()),
		Role: models.Role(middleware.GetRole(r.Context())),
	}
}
