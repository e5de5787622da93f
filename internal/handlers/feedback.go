package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"feedback-portal/internal/apperr"
	"feedback-portal/internal/models"
	"feedback-portal/internal/notify"
	"feedback-portal/internal/policy"
	"feedback-portal/internal/repository"

	"github.com/go-chi/chi/v5"
)

type FeedbackHandler struct {
	feedbackRepo repository.FeedbackRepository
	userRepo     repository.UserRepository
	notifier     notify.Notifier
}

func NewFeedbackHandler(feedbackRepo repository.FeedbackRepository, userRepo repository.UserRepository, notifier notify.Notifier) *FeedbackHandler {
	return &FeedbackHandler{
		feedbackRepo: feedbackRepo,
		userRepo:     userRepo,
		notifier:     notifier,
	}
}

type SubmitFeedbackRequest struct {
	EmployeeID   string   `json:"employee_id"` // username, resolved to an id
	Strengths    string   `json:"strengths"`
	Improvements string   `json:"improvements"`
	Sentiment    string   `json:"sentiment"`
	Tags         []string `json:"tags"`
}

// EditFeedbackRequest carries the editable subset of a feedback document.
// Any other submitted field is dropped during decoding, which keeps
// manager_id, employee_id, timestamp and acknowledged immutable here.
type EditFeedbackRequest struct {
	Strengths    *string   `json:"strengths"`
	Improvements *string   `json:"improvements"`
	Sentiment    *string   `json:"sentiment"`
	Tags         *[]string `json:"tags"`
}

// --- POST /feedback ---

func (h *FeedbackHandler) SubmitFeedback(w http.ResponseWriter, r *http.Request) {
	c := caller(r)
	if err := policy.RequireManager(c); err != nil {
		writeError(w, err)
		return
	}

	var req SubmitFeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperr.Validation("invalid request body"))
		return
	}

	sentiment, ok := models.ParseSentiment(req.Sentiment)
	if req.EmployeeID == "" || req.Strengths == "" || req.Improvements == "" || !ok {
		writeError(w, apperr.Validation("Missing or invalid fields"))
		return
	}

	emp, err := h.userRepo.FindByUsername(r.Context(), req.EmployeeID)
	if err != nil {
		writeError(w, err)
		return
	}
	if emp == nil {
		writeError(w, apperr.NotFound(fmt.Sprintf("Employee username %s not found", req.EmployeeID)))
		return
	}

	tags := req.Tags
	if tags == nil {
		tags = []string{}
	}

	feedback := &models.Feedback{
		ManagerID:    c.ID,
		EmployeeID:   emp.ID.Hex(),
		Strengths:    req.Strengths,
		Improvements: req.Improvements,
		Sentiment:    sentiment,
		Tags:         tags,
		Acknowledged: false,
	}
	if err := h.feedbackRepo.Create(r.Context(), feedback); err != nil {
		log.Printf("Error creating feedback: %v", err)
		writeError(w, err)
		return
	}

	// Tell the employee in a background goroutine (non-blocking)
	username := emp.Username
	go func() {
		body := fmt.Sprintf("You received new %s feedback from your manager.", sentiment)
		if err := h.notifier.Send(context.Background(), username, "New feedback received", body); err != nil {
			log.Printf("Error sending feedback notification: %v", err)
		}
	}()

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"msg":      "Feedback submitted",
		"feedback": feedback,
	})
}

// --- GET /feedback/{id} --- (id is an employee id)

func (h *FeedbackHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	c := caller(r)
	employeeID := chi.URLParam(r, "id")

	if err := policy.CanViewHistory(c, employeeID); err != nil {
		writeError(w, err)
		return
	}

	feedbacks, err := h.feedbackRepo.FindByEmployee(r.Context(), employeeID)
	if err != nil {
		writeError(w, err)
		return
	}
	if feedbacks == nil {
		feedbacks = []models.Feedback{}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"feedback": feedbacks})
}

// --- PUT /feedback/{id} ---

func (h *FeedbackHandler) EditFeedback(w http.ResponseWriter, r *http.Request) {
	c := caller(r)
	if err := policy.RequireManager(c); err != nil {
		writeError(w, err)
		return
	}

	feedbackID := chi.URLParam(r, "id")

	var req EditFeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperr.Validation("invalid request body"))
		return
	}

	existing, err := h.feedbackRepo.FindByID(r.Context(), feedbackID)
	if err != nil {
		writeError(w, err)
		return
	}
	if existing == nil {
		writeError(w, apperr.NotFound("Feedback not found"))
		return
	}

	fields := map[string]any{}
	if req.Strengths != nil {
		fields["strengths"] = *req.Strengths
	}
	if req.Improvements != nil {
		fields["improvements"] = *req.Improvements
	}
	if req.Sentiment != nil {
		fields["sentiment"] = *req.Sentiment
	}
	if req.Tags != nil {
		fields["tags"] = *req.Tags
	}

	if err := h.feedbackRepo.UpdateFields(r.Context(), feedbackID, fields); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"msg": "Feedback updated"})
}

// --- POST /feedback/{id}/ack ---

func (h *FeedbackHandler) AcknowledgeFeedback(w http.ResponseWriter, r *http.Request) {
	c := caller(r)
	if err := policy.RequireEmployee(c); err != nil {
		writeError(w, err)
		return
	}

	feedbackID := chi.URLParam(r, "id")

	existing, err := h.feedbackRepo.FindByID(r.Context(), feedbackID)
	if err != nil {
		writeError(w, err)
		return
	}
	if existing == nil {
		writeError(w, apperr.NotFound("Feedback not found"))
		return
	}

	if err := h.feedbackRepo.Acknowledge(r.Context(), feedbackID); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"msg": "Feedback acknowledged"})
}
