package handlers

import (
	"net/http"
	"time"

	"feedback-portal/internal/apperr"
	"feedback-portal/internal/models"
	"feedback-portal/internal/policy"
	"feedback-portal/internal/repository"
)

type DashboardHandler struct {
	userRepo     repository.UserRepository
	feedbackRepo repository.FeedbackRepository
}

func NewDashboardHandler(userRepo repository.UserRepository, feedbackRepo repository.FeedbackRepository) *DashboardHandler {
	return &DashboardHandler{
		userRepo:     userRepo,
		feedbackRepo: feedbackRepo,
	}
}

type ManagerDashboardResponse struct {
	FeedbackCount   map[string]int           `json:"feedback_count"`
	SentimentTrends map[models.Sentiment]int `json:"sentiment_trends"`
	TotalFeedback   int                      `json:"total_feedback"`
}

type TimelineEntry struct {
	ID           string           `json:"id"`
	ManagerID    string           `json:"manager_id"`
	Strengths    string           `json:"strengths"`
	Improvements string           `json:"improvements"`
	Sentiment    models.Sentiment `json:"sentiment"`
	Timestamp    *string          `json:"timestamp"`
	Acknowledged bool             `json:"acknowledged"`
	Tags         []string         `json:"tags"`
}

// --- GET /dashboard/manager ---

func (h *DashboardHandler) Manager(w http.ResponseWriter, r *http.Request) {
	c := caller(r)
	if err := policy.RequireManager(c); err != nil {
		writeError(w, err)
		return
	}

	manager, err := h.userRepo.FindByID(r.Context(), c.ID)
	if err != nil {
		writeError(w, err)
		return
	}
	if manager == nil {
		writeError(w, apperr.NotFound("Manager not found"))
		return
	}

	report := ManagerDashboardResponse{
		FeedbackCount: make(map[string]int, len(manager.Team)),
		SentimentTrends: map[models.Sentiment]int{
			models.SentimentPositive: 0,
			models.SentimentNeutral:  0,
			models.SentimentNegative: 0,
		},
	}

	for _, empID := range manager.Team {
		feedbacks, err := h.feedbackRepo.FindByEmployee(r.Context(), empID)
		if err != nil {
			writeError(w, err)
			return
		}
		report.FeedbackCount[empID] = len(feedbacks)
		for _, fb := range feedbacks {
			report.SentimentTrends[fb.Sentiment.Bucket()]++
			report.TotalFeedback++
		}
	}

	writeJSON(w, http.StatusOK, report)
}

// --- GET /dashboard/employee ---

func (h *DashboardHandler) Employee(w http.ResponseWriter, r *http.Request) {
	c := caller(r)
	if err := policy.RequireEmployee(c); err != nil {
		writeError(w, err)
		return
	}

	feedbacks, err := h.feedbackRepo.FindByEmployee(r.Context(), c.ID)
	if err != nil {
		writeError(w, err)
		return
	}

	timeline := make([]TimelineEntry, 0, len(feedbacks))
	for _, fb := range feedbacks {
		entry := TimelineEntry{
			ID:           fb.ID.Hex(),
			ManagerID:    fb.ManagerID,
			Strengths:    fb.Strengths,
			Improvements: fb.Improvements,
			Sentiment:    fb.Sentiment,
			Acknowledged: fb.Acknowledged,
			Tags:         fb.Tags,
		}
		if entry.Tags == nil {
			entry.Tags = []string{}
		}
		if !fb.Timestamp.IsZero() {
			ts := fb.Timestamp.Format(time.RFC3339)
			entry.Timestamp = &ts
		}
		timeline = append(timeline, entry)
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"timeline": timeline})
}
