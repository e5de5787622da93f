package repository

import (
	"context"
	"sync"
	"time"

	"feedback-portal/internal/models"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// In-memory implementations of the repository interfaces. They back the test
// suite and mirror the Mongo semantics: (nil, nil) on missing documents,
// insertion order preserved for queries.

type MemoryUserRepo struct {
	mu    sync.Mutex
	users []models.User
}

func NewMemoryUserRepo() *MemoryUserRepo {
	return &MemoryUserRepo{}
}

func (r *MemoryUserRepo) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.users {
		if r.users[i].Username == username {
			u := r.users[i]
			return &u, nil
		}
	}
	return nil, nil
}

func (r *MemoryUserRepo) FindByID(ctx context.Context, id string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.users {
		if r.users[i].ID.Hex() == id {
			u := r.users[i]
			return &u, nil
		}
	}
	return nil, nil
}

func (r *MemoryUserRepo) Create(ctx context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if user.ID.IsZero() {
		user.ID = bson.NewObjectID()
	}
	r.users = append(r.users, *user)
	return nil
}

type MemoryFeedbackRepo struct {
	mu    sync.Mutex
	items []models.Feedback
}

func NewMemoryFeedbackRepo() *MemoryFeedbackRepo {
	return &MemoryFeedbackRepo{}
}

func (r *MemoryFeedbackRepo) Create(ctx context.Context, feedback *models.Feedback) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if feedback.ID.IsZero() {
		feedback.ID = bson.NewObjectID()
	}
	if feedback.Timestamp.IsZero() {
		feedback.Timestamp = time.Now().UTC()
	}
	r.items = append(r.items, *feedback)
	return nil
}

func (r *MemoryFeedbackRepo) FindByID(ctx context.Context, id string) (*models.Feedback, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID.Hex() == id {
			f := r.items[i]
			return &f, nil
		}
	}
	return nil, nil
}

func (r *MemoryFeedbackRepo) FindByEmployee(ctx context.Context, employeeID string) ([]models.Feedback, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Feedback
	for i := range r.items {
		if r.items[i].EmployeeID == employeeID {
			out = append(out, r.items[i])
		}
	}
	return out, nil
}

func (r *MemoryFeedbackRepo) UpdateFields(ctx context.Context, id string, fields map[string]any) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID.Hex() != id {
			continue
		}
		for k, v := range fields {
			switch k {
			case "strengths":
				if s, ok := v.(string); ok {
					r.items[i].Strengths = s
				}
			case "improvements":
				if s, ok := v.(string); ok {
					r.items[i].Improvements = s
				}
			case "sentiment":
				if s, ok := v.(string); ok {
					r.items[i].Sentiment = models.Sentiment(s)
				}
			case "tags":
				if tags, ok := v.([]string); ok {
					r.items[i].Tags = tags
				}
			}
		}
		return nil
	}
	return nil
}

func (r *MemoryFeedbackRepo) Acknowledge(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID.Hex() == id {
			r.items[i].Acknowledged = true
			return nil
		}
	}
	return nil
}
