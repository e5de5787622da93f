package repository

import (
	"context"

	"feedback-portal/internal/models"
)

// UserRepository is the narrow store surface the handlers depend on.
// Lookups return (nil, nil) when no document matches.
type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
}

// FeedbackRepository stores feedback documents keyed by id, queryable by the
// employee they reference.
type FeedbackRepository interface {
	Create(ctx context.Context, feedback *models.Feedback) error
	FindByID(ctx context.Context, id string) (*models.Feedback, error)
	FindByEmployee(ctx context.Context, employeeID string) ([]models.Feedback, error)
	UpdateFields(ctx context.Context, id string, fields map[string]any) error
	Acknowledge(ctx context.Context, id string) error
}
