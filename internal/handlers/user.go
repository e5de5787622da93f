package handlers

import (
	"net/http"

	"feedback-portal/internal/apperr"
	"feedback-portal/internal/policy"
	"feedback-portal/internal/repository"
)

type UserHandler struct {
	userRepo repository.UserRepository
}

func NewUserHandler(userRepo repository.UserRepository) *UserHandler {
	return &UserHandler{
		userRepo: userRepo,
	}
}

type TeamMember struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// --- GET /users/me ---

func (h *UserHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	c := caller(r)

	user, err := h.userRepo.FindByID(r.Context(), c.ID)
	if err != nil {
		writeError(w, err)
		return
	}
	if user == nil {
		writeError(w, apperr.NotFound("User not found"))
		return
	}

	team := user.Team
	if team == nil {
		team = []string{}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"id":       user.ID.Hex(),
		"username": user.Username,
		"role":     user.Role,
		"team":     team,
	})
}

// --- GET /team ---

func (h *UserHandler) GetTeam(w http.ResponseWriter, r *http.Request) {
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

	// Ids that no longer resolve to a user are skipped
	members := make([]TeamMember, 0, len(manager.Team))
	for _, empID := range manager.Team {
		emp, err := h.userRepo.FindByID(r.Context(), empID)
		if err != nil {
			writeError(w, err)
			return
		}
		if emp != nil {
			members = append(members, TeamMember{ID: emp.ID.Hex(), Username: emp.Username})
		}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"team": members})
}
