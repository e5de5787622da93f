package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"feedback-portal/internal/apperr"
	"feedback-portal/internal/models"
	"feedback-portal/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type AuthHandler struct {
	userRepo   repository.UserRepository
	jwtSecret  string
	tokenTTL   time.Duration
	bcryptCost int
}

func NewAuthHandler(userRepo repository.UserRepository, jwtSecret string, tokenTTL time.Duration, bcryptCost int) *AuthHandler {
	return &AuthHandler{
		userRepo:   userRepo,
		jwtSecret:  jwtSecret,
		tokenTTL:   tokenTTL,
		bcryptCost: bcryptCost,
	}
}

// --- Request / Response types ---

type RegisterRequest struct {
	Username string   `json:"username"`
	Password string   `json:"password"`
	Role     string   `json:"role"`
	Team     []string `json:"team"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	AccessToken string      `json:"access_token"`
	Role        models.Role `json:"role"`
}

// --- POST /register ---

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperr.Validation("invalid request body"))
		return
	}

	role, ok := models.ParseRole(req.Role)
	if req.Username == "" || req.Password == "" || !ok {
		writeError(w, apperr.Validation("Missing or invalid fields"))
		return
	}

	existing, err := h.userRepo.FindByUsername(r.Context(), req.Username)
	if err != nil {
		writeError(w, err)
		return
	}
	if existing != nil {
		writeError(w, apperr.Conflict("Username already exists"))
		return
	}

	// Resolve every team username before writing anything, so a missing
	// member aborts registration without a partial record.
	var teamIDs []string
	if role == models.RoleManager {
		teamIDs = []string{}
		for _, uname := range req.Team {
			emp, err := h.userRepo.FindByUsername(r.Context(), uname)
			if err != nil {
				writeError(w, err)
				return
			}
			if emp == nil {
				writeError(w, apperr.NotFound(fmt.Sprintf("Employee username %s not found", uname)))
				return
			}
			teamIDs = append(teamIDs, emp.ID.Hex())
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), h.bcryptCost)
	if err != nil {
		writeError(w, err)
		return
	}

	user := &models.User{
		Username: req.Username,
		Password: string(hash),
		Role:     role,
		Team:     teamIDs,
	}
	if err := h.userRepo.Create(r.Context(), user); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"msg": "User registered successfully"})
}

// --- POST /login ---

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperr.Validation("invalid request body"))
		return
	}

	if req.Username == "" || req.Password == "" {
		writeError(w, apperr.Validation("Missing username or password"))
		return
	}

	user, err := h.userRepo.FindByUsername(r.Context(), req.Username)
	if err != nil {
		writeError(w, err)
		return
	}
	if user == nil || bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		writeError(w, apperr.Auth("Invalid credentials"))
		return
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID.Hex(),
		"role":    string(user.Role),
		"jti":     uuid.New().String(),
		"iat":     now.Unix(),
		"exp":     now.Add(h.tokenTTL).Unix(),
	})

	tokenString, err := token.SignedString([]byte(h.jwtSecret))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, LoginResponse{
		AccessToken: tokenString,
		Role:        user.Role,
	})
}
