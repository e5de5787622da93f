package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"feedback-portal/internal/handlers"
	"feedback-portal/internal/models"
	"feedback-portal/internal/notify"
	"feedback-portal/internal/repository"
)

const (
	testSecret     = "test-secret"
	testBcryptCost = 4 // low cost for fast tests
)

type testServer struct {
	router   http.Handler
	users    *repository.MemoryUserRepo
	feedback *repository.MemoryFeedbackRepo
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	users := repository.NewMemoryUserRepo()
	feedback := repository.NewMemoryFeedbackRepo()

	auth := handlers.NewAuthHandler(users, testSecret, time.Hour, testBcryptCost)
	fb := handlers.NewFeedbackHandler(feedback, users, notify.NewMockNotifier())
	dash := handlers.NewDashboardHandler(users, feedback)
	user := handlers.NewUserHandler(users)

	return &testServer{
		router:   handlers.NewRouter(testSecret, []string{"*"}, auth, fb, dash, user),
		users:    users,
		feedback: feedback,
	}
}

func (s *testServer) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *testServer) register(t *testing.T, username, password, role string, team []string) {
	t.Helper()

	w := s.do(t, http.MethodPost, "/register", "", map[string]any{
		"username": username,
		"password": password,
		"role":     role,
		"team":     team,
	})
	require.Equal(t, http.StatusCreated, w.Code, "register %s: %s", username, w.Body.String())
}

func (s *testServer) login(t *testing.T, username, password string) string {
	t.Helper()

	w := s.do(t, http.MethodPost, "/login", "", map[string]any{
		"username": username,
		"password": password,
	})
	require.Equal(t, http.StatusOK, w.Code, "login %s: %s", username, w.Body.String())

	var resp struct {
		AccessToken string `json:"access_token"`
	}
	decodeBody(t, w, &resp)
	require.NotEmpty(t, resp.AccessToken)
	return resp.AccessToken
}

// tokenFor signs a token directly, bypassing /login. Lets tests forge
// arbitrary ids and role claims.
func tokenFor(t *testing.T, userID, role string) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"role":    role,
		"iat":     time.Now().Unix(),
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, target any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), target))
}

func (s *testServer) userID(t *testing.T, username string) string {
	t.Helper()
	u, err := s.users.FindByUsername(context.Background(), username)
	require.NoError(t, err)
	require.NotNil(t, u, "user %s not found", username)
	return u.ID.Hex()
}

// seedFeedback inserts a feedback document directly into the store.
func (s *testServer) seedFeedback(t *testing.T, fb models.Feedback) string {
	t.Helper()
	require.NoError(t, s.feedback.Create(context.Background(), &fb))
	return fb.ID.Hex()
}
