package handlers_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"feedback-portal/internal/models"
)

func TestGetMe_Manager(t *testing.T) {
	s := newTestServer(t)
	s.register(t, "e1", "pw", "employee", nil)
	s.register(t, "m1", "pw", "manager", []string{"e1"})
	mTok := s.login(t, "m1", "pw")

	w := s.do(t, http.MethodGet, "/users/me", mTok, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		ID       string   `json:"id"`
		Username string   `json:"username"`
		Role     string   `json:"role"`
		Team     []string `json:"team"`
	}
	decodeBody(t, w, &resp)
	assert.Equal(t, s.userID(t, "m1"), resp.ID)
	assert.Equal(t, "m1", resp.Username)
	assert.Equal(t, "manager", resp.Role)
	assert.Equal(t, []string{s.userID(t, "e1")}, resp.Team)
}

func TestGetMe_EmployeeHasEmptyTeam(t *testing.T) {
	s := newTestServer(t)
	s.register(t, "e1", "pw", "employee", nil)
	eTok := s.login(t, "e1", "pw")

	w := s.do(t, http.MethodGet, "/users/me", eTok, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Team []string `json:"team"`
	}
	decodeBody(t, w, &resp)
	assert.NotNil(t, resp.Team)
	assert.Empty(t, resp.Team)
}

func TestGetMe_UnknownCaller(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/users/me", tokenFor(t, bson.NewObjectID().Hex(), "employee"), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetTeam_ResolvesMembers(t *testing.T) {
	s := newTestServer(t)
	s.register(t, "e1", "pw", "employee", nil)
	s.register(t, "e2", "pw", "employee", nil)
	s.register(t, "m1", "pw", "manager", []string{"e1", "e2"})
	mTok := s.login(t, "m1", "pw")

	w := s.do(t, http.MethodGet, "/team", mTok, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Team []struct {
			ID       string `json:"id"`
			Username string `json:"username"`
		} `json:"team"`
	}
	decodeBody(t, w, &resp)
	require.Len(t, resp.Team, 2)
	assert.Equal(t, "e1", resp.Team[0].Username)
	assert.Equal(t, s.userID(t, "e1"), resp.Team[0].ID)
	assert.Equal(t, "e2", resp.Team[1].Username)
}

func TestGetTeam_OmitsUnresolvableIDs(t *testing.T) {
	s := newTestServer(t)
	s.register(t, "e1", "pw", "employee", nil)

	// Seed a manager whose team references an id with no user behind it
	m := &models.User{
		Username: "m1",
		Role:     models.RoleManager,
		Team:     []string{s.userID(t, "e1"), bson.NewObjectID().Hex()},
	}
	require.NoError(t, s.users.Create(context.Background(), m))

	w := s.do(t, http.MethodGet, "/team", tokenFor(t, m.ID.Hex(), "manager"), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Team []struct {
			Username string `json:"username"`
		} `json:"team"`
	}
	decodeBody(t, w, &resp)
	require.Len(t, resp.Team, 1)
	assert.Equal(t, "e1", resp.Team[0].Username)
}

func TestGetTeam_EmployeeForbidden(t *testing.T) {
	s := newTestServer(t)
	s.register(t, "e1", "pw", "employee", nil)
	eTok := s.login(t, "e1", "pw")

	w := s.do(t, http.MethodGet, "/team", eTok, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/health", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok","service":"feedback-portal"}`, w.Body.String())
}
