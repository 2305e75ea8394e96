package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"founder-net.backend/internal/domain/entities"
	"founder-net.backend/internal/interfaces/http/middleware"
	"founder-net.backend/internal/usecases"
)

type followHarness struct {
	router   *gin.Engine
	users    *userRepoStub
	startups *startupRepoStub
	follows  *followRepoStub
	userID   uuid.UUID
}

func newFollowHarness(t *testing.T) *followHarness {
	t.Helper()
	gin.SetMode(gin.TestMode)

	users := newUserRepoStub()
	startups := newStartupRepoStub()
	follows := newFollowRepoStub(users, startups)
	h := NewFollowHandler(usecases.NewSocialUsecase(follows, users, startups))

	userID := uuid.New()
	users.users[userID] = &entities.User{ID: userID, Name: "Follower", Email: "follower@example.com"}

	r := gin.New()
	withUser := func(c *gin.Context) {
		c.Set(middleware.UserIDKey, userID)
		c.Next()
	}
	r.PUT("/follows/:type/:id", withUser, h.Follow)
	r.DELETE("/follows/:type/:id", withUser, h.Unfollow)
	r.GET("/follows/:type/:id", withUser, h.Status)
	r.GET("/following/users", withUser, h.FollowingUsers)
	r.GET("/following/startups", withUser, h.FollowingStartups)
	r.GET("/users/:id/followers", h.Followers)

	return &followHarness{router: r, users: users, startups: startups, follows: follows, userID: userID}
}

func (fh *followHarness) do(method, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	w := httptest.NewRecorder()
	fh.router.ServeHTTP(w, req)
	return w
}

func TestFollowHandler_FollowIsIdempotent(t *testing.T) {
	fh := newFollowHarness(t)

	otherID := uuid.New()
	fh.users.users[otherID] = &entities.User{ID: otherID, Name: "Other", Email: "other@example.com"}

	path := "/follows/user/" + otherID.String()
	for i := 0; i < 3; i++ {
		if w := fh.do(http.MethodPut, path); w.Code != http.StatusNoContent {
			t.Fatalf("follow attempt %d: expected 204, got %d body=%s", i, w.Code, w.Body.String())
		}
	}
	if len(fh.follows.edges) != 1 {
		t.Fatalf("expected one edge after repeated follows, got %d", len(fh.follows.edges))
	}

	w := fh.do(http.MethodGet, path)
	if w.Code != http.StatusOK || !bytes.Contains(w.Body.Bytes(), []byte(`"following":true`)) {
		t.Fatalf("unexpected status response: %d %s", w.Code, w.Body.String())
	}
}

func TestFollowHandler_UnfollowAbsentEdge(t *testing.T) {
	fh := newFollowHarness(t)

	otherID := uuid.New()
	fh.users.users[otherID] = &entities.User{ID: otherID, Name: "Other", Email: "other@example.com"}

	if w := fh.do(http.MethodDelete, "/follows/user/"+otherID.String()); w.Code != http.StatusNoContent {
		t.Fatalf("expected 204 for absent edge, got %d body=%s", w.Code, w.Body.String())
	}
}

func TestFollowHandler_FollowStartupAndLists(t *testing.T) {
	fh := newFollowHarness(t)

	otherID := uuid.New()
	fh.users.users[otherID] = &entities.User{ID: otherID, Name: "Other", Email: "other@example.com"}
	startupID := uuid.New()
	fh.startups.startups[startupID] = &entities.Startup{ID: startupID, Name: "Acme"}

	if w := fh.do(http.MethodPut, "/follows/user/"+otherID.String()); w.Code != http.StatusNoContent {
		t.Fatalf("follow user: %d %s", w.Code, w.Body.String())
	}
	if w := fh.do(http.MethodPut, "/follows/startup/"+startupID.String()); w.Code != http.StatusNoContent {
		t.Fatalf("follow startup: %d %s", w.Code, w.Body.String())
	}

	w := fh.do(http.MethodGet, "/following/users")
	var usersResp struct {
		Users []entities.User `json:"users"`
		Count int64           `json:"count"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &usersResp); err != nil {
		t.Fatalf("unmarshal following users: %v", err)
	}
	if usersResp.Count != 1 || len(usersResp.Users) != 1 || usersResp.Users[0].Name != "Other" {
		t.Fatalf("unexpected following users: %+v", usersResp)
	}

	w = fh.do(http.MethodGet, "/following/startups")
	var startupsResp struct {
		Startups []entities.Startup `json:"startups"`
		Count    int64              `json:"count"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &startupsResp); err != nil {
		t.Fatalf("unmarshal following startups: %v", err)
	}
	if startupsResp.Count != 1 || startupsResp.Startups[0].Name != "Acme" {
		t.Fatalf("unexpected following startups: %+v", startupsResp)
	}

	// Unfollow both and the counts drop back
	fh.do(http.MethodDelete, "/follows/user/"+otherID.String())
	fh.do(http.MethodDelete, "/follows/startup/"+startupID.String())
	w = fh.do(http.MethodGet, "/following/users")
	if !bytes.Contains(w.Body.Bytes(), []byte(`"count":0`)) {
		t.Fatalf("expected count back to 0: %s", w.Body.String())
	}
}

func TestFollowHandler_BadDiscriminant(t *testing.T) {
	fh := newFollowHarness(t)

	w := fh.do(http.MethodPut, "/follows/company/"+uuid.New().String())
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d body=%s", w.Code, w.Body.String())
	}
	if !bytes.Contains(w.Body.Bytes(), []byte("is not a followable entity type")) {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestFollowHandler_MissingTarget(t *testing.T) {
	fh := newFollowHarness(t)

	w := fh.do(http.MethodPut, "/follows/user/"+uuid.New().String())
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d body=%s", w.Code, w.Body.String())
	}
}

func TestFollowHandler_FollowersCount(t *testing.T) {
	fh := newFollowHarness(t)

	otherID := uuid.New()
	fh.users.users[otherID] = &entities.User{ID: otherID, Name: "Other", Email: "other@example.com"}
	fh.do(http.MethodPut, "/follows/user/"+otherID.String())

	w := fh.do(http.MethodGet, "/users/"+otherID.String()+"/followers")
	if w.Code != http.StatusOK || !bytes.Contains(w.Body.Bytes(), []byte(`"count":1`)) {
		t.Fatalf("unexpected followers response: %d %s", w.Code, w.Body.String())
	}
}
