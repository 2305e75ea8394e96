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

type adminHarness struct {
	router  *gin.Engine
	users   *userRepoStub
	isAdmin bool
}

func newAdminHarness(t *testing.T) *adminHarness {
	t.Helper()
	gin.SetMode(gin.TestMode)

	users := newUserRepoStub()
	startups := newStartupRepoStub()
	investors := newInvestorRepoStub()
	follows := newFollowRepoStub(users, startups)
	posts := newMicropostRepoStub(follows, users)

	h := NewAdminHandler(usecases.NewUserUsecase(users, startups, investors, follows, posts))

	ah := &adminHarness{users: users}
	r := gin.New()
	admin := r.Group("/admin")
	admin.Use(func(c *gin.Context) {
		c.Set(middleware.UserIDKey, uuid.New())
		c.Set(middleware.IsAdminKey, ah.isAdmin)
		c.Next()
	})
	admin.Use(middleware.RequireAdmin())
	admin.GET("/users", h.ListUsers)
	admin.DELETE("/users/:id", h.DeleteUser)
	ah.router = r
	return ah
}

func (ah *adminHarness) do(method, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	w := httptest.NewRecorder()
	ah.router.ServeHTTP(w, req)
	return w
}

func (ah *adminHarness) seedUser(name, email string) uuid.UUID {
	id := uuid.New()
	ah.users.users[id] = &entities.User{ID: id, Name: name, Email: email}
	return id
}

func TestAdminHandler_ListUsers_SearchAndMeta(t *testing.T) {
	ah := newAdminHarness(t)
	ah.isAdmin = true

	ah.seedUser("Ada Lovelace", "ada@example.com")
	ah.seedUser("Adam West", "adam@example.com")
	ah.seedUser("Grace Hopper", "grace@example.com")

	w := ah.do(http.MethodGet, "/admin/users?search=ada&limit=1&page=2")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
	}

	var resp struct {
		Users []entities.User `json:"users"`
		Meta  struct {
			TotalCount int64 `json:"totalCount"`
			TotalPages int   `json:"totalPages"`
		} `json:"meta"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal list: %v", err)
	}
	if resp.Meta.TotalCount != 2 || resp.Meta.TotalPages != 2 {
		t.Fatalf("unexpected meta: %+v", resp.Meta)
	}
	if len(resp.Users) != 1 || resp.Users[0].Name != "Adam West" {
		t.Fatalf("unexpected page: %+v", resp.Users)
	}
}

func TestAdminHandler_DeleteUser(t *testing.T) {
	ah := newAdminHarness(t)
	ah.isAdmin = true

	victimID := ah.seedUser("Target", "target@example.com")

	if w := ah.do(http.MethodDelete, "/admin/users/"+victimID.String()); w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d body=%s", w.Code, w.Body.String())
	}
	if _, ok := ah.users.users[victimID]; ok {
		t.Fatal("user still present after delete")
	}

	if w := ah.do(http.MethodDelete, "/admin/users/"+victimID.String()); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 on second delete, got %d", w.Code)
	}
}

func TestAdminHandler_RequiresAdmin(t *testing.T) {
	ah := newAdminHarness(t)
	ah.seedUser("Ada Lovelace", "ada@example.com")

	w := ah.do(http.MethodGet, "/admin/users")
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d body=%s", w.Code, w.Body.String())
	}
	if !bytes.Contains(w.Body.Bytes(), []byte("admin access required")) {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}

	victimID := ah.seedUser("Target", "target@example.com")
	if w := ah.do(http.MethodDelete, "/admin/users/"+victimID.String()); w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 on delete, got %d", w.Code)
	}
	if _, ok := ah.users.users[victimID]; !ok {
		t.Fatal("non-admin delete must not reach the repository")
	}
}
