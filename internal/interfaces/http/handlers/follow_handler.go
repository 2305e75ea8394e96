package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"founder-net.backend/internal/domain/entities"
	domainerrors "founder-net.backend/internal/domain/errors"
	"founder-net.backend/internal/interfaces/http/middleware"
	"founder-net.backend/internal/interfaces/http/response"
	"founder-net.backend/internal/usecases"
)

// FollowHandler handles follow graph endpoints
type FollowHandler struct {
	socialUsecase *usecases.SocialUsecase
}

// NewFollowHandler creates a new follow handler
func NewFollowHandler(socialUsecase *usecases.SocialUsecase) *FollowHandler {
	return &FollowHandler{
		socialUsecase: socialUsecase,
	}
}

// Follow creates a follow edge; repeating it changes nothing
// PUT /api/v1/follows/:type/:id
func (h *FollowHandler) Follow(c *gin.Context) {
	followerID, ok := middleware.GetUserID(c)
	if !ok {
		response.ErrorWithStatus(c, http.StatusUnauthorized, domainerrors.CodeUnauthorized, "not authenticated")
		return
	}

	target, ok := parseFollowTarget(c)
	if !ok {
		return
	}

	if err := h.socialUsecase.Follow(c.Request.Context(), followerID, target); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusNoContent, nil)
}

// Unfollow removes a follow edge; removing an absent edge is fine
// DELETE /api/v1/follows/:type/:id
func (h *FollowHandler) Unfollow(c *gin.Context) {
	followerID, ok := middleware.GetUserID(c)
	if !ok {
		response.ErrorWithStatus(c, http.StatusUnauthorized, domainerrors.CodeUnauthorized, "not authenticated")
		return
	}

	target, ok := parseFollowTarget(c)
	if !ok {
		return
	}

	if err := h.socialUsecase.Unfollow(c.Request.Context(), followerID, target); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusNoContent, nil)
}

// Status reports whether the authenticated user follows the target
// GET /api/v1/follows/:type/:id
func (h *FollowHandler) Status(c *gin.Context) {
	followerID, ok := middleware.GetUserID(c)
	if !ok {
		response.ErrorWithStatus(c, http.StatusUnauthorized, domainerrors.CodeUnauthorized, "not authenticated")
		return
	}

	target, ok := parseFollowTarget(c)
	if !ok {
		return
	}

	following, err := h.socialUsecase.IsFollowing(c.Request.Context(), followerID, target)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"following": following})
}

// FollowingUsers lists the users the authenticated user follows
// GET /api/v1/following/users
func (h *FollowHandler) FollowingUsers(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.ErrorWithStatus(c, http.StatusUnauthorized, domainerrors.CodeUnauthorized, "not authenticated")
		return
	}

	users, count, err := h.socialUsecase.UsersFollowed(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	if users == nil {
		users = []*entities.User{}
	}
	response.Success(c, http.StatusOK, gin.H{
		"users": users,
		"count": count,
	})
}

// FollowingStartups lists the startups the authenticated user follows
// GET /api/v1/following/startups
func (h *FollowHandler) FollowingStartups(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.ErrorWithStatus(c, http.StatusUnauthorized, domainerrors.CodeUnauthorized, "not authenticated")
		return
	}

	startups, count, err := h.socialUsecase.StartupsFollowed(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	if startups == nil {
		startups = []*entities.Startup{}
	}
	response.Success(c, http.StatusOK, gin.H{
		"startups": startups,
		"count":    count,
	})
}

// Followers returns a user's follower count
// GET /api/v1/users/:id/followers
func (h *FollowHandler) Followers(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid user id"))
		return
	}

	count, err := h.socialUsecase.CountFollowers(c.Request.Context(), entities.FollowTarget{
		Type: entities.FollowableTypeUser,
		ID:   userID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"count": count})
}

func parseFollowTarget(c *gin.Context) (entities.FollowTarget, bool) {
	targetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid target id"))
		return entities.FollowTarget{}, false
	}
	return entities.FollowTarget{
		Type: entities.FollowableType(strings.ToUpper(c.Param("type"))),
		ID:   targetID,
	}, true
}
