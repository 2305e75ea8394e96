package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"founder-net.backend/internal/domain/entities"
	domainerrors "founder-net.backend/internal/domain/errors"
	"founder-net.backend/internal/interfaces/http/middleware"
	"founder-net.backend/internal/interfaces/http/response"
	"founder-net.backend/internal/usecases"
	"founder-net.backend/pkg/utils"
)

// MicroPostHandler handles micro-post endpoints
type MicroPostHandler struct {
	micropostUsecase *usecases.MicroPostUsecase
	feedUsecase      *usecases.FeedUsecase
}

// NewMicroPostHandler creates a new micropost handler
func NewMicroPostHandler(micropostUsecase *usecases.MicroPostUsecase, feedUsecase *usecases.FeedUsecase) *MicroPostHandler {
	return &MicroPostHandler{
		micropostUsecase: micropostUsecase,
		feedUsecase:      feedUsecase,
	}
}

// Create posts a micro-post as the authenticated user
// POST /api/v1/microposts
func (h *MicroPostHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.ErrorWithStatus(c, http.StatusUnauthorized, domainerrors.CodeUnauthorized, "not authenticated")
		return
	}

	var input entities.CreateMicroPostInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	post, err := h.micropostUsecase.Create(c.Request.Context(), userID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"micropost": post})
}

// Delete removes a micro-post owned by the caller (admins may remove any)
// DELETE /api/v1/microposts/:id
func (h *MicroPostHandler) Delete(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.ErrorWithStatus(c, http.StatusUnauthorized, domainerrors.CodeUnauthorized, "not authenticated")
		return
	}

	postID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid micropost id"))
		return
	}

	if err := h.micropostUsecase.Delete(c.Request.Context(), userID, middleware.IsAdmin(c), postID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusNoContent, nil)
}

// ListByUser lists a user's own posts, newest first
// GET /api/v1/users/:id/microposts
func (h *MicroPostHandler) ListByUser(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid user id"))
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	pagination := utils.GetPaginationParams(page, limit)

	posts, total, err := h.micropostUsecase.ListByUser(c.Request.Context(), userID, pagination.Limit, pagination.CalculateOffset())
	if err != nil {
		response.Error(c, err)
		return
	}

	if posts == nil {
		posts = []*entities.MicroPost{}
	}
	response.Success(c, http.StatusOK, gin.H{
		"microposts": posts,
		"meta":       utils.CalculateMeta(total, pagination.Page, pagination.Limit),
	})
}

// Feed returns the authenticated user's home feed
// GET /api/v1/feed
func (h *MicroPostHandler) Feed(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.ErrorWithStatus(c, http.StatusUnauthorized, domainerrors.CodeUnauthorized, "not authenticated")
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	pagination := utils.GetPaginationParams(page, limit)

	posts, total, err := h.feedUsecase.Feed(c.Request.Context(), userID, pagination.Limit, pagination.CalculateOffset())
	if err != nil {
		response.Error(c, err)
		return
	}

	if posts == nil {
		posts = []*entities.MicroPost{}
	}
	response.Success(c, http.StatusOK, gin.H{
		"microposts": posts,
		"meta":       utils.CalculateMeta(total, pagination.Page, pagination.Limit),
	})
}
