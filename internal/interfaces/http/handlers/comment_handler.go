package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"founder-net.backend/internal/domain/entities"
	domainerrors "founder-net.backend/internal/domain/errors"
	"founder-net.backend/internal/interfaces/http/middleware"
	"founder-net.backend/internal/interfaces/http/response"
	"founder-net.backend/internal/usecases"
	"founder-net.backend/pkg/utils"
)

// CommentHandler handles comment endpoints
type CommentHandler struct {
	commentUsecase *usecases.CommentUsecase
}

// NewCommentHandler creates a new comment handler
func NewCommentHandler(commentUsecase *usecases.CommentUsecase) *CommentHandler {
	return &CommentHandler{
		commentUsecase: commentUsecase,
	}
}

// Create attaches a comment to a startup or micro-post
// POST /api/v1/comments
func (h *CommentHandler) Create(c *gin.Context) {
	authorID, ok := middleware.GetUserID(c)
	if !ok {
		response.ErrorWithStatus(c, http.StatusUnauthorized, domainerrors.CodeUnauthorized, "not authenticated")
		return
	}

	var input entities.AddCommentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	comment, err := h.commentUsecase.Add(c.Request.Context(), authorID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"comment": comment})
}

// List returns a target's comments, newest first
// GET /api/v1/comments?type=STARTUP&id=<uuid>
func (h *CommentHandler) List(c *gin.Context) {
	targetID, err := uuid.Parse(c.Query("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid target id"))
		return
	}
	target := entities.CommentTarget{
		Type: entities.CommentableType(strings.ToUpper(c.Query("type"))),
		ID:   targetID,
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	pagination := utils.GetPaginationParams(page, limit)

	comments, total, err := h.commentUsecase.ListForTarget(c.Request.Context(), target, pagination.Limit, pagination.CalculateOffset())
	if err != nil {
		response.Error(c, err)
		return
	}

	if comments == nil {
		comments = []*entities.Comment{}
	}
	response.Success(c, http.StatusOK, gin.H{
		"comments": comments,
		"meta":     utils.CalculateMeta(total, pagination.Page, pagination.Limit),
	})
}
