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

// StartupHandler handles startup endpoints
type StartupHandler struct {
	startupUsecase *usecases.StartupUsecase
}

// NewStartupHandler creates a new startup handler
func NewStartupHandler(startupUsecase *usecases.StartupUsecase) *StartupHandler {
	return &StartupHandler{
		startupUsecase: startupUsecase,
	}
}

// Create stores a startup founded by the authenticated user
// POST /api/v1/startups
func (h *StartupHandler) Create(c *gin.Context) {
	founderID, ok := middleware.GetUserID(c)
	if !ok {
		response.ErrorWithStatus(c, http.StatusUnauthorized, domainerrors.CodeUnauthorized, "not authenticated")
		return
	}

	var input entities.CreateStartupInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	startup, err := h.startupUsecase.Create(c.Request.Context(), founderID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"startup": startup})
}

// Get returns a single startup
// GET /api/v1/startups/:id
func (h *StartupHandler) Get(c *gin.Context) {
	startupID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid startup id"))
		return
	}

	startup, err := h.startupUsecase.GetByID(c.Request.Context(), startupID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"startup": startup})
}

// List returns startups matching an optional name search
// GET /api/v1/startups
func (h *StartupHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	pagination := utils.GetPaginationParams(page, limit)

	startups, total, err := h.startupUsecase.List(c.Request.Context(), c.Query("search"), pagination.Limit, pagination.CalculateOffset())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"startups": startups,
		"meta":     utils.CalculateMeta(total, pagination.Page, pagination.Limit),
	})
}

// AddCofounder adds another user to the founding team. Only an existing
// member (or an admin) may do this.
// POST /api/v1/startups/:id/cofounders
func (h *StartupHandler) AddCofounder(c *gin.Context) {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		response.ErrorWithStatus(c, http.StatusUnauthorized, domainerrors.CodeUnauthorized, "not authenticated")
		return
	}

	startupID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid startup id"))
		return
	}

	var input struct {
		UserID uuid.UUID `json:"userId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	if !middleware.IsAdmin(c) {
		mine, err := h.startupUsecase.ListByFounder(c.Request.Context(), actorID)
		if err != nil {
			response.Error(c, err)
			return
		}
		member := false
		for _, s := range mine {
			if s.ID == startupID {
				member = true
				break
			}
		}
		if !member {
			response.Error(c, domainerrors.Forbidden("only members can add cofounders"))
			return
		}
	}

	if err := h.startupUsecase.AddCofounder(c.Request.Context(), startupID, input.UserID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"message": "cofounder added"})
}

// ListByFounder returns the startups a user holds entrepreneurships in
// GET /api/v1/users/:id/startups
func (h *StartupHandler) ListByFounder(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid user id"))
		return
	}

	startups, err := h.startupUsecase.ListByFounder(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"startups": startups})
}
