package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"founder-net.backend/internal/domain/entities"
	domainerrors "founder-net.backend/internal/domain/errors"
	"founder-net.backend/internal/interfaces/http/response"
	"founder-net.backend/internal/usecases"
	"founder-net.backend/pkg/utils"
)

// AdminHandler handles the admin-only surface
type AdminHandler struct {
	userUsecase *usecases.UserUsecase
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(userUsecase *usecases.UserUsecase) *AdminHandler {
	return &AdminHandler{
		userUsecase: userUsecase,
	}
}

// ListUsers lists users with an optional name/email search
// GET /api/v1/admin/users
func (h *AdminHandler) ListUsers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	pagination := utils.GetPaginationParams(page, limit)

	users, total, err := h.userUsecase.List(c.Request.Context(), c.Query("search"), pagination.Limit, pagination.CalculateOffset())
	if err != nil {
		response.Error(c, err)
		return
	}

	if users == nil {
		users = []*entities.User{}
	}
	response.Success(c, http.StatusOK, gin.H{
		"users": users,
		"meta":  utils.CalculateMeta(total, pagination.Page, pagination.Limit),
	})
}

// DeleteUser soft deletes a user account
// DELETE /api/v1/admin/users/:id
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid user id"))
		return
	}

	if err := h.userUsecase.Delete(c.Request.Context(), userID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusNoContent, nil)
}
