package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"founder-net.backend/internal/domain/entities"
	domainerrors "founder-net.backend/internal/domain/errors"
	"founder-net.backend/internal/interfaces/http/middleware"
	"founder-net.backend/internal/interfaces/http/response"
	"founder-net.backend/internal/usecases"
)

// InvestorHandler handles investor endpoints
type InvestorHandler struct {
	investorUsecase *usecases.InvestorUsecase
}

// NewInvestorHandler creates a new investor handler
func NewInvestorHandler(investorUsecase *usecases.InvestorUsecase) *InvestorHandler {
	return &InvestorHandler{
		investorUsecase: investorUsecase,
	}
}

// Register records the authenticated user as an investor
// POST /api/v1/investors
func (h *InvestorHandler) Register(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.ErrorWithStatus(c, http.StatusUnauthorized, domainerrors.CodeUnauthorized, "not authenticated")
		return
	}

	var input entities.RegisterInvestorInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	investor, err := h.investorUsecase.Register(c.Request.Context(), userID, &input)
	if err != nil {
		if err == domainerrors.ErrAlreadyExists {
			response.Error(c, domainerrors.Conflict("already registered as an investor"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"investor": investor})
}

// Me returns the authenticated user's investor record
// GET /api/v1/investors/me
func (h *InvestorHandler) Me(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.ErrorWithStatus(c, http.StatusUnauthorized, domainerrors.CodeUnauthorized, "not authenticated")
		return
	}

	investor, err := h.investorUsecase.GetForUser(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"investor": investor})
}
