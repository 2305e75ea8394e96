package usecases

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"

	"founder-net.backend/internal/domain/entities"
	"founder-net.backend/internal/domain/repositories"
	"founder-net.backend/pkg/utils"
)

// InvestorUsecase handles investor registration
type InvestorUsecase struct {
	investorRepo repositories.InvestorRepository
	userRepo     repositories.UserRepository
}

// NewInvestorUsecase creates a new investor usecase
func NewInvestorUsecase(
	investorRepo repositories.InvestorRepository,
	userRepo repositories.UserRepository,
) *InvestorUsecase {
	return &InvestorUsecase{
		investorRepo: investorRepo,
		userRepo:     userRepo,
	}
}

// Register creates the user's investor record. A user holds at most one;
// registering twice is a conflict.
func (u *InvestorUsecase) Register(ctx context.Context, userID uuid.UUID, input *entities.RegisterInvestorInput) (*entities.Investor, error) {
	if _, err := u.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	now := time.Now()
	investor := &entities.Investor{
		ID:        utils.GenerateUUIDv7(),
		UserID:    userID,
		FirmName:  null.NewString(input.FirmName, input.FirmName != ""),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := u.investorRepo.Create(ctx, investor); err != nil {
		return nil, err
	}
	return investor, nil
}

// GetForUser returns the user's investor record if one exists
func (u *InvestorUsecase) GetForUser(ctx context.Context, userID uuid.UUID) (*entities.Investor, error) {
	return u.investorRepo.GetByUserID(ctx, userID)
}
