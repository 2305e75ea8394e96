package repositories

import (
	"context"

	"github.com/google/uuid"

	"founder-net.backend/internal/domain/entities"
)

// InvestorRepository defines investor registration data operations.
type InvestorRepository interface {
	Create(ctx context.Context, investor *entities.Investor) error
	GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.Investor, error)
	ExistsForUser(ctx context.Context, userID uuid.UUID) (bool, error)
}
