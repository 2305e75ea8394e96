package repositories

import (
	"context"

	"github.com/google/uuid"

	"founder-net.backend/internal/domain/entities"
)

// StartupRepository defines startup and entrepreneurship data operations.
type StartupRepository interface {
	Create(ctx context.Context, startup *entities.Startup) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Startup, error)
	List(ctx context.Context, search string, limit, offset int) ([]*entities.Startup, int64, error)
	ListByFounder(ctx context.Context, userID uuid.UUID) ([]*entities.Startup, error)
	CountByFounder(ctx context.Context, userID uuid.UUID) (int64, error)
	AddEntrepreneurship(ctx context.Context, e *entities.Entrepreneurship) error
}
