package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"

	"founder-net.backend/internal/domain/entities"
)

// MicroPostRepository defines micropost data operations. FeedFor assembles
// the live feed for a user: their own posts plus posts from every user they
// follow, newest first. The feed is computed per call, never stored.
type MicroPostRepository interface {
	Create(ctx context.Context, post *entities.MicroPost) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.MicroPost, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entities.MicroPost, int64, error)
	CountByUser(ctx context.Context, userID uuid.UUID) (int64, error)
	FeedFor(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entities.MicroPost, int64, error)
	CountCreatedSince(ctx context.Context, since time.Time) (int64, error)
}
