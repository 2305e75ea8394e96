package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"

	"founder-net.backend/internal/domain/entities"
)

// FollowRepository defines follow-edge data operations. Create and Delete
// are idempotent: a duplicate insert (including one lost to a concurrent
// race on the unique index) and a delete of a missing edge both succeed.
type FollowRepository interface {
	Create(ctx context.Context, follow *entities.Follow) error
	Delete(ctx context.Context, followerID uuid.UUID, target entities.FollowTarget) error
	Exists(ctx context.Context, followerID uuid.UUID, target entities.FollowTarget) (bool, error)
	CountFollowed(ctx context.Context, followerID uuid.UUID, followedType entities.FollowableType) (int64, error)
	CountFollowers(ctx context.Context, target entities.FollowTarget) (int64, error)
	UsersFollowedBy(ctx context.Context, followerID uuid.UUID) ([]*entities.User, error)
	StartupsFollowedBy(ctx context.Context, followerID uuid.UUID) ([]*entities.Startup, error)
	CountCreatedSince(ctx context.Context, since time.Time) (int64, error)
}
