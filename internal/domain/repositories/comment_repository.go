package repositories

import (
	"context"

	"founder-net.backend/internal/domain/entities"
)

// CommentRepository defines comment data operations.
type CommentRepository interface {
	Create(ctx context.Context, comment *entities.Comment) error
	ListForTarget(ctx context.Context, target entities.CommentTarget, limit, offset int) ([]*entities.Comment, int64, error)
}
