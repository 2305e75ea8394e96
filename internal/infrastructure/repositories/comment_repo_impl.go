package repositories

import (
	"context"

	"gorm.io/gorm"

	"founder-net.backend/internal/domain/entities"
	"founder-net.backend/internal/infrastructure/models"
)

// CommentRepository implements comment data operations
type CommentRepository struct {
	db *gorm.DB
}

// NewCommentRepository creates a new comment repository
func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

// Create creates a new comment
func (r *CommentRepository) Create(ctx context.Context, comment *entities.Comment) error {
	m := &models.Comment{
		ID:              comment.ID,
		AuthorID:        comment.AuthorID,
		CommentableID:   comment.CommentableID,
		CommentableType: string(comment.CommentableType),
		Body:            comment.Body,
		CreatedAt:       comment.CreatedAt,
	}

	db := GetDB(ctx, r.db)
	return db.WithContext(ctx).Create(m).Error
}

// ListForTarget lists comments on a target, newest first
func (r *CommentRepository) ListForTarget(ctx context.Context, target entities.CommentTarget, limit, offset int) ([]*entities.Comment, int64, error) {
	db := GetDB(ctx, r.db)

	var total int64
	if err := db.WithContext(ctx).Model(&models.Comment{}).
		Where("commentable_id = ? AND commentable_type = ?", target.ID, string(target.Type)).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query := db.WithContext(ctx).
		Where("commentable_id = ? AND commentable_type = ?", target.ID, string(target.Type)).
		Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}

	var ms []models.Comment
	if err := query.Find(&ms).Error; err != nil {
		return nil, 0, err
	}

	var comments []*entities.Comment
	for _, m := range ms {
		model := m
		comments = append(comments, r.toEntity(&model))
	}
	return comments, total, nil
}

func (r *CommentRepository) toEntity(m *models.Comment) *entities.Comment {
	return &entities.Comment{
		ID:              m.ID,
		AuthorID:        m.AuthorID,
		CommentableID:   m.CommentableID,
		CommentableType: entities.CommentableType(m.CommentableType),
		Body:            m.Body,
		CreatedAt:       m.CreatedAt,
	}
}
