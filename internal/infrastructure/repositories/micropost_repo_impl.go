package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"founder-net.backend/internal/domain/entities"
	domainerrors "founder-net.backend/internal/domain/errors"
	"founder-net.backend/internal/infrastructure/models"
)

// MicroPostRepository implements micropost data operations
type MicroPostRepository struct {
	db *gorm.DB
}

// NewMicroPostRepository creates a new micropost repository
func NewMicroPostRepository(db *gorm.DB) *MicroPostRepository {
	return &MicroPostRepository{db: db}
}

// Create creates a new micropost
func (r *MicroPostRepository) Create(ctx context.Context, post *entities.MicroPost) error {
	m := &models.MicroPost{
		ID:        post.ID,
		UserID:    post.UserID,
		Content:   post.Content,
		CreatedAt: post.CreatedAt,
	}

	db := GetDB(ctx, r.db)
	return db.WithContext(ctx).Create(m).Error
}

// GetByID gets a micropost by ID
func (r *MicroPostRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.MicroPost, error) {
	var m models.MicroPost
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// Delete removes a micropost
func (r *MicroPostRepository) Delete(ctx context.Context, id uuid.UUID) error {
	db := GetDB(ctx, r.db)
	result := db.WithContext(ctx).Delete(&models.MicroPost{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// ListByUser lists a single user's microposts, newest first
func (r *MicroPostRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entities.MicroPost, int64, error) {
	db := GetDB(ctx, r.db)

	var total int64
	if err := db.WithContext(ctx).Model(&models.MicroPost{}).
		Where("user_id = ?", userID).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query := db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}

	var ms []models.MicroPost
	if err := query.Find(&ms).Error; err != nil {
		return nil, 0, err
	}

	return r.toEntities(ms), total, nil
}

// CountByUser counts a user's microposts
func (r *MicroPostRepository) CountByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	db := GetDB(ctx, r.db)
	err := db.WithContext(ctx).Model(&models.MicroPost{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}

// FeedFor assembles the live feed: the user's own posts plus posts from
// every user they follow. Followed startups never contribute posts, so the
// subquery filters on the user discriminant. Computed fresh on every call.
func (r *MicroPostRepository) FeedFor(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entities.MicroPost, int64, error) {
	db := GetDB(ctx, r.db)

	var total int64
	if err := db.WithContext(ctx).Model(&models.MicroPost{}).
		Where("user_id IN (?) OR user_id = ?", r.followedUserIDs(ctx, db, userID), userID).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query := db.WithContext(ctx).
		Preload("User").
		Where("user_id IN (?) OR user_id = ?", r.followedUserIDs(ctx, db, userID), userID).
		Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}

	var ms []models.MicroPost
	if err := query.Find(&ms).Error; err != nil {
		return nil, 0, err
	}

	return r.toEntities(ms), total, nil
}

// CountCreatedSince counts microposts created at or after the given time
func (r *MicroPostRepository) CountCreatedSince(ctx context.Context, since time.Time) (int64, error) {
	var count int64
	db := GetDB(ctx, r.db)
	err := db.WithContext(ctx).Model(&models.MicroPost{}).
		Where("created_at >= ?", since).
		Count(&count).Error
	return count, err
}

// followedUserIDs builds the subquery of user ids the given user follows
func (r *MicroPostRepository) followedUserIDs(ctx context.Context, db *gorm.DB, userID uuid.UUID) *gorm.DB {
	return db.WithContext(ctx).Model(&models.Follow{}).
		Select("followed_id").
		Where("follower_id = ? AND followed_type = ?", userID, string(entities.FollowableTypeUser))
}

func (r *MicroPostRepository) toEntity(m *models.MicroPost) *entities.MicroPost {
	post := &entities.MicroPost{
		ID:        m.ID,
		UserID:    m.UserID,
		Content:   m.Content,
		CreatedAt: m.CreatedAt,
	}
	if m.User != nil {
		userRepo := &UserRepository{db: r.db}
		post.Author = userRepo.toEntity(m.User)
	}
	return post
}

func (r *MicroPostRepository) toEntities(ms []models.MicroPost) []*entities.MicroPost {
	var posts []*entities.MicroPost
	for _, m := range ms {
		model := m
		posts = append(posts, r.toEntity(&model))
	}
	return posts
}
