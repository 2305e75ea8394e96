package repositories

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"founder-net.backend/internal/domain/entities"
	"founder-net.backend/internal/infrastructure/models"
)

// FollowRepository implements follow-edge data operations
type FollowRepository struct {
	db *gorm.DB
}

// NewFollowRepository creates a new follow repository
func NewFollowRepository(db *gorm.DB) *FollowRepository {
	return &FollowRepository{db: db}
}

// isUniqueViolation reports whether err is a unique-constraint failure.
// Checks the driver-specific shapes: pq error 23505 on postgres, the
// message text on sqlite, and GORM's translated sentinel.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// Create inserts a follow edge. A duplicate edge, including one created by
// a concurrent request racing the unique index, is treated as success.
func (r *FollowRepository) Create(ctx context.Context, follow *entities.Follow) error {
	m := &models.Follow{
		ID:           follow.ID,
		FollowerID:   follow.FollowerID,
		FollowedID:   follow.FollowedID,
		FollowedType: string(follow.FollowedType),
		CreatedAt:    follow.CreatedAt,
	}

	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Create(m).Error; err != nil {
		if isUniqueViolation(err) {
			return nil
		}
		return err
	}
	return nil
}

// Delete removes a follow edge. Deleting an edge that does not exist is a
// no-op, not an error.
func (r *FollowRepository) Delete(ctx context.Context, followerID uuid.UUID, target entities.FollowTarget) error {
	db := GetDB(ctx, r.db)
	return db.WithContext(ctx).
		Where("follower_id = ? AND followed_id = ? AND followed_type = ?", followerID, target.ID, string(target.Type)).
		Delete(&models.Follow{}).Error
}

// Exists reports whether the follow edge is present
func (r *FollowRepository) Exists(ctx context.Context, followerID uuid.UUID, target entities.FollowTarget) (bool, error) {
	var count int64
	db := GetDB(ctx, r.db)
	err := db.WithContext(ctx).Model(&models.Follow{}).
		Where("follower_id = ? AND followed_id = ? AND followed_type = ?", followerID, target.ID, string(target.Type)).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// CountFollowed counts how many targets of the given kind the user follows
func (r *FollowRepository) CountFollowed(ctx context.Context, followerID uuid.UUID, followedType entities.FollowableType) (int64, error) {
	var count int64
	db := GetDB(ctx, r.db)
	err := db.WithContext(ctx).Model(&models.Follow{}).
		Where("follower_id = ? AND followed_type = ?", followerID, string(followedType)).
		Count(&count).Error
	return count, err
}

// CountFollowers counts how many users follow the target
func (r *FollowRepository) CountFollowers(ctx context.Context, target entities.FollowTarget) (int64, error) {
	var count int64
	db := GetDB(ctx, r.db)
	err := db.WithContext(ctx).Model(&models.Follow{}).
		Where("followed_id = ? AND followed_type = ?", target.ID, string(target.Type)).
		Count(&count).Error
	return count, err
}

// UsersFollowedBy returns the users the given user follows, newest edge first
func (r *FollowRepository) UsersFollowedBy(ctx context.Context, followerID uuid.UUID) ([]*entities.User, error) {
	var userModels []models.User
	db := GetDB(ctx, r.db)
	err := db.WithContext(ctx).
		Table("users").
		Joins("JOIN follows f ON f.followed_id = users.id").
		Where("f.follower_id = ? AND f.followed_type = ? AND users.deleted_at IS NULL", followerID, string(entities.FollowableTypeUser)).
		Order("f.created_at DESC").
		Find(&userModels).Error
	if err != nil {
		return nil, err
	}

	userRepo := &UserRepository{db: r.db}
	var users []*entities.User
	for _, m := range userModels {
		model := m
		users = append(users, userRepo.toEntity(&model))
	}
	return users, nil
}

// StartupsFollowedBy returns the startups the given user follows, newest edge first
func (r *FollowRepository) StartupsFollowedBy(ctx context.Context, followerID uuid.UUID) ([]*entities.Startup, error) {
	var startupModels []models.Startup
	db := GetDB(ctx, r.db)
	err := db.WithContext(ctx).
		Table("startups").
		Joins("JOIN follows f ON f.followed_id = startups.id").
		Where("f.follower_id = ? AND f.followed_type = ? AND startups.deleted_at IS NULL", followerID, string(entities.FollowableTypeStartup)).
		Order("f.created_at DESC").
		Find(&startupModels).Error
	if err != nil {
		return nil, err
	}

	startupRepo := &StartupRepository{db: r.db}
	var startups []*entities.Startup
	for _, m := range startupModels {
		model := m
		startups = append(startups, startupRepo.toEntity(&model))
	}
	return startups, nil
}

// CountCreatedSince counts follow edges created at or after the given time
func (r *FollowRepository) CountCreatedSince(ctx context.Context, since time.Time) (int64, error) {
	var count int64
	db := GetDB(ctx, r.db)
	err := db.WithContext(ctx).Model(&models.Follow{}).
		Where("created_at >= ?", since).
		Count(&count).Error
	return count, err
}
