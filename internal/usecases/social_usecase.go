package usecases

import (
	"context"
	"time"

	"github.com/google/uuid"

	"founder-net.backend/internal/domain/entities"
	domainerrors "founder-net.backend/internal/domain/errors"
	"founder-net.backend/internal/domain/repositories"
	"founder-net.backend/pkg/utils"
)

// SocialUsecase handles the follow graph business logic
type SocialUsecase struct {
	followRepo  repositories.FollowRepository
	userRepo    repositories.UserRepository
	startupRepo repositories.StartupRepository
}

// NewSocialUsecase creates a new social usecase
func NewSocialUsecase(
	followRepo repositories.FollowRepository,
	userRepo repositories.UserRepository,
	startupRepo repositories.StartupRepository,
) *SocialUsecase {
	return &SocialUsecase{
		followRepo:  followRepo,
		userRepo:    userRepo,
		startupRepo: startupRepo,
	}
}

// Follow inserts a follow edge after checking the target exists. Following
// an already-followed target is a no-op; the repository swallows the
// storage-level duplicate either way.
func (u *SocialUsecase) Follow(ctx context.Context, followerID uuid.UUID, target entities.FollowTarget) error {
	if verr := target.Validate(); verr != nil {
		return verr
	}

	if err := u.targetExists(ctx, target); err != nil {
		return err
	}

	return u.followRepo.Create(ctx, &entities.Follow{
		ID:           utils.GenerateUUIDv7(),
		FollowerID:   followerID,
		FollowedID:   target.ID,
		FollowedType: target.Type,
		CreatedAt:    time.Now(),
	})
}

// Unfollow deletes the follow edge if present. Absent edges, including
// edges to since-deleted targets, unfollow cleanly.
func (u *SocialUsecase) Unfollow(ctx context.Context, followerID uuid.UUID, target entities.FollowTarget) error {
	if verr := target.Validate(); verr != nil {
		return verr
	}
	return u.followRepo.Delete(ctx, followerID, target)
}

// IsFollowing reports whether the follow edge exists
func (u *SocialUsecase) IsFollowing(ctx context.Context, followerID uuid.UUID, target entities.FollowTarget) (bool, error) {
	if verr := target.Validate(); verr != nil {
		return false, verr
	}
	return u.followRepo.Exists(ctx, followerID, target)
}

// UsersFollowed returns the users a user follows together with the count
func (u *SocialUsecase) UsersFollowed(ctx context.Context, userID uuid.UUID) ([]*entities.User, int64, error) {
	users, err := u.followRepo.UsersFollowedBy(ctx, userID)
	if err != nil {
		return nil, 0, err
	}
	count, err := u.followRepo.CountFollowed(ctx, userID, entities.FollowableTypeUser)
	if err != nil {
		return nil, 0, err
	}
	return users, count, nil
}

// StartupsFollowed returns the startups a user follows together with the count
func (u *SocialUsecase) StartupsFollowed(ctx context.Context, userID uuid.UUID) ([]*entities.Startup, int64, error) {
	startups, err := u.followRepo.StartupsFollowedBy(ctx, userID)
	if err != nil {
		return nil, 0, err
	}
	count, err := u.followRepo.CountFollowed(ctx, userID, entities.FollowableTypeStartup)
	if err != nil {
		return nil, 0, err
	}
	return startups, count, nil
}

// CountFollowers counts the followers of a target
func (u *SocialUsecase) CountFollowers(ctx context.Context, target entities.FollowTarget) (int64, error) {
	if verr := target.Validate(); verr != nil {
		return 0, verr
	}
	return u.followRepo.CountFollowers(ctx, target)
}

func (u *SocialUsecase) targetExists(ctx context.Context, target entities.FollowTarget) error {
	switch target.Type {
	case entities.FollowableTypeUser:
		_, err := u.userRepo.GetByID(ctx, target.ID)
		return err
	case entities.FollowableTypeStartup:
		_, err := u.startupRepo.GetByID(ctx, target.ID)
		return err
	}
	return domainerrors.ErrNotFollowable
}
