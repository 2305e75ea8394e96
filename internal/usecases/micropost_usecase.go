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

// MicroPostUsecase handles micro-post business logic
type MicroPostUsecase struct {
	micropostRepo repositories.MicroPostRepository
	userRepo      repositories.UserRepository
}

// NewMicroPostUsecase creates a new micropost usecase
func NewMicroPostUsecase(
	micropostRepo repositories.MicroPostRepository,
	userRepo repositories.UserRepository,
) *MicroPostUsecase {
	return &MicroPostUsecase{
		micropostRepo: micropostRepo,
		userRepo:      userRepo,
	}
}

// Create validates and stores a new micro-post authored by the given user
func (u *MicroPostUsecase) Create(ctx context.Context, userID uuid.UUID, input *entities.CreateMicroPostInput) (*entities.MicroPost, error) {
	if verr := input.Validate(); verr != nil {
		return nil, verr
	}

	post := &entities.MicroPost{
		ID:        utils.GenerateUUIDv7(),
		UserID:    userID,
		Content:   input.Content,
		CreatedAt: time.Now(),
	}
	if err := u.micropostRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// GetByID returns a single micro-post
func (u *MicroPostUsecase) GetByID(ctx context.Context, postID uuid.UUID) (*entities.MicroPost, error) {
	return u.micropostRepo.GetByID(ctx, postID)
}

// Delete removes a micro-post. Only the author or an admin may delete.
func (u *MicroPostUsecase) Delete(ctx context.Context, actorID uuid.UUID, actorIsAdmin bool, postID uuid.UUID) error {
	post, err := u.micropostRepo.GetByID(ctx, postID)
	if err != nil {
		return err
	}
	if post.UserID != actorID && !actorIsAdmin {
		return domainerrors.ErrForbidden
	}
	return u.micropostRepo.Delete(ctx, postID)
}

// ListByUser returns a user's own posts, newest first. The author must
// exist; listing posts of an unknown user is a not-found, not an empty
// page.
func (u *MicroPostUsecase) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entities.MicroPost, int64, error) {
	if _, err := u.userRepo.GetByID(ctx, userID); err != nil {
		return nil, 0, err
	}
	return u.micropostRepo.ListByUser(ctx, userID, limit, offset)
}
