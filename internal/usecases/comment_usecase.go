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

// CommentUsecase handles comments on startups and micro-posts
type CommentUsecase struct {
	commentRepo   repositories.CommentRepository
	startupRepo   repositories.StartupRepository
	micropostRepo repositories.MicroPostRepository
}

// NewCommentUsecase creates a new comment usecase
func NewCommentUsecase(
	commentRepo repositories.CommentRepository,
	startupRepo repositories.StartupRepository,
	micropostRepo repositories.MicroPostRepository,
) *CommentUsecase {
	return &CommentUsecase{
		commentRepo:   commentRepo,
		startupRepo:   startupRepo,
		micropostRepo: micropostRepo,
	}
}

// Add validates and stores a comment after checking the target exists
func (u *CommentUsecase) Add(ctx context.Context, authorID uuid.UUID, input *entities.AddCommentInput) (*entities.Comment, error) {
	if verr := input.Validate(); verr != nil {
		return nil, verr
	}

	if err := u.targetExists(ctx, input.Target); err != nil {
		return nil, err
	}

	comment := &entities.Comment{
		ID:              utils.GenerateUUIDv7(),
		AuthorID:        authorID,
		CommentableID:   input.Target.ID,
		CommentableType: input.Target.Type,
		Body:            input.Body,
		CreatedAt:       time.Now(),
	}
	if err := u.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// ListForTarget returns a target's comments, newest first
func (u *CommentUsecase) ListForTarget(ctx context.Context, target entities.CommentTarget, limit, offset int) ([]*entities.Comment, int64, error) {
	if verr := target.Validate(); verr != nil {
		return nil, 0, verr
	}
	if err := u.targetExists(ctx, target); err != nil {
		return nil, 0, err
	}
	return u.commentRepo.ListForTarget(ctx, target, limit, offset)
}

func (u *CommentUsecase) targetExists(ctx context.Context, target entities.CommentTarget) error {
	switch target.Type {
	case entities.CommentableTypeStartup:
		_, err := u.startupRepo.GetByID(ctx, target.ID)
		return err
	case entities.CommentableTypeMicroPost:
		_, err := u.micropostRepo.GetByID(ctx, target.ID)
		return err
	}
	return domainerrors.ErrNotCommentable
}
