package usecases

import (
	"context"

	"github.com/google/uuid"

	"founder-net.backend/internal/domain/entities"
	"founder-net.backend/internal/domain/repositories"
)

// FeedUsecase serves the home feed. The feed is computed per request from
// the follow graph; nothing is precomputed or cached, so unfollowing a
// user drops their posts from the very next read.
type FeedUsecase struct {
	micropostRepo repositories.MicroPostRepository
}

// NewFeedUsecase creates a new feed usecase
func NewFeedUsecase(micropostRepo repositories.MicroPostRepository) *FeedUsecase {
	return &FeedUsecase{micropostRepo: micropostRepo}
}

// Feed returns the user's own microposts merged with those of every user
// they follow, newest first. Followed startups contribute nothing here.
func (u *FeedUsecase) Feed(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entities.MicroPost, int64, error) {
	return u.micropostRepo.FeedFor(ctx, userID, limit, offset)
}
