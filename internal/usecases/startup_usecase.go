package usecases

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"

	"founder-net.backend/internal/domain/entities"
	"founder-net.backend/internal/domain/repositories"
	"founder-net.backend/pkg/utils"
)

// StartupUsecase handles startup business logic
type StartupUsecase struct {
	startupRepo repositories.StartupRepository
	userRepo    repositories.UserRepository
	uow         repositories.UnitOfWork
}

// NewStartupUsecase creates a new startup usecase
func NewStartupUsecase(
	startupRepo repositories.StartupRepository,
	userRepo repositories.UserRepository,
	uow repositories.UnitOfWork,
) *StartupUsecase {
	return &StartupUsecase{
		startupRepo: startupRepo,
		userRepo:    userRepo,
		uow:         uow,
	}
}

// Create stores a startup and its founding entrepreneurship in one
// transaction. The founder's entrepreneur status flips as a consequence
// of the entrepreneurship row, nothing is written to the user record.
func (u *StartupUsecase) Create(ctx context.Context, founderID uuid.UUID, input *entities.CreateStartupInput) (*entities.Startup, error) {
	if verr := input.Validate(); verr != nil {
		return nil, verr
	}

	if _, err := u.userRepo.GetByID(ctx, founderID); err != nil {
		return nil, err
	}

	now := time.Now()
	startup := &entities.Startup{
		ID:        utils.GenerateUUIDv7(),
		Name:      input.Name,
		Pitch:     null.NewString(input.Pitch, input.Pitch != ""),
		Website:   null.NewString(input.Website, input.Website != ""),
		Tags:      input.Tags,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := u.uow.Do(ctx, func(txCtx context.Context) error {
		if err := u.startupRepo.Create(txCtx, startup); err != nil {
			return err
		}
		return u.startupRepo.AddEntrepreneurship(txCtx, &entities.Entrepreneurship{
			ID:        utils.GenerateUUIDv7(),
			UserID:    founderID,
			StartupID: startup.ID,
			Role:      entities.EntrepreneurRoleFounder,
			CreatedAt: now,
		})
	})
	if err != nil {
		return nil, err
	}
	return startup, nil
}

// GetByID returns a single startup
func (u *StartupUsecase) GetByID(ctx context.Context, startupID uuid.UUID) (*entities.Startup, error) {
	return u.startupRepo.GetByID(ctx, startupID)
}

// List returns startups matching an optional name search
func (u *StartupUsecase) List(ctx context.Context, search string, limit, offset int) ([]*entities.Startup, int64, error) {
	return u.startupRepo.List(ctx, search, limit, offset)
}

// ListByFounder returns the startups a user holds entrepreneurships in
func (u *StartupUsecase) ListByFounder(ctx context.Context, userID uuid.UUID) ([]*entities.Startup, error) {
	if _, err := u.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	return u.startupRepo.ListByFounder(ctx, userID)
}

// AddCofounder records an additional entrepreneurship on an existing
// startup. Duplicate memberships surface as conflicts.
func (u *StartupUsecase) AddCofounder(ctx context.Context, startupID, userID uuid.UUID) error {
	if _, err := u.startupRepo.GetByID(ctx, startupID); err != nil {
		return err
	}
	if _, err := u.userRepo.GetByID(ctx, userID); err != nil {
		return err
	}
	return u.startupRepo.AddEntrepreneurship(ctx, &entities.Entrepreneurship{
		ID:        utils.GenerateUUIDv7(),
		UserID:    userID,
		StartupID: startupID,
		Role:      entities.EntrepreneurRoleCofounder,
		CreatedAt: time.Now(),
	})
}
