package usecases

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"

	"founder-net.backend/internal/domain/entities"
	domainerrors "founder-net.backend/internal/domain/errors"
	"founder-net.backend/internal/domain/repositories"
	"founder-net.backend/pkg/crypto"
	"founder-net.backend/pkg/utils"
)

// UserUsecase handles user account and profile business logic
type UserUsecase struct {
	userRepo      repositories.UserRepository
	startupRepo   repositories.StartupRepository
	investorRepo  repositories.InvestorRepository
	followRepo    repositories.FollowRepository
	micropostRepo repositories.MicroPostRepository
}

// NewUserUsecase creates a new user usecase
func NewUserUsecase(
	userRepo repositories.UserRepository,
	startupRepo repositories.StartupRepository,
	investorRepo repositories.InvestorRepository,
	followRepo repositories.FollowRepository,
	micropostRepo repositories.MicroPostRepository,
) *UserUsecase {
	return &UserUsecase{
		userRepo:      userRepo,
		startupRepo:   startupRepo,
		investorRepo:  investorRepo,
		followRepo:    followRepo,
		micropostRepo: micropostRepo,
	}
}

// Register creates a new user account. Field rules come back as
// ValidationErrors; a case-insensitive email collision comes back the same
// way, attached to the email field.
func (u *UserUsecase) Register(ctx context.Context, input *entities.CreateUserInput) (*entities.User, error) {
	verr := input.Validate()
	if verr == nil {
		verr = &domainerrors.ValidationErrors{}
	}

	email := entities.NormalizeEmail(input.Email)

	// Check uniqueness against the lowercased address
	if len(verr.On("email")) == 0 {
		_, err := u.userRepo.GetByEmail(ctx, email)
		if err == nil {
			verr.Add("email", "has already been taken")
		} else if !errors.Is(err, domainerrors.ErrNotFound) {
			return nil, err
		}
	}

	if verr.Any() {
		return nil, verr
	}

	passwordHash, err := crypto.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &entities.User{
		ID:           utils.GenerateUUIDv7(),
		Email:        email,
		Name:         input.Name,
		PasswordHash: passwordHash,
		Bio:          null.NewString(input.Bio, input.Bio != ""),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := u.userRepo.Create(ctx, user); err != nil {
		// Lost the race on the unique index: same outcome as the pre-check.
		if errors.Is(err, domainerrors.ErrAlreadyExists) {
			verr.Add("email", "has already been taken")
			return nil, verr
		}
		return nil, err
	}

	return user, nil
}

// UpdateProfile applies the provided profile fields to the user. Blank
// fields stay untouched.
func (u *UserUsecase) UpdateProfile(ctx context.Context, userID uuid.UUID, input *entities.UpdateProfileInput) (*entities.User, error) {
	verr := input.Validate()
	if verr == nil {
		verr = &domainerrors.ValidationErrors{}
	}

	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.Email != "" && len(verr.On("email")) == 0 {
		email := entities.NormalizeEmail(input.Email)
		if email != user.Email {
			_, err := u.userRepo.GetByEmail(ctx, email)
			if err == nil {
				verr.Add("email", "has already been taken")
			} else if !errors.Is(err, domainerrors.ErrNotFound) {
				return nil, err
			}
			user.Email = email
		}
	}

	if verr.Any() {
		return nil, verr
	}

	if input.Name != "" {
		user.Name = input.Name
	}
	if input.Bio != "" {
		user.Bio = null.StringFrom(input.Bio)
	}

	if err := u.userRepo.Update(ctx, user); err != nil {
		if errors.Is(err, domainerrors.ErrAlreadyExists) {
			verr.Add("email", "has already been taken")
			return nil, verr
		}
		return nil, err
	}

	if input.Password != "" {
		passwordHash, err := crypto.HashPassword(input.Password)
		if err != nil {
			return nil, err
		}
		if err := u.userRepo.UpdatePassword(ctx, userID, passwordHash); err != nil {
			return nil, err
		}
	}

	return u.userRepo.GetByID(ctx, userID)
}

// GetProfile returns the user with its derived role flags and association
// counts. The flags are computed from associations on every call; nothing
// here reads a stored flag.
func (u *UserUsecase) GetProfile(ctx context.Context, userID uuid.UUID) (*entities.UserProfile, error) {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	startupCount, err := u.startupRepo.CountByFounder(ctx, userID)
	if err != nil {
		return nil, err
	}

	isInvestor, err := u.investorRepo.ExistsForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	postCount, err := u.micropostRepo.CountByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	followingUsers, err := u.followRepo.CountFollowed(ctx, userID, entities.FollowableTypeUser)
	if err != nil {
		return nil, err
	}

	followingStartups, err := u.followRepo.CountFollowed(ctx, userID, entities.FollowableTypeStartup)
	if err != nil {
		return nil, err
	}

	followers, err := u.followRepo.CountFollowers(ctx, entities.FollowTarget{
		Type: entities.FollowableTypeUser,
		ID:   userID,
	})
	if err != nil {
		return nil, err
	}

	return &entities.UserProfile{
		User:              user,
		IsEntrepreneur:    startupCount > 0,
		IsInvestor:        isInvestor,
		StartupCount:      startupCount,
		MicroPostCount:    postCount,
		FollowingUsers:    followingUsers,
		FollowingStartups: followingStartups,
		Followers:         followers,
	}, nil
}

// List lists users for the admin surface
func (u *UserUsecase) List(ctx context.Context, search string, limit, offset int) ([]*entities.User, int64, error) {
	return u.userRepo.List(ctx, search, limit, offset)
}

// Delete soft deletes a user
func (u *UserUsecase) Delete(ctx context.Context, userID uuid.UUID) error {
	return u.userRepo.SoftDelete(ctx, userID)
}
