package usecases_test

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"founder-net.backend/internal/domain/entities"
)

// Mock UnitOfWork
type MockUnitOfWork struct {
	mock.Mock
}

func (m *MockUnitOfWork) Do(ctx context.Context, fn func(context.Context) error) error {
	m.Called(ctx, fn)
	return fn(ctx)
}

// Mock UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *entities.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, user *entities.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	return m.Called(ctx, id, passwordHash).Error(0)
}

func (m *MockUserRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockUserRepository) List(ctx context.Context, search string, limit, offset int) ([]*entities.User, int64, error) {
	args := m.Called(ctx, search, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.User), args.Get(1).(int64), args.Error(2)
}

// Mock FollowRepository
type MockFollowRepository struct {
	mock.Mock
}

func (m *MockFollowRepository) Create(ctx context.Context, follow *entities.Follow) error {
	return m.Called(ctx, follow).Error(0)
}

func (m *MockFollowRepository) Delete(ctx context.Context, followerID uuid.UUID, target entities.FollowTarget) error {
	return m.Called(ctx, followerID, target).Error(0)
}

func (m *MockFollowRepository) Exists(ctx context.Context, followerID uuid.UUID, target entities.FollowTarget) (bool, error) {
	args := m.Called(ctx, followerID, target)
	return args.Bool(0), args.Error(1)
}

func (m *MockFollowRepository) CountFollowed(ctx context.Context, followerID uuid.UUID, followedType entities.FollowableType) (int64, error) {
	args := m.Called(ctx, followerID, followedType)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockFollowRepository) CountFollowers(ctx context.Context, target entities.FollowTarget) (int64, error) {
	args := m.Called(ctx, target)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockFollowRepository) UsersFollowedBy(ctx context.Context, followerID uuid.UUID) ([]*entities.User, error) {
	args := m.Called(ctx, followerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.User), args.Error(1)
}

func (m *MockFollowRepository) StartupsFollowedBy(ctx context.Context, followerID uuid.UUID) ([]*entities.Startup, error) {
	args := m.Called(ctx, followerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Startup), args.Error(1)
}

func (m *MockFollowRepository) CountCreatedSince(ctx context.Context, since time.Time) (int64, error) {
	args := m.Called(ctx, since)
	return args.Get(0).(int64), args.Error(1)
}

// Mock StartupRepository
type MockStartupRepository struct {
	mock.Mock
}

func (m *MockStartupRepository) Create(ctx context.Context, startup *entities.Startup) error {
	return m.Called(ctx, startup).Error(0)
}

func (m *MockStartupRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Startup, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Startup), args.Error(1)
}

func (m *MockStartupRepository) List(ctx context.Context, search string, limit, offset int) ([]*entities.Startup, int64, error) {
	args := m.Called(ctx, search, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.Startup), args.Get(1).(int64), args.Error(2)
}

func (m *MockStartupRepository) ListByFounder(ctx context.Context, userID uuid.UUID) ([]*entities.Startup, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Startup), args.Error(1)
}

func (m *MockStartupRepository) CountByFounder(ctx context.Context, userID uuid.UUID) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStartupRepository) AddEntrepreneurship(ctx context.Context, e *entities.Entrepreneurship) error {
	return m.Called(ctx, e).Error(0)
}

// Mock InvestorRepository
type MockInvestorRepository struct {
	mock.Mock
}

func (m *MockInvestorRepository) Create(ctx context.Context, investor *entities.Investor) error {
	return m.Called(ctx, investor).Error(0)
}

func (m *MockInvestorRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.Investor, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Investor), args.Error(1)
}

func (m *MockInvestorRepository) ExistsForUser(ctx context.Context, userID uuid.UUID) (bool, error) {
	args := m.Called(ctx, userID)
	return args.Bool(0), args.Error(1)
}

// Mock MicroPostRepository
type MockMicroPostRepository struct {
	mock.Mock
}

func (m *MockMicroPostRepository) Create(ctx context.Context, post *entities.MicroPost) error {
	return m.Called(ctx, post).Error(0)
}

func (m *MockMicroPostRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.MicroPost, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.MicroPost), args.Error(1)
}

func (m *MockMicroPostRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockMicroPostRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entities.MicroPost, int64, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.MicroPost), args.Get(1).(int64), args.Error(2)
}

func (m *MockMicroPostRepository) CountByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockMicroPostRepository) FeedFor(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entities.MicroPost, int64, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.MicroPost), args.Get(1).(int64), args.Error(2)
}

func (m *MockMicroPostRepository) CountCreatedSince(ctx context.Context, since time.Time) (int64, error) {
	args := m.Called(ctx, since)
	return args.Get(0).(int64), args.Error(1)
}

// Mock CommentRepository
type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) Create(ctx context.Context, comment *entities.Comment) error {
	return m.Called(ctx, comment).Error(0)
}

func (m *MockCommentRepository) ListForTarget(ctx context.Context, target entities.CommentTarget, limit, offset int) ([]*entities.Comment, int64, error) {
	args := m.Called(ctx, target, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.Comment), args.Get(1).(int64), args.Error(2)
}
