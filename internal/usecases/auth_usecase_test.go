package usecases_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	redisv9 "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"

	"founder-net.backend/internal/domain/entities"
	domainerrors "founder-net.backend/internal/domain/errors"
	"founder-net.backend/internal/usecases"
	"founder-net.backend/pkg/crypto"
	"founder-net.backend/pkg/jwt"
	redispkg "founder-net.backend/pkg/redis"
)

const testSessionKeyHex = "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f"

func newAuthUsecaseForTest(userRepo *MockUserRepository, store *redispkg.SessionStore) *usecases.AuthUsecase {
	jwtSvc := jwt.NewJWTService("test-secret", 15*time.Minute, 24*time.Hour)
	return usecases.NewAuthUsecase(userRepo, jwtSvc, store, time.Hour)
}

func TestAuthUsecase_Login_UnknownEmail(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc := newAuthUsecaseForTest(userRepo, nil)

	userRepo.On("GetByEmail", context.Background(), "missing@mail.com").Return(nil, domainerrors.ErrNotFound).Once()

	_, err := uc.Login(context.Background(), &entities.LoginInput{
		Email:    "missing@mail.com",
		Password: "whatever",
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthUsecase_Login_WrongPassword(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc := newAuthUsecaseForTest(userRepo, nil)

	hashed, _ := crypto.HashPassword("correct-password")
	userRepo.On("GetByEmail", context.Background(), "user@mail.com").Return(&entities.User{
		ID:           uuid.New(),
		Email:        "user@mail.com",
		PasswordHash: hashed,
	}, nil).Once()

	_, err := uc.Login(context.Background(), &entities.LoginInput{
		Email:    "user@mail.com",
		Password: "wrong-password",
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthUsecase_Login_Success(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc := newAuthUsecaseForTest(userRepo, nil)

	hashed, _ := crypto.HashPassword("correct-password")
	userID := uuid.New()
	userRepo.On("GetByEmail", context.Background(), "user@mail.com").Return(&entities.User{
		ID:           userID,
		Email:        "user@mail.com",
		PasswordHash: hashed,
		IsAdmin:      true,
	}, nil).Once()

	resp, err := uc.Login(context.Background(), &entities.LoginInput{
		Email:    "user@mail.com",
		Password: "correct-password",
	})
	assert.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Empty(t, resp.SessionID)

	jwtSvc := jwt.NewJWTService("test-secret", 15*time.Minute, 24*time.Hour)
	claims, err := jwtSvc.ValidateToken(resp.AccessToken)
	assert.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.True(t, claims.IsAdmin)
}

func TestAuthUsecase_Login_WithServerSession(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Skipf("miniredis unavailable: %v", err)
	}
	defer mr.Close()

	prev := redispkg.GetClient()
	redispkg.SetClient(redisv9.NewClient(&redisv9.Options{Addr: mr.Addr()}))
	defer redispkg.SetClient(prev)

	store, err := redispkg.NewSessionStore(testSessionKeyHex)
	assert.NoError(t, err)

	userRepo := new(MockUserRepository)
	uc := newAuthUsecaseForTest(userRepo, store)

	hashed, _ := crypto.HashPassword("correct-password")
	userRepo.On("GetByEmail", context.Background(), "user@mail.com").Return(&entities.User{
		ID:           uuid.New(),
		Email:        "user@mail.com",
		PasswordHash: hashed,
	}, nil).Once()

	resp, err := uc.Login(context.Background(), &entities.LoginInput{
		Email:      "user@mail.com",
		Password:   "correct-password",
		UseSession: true,
	})
	assert.NoError(t, err)
	assert.Len(t, resp.SessionID, 64)
	assert.Equal(t, strings.ToLower(resp.SessionID), resp.SessionID)

	data, err := store.GetSession(context.Background(), resp.SessionID)
	assert.NoError(t, err)
	assert.Equal(t, resp.AccessToken, data.AccessToken)
	assert.Equal(t, resp.RefreshToken, data.RefreshToken)

	assert.NoError(t, uc.Logout(context.Background(), resp.SessionID))
	_, err = store.GetSession(context.Background(), resp.SessionID)
	assert.Error(t, err)
}

func TestAuthUsecase_Logout_NoSessionIsNoOp(t *testing.T) {
	uc := newAuthUsecaseForTest(new(MockUserRepository), nil)
	assert.NoError(t, uc.Logout(context.Background(), ""))
	assert.NoError(t, uc.Logout(context.Background(), "deadbeef"))
}

func TestAuthUsecase_RefreshToken(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc := newAuthUsecaseForTest(userRepo, nil)

	userID := uuid.New()
	jwtSvc := jwt.NewJWTService("test-secret", 15*time.Minute, 24*time.Hour)
	pair, err := jwtSvc.GenerateTokenPair(userID, "user@mail.com", false)
	assert.NoError(t, err)

	userRepo.On("GetByID", context.Background(), userID).Return(&entities.User{
		ID:    userID,
		Email: "user@mail.com",
	}, nil).Once()

	refreshed, err := uc.RefreshToken(context.Background(), pair.RefreshToken)
	assert.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)
	assert.NotEmpty(t, refreshed.RefreshToken)
}

func TestAuthUsecase_RefreshToken_DeletedUser(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc := newAuthUsecaseForTest(userRepo, nil)

	userID := uuid.New()
	jwtSvc := jwt.NewJWTService("test-secret", 15*time.Minute, 24*time.Hour)
	pair, err := jwtSvc.GenerateTokenPair(userID, "gone@mail.com", false)
	assert.NoError(t, err)

	userRepo.On("GetByID", context.Background(), userID).Return(nil, domainerrors.ErrNotFound).Once()

	_, err = uc.RefreshToken(context.Background(), pair.RefreshToken)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestAuthUsecase_RefreshToken_Garbage(t *testing.T) {
	uc := newAuthUsecaseForTest(new(MockUserRepository), nil)

	_, err := uc.RefreshToken(context.Background(), "not-a-token")
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)
}
