package usecases

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"founder-net.backend/internal/domain/entities"
	domainerrors "founder-net.backend/internal/domain/errors"
	"founder-net.backend/internal/domain/repositories"
	"founder-net.backend/pkg/crypto"
	"founder-net.backend/pkg/jwt"
	"founder-net.backend/pkg/redis"
)

// AuthUsecase handles authentication business logic
type AuthUsecase struct {
	userRepo     repositories.UserRepository
	jwtService   *jwt.JWTService
	sessionStore *redis.SessionStore
	sessionTTL   time.Duration
}

// NewAuthUsecase creates a new auth usecase. sessionStore may be nil when
// server-side sessions are disabled; login then only issues tokens.
func NewAuthUsecase(
	userRepo repositories.UserRepository,
	jwtService *jwt.JWTService,
	sessionStore *redis.SessionStore,
	sessionTTL time.Duration,
) *AuthUsecase {
	return &AuthUsecase{
		userRepo:     userRepo,
		jwtService:   jwtService,
		sessionStore: sessionStore,
		sessionTTL:   sessionTTL,
	}
}

// Login authenticates a user and returns tokens, plus a server-side session
// when the client asks for one
func (u *AuthUsecase) Login(ctx context.Context, input *entities.LoginInput) (*entities.AuthResponse, error) {
	user, err := u.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !crypto.CheckPassword(input.Password, user.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	tokenPair, err := u.jwtService.GenerateTokenPair(user.ID, user.Email, user.IsAdmin)
	if err != nil {
		return nil, err
	}

	resp := &entities.AuthResponse{
		AccessToken:  tokenPair.AccessToken,
		RefreshToken: tokenPair.RefreshToken,
		User:         user,
	}

	if input.UseSession && u.sessionStore != nil {
		sessionID, err := crypto.GenerateSessionID()
		if err != nil {
			return nil, err
		}
		err = u.sessionStore.CreateSession(ctx, sessionID, &redis.SessionData{
			AccessToken:  tokenPair.AccessToken,
			RefreshToken: tokenPair.RefreshToken,
		}, u.sessionTTL)
		if err != nil {
			return nil, err
		}
		resp.SessionID = sessionID
	}

	return resp, nil
}

// RefreshToken generates new tokens from a refresh token
func (u *AuthUsecase) RefreshToken(ctx context.Context, refreshToken string) (*jwt.TokenPair, error) {
	claims, err := u.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return nil, err
	}

	// Re-read the user so revoked or deleted accounts stop refreshing
	user, err := u.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}

	return u.jwtService.GenerateTokenPair(user.ID, user.Email, user.IsAdmin)
}

// Logout removes the server-side session, if any
func (u *AuthUsecase) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" || u.sessionStore == nil {
		return nil
	}
	return u.sessionStore.DeleteSession(ctx, sessionID)
}

// GetUserByID gets a user by ID
func (u *AuthUsecase) GetUserByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	return u.userRepo.GetByID(ctx, id)
}
