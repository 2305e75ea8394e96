package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	domainerrors "founder-net.backend/internal/domain/errors"
	"founder-net.backend/pkg/jwt"
	"founder-net.backend/pkg/logger"
	"founder-net.backend/pkg/redis"
)

const (
	// AuthorizationHeader is the header key for authorization
	AuthorizationHeader = "Authorization"
	// SessionIDHeader carries a server-side session id instead of a token
	SessionIDHeader = "X-Session-ID"
	// BearerPrefix is the prefix for bearer tokens
	BearerPrefix = "Bearer "
	// UserIDKey is the context key for user ID
	UserIDKey = "userId"
	// UserEmailKey is the context key for user email
	UserEmailKey = "userEmail"
	// IsAdminKey is the context key for the admin flag
	IsAdminKey = "isAdmin"
)

// AuthMiddleware authenticates requests. Two paths: a bearer token in the
// Authorization header, or a session id whose tokens live server-side in
// redis. sessionStore may be nil when sessions are disabled.
func AuthMiddleware(jwtService *jwt.JWTService, sessionStore *redis.SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := resolveToken(c, sessionStore)
		if !ok {
			return
		}

		claims, err := jwtService.ValidateToken(tokenString)
		if err != nil {
			logger.Debug(c.Request.Context(), "token rejected", zap.String("path", c.Request.URL.Path), zap.Error(err))
			if err == jwt.ErrExpiredToken {
				abortUnauthorized(c, "token has expired")
				return
			}
			abortUnauthorized(c, "invalid token")
			return
		}

		c.Set(UserIDKey, claims.UserID)
		c.Set(UserEmailKey, claims.Email)
		c.Set(IsAdminKey, claims.IsAdmin)

		c.Next()
	}
}

func resolveToken(c *gin.Context, sessionStore *redis.SessionStore) (string, bool) {
	if sessionID := c.GetHeader(SessionIDHeader); sessionID != "" && sessionStore != nil {
		session, err := sessionStore.GetSession(c.Request.Context(), sessionID)
		if err != nil {
			abortUnauthorized(c, "invalid or expired session")
			return "", false
		}
		return session.AccessToken, true
	}

	authHeader := c.GetHeader(AuthorizationHeader)
	if authHeader == "" {
		abortUnauthorized(c, "authorization is required")
		return "", false
	}
	if !strings.HasPrefix(authHeader, BearerPrefix) {
		abortUnauthorized(c, "invalid authorization format, use: Bearer <token>")
		return "", false
	}
	return strings.TrimPrefix(authHeader, BearerPrefix), true
}

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"code":    domainerrors.CodeUnauthorized,
		"message": message,
	})
}

// GetUserID gets the user ID from context
func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get(UserIDKey)
	if !exists {
		return uuid.Nil, false
	}
	return userID.(uuid.UUID), true
}

// GetUserEmail gets the user email from context
func GetUserEmail(c *gin.Context) (string, bool) {
	email, exists := c.Get(UserEmailKey)
	if !exists {
		return "", false
	}
	return email.(string), true
}

// IsAdmin reports whether the authenticated user is an admin
func IsAdmin(c *gin.Context) bool {
	isAdmin, exists := c.Get(IsAdminKey)
	if !exists {
		return false
	}
	return isAdmin.(bool)
}

// RequireAdmin creates a middleware that rejects non-admin users
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !IsAdmin(c) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"code":    domainerrors.CodeForbidden,
				"message": "admin access required",
			})
			return
		}
		c.Next()
	}
}
