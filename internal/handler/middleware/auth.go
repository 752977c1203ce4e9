package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"storefront-cart/internal/handler/httperr"
	"storefront-cart/internal/pkg/cookie"
	"storefront-cart/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const (
	ctxSessionKey = "session"
	ctxUserIDKey  = "user_id"
)

var (
	errTokenRequired   = errors.New("access token required")
	errNotRegistered   = errors.New("session is not a registered user")
	errSessionNotFound = errors.New("session missing from context")
)

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

// RequireSession accepts guest and user tokens alike.
func (m *AuthMiddleware) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, errTokenRequired, "Access token required", nil)
			return
		}

		session, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid or expired token", nil)
			return
		}

		setSession(c, session)
		c.Next()
	}
}

// RequireUser must run after RequireSession.
func (m *AuthMiddleware) RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := GetSession(c); !ok {
			// Unexpected error: should be used after RequireSession()
			httperr.AbortWithError(c, http.StatusInternalServerError, errSessionNotFound, "Internal server error", nil)
			return
		}
		if _, ok := GetUserID(c); !ok {
			httperr.AbortWithError(c, http.StatusUnauthorized, errNotRegistered, "Login required", nil)
			return
		}
		c.Next()
	}
}

// OptionalSession authenticates the request if a token is present, but does not abort on failure.
func (m *AuthMiddleware) OptionalSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.Next()
			return
		}

		session, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			c.Next()
			return
		}

		setSession(c, session)
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		if token := strings.TrimSpace(authHeader[len("Bearer "):]); token != "" {
			return token
		}
	}
	return cookie.GetAccessToken(c)
}

func setSession(c *gin.Context, session usecase.Session) {
	c.Set(ctxSessionKey, session)
	if userID, ok := session.UserID(); ok {
		c.Set(ctxUserIDKey, userID)
	}
}

func GetSession(c *gin.Context) (usecase.Session, bool) {
	v, exists := c.Get(ctxSessionKey)
	if !exists {
		return usecase.Session{}, false
	}
	session, ok := v.(usecase.Session)
	return session, ok
}

func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get(ctxUserIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := userID.(uuid.UUID)
	return id, ok
}
