package middleware

import (
	"net/http"
	"strings"

	"github.com/entnt/dentalcare-server/internal/api/http/response"
	"github.com/entnt/dentalcare-server/internal/logger"
	"github.com/entnt/dentalcare-server/internal/model"
	"github.com/gin-gonic/gin"
)

// callerKey is the gin context key under which the authenticated user is stored.
const callerKey = "caller"

// UserResolver resolves an authenticated user by ID.
type UserResolver interface {
	UserByID(id string) (model.User, bool)
}

// Auth validates bearer tokens and injects the caller user into the request
// context.
type Auth struct {
	tokens model.TokenManager
	users  UserResolver
	logger *logger.Logger
}

// NewAuth creates a new Auth middleware instance.
func NewAuth(tokens model.TokenManager, users UserResolver, logger *logger.Logger) *Auth {
	return &Auth{tokens: tokens, users: users, logger: logger}
}

// Handle parses the Authorization header, validates the token and stores the
// resolved caller for handlers.
func (m *Auth) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		parts := strings.SplitN(header, " ", 2)
		if header == "" || len(parts) != 2 || parts[0] != "Bearer" {
			response.JSON(c, http.StatusUnauthorized, false, "missing bearer token", nil)
			c.Abort()
			return
		}

		userID, err := m.tokens.ParseAccessToken(parts[1])
		if err != nil {
			response.JSON(c, http.StatusUnauthorized, false, "invalid token", nil)
			c.Abort()
			return
		}

		user, ok := m.users.UserByID(userID)
		if !ok {
			// Valid token for a user that no longer exists.
			m.logger.Warn("token resolved to unknown user", "user_id", userID)
			response.JSON(c, http.StatusUnauthorized, false, "invalid token", nil)
			c.Abort()
			return
		}

		c.Set(callerKey, user)
		c.Next()
	}
}

// Caller extracts the authenticated user stored by Handle.
func Caller(c *gin.Context) (model.User, bool) {
	v, ok := c.Get(callerKey)
	if !ok {
		return model.User{}, false
	}
	user, ok := v.(model.User)
	return user, ok
}
