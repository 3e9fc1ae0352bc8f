package middleware

import (
	"log/slog"

	"event-reservation/internal/domain/user"
	"event-reservation/internal/pkg/cookie"
	"event-reservation/internal/usecase"
	"event-reservation/internal/usecase/queries"
	"event-reservation/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
	users          queries.UserQueries
}

const ctxCurrentUserKey = "current_user"

func NewAuthMiddleware(tokenValidator usecase.TokenValidator, users queries.UserQueries) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
		users:          users,
	}
}

// Authenticate resolves the caller from the session cookie or bearer token.
// It never aborts: a missing or invalid token leaves the request anonymous,
// and the usecases decide whether that is allowed.
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := cookie.ExtractToken(c)
		if token == "" {
			c.Next()
			return
		}

		userID, _, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			c.Next()
			return
		}

		// role comes from the users table, not the token
		u, err := m.users.GetCurrentUser(c.Request.Context(), userID)
		if err != nil {
			slog.Warn("Authenticated user could not be loaded", "user_id", userID.String(), "error", err.Error())
			c.Next()
			return
		}

		role, err := user.NewRole(u.Role)
		if err != nil {
			slog.Warn("Authenticated user has unknown role", "user_id", userID.String(), "role", u.Role)
			c.Next()
			return
		}

		SetCurrentUser(c, &shared.Actor{
			ID:    u.ID,
			Name:  u.Name,
			Email: u.Email,
			Role:  role,
		})
		c.Next()
	}
}

func SetCurrentUser(c *gin.Context, actor *shared.Actor) {
	c.Set(ctxCurrentUserKey, actor)
}

// GetCurrentUser returns nil for anonymous requests.
func GetCurrentUser(c *gin.Context) *shared.Actor {
	v, exists := c.Get(ctxCurrentUserKey)
	if !exists {
		return nil
	}
	actor, _ := v.(*shared.Actor)
	return actor
}
