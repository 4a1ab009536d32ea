package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"notekeep/services"
	"notekeep/utils"
)

// Context keys set for downstream handlers.
const (
	ContextUserID      = "user_id"
	ContextSessionID   = "session_id"
	ContextAccessToken = "access_token"
)

// AuthMiddleware verifies the bearer credential and stores the resolved owner
// identity in the request context. Handlers trust this identity completely
// and never read an owner id from the request body or query.
func AuthMiddleware(tokens *services.TokenService, blacklist *services.TokenBlacklist) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.Unauthorized(c, "missing or invalid token")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		if blacklist.IsBlacklisted(c.Request.Context(), tokenString) {
			utils.TrackError("auth", "blacklisted_token")
			utils.Unauthorized(c, "token has been invalidated")
			c.Abort()
			return
		}

		claims, err := tokens.ValidateToken(tokenString, services.TokenTypeAccess)
		if err != nil {
			utils.TrackError("auth", "invalid_token")
			utils.Unauthorized(c, "invalid token")
			c.Abort()
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextSessionID, claims.SessionID)
		c.Set(ContextAccessToken, tokenString)

		c.Next()
	}
}
