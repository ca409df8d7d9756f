package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"sportmeet-api/internal/application/ports"
	"sportmeet-api/internal/infrastructure/jwt"
)

const (
	CtxUsername  = "username"
	CtxUserEmail = "userEmail"
)

// AuthMiddleware rejects requests without a valid Bearer token. The token
// subject is the user's email; the matching account is resolved and its
// username stored on the context for handlers to act on behalf of the caller.
func AuthMiddleware(jwtService *jwt.Service, userService ports.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				gin.H{"error": "missing Authorization header"},
			)
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenStr == authHeader {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				gin.H{"error": "invalid token format"},
			)
			return
		}

		subject, err := jwtService.GetSubject(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				gin.H{"error": "invalid token"},
			)
			return
		}

		u, err := userService.FindByEmail(c.Request.Context(), subject)
		if err != nil || u == nil {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				gin.H{"error": "invalid token"},
			)
			return
		}

		c.Set(CtxUsername, u.Username)
		c.Set(CtxUserEmail, u.Email)

		c.Next()
	}
}
