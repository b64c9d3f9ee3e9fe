package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/niloykhan002/life-stream-server/internal/models"
	"github.com/niloykhan002/life-stream-server/internal/utils"
)

// Context keys set by VerifyToken for downstream handlers.
const (
	ContextEmailKey  = "userEmail"
	ContextClaimsKey = "userClaims"
)

// RoleSource looks up the persisted role for a user email. The users
// collection satisfies this through the handler; tests swap in a fake.
type RoleSource interface {
	RoleFor(ctx context.Context, email string) (string, error)
}

// VerifyToken requires a valid bearer token and stores the decoded
// identity in the request context.
func VerifyToken(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "unauthorized access"})
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := utils.ParseClaims(tokenStr, secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "unauthorized access"})
			return
		}

		c.Set(ContextEmailKey, utils.ClaimEmail(claims))
		c.Set(ContextClaimsKey, claims)

		c.Next()
	}
}

// RequireRole gates a route on the stored role of the verified caller.
// One lookup per request; a role change takes effect on the next call.
func RequireRole(src RoleSource, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.GetString(ContextEmailKey)
		stored, err := src.RoleFor(c.Request.Context(), email)
		if err != nil || stored != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "forbidden access"})
			return
		}

		c.Next()
	}
}

// RequireAdmin gates a route to admin users.
func RequireAdmin(src RoleSource) gin.HandlerFunc {
	return RequireRole(src, models.RoleAdmin)
}

// RequireVolunteer gates a route to volunteer users.
func RequireVolunteer(src RoleSource) gin.HandlerFunc {
	return RequireRole(src, models.RoleVolunteer)
}
