package httpapi

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"pathshala/internal/common"
	"pathshala/internal/server/auth"
)

// Context keys under which the middleware stores the caller's identity.
const (
	ctxUserIDKey = "userID"
	ctxRoleKey   = "userRole"
)

// authMiddleware requires a valid bearer token and exposes the caller's
// user ID and role to downstream handlers.
func (h *Handler) authMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader(common.AuthHeaderName)
		if header == "" || !strings.HasPrefix(header, common.BearerPrefix) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "authorization required"})
			return
		}

		tokenString := strings.TrimPrefix(header, common.BearerPrefix)
		claims, err := auth.GetClaimsFromToken(tokenString, h.jwtSecret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "invalid or expired token"})
			return
		}

		c.Set(ctxUserIDKey, claims.UserID)
		c.Set(ctxRoleKey, claims.Role)
		c.Next()
	}
}
