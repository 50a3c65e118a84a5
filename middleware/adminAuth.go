package middleware

import (
	"net/http"
	"strings"

	"astrodesk/utils"

	"github.com/gin-gonic/gin"
)

// JWTAuthAdminMiddleware guards admin-only endpoints. It validates the bearer
// token and aborts with 401 before any handler runs, so no partial mutation is
// possible on an unauthorized request.
func JWTAuthAdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		username, err := utils.ExtractSubjectFromToken(tokenString)
		if err != nil || username == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized admin access"})
			return
		}

		c.Set("adminUser", username)
		c.Set("isAdmin", true)
		c.Next()
	}
}
