package middleware

import (
	"net/http"
	"strings"

	jwtsvc "leadhub/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
)

// Auth validates the bearer token and publishes user_id, role and tenant_id
// on the request context. tenant_id stays unset for tenant-less users; the
// conversion engine treats that as "no tenant in scope".
func Auth(jwt *jwtsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" || !strings.HasPrefix(h, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   gin.H{"code": "UNAUTHORIZED", "message": "Missing or malformed Authorization header"},
			})
			return
		}

		claims, err := jwt.ValidateToken(strings.TrimPrefix(h, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   gin.H{"code": "UNAUTHORIZED", "message": "Invalid or expired token"},
			})
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("role", claims.Role)
		if claims.TenantID != "" {
			c.Set("tenant_id", claims.TenantID)
		}
		c.Next()
	}
}

// TenantID extracts the optional tenant scope set by Auth.
func TenantID(c *gin.Context) *string {
	if v, ok := c.Get("tenant_id"); ok {
		if s, ok := v.(string); ok && s != "" {
			return &s
		}
	}
	return nil
}
