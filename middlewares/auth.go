package middlewares

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"lareserve-backend/services"
	"lareserve-backend/utils"
)

// AuthMiddleware guards admin routes. The bearer token must verify and its
// session row must still exist; expiry is caught here, on the next guarded
// request, not proactively. Optional roles restrict who gets through.
func AuthMiddleware(auth *services.AuthService, requiredRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" || !strings.HasPrefix(h, "Bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "missing or invalid token"})
			c.Abort()
			return
		}
		tokenStr := strings.TrimPrefix(h, "Bearer ")

		claims, err := utils.ParseToken(tokenStr, auth.Cfg.JWTSecret)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "invalid token"})
			c.Abort()
			return
		}

		session, err := auth.CurrentSession(claims.TokenID)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "session expired"})
			c.Abort()
			return
		}

		c.Set("adminUserId", session.AdminUserID)
		c.Set("role", claims.Role)
		c.Set("tokenId", claims.TokenID)

		if len(requiredRoles) > 0 {
			allowed := false
			for _, r := range requiredRoles {
				if claims.Role == r {
					allowed = true
					break
				}
			}
			if !allowed {
				c.JSON(http.StatusForbidden, gin.H{"ok": false, "error": "forbidden"})
				c.Abort()
				return
			}
		}

		c.Next()
	}
}
