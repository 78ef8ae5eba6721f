package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
)

// AdminOnly lets a request through when it carries the admin API key in
// X-API-KEY, or a JWT issued to an admin or the super admin.
func AdminOnly(apiKey, jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if key := c.GetHeader("X-API-KEY"); key != "" && apiKey != "" &&
			subtle.ConstantTimeCompare([]byte(key), []byte(apiKey)) == 1 {
			c.Next()
			return
		}

		if header := c.GetHeader("Authorization"); header != "" {
			if claims, err := parseToken(header, jwtSecret); err == nil {
				role, _ := claims["role"].(string)
				if role == "admin" || role == "superadmin" {
					attach(c, claims)
					c.Next()
					return
				}
			}
		}

		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or missing API key"})
		c.Abort()
	}
}
