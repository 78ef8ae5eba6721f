package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	ctxClaims = "claims"
	ctxUserID = "user_id"
)

// parseToken validates an HS256 token. A "Bearer " prefix is accepted.
func parseToken(header, secret string) (jwt.MapClaims, error) {
	tokenString := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(header), "Bearer "))
	if tokenString == "" {
		return nil, errors.New("empty token")
	}
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid token signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid or expired token")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}

func attach(c *gin.Context, claims jwt.MapClaims) {
	c.Set(ctxClaims, claims)
	// The identity provider puts the user in "sub"; tokens issued by this API use "user_id".
	if sub, _ := claims["sub"].(string); sub != "" {
		c.Set(ctxUserID, sub)
	} else if uid, _ := claims["user_id"].(string); uid != "" {
		c.Set(ctxUserID, uid)
	}
}

// ValidateToken rejects requests without a valid JWT.
func ValidateToken(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is missing"})
			c.Abort()
			return
		}
		claims, err := parseToken(header, secret)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}
		attach(c, claims)
		if _, ok := c.Get(ctxUserID); !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Token has no subject"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// OptionalToken attaches the caller's claims when a valid token is sent and
// lets anonymous or invalid-token requests through untouched.
func OptionalToken(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if header := c.GetHeader("Authorization"); header != "" {
			if claims, err := parseToken(header, secret); err == nil {
				attach(c, claims)
			}
		}
		c.Next()
	}
}

// Claims returns the verified token claims, or nil for anonymous requests.
func Claims(c *gin.Context) map[string]any {
	v, ok := c.Get(ctxClaims)
	if !ok {
		return nil
	}
	claims, _ := v.(jwt.MapClaims)
	return claims
}

// UserID returns the authenticated user id, or "".
func UserID(c *gin.Context) string {
	return c.GetString(ctxUserID)
}
