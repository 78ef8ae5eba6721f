package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	RoleSuperAdmin    = "superadmin"
	RoleAdmin         = "admin"
	RoleAuthenticated = "authenticated"
)

// TokenIssuer signs the HS256 tokens the middleware package verifies.
type TokenIssuer struct {
	secret   []byte
	AdminTTL time.Duration
	UserTTL  time.Duration
	now      func() time.Time
}

func NewTokenIssuer(secret string) *TokenIssuer {
	return &TokenIssuer{
		secret:   []byte(secret),
		AdminTTL: 60 * 24 * time.Hour,
		UserTTL:  24 * time.Hour,
		now:      time.Now,
	}
}

// Admin issues a back-office token carrying the admin role.
func (t *TokenIssuer) Admin(email, role, userID string) (string, error) {
	return t.sign(jwt.MapClaims{
		"email":   email,
		"role":    role,
		"user_id": userID,
		"exp":     t.now().Add(t.AdminTTL).Unix(),
	})
}

// User issues a storefront token; sub is the identity provider uid.
func (t *TokenIssuer) User(id *Identity) (string, error) {
	now := t.now()
	return t.sign(jwt.MapClaims{
		"sub":     id.UID,
		"user_id": id.UID,
		"email":   id.Email,
		"name":    id.Name,
		"role":    RoleAuthenticated,
		"iat":     now.Unix(),
		"exp":     now.Add(t.UserTTL).Unix(),
	})
}

func (t *TokenIssuer) sign(claims jwt.MapClaims) (string, error) {
	if len(t.secret) == 0 {
		return "", errors.New("jwt secret is not configured")
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
}
