package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/plantas-api/models"
	"go.uber.org/zap"
)

// AdminDirectory finds or registers back-office admins.
type AdminDirectory interface {
	AdminLogin(ctx context.Context, email, name, picture string) (admin models.Admin, created bool, err error)
}

// UserDirectory records storefront customers.
type UserDirectory interface {
	UpsertUser(ctx context.Context, user *models.User) error
}

type idTokenRequest struct {
	IDToken string `json:"idToken" binding:"required"`
}

func verifyRequest(c *gin.Context, verifier IDTokenVerifier, log *zap.Logger) (*Identity, bool) {
	if verifier == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Google login is not configured"})
		return nil, false
	}
	var req idTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return nil, false
	}
	id, err := verifier.VerifyIDToken(c.Request.Context(), req.IDToken)
	if err != nil {
		log.Warn("id token verification failed", zap.Error(err))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or revoked ID token"})
		return nil, false
	}
	return id, true
}

// GoogleAdminLoginHandler exchanges a Google ID token for an admin JWT. The
// super admin is let in directly; everyone else needs an approved row.
func GoogleAdminLoginHandler(admins AdminDirectory, verifier IDTokenVerifier, tokens *TokenIssuer, superAdminEmail string, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := verifyRequest(c, verifier, log)
		if !ok {
			return
		}

		if superAdminEmail != "" && strings.EqualFold(id.Email, superAdminEmail) {
			respondWithAdminToken(c, tokens, id, RoleSuperAdmin, log)
			return
		}

		admin, created, err := admins.AdminLogin(c.Request.Context(), id.Email, id.Name, id.Picture)
		if err != nil {
			log.Error("admin login failed", zap.String("email", id.Email), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			return
		}
		if created {
			log.Info("new admin registered, pending approval", zap.String("email", id.Email))
		}
		if !admin.Approved {
			c.JSON(http.StatusForbidden, gin.H{"error": "Pending approval by super admin"})
			return
		}

		respondWithAdminToken(c, tokens, id, RoleAdmin, log)
	}
}

func respondWithAdminToken(c *gin.Context, tokens *TokenIssuer, id *Identity, role string, log *zap.Logger) {
	token, err := tokens.Admin(id.Email, role, id.UID)
	if err != nil {
		log.Error("failed to sign admin token", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"token":   token,
		"role":    role,
		"email":   id.Email,
		"name":    id.Name,
		"picture": id.Picture,
	})
}

// GoogleUserLoginHandler signs a storefront customer in and returns a JWT
// whose sub is the customer's uid.
func GoogleUserLoginHandler(users UserDirectory, verifier IDTokenVerifier, tokens *TokenIssuer, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := verifyRequest(c, verifier, log)
		if !ok {
			return
		}

		user := models.User{
			ID:       id.UID,
			Email:    strings.ToLower(id.Email),
			Name:     id.Name,
			Picture:  id.Picture,
			Provider: "google",
		}
		if err := users.UpsertUser(c.Request.Context(), &user); err != nil {
			log.Error("user login failed", zap.String("uid", id.UID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save user"})
			return
		}

		token, err := tokens.User(id)
		if err != nil {
			log.Error("failed to sign user token", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue token"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"message": "Login successful",
			"token":   token,
			"user":    user,
		})
	}
}
