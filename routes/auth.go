package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/plantas-api/auth"
)

// SetupAuthRoutes registers all "/auth/*" endpoints.
func SetupAuthRoutes(r *gin.Engine, d Deps) {
	authGroup := r.Group("/auth")
	{
		// Storefront customer Google login
		authGroup.POST("/google-user", auth.GoogleUserLoginHandler(d.Accounts, d.IDVerifier, d.Tokens, d.Log))

		// Google admin login
		authGroup.POST("/google-admin", auth.GoogleAdminLoginHandler(d.Accounts, d.IDVerifier, d.Tokens, d.SuperAdminEmail, d.Log))
	}
}
