package routes

import (
	"github.com/gin-gonic/gin"
	favoriteControllers "github.com/junaidrashid-git/plantas-api/controllers/favorite"
	userControllers "github.com/junaidrashid-git/plantas-api/controllers/user"
	"github.com/junaidrashid-git/plantas-api/middleware"
)

// SetupUserRoutes registers all "/user/*" endpoints. Requires JWT middleware.
func SetupUserRoutes(r *gin.Engine, d Deps) {
	userGroup := r.Group("/user")
	userGroup.Use(middleware.ValidateToken(d.JWTSecret))
	{
		// ──────────────── User Profile ────────────────
		userGroup.GET("", userControllers.GetUser(d.DB))    // GET /user
		userGroup.PUT("", userControllers.UpdateUser(d.DB)) // PUT /user

		// ──────────────── Favorites ────────────────
		favGroup := userGroup.Group("/favorites")
		{
			favGroup.GET("", favoriteControllers.GetUserFavorites(d.DB))             // GET /user/favorites
			favGroup.POST("/:projectId", favoriteControllers.AddFavorite(d.DB))      // POST /user/favorites/:projectId
			favGroup.DELETE("/:projectId", favoriteControllers.RemoveFavorite(d.DB)) // DELETE /user/favorites/:projectId
		}
	}
}
