package favoriteControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/plantas-api/middleware"
	"github.com/junaidrashid-git/plantas-api/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GetUserFavorites returns the caller's favorite projects, most recent first.
func GetUserFavorites(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := middleware.UserID(c)

		var favorites []models.Favorite
		if err := db.WithContext(c.Request.Context()).
			Preload("Project").
			Preload("Project.Style").
			Joins("JOIN projects ON projects.id = favorites.project_id AND projects.deleted_at IS NULL").
			Where("favorites.user_id = ?", userID).
			Order("favorites.created_at DESC").
			Find(&favorites).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch favorites"})
			return
		}

		projects := make([]models.Project, 0, len(favorites))
		for _, f := range favorites {
			projects = append(projects, f.Project)
		}
		c.JSON(http.StatusOK, projects)
	}
}

// AddFavorite is idempotent: adding an existing favorite succeeds.
func AddFavorite(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := middleware.UserID(c)
		projectID := c.Param("projectId")
		ctx := c.Request.Context()

		var project models.Project
		if err := db.WithContext(ctx).Select("id").First(&project, "id = ?", projectID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve project"})
			}
			return
		}

		fav := models.Favorite{UserID: userID, ProjectID: project.ID}
		if err := db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&fav).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add favorite"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"project_id": project.ID})
	}
}

func RemoveFavorite(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		res := db.WithContext(c.Request.Context()).
			Where("user_id = ? AND project_id = ?", middleware.UserID(c), c.Param("projectId")).
			Delete(&models.Favorite{})
		if res.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove favorite"})
			return
		}
		if res.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Favorite not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Favorite removed"})
	}
}
