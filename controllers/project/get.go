package projectcontroller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/plantas-api/models"
	"gorm.io/gorm"
)

// GetProjectBySlug returns a single published project with its style.
// URL param: /projects/:slug
func GetProjectBySlug(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		slug := c.Param("slug")
		if slug == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Project slug is required"})
			return
		}

		var project models.Project
		err := db.WithContext(c.Request.Context()).
			Preload("Style").
			Where("slug = ? AND published = ?", slug, true).
			First(&project).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve project"})
			}
			return
		}
		c.JSON(http.StatusOK, project)
	}
}
