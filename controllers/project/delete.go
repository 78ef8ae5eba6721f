package projectcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/plantas-api/models"
	"gorm.io/gorm"
)

// DeleteProject soft-deletes a project and drops it from every favorites list.
func DeleteProject(db *gorm.DB, uploadsDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if id == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Project ID is required"})
			return
		}

		var project models.Project
		if err := db.WithContext(c.Request.Context()).First(&project, "id = ?", id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
			return
		}

		err := db.WithContext(c.Request.Context()).Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("project_id = ?", project.ID).Delete(&models.Favorite{}).Error; err != nil {
				return err
			}
			return tx.Delete(&project).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete project"})
			return
		}
		removeUpload(uploadsDir, coverDir, project.CoverImage)

		c.JSON(http.StatusOK, gin.H{"message": "Project deleted successfully"})
	}
}
