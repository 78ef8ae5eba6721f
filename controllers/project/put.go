package projectcontroller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/plantas-api/models"
	"gorm.io/gorm"
)

// UpdateProject applies the sent form fields to an existing project.
// A new cover_image replaces and deletes the previous one.
func UpdateProject(db *gorm.DB, uploadsDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var project models.Project
		if err := db.WithContext(ctx).First(&project, "id = ?", c.Param("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve project"})
			}
			return
		}

		if err := applyProjectForm(&project, c.GetPostForm, false); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		oldCover := project.CoverImage
		cover, saved, err := saveUpload(c, "cover_image", uploadsDir, coverDir)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if saved {
			project.CoverImage = cover
		}

		if err := db.WithContext(ctx).Omit("Style").Save(&project).Error; err != nil {
			if saved {
				removeUpload(uploadsDir, coverDir, cover)
			}
			if isUniqueViolation(err) {
				c.JSON(http.StatusConflict, gin.H{"error": "A project with this slug or code already exists"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update project"})
			return
		}
		if saved {
			removeUpload(uploadsDir, coverDir, oldCover)
		}

		c.JSON(http.StatusOK, project)
	}
}
