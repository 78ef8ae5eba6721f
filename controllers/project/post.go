package projectcontroller

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/plantas-api/models"
	"gorm.io/gorm"
)

const coverDir = "projects"

// CreateProject creates a project from a multipart form with an optional
// cover_image file.
func CreateProject(db *gorm.DB, uploadsDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var project models.Project
		if err := applyProjectForm(&project, c.GetPostForm, true); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		cover, saved, err := saveUpload(c, "cover_image", uploadsDir, coverDir)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if saved {
			project.CoverImage = cover
		}

		if err := db.WithContext(c.Request.Context()).Create(&project).Error; err != nil {
			if saved {
				removeUpload(uploadsDir, coverDir, cover)
			}
			if isUniqueViolation(err) {
				c.JSON(http.StatusConflict, gin.H{"error": "A project with this slug or code already exists"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create project"})
			return
		}

		c.JSON(http.StatusCreated, project)
	}
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, gorm.ErrDuplicatedKey) || strings.Contains(err.Error(), "SQLSTATE 23505")
}
