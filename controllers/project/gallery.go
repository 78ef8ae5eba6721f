package projectcontroller

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/plantas-api/models"
	"gorm.io/gorm"
)

const galleryDir = "gallery"

func splitImages(images string) []string {
	var out []string
	for _, s := range strings.Split(images, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func addImage(images, url string) string {
	list := splitImages(images)
	for _, existing := range list {
		if existing == url {
			return strings.Join(list, ",")
		}
	}
	return strings.Join(append(list, url), ",")
}

// dropImage returns images without url; removed is false if it was absent.
func dropImage(images, url string) (string, bool) {
	list := splitImages(images)
	kept := list[:0]
	removed := false
	for _, existing := range list {
		if existing == url {
			removed = true
			continue
		}
		kept = append(kept, existing)
	}
	return strings.Join(kept, ","), removed
}

// AddProjectImage uploads a gallery image and appends it to the project.
func AddProjectImage(db *gorm.DB, uploadsDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var project models.Project
		if err := db.WithContext(c.Request.Context()).First(&project, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
			return
		}

		url, saved, err := saveUpload(c, "file", uploadsDir, galleryDir)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if !saved {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
			return
		}

		images := addImage(project.Images, url)
		if err := db.WithContext(c.Request.Context()).Model(&project).Update("images", images).Error; err != nil {
			removeUpload(uploadsDir, galleryDir, url)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save image"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"file_url": url, "images": splitImages(images)})
	}
}

// DeleteProjectImage removes {"url": ...} from the gallery and from disk.
func DeleteProjectImage(db *gorm.DB, uploadsDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			URL string `json:"url" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "url is required"})
			return
		}

		var project models.Project
		if err := db.WithContext(c.Request.Context()).First(&project, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
			return
		}

		images, removed := dropImage(project.Images, req.URL)
		if !removed {
			c.JSON(http.StatusNotFound, gin.H{"error": "Image not found"})
			return
		}
		if err := db.WithContext(c.Request.Context()).Model(&project).Update("images", images).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update project"})
			return
		}
		removeUpload(uploadsDir, galleryDir, req.URL)

		c.JSON(http.StatusOK, gin.H{"images": splitImages(images)})
	}
}
