package projectcontroller

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/plantas-api/models"
	"gorm.io/gorm"
)

const styleDir = "styles"

// GetStyles returns all styles ordered by name.
func GetStyles(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var styles []models.Style
		if err := db.WithContext(c.Request.Context()).Order("name asc").Find(&styles).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch styles"})
			return
		}
		c.JSON(http.StatusOK, styles)
	}
}

func CreateStyle(db *gorm.DB, uploadsDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := strings.TrimSpace(c.PostForm("name"))
		if name == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
			return
		}

		style := models.Style{
			Name:        name,
			Slug:        models.Slugify(name),
			Description: strings.TrimSpace(c.PostForm("description")),
		}

		image, saved, err := saveUpload(c, "image", uploadsDir, styleDir)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		style.Image = image

		if err := db.WithContext(c.Request.Context()).Create(&style).Error; err != nil {
			if saved {
				removeUpload(uploadsDir, styleDir, image)
			}
			if isUniqueViolation(err) {
				c.JSON(http.StatusConflict, gin.H{"error": "Style already exists"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create style"})
			return
		}

		c.JSON(http.StatusCreated, style)
	}
}

func styleID(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid style id"})
		return 0, false
	}
	return id, true
}

func UpdateStyle(db *gorm.DB, uploadsDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := styleID(c)
		if !ok {
			return
		}

		var style models.Style
		if err := db.WithContext(c.Request.Context()).First(&style, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Style not found"})
			return
		}

		if v := strings.TrimSpace(c.PostForm("name")); v != "" {
			style.Name = v
			style.Slug = models.Slugify(v)
		}
		if v, ok := c.GetPostForm("description"); ok {
			style.Description = strings.TrimSpace(v)
		}

		oldImage := style.Image
		image, saved, err := saveUpload(c, "image", uploadsDir, styleDir)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if saved {
			style.Image = image
		}

		if err := db.WithContext(c.Request.Context()).Save(&style).Error; err != nil {
			if saved {
				removeUpload(uploadsDir, styleDir, image)
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update style"})
			return
		}
		if saved {
			removeUpload(uploadsDir, styleDir, oldImage)
		}

		c.JSON(http.StatusOK, style)
	}
}

// DeleteStyle refuses to delete a style that projects still use.
func DeleteStyle(db *gorm.DB, uploadsDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		id, ok := styleID(c)
		if !ok {
			return
		}

		var style models.Style
		if err := db.WithContext(ctx).First(&style, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Style not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve style"})
			}
			return
		}

		var inUse int64
		if err := db.WithContext(ctx).Model(&models.Project{}).Where("style_id = ?", style.ID).Count(&inUse).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check style usage"})
			return
		}
		if inUse > 0 {
			c.JSON(http.StatusConflict, gin.H{"error": "Style is used by projects", "projects": inUse})
			return
		}

		if err := db.WithContext(ctx).Delete(&style).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete style"})
			return
		}
		removeUpload(uploadsDir, styleDir, style.Image)

		c.JSON(http.StatusOK, gin.H{"message": "Style deleted successfully"})
	}
}
