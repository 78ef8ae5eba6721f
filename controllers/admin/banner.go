package adminController

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/plantas-api/models"
	"gorm.io/gorm"
)

const bannerDir = "banners"

// bannerFileName strips repeated image extensions ("a.jpg.jpg") and spaces.
func bannerFileName(original string, now time.Time) string {
	ext := strings.ToLower(filepath.Ext(original))
	baseName := strings.TrimSuffix(filepath.Base(original), filepath.Ext(original))
	for {
		e := strings.ToLower(filepath.Ext(baseName))
		if e == ".jpg" || e == ".jpeg" || e == ".png" || e == ".gif" || e == ".webp" {
			baseName = strings.TrimSuffix(baseName, filepath.Ext(baseName))
			continue
		}
		break
	}
	baseName = strings.ReplaceAll(baseName, " ", "_")
	return fmt.Sprintf("%d_%s%s", now.Unix(), baseName, ext)
}

// UploadBanner saves the image under the uploads dir and records it.
func UploadBanner(db *gorm.DB, uploadsDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		fileHeader, err := c.FormFile("image")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No image uploaded"})
			return
		}

		dir := filepath.Join(uploadsDir, bannerDir)
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create upload folder"})
			return
		}

		newFileName := bannerFileName(fileHeader.Filename, time.Now())
		if err := c.SaveUploadedFile(fileHeader, filepath.Join(dir, newFileName)); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save file"})
			return
		}

		position, _ := strconv.Atoi(c.PostForm("position"))
		banner := models.Banner{
			ImageURL: fmt.Sprintf("/uploads/%s/%s", bannerDir, newFileName),
			Link:     strings.TrimSpace(c.PostForm("link")),
			Position: position,
			Active:   true,
		}
		if err := db.WithContext(c.Request.Context()).Create(&banner).Error; err != nil {
			_ = os.Remove(filepath.Join(dir, newFileName))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "DB save failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Banner uploaded", "data": banner})
	}
}

// GetBanners lists banners by position. activeOnly is used by the storefront.
func GetBanners(db *gorm.DB, activeOnly bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.WithContext(c.Request.Context()).Order("position asc, id asc")
		if activeOnly {
			query = query.Where("active = ?", true)
		}
		var banners []models.Banner
		if err := query.Find(&banners).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get banners"})
			return
		}
		c.JSON(http.StatusOK, banners)
	}
}

// DeleteBanner removes both the record and the file.
func DeleteBanner(db *gorm.DB, uploadsDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid banner id"})
			return
		}

		var banner models.Banner
		if err := db.WithContext(c.Request.Context()).First(&banner, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Banner not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			return
		}

		if strings.HasPrefix(banner.ImageURL, "/uploads/"+bannerDir+"/") {
			localPath := filepath.Join(uploadsDir, bannerDir, filepath.Base(banner.ImageURL))
			if err := os.Remove(localPath); err != nil && !os.IsNotExist(err) {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete file"})
				return
			}
		}

		if err := db.WithContext(c.Request.Context()).Delete(&banner).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete from database"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Banner deleted"})
	}
}
