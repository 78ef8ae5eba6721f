package adminController

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/plantas-api/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type adminEmailRequest struct {
	Email string `json:"email" binding:"required,email"`
}

func bindEmail(c *gin.Context) (string, bool) {
	var req adminEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return "", false
	}
	return strings.ToLower(strings.TrimSpace(req.Email)), true
}

// ListPendingAdmins returns all admins awaiting approval.
func ListPendingAdmins(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var pending []models.Admin
		if err := db.WithContext(c.Request.Context()).Where("approved = ?", false).Find(&pending).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch pending admins"})
			return
		}
		c.JSON(http.StatusOK, pending)
	}
}

func ApproveAdmin(db *gorm.DB, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		email, ok := bindEmail(c)
		if !ok {
			return
		}

		var admin models.Admin
		if err := db.WithContext(c.Request.Context()).Where("email = ?", email).First(&admin).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Admin not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			}
			return
		}

		if err := db.WithContext(c.Request.Context()).Model(&admin).Update("approved", true).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to approve admin"})
			return
		}

		log.Info("admin approved", zap.String("email", email))
		c.JSON(http.StatusOK, gin.H{"message": "Admin approved"})
	}
}

func RejectAdmin(db *gorm.DB, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		email, ok := bindEmail(c)
		if !ok {
			return
		}

		res := db.WithContext(c.Request.Context()).Where("email = ?", email).Delete(&models.Admin{})
		if res.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reject admin"})
			return
		}
		if res.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Admin not found"})
			return
		}

		log.Info("admin rejected", zap.String("email", email))
		c.JSON(http.StatusOK, gin.H{"message": "Admin rejected"})
	}
}
