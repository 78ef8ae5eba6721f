package adminController

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/plantas-api/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func GetAllAdmins(db *gorm.DB, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var admins []models.Admin

		if err := db.WithContext(c.Request.Context()).Order("created_at asc").Find(&admins).Error; err != nil {
			log.Error("failed to fetch admins", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch admins"})
			return
		}

		c.JSON(http.StatusOK, admins)
	}
}
