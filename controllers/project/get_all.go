package projectcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/plantas-api/models"
	"gorm.io/gorm"
)

// GetProjects lists published projects with filters and paging.
func GetProjects(db *gorm.DB) gin.HandlerFunc {
	return listProjects(db, false)
}

// GetAllProjects is the admin listing; unpublished projects are included.
func GetAllProjects(db *gorm.DB) gin.HandlerFunc {
	return listProjects(db, true)
}

func listProjects(db *gorm.DB, includeUnpublished bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		params, err := ParseListParams(c.Request.URL.Query())
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		params.IncludeUnpublished = includeUnpublished

		query := params.Apply(db.WithContext(c.Request.Context()))

		var total int64
		if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count projects"})
			return
		}

		var projects []models.Project
		if err := query.Preload("Style").
			Order(params.OrderClause()).
			Offset(params.Offset()).
			Limit(params.PageSize).
			Find(&projects).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch projects"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"items":     projects,
			"total":     total,
			"page":      params.Page,
			"page_size": params.PageSize,
		})
	}
}
