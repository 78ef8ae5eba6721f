package leadControllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/plantas-api/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Broadcaster publishes freshly captured leads.
type Broadcaster interface {
	Broadcast(v any)
}

type CreateLeadRequest struct {
	Name       string   `json:"name" binding:"max=120"`
	Email      string   `json:"email" binding:"required,email,max=254"`
	Phone      string   `json:"phone" binding:"max=40"`
	Message    string   `json:"message" binding:"max=2000"`
	ProjectIDs []string `json:"projectIds" binding:"max=50"`
	Source     string   `json:"source"`
}

type UpdateLeadStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// NewLead turns a capture request into a lead row.
func NewLead(req CreateLeadRequest) models.Lead {
	ids := make([]string, 0, len(req.ProjectIDs))
	for _, id := range req.ProjectIDs {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}
	return models.Lead{
		Name:       strings.TrimSpace(req.Name),
		Email:      strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:      strings.TrimSpace(req.Phone),
		Message:    strings.TrimSpace(req.Message),
		ProjectIDs: strings.Join(ids, ","),
		Source:     models.ParseLeadSource(req.Source),
		Status:     models.LeadStatusNew,
	}
}

// CreateLeadHandler is the public lead capture endpoint.
func CreateLeadHandler(db *gorm.DB, feed Broadcaster, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateLeadRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		lead := NewLead(req)
		if err := db.WithContext(c.Request.Context()).Create(&lead).Error; err != nil {
			log.Error("failed to save lead", zap.String("email", lead.Email), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save lead"})
			return
		}

		feed.Broadcast(gin.H{"type": "lead.created", "lead": lead})
		c.JSON(http.StatusCreated, gin.H{"id": lead.ID})
	}
}

// GetLeadsHandler lists leads newest first, optionally filtered by status
// and a name/email/phone search.
func GetLeadsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.WithContext(c.Request.Context()).Model(&models.Lead{})

		if s := c.Query("status"); s != "" {
			status, err := models.ParseLeadStatus(s)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			query = query.Where("status = ?", status)
		}
		if search := strings.TrimSpace(c.Query("search")); search != "" {
			like := "%" + search + "%"
			query = query.Where("name ILIKE ? OR email ILIKE ? OR phone ILIKE ?", like, like, like)
		}

		var leads []models.Lead
		if err := query.Order("created_at DESC").Find(&leads).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch leads"})
			return
		}
		c.JSON(http.StatusOK, leads)
	}
}

func UpdateLeadStatusHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdateLeadStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		status, err := models.ParseLeadStatus(req.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		res := db.WithContext(c.Request.Context()).Model(&models.Lead{}).
			Where("id = ?", c.Param("id")).
			Update("status", status)
		if res.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update lead status"})
			return
		}
		if res.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "lead not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Lead status updated successfully"})
	}
}

func DeleteLeadHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		res := db.WithContext(c.Request.Context()).Where("id = ?", c.Param("id")).Delete(&models.Lead{})
		if res.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete lead"})
			return
		}
		if res.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "lead not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Lead deleted successfully"})
	}
}
