package leadControllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/plantas-api/models"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"
)

var leadColumns = []string{
	"ID", "Nome", "Email", "Telefone", "Mensagem", "Projetos", "Origem", "Status", "Sessão de pagamento", "Criado em",
}

func buildLeadsWorkbook(leads []models.Lead) (*xlsx.File, error) {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Leads")
	if err != nil {
		return nil, err
	}

	header := sheet.AddRow()
	for _, h := range leadColumns {
		header.AddCell().SetString(h)
	}
	for _, l := range leads {
		row := sheet.AddRow()
		row.AddCell().SetString(l.ID)
		row.AddCell().SetString(l.Name)
		row.AddCell().SetString(l.Email)
		row.AddCell().SetString(l.Phone)
		row.AddCell().SetString(l.Message)
		row.AddCell().SetString(l.ProjectIDs)
		row.AddCell().SetString(string(l.Source))
		row.AddCell().SetString(string(l.Status))
		row.AddCell().SetString(l.CheckoutSessionID)
		row.AddCell().SetString(l.CreatedAt.Format("2006-01-02 15:04:05"))
	}
	return file, nil
}

// ExportLeadsToExcel downloads every lead, newest first.
func ExportLeadsToExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var leads []models.Lead
		if err := db.WithContext(c.Request.Context()).Order("created_at DESC").Find(&leads).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch leads"})
			return
		}

		file, err := buildLeadsWorkbook(leads)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create Excel sheet"})
			return
		}

		filename := fmt.Sprintf("leads_%s.xlsx", time.Now().Format("2006-01-02"))
		c.Header("Content-Disposition", "attachment; filename="+filename)
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to write Excel file"})
			return
		}
	}
}
