package projectcontroller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/plantas-api/models"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"
)

// projectColumns doubles as the import header: every name is a form key
// understood by applyProjectForm.
var projectColumns = []string{
	"id", "title", "slug", "code", "description", "price",
	"price_electrical", "price_hydraulic", "price_sanitary", "price_structural",
	"area_m2", "bedrooms", "bathrooms", "suites", "garage_spots", "lot_width", "lot_depth",
	"style_id", "images", "published", "featured", "cover_image", "created_at", "updated_at",
}

func buildProjectsWorkbook(projects []models.Project) (*xlsx.File, error) {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Projects")
	if err != nil {
		return nil, err
	}

	headerRow := sheet.AddRow()
	for _, h := range projectColumns {
		headerRow.AddCell().SetString(h)
	}

	for _, p := range projects {
		row := sheet.AddRow()
		row.AddCell().SetString(p.ID)
		row.AddCell().SetString(p.Title)
		row.AddCell().SetString(p.Slug)
		row.AddCell().SetString(p.Code)
		row.AddCell().SetString(p.Description)
		row.AddCell().SetString(formatFloat(p.Price))
		for _, kind := range models.AddonKinds {
			v := ""
			if price := p.AddonPrice(kind); price != nil {
				v = formatFloat(*price)
			}
			row.AddCell().SetString(v)
		}
		row.AddCell().SetString(formatFloat(p.AreaM2))
		row.AddCell().SetString(strconv.Itoa(p.Bedrooms))
		row.AddCell().SetString(strconv.Itoa(p.Bathrooms))
		row.AddCell().SetString(strconv.Itoa(p.Suites))
		row.AddCell().SetString(strconv.Itoa(p.GarageSpots))
		row.AddCell().SetString(formatFloat(p.LotWidth))
		row.AddCell().SetString(formatFloat(p.LotDepth))
		style := ""
		if p.StyleID != nil {
			style = strconv.FormatUint(uint64(*p.StyleID), 10)
		}
		row.AddCell().SetString(style)
		row.AddCell().SetString(p.Images)
		row.AddCell().SetString(strconv.FormatBool(p.Published))
		row.AddCell().SetString(strconv.FormatBool(p.Featured))
		row.AddCell().SetString(p.CoverImage)
		row.AddCell().SetString(p.CreatedAt.Format("2006-01-02 15:04:05"))
		row.AddCell().SetString(p.UpdatedAt.Format("2006-01-02 15:04:05"))
	}
	return file, nil
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func ExportProjectsToExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var projects []models.Project
		if err := db.WithContext(c.Request.Context()).Order("created_at asc").Find(&projects).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch projects"})
			return
		}

		file, err := buildProjectsWorkbook(projects)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		c.Header("Content-Disposition", "attachment; filename=projects.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}
