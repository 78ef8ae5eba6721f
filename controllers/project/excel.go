package projectcontroller

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/plantas-api/models"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"
)

// sheetRow is one spreadsheet row keyed by its lower-cased header.
type sheetRow map[string]string

func (r sheetRow) get(key string) (string, bool) {
	v, ok := r[key]
	return v, ok
}

// readSheetRows maps every data row of the first sheet by header name.
// Blank rows are dropped.
func readSheetRows(xlFile *xlsx.File) ([]sheetRow, error) {
	if len(xlFile.Sheets) == 0 || xlFile.Sheets[0].MaxRow < 2 {
		return nil, errors.New("Excel file is empty or missing header row")
	}
	sheet := xlFile.Sheets[0]

	var headers []string
	for _, cell := range sheet.Rows[0].Cells {
		headers = append(headers, strings.ToLower(strings.TrimSpace(cell.String())))
	}

	var rows []sheetRow
	for i := 1; i < sheet.MaxRow; i++ {
		row := sheet.Rows[i]
		if row == nil {
			continue
		}
		values := sheetRow{}
		blank := true
		for j, h := range headers {
			if h == "" {
				continue
			}
			v := ""
			if j < len(row.Cells) {
				v = strings.TrimSpace(row.Cells[j].String())
			}
			if v != "" {
				blank = false
			}
			values[h] = v
		}
		if !blank {
			rows = append(rows, values)
		}
	}
	return rows, nil
}

// ImportProjectsFromExcel upserts projects from an uploaded workbook. Rows
// with a known id update that project; the rest are created.
func ImportProjectsFromExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		excelFileHeader, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Excel file is required"})
			return
		}

		file, err := excelFileHeader.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to open Excel file"})
			return
		}
		defer file.Close()

		xlFile, err := xlsx.OpenReaderAt(file, excelFileHeader.Size)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to parse Excel file"})
			return
		}

		rows, err := readSheetRows(xlFile)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx := c.Request.Context()
		createdCount, updatedCount := 0, 0
		var rowErrors []string

		for i, row := range rows {
			line := i + 2
			var existing models.Project
			create := true
			if id := row["id"]; id != "" {
				if err := db.WithContext(ctx).First(&existing, "id = ?", id).Error; err == nil {
					create = false
				} else {
					existing = models.Project{ID: id}
				}
			}

			if err := applyProjectForm(&existing, row.get, create); err != nil {
				rowErrors = append(rowErrors, fmt.Sprintf("row %d: %v", line, err))
				continue
			}

			if create {
				err = db.WithContext(ctx).Create(&existing).Error
			} else {
				err = db.WithContext(ctx).Omit("Style").Save(&existing).Error
			}
			if err != nil {
				rowErrors = append(rowErrors, fmt.Sprintf("row %d: %v", line, err))
				continue
			}
			if create {
				createdCount++
			} else {
				updatedCount++
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"message":       "Import completed",
			"created_count": createdCount,
			"updated_count": updatedCount,
			"skipped_count": len(rowErrors),
			"errors":        rowErrors,
		})
	}
}
