package favoriteControllers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func dryRunDB(t *testing.T) (*gorm.DB, *[]string) {
	t.Helper()
	db, err := gorm.Open(postgres.Open("host=localhost user=test dbname=test sslmode=disable"), &gorm.Config{
		DryRun:                 true,
		DisableAutomaticPing:   true,
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	var statements []string
	capture := func(tx *gorm.DB) { statements = append(statements, tx.Statement.SQL.String()) }
	require.NoError(t, db.Callback().Delete().After("gorm:delete").Register("test:capture", capture))
	return db, &statements
}

func TestRemoveFavoriteScopedToCaller(t *testing.T) {
	db, statements := dryRunDB(t)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.DELETE("/favorites/:projectId", func(c *gin.Context) {
		c.Set("user_id", "user-1")
	}, RemoveFavorite(db))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/favorites/p1", nil))

	// A dry run touches no rows.
	assert.Equal(t, http.StatusNotFound, w.Code)
	require.Len(t, *statements, 1)
	assert.Contains(t, (*statements)[0], `DELETE FROM "favorites" WHERE user_id = $1 AND project_id = $2`)
}
