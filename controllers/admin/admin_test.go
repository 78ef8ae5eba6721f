package adminController

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestBannerFileName(t *testing.T) {
	now := time.Unix(1700000000, 0)
	assert.Equal(t, "1700000000_fachada_casa.jpg", bannerFileName("fachada casa.jpg.JPG", now))
	assert.Equal(t, "1700000000_hero.png", bannerFileName("/tmp/hero.png", now))
}

func TestApprovalRequiresEmail(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	// The body is rejected before the database is used.
	r.POST("/approve", ApproveAdmin(nil, zap.NewNop()))
	r.POST("/reject", RejectAdmin(nil, zap.NewNop()))

	for _, path := range []string{"/approve", "/reject"} {
		for _, body := range []string{`{}`, `{"email":"nope"}`, `not json`} {
			req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, http.StatusBadRequest, w.Code, path+" "+body)
		}
	}
}
