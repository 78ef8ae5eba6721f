package projectcontroller

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

var imageExts = map[string]bool{".jpg": true, ".jpeg": true, ".png": true, ".webp": true, ".gif": true}

// saveUpload stores the multipart file in field under uploadsDir/sub and
// returns its public path. saved is false when the field was not sent.
func saveUpload(c *gin.Context, field, uploadsDir, sub string) (publicPath string, saved bool, err error) {
	file, err := c.FormFile(field)
	if err != nil {
		return "", false, nil
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !imageExts[ext] {
		return "", false, fmt.Errorf("unsupported image type %q", ext)
	}

	dir := filepath.Join(uploadsDir, sub)
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return "", false, fmt.Errorf("create upload folder: %w", err)
	}

	filename := uploadName(file.Filename, time.Now())
	if err := c.SaveUploadedFile(file, filepath.Join(dir, filename)); err != nil {
		return "", false, fmt.Errorf("save image: %w", err)
	}
	return fmt.Sprintf("/uploads/%s/%s", sub, filename), true, nil
}

func uploadName(original string, now time.Time) string {
	ext := strings.ToLower(filepath.Ext(original))
	base := strings.TrimSuffix(filepath.Base(original), filepath.Ext(original))
	base = strings.ReplaceAll(base, " ", "_")
	return fmt.Sprintf("%d_%s%s", now.UnixNano(), base, ext)
}

// removeUpload deletes a file previously returned by saveUpload. Only the
// base name of publicPath is trusted.
func removeUpload(uploadsDir, sub, publicPath string) {
	if publicPath == "" || !strings.HasPrefix(publicPath, "/uploads/"+sub+"/") {
		return
	}
	_ = os.Remove(filepath.Join(uploadsDir, sub, filepath.Base(publicPath)))
}
